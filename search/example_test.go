package search_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/search"
)

// ExampleLevenshtein shows the classic kitten → sitting distance.
func ExampleLevenshtein() {
	fmt.Println(search.Levenshtein("kitten", "sitting"))
	// Output: 3
}

// ExampleBinarySearchOrdered looks up a value in a sorted slice.
func ExampleBinarySearchOrdered() {
	primes := []int{2, 3, 5, 7, 11, 13}
	fmt.Println(search.BinarySearchOrdered(primes, 11))
	fmt.Println(search.BinarySearchOrdered(primes, 4) == search.NotFound)
	// Output:
	// 4
	// true
}

// ExampleFuzzySearch finds commands close to a mistyped one.
func ExampleFuzzySearch() {
	commands := []string{"commit", "checkout", "cherry-pick", "clone", "config"}
	matches, err := search.FuzzySearch(commands, "comit", func(s string) string { return s },
		search.WithThreshold(0.6))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, m := range matches {
		fmt.Printf("%s %.2f\n", m.Item, m.Similarity)
	}
	// Output:
	// commit 0.83
}
