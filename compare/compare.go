package compare

import "cmp"

// Comparator orders two values of T: <0 when a<b, 0 when equal, >0 when a>b.
type Comparator[T any] func(a, b T) int

// Natural returns the natural ordering of an ordered type.
// Floating-point NaN values order before all other values, as cmp.Compare does.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator that orders opposite to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	MustNotBeNil(c)

	return func(a, b T) int { return c(b, a) }
}

// By orders values of T by the natural ordering of key(v).
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	if key == nil {
		panic(panicNilKey)
	}

	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Then returns a comparator that consults second only when first reports a tie.
func Then[T any](first, second Comparator[T]) Comparator[T] {
	MustNotBeNil(first)
	MustNotBeNil(second)

	return func(a, b T) int {
		if r := first(a, b); r != 0 {
			return r
		}

		return second(a, b)
	}
}

const (
	panicNilComparator = "compare: nil comparator"
	panicNilKey        = "compare: nil key function"
)

// MustNotBeNil panics on a nil comparator. A nil comparator is a programmer
// error, not a user-input condition, so the sorting and search packages call
// this at every entry point to report it with one stable message.
func MustNotBeNil[T any](c Comparator[T]) {
	if c == nil {
		panic(panicNilComparator)
	}
}
