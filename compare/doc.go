// Package compare defines the typed comparator abstraction shared by the
// sorting and search packages.
//
// A Comparator[T] returns a negative number when a orders before b, zero
// when they are equivalent, and a positive number otherwise. The toolkit
// never inspects element types at runtime: every ordering is a plain
// function value, so callers can sort or search anything they can compare.
//
// Constructors:
//
//   - Natural[T cmp.Ordered]()   numeric ascending, lexicographic for strings
//   - Reverse(c)                flips an ordering
//   - By(key)                   orders by an extracted cmp.Ordered key
//   - Then(first, second)       breaks ties of first with second
//
// Comparators must be consistent (deterministic and transitive); this is the
// caller's responsibility and is not validated.
package compare
