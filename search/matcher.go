package search

// Matcher is a reusable fuzzy matcher: the key extractor and options are
// validated once at construction. A Matcher is safe for concurrent use when
// its key extractor is.
type Matcher[T any] struct {
	key  func(T) string
	opts Options
}

// NewMatcher validates opts and returns a Matcher extracting keys with key.
func NewMatcher[T any](key func(T) string, opts ...Option) (*Matcher[T], error) {
	if key == nil {
		panic(panicNilKey)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Matcher[T]{key: key, opts: o}, nil
}

// Match runs FuzzySearch over items with the matcher's options.
func (m *Matcher[T]) Match(items []T, query string) []Match[T] {
	return fuzzySearch(items, query, m.key, m.opts)
}

// Options returns a copy of the resolved options.
func (m *Matcher[T]) Options() Options {
	return m.opts
}
