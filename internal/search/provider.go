// Package search matches list entries against find keywords.
// It keeps the matching strategy behind a Provider so the find command and
// the shell share one notion of a match.
package search

// Provider decides whether a name matches a set of keywords.
type Provider interface {
	// Match returns true if name matches at least one keyword.
	Match(name string, keywords []string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool // If true, searches ignore case sensitivity
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{CaseInsensitive: false}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
