package search

import "strings"

// WordProvider matches whole words. The name is split on whitespace and
// matches when any of its words equals any keyword. Partial words never match.
type WordProvider struct {
	opts Options
}

// NewWordProvider creates a new word search provider.
func NewWordProvider(opts ...Option) Provider {
	return &WordProvider{opts: applyOptions(opts)}
}

// Match returns true if a word of name equals a keyword.
func (p *WordProvider) Match(name string, keywords []string) bool {
	for _, word := range strings.Fields(name) {
		for _, kw := range keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			if p.equal(word, kw) {
				return true
			}
		}
	}
	return false
}

func (p *WordProvider) equal(a, b string) bool {
	if p.opts.CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Name returns the provider name.
func (p *WordProvider) Name() string {
	return "word"
}
