package syntax

import (
	"strings"
	"unicode"
)

// ArgumentMultimap holds the values found after each prefix, in input order,
// and the preamble that appears before the first prefix.
type ArgumentMultimap struct {
	values   map[Prefix][]string
	preamble string
}

// Value returns the last value given for prefix.
func (m *ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	values := m.values[prefix]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// AllValues returns every value given for prefix, in input order.
func (m *ArgumentMultimap) AllValues(prefix Prefix) []string {
	values := m.values[prefix]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Has reports whether every prefix has at least one value.
func (m *ArgumentMultimap) Has(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(m.values[p]) == 0 {
			return false
		}
	}
	return true
}

// Preamble returns the text before the first recognized prefix.
func (m *ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Tokenize splits args into prefixed values.
//
// The scan walks whitespace-delimited tokens once. A token that starts with a
// recognized prefix closes the current value and opens a new one; the longest
// matching prefix wins. A prefix in the middle of a token is plain text.
// Values keep their inner whitespace and are trimmed at both ends.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	m := &ArgumentMultimap{values: make(map[Prefix][]string)}
	for _, sp := range scan(args, prefixes) {
		value := strings.TrimSpace(args[sp.start:sp.end])
		if sp.preamble {
			m.preamble = value
			continue
		}
		m.values[sp.prefix] = append(m.values[sp.prefix], value)
	}
	return m
}

// Mask replaces the values of the sensitive prefixes in line with mask. Every
// known prefix delimits values, so "p/123 n/Ann" masks only the phone.
// Everything else, spacing included, is kept.
func Mask(line, mask string, sensitive ...Prefix) string {
	var b strings.Builder
	last := 0
	for _, sp := range scan(line, AllPrefixes) {
		if sp.preamble || !contains(sensitive, sp.prefix) {
			continue
		}
		raw := line[sp.start:sp.end]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lead := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
		b.WriteString(line[last : sp.start+lead])
		b.WriteString(mask)
		last = sp.start + lead + len(trimmed)
	}
	b.WriteString(line[last:])
	return b.String()
}

// span is one untrimmed value: args[start:end], found after prefix or, for
// the preamble, before the first prefix.
type span struct {
	prefix   Prefix
	preamble bool
	start    int
	end      int
}

func scan(args string, prefixes []Prefix) []span {
	spans := make([]span, 0, 4)
	current := span{preamble: true}
	inToken := false

	for i, r := range args {
		if unicode.IsSpace(r) {
			inToken = false
			continue
		}
		if inToken {
			continue
		}
		inToken = true

		prefix, ok := longestPrefixAt(args[i:], prefixes)
		if !ok {
			continue
		}
		current.end = i
		spans = append(spans, current)
		current = span{prefix: prefix, start: i + len(prefix)}
	}
	current.end = len(args)
	return append(spans, current)
}

func contains(prefixes []Prefix, p Prefix) bool {
	for _, q := range prefixes {
		if q == p {
			return true
		}
	}
	return false
}

func longestPrefixAt(s string, prefixes []Prefix) (Prefix, bool) {
	var best Prefix
	for _, p := range prefixes {
		if p == "" || !strings.HasPrefix(s, string(p)) {
			continue
		}
		if len(p) > len(best) {
			best = p
		}
	}
	return best, best != ""
}
