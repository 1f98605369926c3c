// Package syntax defines the prefixes of the command language and the
// tokenizer that splits an argument string into prefixed values.
package syntax

// Prefix marks the role of the value that follows it, e.g. "n/" for a name.
type Prefix string

// Prefixes recognized by the command language.
const (
	PrefixName      Prefix = "n/"
	PrefixPhone     Prefix = "p/"
	PrefixEmail     Prefix = "e/"
	PrefixAddress   Prefix = "a/"
	PrefixTag       Prefix = "t/"
	PrefixDuration  Prefix = "du/"
	PrefixStartTime Prefix = "st/"
	PrefixDay       Prefix = "d/"
	PrefixActivity  Prefix = "ac/"
)

// AllPrefixes lists every prefix of the command language.
var AllPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag,
	PrefixDuration, PrefixStartTime, PrefixDay, PrefixActivity,
}

func (p Prefix) String() string {
	return string(p)
}
