package logging

import (
	"regexp"
	"strings"

	"github.com/cristianoliveira/trip-planner/internal/syntax"
)

const redacted = "[REDACTED]"

var (
	// keySeparator splits keys such as "contact_phone" into segments.
	keySeparator = regexp.MustCompile(`[^a-z0-9]+`)

	// Entity descriptions read "Name Phone: 123 Email: x@y Address: ... Tags: ...".
	// A labelled value runs until the next label or the end of the message.
	entityLabel = regexp.MustCompile(` (Phone|Email|Address|Duration|Tags): `)
)

// redactor keeps personal contact data out of log files. Values under
// personal keys are replaced, command lines have their p/ e/ a/ values
// masked, and entity descriptions in messages lose their phone, email and
// address.
type redactor struct {
	personalKeys map[string]bool
	lineKeys     map[string]bool
	masked       []syntax.Prefix
	maskedLabels map[string]bool
}

func newRedactor() *redactor {
	return &redactor{
		personalKeys: map[string]bool{"phone": true, "email": true, "address": true},
		lineKeys:     map[string]bool{"input": true, "line": true},
		masked:       []syntax.Prefix{syntax.PrefixPhone, syntax.PrefixEmail, syntax.PrefixAddress},
		maskedLabels: map[string]bool{"Phone": true, "Email": true, "Address": true},
	}
}

// redact returns a copy of the flattened key-value pairs with personal
// values replaced. The original slice is not modified.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		switch segments := keySegments(key); {
		case r.hasAny(segments, r.personalKeys):
			result[i+1] = redacted
		case r.hasAny(segments, r.lineKeys):
			if line, ok := result[i+1].(string); ok {
				result[i+1] = syntax.Mask(line, redacted, r.masked...)
			}
		}
	}
	return result
}

// redactMessage masks the personal fields of entity descriptions in msg.
func (r *redactor) redactMessage(msg string) string {
	labels := entityLabel.FindAllStringSubmatchIndex(msg, -1)
	if len(labels) == 0 {
		return msg
	}
	var b strings.Builder
	last := 0
	for i, loc := range labels {
		if !r.maskedLabels[msg[loc[2]:loc[3]]] {
			continue
		}
		valueEnd := len(msg)
		if i+1 < len(labels) {
			valueEnd = labels[i+1][0]
		}
		b.WriteString(msg[last:loc[1]])
		b.WriteString(redacted)
		last = valueEnd
	}
	b.WriteString(msg[last:])
	return b.String()
}

func (r *redactor) hasAny(segments []string, words map[string]bool) bool {
	for _, s := range segments {
		if words[s] {
			return true
		}
	}
	return false
}

func keySegments(key string) []string {
	return keySeparator.Split(strings.ToLower(key), -1)
}
