package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cristianoliveira/trip-planner/internal/command"
)

// parseFunc builds a command from the arguments that follow the command words.
type parseFunc func(args string) (command.Command, error)

var routeFormat = regexp.MustCompile(`(?s)^(\S+)(.*)$`)

// router dispatches on the second command word of a verb.
type router struct {
	verb    string
	parsers map[command.SecondWord]parseFunc
}

// parse splits rest into the second word and its arguments and calls the
// parser registered for that word.
func (r router) parse(rest string) (command.Command, error) {
	match := routeFormat.FindStringSubmatch(strings.TrimSpace(rest))
	if match == nil {
		return nil, invalidFormat(command.HelpUsage)
	}
	parse, ok := r.parsers[command.SecondWord(match[1])]
	if !ok {
		return nil, invalidFormat(command.HelpUsage)
	}
	return parse(match[2])
}

// secondWords returns the registered second words in sorted order.
func (r router) secondWords() []command.SecondWord {
	words := make([]command.SecondWord, 0, len(r.parsers))
	for w := range r.parsers {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool { return words[i] < words[j] })
	return words
}
