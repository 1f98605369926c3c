package parser

import (
	"strings"

	"github.com/cristianoliveira/trip-planner/internal/command"
)

// Parser turns input lines into commands. The zero value is ready to use.
type Parser struct{}

// New returns a Parser.
func New() *Parser {
	return &Parser{}
}

var verbs = map[string]parseFunc{
	command.WordAdd:        addRouter.parse,
	command.WordDelete:     deleteRouter.parse,
	command.WordSchedule:   scheduleRouter.parse,
	command.WordUnschedule: unscheduleRouter.parse,
	command.WordList:       listRouter.parse,
	command.WordFind:       findRouter.parse,
	command.WordClear:      noArgs(func() command.Command { return command.NewClearCommand() }),
	command.WordUndo:       noArgs(func() command.Command { return command.NewUndoCommand() }),
	command.WordRedo:       noArgs(func() command.Command { return command.NewRedoCommand() }),
	command.WordHelp:       noArgs(func() command.Command { return command.NewHelpCommand() }),
	command.WordExit:       noArgs(func() command.Command { return command.NewExitCommand() }),
}

// routers lists every two-word verb.
var routers = []router{addRouter, deleteRouter, scheduleRouter, unscheduleRouter, listRouter, findRouter}

// Parse parses one input line. Every error is a *ParseError.
func (p *Parser) Parse(input string) (command.Command, error) {
	match := routeFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return nil, invalidFormat(command.HelpUsage)
	}
	parse, ok := verbs[match[1]]
	if !ok {
		return nil, unknownCommand()
	}
	return parse(match[2])
}

// noArgs builds a parser for single-word commands. Trailing text is ignored.
func noArgs(build func() command.Command) parseFunc {
	return func(string) (command.Command, error) {
		return build(), nil
	}
}
