package parser

import (
	"strings"

	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/syntax"
)

var addRouter = router{
	verb: command.WordAdd,
	parsers: map[command.SecondWord]parseFunc{
		command.SecondContact:       parseAddContact,
		command.SecondActivity:      parseAddActivity,
		command.SecondAccommodation: parseAddAccommodation,
		command.SecondDay:           parseAddDay,
	},
}

func parseAddContact(args string) (command.Command, error) {
	m, err := requirePrefixes(args, command.AddContactUsage,
		[]syntax.Prefix{syntax.PrefixName, syntax.PrefixPhone, syntax.PrefixEmail, syntax.PrefixAddress},
		syntax.PrefixTag)
	if err != nil {
		return nil, err
	}
	name, _ := m.Value(syntax.PrefixName)
	phone, _ := m.Value(syntax.PrefixPhone)
	email, _ := m.Value(syntax.PrefixEmail)
	address, _ := m.Value(syntax.PrefixAddress)

	contact, err := domain.NewContact(name, phone, email, address, m.AllValues(syntax.PrefixTag))
	if err != nil {
		return nil, invalidValue(err)
	}
	return command.NewAddContactCommand(contact), nil
}

func parseAddActivity(args string) (command.Command, error) {
	m, err := requirePrefixes(args, command.AddActivityUsage,
		[]syntax.Prefix{syntax.PrefixName, syntax.PrefixAddress},
		syntax.PrefixDuration, syntax.PrefixPhone, syntax.PrefixTag)
	if err != nil {
		return nil, err
	}
	name, _ := m.Value(syntax.PrefixName)
	address, _ := m.Value(syntax.PrefixAddress)
	phone, _ := m.Value(syntax.PrefixPhone)

	duration := 0
	if raw, ok := m.Value(syntax.PrefixDuration); ok {
		if duration, err = ParseDuration(raw); err != nil {
			return nil, err
		}
	}

	activity, err := domain.NewActivity(name, address, phone, duration, m.AllValues(syntax.PrefixTag))
	if err != nil {
		return nil, invalidValue(err)
	}
	return command.NewAddActivityCommand(activity), nil
}

func parseAddAccommodation(args string) (command.Command, error) {
	m, err := requirePrefixes(args, command.AddAccommodationUsage,
		[]syntax.Prefix{syntax.PrefixName, syntax.PrefixAddress},
		syntax.PrefixPhone, syntax.PrefixTag)
	if err != nil {
		return nil, err
	}
	name, _ := m.Value(syntax.PrefixName)
	address, _ := m.Value(syntax.PrefixAddress)
	phone, _ := m.Value(syntax.PrefixPhone)

	accommodation, err := domain.NewAccommodation(name, address, phone, m.AllValues(syntax.PrefixTag))
	if err != nil {
		return nil, invalidValue(err)
	}
	return command.NewAddAccommodationCommand(accommodation), nil
}

func parseAddDay(args string) (command.Command, error) {
	raw, err := requirePreambleOnly(args, command.AddDayUsage)
	if err != nil {
		return nil, err
	}
	n, err := ParseDayCount(raw)
	if err != nil {
		return nil, err
	}
	return command.NewAddDayCommand(n), nil
}

var deleteRouter = router{
	verb: command.WordDelete,
	parsers: map[command.SecondWord]parseFunc{
		command.SecondContact:       deleteParser(command.SecondContact),
		command.SecondActivity:      deleteParser(command.SecondActivity),
		command.SecondAccommodation: deleteParser(command.SecondAccommodation),
		command.SecondDay:           deleteParser(command.SecondDay),
	},
}

func deleteParser(target command.SecondWord) parseFunc {
	return func(args string) (command.Command, error) {
		raw, err := requirePreambleOnly(args, command.DeleteUsage)
		if err != nil {
			return nil, err
		}
		idx, err := ParseIndex(raw)
		if err != nil {
			return nil, &ParseError{Message: invalidFormat(command.DeleteUsage).Message, Err: err}
		}
		return command.NewDeleteCommand(target, idx), nil
	}
}

var listRouter = router{
	verb: command.WordList,
	parsers: map[command.SecondWord]parseFunc{
		command.SecondContact:       listParser(command.SecondContact),
		command.SecondActivity:      listParser(command.SecondActivity),
		command.SecondAccommodation: listParser(command.SecondAccommodation),
		command.SecondDay:           listParser(command.SecondDay),
	},
}

func listParser(target command.SecondWord) parseFunc {
	return func(args string) (command.Command, error) {
		if strings.TrimSpace(args) != "" {
			return nil, invalidFormat(command.ListUsage)
		}
		return command.NewListCommand(target), nil
	}
}

var findRouter = router{
	verb: command.WordFind,
	parsers: map[command.SecondWord]parseFunc{
		command.SecondContact:       findParser(command.SecondContact),
		command.SecondActivity:      findParser(command.SecondActivity),
		command.SecondAccommodation: findParser(command.SecondAccommodation),
	},
}

func findParser(target command.SecondWord) parseFunc {
	return func(args string) (command.Command, error) {
		raw, err := requirePreambleOnly(args, command.FindUsage)
		if err != nil {
			return nil, err
		}
		return command.NewFindCommand(target, strings.Fields(raw)), nil
	}
}
