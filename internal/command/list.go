package command

import (
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/search"
)

const (
	MessageListSuccess = "Listed all %ss"
	MessageFindSuccess = "%d %s(s) listed!"
)

// ListUsage describes the "list" command word.
var ListUsage = WordList + ": Shows every entry of a list and clears any filter.\n" +
	"Parameters: contact|activity|accommodation|day\n" +
	"Example: " + WordList + " " + string(SecondContact)

// FindUsage describes the "find" command word.
var FindUsage = WordFind + ": Shows the entries whose names contain any of the keywords (case-insensitive).\n" +
	"Parameters: contact|activity|accommodation KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: " + WordFind + " " + string(SecondActivity) + " safari zoo"

// ListCommand clears the filter of one list.
type ListCommand struct {
	target SecondWord
}

func NewListCommand(target SecondWord) *ListCommand {
	return &ListCommand{target: target}
}

func (c *ListCommand) Word() (string, SecondWord) { return WordList, c.target }
func (c *ListCommand) Kind() Kind                 { return KindReadOnly }

func (c *ListCommand) Execute(m Model) (*Result, error) {
	switch c.target {
	case SecondContact:
		m.FilterContacts(nil)
		return NewResult(fmt.Sprintf(MessageListSuccess, c.target), FocusContact), nil
	case SecondActivity:
		m.FilterActivities(nil)
		return NewResult(fmt.Sprintf(MessageListSuccess, c.target), FocusActivity), nil
	case SecondAccommodation:
		m.FilterAccommodations(nil)
		return NewResult(fmt.Sprintf(MessageListSuccess, c.target), FocusAccommodation), nil
	case SecondDay:
		return NewResult(fmt.Sprintf(MessageListSuccess, c.target), FocusAgenda), nil
	default:
		return nil, fmt.Errorf("list: unsupported target %q", c.target)
	}
}

func (c *ListCommand) Equal(other Command) bool {
	o, ok := other.(*ListCommand)
	return ok && c.target == o.target
}

// FindCommand filters one list by name keywords.
type FindCommand struct {
	target   SecondWord
	keywords []string
}

// NewFindCommand creates a find command. keywords must not be empty.
func NewFindCommand(target SecondWord, keywords []string) *FindCommand {
	kw := make([]string, len(keywords))
	copy(kw, keywords)
	return &FindCommand{target: target, keywords: kw}
}

func (c *FindCommand) Word() (string, SecondWord) { return WordFind, c.target }
func (c *FindCommand) Kind() Kind                 { return KindReadOnly }

func (c *FindCommand) Execute(m Model) (*Result, error) {
	switch c.target {
	case SecondContact:
		m.FilterContacts(func(x domain.Contact) bool { return NameMatches(x.Name, c.keywords) })
		return NewResult(fmt.Sprintf(MessageFindSuccess, len(m.Contacts()), c.target), FocusContact), nil
	case SecondActivity:
		m.FilterActivities(func(x domain.Activity) bool { return NameMatches(x.Name, c.keywords) })
		return NewResult(fmt.Sprintf(MessageFindSuccess, len(m.Activities()), c.target), FocusActivity), nil
	case SecondAccommodation:
		m.FilterAccommodations(func(x domain.Accommodation) bool { return NameMatches(x.Name, c.keywords) })
		return NewResult(fmt.Sprintf(MessageFindSuccess, len(m.Accommodations()), c.target), FocusAccommodation), nil
	default:
		return nil, fmt.Errorf("find: unsupported target %q", c.target)
	}
}

func (c *FindCommand) Equal(other Command) bool {
	o, ok := other.(*FindCommand)
	if !ok || c.target != o.target || len(c.keywords) != len(o.keywords) {
		return false
	}
	for i := range c.keywords {
		if c.keywords[i] != o.keywords[i] {
			return false
		}
	}
	return true
}

var nameMatcher = search.NewWordProvider(search.WithCaseInsensitive(true))

// NameMatches reports whether any word of name equals any keyword, ignoring case.
func NameMatches(name string, keywords []string) bool {
	return nameMatcher.Match(name, keywords)
}
