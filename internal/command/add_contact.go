package command

import (
	"fmt"

	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/syntax"
)

const (
	MessageAddContactSuccess = "New contact added: %s"
	MessageDuplicateContact  = "This contact already exists in the contact list"
)

// AddContactUsage describes "add contact".
var AddContactUsage = WordAdd + " " + string(SecondContact) + ": Adds a contact to the contact list. " +
	"Parameters: " +
	syntax.PrefixName.String() + "NAME " +
	syntax.PrefixPhone.String() + "PHONE " +
	syntax.PrefixEmail.String() + "EMAIL " +
	syntax.PrefixAddress.String() + "ADDRESS " +
	"[" + syntax.PrefixTag.String() + "TAG]...\n" +
	"Example: " + WordAdd + " " + string(SecondContact) + " " +
	syntax.PrefixName.String() + "John Doe " +
	syntax.PrefixPhone.String() + "98765432 " +
	syntax.PrefixEmail.String() + "johnd@example.com " +
	syntax.PrefixAddress.String() + "311, Clementi Ave 2, #02-25 " +
	syntax.PrefixTag.String() + "friends " +
	syntax.PrefixTag.String() + "owesMoney"

// AddContactCommand adds a contact to the end of the contact list, or before
// the contact at a given index.
type AddContactCommand struct {
	contact domain.Contact
	index   *domain.Index
}

// NewAddContactCommand creates a command that appends contact.
func NewAddContactCommand(contact domain.Contact) *AddContactCommand {
	return &AddContactCommand{contact: contact}
}

// NewAddContactAtCommand creates a command that inserts contact before the contact at idx.
func NewAddContactAtCommand(idx domain.Index, contact domain.Contact) *AddContactCommand {
	return &AddContactCommand{contact: contact, index: &idx}
}

// Contact returns the contact to add.
func (c *AddContactCommand) Contact() domain.Contact {
	return c.contact
}

func (c *AddContactCommand) Word() (string, SecondWord) { return WordAdd, SecondContact }
func (c *AddContactCommand) Kind() Kind                 { return KindMutating }

func (c *AddContactCommand) Execute(m Model) (*Result, error) {
	if m.HasContact(c.contact) {
		return nil, newError(ErrDuplicateEntity, MessageDuplicateContact)
	}

	if c.index == nil {
		m.AddContact(c.contact)
	} else if err := m.AddContactAtIndex(*c.index, c.contact); err != nil {
		return nil, &Error{Message: MessageInvalidIndex, Err: err}
	}

	idx, ok := m.ContactIndex(c.contact)
	if !ok {
		return nil, fmt.Errorf("add contact: %s missing after insert", c.contact.Name)
	}
	return NewResult(fmt.Sprintf(MessageAddContactSuccess, c.contact), FocusContact, FocusInfo).
		WithInfo(c.contact, idx, c.contact.String()), nil
}

func (c *AddContactCommand) Equal(other Command) bool {
	o, ok := other.(*AddContactCommand)
	if !ok {
		return false
	}
	if (c.index == nil) != (o.index == nil) {
		return false
	}
	if c.index != nil && *c.index != *o.index {
		return false
	}
	return c.contact.Equal(o.contact)
}
