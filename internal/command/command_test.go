package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/trip-planner/internal/command"
	"github.com/cristianoliveira/trip-planner/internal/domain"
	"github.com/cristianoliveira/trip-planner/internal/model"
)

// MockContactModel mocks the contact capability. Calls outside it panic.
type MockContactModel struct {
	command.Model
	mock.Mock
}

func (m *MockContactModel) HasContact(c domain.Contact) bool {
	args := m.Called(c)
	return args.Bool(0)
}

func (m *MockContactModel) AddContact(c domain.Contact) {
	m.Called(c)
}

func (m *MockContactModel) ContactIndex(c domain.Contact) (domain.Index, bool) {
	args := m.Called(c)
	return args.Get(0).(domain.Index), args.Bool(1)
}

func newContact(t *testing.T, name string) domain.Contact {
	t.Helper()
	c, err := domain.NewContact(name, "98765432", "johnd@example.com", "311, Clementi Ave 2, #02-25", []string{"friends"})
	require.NoError(t, err)
	return c
}

func newActivity(t *testing.T, name string, duration int) domain.Activity {
	t.Helper()
	a, err := domain.NewActivity(name, "80 Mandai Lake Rd", "", duration, nil)
	require.NoError(t, err)
	return a
}

func mustTime(t *testing.T, s string) domain.TimeInHalfHour {
	t.Helper()
	tm, err := domain.ParseTimeInHalfHour(s)
	require.NoError(t, err)
	return tm
}

func requireCommandError(t *testing.T, err error, message string) *command.Error {
	t.Helper()
	var cmdErr *command.Error
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, message, cmdErr.Message)
	return cmdErr
}

func TestAddContactWithMock(t *testing.T) {
	c := newContact(t, "John Doe")
	m := new(MockContactModel)
	m.On("HasContact", c).Return(false)
	m.On("AddContact", c).Return()
	m.On("ContactIndex", c).Return(domain.MustIndex(4), true)

	res, err := command.NewAddContactCommand(c).Execute(m)
	require.NoError(t, err)

	assert.Equal(t, "New contact added: "+c.String(), res.Message)
	assert.Equal(t, []command.UIFocus{command.FocusContact, command.FocusInfo}, res.Focus)
	require.NotNil(t, res.Info)
	assert.Equal(t, c, res.Info.Entity)
	assert.Equal(t, 4, res.Info.Index.OneBased())
	m.AssertExpectations(t)
}

func TestAddContactDuplicateDoesNotAdd(t *testing.T) {
	c := newContact(t, "John Doe")
	m := new(MockContactModel)
	m.On("HasContact", c).Return(true)

	_, err := command.NewAddContactCommand(c).Execute(m)
	cmdErr := requireCommandError(t, err, command.MessageDuplicateContact)
	assert.ErrorIs(t, cmdErr, command.ErrDuplicateEntity)
	m.AssertNotCalled(t, "AddContact", mock.Anything)
}

func TestAddContactTwice(t *testing.T) {
	m := model.NewManager()
	cmd := command.NewAddContactCommand(newContact(t, "John Doe"))

	_, err := cmd.Execute(m)
	require.NoError(t, err)
	_, err = cmd.Execute(m)
	requireCommandError(t, err, command.MessageDuplicateContact)
	assert.Len(t, m.Contacts(), 1)
}

func TestAddContactAtIndex(t *testing.T) {
	m := model.NewManager()
	alice, bob := newContact(t, "Alice"), newContact(t, "Bob")
	m.AddContact(alice)

	res, err := command.NewAddContactAtCommand(domain.MustIndex(1), bob).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Info.Index.OneBased())
	assert.Equal(t, []domain.Contact{bob, alice}, m.Contacts())

	_, err = command.NewAddContactAtCommand(domain.MustIndex(9), newContact(t, "Carol")).Execute(m)
	requireCommandError(t, err, command.MessageInvalidIndex)
}

func TestAddActivityAndAccommodation(t *testing.T) {
	m := model.NewManager()
	zoo := newActivity(t, "Night Safari", 150)

	res, err := command.NewAddActivityCommand(zoo).Execute(m)
	require.NoError(t, err)
	assert.True(t, res.HasFocus(command.FocusActivity))
	assert.Equal(t, zoo, res.Info.Entity)

	_, err = command.NewAddActivityCommand(zoo).Execute(m)
	requireCommandError(t, err, command.MessageDuplicateActivity)

	hotel, err := domain.NewAccommodation("Marina Bay Sands", "10 Bayfront Ave", "66888868", nil)
	require.NoError(t, err)
	res, err = command.NewAddAccommodationCommand(hotel).Execute(m)
	require.NoError(t, err)
	assert.True(t, res.HasFocus(command.FocusAccommodation))

	_, err = command.NewAddAccommodationCommand(hotel).Execute(m)
	requireCommandError(t, err, command.MessageDuplicateAccommodation)
}

func TestAddDay(t *testing.T) {
	m := model.NewManager()

	res, err := command.NewAddDayCommand(3).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "3 day(s) added", res.Message)
	assert.Equal(t, []command.UIFocus{command.FocusAgenda}, res.Focus)
	assert.Len(t, m.Days(), 3)

	_, err = command.NewAddDayCommand(0).Execute(m)
	require.NoError(t, err)
	assert.Len(t, m.Days(), 3)
}

func TestAddDayStopsAtMaxDays(t *testing.T) {
	m := model.NewManager()
	m.AddDays(domain.MaxDays - 3)

	_, err := command.NewAddDayCommand(4).Execute(m)
	cmdErr := requireCommandError(t, err, "The itinerary cannot be longer than 1000 days")
	assert.ErrorIs(t, cmdErr, domain.ErrTooManyDays)
	assert.Len(t, m.Days(), domain.MaxDays-3)

	_, err = command.NewAddDayCommand(3).Execute(m)
	require.NoError(t, err)
	assert.Len(t, m.Days(), domain.MaxDays)
}

func TestCommandEquality(t *testing.T) {
	c := newContact(t, "John Doe")

	assert.True(t, command.NewAddDayCommand(2).Equal(command.NewAddDayCommand(2)))
	assert.False(t, command.NewAddDayCommand(2).Equal(command.NewAddDayCommand(3)))
	assert.False(t, command.NewAddDayCommand(2).Equal(command.NewAddContactCommand(c)))

	assert.True(t, command.NewAddContactCommand(c).Equal(command.NewAddContactCommand(c)))
	assert.False(t, command.NewAddContactCommand(c).Equal(command.NewAddContactAtCommand(domain.MustIndex(1), c)))

	assert.True(t, command.NewFindCommand(command.SecondContact, []string{"a", "b"}).
		Equal(command.NewFindCommand(command.SecondContact, []string{"a", "b"})))
	assert.False(t, command.NewFindCommand(command.SecondContact, []string{"a"}).
		Equal(command.NewFindCommand(command.SecondActivity, []string{"a"})))
	assert.True(t, command.NewUndoCommand().Equal(command.NewUndoCommand()))
	assert.False(t, command.NewUndoCommand().Equal(command.NewRedoCommand()))
}

func TestCommandKinds(t *testing.T) {
	tests := []struct {
		cmd  command.Command
		kind command.Kind
	}{
		{command.NewAddDayCommand(1), command.KindMutating},
		{command.NewDeleteCommand(command.SecondDay, domain.MustIndex(1)), command.KindMutating},
		{command.NewClearCommand(), command.KindMutating},
		{command.NewListCommand(command.SecondContact), command.KindReadOnly},
		{command.NewHelpCommand(), command.KindReadOnly},
		{command.NewExitCommand(), command.KindReadOnly},
		{command.NewUndoCommand(), command.KindHistory},
		{command.NewRedoCommand(), command.KindHistory},
	}
	for _, tt := range tests {
		word, _ := tt.cmd.Word()
		assert.Equal(t, tt.kind, tt.cmd.Kind(), word)
	}
}
