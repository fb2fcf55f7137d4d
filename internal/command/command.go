// Package command parses user input lines and dispatches them against an
// address book, turning validation failures into user-facing "Error:" lines.
package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
)

// invalidReply is the reply for an unrecognized command word.
const invalidReply = "Invalid command."

// helpText lists every command the dispatcher understands.
const helpText = `Commands:
  hello                          Greet the assistant.
  add <name> <phone>             Add a contact (replaces an existing one).
  change <name> <phone>          Replace the contact's first phone number.
  phone <name>                   Show the contact's first phone number.
  remove-phone <name> <phone>    Remove a phone number from a contact.
  all                            List every contact.
  add-birthday <name> <date>     Set a birthday (DD.MM.YYYY).
  show-birthday <name>           Show a contact's birthday.
  birthdays                      List birthdays in the upcoming week.
  delete <name>                  Delete a contact.
  help                           Show this help.
  exit | close                   Leave the assistant.`

// Parse splits an input line into a lowercased command word and its
// arguments. A blank line yields an empty command word.
func Parse(line string) (cmd string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Dispatcher executes parsed command lines against an address book.
// The time source is injectable so birthday-window replies are testable.
type Dispatcher struct {
	book     *book.Book
	clock    func() time.Time
	farewell string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock overrides the time source used by the birthdays command.
func WithClock(clock func() time.Time) Option {
	return func(d *Dispatcher) {
		d.clock = clock
	}
}

// WithFarewell overrides the reply to the exit and close commands.
func WithFarewell(farewell string) Option {
	return func(d *Dispatcher) {
		d.farewell = farewell
	}
}

// NewDispatcher creates a Dispatcher over the given book.
func NewDispatcher(b *book.Book, opts ...Option) *Dispatcher {
	d := &Dispatcher{book: b, clock: time.Now, farewell: "Good bye!"}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Execute runs one input line and returns the reply text plus whether the
// session should end. All failures come back as "Error: <message>" replies;
// Execute itself never returns an error.
func (d *Dispatcher) Execute(line string) (reply string, quit bool) {
	cmd, args := Parse(line)
	switch cmd {
	case "":
		return "", false
	case "exit", "close":
		return d.farewell, true
	case "hello":
		return "How can I help you?", false
	case "help":
		return helpText, false
	}

	reply, err := d.run(cmd, args)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), false
	}
	return reply, false
}

// run routes a book-touching command to its handler.
func (d *Dispatcher) run(cmd string, args []string) (string, error) {
	switch cmd {
	case "add":
		return d.add(args)
	case "change":
		return d.change(args)
	case "phone":
		return d.phone(args)
	case "remove-phone":
		return d.removePhone(args)
	case "all":
		return d.all(), nil
	case "add-birthday":
		return d.addBirthday(args)
	case "show-birthday":
		return d.showBirthday(args)
	case "birthdays":
		return d.birthdays(), nil
	case "delete":
		return d.deleteContact(args)
	default:
		return invalidReply, nil
	}
}

// errUsage builds the arity-failure message shown when a command is missing
// arguments, e.g. "Invalid command. Please provide both name and phone."
func errUsage(what string) error {
	return fmt.Errorf("Invalid command. Please provide %s.", what)
}

// errNotFound builds the missing-contact message for the given name.
func errNotFound(name string) error {
	return fmt.Errorf("Contact with name '%s' not found.", name)
}

func (d *Dispatcher) add(args []string) (string, error) {
	if len(args) != 2 {
		return "", errUsage("both name and phone")
	}
	rec := book.NewRecord(args[0])
	if err := rec.AddPhone(args[1]); err != nil {
		return "", err
	}
	// Adding an existing name replaces the whole record.
	d.book.Add(rec)
	return fmt.Sprintf("Contact added: %s", rec), nil
}

func (d *Dispatcher) change(args []string) (string, error) {
	if len(args) != 2 {
		return "", errUsage("both name and phone")
	}
	name, phone := args[0], args[1]
	rec, ok := d.book.Find(name)
	if !ok {
		return "", errNotFound(name)
	}
	if len(rec.Phones()) == 0 {
		return "", fmt.Errorf("Contact '%s' has no phone number to change.", name)
	}
	if err := rec.EditPhone(rec.Phones()[0].String(), phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact updated: %s", rec), nil
}

func (d *Dispatcher) phone(args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage("the name")
	}
	name := args[0]
	rec, ok := d.book.Find(name)
	if !ok {
		return "", errNotFound(name)
	}
	if len(rec.Phones()) == 0 {
		return "", fmt.Errorf("Contact '%s' has no phone number.", name)
	}
	return fmt.Sprintf("Phone for %s: %s", name, rec.Phones()[0]), nil
}

func (d *Dispatcher) removePhone(args []string) (string, error) {
	if len(args) != 2 {
		return "", errUsage("both name and phone")
	}
	name, phone := args[0], args[1]
	rec, ok := d.book.Find(name)
	if !ok {
		return "", errNotFound(name)
	}
	rec.RemovePhone(phone)
	return fmt.Sprintf("Contact updated: %s", rec), nil
}

func (d *Dispatcher) all() string {
	records := d.book.All()
	if len(records) == 0 {
		return "No contacts available."
	}
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.String()
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", errUsage("both name and birthday")
	}
	name, birthday := args[0], args[1]
	rec, ok := d.book.Find(name)
	if !ok {
		return "", errNotFound(name)
	}
	if err := rec.SetBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s: %s", name, rec.Birthday()), nil
}

func (d *Dispatcher) showBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage("the name")
	}
	name := args[0]
	rec, ok := d.book.Find(name)
	if !ok {
		return "", errNotFound(name)
	}
	if rec.Birthday() == nil {
		return fmt.Sprintf("Birthday for %s: none", name), nil
	}
	return fmt.Sprintf("Birthday for %s: %s", name, rec.Birthday()), nil
}

func (d *Dispatcher) birthdays() string {
	upcoming := d.book.UpcomingBirthdays(d.clock())
	if len(upcoming) == 0 {
		return "No upcoming birthdays in the next week."
	}
	return "Upcoming birthdays:\n" + strings.Join(upcoming, "\n")
}

func (d *Dispatcher) deleteContact(args []string) (string, error) {
	if len(args) != 1 {
		return "", errUsage("the name")
	}
	name := args[0]
	if _, ok := d.book.Find(name); !ok {
		return "", errNotFound(name)
	}
	d.book.Delete(name)
	return fmt.Sprintf("Contact deleted: %s", name), nil
}
