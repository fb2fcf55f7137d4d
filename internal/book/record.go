package book

import (
	"fmt"
	"strings"
)

// Record is a single contact: a name, phone numbers in insertion order,
// and at most one birthday. Names are free-form and never validated.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with the given name and no phones or birthday.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the contact's name.
func (r *Record) Name() string { return r.name }

// Phones returns the contact's phone numbers in insertion order.
func (r *Record) Phones() []Phone { return r.phones }

// Birthday returns the contact's birthday, or nil if none is set.
func (r *Record) Birthday() *Birthday { return r.birthday }

// AddPhone validates raw and appends it to the phone list.
// Duplicates are allowed. A failed validation leaves the list unchanged.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to raw.
// A missing number is a no-op, not an error.
func (r *Record) RemovePhone(raw string) {
	for i, p := range r.phones {
		if p.String() == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces the first phone equal to oldRaw with newRaw.
// newRaw is validated before any mutation. A missing oldRaw is a no-op;
// callers that need to distinguish must check the phone list first.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	for i, old := range r.phones {
		if old.String() == oldRaw {
			r.phones[i] = p
			return nil
		}
	}
	return nil
}

// SetBirthday validates raw and overwrites any existing birthday.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// String renders the record for display. The format is not parsed back.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	birthday := "none"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
