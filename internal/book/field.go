// Package book implements the in-memory contact store: validated fields,
// contact records, and the address book with its upcoming-birthday query.
package book

import (
	"regexp"
	"time"
)

// birthdayLayout is the only accepted birthday format (DD.MM.YYYY).
const birthdayLayout = "02.01.2006"

// birthdayPattern enforces zero padding; time.Parse alone would accept "2.1.2006".
var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// FormatError reports a raw field value that violates its format rule.
// The reason is user-facing: callers match with errors.As and print it verbatim.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return e.Reason }

// Phone is a phone number of exactly 10 ASCII digits.
// The zero value is invalid; construct through NewPhone.
type Phone struct {
	value string
}

// NewPhone validates raw as a 10-digit number.
// Leading zeros are fine; anything non-digit or of another length fails.
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, &FormatError{Reason: "Invalid phone number format."}
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date parsed strictly as DD.MM.YYYY.
// It keeps the raw string so rendering round-trips exactly.
type Birthday struct {
	raw  string
	date time.Time
}

// NewBirthday validates raw against the DD.MM.YYYY pattern and the calendar,
// so "31.04.2023" and "29.02.2023" fail while "29.02.2024" succeeds.
func NewBirthday(raw string) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, &FormatError{Reason: "Invalid birthday format. Use DD.MM.YYYY."}
	}
	date, err := time.Parse(birthdayLayout, raw)
	if err != nil {
		return Birthday{}, &FormatError{Reason: "Invalid birthday format. Use DD.MM.YYYY."}
	}
	return Birthday{raw: raw, date: date}, nil
}

// String returns the birthday exactly as it was entered.
func (b Birthday) String() string { return b.raw }

// Month returns the calendar month of the birthday.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of the month of the birthday.
func (b Birthday) Day() int { return b.date.Day() }
