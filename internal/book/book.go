package book

import (
	"fmt"
	"time"
)

// Book is the in-memory address book, keyed by exact contact name.
// A names slice tracks insertion order so listing and the birthday query
// iterate deterministically; replacing a record keeps its original position.
type Book struct {
	records map[string]*Record
	names   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts the record under its name. An existing record with the same
// name is replaced wholesale: last write wins, phone lists are never merged.
func (b *Book) Add(r *Record) {
	if _, ok := b.records[r.name]; !ok {
		b.names = append(b.names, r.name)
	}
	b.records[r.name] = r
}

// Find looks up a record by exact, case-sensitive name.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record under name. A missing name is a no-op.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			return
		}
	}
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// All returns every record in insertion order.
func (b *Book) All() []*Record {
	out := make([]*Record, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, b.records[name])
	}
	return out
}

// UpcomingBirthdays returns "name: DD.MM.YYYY" entries for every contact
// whose birthday falls in the seven-day window that follows today's week.
// The window starts (6-wd)+7 days after today, where wd is the Monday-based
// weekday of today, and both bounds are inclusive.
//
// Each stored birthday is re-anchored to the window's year before the range
// check; the stored birth year itself never matches a current-year window.
// Feb 29 birthdays normalize to Mar 1 in non-leap years. Entries follow
// book insertion order.
func (b *Book) UpcomingBirthdays(today time.Time) []string {
	start := windowStart(today)
	end := start.AddDate(0, 0, 6)

	var upcoming []string
	for _, name := range b.names {
		rec := b.records[name]
		if rec.birthday == nil {
			continue
		}
		if birthdayInWindow(*rec.birthday, start, end) {
			upcoming = append(upcoming, fmt.Sprintf("%s: %s", name, rec.birthday))
		}
	}
	return upcoming
}

// windowStart computes the first day of the upcoming-birthday window,
// truncating today to a bare calendar date first.
func windowStart(today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	wd := (int(day.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	return day.AddDate(0, 0, (6-wd)+7)
}

// birthdayInWindow reports whether the birthday's month and day, re-anchored
// to the window's year, fall within [start, end]. Both years are tried when
// the window crosses a year boundary.
func birthdayInWindow(bd Birthday, start, end time.Time) bool {
	years := []int{start.Year()}
	if end.Year() != start.Year() {
		years = append(years, end.Year())
	}
	for _, year := range years {
		anchored := time.Date(year, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		if !anchored.Before(start) && !anchored.After(end) {
			return true
		}
	}
	return false
}
