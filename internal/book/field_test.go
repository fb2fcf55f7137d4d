package book

import (
	"errors"
	"testing"
	"time"
)

func TestNewPhone_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain digits", raw: "1234567890"},
		{name: "leading zeros", raw: "0001234567"},
		{name: "all zeros", raw: "0000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.raw)
			if err != nil {
				t.Fatalf("NewPhone(%q) error = %v", tt.raw, err)
			}
			if p.String() != tt.raw {
				t.Errorf("String() = %q, want %q", p.String(), tt.raw)
			}
		})
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "too short", raw: "123456789"},
		{name: "too long", raw: "12345678901"},
		{name: "letters", raw: "12345abcde"},
		{name: "symbols", raw: "123-456-78"},
		{name: "spaces", raw: "123 456 78"},
		{name: "unicode digits", raw: "１２３４５６７８９０"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPhone(tt.raw)
			if err == nil {
				t.Fatalf("NewPhone(%q) should fail", tt.raw)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %T, want *FormatError", err)
			}
			if fe.Reason != "Invalid phone number format." {
				t.Errorf("reason = %q, want %q", fe.Reason, "Invalid phone number format.")
			}
		})
	}
}

func TestNewBirthday_Valid(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		month time.Month
		day   int
	}{
		{name: "ordinary date", raw: "15.03.1990", month: time.March, day: 15},
		{name: "leap day", raw: "29.02.2024", month: time.February, day: 29},
		{name: "year end", raw: "31.12.2000", month: time.December, day: 31},
		{name: "zero padded", raw: "01.01.1970", month: time.January, day: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.raw)
			if err != nil {
				t.Fatalf("NewBirthday(%q) error = %v", tt.raw, err)
			}
			if b.String() != tt.raw {
				t.Errorf("String() = %q, want round-trip %q", b.String(), tt.raw)
			}
			if b.Month() != tt.month || b.Day() != tt.day {
				t.Errorf("parsed = %v %d, want %v %d", b.Month(), b.Day(), tt.month, tt.day)
			}
		})
	}
}

func TestNewBirthday_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "unpadded day", raw: "1.03.1990"},
		{name: "unpadded month", raw: "15.3.1990"},
		{name: "two digit year", raw: "15.03.90"},
		{name: "slashes", raw: "15/03/1990"},
		{name: "iso order", raw: "1990.03.15"},
		{name: "day overflow", raw: "31.04.2023"},
		{name: "non leap feb 29", raw: "29.02.2023"},
		{name: "month overflow", raw: "15.13.1990"},
		{name: "garbage", raw: "aa.bb.cccc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBirthday(tt.raw)
			if err == nil {
				t.Fatalf("NewBirthday(%q) should fail", tt.raw)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %T, want *FormatError", err)
			}
		})
	}
}
