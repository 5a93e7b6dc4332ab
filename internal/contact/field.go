// Package contact holds the validated value types of a contact and the Record
// that groups them.
package contact

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

var (
	phoneRe    = regexp.MustCompile(config.PhonePattern)
	birthdayRe = regexp.MustCompile(config.BirthdayPattern)
)

// Name is the display name and lookup key of a contact.
type Name struct {
	value string
}

// NewName accepts any text that is not blank.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, fmt.Errorf("%s: %w", config.ErrNameEmpty, ErrValidation)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a Ukrainian number in +38XXXXXXXXXX form.
// The zero Phone is the empty "no phone yet" value.
// Phone is comparable and used directly as a set key.
type Phone struct {
	value string
}

// NewPhone validates raw against the phone pattern. The empty string is
// accepted and yields the zero Phone.
func NewPhone(raw string) (Phone, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Phone{}, nil
	}
	if !phoneRe.MatchString(raw) {
		return Phone{}, &FormatError{Field: config.FieldPhone, Value: raw}
	}
	return Phone{value: raw}, nil
}

// IsZero reports whether the phone is the empty placeholder.
func (p Phone) IsZero() bool {
	return p.value == ""
}

func (p Phone) String() string {
	return p.value
}

// Birthday is an optional calendar date. The zero Birthday is unset.
type Birthday struct {
	date time.Time
	set  bool
}

// NewBirthday parses DD/MM/YYYY. The empty string yields an unset Birthday.
func NewBirthday(raw string) (Birthday, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Birthday{}, nil
	}
	if !birthdayRe.MatchString(raw) {
		return Birthday{}, &FormatError{Field: config.FieldDate, Value: raw}
	}
	// time.Parse rejects impossible days such as 31/02.
	t, err := time.Parse(config.DateFormatInput, raw)
	if err != nil {
		return Birthday{}, &FormatError{Field: config.FieldDate, Value: raw}
	}
	return Birthday{date: t, set: true}, nil
}

// BirthdayOf wraps an already parsed date, dropping the time of day.
// Any date is accepted, including 01/01/0001.
func BirthdayOf(t time.Time) Birthday {
	y, m, d := t.Date()
	return Birthday{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), set: true}
}

// IsSet reports whether a date is present.
func (b Birthday) IsSet() bool {
	return b.set
}

// Date returns the birth date at midnight UTC, or the zero time when unset.
func (b Birthday) Date() time.Time {
	return b.date
}

// String formats the date as DD/MM/YYYY, or returns "" when unset.
func (b Birthday) String() string {
	if !b.IsSet() {
		return ""
	}
	return b.date.Format(config.DateFormatDisplay)
}

// NextOccurrence returns the date of the next birthday relative to now,
// in now's location. A birthday falling on today's date is today.
// Feb 29 becomes Mar 1 in non-leap years through time.Date normalization.
func NextOccurrence(now, birthDate time.Time) time.Time {
	loc := now.Location()
	candidate := time.Date(now.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
	}
	return candidate
}

// DaysUntil counts whole calendar days from now's date to the next birthday.
func DaysUntil(now, birthDate time.Time) int {
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	next := NextOccurrence(now, birthDate)
	// Round to absorb DST shifts between the two midnights.
	return int((next.Sub(todayStart).Hours() + 12) / 24)
}
