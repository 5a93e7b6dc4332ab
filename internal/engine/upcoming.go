package engine

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

// BirthdayEntry is a contact whose birthday is coming up.
type BirthdayEntry struct {
	ID   uuid.UUID
	Name string

	// DateOfBirth is the stored birth date.
	DateOfBirth time.Time

	// NextOccurrence is the date of the birthday for the current or next year.
	NextOccurrence time.Time

	// DaysLeft counts calendar days until NextOccurrence; 0 means today.
	DaysLeft int

	// AgeNext is the age the person turns at NextOccurrence.
	AgeNext int
}

// UpcomingBirthdays lists the records whose next birthday falls within the
// given number of days from now, soonest first, ties broken by name.
func UpcomingBirthdays(now time.Time, records []*contact.Record, within int) []BirthdayEntry {
	var entries []BirthdayEntry
	for _, r := range records {
		if !r.Birthday.IsSet() {
			continue
		}
		birth := r.Birthday.Date()
		days := contact.DaysUntil(now, birth)
		if days > within {
			continue
		}
		next := contact.NextOccurrence(now, birth)
		entries = append(entries, BirthdayEntry{
			ID:             r.ID,
			Name:           r.Name.String(),
			DateOfBirth:    birth,
			NextOccurrence: next,
			DaysLeft:       days,
			AgeNext:        next.Year() - birth.Year(),
		})
	}

	slices.SortStableFunc(entries, func(a, b BirthdayEntry) int {
		if c := a.NextOccurrence.Compare(b.NextOccurrence); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return entries
}
