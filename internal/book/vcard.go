package book

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

const telURIPrefix = "tel:"

// RecordToCard converts a record into a vCard 4.0 card.
func RecordToCard(r *contact.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldUID, r.ID.URN())
	card.SetValue(vcard.FieldFormattedName, r.Name.String())
	for _, p := range r.Phones() {
		card.AddValue(vcard.FieldTelephone, p.String())
	}
	if r.Birthday.IsSet() {
		card.SetValue(vcard.FieldBirthday, r.Birthday.Date().Format(config.DateFormatFullBasic))
	}
	vcard.ToV4(card)
	return card
}

// CardToRecord converts a vCard into a record.
// It returns nil when the card has no usable name. Phones and birthdays that
// fail validation are left out and reported in the returned slice.
func CardToRecord(card vcard.Card) (*contact.Record, []error) {
	name, err := contact.NewName(cardName(card))
	if err != nil {
		return nil, []error{err}
	}

	var skipped []error
	r := contact.NewRecord(name, contact.Phone{}, contact.Birthday{})

	if id, err := uuid.Parse(card.Value(vcard.FieldUID)); err == nil {
		r.ID = id
	}

	for _, raw := range card.Values(vcard.FieldTelephone) {
		raw = strings.TrimPrefix(strings.TrimSpace(raw), telURIPrefix)
		if err := r.AddPhoneString(raw); err != nil {
			skipped = append(skipped, err)
		}
	}

	if raw := card.Value(vcard.FieldBirthday); raw != "" {
		date, yearKnown, err := parseCardDate(raw)
		switch {
		case err != nil:
			skipped = append(skipped, &contact.FormatError{Field: config.FieldDate, Value: raw})
		case !yearKnown:
			skipped = append(skipped, fmt.Errorf("%s: %q: %w", config.ErrDateParse, raw, contact.ErrValidation))
		default:
			r.Birthday = contact.BirthdayOf(date)
		}
	}

	return r, skipped
}

// cardName follows FN, then the structured N field.
func cardName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.Value(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(strings.Join(strings.Fields(n.GivenName+" "+n.FamilyName), " "))
	}
	return ""
}

// parseCardDate handles the BDAY layouts found in the wild.
// yearKnown is false for truncated --MM-DD dates.
func parseCardDate(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullBasic,
		config.DateFormatFullDash,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safeDate := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return safeDate, false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
