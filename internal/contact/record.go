package contact

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record is one contact: a name, a set of unique phones and an optional birthday.
type Record struct {
	ID       uuid.UUID
	Name     Name
	Birthday Birthday

	phones map[Phone]struct{}
}

// Row is the flat projection of a Record used by table renderers.
type Row struct {
	Name     string
	Phones   string
	Birthday string
}

// NewRecord builds a record from already validated fields.
// A zero phone is not stored.
func NewRecord(name Name, phone Phone, birthday Birthday) *Record {
	r := &Record{
		ID:       uuid.New(),
		Name:     name,
		Birthday: birthday,
		phones:   make(map[Phone]struct{}),
	}
	r.AddPhone(phone)
	return r
}

// ParseRecord validates every raw field before building the record, so a
// malformed phone or birthday never yields a partial contact.
func ParseRecord(rawName, rawPhone, rawBirthday string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhone(rawPhone)
	if err != nil {
		return nil, err
	}
	birthday, err := NewBirthday(rawBirthday)
	if err != nil {
		return nil, err
	}
	return NewRecord(name, phone, birthday), nil
}

// AddPhone inserts p. Duplicates and the zero phone are ignored.
func (r *Record) AddPhone(p Phone) {
	if p.IsZero() {
		return
	}
	if r.phones == nil {
		r.phones = make(map[Phone]struct{})
	}
	r.phones[p] = struct{}{}
}

// AddPhoneString validates raw and inserts it.
func (r *Record) AddPhoneString(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.AddPhone(p)
	return nil
}

// RemovePhone deletes p if present.
func (r *Record) RemovePhone(p Phone) {
	delete(r.phones, p)
}

// HasPhone reports whether p belongs to the record.
func (r *Record) HasPhone(p Phone) bool {
	_, ok := r.phones[p]
	return ok
}

// Phones returns the phone set in ascending order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, 0, len(r.phones))
	for p := range r.phones {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Phone) int {
		return strings.Compare(a.value, b.value)
	})
	return out
}

// ShowPhones joins the phones with ", ", or returns the Empty marker.
func (r *Record) ShowPhones() string {
	phones := r.Phones()
	if len(phones) == 0 {
		return config.EmptyMarker
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, config.PhoneSep)
}

// DaysToBirthday returns the days left until the next birthday.
// The boolean is false when no birthday is set.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	if !r.Birthday.IsSet() {
		return 0, false
	}
	return DaysUntil(now, r.Birthday.Date()), true
}

// AsRow projects the record for tabular rendering.
func (r *Record) AsRow() Row {
	return Row{
		Name:     r.Name.String(),
		Phones:   r.ShowPhones(),
		Birthday: r.showBirthday(),
	}
}

func (r *Record) showBirthday() string {
	if !r.Birthday.IsSet() {
		return config.EmptyMarker
	}
	return r.Birthday.String()
}

func (r *Record) String() string {
	return fmt.Sprintf(config.FormatRecord, r.Name, r.ShowPhones(), r.showBirthday())
}
