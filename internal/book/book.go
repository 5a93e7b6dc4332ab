// Package book implements the ordered contact collection: mutation by name,
// paginated and full listings, substring search, iteration and persistence.
package book

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

// Storage persists the whole record sequence at once.
type Storage interface {
	Load(ctx context.Context) ([]*contact.Record, error)
	Save(ctx context.Context, records []*contact.Record) error
}

// Book is the ordered collection of contacts.
// It is owned by a single session and is not safe for concurrent use.
type Book struct {
	records []*contact.Record
	store   Storage

	// cursor is the pagination offset used by ListPage.
	cursor int
}

// ChangeResult describes a phone replacement.
type ChangeResult struct {
	Name string
	Old  string
	New  string
}

// New returns an empty book. store may be nil for a purely in-memory book.
func New(store Storage) *Book {
	return &Book{store: store}
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// Records returns a copy of the record sequence.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, len(b.records))
	copy(out, b.records)
	return out
}

// Find returns the first record named name.
func (b *Book) Find(name string) (*contact.Record, bool) {
	for _, r := range b.records {
		if r.Name.String() == name {
			return r, true
		}
	}
	return nil, false
}

// Add validates the raw fields, then appends a new record.
// Nothing is added when any field is malformed.
func (b *Book) Add(name, phone, birthday string) (*contact.Record, error) {
	r, err := contact.ParseRecord(name, phone, birthday)
	if err != nil {
		return nil, err
	}
	b.Append(r)
	return r, nil
}

// Append adds already validated records at the end of the book.
func (b *Book) Append(records ...*contact.Record) {
	b.records = append(b.records, records...)
}

// AddPhone inserts phone into the record named name.
func (b *Book) AddPhone(name, phone string) error {
	p, err := contact.NewPhone(phone)
	if err != nil {
		return err
	}
	r, ok := b.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	r.AddPhone(p)
	return nil
}

// RemovePhone deletes phone from the record named name.
// An absent phone is a no-op.
func (b *Book) RemovePhone(name, phone string) error {
	p, err := contact.NewPhone(phone)
	if err != nil {
		return err
	}
	r, ok := b.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	r.RemovePhone(p)
	return nil
}

// ChangePhone replaces oldPhone by newPhone on the record named name.
// The record must currently hold oldPhone.
func (b *Book) ChangePhone(name, oldPhone, newPhone string) (ChangeResult, error) {
	oldP, err := contact.NewPhone(oldPhone)
	if err != nil {
		return ChangeResult{}, err
	}
	newP, err := contact.NewPhone(newPhone)
	if err != nil {
		return ChangeResult{}, err
	}
	r, ok := b.Find(name)
	if !ok {
		return ChangeResult{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if oldP.IsZero() || !r.HasPhone(oldP) {
		return ChangeResult{}, fmt.Errorf("%w: %s %s", ErrPhoneNotFound, name, oldPhone)
	}

	res := ChangeResult{Name: name, Old: r.ShowPhones()}
	r.RemovePhone(oldP)
	r.AddPhone(newP)
	res.New = r.ShowPhones()
	return res, nil
}

// PhoneOf returns the joined phone list of the record named name.
func (b *Book) PhoneOf(name string) (string, error) {
	r, ok := b.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return r.ShowPhones(), nil
}

// Delete removes the first record named name.
func (b *Book) Delete(name string) error {
	for i, r := range b.records {
		if r.Name.String() == name {
			b.records = append(b.records[:i], b.records[i+1:]...)
			if b.cursor > len(b.records) {
				b.cursor = len(b.records)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ListAll renders every record and resets the pagination cursor.
func (b *Book) ListAll() string {
	b.cursor = 0
	t := newTable()
	for i, r := range b.records {
		t.addRow(i+1, r.AsRow())
	}
	return t.String()
}

// ListPage renders the next n records and advances the cursor by n.
// When fewer than n records remain, it returns the end-of-book message and
// leaves the cursor untouched.
func (b *Book) ListPage(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidArgument, config.ErrPageSize)
	}
	if len(b.records)-b.cursor < n {
		return fmt.Sprintf(config.FormatEndOfBook, len(b.records)), nil
	}

	t := newTable()
	for _, r := range b.records[b.cursor : b.cursor+n] {
		b.cursor++
		t.addRow(b.cursor, r.AsRow())
	}
	return t.String(), nil
}

// Cursor returns the current pagination offset.
func (b *Book) Cursor() int {
	return b.cursor
}

// Search returns a table of every record whose name or one of whose phones
// contains pattern. Matching ignores case and spaces.
func (b *Book) Search(pattern string) string {
	needle := normalize(pattern)
	t := newSearchTable(pattern)
	if needle != "" {
		for _, r := range b.records {
			if matches(r, needle) {
				t.addRow(r.AsRow())
			}
		}
	}
	if t.empty() {
		return fmt.Sprintf(config.FormatNothing, pattern)
	}
	return t.String()
}

func matches(r *contact.Record, needle string) bool {
	for _, p := range r.Phones() {
		if strings.Contains(p.String(), needle) {
			return true
		}
	}
	return strings.Contains(normalize(r.Name.String()), needle)
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}

// Iter returns a fresh one-shot iterator over the current records.
func (b *Book) Iter() *Iterator {
	return &Iterator{records: b.Records()}
}

// Load replaces the in-memory records with the persisted ones.
func (b *Book) Load(ctx context.Context) error {
	if b.store == nil {
		return nil
	}
	records, err := b.store.Load(ctx)
	if err != nil {
		return err
	}
	b.records = records
	b.cursor = 0

	slog.Debug(config.MsgStoreLoaded,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyCount, len(records))
	return nil
}

// Save overwrites the persisted records with the in-memory ones.
func (b *Book) Save(ctx context.Context) error {
	if b.store == nil {
		return nil
	}
	return b.store.Save(ctx, b.records)
}
