package book

import (
	"fmt"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

// Iterator walks a snapshot of the book once, independently of the
// pagination cursor. Call Reset to walk it again.
type Iterator struct {
	records []*contact.Record
	pos     int
}

// Next returns the formatted line of the next record.
// The boolean is false once the snapshot is exhausted.
func (it *Iterator) Next() (string, bool) {
	if it.pos >= len(it.records) {
		return "", false
	}
	r := it.records[it.pos]
	it.pos++
	return fmt.Sprintf(config.FormatIterLine, it.pos, r), true
}

// Reset rewinds the iterator to the first record.
func (it *Iterator) Reset() {
	it.pos = 0
}
