package book

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

// VCardStore keeps the address book as a vCard 4.0 stream in a single file.
type VCardStore struct {
	Path string
}

// NewVCardStore returns a store backed by path.
func NewVCardStore(path string) *VCardStore {
	return &VCardStore{Path: path}
}

// Load decodes every card of the file, in order.
// A missing file is an empty book; unreadable or corrupt data is ErrPersistence.
func (s *VCardStore) Load(ctx context.Context) ([]*contact.Record, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, s.Path,
	)

	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info(config.MsgStoreMissing)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrPersistence, config.ErrStoreRead, err)
	}
	// Read-only file: close errors are not actionable.
	defer func() { _ = f.Close() }()

	var records []*contact.Record
	dec := vcard.NewDecoder(f)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrPersistence, config.ErrStoreDecode, err)
		}

		r, problems := CardToRecord(card)
		if r == nil || len(problems) > 0 {
			return nil, fmt.Errorf("%w: %s: card %d: %w",
				ErrPersistence, config.ErrStoreDecode, len(records)+1, errors.Join(problems...))
		}
		records = append(records, r)
	}

	log.Info(config.MsgStoreLoaded, config.LogKeyCount, len(records))
	return records, nil
}

// Save writes all records to a temporary file and renames it over the
// target, so a failed save leaves the previous book intact.
func (s *VCardStore) Save(ctx context.Context, records []*contact.Record) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPersistence, config.ErrCreateDir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPersistence, config.ErrStoreWrite, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	enc := vcard.NewEncoder(tmp)
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			_ = tmp.Close()
			cleanup()
			return err
		}
		if err := enc.Encode(RecordToCard(r)); err != nil {
			_ = tmp.Close()
			cleanup()
			return fmt.Errorf("%w: %s: %w", ErrPersistence, config.ErrStoreEncode, err)
		}
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: %s: %w", ErrPersistence, config.ErrStoreWrite, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		cleanup()
		return fmt.Errorf("%w: %s: %w", ErrPersistence, config.ErrStoreWrite, err)
	}

	slog.Debug(config.MsgStoreSaved,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, s.Path,
		config.LogKeyCount, len(records))
	return nil
}
