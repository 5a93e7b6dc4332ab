package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contact"
)

// Source locates a vCard stream: a local path or an http(s) URL.
type Source struct {
	Location string
	User     string
	Password string
}

// IsRemote reports whether the location is an http(s) URL.
func (s Source) IsRemote() bool {
	u, err := url.Parse(s.Location)
	if err != nil {
		return false
	}
	return u.Scheme == config.SchemeHTTP || u.Scheme == config.SchemeHTTPS
}

// ImportResult holds the records read from a source.
type ImportResult struct {
	Records []*contact.Record

	// Skipped counts cards dropped because they were malformed or had no name.
	Skipped int
}

// Importer reads contacts from external vCard files or CardDAV-style URLs.
type Importer struct {
	Fetcher VCardFetcher
}

// Import decodes every card of the source. Broken cards are skipped;
// invalid phones and birthdays inside a usable card are dropped from it.
func (im *Importer) Import(ctx context.Context, src Source) (ImportResult, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompImporter)

	reader, err := im.acquireStream(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return ImportResult{}, ctx.Err()
		}
		return ImportResult{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = reader.Close() }()

	var res ImportResult
	dec := vcard.NewDecoder(reader)
	for {
		if err := ctx.Err(); err != nil {
			return ImportResult{}, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Stop at the first undecodable card and keep what was read so far.
			if len(res.Records) == 0 && res.Skipped == 0 {
				return ImportResult{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			res.Skipped++
			break
		}

		r, problems := book.CardToRecord(card)
		if r == nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, errors.Join(problems...))
			res.Skipped++
			continue
		}
		for _, p := range problems {
			logSkippedField(log, r.Name.String(), p)
		}
		res.Records = append(res.Records, r)
	}

	log.Info(config.MsgImportDone,
		config.LogKeyCount, len(res.Records),
		config.LogKeySkipped, res.Skipped,
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return res, nil
}

// acquireStream opens the file or starts the download.
func (im *Importer) acquireStream(ctx context.Context, src Source) (io.ReadCloser, error) {
	if strings.TrimSpace(src.Location) == "" {
		return nil, errors.New(config.ErrSourceEmpty)
	}
	if src.IsRemote() {
		if im.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return im.Fetcher.Fetch(ctx, src.Location, src.User, src.Password)
	}
	return os.Open(src.Location)
}

// logSkippedField reports a value dropped from an otherwise usable card.
func logSkippedField(log *slog.Logger, name string, problem error) {
	var fe *contact.FormatError
	if !errors.As(problem, &fe) {
		log.Debug(config.MsgSkippedField,
			config.LogKeyName, name,
			config.LogKeyError, problem)
		return
	}
	msg := config.MsgSkippedField
	if fe.Field == config.FieldDate {
		msg = config.MsgSkippedDate
	}
	log.Debug(msg,
		config.LogKeyName, name,
		config.LogKeyField, fe.Field,
		config.LogKeyValue, fe.Value)
}
