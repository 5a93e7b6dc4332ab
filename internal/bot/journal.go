package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// JournalHandler is a slog.Handler writing the human-readable session log:
//
//	[15:04:05] USER INPUT : add Petro +380991234567
//	[15:04:05] BOT RESULT : \n<result>\n
//	[15:04:05] ERROR : <error>
//	[15:04:05] <info>
//
// The origin is taken from the config.JournalKeyOrigin attribute. Other
// attributes are ignored.
type JournalHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	now    func() time.Time
	origin string
}

// NewJournalHandler writes to w, stamping lines with now (time.Now when nil).
func NewJournalHandler(w io.Writer, now func() time.Time) *JournalHandler {
	if now == nil {
		now = time.Now
	}
	return &JournalHandler{mu: &sync.Mutex{}, w: w, now: now}
}

// Enabled implements slog.Handler. Every level is journaled.
func (h *JournalHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *JournalHandler) Handle(_ context.Context, r slog.Record) error {
	origin := h.origin
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == config.JournalKeyOrigin {
			origin = a.Value.String()
			return false
		}
		return true
	})

	var sb strings.Builder
	sb.WriteString("[" + h.now().Format(config.JournalTimeFormat) + "] ")
	switch origin {
	case "":
		sb.WriteString(r.Message)
	case config.OriginResult:
		sb.WriteString(origin + " : \n" + r.Message + "\n")
	default:
		sb.WriteString(origin + " : " + r.Message)
	}
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.WriteString(h.w, sb.String()); err != nil {
		return fmt.Errorf("%s: %w", config.ErrJournalWrite, err)
	}
	return nil
}

// WithAttrs implements slog.Handler; only the origin attribute is kept.
func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	for _, a := range attrs {
		if a.Key == config.JournalKeyOrigin {
			h2.origin = a.Value.String()
		}
	}
	return &h2
}

// WithGroup implements slog.Handler. Groups have no place in the journal.
func (h *JournalHandler) WithGroup(string) slog.Handler {
	return h
}

// Journal records one session.
type Journal struct {
	log *slog.Logger
}

// NewJournal wraps handler. A nil handler discards everything.
func NewJournal(handler slog.Handler) *Journal {
	if handler == nil {
		handler = slog.NewTextHandler(io.Discard, nil)
	}
	return &Journal{log: slog.New(handler)}
}

// OpenJournalFile opens path for appending, creating it and its directory.
func OpenJournalFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrJournalOpen, err)
	}
	return f, nil
}

// Input records a line typed by the user.
func (j *Journal) Input(line string) {
	j.log.Info(line, config.JournalKeyOrigin, config.OriginInput)
}

// Result records the text the bot answered with.
func (j *Journal) Result(text string) {
	j.log.Info(text, config.JournalKeyOrigin, config.OriginResult)
}

// Error records a failed command or a failed load or save.
func (j *Journal) Error(err error) {
	j.log.Error(err.Error(), config.JournalKeyOrigin, config.OriginError)
}

// Info records an untagged lifecycle event such as a load or a save.
func (j *Journal) Info(msg string) {
	j.log.Info(msg)
}
