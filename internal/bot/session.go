package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/ui"
)

// Session is the interactive read-eval-print loop around a Bot.
type Session struct {
	bot     *Bot
	in      io.Reader
	out     io.Writer
	journal *Journal
	styles  ui.Styles
}

// NewSession reads commands from in and prints results to out.
func NewSession(b *Bot, in io.Reader, out io.Writer, journal *Journal, styles ui.Styles) *Session {
	if journal == nil {
		journal = NewJournal(nil)
	}
	return &Session{bot: b, in: in, out: out, journal: journal, styles: styles}
}

// Run loads the book once, then handles lines until an exit command, the end
// of input or the cancellation of ctx. Command failures are reported and the
// loop goes on; only a failed initial load or a broken input stream ends it
// with an error.
func (s *Session) Run(ctx context.Context) error {
	// Releases the input reader when the loop ends on an exit command.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := slog.With(config.LogKeyComponent, config.CompBot)

	if err := s.bot.book.Load(ctx); err != nil {
		s.journal.Error(err)
		return err
	}
	s.journal.Info(config.JournalMsgLoaded)
	log.Info(config.MsgSessionStart, config.LogKeyCount, s.bot.book.Len())
	defer log.Info(config.MsgSessionEnd)

	lines, readErr := s.readLines(ctx)
	for {
		s.print(s.styles.Prompt, s.bot.tr.Msg(config.TKeyPrompt, nil), false)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			log.Info(config.MsgCtxCancel)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			return nil
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if s.handle(ctx, log, line) {
			return nil
		}
	}
}

// handle runs one line and reports whether the session should end.
func (s *Session) handle(ctx context.Context, log *slog.Logger, line string) bool {
	start := time.Now()
	s.journal.Input(line)

	cmd, out, err := s.bot.Handle(ctx, line)
	if err != nil {
		s.fail(log, cmd, err)
		return false
	}

	style := s.styles.Result
	if cmd.Kind != KindBook {
		style = s.styles.Info
	}
	s.print(style, out, true)
	s.journal.Result(out)
	log.Debug(config.MsgCommandDone,
		config.LogKeyCommand, cmd.Name,
		config.LogKeyDuration, time.Since(start).Milliseconds())

	if cmd.Exit {
		return true
	}
	if cmd.Mutates {
		if err := s.bot.book.Save(ctx); err != nil {
			s.fail(log, cmd, err)
			return false
		}
		s.journal.Info(config.JournalMsgSaved)
	}
	return false
}

func (s *Session) fail(log *slog.Logger, cmd *Command, err error) {
	msg := err.Error()
	var ue *userError
	if !errors.As(err, &ue) {
		msg = s.bot.tr.Msg(config.TKeyError, map[string]any{"Error": err.Error()})
	}
	s.print(s.styles.Error, msg, true)
	s.journal.Error(err)
	log.Warn(config.MsgCommandFailed,
		config.LogKeyCommand, cmd.Name,
		config.LogKeyError, err)
}

func (s *Session) print(style lipgloss.Style, text string, newline bool) {
	text = ui.RenderLines(style, text)
	if newline {
		text += "\n"
	}
	_, _ = io.WriteString(s.out, text)
}

// readLines feeds input lines to a channel so the loop can also watch ctx.
// The error channel receives the scanner result once lines is closed.
func (s *Session) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}
