package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
	"github.com/tartampluch/go-addressbook/internal/ui"
)

// Options wires a Bot to its collaborators. Book and Translator are required.
type Options struct {
	Book        *book.Book
	Translator  *ui.Translator
	Clock       engine.Clock
	Settings    config.Settings
	Importer    *engine.Importer
	Credentials engine.CredentialStore
}

// Bot executes commands against one address book.
type Bot struct {
	book     *book.Book
	tr       *ui.Translator
	clock    engine.Clock
	settings config.Settings
	exporter *engine.CalendarExporter
	importer *engine.Importer
	creds    engine.CredentialStore

	dispatcher *Dispatcher
}

// New builds the bot and its command table.
func New(opts Options) *Bot {
	b := &Bot{
		book:     opts.Book,
		tr:       opts.Translator,
		clock:    opts.Clock,
		settings: opts.Settings,
		importer: opts.Importer,
		creds:    opts.Credentials,
	}
	if b.clock == nil {
		b.clock = engine.RealClock{}
	}
	if b.importer == nil {
		b.importer = &engine.Importer{Fetcher: engine.NewHTTPFetcher(b.settings.ImportTimeout)}
	}
	b.exporter = &engine.CalendarExporter{
		Clock:           b.clock,
		ReminderTrigger: b.settings.ReminderTrigger,
		FormatSummary:   b.tr.EventSummary,
	}

	b.dispatcher = NewDispatcher(b.unknown,
		&Command{Name: config.CmdHelp, Kind: KindSession, Run: b.help},
		&Command{Name: config.CmdExit, Kind: KindSession, Exit: true, Run: b.goodbye},
		&Command{Name: config.CmdGoodbye, Kind: KindSession, Exit: true, Run: b.goodbye},
		&Command{Name: config.CmdClose, Kind: KindSession, Exit: true, Run: b.goodbye},

		&Command{Name: config.CmdAdd, Kind: KindBook, MinArgs: 2, MaxArgs: 3, Mutates: true, Run: b.add},
		&Command{Name: config.CmdAddPhone, Kind: KindBook, MinArgs: 2, MaxArgs: 2, Mutates: true, Run: b.addPhone},
		&Command{Name: config.CmdRemovePhone, Kind: KindBook, MinArgs: 2, MaxArgs: 2, Mutates: true, Run: b.removePhone},
		&Command{Name: config.CmdChange, Kind: KindBook, MinArgs: 3, MaxArgs: 3, Mutates: true, Run: b.change},
		&Command{Name: config.CmdShowAll, Kind: KindBook, Run: b.showAll},
		&Command{Name: config.CmdShow, Kind: KindBook, MinArgs: 1, MaxArgs: 1, Run: b.show},
		&Command{Name: config.CmdPhone, Kind: KindBook, MinArgs: 1, MaxArgs: 1, Run: b.phone},
		&Command{Name: config.CmdSearch, Kind: KindBook, MinArgs: 1, MaxArgs: Unbounded, Run: b.search},
		&Command{Name: config.CmdDelete, Kind: KindBook, MinArgs: 1, MaxArgs: 1, Mutates: true, Run: b.deleteContact},
		&Command{Name: config.CmdBirthday, Kind: KindBook, MinArgs: 1, MaxArgs: 1, Run: b.birthday},
		&Command{Name: config.CmdBirthdays, Kind: KindBook, MaxArgs: 1, Run: b.birthdays},
		&Command{Name: config.CmdEach, Kind: KindBook, Run: b.each},
		&Command{Name: config.CmdExportICS, Kind: KindBook, MinArgs: 1, MaxArgs: 1, Run: b.exportICS},
		&Command{Name: config.CmdImport, Kind: KindBook, MinArgs: 1, MaxArgs: 2, Mutates: true, Run: b.importCards},
	)
	return b
}

// Dispatcher exposes the command table.
func (b *Bot) Dispatcher() *Dispatcher {
	return b.dispatcher
}

// Handle resolves and executes one input line.
func (b *Bot) Handle(ctx context.Context, line string) (*Command, string, error) {
	res := b.dispatcher.Resolve(line)
	out, err := res.Command.Execute(ctx, res.Args)
	return res.Command, out, err
}

// userError carries a translated message for the user while keeping the
// underlying sentinel reachable through errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func (b *Bot) lookup(err error, name string) error {
	if errors.Is(err, book.ErrNotFound) {
		return &userError{msg: b.tr.Msg(config.TKeyNotFound, map[string]any{"Name": name}), err: err}
	}
	return err
}

func (b *Bot) unknown(_ context.Context, args []string) (string, error) {
	return b.tr.Msg(config.TKeyUnknown, map[string]any{"Input": args[0]}), nil
}

func (b *Bot) help(_ context.Context, _ []string) (string, error) {
	lines := []string{b.tr.Msg(config.TKeyHelpHeader, nil)}
	for _, c := range b.dispatcher.Commands() {
		lines = append(lines, "  "+b.tr.Msg(c.UsageKey(), nil))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) goodbye(_ context.Context, _ []string) (string, error) {
	return b.tr.Msg(config.TKeyGoodbye, nil), nil
}

func (b *Bot) add(_ context.Context, args []string) (string, error) {
	var birthday string
	if len(args) > 2 {
		birthday = args[2]
	}
	r, err := b.book.Add(args[0], args[1], birthday)
	if err != nil {
		return "", err
	}
	return b.tr.Msg(config.TKeyAdded, map[string]any{"Record": r.String()}), nil
}

func (b *Bot) addPhone(_ context.Context, args []string) (string, error) {
	if err := b.book.AddPhone(args[0], args[1]); err != nil {
		return "", b.lookup(err, args[0])
	}
	return b.tr.Msg(config.TKeyPhoneAdded, map[string]any{"Name": args[0], "Phone": args[1]}), nil
}

func (b *Bot) removePhone(_ context.Context, args []string) (string, error) {
	if err := b.book.RemovePhone(args[0], args[1]); err != nil {
		return "", b.lookup(err, args[0])
	}
	return b.tr.Msg(config.TKeyPhoneRemoved, map[string]any{"Name": args[0], "Phone": args[1]}), nil
}

func (b *Bot) change(_ context.Context, args []string) (string, error) {
	res, err := b.book.ChangePhone(args[0], args[1], args[2])
	if err != nil {
		return "", b.lookup(err, args[0])
	}
	return b.tr.Msg(config.TKeyChanged, map[string]any{"Name": res.Name, "Old": res.Old, "New": res.New}), nil
}

func (b *Bot) showAll(_ context.Context, _ []string) (string, error) {
	return b.book.ListAll(), nil
}

func (b *Bot) show(_ context.Context, args []string) (string, error) {
	n, err := intArg(args[0])
	if err != nil {
		return "", err
	}
	return b.book.ListPage(n)
}

func (b *Bot) phone(_ context.Context, args []string) (string, error) {
	phones, err := b.book.PhoneOf(args[0])
	if err != nil {
		return "", b.lookup(err, args[0])
	}
	return b.tr.Msg(config.TKeyPhoneOf, map[string]any{"Name": args[0], "Phones": phones}), nil
}

func (b *Bot) search(_ context.Context, args []string) (string, error) {
	return b.book.Search(strings.Join(args, " ")), nil
}

func (b *Bot) deleteContact(_ context.Context, args []string) (string, error) {
	if err := b.book.Delete(args[0]); err != nil {
		return "", b.lookup(err, args[0])
	}
	return b.tr.Msg(config.TKeyDeleted, map[string]any{"Name": args[0]}), nil
}

func (b *Bot) birthday(_ context.Context, args []string) (string, error) {
	r, ok := b.book.Find(args[0])
	if !ok {
		return "", b.lookup(fmt.Errorf("%w: %s", book.ErrNotFound, args[0]), args[0])
	}
	days, ok := r.DaysToBirthday(b.clock.Now())
	switch {
	case !ok:
		return b.tr.Msg(config.TKeyBirthdayUnset, map[string]any{"Name": args[0]}), nil
	case days == 0:
		return b.tr.Msg(config.TKeyBirthdayToday, map[string]any{"Name": args[0]}), nil
	default:
		return b.tr.Msg(config.TKeyBirthdayIn, map[string]any{"Name": args[0], "Days": days}), nil
	}
}

func (b *Bot) birthdays(_ context.Context, args []string) (string, error) {
	within := b.settings.UpcomingDays
	if len(args) == 1 {
		n, err := intArg(args[0])
		if err != nil {
			return "", err
		}
		if n < 0 {
			return "", fmt.Errorf("%w: %d", book.ErrInvalidArgument, n)
		}
		within = n
	}

	entries := engine.UpcomingBirthdays(b.clock.Now(), b.book.Records(), within)
	if len(entries) == 0 {
		return b.tr.Msg(config.TKeyUpcomingNone, map[string]any{"Days": within}), nil
	}

	lines := []string{b.tr.Msg(config.TKeyUpcomingHeader, map[string]any{"Days": within})}
	for _, e := range entries {
		lines = append(lines, b.tr.Msg(config.TKeyUpcomingLine, map[string]any{
			"Name": e.Name,
			"Date": e.NextOccurrence.Format(config.DateFormatDisplay),
			"Days": e.DaysLeft,
			"Age":  e.AgeNext,
		}))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) each(_ context.Context, _ []string) (string, error) {
	it := b.book.Iter()
	var lines []string
	for line, ok := it.Next(); ok; line, ok = it.Next() {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return b.tr.Msg(config.TKeyBookEmpty, nil), nil
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) exportICS(ctx context.Context, args []string) (string, error) {
	count, err := b.exporter.ExportFile(ctx, args[0], b.book.Records())
	if err != nil {
		return "", err
	}
	return b.tr.Msg(config.TKeyExported, map[string]any{"Count": count, "Path": args[0]}), nil
}

func (b *Bot) importCards(ctx context.Context, args []string) (string, error) {
	src := engine.Source{Location: args[0]}
	if len(args) == 2 {
		src.User = args[1]
	}
	if src.User != "" && b.creds != nil {
		pass, err := b.creds.Password(src.User)
		if err != nil {
			return "", err
		}
		src.Password = pass
	}

	res, err := b.importer.Import(ctx, src)
	if err != nil {
		return "", err
	}
	b.book.Append(res.Records...)
	return b.tr.Msg(config.TKeyImported, map[string]any{"Count": len(res.Records), "Skipped": res.Skipped}), nil
}
