package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/bot"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
	"github.com/tartampluch/go-addressbook/internal/ui"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred calls (like closing log
// files) run before the process terminates.
func main() {
	os.Exit(runMain())
}

// runMain builds the command tree, runs it under a signal-aware context and
// maps the outcome to an exit code.
func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := &options{}
	root := newRootCmd(opts)
	defer opts.close()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// options collects flag values and the resources opened for the run.
type options struct {
	configPath  string
	dataDir     string
	lang        string
	debug       bool
	showVersion bool

	settings config.Settings
	closers  []io.Closer
}

func (o *options) close() {
	for i := len(o.closers) - 1; i >= 0; i-- {
		_ = o.closers[i].Close() // Best effort close
	}
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           config.CommandName,
		Short:         config.CmdShort,
		Long:          config.CmdLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				return nil
			}
			if c := setupLogging(opts.debug); c != nil {
				opts.closers = append(opts.closers, c)
			}
			logStartupInfo()
			return opts.loadSettings(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return runSession(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, config.FlagConfig, config.DefaultSettingsFile, config.FlagDescConfig)
	root.PersistentFlags().StringVar(&opts.dataDir, config.FlagDataDir, "", config.FlagDescDataDir)
	root.PersistentFlags().StringVar(&opts.lang, config.FlagLang, "", config.FlagDescLang)
	root.PersistentFlags().BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	root.Flags().BoolVar(&opts.showVersion, config.FlagVersion, false, config.FlagDescVersion)

	root.AddCommand(newLoginCmd())
	return root
}

// loadSettings reads the settings file, then applies explicit flags on top.
func (o *options) loadSettings(cmd *cobra.Command) error {
	s, err := config.LoadSettings(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed(config.FlagDataDir) {
		s.DataDir = o.dataDir
	}
	if cmd.Flags().Changed(config.FlagLang) {
		s.Language = o.lang
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return err
	}
	o.settings = s
	return nil
}

// runSession wires the address book, the bot and the journal, then hands the
// terminal to the interactive loop.
func runSession(ctx context.Context, opts *options, in io.Reader, out io.Writer) error {
	s := opts.settings

	journalFile, err := bot.OpenJournalFile(s.JournalPath())
	if err != nil {
		return err
	}
	opts.closers = append(opts.closers, journalFile)

	b := bot.New(bot.Options{
		Book:        book.New(book.NewVCardStore(s.StorePath())),
		Translator:  ui.NewTranslator(s.Language),
		Clock:       engine.RealClock{},
		Settings:    s,
		Importer:    &engine.Importer{Fetcher: engine.NewHTTPFetcher(s.ImportTimeout)},
		Credentials: engine.NewKeyringCredentials(),
	})

	journal := bot.NewJournal(bot.NewJournalHandler(journalFile, nil))
	return bot.NewSession(b, in, out, journal, ui.DefaultStyles()).Run(ctx)
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		config.Commit,
		config.Date,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Diagnostics go to a file in the user's cache directory so they never mix
// with the conversation on stdout; stderr is used only when the file cannot
// be opened or in debug mode.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	if debugMode || logFile == nil {
		writers = append(writers, os.Stderr)
	}
	if logFile == nil && !debugMode {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
