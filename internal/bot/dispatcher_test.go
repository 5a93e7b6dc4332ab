package bot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/bot"
	"github.com/tartampluch/go-addressbook/internal/config"
)

func TestDispatcher_Resolve(t *testing.T) {
	d := newBot(t, nil).Dispatcher()

	tests := []struct {
		name     string
		line     string
		wantCmd  string
		wantKind bot.Kind
		wantArgs []string
	}{
		{"Session", "help", config.CmdHelp, bot.KindSession, []string{}},
		{"SessionUpperCase", "EXIT", config.CmdExit, bot.KindSession, []string{}},
		{"Book", "add Petro +380991234567", config.CmdAdd, bot.KindBook, []string{"Petro", "+380991234567"}},
		{"BookMixedCase", "Show-All", config.CmdShowAll, bot.KindBook, []string{}},
		{"ExtraSpaces", "  phone   Petro  ", config.CmdPhone, bot.KindBook, []string{"Petro"}},
		{"TwoWords", "remove phone Petro +380991234567", config.CmdRemovePhone, bot.KindBook, []string{"Petro", "+380991234567"}},
		{"TwoWordsMixedCase", "Export ICS out.ics", config.CmdExportICS, bot.KindBook, []string{"out.ics"}},
		{"Unknown", "foobar", "", bot.KindUnknown, []string{"foobar"}},
		{"UnknownTwoWords", "foo bar baz", "", bot.KindUnknown, []string{"foo bar baz"}},
		{"Blank", "   ", "", bot.KindUnknown, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Resolve(tt.line)
			require.NotNil(t, res.Command)
			assert.Equal(t, tt.wantCmd, res.Command.Name)
			assert.Equal(t, tt.wantKind, res.Command.Kind)
			assert.Equal(t, tt.wantArgs, res.Args)
		})
	}
}

func TestDispatcher_Commands(t *testing.T) {
	cmds := newBot(t, nil).Dispatcher().Commands()

	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		config.CmdHelp, config.CmdExit, config.CmdGoodbye, config.CmdClose,
		config.CmdAdd, config.CmdAddPhone, config.CmdRemovePhone, config.CmdChange,
		config.CmdShowAll, config.CmdShow, config.CmdPhone, config.CmdSearch,
		config.CmdDelete, config.CmdBirthday, config.CmdBirthdays, config.CmdEach,
		config.CmdExportICS, config.CmdImport,
	}, names)
}

func TestCommand_Execute_Arity(t *testing.T) {
	noop := func(context.Context, []string) (string, error) { return "ok", nil }

	tests := []struct {
		name    string
		cmd     bot.Command
		args    []string
		wantErr bool
	}{
		{"ExactOK", bot.Command{Name: "x", MinArgs: 1, MaxArgs: 1, Run: noop}, []string{"a"}, false},
		{"TooFew", bot.Command{Name: "x", MinArgs: 1, MaxArgs: 1, Run: noop}, nil, true},
		{"TooMany", bot.Command{Name: "x", MinArgs: 1, MaxArgs: 1, Run: noop}, []string{"a", "b"}, true},
		{"NoArgs", bot.Command{Name: "x", Run: noop}, []string{"a"}, true},
		{"Unbounded", bot.Command{Name: "x", MinArgs: 1, MaxArgs: bot.Unbounded, Run: noop}, []string{"a", "b", "c"}, false},
		{"RangeOK", bot.Command{Name: "x", MinArgs: 1, MaxArgs: 3, Run: noop}, []string{"a", "b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.cmd.Execute(context.Background(), tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, bot.ErrArguments)
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", out)
		})
	}
}

func TestCommand_UsageKey(t *testing.T) {
	c := bot.Command{Name: config.CmdAddPhone}
	assert.Equal(t, "usage_add-phone", c.UsageKey())
}
