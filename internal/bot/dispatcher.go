// Package bot turns free-text lines into address book operations: it
// resolves commands, runs them and drives the interactive session.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// ErrArguments reports a wrong number or type of command arguments.
var ErrArguments = errors.New(config.ErrArguments)

// Kind separates session control from address book commands.
type Kind int

const (
	KindSession Kind = iota
	KindBook
	KindUnknown
)

// Unbounded disables the upper arity check.
const Unbounded = -1

// Handler runs a command with its positional arguments.
type Handler func(ctx context.Context, args []string) (string, error)

// Command is one entry of the dispatch table.
type Command struct {
	Name    string
	Kind    Kind
	MinArgs int
	MaxArgs int

	// Mutates marks commands after which the book is saved.
	Mutates bool

	// Exit ends the session once the command has run.
	Exit bool

	Run Handler
}

// UsageKey is the message key of the command's help line.
func (c *Command) UsageKey() string {
	return config.TKeyUsagePrefix + c.Name
}

// Execute checks the arity, then runs the handler.
func (c *Command) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) < c.MinArgs || (c.MaxArgs != Unbounded && len(args) > c.MaxArgs) {
		return "", fmt.Errorf("%w: %s: "+config.ErrArgCount, ErrArguments, c.Name, c.arity(), len(args))
	}
	return c.Run(ctx, args)
}

func (c *Command) arity() string {
	switch {
	case c.MaxArgs == Unbounded:
		return strconv.Itoa(c.MinArgs) + "+"
	case c.MinArgs == c.MaxArgs:
		return strconv.Itoa(c.MinArgs)
	default:
		return strconv.Itoa(c.MinArgs) + "-" + strconv.Itoa(c.MaxArgs)
	}
}

// Resolution is the outcome of resolving one input line.
type Resolution struct {
	Command *Command
	Args    []string
}

// Dispatcher maps command names to commands. The tables are built once and
// never change afterwards.
type Dispatcher struct {
	session map[string]*Command
	book    map[string]*Command
	ordered []*Command
	unknown *Command
}

// NewDispatcher indexes cmds by kind. unknown receives the whole input line
// as its only argument.
func NewDispatcher(unknown Handler, cmds ...*Command) *Dispatcher {
	d := &Dispatcher{
		session: make(map[string]*Command),
		book:    make(map[string]*Command),
		unknown: &Command{Kind: KindUnknown, MinArgs: 1, MaxArgs: 1, Run: unknown},
	}
	for _, c := range cmds {
		switch c.Kind {
		case KindSession:
			d.session[c.Name] = c
		case KindBook:
			d.book[c.Name] = c
		}
		d.ordered = append(d.ordered, c)
	}
	return d
}

// Commands returns the registered commands in registration order.
func (d *Dispatcher) Commands() []*Command {
	out := make([]*Command, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Resolve finds the command for line. Lookups are case-insensitive: session
// commands first, then book commands, then a two-word book command such as
// "remove phone" for "remove-phone". Anything else goes to the unknown
// command.
func (d *Dispatcher) Resolve(line string) Resolution {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Resolution{Command: d.unknown, Args: []string{strings.TrimSpace(line)}}
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	if c, ok := d.session[name]; ok {
		return Resolution{Command: c, Args: args}
	}
	if c, ok := d.book[name]; ok {
		return Resolution{Command: c, Args: args}
	}
	if len(args) > 0 {
		joined := name + config.CommandJoiner + strings.ToLower(args[0])
		if c, ok := d.book[joined]; ok {
			return Resolution{Command: c, Args: args[1:]}
		}
	}
	return Resolution{Command: d.unknown, Args: []string{strings.TrimSpace(line)}}
}

// intArg parses a numeric argument.
func intArg(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: "+config.ErrNotNumber, ErrArguments, raw)
	}
	return n, nil
}
