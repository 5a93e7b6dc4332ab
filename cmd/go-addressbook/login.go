package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdLoginUse,
		Short: config.CmdLoginShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := args[0]
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), config.MsgPasswordAsk, user)

			password, err := readPassword(cmd.InOrStdin())
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}

			return storePassword(engine.NewKeyringCredentials(), user, password, cmd.OutOrStdout())
		},
	}
}

// storePassword saves the password used by "import" for user.
func storePassword(creds engine.CredentialStore, user, password string, out io.Writer) error {
	if err := creds.SetPassword(user, password); err != nil {
		return err
	}
	slog.Info(config.MsgPasswordSaved,
		config.LogKeyComponent, config.CompKeyring,
		config.LogKeyUser, user)
	_, _ = fmt.Fprintln(out, config.MsgPasswordSaved)
	return nil
}

// readPassword reads without echo from a terminal, or one line otherwise.
func readPassword(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
		b, err := term.ReadPassword(f.Fd())
		return string(b), err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
