package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Skills(ctx context.Context) error
	Tab(ctx context.Context, tab string) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	Open(ctx context.Context, path string) error
	Profile(ctx context.Context, id string) error
	AddSkill(ctx context.Context, kind models.SkillKind) error
	Show(ctx context.Context) error
}

const helpText = `Available commands:
  skills                 - browse the skill marketplace
  tab offered|requested  - switch marketplace tab
  users                  - list users
  adduser                - register a user
  profile <id>           - open a user's profile
  open <path>            - open a screen by path, e.g. /users/42
  addoffered             - add an offered skill to the open profile
  addrequested           - add a requested skill to the open profile
  show                   - print the current screen again
  exit | quit            - leave the program`

// runREPL starts a simple read–eval–print loop for the SkillSwap CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands and missing arguments are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are printed and otherwise ignored so a
// failed command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if isTerminal() {
			fmt.Fprintf(w, "skillswap %s> ", statusFn())
		}
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)

		case "skills", "s":
			cmdErr = a.Skills(ctx)

		case "tab":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: tab offered|requested")
				continue
			}
			cmdErr = a.Tab(ctx, args[0])

		case "users", "u":
			cmdErr = a.Users(ctx)

		case "adduser":
			cmdErr = a.AddUser(ctx)

		case "profile", "p":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: profile <id>")
				continue
			}
			cmdErr = a.Profile(ctx, args[0])

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: open <path>")
				continue
			}
			cmdErr = a.Open(ctx, args[0])

		case "addoffered":
			cmdErr = a.AddSkill(ctx, models.SkillOffered)

		case "addrequested":
			cmdErr = a.AddSkill(ctx, models.SkillRequested)

		case "show":
			cmdErr = a.Show(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
		}
	}
}
