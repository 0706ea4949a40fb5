package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/idilsaglam/tasktracker/internal/config"
	"github.com/idilsaglam/tasktracker/internal/credential"
	"github.com/idilsaglam/tasktracker/internal/session"
	"github.com/idilsaglam/tasktracker/internal/store"
	"github.com/idilsaglam/tasktracker/internal/tui"
)

// Options tune output behavior from root flags and carry the process's
// collaborators. Zero values fall back to the real terminal.
type Options struct {
	Group  bool // list grouped by pending/done
	Config *config.Config
	Log    zerolog.Logger

	In       io.Reader
	Out, Err io.Writer
	Browse   func(sess *session.Session, group bool) error
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Browse == nil {
		o.Browse = tui.Run
	}
	if o.Config == nil {
		o.Config = &config.Config{
			MaxUsers:   store.DefaultUserCapacity,
			MaxTasks:   store.DefaultTaskCapacity,
			BcryptCost: bcrypt.DefaultCost,
		}
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Err)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "shell":
		return doShell(opt)

	case "check-username":
		if len(a) != 1 {
			failf(opt.Err, "usage: todo check-username <name>")
			return 2
		}
		return report(opt, credential.ValidateUsername(a[0]), "username is valid")

	case "check-password":
		if len(a) != 1 {
			failf(opt.Err, "usage: todo check-password <password>")
			return 2
		}
		return report(opt, credential.ValidatePassword(a[0]), "password is valid")
	}

	failf(opt.Err, "unknown subcommand: %s", cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - a tiny task tracker

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  shell                     Interactive session (default): register or log in, then manage tasks
  check-username <name>     Check a username against the account rules
  check-password <password> Check a password against the account rules
  help                      Show this help

Flags:
  -group                    Group task listings by pending/done
  -theme <name>             classic | neon | mono
  -log-level <level>        debug | info | warn | error
  -no-color                 Disable colors

Environment:
  TODO_MAX_USERS, TODO_MAX_TASKS, TODO_THEME, TODO_LOG_LEVEL, TODO_BCRYPT_COST, TODO_NO_COLOR
`)
}

// -------------- subcommand impls ----------------

func doShell(opt Options) int {
	users := store.NewUserStore(opt.Config.MaxUsers,
		store.WithTaskCapacity(opt.Config.MaxTasks),
		store.WithHashCost(opt.Config.BcryptCost),
	)
	sess, err := session.New(users, opt.Log)
	if err != nil {
		failf(opt.Err, "session: %v", err)
		return 1
	}
	sh := NewShell(sess, opt.In, opt.Out, opt.Log)
	sh.Group = opt.Group
	sh.Browse = opt.Browse
	if err := sh.Run(); err != nil {
		failf(opt.Err, "shell: %v", err)
		return 1
	}
	return 0
}

func report(opt Options, err error, okMsg string) int {
	if err != nil {
		failf(opt.Err, "%s", describe(err))
		return 1
	}
	okf(opt.Out, "%s", okMsg)
	return 0
}
