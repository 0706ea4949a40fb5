package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/tasktracker/internal/credential"
	"github.com/idilsaglam/tasktracker/internal/model"
	"github.com/idilsaglam/tasktracker/internal/session"
	"github.com/idilsaglam/tasktracker/internal/ui"
)

var errNotNumber = errors.New("not a number")

// Shell is the interactive prompt loop. It first keeps asking until a user
// is registered or logged in, then serves the task menu until the user exits
// or input ends.
type Shell struct {
	Group  bool
	Browse func(sess *session.Session, group bool) error

	sess *session.Session
	in   *bufio.Reader
	out  io.Writer
	log  zerolog.Logger
}

func NewShell(sess *session.Session, in io.Reader, out io.Writer, log zerolog.Logger) *Shell {
	return &Shell{sess: sess, in: bufio.NewReader(in), out: out, log: log}
}

// Run returns nil when the user exits or input ends.
func (s *Shell) Run() error {
	err := s.access()
	if err == nil {
		err = s.menu()
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

// ---------------------------------------------------
// Access: register / login
// ---------------------------------------------------

func (s *Shell) access() error {
	for !s.sess.Active() {
		fmt.Fprintln(s.out, ui.Current().Title.Render("---- To-Do list application ----"))
		fmt.Fprintln(s.out, "Do you want to login or register?")

		var err error
	choose:
		for {
			tok, rerr := s.readToken("Print R to register, L to login: ")
			if rerr != nil {
				return rerr
			}
			switch strings.ToLower(tok) {
			case "r":
				fmt.Fprintln(s.out, "You chose to register!")
				err = s.register()
				break choose
			case "l":
				fmt.Fprintln(s.out, "You chose to login!")
				err = s.login()
				break choose
			default:
				failf(s.out, "The input is not correct!")
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Shell) register() error {
	ui.Hint(s.out, fmt.Sprintf("The username must contain only letters and digits, %d to %d characters.",
		credential.MinUsernameLen, credential.MaxUsernameLen))
	var name string
	for {
		tok, err := s.readToken("Your username: ")
		if err != nil {
			return err
		}
		if err := s.sess.CheckUsername(tok); err != nil {
			failf(s.out, "%s", describe(err))
			continue
		}
		name = tok
		break
	}

	password, err := s.readPassword()
	if err != nil {
		return err
	}

	if err := s.sess.Register(name, password); err != nil {
		failf(s.out, "%s", describe(err))
		return nil
	}
	okf(s.out, "Welcome, %s!", name)
	return nil
}

func (s *Shell) login() error {
	var name string
	for {
		tok, err := s.readToken("Your username: ")
		if err != nil {
			return err
		}
		if err := credential.ValidateUsername(tok); err != nil {
			failf(s.out, "%s", describe(err))
			continue
		}
		name = tok
		break
	}

	password, err := s.readPassword()
	if err != nil {
		return err
	}

	if err := s.sess.Login(name, password); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			failf(s.out, "Username or password not correct!")
		} else {
			failf(s.out, "%s", describe(err))
		}
		return nil
	}
	okf(s.out, "Welcome to the program, %s!", name)
	return nil
}

func (s *Shell) readPassword() (string, error) {
	ui.Hint(s.out, fmt.Sprintf("The password must contain an uppercase letter, a lowercase letter, a digit and a symbol, at least %d characters.",
		credential.MinPasswordLen))
	for {
		tok, err := s.readToken("Your password: ")
		if err != nil {
			return "", err
		}
		if err := credential.ValidatePassword(tok); err != nil {
			failf(s.out, "%s", describe(err))
			continue
		}
		return tok, nil
	}
}

// ---------------------------------------------------
// Task menu
// ---------------------------------------------------

const menuText = `
1. Create a new task
2. Flag a task as completed
3. Order your tasks (pending first)
4. View your tasks
5. View the tasks of a category
6. Exit
7. Browse tasks interactively
8. Who am I`

func (s *Shell) menu() error {
	for {
		fmt.Fprintln(s.out, menuText)
		choice, err := s.readInt("Your choice: ")
		if err != nil && !errors.Is(err, errNotNumber) {
			return err
		}
		s.log.Debug().Int("choice", choice).Msg("menu")

		switch {
		case err != nil:
			failf(s.out, "Your choice is not valid!")
		case choice == 1:
			err = s.createTask()
		case choice == 2:
			err = s.complete()
		case choice == 3:
			s.order()
		case choice == 4:
			s.view()
		case choice == 5:
			err = s.category()
		case choice == 6:
			return nil
		case choice == 7:
			s.browse()
		case choice == 8:
			s.whoAmI()
		default:
			failf(s.out, "Your choice is not valid!")
		}
		if err != nil && !errors.Is(err, errNotNumber) {
			return err
		}
	}
}

func (s *Shell) createTask() error {
	desc, err := s.readText("Enter the description of the task: ")
	if err != nil {
		return err
	}
	cat, err := s.readText("Enter the category of the task: ")
	if err != nil {
		return err
	}
	pos, err := s.sess.CreateTask(desc, cat)
	if err != nil {
		failf(s.out, "%s", describe(err))
		return nil
	}
	okf(s.out, "Task %d created", pos)
	return nil
}

func (s *Shell) complete() error {
	pending, err := s.sess.PendingTasks()
	if err != nil {
		failf(s.out, "%s", describe(err))
		return nil
	}
	if len(pending) == 0 {
		ui.Hint(s.out, "No pending tasks.")
	} else {
		ui.Panel(s.out, ui.FlatLines(pending))
	}

	pos, err := s.readInt("What task do you want to set as completed: ")
	if err != nil {
		if errors.Is(err, errNotNumber) {
			failf(s.out, "This value is not valid!")
			return nil
		}
		return err
	}
	switch err := s.sess.Complete(pos); {
	case err == nil:
		okf(s.out, "Task %d completed", pos)
	case errors.Is(err, model.ErrAlreadyCompleted):
		failf(s.out, "Task %d is already completed!", pos)
	case errors.Is(err, model.ErrOutOfRange), errors.Is(err, model.ErrNotFound):
		failf(s.out, "This value is not valid!")
	default:
		failf(s.out, "%s", describe(err))
	}
	return nil
}

func (s *Shell) order() {
	if err := s.sess.Order(); err != nil {
		failf(s.out, "%s", describe(err))
		return
	}
	okf(s.out, "Now your tasks are ordered!")
}

func (s *Shell) view() {
	entries, err := s.sess.Tasks()
	if err != nil {
		failf(s.out, "%s", describe(err))
		return
	}
	ui.Panel(s.out, ui.TaskPanel("Todos", entries, s.Group))
}

func (s *Shell) category() error {
	cat, err := s.readText("Enter the category you want to see: ")
	if err != nil {
		return err
	}
	entries, err := s.sess.TasksInCategory(cat)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			failf(s.out, "No task has this category!")
		} else {
			failf(s.out, "%s", describe(err))
		}
		return nil
	}
	ui.Panel(s.out, ui.TaskPanel(cat, entries, s.Group))
	return nil
}

func (s *Shell) browse() {
	if s.Browse == nil {
		failf(s.out, "interactive browser is not available")
		return
	}
	if err := s.Browse(s.sess, s.Group); err != nil {
		failf(s.out, "browser: %v", err)
	}
}

func (s *Shell) whoAmI() {
	claims, err := s.sess.WhoAmI()
	if err != nil {
		failf(s.out, "%s", describe(err))
		return
	}
	lines := []string{
		"user:   " + claims.Username,
		"id:     " + claims.UserID,
		"slot:   " + strconv.Itoa(claims.Slot),
	}
	if claims.IssuedAt != nil {
		lines = append(lines, "since:  "+claims.IssuedAt.UTC().Format(time.RFC3339))
	}
	ui.Panel(s.out, lines)
}

// ---------------------------------------------------
// Input
// ---------------------------------------------------

// readLine prints prompt and reads lines until a non-blank one arrives,
// prompting again after every blank line.
func (s *Shell) readLine(prompt string) (string, error) {
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// readToken returns the first whitespace-delimited word of the next line.
func (s *Shell) readToken(prompt string) (string, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.Fields(line)[0], nil
}

// readText returns the next line with surrounding whitespace removed.
func (s *Shell) readText(prompt string) (string, error) {
	return s.readLine(prompt)
}

func (s *Shell) readInt(prompt string) (int, error) {
	tok, err := s.readToken(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, errNotNumber)
	}
	return n, nil
}
