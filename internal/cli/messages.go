package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/idilsaglam/tasktracker/internal/model"
	"github.com/idilsaglam/tasktracker/internal/ui"
)

func okf(w io.Writer, format string, args ...any) {
	ui.OK(w, fmt.Sprintf(format, args...))
}

func failf(w io.Writer, format string, args ...any) {
	ui.Fail(w, fmt.Sprintf(format, args...))
}

// describe turns an error from the core into a line for the user.
func describe(err error) string {
	detail := err.Error()
	var me *model.Error
	if errors.As(err, &me) && me.Msg != "" {
		detail = me.Msg
	}
	switch {
	case errors.Is(err, model.ErrInvalidUsername):
		return "Invalid username: " + detail
	case errors.Is(err, model.ErrInvalidPassword):
		return "Invalid password: " + detail
	case errors.Is(err, model.ErrDuplicate):
		return "This name is already registered!"
	case errors.Is(err, model.ErrCapacityExceeded):
		return "No room left: " + detail
	case errors.Is(err, model.ErrValidation):
		return "Invalid input: " + detail
	case errors.Is(err, model.ErrNotAuthenticated):
		return "You are not logged in."
	}
	return detail
}
