package ui

import (
	"fmt"

	"github.com/idilsaglam/tasktracker/internal/session"
)

const maxDescriptionWidth = 80

// Header is the counts line shown above a task listing.
func Header(title string, done, pending int) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(title),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), done+pending,
	)
}

// TaskLine renders one entry as "NN. [box] description  (category)".
func TaskLine(e session.Entry) string {
	t := Current()
	box, desc := t.Muted.Render(t.BoxUnchecked), e.Task.Description
	if len(desc) > maxDescriptionWidth {
		desc = desc[:maxDescriptionWidth-3] + "..."
	}
	if e.Task.Completed {
		box, desc = t.Success.Render(t.BoxChecked), t.Done.Render(desc)
	}
	line := fmt.Sprintf("%2d. %s %s", e.Position, box, desc)
	if e.Task.Category != "" {
		line += "  " + t.Accent.Render("("+e.Task.Category+")")
	}
	return line
}

func FlatLines(entries []session.Entry) []string {
	if len(entries) == 0 {
		return []string{Current().Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, TaskLine(e))
	}
	return out
}

// GroupLines lists pending entries and then completed ones under their own
// headings. Positions are left untouched.
func GroupLines(entries []session.Entry) []string {
	var pend, done []session.Entry
	for _, e := range entries {
		if e.Task.Completed {
			done = append(done, e)
		} else {
			pend = append(pend, e)
		}
	}
	t := Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, FlatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, FlatLines(done)...)
	}
	return lines
}

// TaskPanel builds the full listing: header, progress bar, then the entries.
func TaskPanel(title string, entries []session.Entry, group bool) []string {
	done := 0
	for _, e := range entries {
		if e.Task.Completed {
			done++
		}
	}
	pending := len(entries) - done

	lines := []string{
		Header(title, done, pending),
		Current().Muted.Render(ProgressBar(done, done+pending, 28)),
		"",
	}
	if group {
		lines = append(lines, GroupLines(entries)...)
	} else {
		lines = append(lines, FlatLines(entries)...)
	}
	return lines
}
