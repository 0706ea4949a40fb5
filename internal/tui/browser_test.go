package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/idilsaglam/tasktracker/internal/session"
	"github.com/idilsaglam/tasktracker/internal/store"
)

func newBrowser(t *testing.T, tasks ...[2]string) (Model, *session.Session) {
	t.Helper()
	us := store.NewUserStore(2, store.WithHashCost(bcrypt.MinCost), store.WithTaskCapacity(10))
	sess, err := session.New(us, zerolog.Nop())
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if err := sess.Register("alice01", "Abcdef1!"); err != nil {
		t.Fatalf("register: %v", err)
	}
	for _, tk := range tasks {
		if _, err := sess.CreateTask(tk[0], tk[1]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	m, err := New(sess, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), sess
}

func press(m Model, s string) Model {
	var msg tea.KeyMsg
	switch s {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func descriptions(m Model) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(listItem).Task.Description)
	}
	return out
}

func TestBrowserListsTasks(t *testing.T) {
	m, _ := newBrowser(t, [2]string{"Buy milk", "Home"}, [2]string{"Report", "Work"})
	if got := descriptions(m); len(got) != 2 || got[0] != "Buy milk" || got[1] != "Report" {
		t.Fatalf("unexpected items: %v", got)
	}
	if !strings.Contains(m.View(), "Buy milk") {
		t.Fatalf("view does not show tasks:\n%s", m.View())
	}
}

func TestBrowserCompleteTwice(t *testing.T) {
	m, sess := newBrowser(t, [2]string{"Buy milk", "Home"})

	m = press(m, " ")
	entries, _ := sess.Tasks()
	if !entries[0].Task.Completed {
		t.Fatalf("expected task to be completed through the browser")
	}
	if m.status != "task 1 completed" {
		t.Fatalf("unexpected status: %q", m.status)
	}

	m = press(m, " ")
	if m.status != "task 1 is already completed" {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestBrowserOrder(t *testing.T) {
	m, _ := newBrowser(t, [2]string{"a", ""}, [2]string{"b", ""}, [2]string{"c", ""})
	m = press(m, " ") // complete "a"
	m = press(m, "o")
	if got := descriptions(m); got[0] != "b" || got[1] != "c" || got[2] != "a" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestBrowserCategory(t *testing.T) {
	m, _ := newBrowser(t, [2]string{"report", "Work"}, [2]string{"dishes", "Home"}, [2]string{"meeting", "Work"})

	m = press(m, "c")
	if !m.searching {
		t.Fatalf("expected category input to open")
	}
	m = press(m, "Work")
	m = press(m, "enter")
	if got := descriptions(m); len(got) != 2 || got[0] != "report" || got[1] != "meeting" {
		t.Fatalf("unexpected category items: %v", got)
	}

	m = press(m, "c")
	m = press(m, "Garden")
	m = press(m, "enter")
	if m.category != "Work" || !strings.Contains(m.status, "not found") {
		t.Fatalf("unknown category should keep the previous filter, got %q / %q", m.category, m.status)
	}

	m = press(m, "C")
	if len(descriptions(m)) != 3 {
		t.Fatalf("expected all tasks after clearing the category")
	}
}

func TestPendingFirstGrouping(t *testing.T) {
	entries := []session.Entry{
		{Position: 1}, {Position: 2}, {Position: 3},
	}
	entries[0].Task.Completed = true
	got := pendingFirst(entries)
	if got[0].Position != 2 || got[1].Position != 3 || got[2].Position != 1 {
		t.Fatalf("unexpected grouping: %#v", got)
	}
}
