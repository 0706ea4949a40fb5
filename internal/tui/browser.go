// Package tui is the interactive task browser: a bubbles list over the
// current user's tasks with keys to complete, order and filter by category.
package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasktracker/internal/model"
	"github.com/idilsaglam/tasktracker/internal/session"
	"github.com/idilsaglam/tasktracker/internal/ui"
)

// listItem adapts a session entry to bubbles/list.Item
type listItem struct {
	session.Entry
}

func (i listItem) Title() string       { return i.Task.Description }
func (i listItem) Description() string { return i.Task.Category }
func (i listItem) FilterValue() string { return i.Task.Description }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+ui.TaskLine(it.Entry))
}

var selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

type keyMap struct {
	Complete key.Binding
	Order    key.Binding
	Category key.Binding
	Clear    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Complete: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "complete")),
		Order:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Clear:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "all tasks")),
	}
}

// Model is the bubbletea model of the browser. Every change goes through the
// session, and the list is reloaded from it afterwards.
type Model struct {
	sess *session.Session
	list list.Model
	keys keyMap

	searching bool
	ti        textinput.Model
	category  string // "" shows every task
	status    string
	group     bool
}

func New(sess *session.Session, group bool) (Model, error) {
	keys := newKeyMap()
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	bindings := func() []key.Binding { return []key.Binding{keys.Complete, keys.Order, keys.Category, keys.Clear} }
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Category..."
	ti.CharLimit = 100

	m := Model{sess: sess, list: l, keys: keys, ti: ti, group: group}
	if err := m.reload(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(sess *session.Session, group bool) error {
	m, err := New(sess, group)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) reload() error {
	var (
		entries []session.Entry
		err     error
	)
	if m.category == "" {
		entries, err = m.sess.Tasks()
	} else {
		entries, err = m.sess.TasksInCategory(m.category)
	}
	if err != nil {
		return err
	}
	if m.group {
		entries = pendingFirst(entries)
	}

	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, listItem{e})
	}
	m.list.SetItems(items)

	done, pending, err := m.sess.Stats()
	if err != nil {
		return err
	}
	title := "Tasks"
	if m.category != "" {
		title = "Tasks in " + m.category
	}
	m.list.Title = ui.Header(title, done, pending)
	return nil
}

// pendingFirst is a display-only grouping; the store is not reordered.
func pendingFirst(entries []session.Entry) []session.Entry {
	out := make([]session.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Task.Completed {
			out = append(out, e)
		}
	}
	for _, e := range entries {
		if e.Task.Completed {
			out = append(out, e)
		}
	}
	return out
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Complete):
			m.complete()
			return m, nil
		case key.Matches(msg, m.keys.Order):
			if err := m.sess.Order(); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.category = ""
			m.setStatus(m.reload(), "ordered: pending tasks first")
			return m, nil
		case key.Matches(msg, m.keys.Category):
			m.searching = true
			m.ti.SetValue("")
			return m, m.ti.Focus()
		case key.Matches(msg, m.keys.Clear):
			m.category = ""
			m.setStatus(m.reload(), "showing all tasks")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) complete() {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		m.status = "no task selected"
		return
	}
	if err := m.sess.Complete(it.Position); err != nil {
		if errors.Is(err, model.ErrAlreadyCompleted) {
			m.status = fmt.Sprintf("task %d is already completed", it.Position)
		} else {
			m.status = err.Error()
		}
		return
	}
	idx := m.list.Index()
	m.setStatus(m.reload(), fmt.Sprintf("task %d completed", it.Position))
	m.list.Select(idx)
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			prev := m.category
			m.category = m.ti.Value()
			m.searching = false
			m.ti.Blur()
			if err := m.reload(); err != nil {
				m.category = prev
				m.status = err.Error()
				return m, nil
			}
			m.status = ""
			return m, nil
		case "esc":
			m.searching = false
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(err error, okMsg string) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = okMsg
}

func (m Model) View() string {
	content := m.list.View()
	if m.status != "" {
		content += "\n" + ui.Current().Muted.Render(m.status)
	}
	if m.searching {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		content += "\n" + bar.Render("Show category\n"+m.ti.View())
	}
	return ui.PanelString(content)
}
