package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pixelpulse/internal/config"
	"pixelpulse/internal/state"
	"pixelpulse/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeInput
	modeConfirm
)

const defaultWidth = 100

type Model struct {
	store   *store.Store
	cfg     config.Config
	keys    keyMap
	help    help.Model
	bar     progress.Model
	inputs  [3]textinput.Model
	cursors [3]int
	mode    mode
	pending int64
	status  string
	width   int
}

func Run(st *store.Store, cfg config.Config) error {
	program := tea.NewProgram(New(st, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func New(st *store.Store, cfg config.Config) Model {
	m := Model{
		store:  st,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		status: fmt.Sprintf("Press '%s' to write, %s to switch tabs.", keyLabel(cfg.Keys.Focus), cfg.Keys.NextTab),
		width:  defaultWidth,
		bar: progress.New(
			progress.WithSolidFill(string(colorAccent)),
			progress.WithoutPercentage(),
			progress.WithWidth(cfg.BarWidth),
		),
	}
	snap := st.Snapshot()
	for i, tab := range state.Tabs() {
		ti := textinput.New()
		ti.Placeholder = placeholder(tab)
		ti.CharLimit = 256
		ti.Prompt = "› "
		ti.SetValue(snap.Buffer(tab))
		m.inputs[i] = ti
	}
	m.resizeInputs()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeConfirm:
			return m.updateDeleteConfirm(msg.String())
		case modeInput:
			return m.updateInputMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.resizeInputs()
		return m, nil
	}
	if m.mode == modeInput {
		var cmd tea.Cmd
		i := m.tabIndex()
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tab := m.tab()
	i := m.tabIndex()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.inputs[i].Blur()
		m.mode = modeList
		m.status = "Input closed"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		text := m.store.Snapshot().Buffer(tab)
		if !m.store.Dispatch(state.AddFor(tab, text)) {
			m.status = "Nothing to add"
			return m, nil
		}
		m.inputs[i].SetValue(m.store.Snapshot().Buffer(tab))
		m.cursors[i] = 0
		m.status = "Added " + noun(tab)
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	m.store.Dispatch(state.SetTextFor(tab, m.inputs[i].Value()))
	return m, cmd
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.store.Snapshot()
	tab := snap.Tab
	i := m.tabIndex()
	n := snap.Len(tab)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursors[i] = clampCursor(m.cursors[i]+1, n)
	case key.Matches(msg, m.keys.Up):
		m.cursors[i] = clampCursor(m.cursors[i]-1, n)
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(cycleTab(tab, 1)), nil
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(cycleTab(tab, -1)), nil
	case key.Matches(msg, m.keys.TabTasks):
		return m.switchTab(state.TabTasks), nil
	case key.Matches(msg, m.keys.TabNotes):
		return m.switchTab(state.TabNotes), nil
	case key.Matches(msg, m.keys.TabMood):
		return m.switchTab(state.TabMood), nil
	case key.Matches(msg, m.keys.Focus):
		m.mode = modeInput
		m.status = fmt.Sprintf("Writing %s: %s to add, %s to leave", noun(tab), keyLabel(m.cfg.Keys.Confirm), m.cfg.Keys.Cancel)
		cmd := m.inputs[i].Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		if tab != state.TabTasks {
			return m, nil
		}
		id, ok := snap.IDAt(tab, m.cursors[i])
		if !ok {
			return m, nil
		}
		if m.store.Dispatch(state.ToggleTask{ID: id}) {
			m.status = "Toggled task"
		}
	case key.Matches(msg, m.keys.Delete):
		id, ok := snap.IDAt(tab, m.cursors[i])
		if !ok {
			return m, nil
		}
		if m.cfg.ConfirmDelete {
			m.mode = modeConfirm
			m.pending = id
			m.status = fmt.Sprintf("Delete %s? y/n", noun(tab))
			return m, nil
		}
		return m.deleteEntry(id), nil
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.status = "Delete cancelled"
		m.mode = modeList
		m.pending = 0
		return m, nil
	case "y", "Y":
		m.mode = modeList
		m = m.deleteEntry(m.pending)
		m.pending = 0
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) deleteEntry(id int64) Model {
	tab := m.tab()
	if !m.store.Dispatch(state.DeleteFor(tab, id)) {
		m.status = "Nothing to delete"
		return m
	}
	i := m.tabIndex()
	m.cursors[i] = clampCursor(m.cursors[i], m.store.Snapshot().Len(tab))
	m.status = "Deleted " + noun(tab)
	return m
}

func (m Model) switchTab(tab state.Tab) Model {
	if m.store.Dispatch(state.SetTab{Tab: tab}) {
		m.status = tab.Title()
	}
	return m
}

func (m *Model) resizeInputs() {
	w := m.contentWidth() - 12
	if w < 10 {
		w = 10
	}
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
}

func (m Model) tab() state.Tab {
	return m.store.Snapshot().Tab
}

func (m Model) tabIndex() int {
	return tabIndex(m.tab())
}

func tabIndex(tab state.Tab) int {
	for i, t := range state.Tabs() {
		if t == tab {
			return i
		}
	}
	return 0
}

func cycleTab(tab state.Tab, step int) state.Tab {
	tabs := state.Tabs()
	return tabs[wrapIndex(tabIndex(tab)+step, len(tabs))]
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func noun(tab state.Tab) string {
	switch tab {
	case state.TabNotes:
		return "note"
	case state.TabMood:
		return "mood"
	}
	return "task"
}

func placeholder(tab state.Tab) string {
	switch tab {
	case state.TabNotes:
		return "Write a note..."
	case state.TabMood:
		return "Example: Happy 😄"
	}
	return "Add a new task..."
}
