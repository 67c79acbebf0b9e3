package ui

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pixelpulse/internal/config"
	"pixelpulse/internal/state"
	"pixelpulse/internal/store"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func newTestModel(t *testing.T, cfg config.Config) (Model, *store.Store) {
	t.Helper()
	st := store.New(state.New())
	return New(st, cfg), st
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, string(r))
	}
	return m
}

func TestTaskLifecycleThroughKeys(t *testing.T) {
	m, st := newTestModel(t, config.Default())

	m = press(t, m, "a")
	m = typeText(t, m, "write spec")
	if got := st.Snapshot().TaskText; got != "write spec" {
		t.Fatalf("task buffer = %q", got)
	}
	m = press(t, m, "enter")

	snap := st.Snapshot()
	if len(snap.Tasks) != 1 || snap.Tasks[0].Text != "write spec" || snap.Tasks[0].Done {
		t.Fatalf("tasks = %+v", snap.Tasks)
	}
	if snap.TaskText != "" || m.inputs[0].Value() != "" {
		t.Fatalf("buffer not cleared: store=%q input=%q", snap.TaskText, m.inputs[0].Value())
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "write spec") || !strings.Contains(view, "0%") {
		t.Fatalf("view missing task or progress; view=%q", view)
	}

	m = press(t, m, "esc", " ")
	if p := st.Progress(); p.Percent != 100 {
		t.Fatalf("progress after toggle = %+v", p)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "100%") || !strings.Contains(view, "✓ write spec") {
		t.Fatalf("view missing completed task; view=%q", view)
	}

	m = press(t, m, "d")
	if len(st.Snapshot().Tasks) != 0 || st.Progress().Percent != 0 {
		t.Fatalf("task not deleted: %+v", st.Snapshot().Tasks)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "No tasks found. Add one ✨") {
		t.Fatalf("expected empty state; view=%q", view)
	}
}

func TestBlankInputIsIgnored(t *testing.T) {
	m, st := newTestModel(t, config.Default())
	m = press(t, m, "a")
	m = typeText(t, m, "   ")
	m = press(t, m, "enter")

	if len(st.Snapshot().Tasks) != 0 {
		t.Fatalf("blank task added: %+v", st.Snapshot().Tasks)
	}
	if m.status != "Nothing to add" {
		t.Fatalf("status = %q", m.status)
	}
	if m.mode != modeInput {
		t.Fatalf("mode = %v, want input", m.mode)
	}
}

func TestNewestEntriesRenderFirst(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	m = press(t, m, "a")
	m = typeText(t, m, "alpha")
	m = press(t, m, "enter")
	m = typeText(t, m, "bravo")
	m = press(t, m, "enter")

	view := stripANSI(m.View())
	a, b := strings.Index(view, "alpha"), strings.Index(view, "bravo")
	if a < 0 || b < 0 || b > a {
		t.Fatalf("expected bravo before alpha; view=%q", view)
	}
}

func TestTabSwitchingShowsOnlyActiveContent(t *testing.T) {
	m, st := newTestModel(t, config.Default())

	m = press(t, m, "2")
	if st.Snapshot().Tab != state.TabNotes {
		t.Fatalf("tab = %q, want notes", st.Snapshot().Tab)
	}
	m = press(t, m, "tab")
	if st.Snapshot().Tab != state.TabMood {
		t.Fatalf("tab = %q, want mood", st.Snapshot().Tab)
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "Log your mood and reflect on your day.") {
		t.Fatalf("mood content missing; view=%q", view)
	}
	if strings.Contains(view, "Save quick notes") || strings.Contains(view, "Track your daily goals") {
		t.Fatalf("inactive tab content rendered; view=%q", view)
	}
	if !strings.Contains(view, "No mood logs yet. Add one 😊") {
		t.Fatalf("mood empty state missing; view=%q", view)
	}

	m = press(t, m, "tab")
	if st.Snapshot().Tab != state.TabTasks {
		t.Fatalf("tab did not wrap to tasks: %q", st.Snapshot().Tab)
	}
	press(t, m, "shift+tab")
	if st.Snapshot().Tab != state.TabMood {
		t.Fatalf("shift+tab = %q, want mood", st.Snapshot().Tab)
	}
}

func TestBuffersSurviveTabSwitch(t *testing.T) {
	m, st := newTestModel(t, config.Default())
	m = press(t, m, "a")
	m = typeText(t, m, "half a task")
	m = press(t, m, "esc", "2", "a")
	m = typeText(t, m, "note")
	m = press(t, m, "enter", "esc", "1")

	snap := st.Snapshot()
	if snap.TaskText != "half a task" {
		t.Fatalf("task buffer = %q", snap.TaskText)
	}
	if len(snap.Notes) != 1 || len(snap.Tasks) != 0 {
		t.Fatalf("notes=%d tasks=%d", len(snap.Notes), len(snap.Tasks))
	}
	if m.inputs[0].Value() != "half a task" {
		t.Fatalf("task input = %q", m.inputs[0].Value())
	}
}

func TestQuitKeyIsTextWhileWriting(t *testing.T) {
	m, st := newTestModel(t, config.Default())
	m = press(t, m, "a")
	next, cmd := m.Update(keyMsg("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatalf("q quit while writing")
		}
	}
	if st.Snapshot().TaskText != "q" {
		t.Fatalf("buffer = %q", st.Snapshot().TaskText)
	}

	m = press(t, next.(Model), "esc")
	_, cmd = m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q in list mode did not quit")
	}
}

func TestToggleOnlyAppliesToTasks(t *testing.T) {
	m, st := newTestModel(t, config.Default())
	m = press(t, m, "2", "a")
	m = typeText(t, m, "remember milk")
	m = press(t, m, "enter", "esc")

	before := st.Snapshot()
	press(t, m, " ")
	if after := st.Snapshot(); len(after.Notes) != 1 || after.Notes[0] != before.Notes[0] {
		t.Fatalf("toggle changed notes: %+v", after.Notes)
	}
}

func TestDeleteConfirmation(t *testing.T) {
	cfg := config.Default()
	cfg.ConfirmDelete = true
	m, st := newTestModel(t, cfg)
	m = press(t, m, "3", "a")
	m = typeText(t, m, "calm")
	m = press(t, m, "enter", "esc")

	m = press(t, m, "d")
	if m.mode != modeConfirm {
		t.Fatalf("mode = %v, want confirm", m.mode)
	}
	m = press(t, m, "n")
	if len(st.Snapshot().Moods) != 1 {
		t.Fatalf("mood deleted after cancel")
	}

	m = press(t, m, "d", "y")
	if len(st.Snapshot().Moods) != 0 {
		t.Fatalf("mood not deleted after confirm")
	}
	if m.status != "Deleted mood" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestCursorMovesAndDeletesSelected(t *testing.T) {
	m, st := newTestModel(t, config.Default())
	m = press(t, m, "a")
	for _, s := range []string{"one", "two", "three"} {
		m = typeText(t, m, s)
		m = press(t, m, "enter")
	}
	m = press(t, m, "esc", "j", "j", "j", "d")

	var got []string
	for _, task := range st.Snapshot().Tasks {
		got = append(got, task.Text)
	}
	if strings.Join(got, ",") != "three,two" {
		t.Fatalf("tasks = %v, want [three two]", got)
	}
	if m.cursors[0] != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursors[0])
	}
}

func TestCtrlCQuitsFromAnyMode(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	m = press(t, m, "a")
	_, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c did not quit")
	}
}
