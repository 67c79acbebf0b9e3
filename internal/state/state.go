package state

import "strings"

type Tab string

const (
	TabTasks Tab = "tasks"
	TabNotes Tab = "notes"
	TabMood  Tab = "mood"
)

// Tabs lists the selectable tabs in display order.
func Tabs() []Tab {
	return []Tab{TabTasks, TabNotes, TabMood}
}

// ParseTab reports whether s names one of the dashboard tabs.
func ParseTab(s string) (Tab, bool) {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabTasks:
		return TabTasks, true
	case TabNotes:
		return TabNotes, true
	case TabMood:
		return TabMood, true
	}
	return "", false
}

func (t Tab) Title() string {
	switch t {
	case TabTasks:
		return "Tasks"
	case TabNotes:
		return "Notes"
	case TabMood:
		return "Mood"
	}
	return string(t)
}

type Task struct {
	ID   int64
	Text string
	Done bool
}

type Note struct {
	ID   int64
	Text string
}

type MoodEntry struct {
	ID   int64
	Text string
}

func (t Task) key() int64      { return t.ID }
func (n Note) key() int64      { return n.ID }
func (m MoodEntry) key() int64 { return m.ID }

// State is the whole dashboard snapshot. Collections are ordered newest first.
// A State is never modified in place; commands return a new value.
type State struct {
	Tab   Tab
	Tasks []Task
	Notes []Note
	Moods []MoodEntry

	TaskText string
	NoteText string
	MoodText string

	lastID int64
}

func New() State {
	return State{Tab: TabTasks}
}

// Buffer returns the pending input text for tab.
func (s State) Buffer(tab Tab) string {
	switch tab {
	case TabTasks:
		return s.TaskText
	case TabNotes:
		return s.NoteText
	case TabMood:
		return s.MoodText
	}
	return ""
}

// Len returns the number of entries in the collection shown by tab.
func (s State) Len(tab Tab) int {
	switch tab {
	case TabTasks:
		return len(s.Tasks)
	case TabNotes:
		return len(s.Notes)
	case TabMood:
		return len(s.Moods)
	}
	return 0
}

// IDAt returns the id of the i-th entry of the tab's collection.
func (s State) IDAt(tab Tab, i int) (int64, bool) {
	if i < 0 || i >= s.Len(tab) {
		return 0, false
	}
	switch tab {
	case TabTasks:
		return s.Tasks[i].ID, true
	case TabNotes:
		return s.Notes[i].ID, true
	case TabMood:
		return s.Moods[i].ID, true
	}
	return 0, false
}

func (s State) nextID() (State, int64) {
	s.lastID++
	return s, s.lastID
}

type keyed interface {
	key() int64
}

func prepend[T any](xs []T, x T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, x)
	return append(out, xs...)
}

func indexOf[T keyed](xs []T, id int64) int {
	for i, x := range xs {
		if x.key() == id {
			return i
		}
	}
	return -1
}

func without[T keyed](xs []T, id int64) ([]T, bool) {
	i := indexOf(xs, id)
	if i < 0 {
		return xs, false
	}
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...), true
}
