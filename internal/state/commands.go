package state

import (
	"fmt"
	"slices"
	"strings"
)

// Command is a single state transition. Apply returns the next state and
// whether anything changed; an unchanged result is the input state.
type Command interface {
	Apply(State) (State, bool)
	Name() string
}

type AddTask struct{ Text string }

func (c AddTask) Apply(s State) (State, bool) {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return s, false
	}
	s, id := s.nextID()
	s.Tasks = prepend(s.Tasks, Task{ID: id, Text: text})
	s.TaskText = ""
	return s, true
}

func (c AddTask) Name() string { return fmt.Sprintf("add task %q", c.Text) }

type ToggleTask struct{ ID int64 }

func (c ToggleTask) Apply(s State) (State, bool) {
	i := indexOf(s.Tasks, c.ID)
	if i < 0 {
		return s, false
	}
	tasks := slices.Clone(s.Tasks)
	tasks[i] = Task{ID: tasks[i].ID, Text: tasks[i].Text, Done: !tasks[i].Done}
	s.Tasks = tasks
	return s, true
}

func (c ToggleTask) Name() string { return fmt.Sprintf("toggle task %d", c.ID) }

type DeleteTask struct{ ID int64 }

func (c DeleteTask) Apply(s State) (State, bool) {
	tasks, ok := without(s.Tasks, c.ID)
	if !ok {
		return s, false
	}
	s.Tasks = tasks
	return s, true
}

func (c DeleteTask) Name() string { return fmt.Sprintf("delete task %d", c.ID) }

type AddNote struct{ Text string }

func (c AddNote) Apply(s State) (State, bool) {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return s, false
	}
	s, id := s.nextID()
	s.Notes = prepend(s.Notes, Note{ID: id, Text: text})
	s.NoteText = ""
	return s, true
}

func (c AddNote) Name() string { return fmt.Sprintf("add note %q", c.Text) }

type DeleteNote struct{ ID int64 }

func (c DeleteNote) Apply(s State) (State, bool) {
	notes, ok := without(s.Notes, c.ID)
	if !ok {
		return s, false
	}
	s.Notes = notes
	return s, true
}

func (c DeleteNote) Name() string { return fmt.Sprintf("delete note %d", c.ID) }

type AddMood struct{ Text string }

func (c AddMood) Apply(s State) (State, bool) {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return s, false
	}
	s, id := s.nextID()
	s.Moods = prepend(s.Moods, MoodEntry{ID: id, Text: text})
	s.MoodText = ""
	return s, true
}

func (c AddMood) Name() string { return fmt.Sprintf("add mood %q", c.Text) }

type DeleteMood struct{ ID int64 }

func (c DeleteMood) Apply(s State) (State, bool) {
	moods, ok := without(s.Moods, c.ID)
	if !ok {
		return s, false
	}
	s.Moods = moods
	return s, true
}

func (c DeleteMood) Name() string { return fmt.Sprintf("delete mood %d", c.ID) }

type SetTab struct{ Tab Tab }

func (c SetTab) Apply(s State) (State, bool) {
	tab, ok := ParseTab(string(c.Tab))
	if !ok || tab == s.Tab {
		return s, false
	}
	s.Tab = tab
	return s, true
}

func (c SetTab) Name() string { return fmt.Sprintf("set tab %s", c.Tab) }

type SetTaskText struct{ Text string }

func (c SetTaskText) Apply(s State) (State, bool) {
	if s.TaskText == c.Text {
		return s, false
	}
	s.TaskText = c.Text
	return s, true
}

func (c SetTaskText) Name() string { return "set task text" }

type SetNoteText struct{ Text string }

func (c SetNoteText) Apply(s State) (State, bool) {
	if s.NoteText == c.Text {
		return s, false
	}
	s.NoteText = c.Text
	return s, true
}

func (c SetNoteText) Name() string { return "set note text" }

type SetMoodText struct{ Text string }

func (c SetMoodText) Apply(s State) (State, bool) {
	if s.MoodText == c.Text {
		return s, false
	}
	s.MoodText = c.Text
	return s, true
}

func (c SetMoodText) Name() string { return "set mood text" }

// AddFor returns the add command for tab carrying text.
func AddFor(tab Tab, text string) Command {
	switch tab {
	case TabNotes:
		return AddNote{Text: text}
	case TabMood:
		return AddMood{Text: text}
	default:
		return AddTask{Text: text}
	}
}

// DeleteFor returns the delete command for an entry of tab.
func DeleteFor(tab Tab, id int64) Command {
	switch tab {
	case TabNotes:
		return DeleteNote{ID: id}
	case TabMood:
		return DeleteMood{ID: id}
	default:
		return DeleteTask{ID: id}
	}
}

// SetTextFor returns the buffer update command for tab.
func SetTextFor(tab Tab, text string) Command {
	switch tab {
	case TabNotes:
		return SetNoteText{Text: text}
	case TabMood:
		return SetMoodText{Text: text}
	default:
		return SetTaskText{Text: text}
	}
}
