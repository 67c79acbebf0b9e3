package store

import (
	"log"

	"pixelpulse/internal/state"
)

// Listener is called after a command changed the state.
type Listener func(cmd state.Command, prev, next state.State)

// Store owns the dashboard state. It is used from the UI goroutine only.
type Store struct {
	st        state.State
	progress  state.Progress
	listeners map[int]Listener
	nextSub   int
}

func New(initial state.State) *Store {
	return &Store{
		st:        initial,
		progress:  state.ComputeProgress(initial.Tasks),
		listeners: map[int]Listener{},
	}
}

func (s *Store) Snapshot() state.State {
	return s.st
}

// Progress returns task completion for the current snapshot.
func (s *Store) Progress() state.Progress {
	return s.progress
}

// Dispatch applies cmd and notifies listeners if the state changed.
func (s *Store) Dispatch(cmd state.Command) bool {
	prev := s.st
	next, changed := cmd.Apply(prev)
	if !changed {
		return false
	}
	s.st = next
	if tasksChanged(prev.Tasks, next.Tasks) {
		s.progress = state.ComputeProgress(next.Tasks)
	}
	for i := 0; i < s.nextSub; i++ {
		if l, ok := s.listeners[i]; ok {
			l(cmd, prev, next)
		}
	}
	return true
}

// Subscribe registers l and returns a function removing it.
func (s *Store) Subscribe(l Listener) func() {
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	return func() { delete(s.listeners, id) }
}

// Commands never edit a task slice in place, so a changed collection always
// has a new backing array.
func tasksChanged(prev, next []state.Task) bool {
	if len(prev) != len(next) {
		return true
	}
	return len(next) > 0 && &prev[0] != &next[0]
}

// LogCommands writes every applied command to the standard logger.
func LogCommands(cmd state.Command, prev, next state.State) {
	log.Printf("%s: tab=%s tasks=%d notes=%d moods=%d",
		cmd.Name(), next.Tab, len(next.Tasks), len(next.Notes), len(next.Moods))
}
