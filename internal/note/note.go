// Package note is the application state: notes, which one is open, and the
// reducer that owns every transition. State values are snapshots; the reducer
// copies on write and never mutates what it was given.
package note

// Note is a single note.
type Note struct {
	ID      string
	Content string
}

// State is one immutable-by-convention snapshot of the whole app.
type State struct {
	Loading bool
	OpenID  string
	Notes   map[string]Note
}

// Initial returns the state the store is constructed with.
func Initial() State {
	return State{Notes: map[string]Note{}}
}

// Open returns the currently open note, if any.
func (s State) Open() (Note, bool) {
	if s.OpenID == "" {
		return Note{}, false
	}
	n, ok := s.Notes[s.OpenID]
	return n, ok
}

// cloneNotes copies the notes map so a transition never writes into a
// snapshot an earlier subscriber may still hold.
func cloneNotes(notes map[string]Note) map[string]Note {
	out := make(map[string]Note, len(notes)+1)
	for id, n := range notes {
		out[id] = n
	}
	return out
}
