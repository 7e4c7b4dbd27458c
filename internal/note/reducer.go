package note

import (
	"fmt"

	"github.com/jotdeck/jotdeck/store"
)

// Reduce is the application reducer. Unknown action kinds, including the
// store's reserved init action, return the state unchanged.
func Reduce(s State, a store.Action) (State, error) {
	switch a := a.(type) {
	case CreateNote:
		if a.ID == "" {
			s.Loading = true
			return s, nil
		}
		notes := cloneNotes(s.Notes)
		notes[a.ID] = Note{ID: a.ID}
		return State{Loading: false, OpenID: a.ID, Notes: notes}, nil

	case UpdateNote:
		n, ok := s.Notes[a.ID]
		if !ok {
			return s, fmt.Errorf("update: no note %q", a.ID)
		}
		n.Content = a.Content
		notes := cloneNotes(s.Notes)
		notes[a.ID] = n
		s.Notes = notes
		return s, nil

	case OpenNote:
		if _, ok := s.Notes[a.ID]; !ok {
			return s, fmt.Errorf("open: no note %q", a.ID)
		}
		s.OpenID = a.ID
		return s, nil

	case CloseNote:
		s.OpenID = ""
		return s, nil

	case DeleteNote:
		if _, ok := s.Notes[a.ID]; !ok {
			return s, nil
		}
		notes := cloneNotes(s.Notes)
		delete(notes, a.ID)
		s.Notes = notes
		if s.OpenID == a.ID {
			s.OpenID = ""
		}
		return s, nil

	default:
		return s, nil
	}
}
