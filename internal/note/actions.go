package note

import (
	"github.com/google/uuid"

	"github.com/jotdeck/jotdeck/store"
)

// Action variants. Each kind string mirrors the wire surface between UI
// events and the store; reducers switch on the concrete types, not on these
// strings.

// CreateNote with an empty ID requests creation and flips Loading; with an
// assigned ID it inserts the empty note and opens it.
type CreateNote struct {
	ID string
}

func (CreateNote) Kind() string { return "note/create" }

// UpdateNote replaces the content of one note.
type UpdateNote struct {
	ID      string
	Content string
}

func (UpdateNote) Kind() string { return "note/update" }

// OpenNote makes a note the open one.
type OpenNote struct {
	ID string
}

func (OpenNote) Kind() string { return "note/open" }

// CloseNote clears the open note.
type CloseNote struct{}

func (CloseNote) Kind() string { return "note/close" }

// DeleteNote removes a note; if it was open, the editor closes with it.
type DeleteNote struct {
	ID string
}

func (DeleteNote) Kind() string { return "note/delete" }

// NewNoteTask is the two-phase create flow: request first so the UI can show
// the pending state, then the assignment once an id exists.
func NewNoteTask() store.Task[State] {
	return func(api store.API[State]) (store.Action, error) {
		if _, err := api.Dispatch(CreateNote{}); err != nil {
			return nil, err
		}
		return api.Dispatch(CreateNote{ID: uuid.NewString()})
	}
}
