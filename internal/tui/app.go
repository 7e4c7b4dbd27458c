// Package tui renders the note list and editor. Every pane is a pure
// function of props derived through a bind.Binding; nothing in here reaches
// into store state directly.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jotdeck/jotdeck/bind"
	"github.com/jotdeck/jotdeck/internal/config"
	"github.com/jotdeck/jotdeck/internal/note"
	"github.com/jotdeck/jotdeck/store"
)

// RefreshMsg asks the program to repaint after an out-of-loop state change
// (a deferred middleware continuation, a task on a timer goroutine). The
// composition root forwards one per store notification.
type RefreshMsg struct{}

type focusArea int

const (
	focusList focusArea = iota
	focusEditor
	focusSearch
)

// ---------------------------------------------------------------------------
// Pane props
// ---------------------------------------------------------------------------

type listOwn struct {
	Query string
}

type listProps struct {
	Notes   []note.Note
	Loading bool
	OpenID  string
	Total   int
}

type listActions struct {
	Open   func(id string) error
	Create func() error
	Delete func(id string) error
}

type editorProps struct {
	Note   note.Note
	IsOpen bool
}

type editorActions struct {
	Update func(id, content string) error
	Close  func() error
}

// ---------------------------------------------------------------------------
// App
// ---------------------------------------------------------------------------

// App is the root model. It owns presentation state only (focus, cursors,
// input buffers); everything else arrives through its two bindings.
type App struct {
	cfg    config.Config
	log    zerolog.Logger
	styles styles

	list   *bind.Binding[note.State, listOwn, listProps, listActions]
	editor *bind.Binding[note.State, struct{}, editorProps, editorActions]

	focus      focusArea
	cursor     int
	search     textField
	edit       textField
	lastOpenID string
	status     string
	width      int
	height     int
}

// New connects the app to st and mounts its bindings. The store arrives as
// an explicit dependency from the composition root.
func New(st *store.Store[note.State], cfg config.Config, log zerolog.Logger) *App {
	a := &App{
		cfg:    cfg,
		log:    log,
		styles: newStyles(accentColor(cfg.UI.Accent)),
		width:  80,
		height: 24,
	}

	maxResults := cfg.Search.MaxResults
	a.list = bind.Connect[note.State, listOwn, listProps, listActions](st,
		func(s note.State, own listOwn) listProps {
			return listProps{
				Notes:   note.Rank(s.Notes, own.Query, maxResults),
				Loading: s.Loading,
				OpenID:  s.OpenID,
				Total:   len(s.Notes),
			}
		},
		func(d store.Dispatcher, _ listOwn) listActions {
			return listActions{
				Open: func(id string) error {
					_, err := d(note.OpenNote{ID: id})
					return err
				},
				Create: func() error {
					_, err := d(note.NewNoteTask())
					return err
				},
				Delete: func(id string) error {
					_, err := d(note.DeleteNote{ID: id})
					return err
				},
			}
		},
	)
	a.editor = bind.Connect[note.State, struct{}, editorProps, editorActions](st,
		func(s note.State, _ struct{}) editorProps {
			n, ok := s.Open()
			return editorProps{Note: n, IsOpen: ok}
		},
		func(d store.Dispatcher, _ struct{}) editorActions {
			return editorActions{
				Update: func(id, content string) error {
					_, err := d(note.UpdateNote{ID: id, Content: content})
					return err
				},
				Close: func() error {
					_, err := d(note.CloseNote{})
					return err
				},
			}
		},
	)

	a.list.Mount(listOwn{}, func(p bind.Props[listProps, listActions]) {
		log.Debug().Int("visible", len(p.State.Notes)).Int("total", p.State.Total).Msg("list props")
	})
	a.editor.Mount(struct{}{}, func(p bind.Props[editorProps, editorActions]) {
		log.Debug().Bool("open", p.State.IsOpen).Str("note", p.State.Note.ID).Msg("editor props")
	})
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case RefreshMsg:
		a.syncEditor()
		a.clampCursor()
		return a, nil
	case tea.KeyMsg:
		return a.updateKey(msg)
	}
	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := normalizeKeyName(msg.String())
	if key == "ctrl+c" {
		return a.quit()
	}
	a.status = ""
	switch a.focus {
	case focusSearch:
		return a.updateSearch(msg, key)
	case focusEditor:
		return a.updateEditor(msg, key)
	default:
		return a.updateList(msg, key)
	}
}

func (a *App) updateSearch(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		a.search.set("")
		a.list.SetOwn(listOwn{})
		a.cursor = 0
		a.focus = focusList
	case "enter":
		a.cursor = 0
		a.focus = focusList
	default:
		if a.search.handleKey(key, msg.String(), false) {
			a.list.SetOwn(listOwn{Query: a.search.value})
			a.cursor = 0
		}
	}
	return a, nil
}

func (a *App) updateList(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	p := a.list.Props()
	notes := p.State.Notes
	switch key {
	case "q":
		return a.quit()
	case "j", "down":
		if a.cursor < len(notes)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "enter":
		if n, ok := a.selected(); ok {
			a.act(p.Dispatch.Open(n.ID))
			a.focus = focusEditor
			a.syncEditor()
		}
	case "n":
		a.act(p.Dispatch.Create())
		a.cursor = 0
		a.focus = focusEditor
		a.syncEditor()
	case "d":
		if n, ok := a.selected(); ok {
			a.act(p.Dispatch.Delete(n.ID))
			a.syncEditor()
			a.clampCursor()
		}
	case "/":
		a.focus = focusSearch
	case "tab":
		if a.editor.Props().State.IsOpen {
			a.focus = focusEditor
		}
	}
	return a, nil
}

func (a *App) updateEditor(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	p := a.editor.Props()
	if !p.State.IsOpen {
		a.focus = focusList
		return a, nil
	}
	switch key {
	case "esc":
		a.act(p.Dispatch.Close())
		a.focus = focusList
		a.syncEditor()
	case "tab":
		a.focus = focusList
	default:
		if a.edit.handleKey(key, msg.String(), true) {
			a.act(p.Dispatch.Update(p.State.Note.ID, a.edit.value))
		}
	}
	return a, nil
}

// act routes a dispatch failure to the status line; the interaction aborts,
// the app keeps running.
func (a *App) act(err error) {
	if err != nil {
		a.status = err.Error()
		a.log.Error().Err(err).Msg("dispatch")
	}
}

func (a *App) selected() (note.Note, bool) {
	notes := a.list.Props().State.Notes
	if a.cursor < 0 || a.cursor >= len(notes) {
		return note.Note{}, false
	}
	return notes[a.cursor], true
}

func (a *App) clampCursor() {
	if n := len(a.list.Props().State.Notes); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// syncEditor reloads the edit buffer when a different note (or none) became
// the open one. Keystroke updates round-trip through the store without
// touching the cursor, so this must only fire on identity changes.
func (a *App) syncEditor() {
	p := a.editor.Props()
	id := ""
	if p.State.IsOpen {
		id = p.State.Note.ID
	}
	if id == a.lastOpenID {
		return
	}
	a.lastOpenID = id
	a.edit.set(p.State.Note.Content)
	if id == "" && a.focus == focusEditor {
		a.focus = focusList
	}
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.list.Unmount()
	a.editor.Unmount()
	return a, tea.Quit
}
