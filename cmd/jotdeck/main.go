package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jotdeck/jotdeck/internal/config"
	"github.com/jotdeck/jotdeck/internal/logging"
	"github.com/jotdeck/jotdeck/internal/note"
	"github.com/jotdeck/jotdeck/internal/tui"
	"github.com/jotdeck/jotdeck/store"
)

func main() {
	godotenv.Load() // load .env file if present

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logger.Close()

	mws := []store.Middleware[note.State]{
		store.Logging[note.State](logger.Log),
		store.Tasks[note.State](),
	}
	if d := cfg.Store.DispatchDelayMS; d > 0 {
		mws = append(mws, store.Delay[note.State](
			time.Duration(d)*time.Millisecond,
			func(err error) { logger.Log.Error().Err(err).Msg("deferred dispatch") },
		))
	}

	st, err := store.New(note.Reduce, note.Initial(), mws...)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	p := tea.NewProgram(tui.New(st, cfg, logger.Log), tea.WithAltScreen())

	// Repaint on state changes that arrive outside the update loop
	// (deferred dispatches, task continuations).
	unsub := st.Subscribe(func() { p.Send(tui.RefreshMsg{}) })
	defer unsub()

	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
