package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jotdeck/jotdeck/internal/note"
)

func (a *App) View() string {
	listWidth := a.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	editorWidth := a.width - listWidth - 2
	if editorWidth < 20 {
		editorWidth = 20
	}
	bodyHeight := a.height - 3
	if bodyHeight < 4 {
		bodyHeight = 4
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.viewList(listWidth, bodyHeight),
		a.viewEditor(editorWidth, bodyHeight),
	)
	return body + "\n" + a.viewFooter()
}

func (a *App) viewList(width, height int) string {
	p := a.list.Props().State
	var b strings.Builder

	title := fmt.Sprintf("Notes (%d)", p.Total)
	if len(p.Notes) != p.Total {
		title = fmt.Sprintf("Notes (%d/%d)", len(p.Notes), p.Total)
	}
	b.WriteString(a.styles.title.Render(title))
	if p.Loading {
		b.WriteString(" " + a.styles.statusLoading.Render("creating..."))
	}
	b.WriteString("\n")

	if a.focus == focusSearch || a.search.value != "" {
		line := "/" + a.search.value
		if a.focus == focusSearch {
			line = "/" + a.search.view()
		}
		b.WriteString(a.styles.searchLabel.Render(line) + "\n")
	}

	if len(p.Notes) == 0 {
		b.WriteString(a.styles.dimmed.Render("no notes yet, press n"))
	}
	for i, n := range p.Notes {
		label := truncate(note.Title(n), width-6)
		marker := "  "
		if n.ID == p.OpenID {
			marker = "• "
		}
		row := marker + label
		if i == a.cursor && a.focus != focusEditor {
			row = a.styles.selectedRow.Render(row)
		} else {
			row = a.styles.row.Render(row)
		}
		b.WriteString(row + "\n")
	}

	pane := a.styles.paneBlurred
	if a.focus == focusList || a.focus == focusSearch {
		pane = a.styles.paneFocused
	}
	return pane.Width(width).Height(height).Render(b.String())
}

func (a *App) viewEditor(width, height int) string {
	p := a.editor.Props().State
	var b strings.Builder

	if !p.IsOpen {
		b.WriteString(a.styles.dimmed.Render("no note open"))
	} else {
		b.WriteString(a.styles.title.Render(truncate(note.Title(p.Note), width-4)) + "\n\n")
		if a.focus == focusEditor {
			b.WriteString(a.edit.view())
		} else {
			b.WriteString(p.Note.Content)
		}
	}

	pane := a.styles.paneBlurred
	if a.focus == focusEditor {
		pane = a.styles.paneFocused
	}
	return pane.Width(width).Height(height).Render(b.String())
}

func (a *App) viewFooter() string {
	var hints string
	switch a.focus {
	case focusSearch:
		hints = "enter apply · esc clear"
	case focusEditor:
		hints = "esc close · tab list"
	default:
		hints = "n new · enter open · d delete · / search · q quit"
	}
	if a.status != "" {
		return a.styles.statusError.Render(a.status) + "  " + a.styles.footer.Render(hints)
	}
	return a.styles.footer.Render(hints)
}

func truncate(s string, max int) string {
	if max < 1 {
		max = 1
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
