package tui

import "strings"

// ---------------------------------------------------------------------------
// Cursor-aware ASCII text editing
// ---------------------------------------------------------------------------
// The editor and the search input share these helpers. Input is restricted to
// printable ASCII; cursor positions are byte offsets, clamped on every use.

// textField bundles a string value with its cursor position.
type textField struct {
	value  string
	cursor int
}

// handleKey processes a single key event. multiline permits enter to insert
// a newline. Returns true if the key was consumed.
func (f *textField) handleKey(keyName, rawKey string, multiline bool) bool {
	switch keyName {
	case "backspace":
		return deleteByteBeforeCursor(&f.value, &f.cursor)
	case "left":
		return moveCursor(f.value, &f.cursor, -1)
	case "right":
		return moveCursor(f.value, &f.cursor, 1)
	case "home":
		f.cursor = 0
		return true
	case "end":
		f.cursor = len(f.value)
		return true
	case "enter":
		if !multiline {
			return false
		}
		return insertAtCursor(&f.value, &f.cursor, "\n")
	case "space":
		return insertAtCursor(&f.value, &f.cursor, " ")
	default:
		if !isPrintableASCIIKey(rawKey) {
			return false
		}
		return insertAtCursor(&f.value, &f.cursor, rawKey)
	}
}

// set replaces the value and places the cursor at the end.
func (f *textField) set(value string) {
	f.value = value
	f.cursor = len(value)
}

// view returns the text with a cursor marker at the current position.
func (f *textField) view() string {
	idx := clampCursor(f.value, f.cursor)
	return f.value[:idx] + "_" + f.value[idx:]
}

func clampCursor(s string, cursor int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > len(s) {
		return len(s)
	}
	return cursor
}

func moveCursor(s string, cursor *int, delta int) bool {
	before := clampCursor(s, *cursor)
	after := clampCursor(s, before+delta)
	*cursor = after
	return before != after
}

func insertAtCursor(s *string, cursor *int, text string) bool {
	idx := clampCursor(*s, *cursor)
	*s = (*s)[:idx] + text + (*s)[idx:]
	*cursor = idx + len(text)
	return true
}

func deleteByteBeforeCursor(s *string, cursor *int) bool {
	idx := clampCursor(*s, *cursor)
	if idx == 0 {
		return false
	}
	*s = (*s)[:idx-1] + (*s)[idx:]
	*cursor = idx - 1
	return true
}

func isPrintableASCIIKey(key string) bool {
	return len(key) == 1 && key[0] >= 32 && key[0] < 127
}

// normalizeKeyName folds the spellings bubbletea and user configs use for
// the same key into one canonical form.
func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
