package note

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Title is the first line of a note's content, used as its list label.
func Title(n Note) string {
	content := strings.TrimSpace(n.Content)
	if content == "" {
		return "(untitled)"
	}
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return strings.TrimSpace(content[:i])
	}
	return content
}

// Rank filters and orders notes for the list pane. An empty query keeps every
// note, ordered by title then id; otherwise only notes whose title contains
// the query as a subsequence survive, best match first. limit <= 0 means no
// limit.
func Rank(notes map[string]Note, query string, limit int) []Note {
	q := strings.ToLower(strings.TrimSpace(query))

	type scored struct {
		n     Note
		score int
	}
	matches := make([]scored, 0, len(notes))
	for _, n := range notes {
		if q == "" {
			matches = append(matches, scored{n: n})
			continue
		}
		ok, score := matchScore(Title(n), q)
		if !ok {
			continue
		}
		matches = append(matches, scored{n: n, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		ti, tj := Title(matches[i].n), Title(matches[j].n)
		if ti != tj {
			return ti < tj
		}
		return matches[i].n.ID < matches[j].n.ID
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Note, len(matches))
	for i, m := range matches {
		out[i] = m.n
	}
	return out
}

// matchScore requires every query rune to appear in order within the label.
// Prefix and consecutive hits score higher; edit distance breaks ties in
// favor of labels close to the query.
func matchScore(label, query string) (bool, int) {
	labelLower := strings.ToLower(label)

	matchIdx := make([]int, 0, len(query))
	from := 0
	for _, r := range query {
		i := strings.IndexRune(labelLower[from:], r)
		if i < 0 {
			return false, 0
		}
		matchIdx = append(matchIdx, from+i)
		from += i + 1
	}

	score := len(query)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	if dist := levenshtein.ComputeDistance(query, labelLower); dist < 10 {
		score += 10 - dist
	}
	return true, score
}
