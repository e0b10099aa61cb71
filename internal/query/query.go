// Package query filters and searches journal entries in memory.
package query

import (
	"strings"

	"github.com/starford/moodsense/internal/models"
)

// FilterByMood returns the entries whose mood equals mood, ignoring case.
// Order is preserved and the input is not modified.
func FilterByMood(entries []models.JournalEntry, mood string) []models.JournalEntry {
	want := strings.TrimSpace(mood)
	out := []models.JournalEntry{}
	for _, e := range entries {
		if strings.EqualFold(string(e.Mood), want) {
			out = append(out, e)
		}
	}
	return out
}

// Search returns the entries whose text, response, mood or date contains q,
// ignoring case. Order is preserved and the input is not modified.
func Search(entries []models.JournalEntry, q string) []models.JournalEntry {
	needle := strings.ToLower(q)
	out := []models.JournalEntry{}
	for _, e := range entries {
		if matches(e, needle) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e models.JournalEntry, needle string) bool {
	for _, field := range []string{e.Text, e.Response, string(e.Mood), e.Date} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
