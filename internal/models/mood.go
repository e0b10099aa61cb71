// Package models defines the domain types for MoodSense.
package models

import (
	"fmt"
	"strings"

	"github.com/starford/moodsense/internal/apperr"
)

// Mood is a label from the closed set of emotional states an entry can carry.
type Mood string

// Mood labels.
const (
	MoodDrained  Mood = "drained"
	MoodHappy    Mood = "happy"
	MoodCalm     Mood = "calm"
	MoodConfused Mood = "confused"
	MoodHopeful  Mood = "hopeful"
	MoodLow      Mood = "low"
	MoodNeutral  Mood = "neutral"
)

// Moods lists every label in declaration order.
var Moods = []Mood{
	MoodDrained,
	MoodHappy,
	MoodCalm,
	MoodConfused,
	MoodHopeful,
	MoodLow,
	MoodNeutral,
}

// Valid reports whether m belongs to the label set.
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string { return string(m) }

// ParseMood resolves s to a label, ignoring case and surrounding spaces.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", apperr.ErrInvalidMood, s)
	}
	return m, nil
}

// moodValues returns the label set as []any for validation.In.
func moodValues() []any {
	out := make([]any, len(Moods))
	for i, m := range Moods {
		out[i] = m
	}
	return out
}
