// Package mood infers a mood label and polarity from journal text.
package mood

import (
	"math"
	"strings"

	"github.com/starford/moodsense/internal/models"
	"github.com/starford/moodsense/internal/sentiment"
)

// Polarity thresholds used when no keyword rule matches.
const (
	HopefulAbove = 0.3
	LowBelow     = -0.2
)

// Rule maps a keyword set to a mood. Rules are evaluated in order.
type Rule struct {
	Mood     models.Mood
	Keywords []string
}

var rules = []Rule{
	{Mood: models.MoodDrained, Keywords: []string{"tired", "drained", "stressed", "low"}},
	{Mood: models.MoodHappy, Keywords: []string{"happy", "excited", "hopeful", "glad"}},
	{Mood: models.MoodCalm, Keywords: []string{"calm", "peaceful", "relaxed"}},
	{Mood: models.MoodConfused, Keywords: []string{"confused", "lost", "unsure"}},
}

// Rules returns a copy of the ordered keyword table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Mood: r.Mood, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Result is the outcome of classifying one text.
type Result struct {
	Mood     models.Mood
	Polarity float64
}

// Classifier assigns moods using keyword rules with a sentiment fallback.
type Classifier struct {
	scorer sentiment.Scorer
}

// NewClassifier creates a classifier backed by scorer.
func NewClassifier(scorer sentiment.Scorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify returns the mood of text and the scorer's polarity for it.
// Keyword matching is case-insensitive substring containment and the first
// matching rule wins. The polarity is always the raw (clamped) score, even
// when a keyword rule decided the mood.
func (c *Classifier) Classify(text string) Result {
	polarity := clamp(c.scorer.Polarity(text))
	lower := strings.ToLower(text)

	for _, r := range rules {
		if containsAny(lower, r.Keywords) {
			return Result{Mood: r.Mood, Polarity: polarity}
		}
	}

	switch {
	case polarity > HopefulAbove:
		return Result{Mood: models.MoodHopeful, Polarity: polarity}
	case polarity < LowBelow:
		return Result{Mood: models.MoodLow, Polarity: polarity}
	default:
		return Result{Mood: models.MoodNeutral, Polarity: polarity}
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
