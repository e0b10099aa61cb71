// Package sentiment scores free text on a [-1, 1] polarity scale.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer returns the polarity of text, negative meaning more negative sentiment.
type Scorer interface {
	Polarity(text string) float64
}

// Func adapts a plain function to Scorer.
type Func func(text string) float64

// Polarity calls f.
func (f Func) Polarity(text string) float64 { return f(text) }

// Vader scores text with the VADER lexicon and reports its compound score.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader builds a VADER scorer. Building the lexicon is not free, so share one instance.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns the compound score, which VADER normalises to [-1, 1].
// Blank text scores 0.
func (v *Vader) Polarity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return v.analyzer.PolarityScores(text).Compound
}

var _ Scorer = (*Vader)(nil)
