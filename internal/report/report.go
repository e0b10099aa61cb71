// Package report turns the mood log into chart data and renders it.
package report

import (
	"fmt"
	"time"

	"github.com/starford/moodsense/internal/apperr"
	"github.com/starford/moodsense/internal/models"
)

// MoodCount is one bar of the frequency chart.
type MoodCount struct {
	Mood  models.Mood
	Count int
}

// Frequencies counts records per mood, in the order each mood first appears.
func Frequencies(records []models.MoodLogRecord) []MoodCount {
	idx := make(map[models.Mood]int)
	var out []MoodCount
	for _, r := range records {
		i, ok := idx[r.Mood]
		if !ok {
			i = len(out)
			idx[r.Mood] = i
			out = append(out, MoodCount{Mood: r.Mood})
		}
		out[i].Count++
	}
	return out
}

// Counts returns the number of records per mood.
func Counts(records []models.MoodLogRecord) map[models.Mood]int {
	out := make(map[models.Mood]int)
	for _, r := range records {
		out[r.Mood]++
	}
	return out
}

// Series is the polarity trend: Dates[i] pairs with Polarities[i].
type Series struct {
	Dates      []time.Time
	Polarities []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Dates) }

// Timeline builds the polarity series in record order. Dates must use
// models.DateLayout.
func Timeline(records []models.MoodLogRecord) (Series, error) {
	s := Series{
		Dates:      make([]time.Time, 0, len(records)),
		Polarities: make([]float64, 0, len(records)),
	}
	for i, r := range records {
		d, err := time.Parse(models.DateLayout, r.Date)
		if err != nil {
			return Series{}, fmt.Errorf("report: record %d: %w: %w", i, apperr.ErrMalformed, err)
		}
		s.Dates = append(s.Dates, d)
		s.Polarities = append(s.Polarities, r.Polarity)
	}
	return s, nil
}

// Renderer draws the two analytics charts and returns where they were written.
type Renderer interface {
	FrequencyChart(counts []MoodCount) (string, error)
	TrendChart(series Series) (string, error)
}

// Reporter loads the mood log and hands chart data to a Renderer.
type Reporter struct {
	load     func() ([]models.MoodLogRecord, error)
	renderer Renderer
}

// NewReporter creates a Reporter. load is typically journal.Service.MoodLog.
func NewReporter(load func() ([]models.MoodLogRecord, error), renderer Renderer) *Reporter {
	return &Reporter{load: load, renderer: renderer}
}

// MoodFrequency renders the mood frequency chart. An empty mood log yields
// apperr.ErrNotFound.
func (r *Reporter) MoodFrequency() (string, error) {
	records, err := r.records()
	if err != nil {
		return "", err
	}
	return r.renderer.FrequencyChart(Frequencies(records))
}

// SentimentTrend renders the polarity-over-time chart. An empty mood log
// yields apperr.ErrNotFound.
func (r *Reporter) SentimentTrend() (string, error) {
	records, err := r.records()
	if err != nil {
		return "", err
	}
	series, err := Timeline(records)
	if err != nil {
		return "", err
	}
	return r.renderer.TrendChart(series)
}

func (r *Reporter) records() ([]models.MoodLogRecord, error) {
	records, err := r.load()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("report: mood log: %w", apperr.ErrNotFound)
	}
	return records, nil
}
