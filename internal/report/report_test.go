package report

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/starford/moodsense/internal/apperr"
	"github.com/starford/moodsense/internal/models"
)

func sampleLog() []models.MoodLogRecord {
	return []models.MoodLogRecord{
		{Date: "2024-01-01", Time: "08:00:00", Mood: models.MoodHappy, Polarity: 0.6},
		{Date: "2024-01-02", Time: "09:00:00", Mood: models.MoodDrained, Polarity: -0.4},
		{Date: "2024-01-02", Time: "21:00:00", Mood: models.MoodHappy, Polarity: 0.2},
		{Date: "2024-01-05", Time: "07:30:00", Mood: models.MoodNeutral, Polarity: 0},
	}
}

func TestFrequencies_FirstSeenOrder(t *testing.T) {
	got := Frequencies(sampleLog())
	want := []MoodCount{
		{Mood: models.MoodHappy, Count: 2},
		{Mood: models.MoodDrained, Count: 1},
		{Mood: models.MoodNeutral, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Frequencies = %+v, want %+v", got, want)
	}
}

func TestCounts(t *testing.T) {
	got := Counts(sampleLog())
	want := map[models.Mood]int{models.MoodHappy: 2, models.MoodDrained: 1, models.MoodNeutral: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Counts = %v, want %v", got, want)
	}
}

func TestTimeline(t *testing.T) {
	s, err := Timeline(sampleLog())
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if s.Len() != 4 || len(s.Polarities) != 4 {
		t.Fatalf("len = %d/%d, want 4", s.Len(), len(s.Polarities))
	}
	if got := s.Dates[1].Format(models.DateLayout); got != "2024-01-02" {
		t.Errorf("Dates[1] = %s", got)
	}
	wantPol := []float64{0.6, -0.4, 0.2, 0}
	if !reflect.DeepEqual(s.Polarities, wantPol) {
		t.Errorf("Polarities = %v, want %v", s.Polarities, wantPol)
	}
}

func TestTimeline_BadDate(t *testing.T) {
	_, err := Timeline([]models.MoodLogRecord{{Date: "yesterday", Mood: models.MoodLow}})
	if !errors.Is(err, apperr.ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

type recordingRenderer struct {
	counts []MoodCount
	series Series
}

func (r *recordingRenderer) FrequencyChart(c []MoodCount) (string, error) {
	r.counts = c
	return "freq.png", nil
}

func (r *recordingRenderer) TrendChart(s Series) (string, error) {
	r.series = s
	return "trend.png", nil
}

func TestReporter(t *testing.T) {
	rr := &recordingRenderer{}
	rep := NewReporter(func() ([]models.MoodLogRecord, error) { return sampleLog(), nil }, rr)

	path, err := rep.MoodFrequency()
	if err != nil || path != "freq.png" {
		t.Fatalf("MoodFrequency = %q, %v", path, err)
	}
	if len(rr.counts) != 3 {
		t.Errorf("renderer got %d bars, want 3", len(rr.counts))
	}

	path, err = rep.SentimentTrend()
	if err != nil || path != "trend.png" {
		t.Fatalf("SentimentTrend = %q, %v", path, err)
	}
	if rr.series.Len() != 4 {
		t.Errorf("renderer got %d points, want 4", rr.series.Len())
	}
}

func TestReporter_EmptyLog(t *testing.T) {
	rep := NewReporter(func() ([]models.MoodLogRecord, error) { return nil, nil }, &recordingRenderer{})
	if _, err := rep.MoodFrequency(); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("MoodFrequency err = %v, want ErrNotFound", err)
	}
	if _, err := rep.SentimentTrend(); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("SentimentTrend err = %v, want ErrNotFound", err)
	}
}

func TestPlotRenderer_WritesPNGs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	var opened []string
	r := NewPlotRenderer(dir, WithSize(12, 8), WithViewer(func(p string) error {
		opened = append(opened, p)
		return nil
	}))

	freq, err := r.FrequencyChart(Frequencies(sampleLog()))
	if err != nil {
		t.Fatalf("FrequencyChart: %v", err)
	}
	series, _ := Timeline(sampleLog())
	trend, err := r.TrendChart(series)
	if err != nil {
		t.Fatalf("TrendChart: %v", err)
	}

	for _, p := range []string{freq, trend} {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if len(data) < 8 || string(data[1:4]) != "PNG" {
			t.Errorf("%s is not a PNG", p)
		}
	}
	if !reflect.DeepEqual(opened, []string{freq, trend}) {
		t.Errorf("opened = %v", opened)
	}
}

func TestPlotRenderer_ViewerFailureKeepsPath(t *testing.T) {
	r := NewPlotRenderer(t.TempDir(), WithViewer(func(string) error { return errors.New("no display") }))
	path, err := r.FrequencyChart(Frequencies(sampleLog()))
	if !errors.Is(err, ErrViewer) {
		t.Fatalf("err = %v, want ErrViewer", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("chart not saved: %v", statErr)
	}
}
