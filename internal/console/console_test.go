package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/starford/moodsense/internal/apperr"
	"github.com/starford/moodsense/internal/catalog"
	"github.com/starford/moodsense/internal/journal"
	"github.com/starford/moodsense/internal/models"
	"github.com/starford/moodsense/internal/mood"
	"github.com/starford/moodsense/internal/report"
	"github.com/starford/moodsense/internal/storage"
	"github.com/starford/moodsense/internal/testutil"
)

type fakeRenderer struct {
	calls []string
}

func (f *fakeRenderer) FrequencyChart([]report.MoodCount) (string, error) {
	f.calls = append(f.calls, "frequency")
	return "/tmp/mood_frequency.png", nil
}

func (f *fakeRenderer) TrendChart(report.Series) (string, error) {
	f.calls = append(f.calls, "trend")
	return "/tmp/sentiment_trend.png", nil
}

type env struct {
	store    *storage.FS
	journal  *journal.Service
	renderer *fakeRenderer
}

func newEnv(t *testing.T) *env {
	t.Helper()
	_, store := testutil.TestData(t)
	testutil.WriteFile(t, store, catalog.PromptsFile, `{"drained": ["What would help you rest?"]}`)
	testutil.WriteFile(t, store, catalog.CardsFile,
		`{"drained": {"emoji": "🪫", "color": "gray", "keywords": ["rest", "sleep"], "quote": "Rest is productive."}}`)
	cat, err := catalog.Load(store, catalog.PromptsFile, catalog.CardsFile)
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	j := journal.NewService(store, mood.NewClassifier(testutil.FixedScorer(-0.25)), cat,
		journal.WithClock(testutil.Clock(t, "2024-01-01T10:00:00Z")),
		journal.WithLogger(testutil.Logger()))
	return &env{store: store, journal: j, renderer: &fakeRenderer{}}
}

func (e *env) run(t *testing.T, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rep := report.NewReporter(e.journal.MoodLog, e.renderer)
	c := New(strings.NewReader(input), &out, e.journal, rep, testutil.Logger())
	err := c.Run(context.Background())
	return out.String(), err
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q\n--- output ---\n%s", w, out)
		}
	}
}

func TestRun_Exit(t *testing.T) {
	out, err := newEnv(t).run(t, "5\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertContains(t, out, "Welcome to MoodSense!", "MoodSense Menu", "Goodbye! Stay mindful!")
}

func TestRun_EOFEndsSession(t *testing.T) {
	out, err := newEnv(t).run(t, "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertContains(t, out, "Goodbye!")
}

func TestRun_InvalidChoice(t *testing.T) {
	out, err := newEnv(t).run(t, "9\nabc\n5\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out, "Invalid choice"); got != 2 {
		t.Errorf("invalid choice messages = %d, want 2", got)
	}
	if got := strings.Count(out, "MoodSense Menu"); got != 3 {
		t.Errorf("menu shown %d times, want 3", got)
	}
}

func TestRun_AddEntry(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "1\nI feel so tired and drained today\nsleep early\n5\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertContains(t, out,
		"Detected Mood: drained",
		"Sentiment Score (polarity): -0.2500",
		"-> What would help you rest?",
		"Emotion Card for DRAINED:",
		"Keywords: rest, sleep",
		`Quote: "Rest is productive."`,
		"Your entry has been saved!",
	)

	entries, err := e.journal.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	want := models.JournalEntry{
		Date:     "2024-01-01",
		Text:     "I feel so tired and drained today",
		Mood:     models.MoodDrained,
		Prompt:   "What would help you rest?",
		Response: "sleep early",
	}
	if len(entries) != 1 || entries[0] != want {
		t.Errorf("entries = %+v, want [%+v]", entries, want)
	}
	log, _ := e.journal.MoodLog()
	if len(log) != 1 || log[0].Polarity != -0.25 {
		t.Errorf("mood log = %+v", log)
	}
}

func TestRun_FilterAndSearch(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "1\nso happy today\n\n1\ncalm sea\nwaves\n5\n")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := e.run(t, "2\nHAPPY\n2\nconfused\n3\nwaves\n3\n1999\n5\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertContains(t, out,
		"Entries with mood 'happy':",
		"1. 📅 2024-01-01 | Mood: happy",
		"Text: so happy today",
		"No entries found for this mood.",
		"Found 1 matching entries:",
		"Response: waves",
		"No matching entries found.",
	)
	if strings.Count(out, "Text: so happy today") != 1 {
		t.Error("happy entry should only appear in the mood filter results")
	}
}

func TestRun_Analytics(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "4\n1\n3\n5\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertContains(t, out, "Analytics Menu", "No mood data yet.")
	if len(e.renderer.calls) != 0 {
		t.Errorf("renderer called without data: %v", e.renderer.calls)
	}

	_, _ = e.run(t, "1\ncalm\n\n5\n")
	out, err = e.run(t, "4\n1\n2\n7\n3\n5\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertContains(t, out,
		"Chart saved to /tmp/mood_frequency.png",
		"Chart saved to /tmp/sentiment_trend.png",
		"Invalid choice",
	)
	if strings.Join(e.renderer.calls, ",") != "frequency,trend" {
		t.Errorf("renderer calls = %v", e.renderer.calls)
	}
}

func TestRun_MalformedDataEndsSession(t *testing.T) {
	e := newEnv(t)
	testutil.WriteFile(t, e.store, journal.EntriesFile, `[{"date": `)
	_, err := e.run(t, "2\nhappy\n5\n")
	if !errors.Is(err, apperr.ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	e := newEnv(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	rep := report.NewReporter(e.journal.MoodLog, e.renderer)
	c := New(pr, io.Discard, e.journal, rep, testutil.Logger())

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]bool{
		"#FFD700": true,
		"#abc":    true,
		"Gray":    true,
		"orange":  true,
		"":        false,
		"#12":     false,
		"mauve":   false,
	}
	for in, want := range cases {
		if _, ok := parseColor(in); ok != want {
			t.Errorf("parseColor(%q) ok = %v, want %v", in, ok, want)
		}
	}
}
