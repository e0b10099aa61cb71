// Package journal creates journal entries and their mood-log records.
package journal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/starford/moodsense/internal/models"
	"github.com/starford/moodsense/internal/mood"
	"github.com/starford/moodsense/internal/storage"
)

// Default file names inside the data directory.
const (
	EntriesFile = "entries.json"
	MoodLogFile = "mood_log.json"
)

// Catalog supplies prompts and cards for a mood.
type Catalog interface {
	Prompt(m models.Mood) string
	Card(m models.Mood) (models.EmotionCard, bool)
}

// Draft is a classified entry waiting for the user's response.
type Draft struct {
	Text     string
	Mood     models.Mood
	Polarity float64
	Prompt   string
	Card     *models.EmotionCard
}

// ResponseFunc asks the user to answer a draft's prompt. An empty answer is allowed.
type ResponseFunc func(d Draft) (string, error)

// Service coordinates classification, catalog lookups and persistence.
type Service struct {
	store      storage.Provider
	classifier *mood.Classifier
	catalog    Catalog
	logger     *slog.Logger
	now        func() time.Time
	entries    string
	moodLog    string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithFiles overrides the entry and mood-log file paths.
func WithFiles(entries, moodLog string) Option {
	return func(s *Service) {
		s.entries = entries
		s.moodLog = moodLog
	}
}

// NewService creates a journal service.
func NewService(store storage.Provider, classifier *mood.Classifier, catalog Catalog, opts ...Option) *Service {
	s := &Service{
		store:      store,
		classifier: classifier,
		catalog:    catalog,
		logger:     slog.Default(),
		now:        time.Now,
		entries:    EntriesFile,
		moodLog:    MoodLogFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draft classifies text and attaches the prompt and, if any, the emotion card.
func (s *Service) Draft(text string) Draft {
	res := s.classifier.Classify(text)
	d := Draft{
		Text:     text,
		Mood:     res.Mood,
		Polarity: res.Polarity,
		Prompt:   s.catalog.Prompt(res.Mood),
	}
	if card, ok := s.catalog.Card(res.Mood); ok {
		d.Card = &card
	}
	return d
}

// Save appends the entry built from d and response, and its mood-log record.
// Both files are staged before either is replaced.
func (s *Service) Save(d Draft, response string) (*models.JournalEntry, *models.MoodLogRecord, error) {
	now := s.now()
	entry := models.JournalEntry{
		Date:     now.Format(models.DateLayout),
		Text:     d.Text,
		Mood:     d.Mood,
		Prompt:   d.Prompt,
		Response: response,
	}
	record := models.MoodLogRecord{
		Date:     now.Format(models.DateLayout),
		Time:     now.Format(models.TimeLayout),
		Mood:     d.Mood,
		Polarity: d.Polarity,
	}
	if err := entry.Validate(); err != nil {
		return nil, nil, fmt.Errorf("journal: invalid entry: %w", err)
	}
	if err := record.Validate(); err != nil {
		return nil, nil, fmt.Errorf("journal: invalid mood log record: %w", err)
	}

	entries, err := s.Entries()
	if err != nil {
		return nil, nil, err
	}
	log, err := s.MoodLog()
	if err != nil {
		return nil, nil, err
	}

	entriesData, err := storage.EncodeJSON(append(entries, entry))
	if err != nil {
		return nil, nil, fmt.Errorf("journal: encode entries: %w", err)
	}
	logData, err := storage.EncodeJSON(append(log, record))
	if err != nil {
		return nil, nil, fmt.Errorf("journal: encode mood log: %w", err)
	}

	if err := s.store.WriteAll(
		storage.File{Path: s.entries, Content: entriesData},
		storage.File{Path: s.moodLog, Content: logData},
	); err != nil {
		return nil, nil, fmt.Errorf("journal: save: %w", err)
	}

	s.logger.Info("entry saved",
		slog.String("mood", entry.Mood.String()),
		slog.Float64("polarity", record.Polarity),
		slog.Int("entries", len(entries)+1))
	return &entry, &record, nil
}

// AddEntry drafts text, asks respond for the optional response and saves the result.
func (s *Service) AddEntry(text string, respond ResponseFunc) (*models.JournalEntry, error) {
	d := s.Draft(text)
	var response string
	if respond != nil {
		r, err := respond(d)
		if err != nil {
			return nil, err
		}
		response = r
	}
	entry, _, err := s.Save(d, response)
	return entry, err
}

// Entries loads every saved journal entry in creation order.
func (s *Service) Entries() ([]models.JournalEntry, error) {
	return storage.LoadList[models.JournalEntry](s.store, s.entries)
}

// MoodLog loads every mood-log record in creation order.
func (s *Service) MoodLog() ([]models.MoodLogRecord, error) {
	return storage.LoadList[models.MoodLogRecord](s.store, s.moodLog)
}
