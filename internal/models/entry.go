package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Date and time layouts used in the persisted files.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// JournalEntry is one saved journal record. Field order is the key order on disk.
type JournalEntry struct {
	Date     string `json:"date"`
	Text     string `json:"text"`
	Mood     Mood   `json:"mood"`
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

// Validate checks the invariants a new entry must satisfy before it is appended.
func (e JournalEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&e.Mood, validation.Required, validation.In(moodValues()...)),
	)
}

// MoodLogRecord is a single point of the mood time series used for charts.
type MoodLogRecord struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Mood     Mood    `json:"mood"`
	Polarity float64 `json:"polarity"`
}

// Validate checks the invariants a new log record must satisfy before it is appended.
func (r MoodLogRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.Time, validation.Required, validation.Date(TimeLayout)),
		validation.Field(&r.Mood, validation.Required, validation.In(moodValues()...)),
		validation.Field(&r.Polarity, validation.Min(-1.0), validation.Max(1.0)),
	)
}

// EmotionCard is the decorative record shown for a mood.
type EmotionCard struct {
	Emoji    string   `json:"emoji"`
	Color    string   `json:"color"`
	Keywords []string `json:"keywords"`
	Quote    string   `json:"quote"`
}
