// Package catalog holds the writing prompts and emotion cards shown for each mood.
package catalog

import (
	"errors"
	"os"
	"sync/atomic"

	"github.com/starford/moodsense/internal/checksum"
	"github.com/starford/moodsense/internal/models"
	"github.com/starford/moodsense/internal/storage"
)

// DefaultPrompt is used when no prompt is configured for a mood.
const DefaultPrompt = "Write anything you want."

// Default file names inside the data directory.
const (
	PromptsFile = "prompts.json"
	CardsFile   = "emotion_cards.json"
)

type tables struct {
	prompts map[models.Mood][]string
	cards   map[models.Mood]models.EmotionCard
	sums    map[string]string
}

// Catalog serves prompts and cards. Reads are safe while a reload runs.
type Catalog struct {
	store       storage.Provider
	promptsPath string
	cardsPath   string
	cur         atomic.Pointer[tables]
}

// Load reads both catalog files. Missing files yield empty tables;
// malformed files are an error.
func Load(store storage.Provider, promptsPath, cardsPath string) (*Catalog, error) {
	c := &Catalog{store: store, promptsPath: promptsPath, cardsPath: cardsPath}
	t, err := c.read()
	if err != nil {
		return nil, err
	}
	c.cur.Store(t)
	return c, nil
}

// Reload re-reads the catalog files and swaps them in when their contents
// changed. It reports whether anything was replaced. On error the previous
// tables stay in place.
func (c *Catalog) Reload() (bool, error) {
	t, err := c.read()
	if err != nil {
		return false, err
	}
	old := c.cur.Load()
	if old != nil && sameSums(old.sums, t.sums) {
		return false, nil
	}
	c.cur.Store(t)
	return true, nil
}

// Prompt returns the first prompt configured for m, or DefaultPrompt.
func (c *Catalog) Prompt(m models.Mood) string {
	if ps := c.cur.Load().prompts[m]; len(ps) > 0 {
		return ps[0]
	}
	return DefaultPrompt
}

// Card returns the emotion card for m, if one exists.
func (c *Catalog) Card(m models.Mood) (models.EmotionCard, bool) {
	card, ok := c.cur.Load().cards[m]
	return card, ok
}

// Paths returns the catalog file paths relative to the data directory.
func (c *Catalog) Paths() []string {
	return []string{c.promptsPath, c.cardsPath}
}

func (c *Catalog) read() (*tables, error) {
	t := &tables{
		prompts: map[models.Mood][]string{},
		cards:   map[models.Mood]models.EmotionCard{},
		sums:    map[string]string{},
	}
	if err := c.readFile(c.promptsPath, &t.prompts, t.sums); err != nil {
		return nil, err
	}
	if err := c.readFile(c.cardsPath, &t.cards, t.sums); err != nil {
		return nil, err
	}
	return t, nil
}

func (c *Catalog) readFile(path string, v any, sums map[string]string) error {
	data, err := c.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sums[path] = ""
			return nil
		}
		return err
	}
	sums[path] = checksum.Sum(data)
	return storage.DecodeJSON(path, data, v)
}

func sameSums(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
