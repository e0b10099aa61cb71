package internal

import (
	"io"

	"github.com/starford/moodsense/internal/sentiment"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	in     io.Reader
	out    io.Writer
	logOut io.Writer
	scorer sentiment.Scorer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithIO sets the streams the menu reads from and writes to.
// Defaults are stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *application) {
		a.in = in
		a.out = out
	}
}

// WithLogOutput overrides where logs are written. It takes precedence over app.log_file.
func WithLogOutput(w io.Writer) Option {
	return func(a *application) {
		a.logOut = w
	}
}

// WithScorer replaces the VADER polarity scorer.
func WithScorer(s sentiment.Scorer) Option {
	return func(a *application) {
		a.scorer = s
	}
}
