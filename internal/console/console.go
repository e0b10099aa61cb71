// Package console implements the interactive MoodSense menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/starford/moodsense/internal/apperr"
	"github.com/starford/moodsense/internal/journal"
	"github.com/starford/moodsense/internal/models"
	"github.com/starford/moodsense/internal/query"
	"github.com/starford/moodsense/internal/report"
)

const separator = "--------------------------------------------------"

// errExit ends the menu loop normally.
var errExit = errors.New("exit")

// Console runs the numbered menu over a line-oriented reader and writer.
type Console struct {
	in       io.Reader
	out      io.Writer
	journal  *journal.Service
	reporter *report.Reporter
	logger   *slog.Logger
	st       styles
	lines    <-chan string
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, j *journal.Service, r *report.Reporter, logger *slog.Logger) *Console {
	return &Console{
		in:       in,
		out:      out,
		journal:  j,
		reporter: r,
		logger:   logger,
		st:       newStyles(lipgloss.NewRenderer(out)),
	}
}

// Run shows the main menu until the user exits, input ends or ctx is
// cancelled. Errors from loading or saving data end the session and are returned.
func (c *Console) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	c.lines = readLines(c.in, done)

	c.println(c.st.title.Render("Welcome to MoodSense!"))
	for {
		err := c.mainMenu(ctx)
		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			c.println("\n👋 Goodbye! Stay mindful!")
			return nil
		case errors.Is(err, context.Canceled):
			return nil
		default:
			return err
		}
	}
}

func (c *Console) mainMenu(ctx context.Context) error {
	c.println("\n" + c.st.title.Render("📌 MoodSense Menu"))
	c.println("1. Add a new mood entry")
	c.println("2. Filter entries by mood")
	c.println("3. Search past entries")
	c.println("4. View mood analytics")
	c.println("5. Exit")

	choice, err := c.ask(ctx, "Enter your choice (1-5): ")
	if err != nil {
		return err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return c.addEntry(ctx)
	case "2":
		return c.filterByMood(ctx)
	case "3":
		return c.search(ctx)
	case "4":
		return c.analyticsMenu(ctx)
	case "5":
		return errExit
	default:
		c.println(c.st.failure.Render("❌ Invalid choice, please enter a number from 1 to 5."))
		return nil
	}
}

func (c *Console) addEntry(ctx context.Context) error {
	text, err := c.ask(ctx, "\nHow are you feeling today? ")
	if err != nil {
		return err
	}

	_, err = c.journal.AddEntry(text, func(d journal.Draft) (string, error) {
		c.printDraft(d)
		return c.ask(ctx, "\nYour Response (optional): ")
	})
	if err != nil {
		return err
	}
	c.println("\n" + c.st.success.Render("✅ Your entry has been saved!"))
	return nil
}

func (c *Console) printDraft(d journal.Draft) {
	c.printf("\n%s %s\n", c.st.label.Render("Detected Mood:"), d.Mood)
	c.printf("%s %.4f\n", c.st.label.Render("Sentiment Score (polarity):"), d.Polarity)
	c.printf("\n%s\n -> %s\n", c.st.label.Render("Your Writing Prompt:"), d.Prompt)

	if d.Card == nil {
		return
	}
	card := d.Card
	body := strings.Join([]string{
		fmt.Sprintf("Emotion Card for %s:", strings.ToUpper(d.Mood.String())),
		"Emoji: " + card.Emoji,
		"Color: " + card.Color,
		"Keywords: " + strings.Join(card.Keywords, ", "),
		fmt.Sprintf("Quote: %q", card.Quote),
	}, "\n")
	c.println("\n" + c.st.card(card.Color).Render(body))
}

func (c *Console) filterByMood(ctx context.Context) error {
	entries, err := c.journal.Entries()
	if err != nil {
		return err
	}
	mood, err := c.ask(ctx, "Enter mood to filter by: ")
	if err != nil {
		return err
	}
	mood = strings.ToLower(strings.TrimSpace(mood))

	filtered := query.FilterByMood(entries, mood)
	if len(filtered) == 0 {
		c.println("\n" + c.st.failure.Render("❌ No entries found for this mood."))
		return nil
	}
	c.printf("\n🎯 Entries with mood '%s':\n\n", mood)
	c.showEntries(filtered)
	return nil
}

func (c *Console) search(ctx context.Context) error {
	entries, err := c.journal.Entries()
	if err != nil {
		return err
	}
	q, err := c.ask(ctx, "Enter a keyword, mood, or date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	results := query.Search(entries, q)
	if len(results) == 0 {
		c.println("\n" + c.st.failure.Render("❌ No matching entries found."))
		return nil
	}
	c.printf("\n🔍 Found %d matching entries:\n\n", len(results))
	c.showEntries(results)
	return nil
}

func (c *Console) showEntries(entries []models.JournalEntry) {
	for i, e := range entries {
		c.printf("%d. 📅 %s | Mood: %s\n", i+1, e.Date, e.Mood)
		c.printf("   💭 Text: %s\n", e.Text)
		if e.Response != "" {
			c.printf("   ✍️ Response: %s\n", e.Response)
		}
		c.println(c.st.muted.Render(separator))
	}
}

func (c *Console) analyticsMenu(ctx context.Context) error {
	for {
		c.println("\n" + c.st.title.Render("📊 Analytics Menu"))
		c.println("1. Mood frequency chart")
		c.println("2. Sentiment trend over time")
		c.println("3. Back to main menu")

		choice, err := c.ask(ctx, "Enter choice (1-3): ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.chart(c.reporter.MoodFrequency)
		case "2":
			err = c.chart(c.reporter.SentimentTrend)
		case "3":
			return nil
		default:
			c.println(c.st.failure.Render("❌ Invalid choice"))
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) chart(render func() (string, error)) error {
	path, err := render()
	switch {
	case err == nil:
		c.println(c.st.success.Render("📈 Chart saved to " + path))
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		c.println(c.st.failure.Render("❌ No mood data yet. Add an entry first."))
		return nil
	case errors.Is(err, report.ErrViewer):
		c.logger.Warn("chart viewer failed", slog.String("path", path), slog.String("error", err.Error()))
		c.println(c.st.success.Render("📈 Chart saved to " + path))
		return nil
	default:
		return err
	}
}

// ask prints prompt and waits for the next input line.
func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readLines feeds input lines to a channel so prompts can give up on ctx.
// The goroutine exits at EOF or once done is closed and it is not blocked reading.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- strings.TrimRight(sc.Text(), "\r"):
			case <-done:
				return
			}
		}
	}()
	return ch
}
