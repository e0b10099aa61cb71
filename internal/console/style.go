package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card colours may be hex values or plain names; names map to ANSI codes.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"purple":  "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
	"orange":  "208",
	"pink":    "213",
}

type styles struct {
	r       *lipgloss.Renderer
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		r:       r,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// card returns a bordered style tinted with the card's colour.
func (s styles) card(colour string) lipgloss.Style {
	st := s.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if c, ok := parseColor(colour); ok {
		st = st.BorderForeground(c).Foreground(c)
	}
	return st
}

func parseColor(s string) (lipgloss.Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") && (len(s) == 4 || len(s) == 7) {
		return lipgloss.Color(s), true
	}
	if code, ok := namedColors[s]; ok {
		return lipgloss.Color(code), true
	}
	return "", false
}
