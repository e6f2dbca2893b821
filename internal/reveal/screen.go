// ABOUTME: Screen is the static full-screen Renderer: a title line over a bordered text box
// ABOUTME: Redrawn from scratch on start and on every resize; any cancel key completes it

package reveal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/unveilox/pkg/tui/terminal"
	"github.com/mauromedda/unveilox/pkg/tui/theme"
	"github.com/mauromedda/unveilox/pkg/tui/width"
)

const (
	seqHomeClear = "\x1b[H\x1b[2J"
	minBoxWidth  = 10
	minBoxHeight = 5
)

// Screen is the full-screen Renderer.
type Screen struct {
	title   string
	text    string
	palette theme.Palette
	draws   int
}

// NewScreen prepares text for a full-screen reveal headed by title.
func NewScreen(title, text string, p theme.Palette) *Screen {
	return &Screen{title: title, text: text, palette: p}
}

// Mode implements Renderer.
func (s *Screen) Mode() terminal.Mode { return terminal.ModeBoth }

// Interval implements Renderer.
func (s *Screen) Interval() time.Duration { return 0 }

// Advance implements Renderer.
func (s *Screen) Advance(io.Writer) error { return nil }

// Done implements Renderer.
func (s *Screen) Done() bool { return false }

// Cancelled implements Renderer. Leaving the screen is the normal way out.
func (s *Screen) Cancelled() Outcome { return Completed }

// Finish implements Renderer.
func (s *Screen) Finish(io.Writer) error { return nil }

// Draws returns how many full redraws have been written.
func (s *Screen) Draws() int { return s.draws }

// Start implements Renderer.
func (s *Screen) Start(w io.Writer, width, height int) error {
	return s.draw(w, width, height)
}

// Resize implements Renderer.
func (s *Screen) Resize(w io.Writer, width, height int) error {
	return s.draw(w, width, height)
}

func (s *Screen) draw(w io.Writer, width, height int) error {
	frame := s.Render(width, height)
	s.draws++
	_, err := io.WriteString(w, seqHomeClear+strings.ReplaceAll(frame, "\n", "\r\n"))
	return err
}

// Render lays out one frame of the given size.
func (s *Screen) Render(w, h int) string {
	if w < minBoxWidth || h < minBoxHeight {
		return s.renderPlain(w, h)
	}

	header := fmt.Sprintf(" unveilox · %s · q/esc/enter to quit", s.title)
	header = s.palette.Title.Apply(runewidth.Truncate(header, w, "…"))

	// Border adds two cells and two rows around Width/Height.
	innerW := w - 4
	innerH := h - 3
	body := clip(width.Wrap(s.text, innerW), innerH)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(w - 2).
		Height(innerH)
	if s.palette.Frame != "" {
		box = box.BorderForeground(lipgloss.Color(s.palette.Frame))
	}

	return header + "\n" + box.Render(strings.Join(body, "\n"))
}

// renderPlain is the frameless layout for terminals too small for a box.
func (s *Screen) renderPlain(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := clip(width.Wrap(s.text, w), h)
	return strings.Join(lines, "\n")
}

func clip(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
