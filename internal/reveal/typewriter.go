// ABOUTME: Typewriter reveals text one grapheme cluster per interval, soft-wrapped to the width
// ABOUTME: On resize it rewinds to the reveal origin and re-emits what was shown at the new width

package reveal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mauromedda/unveilox/internal/speed"
	"github.com/mauromedda/unveilox/pkg/tui/terminal"
	"github.com/mauromedda/unveilox/pkg/tui/theme"
	"github.com/mauromedda/unveilox/pkg/tui/width"
)

// Typewriter is the incremental Renderer. A cancelled typewriter leaves the
// partial text on screen.
type Typewriter struct {
	clusters []string
	interval time.Duration
	palette  theme.Palette

	next  int
	width int
	row   int
	col   int
}

// NewTypewriter prepares text for a reveal at speed s.
func NewTypewriter(text string, s speed.Setting, p theme.Palette) *Typewriter {
	return &Typewriter{
		clusters: width.Clusters(text),
		interval: s.Duration(),
		palette:  p,
	}
}

// Mode implements Renderer.
func (t *Typewriter) Mode() terminal.Mode { return terminal.ModeRaw }

// Interval implements Renderer.
func (t *Typewriter) Interval() time.Duration { return t.interval }

// Done implements Renderer.
func (t *Typewriter) Done() bool { return t.next >= len(t.clusters) }

// Cancelled implements Renderer.
func (t *Typewriter) Cancelled() Outcome { return CancelledByUser }

// Emitted returns how many clusters have been revealed.
func (t *Typewriter) Emitted() int { return t.next }

// Start implements Renderer.
func (t *Typewriter) Start(w io.Writer, width, _ int) error {
	t.width = width
	t.row, t.col = 0, 0
	_, err := io.WriteString(w, "\r")
	return err
}

// Advance implements Renderer.
func (t *Typewriter) Advance(w io.Writer) error {
	if t.Done() {
		return nil
	}
	var b strings.Builder
	t.emit(&b, t.clusters[t.next])
	t.next++
	_, err := io.WriteString(w, b.String())
	return err
}

// Resize implements Renderer.
func (t *Typewriter) Resize(w io.Writer, width, _ int) error {
	var b strings.Builder
	if t.row > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", t.row)
	}
	b.WriteString("\r\x1b[J")

	t.width = width
	t.row, t.col = 0, 0
	for _, c := range t.clusters[:t.next] {
		t.emit(&b, c)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Finish implements Renderer.
func (t *Typewriter) Finish(w io.Writer) error {
	if t.col == 0 {
		return nil
	}
	t.row++
	t.col = 0
	_, err := io.WriteString(w, "\r\n")
	return err
}

func (t *Typewriter) emit(b *strings.Builder, c string) {
	if c == "\n" {
		b.WriteString("\r\n")
		t.row++
		t.col = 0
		return
	}

	cw := width.ClusterWidth(c)
	if t.width > 0 && t.col > 0 && t.col+cw > t.width {
		b.WriteString("\r\n")
		t.row++
		t.col = 0
	}
	b.WriteString(t.style(c))
	t.col += cw
}

// style colours c by its screen position; whitespace stays plain.
func (t *Typewriter) style(c string) string {
	if strings.TrimSpace(c) == "" {
		return c
	}
	switch {
	case (t.col+t.row)%7 == 0:
		return t.palette.Accent.Apply(c)
	case t.col%5 == 0:
		return t.palette.Highlight.Apply(c)
	}
	return t.palette.Text.Apply(c)
}
