// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Color.Apply wraps text in ANSI codes; Palette names the colours a reveal uses

package theme

// Color is a raw ANSI SGR prefix. The zero Color leaves text unstyled.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text with the colour code and a reset suffix.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Palette holds the colours used while revealing text.
type Palette struct {
	Text      Color // body text
	Accent    Color // every seventh diagonal cell in typewriter mode
	Highlight Color // every fifth column in typewriter mode
	Title     Color // TUI title line
	Muted     Color // secondary text in listings

	// Frame is a lipgloss colour value for the TUI border; empty uses the
	// terminal's default foreground.
	Frame string
}

// Theme is a named palette.
type Theme struct {
	Name    string
	Palette Palette
}
