// ABOUTME: Built-in themes: default, dark, light, monochrome, none
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "strings"

// Plain is the theme selected when colour output is disabled.
const Plain = "none"

var builtins = map[string]*Theme{
	"default": {
		Name: "default",
		Palette: Palette{
			Text:      NewColor("\x1b[0m"),
			Accent:    NewColor("\x1b[35m"),
			Highlight: NewColor("\x1b[34m"),
			Title:     NewColor("\x1b[1m"),
			Muted:     NewColor("\x1b[2m"),
			Frame:     "8",
		},
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Text:      NewColor("\x1b[97m"),
			Accent:    NewColor("\x1b[38;5;213m"),
			Highlight: NewColor("\x1b[38;5;117m"),
			Title:     NewColor("\x1b[1m\x1b[38;5;214m"),
			Muted:     NewColor("\x1b[90m"),
			Frame:     "240",
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Text:      NewColor("\x1b[30m"),
			Accent:    NewColor("\x1b[38;5;127m"),
			Highlight: NewColor("\x1b[38;5;25m"),
			Title:     NewColor("\x1b[1m\x1b[38;5;166m"),
			Muted:     NewColor("\x1b[37m"),
			Frame:     "249",
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Text:      NewColor("\x1b[0m"),
			Accent:    NewColor("\x1b[1m"),
			Highlight: NewColor("\x1b[4m"),
			Title:     NewColor("\x1b[1m"),
			Muted:     NewColor("\x1b[2m"),
		},
	},
	Plain: {
		Name: Plain,
	},
}

// Builtin returns a built-in theme by case-insensitive name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[strings.ToLower(strings.TrimSpace(name))]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome", Plain}
}
