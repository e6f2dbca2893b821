// ABOUTME: Settings holds the environment-supplied defaults for flags
// ABOUTME: FromEnv reads UNVEILOX_* and NO_COLOR; command-line flags override every field

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mauromedda/unveilox/internal/speed"
	"github.com/mauromedda/unveilox/pkg/tui/theme"
)

// Environment variables read by FromEnv.
const (
	EnvSpeed   = "UNVEILOX_SPEED"
	EnvTheme   = "UNVEILOX_THEME"
	EnvVerbose = "UNVEILOX_VERBOSE"
	EnvLogFile = "UNVEILOX_LOG_FILE"
	EnvNoColor = "NO_COLOR"
)

// DefaultTheme is used when neither the environment nor a flag names one.
const DefaultTheme = "default"

// Settings holds the defaults the CLI starts from.
type Settings struct {
	Speed   speed.Setting
	Theme   string
	Verbose bool
	LogFile string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Speed: speed.Default(),
		Theme: DefaultTheme,
	}
}

// FromEnv overlays the process environment on Defaults.
func FromEnv() (Settings, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Settings, error) {
	s := Defaults()

	if v, ok := lookup(EnvSpeed); ok && strings.TrimSpace(v) != "" {
		sp, err := speed.Parse(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", EnvSpeed, err)
		}
		s.Speed = sp
	}

	// NO_COLOR only needs to be present and non-empty; see no-color.org.
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		s.Theme = theme.Plain
	}
	if v, ok := lookup(EnvTheme); ok && strings.TrimSpace(v) != "" {
		s.Theme = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvVerbose); ok {
		s.Verbose = truthy(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		s.LogFile = expandEnv(strings.TrimSpace(v))
	}
	return s, nil
}

func truthy(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(v), "yes") || strings.EqualFold(strings.TrimSpace(v), "on")
	}
	return b
}

// ResolveTheme returns the named built-in theme.
func ResolveTheme(name string) (*theme.Theme, error) {
	if t := theme.Builtin(name); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(theme.BuiltinNames(), ", "))
}
