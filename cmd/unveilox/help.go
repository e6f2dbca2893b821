// ABOUTME: The help action: usage rendered as markdown with glamour
// ABOUTME: Falls back to the raw markdown when rendering fails

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/unveilox/internal/config"
	"github.com/mauromedda/unveilox/internal/log"
	"github.com/mauromedda/unveilox/internal/speed"
)

const helpWrap = 80

func (a *app) help() error {
	md := a.usageMarkdown()

	style := "notty"
	if a.isTTY {
		style = "dark"
	}
	out, err := renderMarkdown(md, style)
	if err != nil {
		log.Debug("help: glamour render failed: %v", err)
		out = md
	}
	_, err = io.WriteString(a.stdout, out)
	return err
}

func renderMarkdown(md, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(helpWrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (a *app) usageMarkdown() string {
	var b strings.Builder
	b.WriteString("# unveilox\n\n")
	b.WriteString("Reveal a bundled writing in your terminal.\n\n")
	b.WriteString("## Usage\n\n")
	b.WriteString("```\nunveilox [action] [writing|pattern] [flags]\n```\n\n")
	b.WriteString("## Actions\n\n")
	b.WriteString("- `typewriter <writing>` reveals the text one character at a time\n")
	b.WriteString("- `tui <writing>` shows the text full screen\n")
	b.WriteString("- `list [pattern]` lists bundled writings, optionally filtered by a glob\n")
	b.WriteString("- `help` shows this message\n\n")
	b.WriteString("Press `q`, `Esc`, `Enter` or `Ctrl+C` to stop a reveal.\n\n")
	b.WriteString("## Flags\n\n")
	fmt.Fprintf(&b, "- `--speed`, `-s` milliseconds per character, %d to %d (default %d)\n", speed.Min, speed.Max, speed.DefaultMillis)
	b.WriteString("- `--theme` colour theme: default, dark, light, monochrome, none\n")
	b.WriteString("- `--verbose`, `-v` debug logging\n")
	b.WriteString("- `--log-file` write logs to a file\n")
	b.WriteString("- `--version` print the version\n\n")
	b.WriteString("## Environment\n\n")
	fmt.Fprintf(&b, "- `%s` default speed\n", config.EnvSpeed)
	fmt.Fprintf(&b, "- `%s` default theme\n", config.EnvTheme)
	fmt.Fprintf(&b, "- `%s` enable debug logging\n", config.EnvVerbose)
	fmt.Fprintf(&b, "- `%s` default log file\n", config.EnvLogFile)
	fmt.Fprintf(&b, "- `%s` disable colours\n", config.EnvNoColor)

	if catalog, err := a.catalog(); err == nil && catalog.Len() > 0 {
		b.WriteString("\n## Writings\n\n")
		for _, name := range catalog.Names() {
			fmt.Fprintf(&b, "- `%s`\n", name)
		}
	}
	return b.String()
}
