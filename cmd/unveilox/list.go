// ABOUTME: The list action: bundled writings, optionally filtered by a glob pattern
// ABOUTME: Names are bold via a stdout-bound lipgloss renderer; authors take the theme's muted colour on a tty

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/unveilox/internal/config"
	"github.com/mauromedda/unveilox/pkg/tui/theme"
	"github.com/mauromedda/unveilox/pkg/tui/width"
)

func (a *app) list(pattern string, opts options) error {
	th, err := config.ResolveTheme(opts.theme)
	if err != nil {
		return err
	}
	muted := th.Palette.Muted
	if !a.isTTY {
		muted = theme.Color{}
	}

	catalog, err := a.catalog()
	if err != nil {
		return fmt.Errorf("loading writings: %w", err)
	}
	found, err := catalog.Filter(pattern)
	if err != nil {
		return err
	}

	if len(found) == 0 {
		if catalog.Len() == 0 {
			_, err = fmt.Fprintln(a.stdout, "No writings bundled.")
		} else {
			_, err = fmt.Fprintf(a.stdout, "No writings match %q.\n", pattern)
		}
		return err
	}

	nameW := 0
	for _, p := range found {
		nameW = max(nameW, width.VisibleWidth(p.Name))
	}

	r := lipgloss.NewRenderer(a.stdout)
	nameStyle := r.NewStyle().Bold(true).Width(nameW)

	var b strings.Builder
	b.WriteString("Available writings:\n")
	for _, p := range found {
		b.WriteString("- ")
		b.WriteString(nameStyle.Render(p.Name))
		b.WriteString("  ")
		b.WriteString(p.Title)
		if p.Author != "" {
			b.WriteString(", ")
			b.WriteString(muted.Apply(p.Author))
		}
		b.WriteString("\n")
	}
	_, err = fmt.Fprint(a.stdout, b.String())
	return err
}
