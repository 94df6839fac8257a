package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Research Data Management System

Fill in all four fields, then add the entry to the list.

| Key | Action |
| --- | --- |
| tab / shift+tab | next / previous field or button |
| enter | next field; adds on the last field; presses a focused button |
| ctrl+a | add entry |
| ctrl+l | clear fields |
| ctrl+s | save entries to a timestamped CSV |
| ctrl+t | toggle dark mode |
| pgup / pgdown | scroll the entries list |
| f1 | show or hide this help |
| esc / ctrl+c | exit |

Entries are saved as ` + "`research_data_YYYYMMDD_HHMMSS.csv`" + ` in the data
directory. On startup ` + "`entries.csv`" + ` is loaded from the same place when it exists.
`

// RenderHelp renders the key reference for the theme at the given width.
// Falls back to the raw markdown if rendering fails.
func RenderHelp(theme Theme, width int) string {
	if width <= 0 {
		width = MinimumTerminalWidth
	}
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
