// Package ui layout constants for consistent spacing and dimensions
package ui

const (
	// Form
	LabelWidth = 22 // widest label is "Date (YYYY-MM-DD):"
	InputWidth = 40
	InputLimit = 256

	// Buttons
	ButtonGap = 2

	// Entries pane
	ListHeight    = 10
	ListMinWidth  = 60
	ListCellWidth = 24 // cells wider than this are truncated in the pane only

	// Terminal
	MinimumTerminalWidth = 80
	AppPaddingH          = 4
)

// ListWidth returns the entries pane width for a terminal width.
func ListWidth(terminalWidth int) int {
	w := terminalWidth - AppPaddingH
	if w < ListMinWidth {
		return ListMinWidth
	}
	return w
}
