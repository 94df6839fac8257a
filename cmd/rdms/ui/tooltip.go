package ui

// TooltipState is either hidden or shown.
type TooltipState int

const (
	TooltipHidden TooltipState = iota
	TooltipShown
)

// Tooltip is a hint bound to one focusable element. Enter and Leave are
// the only transitions; a tooltip owns at most one overlay at a time.
type Tooltip struct {
	Text    string
	state   TooltipState
	overlay *tooltipOverlay
}

type tooltipOverlay struct {
	text string
}

// NewTooltip returns a hidden tooltip.
func NewTooltip(text string) Tooltip {
	return Tooltip{Text: text}
}

// Enter shows the tooltip. It is a no-op while already shown or when there
// is no text.
func (t Tooltip) Enter() Tooltip {
	if t.state == TooltipShown || t.Text == "" {
		return t
	}
	t.overlay = &tooltipOverlay{text: t.Text}
	t.state = TooltipShown
	return t
}

// Leave hides the tooltip and drops its overlay.
func (t Tooltip) Leave() Tooltip {
	t.overlay = nil
	t.state = TooltipHidden
	return t
}

// State returns the current state.
func (t Tooltip) State() TooltipState {
	return t.state
}

// View renders the overlay, or "" when hidden.
func (t Tooltip) View(s Styles) string {
	if t.overlay == nil {
		return ""
	}
	return s.Tooltip.Render(t.overlay.text)
}
