package config

// Theme names accepted in ui.theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto" // pick from the terminal background
)

// UIConfig holds user interface configuration.
type UIConfig struct {
	Theme string `yaml:"theme"`

	// TickInterval is the delay between animation steps (Go duration string).
	TickInterval string `yaml:"tick_interval"`

	// FadeSteps is how many steps a color fade takes.
	FadeSteps int `yaml:"fade_steps"`

	// Tooltips shows the field hint when a field gains focus.
	Tooltips bool `yaml:"tooltips"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:        ThemeLight,
		TickInterval: "20ms",
		FadeSteps:    10,
		Tooltips:     true,
	}
}
