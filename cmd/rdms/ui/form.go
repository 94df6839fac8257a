package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rdms/internal/entry"
	"rdms/internal/interchange"
	"rdms/internal/logging"
)

const appTitle = "Research Data Management System"

// Focusable elements, in tab order.
const (
	FocusName = iota
	FocusResearcher
	FocusDate
	FocusDescription
	FocusAdd
	FocusClear
	FocusSave
	focusCount
)

const inputCount = FocusAdd

var (
	fieldLabels = [inputCount]string{
		"Experiment Name:",
		"Researcher Name:",
		"Date (YYYY-MM-DD):",
		"Description:",
	}
	buttonLabels = [focusCount - inputCount]string{"Add Entry", "Clear Fields", "Save to CSV"}
	hints        = [focusCount]string{
		"Enter the name of the experiment.",
		"Enter the name of the researcher.",
		"Enter the date of the experiment.",
		"Enter a brief description of the experiment.",
		"Press enter to add the entry.",
		"Press enter to clear all input fields.",
		"Press enter to save entries to a CSV file.",
	}
)

// StatusKind classifies the message in the status line.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// Exporter writes the entry list somewhere and returns the file written.
type Exporter interface {
	Export(entries []entry.Entry) (string, error)
}

// FormOptions configures a FormModel.
type FormOptions struct {
	Store        *entry.Store
	Exporter     Exporter
	Theme        Theme
	TickInterval time.Duration
	FadeSteps    int
	Tooltips     bool
	Status       string // initial status line, e.g. the startup import summary
}

// fadeTickMsg advances one color fade. seq ties the tick to the fade that
// scheduled it so a restarted fade ignores ticks from the one it replaced.
type fadeTickMsg struct {
	target int // -1 for the background, otherwise a button index
	seq    int
}

type rippleTickMsg struct {
	seq int
}

const bgTarget = -1

type fadeAnimation struct {
	fade   ColorFade
	seq    int
	active bool
}

type rippleAnimation struct {
	ripple Ripple
	button int
	seq    int
	active bool
}

// FormModel is the bubbletea model for the entry form.
type FormModel struct {
	store    *entry.Store
	exporter Exporter

	inputs   [inputCount]textinput.Model
	tooltips [focusCount]Tooltip
	focus    int

	list viewport.Model

	styles    Styles
	tick      time.Duration
	fadeSteps int
	showTips  bool

	bg      fadeAnimation
	buttons [focusCount - inputCount]fadeAnimation
	ripple  rippleAnimation

	status     string
	statusKind StatusKind

	showHelp bool
	help     string

	width  int
	height int
}

// NewFormModel builds the form over an already loaded store.
func NewFormModel(opts FormOptions) FormModel {
	if opts.Store == nil {
		opts.Store = entry.NewStore()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 20 * time.Millisecond
	}
	if opts.FadeSteps <= 0 {
		opts.FadeSteps = DefaultFadeSteps
	}
	if opts.Theme.Name == "" {
		opts.Theme = LightTheme()
	}

	m := FormModel{
		store:     opts.Store,
		exporter:  opts.Exporter,
		styles:    NewStyles(opts.Theme),
		tick:      opts.TickInterval,
		fadeSteps: opts.FadeSteps,
		showTips:  opts.Tooltips,
		status:    opts.Status,
		width:     MinimumTerminalWidth,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = InputLimit
		ti.Width = InputWidth
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[FocusDate].Placeholder = "YYYY-MM-DD"
	for i := range m.tooltips {
		m.tooltips[i] = NewTooltip(hints[i])
	}
	m.applyInputStyles()

	m.list = viewport.New(ListWidth(m.width), ListHeight)
	m.refreshList()

	m.inputs[FocusName].Focus()
	if m.showTips {
		m.tooltips[FocusName] = m.tooltips[FocusName].Enter()
	}
	return m
}

// Init starts the cursor blink.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Width = ListWidth(msg.Width)
		m.refreshList()
		if m.showHelp {
			m.help = RenderHelp(m.styles.Theme, ListWidth(m.width))
		}
		return m, nil

	case fadeTickMsg:
		cmd := m.stepFade(msg)
		return m, cmd

	case rippleTickMsg:
		cmd := m.stepRipple(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.focus < inputCount {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit
	case "f1":
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.help = RenderHelp(m.styles.Theme, ListWidth(m.width))
		}
		return m, nil
	}

	if m.showHelp {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	case "ctrl+a":
		cmd := m.addEntry()
		return m, cmd
	case "ctrl+l":
		m.clearFields()
		return m, nil
	case "ctrl+s":
		m.save()
		return m, nil
	case "ctrl+t":
		cmd := m.toggleTheme()
		return m, cmd
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	case "enter":
		switch {
		case m.focus == FocusDescription:
			cmd := m.addEntry()
			return m, cmd
		case m.focus < inputCount:
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		default:
			cmd := m.press(m.focus)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.focus < inputCount {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

// setFocus moves focus, swapping tooltips and fading buttons in and out.
func (m *FormModel) setFocus(next int) tea.Cmd {
	prev := m.focus
	if prev == next {
		return nil
	}
	var cmds []tea.Cmd

	m.tooltips[prev] = m.tooltips[prev].Leave()
	if prev < inputCount {
		m.inputs[prev].Blur()
	} else {
		cmds = append(cmds, m.startFade(prev-inputCount, m.styles.Theme.ButtonFx, m.styles.Theme.ButtonBg))
	}

	m.focus = next
	if m.showTips {
		m.tooltips[next] = m.tooltips[next].Enter()
	}
	if next < inputCount {
		cmds = append(cmds, m.inputs[next].Focus())
	} else {
		cmds = append(cmds, m.startFade(next-inputCount, m.styles.Theme.ButtonBg, m.styles.Theme.ButtonFx))
	}
	return tea.Batch(cmds...)
}

// press activates a button: ripple first, then the action.
func (m *FormModel) press(focus int) tea.Cmd {
	idx := focus - inputCount
	cmds := []tea.Cmd{m.startRipple(idx)}
	switch focus {
	case FocusAdd:
		cmds = append(cmds, m.addEntry())
	case FocusClear:
		m.clearFields()
	case FocusSave:
		m.save()
	}
	return tea.Batch(cmds...)
}

func (m *FormModel) values() [inputCount]string {
	var v [inputCount]string
	for i := range m.inputs {
		v[i] = m.inputs[i].Value()
	}
	return v
}

// addEntry validates the fields and appends to the store. Invalid input
// leaves both the store and the fields untouched.
func (m *FormModel) addEntry() tea.Cmd {
	v := m.values()
	e, err := entry.New(v[0], v[1], v[2], v[3])
	if err != nil {
		var verr *entry.ValidationError
		if errors.As(err, &verr) {
			logging.UIDebug("rejected entry: %v", verr)
		}
		m.setStatus(StatusWarning, "Input Error: Please fill in all fields.")
		return nil
	}

	m.store.Append(e)
	logging.Store("appended entry %q (%d total)", e.ExperimentName, m.store.Len())
	m.refreshList()
	m.list.GotoBottom()
	m.clearFields()
	m.setStatus(StatusSuccess, fmt.Sprintf("Added %q.", e.ExperimentName))
	if m.focus < inputCount {
		return m.setFocus(FocusName)
	}
	return nil
}

// clearFields empties the inputs. The store is not affected.
func (m *FormModel) clearFields() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

func (m *FormModel) save() {
	if m.exporter == nil {
		m.setStatus(StatusError, "Save Error: no export destination configured.")
		return
	}
	path, err := m.exporter.Export(m.store.All())
	switch {
	case errors.Is(err, interchange.ErrNoEntries):
		m.setStatus(StatusWarning, "Save Error: There are no entries to save.")
	case err != nil:
		logging.InterchangeError("export failed: %v", err)
		m.setStatus(StatusError, fmt.Sprintf("Save Error: %v", err))
	default:
		m.setStatus(StatusSuccess, fmt.Sprintf("Entries have been saved to %s.", filepath.Base(path)))
	}
}

// toggleTheme swaps the whole style set and fades the background across.
func (m *FormModel) toggleTheme() tea.Cmd {
	from := m.Background()
	theme := m.styles.Theme.Toggle()
	m.styles = NewStyles(theme)
	m.applyInputStyles()
	m.refreshList()
	if m.showHelp {
		m.help = RenderHelp(theme, ListWidth(m.width))
	}
	logging.UI("theme switched to %s", theme.Name)
	return m.startFade(bgTarget, from, theme.Background)
}

func (m *FormModel) applyInputStyles() {
	for i := range m.inputs {
		m.inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Theme.Foreground))
		m.inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.Theme.Foreground)).Faint(true)
	}
}

func (m *FormModel) refreshList() {
	m.list.SetContent(m.styles.List.Width(m.list.Width - 2).Render(NewEntryTable(m.store.All()).View(m.styles)))
}

func (m *FormModel) setStatus(kind StatusKind, msg string) {
	m.status = msg
	m.statusKind = kind
}

func (m *FormModel) animation(target int) *fadeAnimation {
	if target == bgTarget {
		return &m.bg
	}
	return &m.buttons[target]
}

func (m *FormModel) startFade(target int, from, to string) tea.Cmd {
	f, err := NewColorFade(from, to, m.fadeSteps)
	if err != nil {
		logging.UIDebug("fade not started: %v", err)
		return nil
	}
	a := m.animation(target)
	a.seq++
	a.fade = f
	a.active = true
	return m.fadeTick(target, a.seq)
}

func (m *FormModel) fadeTick(target, seq int) tea.Cmd {
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return fadeTickMsg{target: target, seq: seq}
	})
}

func (m *FormModel) stepFade(msg fadeTickMsg) tea.Cmd {
	a := m.animation(msg.target)
	if !a.active || msg.seq != a.seq {
		return nil
	}
	a.fade = a.fade.Next()
	if a.fade.Done() {
		a.active = false
		return nil
	}
	return m.fadeTick(msg.target, msg.seq)
}

func (m *FormModel) startRipple(button int) tea.Cmd {
	m.ripple.seq++
	m.ripple.ripple = NewRipple(buttonCenter(button), 0)
	m.ripple.button = button
	m.ripple.active = true
	seq := m.ripple.seq
	return tea.Tick(m.tick, func(time.Time) tea.Msg { return rippleTickMsg{seq: seq} })
}

func (m *FormModel) stepRipple(msg rippleTickMsg) tea.Cmd {
	if !m.ripple.active || msg.seq != m.ripple.seq {
		return nil
	}
	m.ripple.ripple = m.ripple.ripple.Next()
	if m.ripple.ripple.Done() {
		m.ripple.active = false
		return nil
	}
	return tea.Tick(m.tick, func(time.Time) tea.Msg { return rippleTickMsg{seq: msg.seq} })
}

func buttonWidth(i int) int {
	return lipgloss.Width(buttonLabels[i]) + 4 // Padding(0, 2)
}

func buttonCenter(i int) int {
	x := 0
	for j := 0; j < i; j++ {
		x += buttonWidth(j) + ButtonGap
	}
	return x + buttonWidth(i)/2
}

// Background returns the current background color, mid-fade if one is running.
func (m FormModel) Background() string {
	if m.bg.active {
		return m.bg.fade.Current()
	}
	return m.styles.Theme.Background
}

// ButtonColor returns the current background of button i.
func (m FormModel) ButtonColor(i int) string {
	if m.buttons[i].active {
		return m.buttons[i].fade.Current()
	}
	if m.focus == inputCount+i {
		return m.styles.Theme.ButtonFx
	}
	return m.styles.Theme.ButtonBg
}

// Theme returns the active theme.
func (m FormModel) Theme() Theme { return m.styles.Theme }

// Focus returns the focused element index.
func (m FormModel) Focus() int { return m.focus }

// Status returns the status line text and its kind.
func (m FormModel) Status() (string, StatusKind) { return m.status, m.statusKind }

// Entries returns the store contents in display order.
func (m FormModel) Entries() []entry.Entry { return m.store.All() }

// View renders the form.
func (m FormModel) View() string {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render(appTitle))
	sb.WriteString("\n")

	if m.showHelp {
		sb.WriteString(m.help)
		sb.WriteString("\n\n")
		sb.WriteString(s.Footer.Render("f1/esc: close help"))
		return m.frame(sb.String())
	}

	for i := range m.inputs {
		style := s.Input
		if i == m.focus {
			style = s.InputFocused
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			s.Label.Render(fieldLabels[i]),
			style.Width(InputWidth+2).Render(m.inputs[i].View()),
		))
		sb.WriteString("\n")
		if tip := m.tooltips[i].View(s); tip != "" {
			sb.WriteString(lipgloss.NewStyle().MarginLeft(LabelWidth).Render(tip))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	buttons := make([]string, len(buttonLabels))
	for i, label := range buttonLabels {
		st := s.Button.Background(lipgloss.Color(m.ButtonColor(i)))
		if m.focus == inputCount+i {
			st = st.Bold(true).Underline(true)
		}
		buttons[i] = st.Render(label)
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	sb.WriteString("\n")
	sb.WriteString(m.rippleView())
	sb.WriteString("\n")
	for i := inputCount; i < focusCount; i++ {
		if tip := m.tooltips[i].View(s); tip != "" {
			sb.WriteString(tip)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(s.Header.Render(fmt.Sprintf("Entries (%d)", m.store.Len())))
	sb.WriteString("\n")
	sb.WriteString(m.list.View())
	sb.WriteString("\n\n")

	if m.status != "" {
		sb.WriteString(m.statusStyle().Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(s.Footer.Render("tab: move • enter: next/add • ctrl+s: save • ctrl+t: dark mode • f1: help • esc: exit"))

	return m.frame(sb.String())
}

func (m FormModel) frame(body string) string {
	app := m.styles.App.Background(lipgloss.Color(m.Background()))
	if m.width > 0 {
		app = app.Width(m.width)
	}
	return app.Render(body)
}

func (m FormModel) statusStyle() lipgloss.Style {
	switch m.statusKind {
	case StatusSuccess:
		return m.styles.Success
	case StatusWarning:
		return m.styles.Warning
	case StatusError:
		return m.styles.Error
	default:
		return m.styles.Footer
	}
}

// rippleView draws the ring as a widening bracket under the pressed button.
func (m FormModel) rippleView() string {
	if !m.ripple.active {
		return ""
	}
	r := m.ripple.ripple
	span := 2 + int(r.Progress()*float64(buttonWidth(m.ripple.button)-2))
	left := r.CX - span/2
	if left < 0 {
		left = 0
	}
	ring := "(" + strings.Repeat(" ", span-2) + ")"
	return strings.Repeat(" ", left) + lipgloss.NewStyle().Foreground(lipgloss.Color(m.ButtonColor(m.ripple.button))).Render(ring)
}
