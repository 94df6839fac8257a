package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdms/internal/entry"
	"rdms/internal/interchange"
)

func newTestForm(t *testing.T) (FormModel, string) {
	t.Helper()
	dir := t.TempDir()
	m := NewFormModel(FormOptions{
		Store: entry.NewStore(),
		Exporter: interchange.Exporter{
			Dir: dir,
			Now: func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local) },
		},
		Theme:    LightTheme(),
		Tooltips: true,
	})
	return m, dir
}

func update(t *testing.T, m FormModel, msg tea.Msg) (FormModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	fm, ok := next.(FormModel)
	require.True(t, ok, "Update must return a FormModel")
	return fm, cmd
}

func fill(m *FormModel, values ...string) {
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestFormAddEntry(t *testing.T) {
	m, _ := newTestForm(t)
	fill(&m, "E1", "R1", "2024-01-01", "D1")

	m, _ = update(t, m, key(tea.KeyCtrlA))

	assert.Equal(t, []entry.Entry{{ExperimentName: "E1", Researcher: "R1", Date: "2024-01-01", Description: "D1"}}, m.Entries())
	for i := range m.inputs {
		assert.Empty(t, m.inputs[i].Value(), "field %d should be cleared after add", i)
	}
	_, kind := m.Status()
	assert.Equal(t, StatusSuccess, kind)
	assert.Contains(t, m.View(), "E1")
}

func TestFormRejectsEmptyField(t *testing.T) {
	m, _ := newTestForm(t)
	fill(&m, "E1", "", "2024-01-01", "D1")

	m, _ = update(t, m, key(tea.KeyCtrlA))

	assert.Empty(t, m.Entries())
	status, kind := m.Status()
	assert.Equal(t, StatusWarning, kind)
	assert.Contains(t, status, "Please fill in all fields.")
	assert.Equal(t, "E1", m.inputs[FocusName].Value(), "rejected input stays in the form")
}

func TestFormEnterWalksFieldsThenAdds(t *testing.T) {
	m, _ := newTestForm(t)
	fill(&m, "E1", "R1", "2024-01-01", "D1")

	for want := FocusResearcher; want <= FocusDescription; want++ {
		m, _ = update(t, m, key(tea.KeyEnter))
		require.Equal(t, want, m.Focus())
	}
	m, _ = update(t, m, key(tea.KeyEnter))

	assert.Len(t, m.Entries(), 1)
	assert.Equal(t, FocusName, m.Focus())
}

func TestFormInsertionOrder(t *testing.T) {
	m, _ := newTestForm(t)
	names := []string{"first", "second", "third"}
	for _, n := range names {
		fill(&m, n, "R", "D", "X")
		m, _ = update(t, m, key(tea.KeyCtrlA))
	}

	got := make([]string, 0, len(names))
	for _, e := range m.Entries() {
		got = append(got, e.ExperimentName)
	}
	assert.Equal(t, names, got)
}

func TestFormClearLeavesStore(t *testing.T) {
	m, _ := newTestForm(t)
	fill(&m, "E1", "R1", "D1", "X1")
	m, _ = update(t, m, key(tea.KeyCtrlA))
	fill(&m, "E2", "R2", "D2", "X2")

	m, _ = update(t, m, key(tea.KeyCtrlL))

	assert.Empty(t, m.inputs[FocusName].Value())
	assert.Len(t, m.Entries(), 1)
}

func TestFormSaveEmpty(t *testing.T) {
	m, dir := newTestForm(t)

	m, _ = update(t, m, key(tea.KeyCtrlS))

	status, kind := m.Status()
	assert.Equal(t, StatusWarning, kind)
	assert.Contains(t, status, "There are no entries to save.")
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFormSave(t *testing.T) {
	m, dir := newTestForm(t)
	fill(&m, "E1", "R1", "2024-01-01", "D1")
	m, _ = update(t, m, key(tea.KeyCtrlA))

	m, _ = update(t, m, key(tea.KeyCtrlS))

	status, kind := m.Status()
	assert.Equal(t, StatusSuccess, kind)
	assert.Equal(t, "Entries have been saved to research_data_20240102_030405.csv.", status)

	data, err := os.ReadFile(filepath.Join(dir, "research_data_20240102_030405.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Experiment Name,Researcher Name,Date,Description\nE1,R1,2024-01-01,D1\n", string(data))
}

func TestFormToggleThemeFadesBackground(t *testing.T) {
	m, _ := newTestForm(t)

	m, cmd := update(t, m, key(tea.KeyCtrlT))
	require.NotNil(t, cmd)
	assert.True(t, m.Theme().IsDark)
	assert.Equal(t, "#f7f9fc", m.Background(), "fade starts from the old background")

	for i := 0; i <= DefaultFadeSteps; i++ {
		m, _ = update(t, m, fadeTickMsg{target: bgTarget, seq: m.bg.seq})
	}
	assert.False(t, m.bg.active)
	assert.Equal(t, DarkTheme().Background, m.Background())
}

func TestFormStaleFadeTickIgnored(t *testing.T) {
	m, _ := newTestForm(t)
	m, _ = update(t, m, key(tea.KeyCtrlT))
	stale := m.bg.seq
	m, _ = update(t, m, key(tea.KeyCtrlT))
	before := m.bg.fade.Step

	m, cmd := update(t, m, fadeTickMsg{target: bgTarget, seq: stale})

	assert.Nil(t, cmd)
	assert.Equal(t, before, m.bg.fade.Step)
	assert.False(t, m.Theme().IsDark)
}

func TestFormButtonFocusFadeAndTooltip(t *testing.T) {
	m, _ := newTestForm(t)
	assert.Equal(t, TooltipShown, m.tooltips[FocusName].State())

	for m.Focus() != FocusAdd {
		m, _ = update(t, m, key(tea.KeyTab))
	}

	assert.Equal(t, TooltipHidden, m.tooltips[FocusDescription].State())
	assert.Equal(t, TooltipShown, m.tooltips[FocusAdd].State())
	assert.Equal(t, "#007bff", m.ButtonColor(0))

	for i := 0; i <= DefaultFadeSteps; i++ {
		m, _ = update(t, m, fadeTickMsg{target: 0, seq: m.buttons[0].seq})
	}
	assert.Equal(t, LightTheme().ButtonFx, m.ButtonColor(0))

	m, _ = update(t, m, key(tea.KeyShiftTab))
	assert.Equal(t, FocusDescription, m.Focus())
	assert.True(t, m.buttons[0].active, "leaving the button fades it back")
}

func TestFormPressAddShowsRipple(t *testing.T) {
	m, _ := newTestForm(t)
	fill(&m, "E1", "R1", "2024-01-01", "D1")
	for m.Focus() != FocusAdd {
		m, _ = update(t, m, key(tea.KeyTab))
	}

	m, _ = update(t, m, key(tea.KeyEnter))
	assert.Len(t, m.Entries(), 1)
	require.True(t, m.ripple.active)
	assert.Contains(t, m.rippleView(), "(")

	for i := 0; i < RippleFrames(); i++ {
		m, _ = update(t, m, rippleTickMsg{seq: m.ripple.seq})
	}
	assert.False(t, m.ripple.active)
	assert.Empty(t, m.rippleView())
}

func TestFormHelpToggle(t *testing.T) {
	m, _ := newTestForm(t)

	m, _ = update(t, m, key(tea.KeyF1))
	require.True(t, m.showHelp)
	assert.NotEmpty(t, m.help)

	// Keys other than close are ignored while help is open.
	m, _ = update(t, m, key(tea.KeyCtrlT))
	assert.False(t, m.Theme().IsDark)

	m, cmd := update(t, m, key(tea.KeyEsc))
	assert.False(t, m.showHelp)
	assert.Nil(t, cmd)
}

func TestFormTypingReachesFocusedInput(t *testing.T) {
	m, _ := newTestForm(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Growth")})

	assert.Equal(t, "Growth", m.inputs[FocusName].Value())
}

func TestFormViewShowsInitialStatus(t *testing.T) {
	m := NewFormModel(FormOptions{Status: "Loaded 2 entries from entries.csv"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.True(t, strings.Contains(view, "Loaded 2 entries"), "view: %s", view)
	assert.Contains(t, view, appTitle)
}
