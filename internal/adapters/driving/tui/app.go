// Package tui implements the interactive centring preview following the
// Elm architecture used across the org's terminal tools.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/centred-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/centred-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/centred-cli/internal/core/ports/driving"
)

// fillCycle is the set of fill characters the tab key rotates through.
var fillCycle = []rune{' ', '-', '=', '.', '*'}

// reloadMsg signals that the config file changed on disk.
type reloadMsg struct{}

// App is the centring preview application. It implements tea.Model.
type App struct {
	// formatter centres the preview content.
	formatter driving.FormatterService

	// settings supplies the persisted defaults, reloaded on config change.
	settings driving.SettingsService

	// styles holds the TUI styles.
	styles *styles.Styles

	// contentInput is the text being centred.
	contentInput *input.ContentInput

	// fieldWidth is the preview field width, adjusted with the arrow keys.
	fieldWidth int

	// fill is the current padding character.
	fill rune

	// reload delivers config-change signals from the fsnotify watcher.
	reload <-chan struct{}

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new preview application.
func NewApp(formatter driving.FormatterService, settings driving.SettingsService) (*App, error) {
	if formatter == nil {
		return nil, errors.New("creating app: formatter service is required")
	}

	s := styles.DefaultStyles()

	app := &App{
		formatter:    formatter,
		settings:     settings,
		styles:       s,
		contentInput: input.NewContentInput(s),
		fieldWidth:   20,
		fill:         ' ',
	}
	app.applySettings()

	return app, nil
}

// WithReload wires a config-change channel; each signal reloads the
// persisted defaults into the preview.
func (a *App) WithReload(ch <-chan struct{}) *App {
	a.reload = ch
	return a
}

// applySettings copies the persisted defaults into the preview state.
func (a *App) applySettings() {
	if a.settings == nil {
		return
	}
	settings, err := a.settings.Get()
	if err != nil {
		return
	}
	if settings.Width > 0 {
		a.fieldWidth = settings.Width
	}
	a.fill = settings.FillRune()
}

// waitForReload blocks on the reload channel as a tea command.
func (a *App) waitForReload() tea.Msg {
	if _, ok := <-a.reload; ok {
		return reloadMsg{}
	}
	return nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("centred - field preview"),
		a.contentInput.Init(),
	}
	if a.reload != nil {
		cmds = append(cmds, a.waitForReload)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.contentInput.SetWidth(msg.Width)
		return a, nil

	case reloadMsg:
		a.applySettings()
		return a, a.waitForReload

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "left":
			a.adjustWidth(-1)
			return a, nil
		case "right":
			a.adjustWidth(1)
			return a, nil
		case "shift+left":
			a.adjustWidth(-5)
			return a, nil
		case "shift+right":
			a.adjustWidth(5)
			return a, nil
		case "tab":
			a.cycleFill()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.contentInput, cmd = a.contentInput.Update(msg)
	return a, cmd
}

// adjustWidth changes the preview field width, clamped at 0.
func (a *App) adjustWidth(delta int) {
	a.fieldWidth += delta
	if a.fieldWidth < 0 {
		a.fieldWidth = 0
	}
}

// cycleFill advances to the next fill character in the cycle. A fill
// loaded from config that is not in the cycle restarts at the beginning.
func (a *App) cycleFill() {
	for i, r := range fillCycle {
		if r == a.fill {
			a.fill = fillCycle[(i+1)%len(fillCycle)]
			return
		}
	}
	a.fill = fillCycle[0]
}

// FieldWidth returns the current preview field width.
func (a *App) FieldWidth() int {
	return a.fieldWidth
}

// Fill returns the current fill character.
func (a *App) Fill() rune {
	return a.fill
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("centred - field preview"))
	b.WriteString("\n\n")
	b.WriteString(a.contentInput.View())
	b.WriteString("\n\n")

	content := a.contentInput.Value()
	preview := ruler(a.fieldWidth) + "\n" +
		a.formatter.CentreLine(content, a.fieldWidth, a.fill)
	b.WriteString(a.styles.Preview.Render(preview))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render(a.statusLine(content)))
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("←/→ width · shift for ±5 · tab fill · esc quit"))

	return b.String()
}

// statusLine summarises the current field geometry.
func (a *App) statusLine(content string) string {
	left, right := 0, 0
	if a.fieldWidth > len(content) {
		left = (a.fieldWidth+len(content))/2 - len(content)
		right = a.fieldWidth - len(content) - left
	}
	return fmt.Sprintf("width %d · fill '%c' · content %d · pad %d/%d",
		a.fieldWidth, a.fill, len(content), left, right)
}

// ruler renders a column ruler: every tenth column shows the tens digit,
// every fifth a '+', the rest '-'.
func ruler(width int) string {
	if width <= 0 {
		return ""
	}
	b := make([]rune, width)
	for col := 1; col <= width; col++ {
		switch {
		case col%10 == 0:
			b[col-1] = rune('0' + (col/10)%10)
		case col%5 == 0:
			b[col-1] = '+'
		default:
			b[col-1] = '-'
		}
	}
	return string(b)
}

