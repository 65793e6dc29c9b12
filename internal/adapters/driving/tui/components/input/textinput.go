// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/centred-cli/internal/adapters/driving/tui/styles"
)

// ContentInput wraps a bubbles textinput for the text being centred.
type ContentInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewContentInput creates a new content input component.
func NewContentInput(s *styles.Styles) *ContentInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type text to centre..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &ContentInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the content input.
func (c *ContentInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (c *ContentInput) Update(msg tea.Msg) (*ContentInput, tea.Cmd) {
	var cmd tea.Cmd
	c.textinput, cmd = c.textinput.Update(msg)
	return c, cmd
}

// View renders the content input.
func (c *ContentInput) View() string {
	label := c.styles.Title.Render("Content: ")
	field := c.styles.InputField.Render(c.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (c *ContentInput) Value() string {
	return c.textinput.Value()
}

// SetValue sets the input value.
func (c *ContentInput) SetValue(value string) {
	c.textinput.SetValue(value)
}

// SetWidth sets the width of the input.
func (c *ContentInput) SetWidth(width int) {
	c.width = width
	// Account for label and padding
	inputWidth := width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	c.textinput.Width = inputWidth
}

// Width returns the current width.
func (c *ContentInput) Width() int {
	return c.width
}
