package testing

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// TestRenderer feeds messages to a Bubble Tea model without a terminal and keeps the last view.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Commands contains all commands returned by Update calls
	Commands []tea.Cmd

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Init runs the model's Init command synchronously and applies the resulting message.
// Batched commands are not expanded.
func (r *TestRenderer) Init(model tea.Model) tea.Model {
	cmd := model.Init()
	if cmd == nil {
		r.Output = model.View()
		return model
	}
	if msg := cmd(); msg != nil {
		model, _ = r.Update(model, msg)
	}
	return model
}

// Update sends a message to the model and captures the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}

	r.Output = newModel.View()
	return newModel, cmd
}

// Send applies msgs in order and returns the final model.
func (r *TestRenderer) Send(model tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		model, _ = r.Update(model, msg)
	}
	return model
}

// LastCommand returns the most recent command, or nil if no commands were generated.
func (r *TestRenderer) LastCommand() tea.Cmd {
	if len(r.Commands) == 0 {
		return nil
	}
	return r.Commands[len(r.Commands)-1]
}

// Plain returns the last output without ANSI escape codes.
func (r *TestRenderer) Plain() string {
	return StripANSI(r.Output)
}

// ContainsInOrder checks if the output contains all specified strings in order.
func ContainsInOrder(output string, expected ...string) bool {
	lastIndex := 0
	for _, exp := range expected {
		index := strings.Index(output[lastIndex:], exp)
		if index == -1 {
			return false
		}
		lastIndex += index + len(exp)
	}
	return true
}
