package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type interactiveModel struct {
	err    error
	input  textinput.Model
	report report
}

func newInteractiveModel(initial string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 300, -1, 0xff, 2.5"
	ti.Prompt = "value: "
	ti.Width = 40
	ti.SetValue(initial)
	ti.Focus()

	m := &interactiveModel{input: ti}
	m.evaluate()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.evaluate()
	return m, cmd
}

func (m *interactiveModel) evaluate() {
	if strings.TrimSpace(m.input.Value()) == "" {
		m.report, m.err = report{}, nil
		return
	}
	m.report, m.err = evaluate(m.input.Value())
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Narrowing Explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case len(m.report.rows) > 0:
		b.WriteString(render(m.report, true))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type to re-check • esc quit"))
	return b.String()
}

func runInteractive(initial string) error {
	p := tea.NewProgram(newInteractiveModel(initial))
	_, err := p.Run()
	return err
}
