package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/linera-bridge/decode"
	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/lift"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	exportStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Browse wire values in a memory dump or guest interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.Unsupported(errors.PhaseConfig, "inspect needs a terminal")
			}
			table, err := decode.ForSchema(a.cfg.Schema)
			if err != nil {
				return err
			}
			m := newInspectModel(args[0], a.cfg, table)
			defer m.close()
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type inspectState int

const (
	stateSelectType inspectState = iota
	stateInputAddr
	stateShowResult
)

type inspectModel struct {
	err      error
	src      *source
	table    decode.Table
	cfg      config
	filename string
	result   string
	types    []string
	exports  []string
	input    textinput.Model
	selected int
	state    inspectState
}

type openedMsg struct {
	err error
	src *source
}

type decodedMsg struct {
	err    error
	result string
}

func newInspectModel(filename string, cfg config, table decode.Table) *inspectModel {
	return &inspectModel{
		filename: filename,
		cfg:      cfg,
		table:    table,
		types:    table.Types(),
		state:    stateSelectType,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return m.open
}

func (m *inspectModel) open() tea.Msg {
	src, err := openSource(context.Background(), m.filename, m.cfg.MemoryLimitPages)
	return openedMsg{src: src, err: err}
}

func (m *inspectModel) close() {
	if m.src != nil {
		_ = m.src.Close(context.Background())
	}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputAddr {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.types)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				if m.src != nil {
					m.prepareInput()
					m.state = stateInputAddr
				}
				return m, nil

			case stateInputAddr:
				return m, m.decode(m.input.Value())

			case stateShowResult:
				m.state = stateInputAddr
				m.result = ""
				m.err = nil
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputAddr:
				m.state = stateSelectType
			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}
			return m, nil
		}

	case openedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.src = msg.src
		m.exports = msg.src.exports()

	case decodedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputAddr {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *inspectModel) prepareInput() {
	ti := textinput.New()
	ti.Prompt = "address: "
	ti.Placeholder = "0x0"
	if len(m.exports) > 0 {
		ti.Placeholder = "0x0 or " + m.exports[0]
	}
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *inspectModel) decode(arg string) tea.Cmd {
	typeName := m.types[m.selected]
	return func() tea.Msg {
		ctx := context.Background()
		addr, err := m.src.resolve(ctx, strings.TrimSpace(arg))
		if err != nil {
			return decodedMsg{err: err}
		}
		v, err := m.table.Decode(lift.NewReader(m.src.mem), typeName, addr)
		if err != nil {
			return decodedMsg{err: err}
		}
		out, err := render(v, m.cfg.Format)
		if err != nil {
			return decodedMsg{err: err}
		}
		return decodedMsg{result: fmt.Sprintf("@ %#x\n\n%s", addr, out)}
	}
}

func (m *inspectModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.src == nil {
		return "Loading " + m.filename + "..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("wirectl " + m.cfg.Schema))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a wire type:\n\n")
		for i, name := range m.types {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + name))
			} else {
				b.WriteString("  " + typeStyle.Render(name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputAddr:
		fmt.Fprintf(&b, "Decode %s\n\n", typeStyle.Render(m.types[m.selected]))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if len(m.exports) > 0 {
			b.WriteString("Guest exports returning an address:\n")
			for _, name := range m.exports {
				b.WriteString("  " + exportStyle.Render(name) + "\n")
			}
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		fmt.Fprintf(&b, "%s\n\n", typeStyle.Render(m.types[m.selected]))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter new address • esc types • q quit"))
	}

	return b.String()
}
