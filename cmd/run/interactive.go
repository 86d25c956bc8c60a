package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/script-runtime/journal"
	"github.com/wippyai/script-runtime/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	engineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// transcriptCap bounds how many finished calls stay on screen.
const transcriptCap = 8

type replState int

const (
	stateStarting replState = iota
	stateReady
	stateRunning
)

type transcriptEntry struct {
	script string
	output string
	errMsg string
	took   time.Duration
}

type replModel struct {
	cfg    Config
	logger *zap.Logger
	rec    journal.Recorder

	rt    *runtime.Runtime
	input textinput.Model
	state replState
	err   error

	transcript []transcriptEntry
	history    []string
	histIdx    int
}

func newReplModel(cfg Config, logger *zap.Logger, rec journal.Recorder) *replModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "script"
	ti.Width = 60

	return &replModel{
		cfg:    cfg,
		logger: logger,
		rec:    rec,
		input:  ti,
		state:  stateStarting,
	}
}

type startedMsg struct {
	err error
	rt  *runtime.Runtime
}

type execDoneMsg struct {
	err    error
	res    *runtime.Result
	script string
}

func (m *replModel) Init() tea.Cmd {
	return m.startRuntime
}

func (m *replModel) startRuntime() tea.Msg {
	rt, err := runtime.NewWithConfig(context.Background(), &runtime.Config{
		Engine:   m.cfg.Engine,
		Logger:   m.logger,
		Recorder: m.rec,
	})
	if err != nil {
		return startedMsg{err: err}
	}
	return startedMsg{rt: rt}
}

func (m *replModel) execScript(script string) tea.Cmd {
	rt := m.rt
	return func() tea.Msg {
		res, err := rt.Execute(context.Background(), script)
		if err != nil {
			return execDoneMsg{script: script, err: err}
		}
		return execDoneMsg{script: script, res: res}
	}
}

func (m *replModel) shutdown() {
	if m.rt == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m.rt.Close(ctx)
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.shutdown()
			return m, tea.Quit

		case "q":
			// Only a quit key on the fatal error screen; otherwise it
			// belongs to the script being typed.
			if m.err != nil {
				m.shutdown()
				return m, tea.Quit
			}

		case "enter":
			if m.state != stateReady {
				return m, nil
			}
			script := strings.TrimSpace(m.input.Value())
			if script == "" {
				return m, nil
			}
			m.history = append(m.history, script)
			m.histIdx = len(m.history)
			m.input.Reset()
			m.state = stateRunning
			return m, m.execScript(script)

		case "up":
			if m.state == stateReady && m.histIdx > 0 {
				m.histIdx--
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.state == stateReady {
				if m.histIdx < len(m.history)-1 {
					m.histIdx++
					m.input.SetValue(m.history[m.histIdx])
					m.input.CursorEnd()
				} else {
					m.histIdx = len(m.history)
					m.input.Reset()
				}
			}
			return m, nil

		case "ctrl+l":
			m.transcript = nil
			return m, nil
		}

	case startedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rt = msg.rt
		m.state = stateReady
		m.input.Focus()
		return m, textinput.Blink

	case execDoneMsg:
		entry := transcriptEntry{script: msg.script}
		if msg.err != nil {
			entry.errMsg = msg.err.Error()
		} else {
			entry.output = strings.TrimRight(msg.res.Output, "\n")
			entry.took = msg.res.Duration
		}
		m.transcript = append(m.transcript, entry)
		if len(m.transcript) > transcriptCap {
			m.transcript = m.transcript[len(m.transcript)-transcriptCap:]
		}
		m.state = stateReady
		m.input.Focus()
		return m, textinput.Blink
	}

	if m.state == stateReady {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *replModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Script Runtime"))
	b.WriteString(" ")
	b.WriteString(engineStyle.Render(m.cfg.Engine))
	b.WriteString("\n\n")

	if m.state == stateStarting {
		b.WriteString("Starting engine...\n")
		return b.String()
	}

	for _, e := range m.transcript {
		b.WriteString(promptStyle.Render("> "))
		b.WriteString(e.script)
		b.WriteString("\n")
		if e.errMsg != "" {
			b.WriteString(errorStyle.Render(e.errMsg))
			b.WriteString("\n")
		} else if e.output != "" {
			b.WriteString(outputStyle.Render(e.output))
			b.WriteString("\n")
		}
	}
	if len(m.transcript) > 0 {
		b.WriteString("\n")
	}

	switch m.state {
	case stateRunning:
		b.WriteString(helpStyle.Render("running..."))
		b.WriteString("\n")
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter run • ↑/↓ history • ctrl+l clear • esc quit"))

	return b.String()
}

func runInteractive(cfg Config, logger *zap.Logger, rec journal.Recorder) error {
	p := tea.NewProgram(newReplModel(cfg, logger, rec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
