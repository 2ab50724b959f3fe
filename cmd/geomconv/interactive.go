package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/engine"
	"github.com/wippyai/geometry-codec/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2D7D46")).
			Padding(0, 1)

	canvasStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewerState int

const (
	stateInput viewerState = iota
	stateView
)

type viewerModel struct {
	eng     *engine.Mem
	cfg     displayConfig
	input   textinput.Model
	g       *geometrycodec.Geometry
	err     error
	state   viewerState
	width   int
	height  int
	zoom    float64
	offsetX int
	offsetY int
}

func newViewerModel(cfg displayConfig, g *geometrycodec.Geometry) *viewerModel {
	ti := textinput.New()
	ti.Placeholder = "WKB hex or path to a .wkb file"
	ti.Prompt = "> "
	ti.Width = 60

	m := &viewerModel{
		eng:    engine.NewMem(),
		cfg:    cfg,
		input:  ti,
		g:      g,
		state:  stateInput,
		width:  cfg.CanvasWidth,
		height: cfg.CanvasHeight,
		zoom:   1,
	}
	if g != nil {
		m.state = stateView
	} else {
		m.input.Focus()
	}
	return m
}

func (m *viewerModel) Init() tea.Cmd {
	return textinput.Blink
}

type decodedMsg struct {
	err error
	g   *geometrycodec.Geometry
}

func (m *viewerModel) decodeInput() tea.Msg {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return decodedMsg{err: fmt.Errorf("nothing to decode")}
	}

	data, err := hex.DecodeString(raw)
	if err != nil {
		data, err = os.ReadFile(raw)
		if err != nil {
			return decodedMsg{err: fmt.Errorf("input is neither hex nor a readable file: %w", err)}
		}
	}

	g, err := transcoder.NewDecoder(m.eng).DecodeWKB(data)
	if err != nil {
		return decodedMsg{err: err}
	}
	return decodedMsg{g: g}
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		m.height = msg.Height - 6
		if m.width < 8 {
			m.width = 8
		}
		if m.height < 4 {
			m.height = 4
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateView {
				return m, tea.Quit
			}

		case "enter":
			if m.state == stateInput {
				return m, m.decodeInput
			}

		case "esc":
			if m.state == stateView {
				m.state = stateInput
				m.err = nil
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, tea.Quit

		case "+", "=":
			if m.state == stateView {
				m.zoom *= 1.25
			}

		case "-", "_":
			if m.state == stateView && m.zoom > 0.1 {
				m.zoom /= 1.25
			}

		case "up", "k":
			if m.state == stateView {
				m.offsetY++
			}

		case "down", "j":
			if m.state == stateView {
				m.offsetY--
			}

		case "left", "h":
			if m.state == stateView {
				m.offsetX++
			}

		case "right", "l":
			if m.state == stateView {
				m.offsetX--
			}

		case "r":
			if m.state == stateView {
				m.zoom = 1
				m.offsetX, m.offsetY = 0, 0
			}
		}

	case decodedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.g = msg.g
		m.err = nil
		m.state = stateView
		m.zoom = 1
		m.offsetX, m.offsetY = 0, 0
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *viewerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("geomconv"))
	b.WriteString("\n\n")

	switch m.state {
	case stateInput:
		b.WriteString("Paste WKB to view:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter decode • esc quit"))

	case stateView:
		for _, row := range render(m.g, m.width, m.height, m.zoom, m.offsetX, m.offsetY) {
			b.WriteString(canvasStyle.Render(row))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.describe()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓/←/→ pan • +/- zoom • r reset • esc new input • q quit"))
	}

	return b.String()
}

func (m *viewerModel) describe() string {
	_, bb := paths(m.g)
	if !bb.set {
		return m.g.String()
	}
	p := m.cfg.Precision
	return fmt.Sprintf("%s  [%.*f, %.*f] .. [%.*f, %.*f]  zoom %.2f",
		m.g, p, bb.minX, p, bb.minY, p, bb.maxX, p, bb.maxY, m.zoom)
}

func runInteractive(cfg displayConfig, g *geometrycodec.Geometry) error {
	if cfg.Theme == "light" {
		canvasStyle = canvasStyle.Foreground(lipgloss.Color("#00328B"))
		statusStyle = statusStyle.Foreground(lipgloss.Color("#005F00"))
		helpStyle = helpStyle.Foreground(lipgloss.Color("#8A8A8A"))
	}
	p := tea.NewProgram(newViewerModel(cfg, g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
