package main

import (
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/azrogers/mapzk/camera"
	"github.com/azrogers/mapzk/log"
)

const panStep = 32.0

// maxLogLines bounds the log pane shown beneath the map frame.
const maxLogLines = 6

// model is the bubbletea model for an interactive map preview: a
// single terrain image framed by a pannable, zoomable [camera.Viewport],
// with a scrolling pane of recent log lines fed by a [log.Subscription].
type model struct {
	image    image.Image
	viewport *camera.Viewport
	cols     int
	rows     int
	buf      strings.Builder
	title    string

	logSub  *log.Subscription
	logPane []string
}

func newModel(img image.Image, cols, rows int, title string, logSub *log.Subscription) *model {
	return &model{
		image:    img,
		viewport: camera.NewViewport(image.Rect(0, 0, cols, rows*2)),
		cols:     cols,
		rows:     rows,
		title:    title,
		logSub:   logSub,
	}
}

// logLineMsg carries one log entry read from a [log.Subscription].
// ok is false once the subscription's channel has closed.
type logLineMsg struct {
	line string
	ok   bool
}

// readLogLine returns a tea.Cmd that blocks on sub's channel and delivers
// the next entry as a logLineMsg.
func readLogLine(sub *log.Subscription) tea.Cmd {
	return func() tea.Msg {
		b, ok := <-sub.C()
		if !ok {
			return logLineMsg{ok: false}
		}

		return logLineMsg{line: strings.TrimRight(string(b), "\n"), ok: true}
	}
}

func (m *model) Init() tea.Cmd {
	if m.logSub == nil {
		return nil
	}

	return readLogLine(m.logSub)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.viewport.Pan(-panStep, 0)
		case "right", "l":
			m.viewport.Pan(panStep, 0)
		case "up", "k":
			m.viewport.Pan(0, -panStep)
		case "down", "j":
			m.viewport.Pan(0, panStep)
		case "+", "=":
			m.viewport.Zoom(1.25)
		case "-", "_":
			m.viewport.Zoom(0.8)
		}

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.viewport = camera.NewViewport(image.Rect(0, 0, m.cols, m.rows*2))

	case logLineMsg:
		if !msg.ok {
			return m, nil
		}

		m.logPane = append(m.logPane, msg.line)
		if len(m.logPane) > maxLogLines {
			m.logPane = m.logPane[len(m.logPane)-maxLogLines:]
		}

		return m, readLogLine(m.logSub)
	}

	return m, nil
}

func (m *model) View() tea.View {
	frameRows := m.rows - 1 - len(m.logPane)
	if frameRows < 1 {
		frameRows = 1
	}

	frame := m.viewport.Visible(m.image)

	m.buf.Reset()
	m.buf.WriteString(m.title)
	m.buf.WriteString("\n")
	renderFrame(frame, m.cols, frameRows, &m.buf)

	for _, line := range m.logPane {
		m.buf.WriteString(line)
		m.buf.WriteString("\n")
	}

	v := tea.NewView(m.buf.String())
	v.AltScreen = true

	return v
}
