package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/matrixbg/internal/generator"
	"github.com/san-kum/matrixbg/internal/metrics"
	"github.com/san-kum/matrixbg/internal/raster"
)

type TickMsg time.Time

// Watch regenerates the output file on every tick and previews the result.
type Watch struct {
	gen      *generator.Generator
	interval time.Duration
	clock    func() time.Time

	width   int
	paused  bool
	frame   *raster.Frame
	stats   map[string]float64
	path    string
	renders int
	elapsed time.Duration
	err     error
}

func NewWatch(gen *generator.Generator, interval time.Duration) Watch {
	if interval <= 0 {
		interval = time.Second
	}
	return Watch{
		gen:      gen,
		interval: interval,
		clock:    time.Now,
	}
}

func (m Watch) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Watch) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg(m.clock()) }
}

func (m Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case TickMsg:
		if !m.paused {
			m = m.render(time.Time(msg))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Watch) render(now time.Time) Watch {
	start := m.clock()
	path, frame, err := m.gen.Render(now)
	m.elapsed = m.clock().Sub(start)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.path = path
	m.frame = frame
	m.stats = metrics.Collect(m.frame, metrics.Defaults()...)
	m.renders++
	return m
}

func (m Watch) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("matrixbg watch  every %s", m.interval)))
	sb.WriteByte('\n')

	if m.frame != nil {
		sb.WriteString(Preview(m.frame, m.width))
		sb.WriteString("\n\n")
		sb.WriteString(StatsLine(m.stats))
		sb.WriteByte('\n')
		sb.WriteString(labelStyle.Render("frames") + valueStyle.Render(fmt.Sprintf("%d", m.renders)))
		sb.WriteString("  " + labelStyle.Render("render") + valueStyle.Render(m.elapsed.Round(time.Microsecond).String()))
		sb.WriteByte('\n')
		sb.WriteString(labelStyle.Render("path") + m.path)
		sb.WriteByte('\n')
	}
	if m.paused {
		sb.WriteString(pausedStyle.Render("paused"))
		sb.WriteByte('\n')
	}
	if m.err != nil {
		sb.WriteString(errorStyle.Render("error: " + m.err.Error()))
		sb.WriteByte('\n')
	}

	sb.WriteString(helpStyle.Render("space pause  q quit"))
	return sb.String()
}

// RunWatch starts the watch program on the alternate screen.
func RunWatch(gen *generator.Generator, interval time.Duration) error {
	_, err := tea.NewProgram(NewWatch(gen, interval), tea.WithAltScreen()).Run()
	return err
}
