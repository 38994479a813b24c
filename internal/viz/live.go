package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/plotmorph/internal/config"
	"github.com/san-kum/plotmorph/internal/render"
	"github.com/san-kum/plotmorph/internal/scene"
	"github.com/san-kum/plotmorph/internal/theme"
	"github.com/san-kum/plotmorph/internal/transition"
)

const historyCapacity = 600

type TickMsg time.Time

// Model drives one transition session at the configured frame rate and
// renders each delivered frame on a Braille canvas.
type Model struct {
	fromPlot *render.Plot
	toPlot   *render.Plot
	cfg      *config.Config
	toggler  *theme.Toggler

	session *transition.Session
	sink    *render.CanvasSink

	running   bool
	done      bool
	showHelp  bool
	last      *transition.Frame
	easedHist []float64
}

// NewModel builds the viewer around two live plots. The session is created
// from fresh captures of both, so later restarts or theme toggles pick up
// plot mutations.
func NewModel(from, to *render.Plot, cfg *config.Config) (Model, error) {
	m := Model{
		fromPlot: from,
		toPlot:   to,
		cfg:      cfg,
		toggler:  theme.NewToggler(theme.DefaultScheme()),
		sink:     render.NewCanvasSink(cfg.Canvas.Width, cfg.Canvas.Height),
		running:  true,
	}
	m.toggler.AdjustDataColors = true
	m.toggler.Register("from", from)
	m.toggler.Register("to", to)
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// rebuild captures the plots and starts a fresh session.
func (m *Model) rebuild() error {
	s, err := transition.NewSession(transition.Descriptor{
		From:      scene.Capture(m.fromPlot),
		To:        scene.Capture(m.toPlot),
		Duration:  m.cfg.Duration,
		FrameRate: m.cfg.FrameRate,
		Easing:    m.cfg.Easing,
		Sink:      m.sink,
	})
	if err != nil {
		return err
	}
	m.session = s
	m.last = nil
	m.easedHist = m.easedHist[:0]
	m.done = false
	return nil
}

func (m Model) tick() tea.Cmd {
	interval := time.Duration(float64(time.Second) / m.cfg.FrameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances the session once per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.done {
				m.running = !m.running
			}
		case "r":
			if err := m.rebuild(); err == nil {
				m.running = true
			}
		case "c":
			m.session.Cancel()
			m.running = false
			m.done = true
		case "t":
			m.toggler.Toggle("from", m.fromPlot)
			m.toggler.Toggle("to", m.toPlot)
			if err := m.rebuild(); err == nil {
				m.running = true
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.done {
			f, err := m.session.Advance()
			if errors.Is(err, transition.ErrSessionEnded) {
				m.done = true
				m.running = false
			} else if err == nil {
				m.last = f
				m.easedHist = append(m.easedHist, f.Eased)
				if len(m.easedHist) > historyCapacity {
					m.easedHist = m.easedHist[1:]
				}
				if m.session.State() == transition.StateCompleted {
					m.done = true
					m.running = false
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the canvas beside the session stats.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.sink.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("TRANSITION") + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.easedHist) > 1 {
		chart := asciigraph.Plot(m.easedHist, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("eased progress"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	frame, total := 0, m.session.Total()
	progress, eased := 0.0, 0.0
	if m.last != nil {
		frame, progress, eased = m.last.Index, m.last.Progress, m.last.Eased
	}
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d / %d", frame, total)) + "\n")
	s.WriteString(labelStyle.Render("Progress") + valueStyle.Render(fmt.Sprintf("%.3f", progress)) + "\n")
	s.WriteString(labelStyle.Render("Eased") + valueStyle.Render(fmt.Sprintf("%.3f", eased)) + "\n")
	s.WriteString(labelStyle.Render("Easing") + valueStyle.Render(m.cfg.Easing) + "\n")
	s.WriteString(labelStyle.Render("State") + valueStyle.Render(m.session.State().String()) + "\n")
	if n := len(m.session.Diagnostics()); n > 0 {
		s.WriteString(labelStyle.Render("Warnings") + warnStyle.Render(fmt.Sprintf("%d", n)) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Restart C:Cancel\nT:Theme Q:Quit ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) status() string {
	switch {
	case m.session.State() == transition.StateCancelled:
		return "CANCELLED"
	case m.done:
		return "COMPLETED"
	case m.running:
		return "PLAYING"
	default:
		return "PAUSED"
	}
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart transition       ║
║  C        - Cancel session           ║
║  T        - Toggle dark mode         ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// Run starts the interactive viewer and blocks until it exits.
func Run(from, to *render.Plot, cfg *config.Config) error {
	m, err := NewModel(from, to, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
