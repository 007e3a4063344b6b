package viz

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/nbodyviz/internal/series"
)

const spreadCapacity = 120

type keyMap struct {
	Quit key.Binding
	Help key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

// FrameMsg carries one fully rendered frame into the program.
type FrameMsg struct {
	View   string
	Index  int
	Total  int
	Bodies int
	Spread float64
}

// Model is the bubbletea model behind the live view. It only displays what
// it is sent; playback timing lives outside the program.
type Model struct {
	title   string
	theme   Theme
	help    help.Model
	full    bool
	frame   FrameMsg
	spreads []float64
	styles  modelStyles
}

type modelStyles struct {
	canvas lipgloss.Style
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
}

func NewModel(title string, th Theme) Model {
	return Model{
		title:   title,
		theme:   th,
		help:    help.New(),
		spreads: make([]float64, 0, spreadCapacity),
		styles: modelStyles{
			canvas: lipgloss.NewStyle().Padding(1, 2).Background(th.Background),
			stats:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(th.Muted).Padding(1, 2).Width(40),
			header: lipgloss.NewStyle().Foreground(th.Accent).Bold(true).MarginBottom(1),
			label:  lipgloss.NewStyle().Foreground(th.Muted).Width(10),
			value:  lipgloss.NewStyle().Foreground(th.Text),
			graph:  lipgloss.NewStyle().Foreground(th.Accent).Padding(1, 0),
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.full = !m.full
			m.help.ShowAll = m.full
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case FrameMsg:
		if msg.Index == 0 {
			m.spreads = m.spreads[:0]
		}
		m.frame = msg
		m.spreads = append(m.spreads, msg.Spread)
		if len(m.spreads) > spreadCapacity {
			m.spreads = m.spreads[1:]
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.frame.View == "" {
		return m.styles.value.Render("waiting for first frame...") + "\n"
	}

	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.styles.label.Render("Frame") + m.styles.value.Render(fmt.Sprintf("%d / %d", m.frame.Index+1, m.frame.Total)) + "\n")
	s.WriteString(m.styles.label.Render("Bodies") + m.styles.value.Render(fmt.Sprintf("%d", m.frame.Bodies)) + "\n")
	s.WriteString(m.styles.label.Render("Spread") + m.styles.value.Render(fmt.Sprintf("%.1f", m.frame.Spread)) + "\n")
	if len(m.spreads) > 1 {
		chart := asciigraph.Plot(m.spreads, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("spread"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}
	s.WriteString("\n" + m.help.View(keys))

	canvasView := m.styles.canvas.Render(m.frame.View)
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.stats.Render(s.String()))
}

// Terminal is the interactive Renderer. It runs a bubbletea program in the
// background and pushes each presented frame into it. When the user quits,
// the stop function given to NewTerminal is called so playback can end.
type Terminal struct {
	scene   *Scene
	canvas  *Canvas
	program *tea.Program
	total   int
	count   int

	done chan struct{}
	once sync.Once
	err  error
}

// NewTerminal starts the live view for a series of total frames. stop is
// invoked once the program exits for any reason.
func NewTerminal(title string, opts Options, total int, stop context.CancelFunc, progOpts ...tea.ProgramOption) *Terminal {
	t := &Terminal{
		scene:   NewScene(opts),
		canvas:  NewCanvas(opts.Cols, opts.Rows),
		program: tea.NewProgram(NewModel(title, opts.Theme), progOpts...),
		total:   total,
		done:    make(chan struct{}),
	}
	go func() {
		_, t.err = t.program.Run()
		if stop != nil {
			stop()
		}
		close(t.done)
	}()
	return t
}

// Present renders into the terminal's own canvas and hands the finished
// string to the program. It is a no-op once the program has exited.
func (t *Terminal) Present(f series.Frame, radii []float64) error {
	select {
	case <-t.done:
		return nil
	default:
	}

	t.scene.Rasterize(t.canvas, f, radii)
	msg := FrameMsg{
		View:   t.canvas.Render(t.scene.Options().Theme),
		Index:  t.count % max(1, t.total),
		Total:  t.total,
		Bodies: len(f),
		Spread: f.Spread(),
	}
	t.count++
	t.program.Send(msg)
	return nil
}

// Close asks the program to exit without waiting for it.
func (t *Terminal) Close() {
	t.once.Do(t.program.Quit)
}

// Finalize blocks until the user closes the view.
func (t *Terminal) Finalize(exportTarget string) error {
	if exportTarget != "" {
		t.Close()
		<-t.done
		return ErrExportUnsupported
	}
	<-t.done
	return t.err
}

// Done is closed when the program has exited.
func (t *Terminal) Done() <-chan struct{} { return t.done }
