package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/config"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/interaction"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/layout"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/metrics"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/render"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/snapshot"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/viewport"
)

// frameInterval paces the render loop at roughly 30 frames per second
// while the simulation or the reset animation is active.
const frameInterval = 33 * time.Millisecond

// statusRows is the screen space reserved below the canvas.
const statusRows = 2

// Styles
var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c8d0da"))

	modeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e67e22"))

	hoverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2ecc71"))

	waitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f8c8d")).
			MarginLeft(2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

type keyMap struct {
	Reset    key.Binding
	Fit      key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Legend   key.Binding
	Stats    key.Binding
	ClearSel key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset view"),
	),
	Fit: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fit graph"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "pan up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "pan down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "pan left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "pan right"),
	),
	Legend: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "legend"),
	),
	Stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stats"),
	),
	ClearSel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear selection"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Fit, k.Legend, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Fit, k.ZoomIn, k.ZoomOut},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Legend, k.Stats, k.ClearSel, k.Quit},
	}
}

// Model is the interactive viewer: it owns the simulation, viewport and
// interaction state, and redraws on a frame tick while anything moves.
type Model struct {
	cfg     config.Config
	source  snapshot.Source
	metrics *metrics.Registry
	log     logging.Logger

	graph *topology.Graph
	sim   *layout.Simulation
	view  *viewport.Controller
	inter *interaction.Controller

	builder *render.Builder
	surface *render.CellSurface

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	width  int
	height int

	// generation stamps frame ticks so stale ticks from a superseded
	// loop are discarded.
	generation int
	idle       bool

	pointerX float64
	pointerY float64

	// sel is shared across model copies so the interaction callback,
	// which closes over it once per snapshot, always lands in the
	// state the next View reads.
	sel *selectionState

	showLegend bool
	showStats  bool

	quitting bool
}

type selectionState struct {
	node *topology.Node
}

type frameMsg struct {
	generation int
	at         time.Time
}

type snapshotMsg snapshot.Update

type feedClosedMsg struct{}

// New builds the viewer model around a snapshot source.
func New(cfg config.Config, source snapshot.Source, m *metrics.Registry) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#e67e22"))

	if m == nil {
		m = metrics.DefaultRegistry()
	}

	return Model{
		cfg:       cfg,
		source:    source,
		metrics:   m,
		log:       logging.With(logging.Component("tui")),
		builder:   render.NewBuilder(cfg.Render.Palette, cfg.Render.Opacity),
		surface:   render.NewCellSurface(cfg.Render.Palette),
		keys:      keys,
		help:      help.New(),
		spinner:   sp,
		sel:       &selectionState{},
		idle:      true,
		showStats: true,
	}
}

func frameCmd(generation int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{generation: generation, at: t}
	})
}

func waitSnapshot(source snapshot.Source) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-source.Updates()
		if !ok {
			return feedClosedMsg{}
		}
		return snapshotMsg(u)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitSnapshot(m.source),
	)
}
