package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chazu/whorl/pkg/render"
	"github.com/chazu/whorl/pkg/render/pointer"
	"github.com/chazu/whorl/pkg/render/touch"
	"github.com/chazu/whorl/pkg/selection"
	"github.com/chazu/whorl/pkg/taxonomy"
	"github.com/chazu/whorl/pkg/wheel"
)

// Terminal cells are not pixels; the dispatcher thinks in pixels, so cell
// counts are scaled by typical glyph metrics before measurement.
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Back    key.Binding
	Confirm key.Binding
	Reset   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "back")),
		Confirm: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "confirm")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.Confirm, k.Reset, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.Confirm, k.Reset},
		{k.ZoomIn, k.ZoomOut, k.Quit},
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tileStyle     = lipgloss.NewStyle().Padding(0, 1).Margin(0, 1).Width(18).Foreground(lipgloss.Color("235"))
	cursorStyle   = lipgloss.NewStyle().Padding(0, 1).Margin(0, 1).Width(18).Foreground(lipgloss.Color("230")).Bold(true).Underline(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// completionBox carries the finished path out of the renderer callback.
// Bubble Tea models are values; both copies share this pointer.
type completionBox struct {
	path *selection.Path
}

type model struct {
	tree       *taxonomy.Tree
	dispatcher *render.Dispatcher
	keys       keyMap
	help       help.Model
	cursor     int
	box        *completionBox
	onDone     func(core, primary, tertiary string)
}

func newModel(tree *taxonomy.Tree, rightToLeft bool, onDone func(core, primary, tertiary string)) model {
	dir := wheel.DirectionLTR
	if rightToLeft {
		dir = wheel.DirectionRTL
	}
	box := &completionBox{}
	opts := render.Options{
		Taxonomy: tree,
		Locale:   render.Locale{Direction: dir},
		OnComplete: func(p selection.Path) {
			box.path = &p
		},
	}
	dispatcher := render.NewDispatcher(opts, render.Factory{
		Pointer: func(o render.Options) render.Renderer { return pointer.New(o) },
		Touch:   func(o render.Options) render.Renderer { return touch.New(o) },
	}, 0)
	return model{
		tree:       tree,
		dispatcher: dispatcher,
		keys:       defaultKeyMap(),
		help:       help.New(),
		box:        box,
		onDone:     onDone,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.dispatcher.Measure(float64(msg.Width)*cellWidthPx, float64(msg.Height)*cellHeightPx)
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.box.path != nil {
			// Selection finished; any other key leaves the app.
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch r := m.dispatcher.Renderer().(type) {
	case *touch.Renderer:
		return m.updateTouch(msg, r)
	case *pointer.Renderer:
		return m.updatePointer(msg, r)
	}
	return m, nil
}

// updateTouch drives the tile grid: arrows move, enter taps, backspace
// backs out, c confirms, +/- pinches.
func (m model) updateTouch(msg tea.KeyMsg, r *touch.Renderer) (tea.Model, tea.Cmd) {
	scene := r.Scene().(touch.Scene)
	n := len(scene.Tiles)

	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = wrap(m.cursor-1, n)
	case key.Matches(msg, m.keys.Right):
		m.cursor = wrap(m.cursor+1, n)
	case key.Matches(msg, m.keys.Up):
		m.cursor = wrap(m.cursor-scene.Columns, n)
	case key.Matches(msg, m.keys.Down):
		m.cursor = wrap(m.cursor+scene.Columns, n)
	case key.Matches(msg, m.keys.Select):
		if m.cursor < n && r.Tap(scene.Tiles[m.cursor].Name) {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Back):
		r.Back()
		m.cursor = 0
	case key.Matches(msg, m.keys.Confirm):
		if r.Confirm() {
			return m.finish()
		}
	case key.Matches(msg, m.keys.Reset):
		r.Reset()
		m.cursor = 0
	case key.Matches(msg, m.keys.ZoomIn):
		r.Pinch(1.1)
	case key.Matches(msg, m.keys.ZoomOut):
		r.Pinch(0.9)
	}
	return m, nil
}

// updatePointer walks the wheel's selectable segments; enter clicks the
// highlighted one through real hit testing at its label anchor.
func (m model) updatePointer(msg tea.KeyMsg, r *pointer.Renderer) (tea.Model, tea.Cmd) {
	bright := brightSegments(r)
	n := len(bright)

	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
		m.cursor = wrap(m.cursor-1, n)
		m.hover(r, bright)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down):
		m.cursor = wrap(m.cursor+1, n)
		m.hover(r, bright)
	case key.Matches(msg, m.keys.Select):
		if m.cursor < n {
			s := bright[m.cursor]
			r.Click(s.LabelX, s.LabelY)
			m.cursor = 0
			if m.box.path != nil {
				return m.finish()
			}
		}
	case key.Matches(msg, m.keys.Back):
		r.ClearCrumb(deepest(r.Path()))
		m.cursor = 0
	case key.Matches(msg, m.keys.Reset):
		r.Reset()
		m.cursor = 0
	}
	return m, nil
}

func (m model) hover(r *pointer.Renderer, bright []pointer.SceneSegment) {
	if m.cursor < len(bright) {
		r.Hover(bright[m.cursor].LabelX, bright[m.cursor].LabelY)
	}
}

func (m model) finish() (tea.Model, tea.Cmd) {
	if m.onDone != nil && m.box.path != nil {
		p := *m.box.path
		m.onDone(p.Core, p.Primary, p.Tertiary)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("whorl") + "\n\n")

	if m.box.path != nil {
		p := *m.box.path
		b.WriteString(completeStyle.Render(fmt.Sprintf("You are feeling: %s → %s → %s", p.Core, p.Primary, p.Tertiary)))
		b.WriteString("\n\n" + dimStyle.Render("press any key to leave"))
		return b.String()
	}

	switch r := m.dispatcher.Renderer().(type) {
	case *touch.Renderer:
		b.WriteString(m.viewTouch(r.Scene().(touch.Scene)))
	case *pointer.Renderer:
		b.WriteString(m.viewPointer(r))
	default:
		b.WriteString(dimStyle.Render("measuring…"))
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m model) viewTouch(scene touch.Scene) string {
	var b strings.Builder
	b.WriteString(pathStyle.Render(pathLine(scene.Path, scene.Ring)) + "\n\n")

	for i, tile := range scene.Tiles {
		style := tileStyle.Background(lipgloss.Color(tile.FillStart))
		if i == m.cursor {
			style = cursorStyle.Background(lipgloss.Color(tile.FillStart))
		}
		label := tile.Label
		if tile.Pending {
			label = "● " + label
		}
		b.WriteString(style.Render(label))
		if (i+1)%scene.Columns == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if scene.CanConfirm {
		b.WriteString("\n" + pendingStyle.Render("pending: "+scene.Path.Core+" → "+scene.Path.Primary+" → …  press c to confirm") + "\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("\nwheel %0.f px", scene.DiameterPx)) + "\n")
	return b.String()
}

func (m model) viewPointer(r *pointer.Renderer) string {
	scene := r.Scene().(pointer.Scene)
	bright := brightSegments(r)

	var b strings.Builder
	if len(scene.Breadcrumb) > 0 {
		parts := make([]string, len(scene.Breadcrumb))
		for i, c := range scene.Breadcrumb {
			parts[i] = c.Label
		}
		b.WriteString(pathStyle.Render(strings.Join(parts, " → ")) + "\n")
	}
	if scene.CenterLabel != "" {
		b.WriteString(titleStyle.Render(scene.CenterLabel) + "\n")
	}
	b.WriteString("\n")

	for i, s := range bright {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-10s %s", prefix, "["+s.Ring.String()+"]", s.Label)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.FillStart))
		if i == m.cursor {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

// brightSegments lists the segments a keyboard cursor can land on: the
// not-dimmed ones, in scene order.
func brightSegments(r *pointer.Renderer) []pointer.SceneSegment {
	scene := r.Scene().(pointer.Scene)
	var out []pointer.SceneSegment
	for _, s := range scene.Segments {
		if !s.Dimmed {
			out = append(out, s)
		}
	}
	return out
}

func pathLine(p selection.Path, ring string) string {
	parts := []string{}
	if p.Core != "" {
		parts = append(parts, p.Core)
	}
	if p.Primary != "" {
		parts = append(parts, p.Primary)
	}
	if p.Tertiary != "" {
		parts = append(parts, p.Tertiary)
	}
	if len(parts) == 0 {
		return "choose a " + ring + " feeling"
	}
	return strings.Join(parts, " → ") + "  (" + ring + " ring)"
}

func deepest(p selection.Path) taxonomy.Level {
	switch {
	case p.Tertiary != "":
		return taxonomy.LevelTertiary
	case p.Primary != "":
		return taxonomy.LevelPrimary
	default:
		return taxonomy.LevelCore
	}
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
