package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/spangrid/pkg/grid/engine"
	"github.com/matzehuels/spangrid/pkg/grid/pool"
	"github.com/matzehuels/spangrid/pkg/grid/state"
)

// Block colors cycled by item index.
var blockColors = []lipgloss.Color{colorCyan, colorGreen, colorYellow, colorBlue, colorRed, colorWhite}

var (
	blockEmptyStyle  = lipgloss.NewStyle().Foreground(colorDim)
	footerStyle      = lipgloss.NewStyle().Foreground(colorGray)
	footerValueStyle = lipgloss.NewStyle().Foreground(colorWhite)
)

// demoModel is the bubbletea model driving an engine with keyboard
// scrolling. Each grid row renders as one terminal line, one fixed-width
// block per lane.
type demoModel struct {
	ctx      context.Context
	eng      *engine.Engine
	pool     *pool.Pool
	scenario *scenario
	store    state.Store
	stateKey string

	termRows int
	status   string
}

func newDemoModel(ctx context.Context, s *scenario, store state.Store, stateKey string) (*demoModel, error) {
	eng, p, err := s.buildEngine(nil)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	m := &demoModel{
		ctx:      ctx,
		eng:      eng,
		pool:     p,
		scenario: s,
		store:    store,
		stateKey: stateKey,
	}

	if store != nil {
		saved, err := store.Get(ctx, stateKey)
		if err == nil {
			eng.RestoreState(saved)
			m.status = fmt.Sprintf("restored position at item %d", saved.FirstVisible)
		} else if !errors.Is(err, state.ErrNotFound) {
			return nil, fmt.Errorf("load state: %w", err)
		}
	}

	if err := eng.FullLayout(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return m, nil
}

// cell returns the pixel size of one grid cell, matching the engine's
// derivation when the scenario leaves cell_size unset.
func (m *demoModel) cell() int {
	if m.scenario.CellSize > 0 {
		return m.scenario.CellSize
	}
	extent := m.scenario.Viewport.Width
	if m.scenario.Orientation == "horizontal" {
		extent = m.scenario.Viewport.Height
	}
	c := extent / m.scenario.Lanes
	if c < 1 {
		c = 1
	}
	return c
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.saveState()
			return m, tea.Quit
		case "down", "j":
			m.scrollBy(m.cell())
		case "up", "k":
			m.scrollBy(-m.cell())
		case "pgdown", "f":
			m.scrollBy(m.viewportPrimary())
		case "pgup", "b":
			m.scrollBy(-m.viewportPrimary())
		case "g":
			m.jumpTo(0)
		case "G":
			m.jumpTo(m.eng.ItemCount() - 1)
		case "s":
			m.saveState()
		}
	case tea.WindowSizeMsg:
		m.termRows = msg.Height
		m.resizeViewport(msg.Height)
	}
	return m, nil
}

// scrollBy scrolls and records how much of the delta was consumed.
func (m *demoModel) scrollBy(delta int) {
	consumed := m.eng.ScrollBy(delta)
	if consumed == 0 && delta != 0 {
		m.status = "at edge"
		return
	}
	m.status = fmt.Sprintf("scrolled %+dpx", consumed)
}

// jumpTo targets an item and re-runs the layout pass.
func (m *demoModel) jumpTo(index int) {
	if index < 0 {
		return
	}
	m.eng.ScrollToIndex(index)
	if err := m.eng.FullLayout(); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("jumped to item %d", index)
}

// resizeViewport maps terminal rows onto the scroll axis: one grid row of
// cells per terminal line, minus the header and footer chrome.
func (m *demoModel) resizeViewport(termRows int) {
	rows := termRows - 5
	if rows < 3 {
		rows = 3
	}
	primary := rows * m.cell()
	if m.scenario.Orientation == "horizontal" {
		m.eng.SetViewport(primary, m.scenario.Viewport.Height)
	} else {
		m.eng.SetViewport(m.scenario.Viewport.Width, primary)
	}
	if err := m.eng.FullLayout(); err != nil {
		m.status = err.Error()
	}
}

func (m *demoModel) viewportPrimary() int {
	if m.scenario.Orientation == "horizontal" {
		return m.scenario.Viewport.Width
	}
	return m.scenario.Viewport.Height
}

func (m *demoModel) saveState() {
	if m.store == nil {
		return
	}
	saved, ok := m.eng.SaveState()
	if !ok {
		m.status = "nothing to save"
		return
	}
	if err := m.store.Set(m.ctx, m.stateKey, saved); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved position at item %d", saved.FirstVisible)
}

func (m *demoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("spangrid"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("j/k scroll  f/b page  g/G ends  s save  q quit"))
	b.WriteString("\n\n")

	cell := m.cell()
	firstRow := m.eng.Scroll() / cell
	rows := m.viewportRows()
	lanes := m.scenario.Lanes

	// Cell occupancy for the visible band, materialized items only.
	occupied := make(map[[2]int]int)
	count := m.eng.ItemCount()
	for i := 0; i < count; i++ {
		cellRect, _, ok := m.eng.Placement(i)
		if !ok {
			continue
		}
		if _, live := m.eng.ItemAt(i); !live {
			continue
		}
		for y := cellRect.Top; y < cellRect.Bottom; y++ {
			for x := cellRect.Left; x < cellRect.Right; x++ {
				occupied[[2]int{x, y}] = i
			}
		}
	}

	for r := firstRow; r < firstRow+rows; r++ {
		for l := 0; l < lanes; l++ {
			idx, ok := occupied[[2]int{l, r}]
			if !ok {
				b.WriteString(blockEmptyStyle.Render("  ·   "))
				continue
			}
			style := lipgloss.NewStyle().Foreground(blockColors[idx%len(blockColors)])
			b.WriteString(style.Render(fmt.Sprintf("[%4d]", idx)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// viewportRows returns the number of grid rows the current viewport spans.
func (m *demoModel) viewportRows() int {
	cell := m.cell()
	if m.termRows > 0 {
		rows := m.termRows - 5
		if rows < 3 {
			rows = 3
		}
		return rows
	}
	return m.viewportPrimary() / cell
}

func (m *demoModel) footer() string {
	parts := []string{
		"scroll " + footerValueStyle.Render(fmt.Sprintf("%dpx", m.eng.Scroll())),
		"content " + footerValueStyle.Render(fmt.Sprintf("%dpx", m.eng.ContentEnd())),
		"visible " + footerValueStyle.Render(fmt.Sprintf("%d-%d", m.eng.FirstVisible(), m.eng.LastVisible())),
		"live " + footerValueStyle.Render(fmt.Sprintf("%d", m.pool.Live())),
	}
	line := footerStyle.Render(strings.Join(parts, "  ·  "))
	if m.status != "" {
		line += "  " + StyleDim.Render(m.status)
	}
	return line
}

var _ tea.Model = (*demoModel)(nil)
