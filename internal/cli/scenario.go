package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/spangrid/pkg/grid"
	"github.com/matzehuels/spangrid/pkg/grid/engine"
	"github.com/matzehuels/spangrid/pkg/grid/pool"
)

// scenario describes a grid and its items, decoded from a TOML file.
//
// Example:
//
//	orientation = "vertical"
//	lanes = 3
//	cell_size = 100
//
//	[viewport]
//	width = 300
//	height = 400
//
//	[[items]]
//	count = 10
//	cols = 1
//	rows = 1
//
//	[[items]]
//	count = 2
//	cols = 2
//	rows = 2
//
// Item groups expand in order: the first group's items get the lowest
// indexes. When cell_size is omitted the engine derives it from the
// viewport's cross-axis extent.
type scenario struct {
	Orientation string      `toml:"orientation"`
	Lanes       int         `toml:"lanes"`
	CellSize    int         `toml:"cell_size"`
	Lookahead   int         `toml:"lookahead"`
	Viewport    viewport    `toml:"viewport"`
	Items       []itemGroup `toml:"items"`
}

type viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type itemGroup struct {
	Count int `toml:"count"`
	Cols  int `toml:"cols"`
	Rows  int `toml:"rows"`
}

// defaultScenario is what demo runs when no file is given: a three lane
// grid with a mix of spans that leaves and refills gaps while scrolling.
func defaultScenario() *scenario {
	return &scenario{
		Orientation: "vertical",
		Lanes:       3,
		CellSize:    100,
		Viewport:    viewport{Width: 300, Height: 400},
		Items: []itemGroup{
			{Count: 2, Cols: 2, Rows: 2},
			{Count: 20, Cols: 1, Rows: 1},
			{Count: 3, Cols: 3, Rows: 1},
			{Count: 20, Cols: 1, Rows: 1},
		},
	}
}

// loadScenario reads and validates a scenario file.
func loadScenario(path string) (*scenario, error) {
	var s scenario
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("scenario %s: unknown key %q", path, undecoded[0].String())
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// parseScenario decodes a scenario from raw TOML, for the HTTP service.
func parseScenario(data []byte) (*scenario, error) {
	var s scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *scenario) validate() error {
	switch s.Orientation {
	case "", "vertical", "horizontal":
	default:
		return fmt.Errorf("orientation must be vertical or horizontal, got %q", s.Orientation)
	}
	if s.Lanes < 1 {
		return fmt.Errorf("lanes must be at least 1, got %d", s.Lanes)
	}
	if s.CellSize < 0 {
		return fmt.Errorf("cell_size must not be negative, got %d", s.CellSize)
	}
	if s.Lookahead < 0 {
		return fmt.Errorf("lookahead must not be negative, got %d", s.Lookahead)
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("at least one items group is required")
	}
	for i, g := range s.Items {
		if g.Count < 1 {
			return fmt.Errorf("items group %d: count must be at least 1", i)
		}
		if g.Cols < 1 || g.Rows < 1 {
			return fmt.Errorf("items group %d: spans must be at least 1x1, got %dx%d", i, g.Cols, g.Rows)
		}
	}
	return nil
}

// config maps the scenario onto a grid configuration. The inactive
// orientation keeps a single lane so the configuration stays valid after
// an orientation switch.
func (s *scenario) config() grid.Config {
	cfg := grid.Config{
		Orientation:     grid.Vertical,
		VerticalLanes:   s.Lanes,
		HorizontalLanes: 1,
		CellSize:        s.CellSize,
	}
	if s.Orientation == "horizontal" {
		cfg.Orientation = grid.Horizontal
		cfg.VerticalLanes = 1
		cfg.HorizontalLanes = s.Lanes
	}
	return cfg
}

// count returns the total number of items across all groups.
func (s *scenario) count() int {
	total := 0
	for _, g := range s.Items {
		total += g.Count
	}
	return total
}

// spanSource builds a cached span source resolving each index through the
// item groups in order.
func (s *scenario) spanSource() *grid.Source {
	groups := s.Items
	return grid.NewSource(grid.WithCaching(), grid.WithSpanFunc(func(index int) grid.Span {
		for _, g := range groups {
			if index < g.Count {
				return grid.Span{Cols: g.Cols, Rows: g.Rows}
			}
			index -= g.Count
		}
		return grid.OneCell
	}))
}

// buildEngine assembles a pool-backed engine for the scenario.
func (s *scenario) buildEngine(hooks engine.Hooks) (*engine.Engine, *pool.Pool, error) {
	p := pool.New(s.count())
	opts := []engine.Option{
		engine.WithConfig(s.config()),
		engine.WithSpanSource(s.spanSource()),
		engine.WithStableOrder(),
	}
	if s.Lookahead > 0 {
		opts = append(opts, engine.WithLookahead(s.Lookahead))
	}
	if hooks != nil {
		opts = append(opts, engine.WithHooks(hooks))
	}
	eng, err := engine.New(p, opts...)
	if err != nil {
		return nil, nil, err
	}
	eng.SetViewport(s.Viewport.Width, s.Viewport.Height)
	return eng, p, nil
}
