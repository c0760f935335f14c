package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/spangrid/pkg/grid"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
orientation = "vertical"
lanes = 3
cell_size = 100

[viewport]
width = 300
height = 400

[[items]]
count = 10
cols = 1
rows = 1

[[items]]
count = 2
cols = 2
rows = 2
`)

	s, err := loadScenario(path)
	if err != nil {
		t.Fatalf("loadScenario: %v", err)
	}
	if s.Lanes != 3 || s.CellSize != 100 {
		t.Errorf("grid = %d lanes, %dpx cells; want 3, 100", s.Lanes, s.CellSize)
	}
	if got := s.count(); got != 12 {
		t.Errorf("count() = %d, want 12", got)
	}
	if s.Viewport.Width != 300 || s.Viewport.Height != 400 {
		t.Errorf("viewport = %dx%d, want 300x400", s.Viewport.Width, s.Viewport.Height)
	}
}

func TestLoadScenarioUnknownKey(t *testing.T) {
	path := writeScenario(t, `
lanes = 3
columns = 3

[[items]]
count = 1
cols = 1
rows = 1
`)

	_, err := loadScenario(path)
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("loadScenario error = %v, want unknown key", err)
	}
}

func TestScenarioValidate(t *testing.T) {
	valid := func() scenario {
		return scenario{
			Lanes: 2,
			Items: []itemGroup{{Count: 1, Cols: 1, Rows: 1}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*scenario)
		wantErr string
	}{
		{name: "valid", mutate: func(*scenario) {}},
		{name: "bad orientation", mutate: func(s *scenario) { s.Orientation = "diagonal" }, wantErr: "orientation"},
		{name: "zero lanes", mutate: func(s *scenario) { s.Lanes = 0 }, wantErr: "lanes"},
		{name: "negative cell size", mutate: func(s *scenario) { s.CellSize = -1 }, wantErr: "cell_size"},
		{name: "no items", mutate: func(s *scenario) { s.Items = nil }, wantErr: "items group"},
		{name: "zero count group", mutate: func(s *scenario) { s.Items[0].Count = 0 }, wantErr: "count"},
		{name: "zero span", mutate: func(s *scenario) { s.Items[0].Cols = 0 }, wantErr: "spans"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := s.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestScenarioConfigOrientation(t *testing.T) {
	s := scenario{Orientation: "horizontal", Lanes: 4, CellSize: 50}
	cfg := s.config()
	if cfg.Orientation != grid.Horizontal {
		t.Errorf("Orientation = %v, want Horizontal", cfg.Orientation)
	}
	if cfg.HorizontalLanes != 4 || cfg.VerticalLanes != 1 {
		t.Errorf("lanes = (v %d, h %d), want (1, 4)", cfg.VerticalLanes, cfg.HorizontalLanes)
	}
	if got := cfg.Lanes(); got != 4 {
		t.Errorf("Lanes() = %d, want 4", got)
	}
}

func TestScenarioSpanSource(t *testing.T) {
	s := scenario{
		Lanes: 3,
		Items: []itemGroup{
			{Count: 2, Cols: 2, Rows: 2},
			{Count: 3, Cols: 1, Rows: 1},
		},
	}
	src := s.spanSource()

	tests := []struct {
		index int
		want  grid.Span
	}{
		{index: 0, want: grid.Span{Cols: 2, Rows: 2}},
		{index: 1, want: grid.Span{Cols: 2, Rows: 2}},
		{index: 2, want: grid.OneCell},
		{index: 4, want: grid.OneCell},
		{index: 99, want: grid.OneCell}, // past all groups
	}
	for _, tt := range tests {
		if got := src.SpanAt(tt.index); got != tt.want {
			t.Errorf("SpanAt(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestDefaultScenarioLaysOut(t *testing.T) {
	s := defaultScenario()
	if err := s.validate(); err != nil {
		t.Fatalf("default scenario invalid: %v", err)
	}

	eng, p, err := s.buildEngine(nil)
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}
	if err := eng.FullLayout(); err != nil {
		t.Fatalf("FullLayout: %v", err)
	}
	if got := eng.ItemCount(); got != s.count() {
		t.Errorf("ItemCount = %d, want %d", got, s.count())
	}
	if p.Live() == 0 {
		t.Error("no items materialized after layout")
	}
	if eng.ContentEnd() == 0 {
		t.Error("content end is zero after layout")
	}
}
