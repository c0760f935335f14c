// Package export serializes computed grid layouts.
//
// A [Layout] is the stable document format for a completed layout pass:
// the grid configuration plus every item's placement in cell and pixel
// space. Documents carry both JSON and BSON tags: JSON for files and
// the HTTP packing service, BSON for the Mongo-backed [Archive].
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/spangrid/pkg/grid"
	"github.com/matzehuels/spangrid/pkg/grid/engine"
)

// FormatVersion identifies the layout document schema.
const FormatVersion = 1

// Box mirrors [grid.Rect] with stable serialization tags.
type Box struct {
	Left   int `json:"left" bson:"left"`
	Top    int `json:"top" bson:"top"`
	Right  int `json:"right" bson:"right"`
	Bottom int `json:"bottom" bson:"bottom"`
}

// boxOf converts a rect into its document form.
func boxOf(r grid.Rect) Box {
	return Box{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

// Rect converts the document form back into a rect.
func (b Box) Rect() grid.Rect {
	return grid.Rect{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
}

// Placement is one item's computed position.
type Placement struct {
	Index int `json:"index" bson:"index"`
	Cols  int `json:"cols" bson:"cols"`
	Rows  int `json:"rows" bson:"rows"`
	Cell  Box `json:"cell" bson:"cell"`
	Pixel Box `json:"pixel" bson:"pixel"`
}

// Layout is the serialized result of a full layout pass.
type Layout struct {
	Version     int         `json:"version" bson:"version"`
	Orientation string      `json:"orientation" bson:"orientation"`
	Lanes       int         `json:"lanes" bson:"lanes"`
	CellSize    int         `json:"cell_size" bson:"cell_size"`
	ContentEnd  int         `json:"content_end" bson:"content_end"`
	Items       []Placement `json:"items" bson:"items"`
}

// Snapshot captures the placements of e's last full layout pass.
// Cell sizes are recovered from the pixel frames, so the document is
// self-contained even when the engine derives them from the viewport.
func Snapshot(e *engine.Engine) Layout {
	cfg := e.Config()
	l := Layout{
		Version:     FormatVersion,
		Orientation: cfg.Orientation.String(),
		Lanes:       cfg.Lanes(),
		ContentEnd:  e.ContentEnd(),
	}
	n := e.ItemCount()
	for i := 0; i < n; i++ {
		cell, pixel, ok := e.Placement(i)
		if !ok {
			continue
		}
		if l.CellSize == 0 && cell.Width() > 0 {
			l.CellSize = pixel.Width() / cell.Width()
		}
		l.Items = append(l.Items, Placement{
			Index: i,
			Cols:  cell.Width(),
			Rows:  cell.Height(),
			Cell:  boxOf(cell),
			Pixel: boxOf(pixel),
		})
	}
	return l
}

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout and validates the
// document shape.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Version == 0 {
		l.Version = FormatVersion
	}
	if l.Version != FormatVersion {
		return Layout{}, fmt.Errorf("unsupported layout version %d", l.Version)
	}
	if l.Lanes < 1 {
		return Layout{}, fmt.Errorf("layout must have at least one lane")
	}
	return l, nil
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
