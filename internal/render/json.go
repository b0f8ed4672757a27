package render

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/vk/patchbay/internal/graph"
	"github.com/vk/patchbay/internal/value"
)

// Cell is the JSON shape of one evaluated pixel.
type Cell struct {
	Domain    string  `json:"domain"`
	Magnitude int     `json:"magnitude,omitempty"`
	RGB       []uint8 `json:"rgb,omitempty"`
	Scalar    float64 `json:"scalar,omitempty"`
	Sample    float32 `json:"sample,omitempty"`
}

// JSONFrame is the JSON shape of one rendered frame.
type JSONFrame struct {
	Frame  int      `json:"frame"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  [][]Cell `json:"cells"`
}

// JSON evaluates a full frame and encodes it to w, one row per cell
// slice. Hosts pipe this into external visualizers.
func JSON(w io.Writer, g *graph.Graph, width, height int) error {
	frame := JSONFrame{
		Frame:  g.Context().Frame,
		Width:  width,
		Height: height,
		Cells:  make([][]Cell, height),
	}
	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		for x := 0; x < width; x++ {
			row[x] = toCell(g.EvaluateForPixel(x, y))
		}
		frame.Cells[y] = row
	}
	return json.NewEncoder(w).Encode(frame)
}

func toCell(v value.Value) Cell {
	c := Cell{Domain: v.Domain.String()}
	switch v.Domain {
	case value.DomainAudio:
		c.Sample = v.Sample
	case value.DomainVisual:
		if v.IsColor {
			c.RGB = []uint8{v.R, v.G, v.B}
		} else {
			c.Magnitude = v.Magnitude
		}
	default:
		c.Scalar = v.Scalar
	}
	return c
}
