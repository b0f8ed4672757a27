// Package render draws evaluated frames: ANSI truecolor cells for a
// terminal, or a JSON frame dump for piping into other tools. It is pure
// host glue and only ever calls the graph's per-pixel entry point.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/vk/patchbay/internal/graph"
	"github.com/vk/patchbay/internal/value"
)

// magnitude values render through a density ramp when no color is
// available.
const ramp = " .:-=+*#%@"

// Frame renders one full frame of the graph to w as ANSI truecolor
// cells, one evaluation per cell.
func Frame(w io.Writer, g *graph.Graph, width, height int) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := g.EvaluateForPixel(x, y)
			if _, err := bw.WriteString(cell(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// cell formats one evaluated value as a single terminal cell.
func cell(v value.Value) string {
	if v.Domain == value.DomainVisual && v.IsColor {
		return color.RGB(v.R, v.G, v.B).Sprint("█")
	}
	m := v.AsMagnitude()
	if m < 0 {
		m = 0
	}
	if m > 1000 {
		m = 1000
	}
	idx := m * (len(ramp) - 1) / 1000
	return string(ramp[idx])
}

// Plain renders a frame without ANSI escapes, magnitude ramp only.
// Snapshot tests and dumb terminals use it.
func Plain(w io.Writer, g *graph.Graph, width, height int) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := g.EvaluateForPixel(x, y)
			m := v.AsMagnitude()
			if m < 0 {
				m = 0
			}
			if m > 1000 {
				m = 1000
			}
			if err := bw.WriteByte(ramp[m*(len(ramp)-1)/1000]); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// HomeCursor emits the escape that repositions the cursor for in-place
// animation between frames.
func HomeCursor(w io.Writer) error {
	_, err := fmt.Fprint(w, "\x1b[H")
	return err
}
