package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/patchbay/internal/graph"
	"github.com/vk/patchbay/internal/node"
	"github.com/vk/patchbay/internal/value"
)

// gradientGraph maps the x coordinate straight to a visual magnitude, so
// rendered rows are predictable.
func gradientGraph() *graph.Graph {
	g := graph.New()
	x := g.AddNode(&node.ContextInputSpec{Name: "x"}, value.DomainVisual)
	m := g.AddNode(&node.MathSpec{Op: node.OpMap, Params: []float64{0, 4, 0, 1000}}, value.DomainVisual)
	out := g.AddNode(&node.VisualOutSpec{}, value.DomainVisual)
	g.Connect(x, m)
	g.Connect(m, out)
	return g
}

func TestPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Plain(&buf, gradientGraph(), 5, 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0], lines[1])
	assert.Len(t, lines[0], 5)
	// x=0 maps to the lightest ramp cell, x=4 to the densest.
	assert.Equal(t, byte(' '), lines[0][0])
	assert.Equal(t, byte('@'), lines[0][4])
}

func TestFrameEmitsColorCells(t *testing.T) {
	g := graph.New()
	c := g.AddNode(&node.ConstantSpec{Value: 1}, value.DomainControl)
	col := g.AddNode(&node.ColorSpec{Palette: "fire", RangeMin: 0, RangeMax: 1000}, value.DomainVisual)
	out := g.AddNode(&node.VisualOutSpec{}, value.DomainVisual)
	g.Connect(c, col)
	g.Connect(col, out)

	var buf bytes.Buffer
	require.NoError(t, Frame(&buf, g, 2, 1))
	assert.Contains(t, buf.String(), "█")
}

func TestJSONFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, gradientGraph(), 3, 2))

	var frame JSONFrame
	require.NoError(t, json.Unmarshal(buf.Bytes(), &frame))
	assert.Equal(t, 3, frame.Width)
	assert.Equal(t, 2, frame.Height)
	require.Len(t, frame.Cells, 2)
	require.Len(t, frame.Cells[0], 3)
	assert.Equal(t, "visual", frame.Cells[0][0].Domain)
	assert.Equal(t, 250, frame.Cells[0][1].Magnitude)
}

func TestJSONColorCells(t *testing.T) {
	g := graph.New()
	c := g.AddNode(&node.ConstantSpec{Value: 0}, value.DomainControl)
	col := g.AddNode(&node.ColorSpec{Palette: "coolwarm", RangeMin: 0, RangeMax: 1000}, value.DomainVisual)
	out := g.AddNode(&node.VisualOutSpec{}, value.DomainVisual)
	g.Connect(c, col)
	g.Connect(col, out)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, g, 1, 1))

	var frame JSONFrame
	require.NoError(t, json.Unmarshal(buf.Bytes(), &frame))
	require.Len(t, frame.Cells[0][0].RGB, 3)
	assert.Equal(t, uint8(255), frame.Cells[0][0].RGB[2])
}

func TestHomeCursor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HomeCursor(&buf))
	assert.Equal(t, "\x1b[H", buf.String())
}
