package graph

// Context is the caller-supplied coordinate bundle one evaluation pass is
// computed against. It is a plain value: entry points copy it and
// override the fields they own. The Custom map is shared across copies by
// reference; hosts repopulate it between passes, never during one.
type Context struct {
	// Frame counting and wall-clock pacing for visual evaluation.
	Frame     int
	DeltaTime float64

	// Pixel coordinate and buffer dimensions.
	X, Y          int
	Width, Height int

	// Audio clock.
	SampleRate  int
	SampleIndex int
	Time        float64

	// Custom carries named external scalar inputs ("mouseX", "volume")
	// populated by the host before each evaluation call.
	Custom map[string]float64
}

// DefaultContext returns the context a fresh graph starts with: 60 fps
// pacing, CD-quality sample rate, and an 80x24 cell buffer.
func DefaultContext() Context {
	return Context{
		DeltaTime:  1.0 / 60.0,
		Width:      80,
		Height:     24,
		SampleRate: 44100,
		Custom:     make(map[string]float64),
	}
}

// CustomInput looks up a named custom scalar, returning 0 when absent.
func (c Context) CustomInput(name string) float64 {
	if c.Custom == nil {
		return 0
	}
	return c.Custom[name]
}
