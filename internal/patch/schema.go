package patch

import "github.com/hashicorp/hcl/v2"

// settingsBlock is the optional `patch` block holding buffer dimensions,
// the audio clock, and named custom context scalars.
type settingsBlock struct {
	Width      int                `hcl:"width,optional"`
	Height     int                `hcl:"height,optional"`
	SampleRate int                `hcl:"sample_rate,optional"`
	Frames     int                `hcl:"frames,optional"`
	Custom     map[string]float64 `hcl:"custom,optional"`
}

// nodeBlock is one `node "<kind>" "<name>"` block. The kind-specific
// attributes stay an opaque body; the kind's builder extracts them.
type nodeBlock struct {
	Kind string   `hcl:"kind,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// connectBlock wires the output of one named node into the next free
// input slot of another.
type connectBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// patchFile is the top-level structure of one .hcl patch file.
type patchFile struct {
	Settings *settingsBlock  `hcl:"patch,block"`
	Nodes    []*nodeBlock    `hcl:"node,block"`
	Connects []*connectBlock `hcl:"connect,block"`
}
