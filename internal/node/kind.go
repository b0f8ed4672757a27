package node

// Kind identifies the computation a node performs. The set is closed;
// reserved kinds exist in the enum but evaluate to domain-default zeros.
type Kind int

const (
	// Source kinds: zero inputs.
	KindConstant Kind = iota
	KindContextInput
	KindOscillator
	KindNoiseSource

	// Transform kinds: one or more inputs.
	KindMath
	KindWave
	KindPolar
	KindColor
	KindEasing
	KindMix

	// Output kinds: one input, zero outputs, terminal.
	KindAudioOut
	KindVisualOut
	KindValueOut

	// Reserved kinds: present in the type, pass-through only.
	KindFilter
	KindDelay
	KindSplit
	KindAnalyzer
	KindEnvelope
	KindAudioInput
)

var kindNames = map[Kind]string{
	KindConstant:     "constant",
	KindContextInput: "context_input",
	KindOscillator:   "oscillator",
	KindNoiseSource:  "noise",
	KindMath:         "math",
	KindWave:         "wave",
	KindPolar:        "polar",
	KindColor:        "color",
	KindEasing:       "easing",
	KindMix:          "mix",
	KindAudioOut:     "audio_out",
	KindVisualOut:    "visual_out",
	KindValueOut:     "value_out",
	KindFilter:       "filter",
	KindDelay:        "delay",
	KindSplit:        "split",
	KindAnalyzer:     "analyzer",
	KindEnvelope:     "envelope",
	KindAudioInput:   "audio_input",
}

// String returns the snake_case kind name used by patch files and logs.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsOutput reports whether the kind is a terminal output kind. Nodes of
// these kinds are tracked in the graph's output list.
func (k Kind) IsOutput() bool {
	return k == KindAudioOut || k == KindVisualOut || k == KindValueOut
}

// IsReserved reports whether the kind is declared but unimplemented.
func (k Kind) IsReserved() bool {
	return k >= KindFilter && k <= KindAudioInput
}
