package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// PatchPath names a .hcl patch file or a directory of them.
	PatchPath string

	// Output selects the frame format: "ansi", "plain", or "json".
	Output string

	// Frames overrides the patch's frame count when positive.
	Frames int

	// Width and Height override the patch's buffer dimensions when
	// positive.
	Width  int
	Height int

	// WavPath, when set, renders WavSeconds of audio to a WAV file
	// instead of visual frames.
	WavPath    string
	WavSeconds float64

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PatchPath == "" {
		return nil, errors.New("PatchPath is a required configuration field and cannot be empty")
	}
	switch cfg.Output {
	case "", "ansi", "plain", "json":
	default:
		return nil, errors.New("Output must be one of 'ansi', 'plain', or 'json'")
	}
	return &cfg, nil
}
