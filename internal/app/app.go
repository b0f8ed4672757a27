// Package app wires the patch loader, the graph engine, and the
// renderers into a runnable application with an isolated logger.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/patchbay/internal/audio"
	"github.com/vk/patchbay/internal/ctxlog"
	"github.com/vk/patchbay/internal/patch"
	"github.com/vk/patchbay/internal/render"
)

// App encapsulates the application's dependencies and lifecycle. Frames
// go to outW; logs go to errW so piped frame output stays clean.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
}

// NewApp constructs an App with its own logger instance.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		errW:   errW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, errW),
	}
}

// Run loads the patch and renders it: audio when a WAV path is set,
// visual frames otherwise.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	p, err := patch.Load(ctx, cfg.PatchPath)
	if err != nil {
		return fmt.Errorf("loading patch: %w", err)
	}
	a.logger.Info("patch loaded",
		"nodes", len(p.Graph.Nodes()),
		"outputs", len(p.Graph.OutputNodes()))

	if cfg.WavPath != "" {
		return a.renderAudio(p, cfg)
	}
	return a.renderFrames(p, cfg)
}

func (a *App) renderAudio(p *patch.Patch, cfg *Config) error {
	seconds := cfg.WavSeconds
	if seconds <= 0 {
		seconds = 1
	}
	n := int(seconds * float64(p.SampleRate))
	a.logger.Info("rendering audio", "samples", n, "sample_rate", p.SampleRate)

	samples := audio.RenderSamples(p.Graph, n)

	f, err := os.Create(cfg.WavPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.WavPath, err)
	}
	defer f.Close()

	if err := audio.WriteWAV(f, samples, p.SampleRate); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.WavPath, err)
	}
	a.logger.Info("audio written", "path", cfg.WavPath)
	return nil
}

func (a *App) renderFrames(p *patch.Patch, cfg *Config) error {
	width, height := p.Width, p.Height
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}
	frames := p.Frames
	if cfg.Frames > 0 {
		frames = cfg.Frames
	}

	gctx := p.Graph.Context()
	gctx.Width, gctx.Height = width, height
	p.Graph.SetContext(gctx)

	a.logger.Info("rendering frames", "frames", frames, "width", width, "height", height)

	for frame := 0; frame < frames; frame++ {
		gctx = p.Graph.Context()
		gctx.Frame = frame
		gctx.Time = float64(frame) * gctx.DeltaTime
		p.Graph.SetContext(gctx)

		if frame > 0 && cfg.Output == "ansi" {
			if err := render.HomeCursor(a.outW); err != nil {
				return err
			}
		}

		var err error
		switch cfg.Output {
		case "json":
			err = render.JSON(a.outW, p.Graph, width, height)
		case "plain":
			err = render.Plain(a.outW, p.Graph, width, height)
		default:
			err = render.Frame(a.outW, p.Graph, width, height)
		}
		if err != nil {
			return fmt.Errorf("rendering frame %d: %w", frame, err)
		}
	}
	return nil
}
