// Package audio pumps the graph's per-sample entry point into PCM
// buffers and writes them out as WAV. Like render, it is host glue: the
// engine itself never touches a device or a file.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vk/patchbay/internal/graph"
)

// RenderSamples evaluates n consecutive audio samples starting at sample
// index 0. The graph's stored context supplies the sample rate.
func RenderSamples(g *graph.Graph, n int) []float32 {
	sr := g.Context().SampleRate
	if sr <= 0 {
		sr = 44100
	}
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		samples[i] = g.EvaluateForAudioSample(i, float64(i)/float64(sr))
	}
	return samples
}

// WriteWAV encodes samples as a 16-bit mono PCM RIFF/WAVE stream.
func WriteWAV(w io.Writer, samples []float32, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	dataLen := uint32(len(samples) * 2)
	const headerLen = 36

	var header [44]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], headerLen+dataLen)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	// fmt chunk: 16-byte PCM, mono, 16 bits per sample.
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1)
	binary.LittleEndian.PutUint16(header[22:24], 1)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)*2)
	binary.LittleEndian.PutUint16(header[32:34], 2)
	binary.LittleEndian.PutUint16(header[34:36], 16)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataLen)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(clampSample(s)))
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("writing WAV data: %w", err)
	}
	return nil
}

// clampSample converts a [-1, 1] float sample to int16 full scale,
// clipping anything outside the range.
func clampSample(s float32) int16 {
	v := s * 32767
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
