// render.go - Offline rendering and WAV export

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/intuitionamiga/drumsynth"
)

const (
	WAV_BIT_DEPTH   = 16
	WAV_PCM_FORMAT  = 1
	WAV_INT16_SCALE = 32767
)

// paramSetting is one "param=value" pair from the command line or a script.
type paramSetting struct {
	param drumsynth.Param
	value float32
}

// paramList collects repeated -set flags.
type paramList []paramSetting

func (l *paramList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = fmt.Sprintf("%v=%g", s.param, s.value)
	}
	return strings.Join(parts, ",")
}

func (l *paramList) Set(arg string) error {
	name, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("expected param=value, got %q", arg)
	}
	p, err := drumsynth.ParseParam(name)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		return fmt.Errorf("bad value for %v: %w", p, err)
	}
	*l = append(*l, paramSetting{param: p, value: float32(v)})
	return nil
}

// renderHit triggers one voice of a fresh kit and returns the mono result.
// The voice runs at full level and unity master gain.
func renderHit(kind drumsynth.VoiceKind, sampleRate int, seconds float64, settings paramList) ([]float32, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if seconds <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %g", seconds)
	}

	kit := drumsynth.NewKit(float32(sampleRate))
	kit.SetMaster(1)
	if err := kit.Set(kind, drumsynth.PARAM_LEVEL, 1); err != nil {
		return nil, err
	}
	for _, s := range settings {
		if err := kit.Set(kind, s.param, s.value); err != nil {
			return nil, err
		}
	}
	if err := kit.Trig(kind); err != nil {
		return nil, err
	}

	buf := make([]float32, int(seconds*float64(sampleRate)))
	kit.Render(buf)
	return buf, nil
}

// writeWAV stores mono float samples as 16-bit PCM, clipping to [-1, 1].
func writeWAV(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, sampleRate, WAV_BIT_DEPTH, 1, WAV_PCM_FORMAT)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: WAV_BIT_DEPTH,
	}
	for i, s := range samples {
		buf.Data[i] = floatToPCM16(s)
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalise %s: %w", path, err)
	}
	return f.Close()
}

func floatToPCM16(s float32) int {
	switch {
	case s != s:
		return 0
	case s > 1:
		s = 1
	case s < -1:
		s = -1
	}
	return int(s * WAV_INT16_SCALE)
}
