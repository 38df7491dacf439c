// script.go - Lua step-sequencer scripts

package main

import (
	"fmt"
	"math"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/intuitionamiga/drumsynth"
)

const (
	SEQ_DEFAULT_BPM    = 120
	SEQ_DEFAULT_STEPS  = 16
	SEQ_BEATS_PER_BAR  = 4
	SEQ_DEFAULT_ACCENT = 0.6
	SEQ_MIN_BPM        = 20
	SEQ_MAX_BPM        = 400
	SEQ_MAX_STEPS      = 64
)

// Pattern step characters.
const (
	STEP_REST   = '.'
	STEP_HIT    = 'x'
	STEP_ACCENT = 'X'
)

// Hit is one scheduled trigger.
type Hit struct {
	Sample int
	Voice  drumsynth.VoiceKind
	Accent bool
}

type track struct {
	voice drumsynth.VoiceKind
	steps string
}

type voiceSetting struct {
	voice drumsynth.VoiceKind
	paramSetting
}

type sustainSetting struct {
	voice drumsynth.VoiceKind
	held  bool
}

// Sequence is the state a script builds up. Patterns loop over their own
// length, so a 3-step pattern against 16 steps per bar gives a polyrhythm.
type Sequence struct {
	BPM      float64
	Steps    int
	tracks   []track
	settings []voiceSetting
	sustains []sustainSetting
	accents  map[drumsynth.VoiceKind]float32
}

func newSequence() *Sequence {
	return &Sequence{
		BPM:     SEQ_DEFAULT_BPM,
		Steps:   SEQ_DEFAULT_STEPS,
		accents: make(map[drumsynth.VoiceKind]float32),
	}
}

// LoadScript runs a Lua file and returns the sequence it describes.
func LoadScript(path string) (*Sequence, error) {
	return evalScript(func(L *lua.LState) error { return L.DoFile(path) })
}

// ParseScript runs Lua source held in memory.
func ParseScript(src string) (*Sequence, error) {
	return evalScript(func(L *lua.LState) error { return L.DoString(src) })
}

func evalScript(exec func(*lua.LState) error) (*Sequence, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	for _, pair := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.TabLibName, lua.OpenTable},
	} {
		L.Push(L.NewFunction(pair.fn))
		L.Push(lua.LString(pair.name))
		L.Call(1, 0)
	}

	seq := newSequence()
	seq.register(L)
	if err := exec(L); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return seq, nil
}

func (s *Sequence) register(L *lua.LState) {
	L.SetGlobal("bpm", L.NewFunction(s.luaBPM))
	L.SetGlobal("steps", L.NewFunction(s.luaSteps))
	L.SetGlobal("pattern", L.NewFunction(s.luaPattern))
	L.SetGlobal("set", L.NewFunction(s.luaSet))
	L.SetGlobal("sustain", L.NewFunction(s.luaSustain))
}

// SetBPM changes the tempo, rejecting values outside [SEQ_MIN_BPM, SEQ_MAX_BPM].
func (s *Sequence) SetBPM(v float64) error {
	if !(v >= SEQ_MIN_BPM && v <= SEQ_MAX_BPM) {
		return fmt.Errorf("bpm must be in [%d, %d], got %g", SEQ_MIN_BPM, SEQ_MAX_BPM, v)
	}
	s.BPM = v
	return nil
}

func (s *Sequence) luaBPM(L *lua.LState) int {
	if err := s.SetBPM(float64(L.CheckNumber(1))); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

func (s *Sequence) luaSteps(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 1 || n > SEQ_MAX_STEPS {
		L.ArgError(1, fmt.Sprintf("steps must be in [1, %d]", SEQ_MAX_STEPS))
	}
	s.Steps = n
	return 0
}

func (s *Sequence) luaPattern(L *lua.LState) int {
	kind := checkVoice(L, 1)
	steps := L.CheckString(2)
	if steps == "" {
		L.ArgError(2, "empty pattern")
	}
	for i, c := range steps {
		if c != STEP_REST && c != STEP_HIT && c != STEP_ACCENT {
			L.ArgError(2, fmt.Sprintf("bad step %q at %d", c, i+1))
		}
	}
	s.tracks = append(s.tracks, track{voice: kind, steps: steps})
	return 0
}

func (s *Sequence) luaSet(L *lua.LState) int {
	kind := checkVoice(L, 1)
	p, err := drumsynth.ParseParam(L.CheckString(2))
	if err != nil {
		L.ArgError(2, err.Error())
	}
	v := float32(L.CheckNumber(3))
	if p == drumsynth.PARAM_ACCENT {
		s.accents[kind] = v
		return 0
	}
	s.settings = append(s.settings, voiceSetting{voice: kind, paramSetting: paramSetting{param: p, value: v}})
	return 0
}

func (s *Sequence) luaSustain(L *lua.LState) int {
	kind := checkVoice(L, 1)
	s.sustains = append(s.sustains, sustainSetting{voice: kind, held: L.OptBool(2, true)})
	return 0
}

func checkVoice(L *lua.LState, n int) drumsynth.VoiceKind {
	kind, err := drumsynth.ParseVoiceKind(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return kind
}

// StepSamples is the length of one step at the given sample rate.
func (s *Sequence) StepSamples(sampleRate int) float64 {
	stepsPerBeat := float64(s.Steps) / SEQ_BEATS_PER_BAR
	return float64(sampleRate) * 60 / (s.BPM * stepsPerBeat)
}

// Length returns the number of samples covered by the given number of bars.
func (s *Sequence) Length(sampleRate, bars int) int {
	return int(math.Round(float64(bars*s.Steps) * s.StepSamples(sampleRate)))
}

// Hits lists every trigger over the given number of bars in time order.
func (s *Sequence) Hits(sampleRate, bars int) []Hit {
	step := s.StepSamples(sampleRate)
	total := bars * s.Steps
	var hits []Hit
	for i := range total {
		at := int(math.Round(float64(i) * step))
		for _, tr := range s.tracks {
			switch tr.steps[i%len(tr.steps)] {
			case STEP_HIT:
				hits = append(hits, Hit{Sample: at, Voice: tr.voice})
			case STEP_ACCENT:
				hits = append(hits, Hit{Sample: at, Voice: tr.voice, Accent: true})
			}
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Sample < hits[b].Sample })
	return hits
}

// Configure applies the script's parameter and sustain settings to a kit.
func (s *Sequence) Configure(kit *drumsynth.Kit) error {
	for _, vs := range s.settings {
		if err := kit.Set(vs.voice, vs.param, vs.value); err != nil {
			return fmt.Errorf("set %v %v: %w", vs.voice, vs.param, err)
		}
	}
	for _, ss := range s.sustains {
		if err := kit.SetSustain(ss.voice, ss.held); err != nil {
			return fmt.Errorf("sustain %v: %w", ss.voice, err)
		}
	}
	return nil
}

func (s *Sequence) accent(kind drumsynth.VoiceKind) float32 {
	if a, ok := s.accents[kind]; ok {
		return a
	}
	return SEQ_DEFAULT_ACCENT
}

// Render plays the sequence through kit for the given number of bars plus a
// tail so the last hits can ring out.
func (s *Sequence) Render(kit *drumsynth.Kit, bars int, tail float64) ([]float32, error) {
	if bars < 1 {
		return nil, fmt.Errorf("bars must be at least 1, got %d", bars)
	}
	if err := s.Configure(kit); err != nil {
		return nil, err
	}

	rate := int(kit.SampleRate())
	out := make([]float32, s.Length(rate, bars)+int(tail*float64(rate)))
	hits := s.Hits(rate, bars)

	pos := 0
	for _, h := range hits {
		if h.Sample > pos {
			kit.Render(out[pos:h.Sample])
			pos = h.Sample
		}
		a := s.accent(h.Voice)
		if h.Accent {
			a = 1
		}
		if err := kit.Set(h.Voice, drumsynth.PARAM_ACCENT, a); err != nil {
			return nil, err
		}
		if err := kit.Trig(h.Voice); err != nil {
			return nil, err
		}
	}
	kit.Render(out[pos:])
	return out, nil
}
