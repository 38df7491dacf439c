// voice_tom.go - Pitched tom

package drumsynth

import "github.com/chewxy/math32"

const (
	TOM_MIN_FREQ        = 20.0
	TOM_PITCH_RANGE     = 1.3
	TOM_DECAY_MIN       = 0.08
	TOM_DECAY_MAX       = 1.4
	TOM_PITCH_DECAY_MIN = 0.01
	TOM_PITCH_DECAY_MAX = 0.12
)

// Tom is the bass drum without click or drive: a pitch-swept sine under an
// amplitude envelope. Tone sets the sweep depth.
type Tom struct {
	sampleRate float32
	osc        phasor
	trig       trigFlag

	freq        param
	accent      param
	decay       param
	pitchAmount param
	pitchDecay  param

	ampEnv   DecayEnvelope
	pitchEnv DecayEnvelope
}

func NewTom(sampleRate float32) *Tom {
	t := &Tom{}
	t.Init(sampleRate)
	return t
}

func (t *Tom) Init(sampleRate float32) {
	t.sampleRate = sampleRate
	t.osc.Reset()
	t.trig.Reset()

	t.ampEnv.Init(sampleRate)
	t.pitchEnv.Init(sampleRate)

	t.SetFreq(140)
	t.SetDecay(0.5)
	t.SetTone(0.5)
	t.SetPitchDecay(0.3)
	t.SetAccent(0.8)
}

func (t *Tom) Process(trigger bool) float32 {
	if t.trig.Consume(trigger) {
		t.ampEnv.Trig(accentGain(t.accent.Load()))
		t.pitchEnv.Trig(1)
	}

	amp := t.ampEnv.Process()
	pitchEnv := t.pitchEnv.Process()

	freq := t.freq.Load() * (1 + t.pitchAmount.Load()*pitchEnv)
	phase := t.osc.Advance(freq / t.sampleRate)

	return math32.Sin(TWO_PI*phase) * amp
}

func (t *Tom) Trig() { t.trig.Set() }

func (t *Tom) SetSustain(held bool) {
	t.ampEnv.SetSustain(held)
	t.pitchEnv.SetSustain(held)
}

func (t *Tom) SetAccent(accent float32) { t.accent.Store(Clamp01(accent)) }

func (t *Tom) SetFreq(freqHz float32) { t.freq.Store(maxf(freqHz, TOM_MIN_FREQ)) }

// SetTone sets the pitch sweep depth.
func (t *Tom) SetTone(tone float32) { t.pitchAmount.Store(Clamp01(tone) * TOM_PITCH_RANGE) }

func (t *Tom) SetDecay(decay float32) {
	decay = Clamp01(decay)
	t.decay.Store(decay)
	t.ampEnv.SetDecay(Map01(decay, TOM_DECAY_MIN, TOM_DECAY_MAX))
}

func (t *Tom) SetPitchDecay(pitchDecay float32) {
	pitchDecay = Clamp01(pitchDecay)
	t.pitchDecay.Store(pitchDecay)
	t.pitchEnv.SetDecay(Map01(pitchDecay, TOM_PITCH_DECAY_MIN, TOM_PITCH_DECAY_MAX))
}
