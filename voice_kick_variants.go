// voice_kick_variants.go - Alternate bass drums backed by the models package

package drumsynth

import (
	"fmt"

	"github.com/intuitionamiga/drumsynth/models"
)

const (
	KICK_AMP_DECAY_MIN     = 0.02
	KICK_AMP_DECAY_MAX     = 2.0
	KICK_AMP_DECAY_DEFAULT = 0.5
)

// BassDrumModel selects one of the alternate bass-drum implementations.
type BassDrumModel int

const (
	AnalogModel BassDrumModel = iota
	SyntheticModel
)

func (m BassDrumModel) String() string {
	switch m {
	case AnalogModel:
		return "analog"
	case SyntheticModel:
		return "synthetic"
	}
	return fmt.Sprintf("BassDrumModel(%d)", int(m))
}

// ParseBassDrumModel accepts the names returned by String.
func ParseBassDrumModel(name string) (BassDrumModel, error) {
	switch name {
	case "analog":
		return AnalogModel, nil
	case "synthetic":
		return SyntheticModel, nil
	}
	return 0, fmt.Errorf("unknown bass drum model %q", name)
}

// NewBassDrumModel builds and initialises the chosen model. Unknown values
// fall back to the analog model.
func NewBassDrumModel(m BassDrumModel, sampleRate float32) Voice {
	if m == SyntheticModel {
		return NewSyntheticBassDrum(sampleRate)
	}
	return NewAnalogBassDrum(sampleRate)
}

// AnalogBassDrum wraps the resonator kick with an amplitude envelope of its
// own, so the decay knob shortens the note even when the resonator would
// ring on.
type AnalogBassDrum struct {
	drum   models.AnalogBassDrum
	trig   trigFlag
	ampEnv DecayEnvelope
}

func NewAnalogBassDrum(sampleRate float32) *AnalogBassDrum {
	k := &AnalogBassDrum{}
	k.Init(sampleRate)
	return k
}

func (k *AnalogBassDrum) Init(sampleRate float32) {
	k.drum.Init(sampleRate)
	k.trig.Reset()
	k.ampEnv.Init(sampleRate)
	k.ampEnv.SetDecay(Map01(KICK_AMP_DECAY_DEFAULT, KICK_AMP_DECAY_MIN, KICK_AMP_DECAY_MAX))
}

func (k *AnalogBassDrum) Process(trigger bool) float32 {
	fired := k.trig.Consume(trigger)
	if fired {
		k.ampEnv.Trig(1)
	}
	k.ampEnv.Process()
	return k.drum.Process(fired) * k.ampEnv.Value()
}

func (k *AnalogBassDrum) Trig() { k.trig.Set() }

func (k *AnalogBassDrum) SetSustain(held bool) {
	k.drum.SetSustain(held)
	k.ampEnv.SetSustain(held)
}

func (k *AnalogBassDrum) SetAccent(accent float32) { k.drum.SetAccent(accent) }
func (k *AnalogBassDrum) SetFreq(freqHz float32)   { k.drum.SetFreq(freqHz) }
func (k *AnalogBassDrum) SetTone(tone float32)     { k.drum.SetTone(tone) }

// SetDecay sets both the resonator Q and the owned envelope, which spans
// 0.02 to 2 s across the knob.
func (k *AnalogBassDrum) SetDecay(decay float32) {
	decay = Clamp01(decay)
	k.drum.SetDecay(decay)
	k.ampEnv.SetDecay(Map01(decay, KICK_AMP_DECAY_MIN, KICK_AMP_DECAY_MAX))
}

func (k *AnalogBassDrum) SetAttackFmAmount(amount float32) { k.drum.SetAttackFmAmount(amount) }
func (k *AnalogBassDrum) SetSelfFmAmount(amount float32)   { k.drum.SetSelfFmAmount(amount) }

// SyntheticBassDrum exposes the FM kick, including its dirtiness and FM
// envelope controls.
type SyntheticBassDrum struct {
	drum models.SyntheticBassDrum
	trig trigFlag
}

func NewSyntheticBassDrum(sampleRate float32) *SyntheticBassDrum {
	k := &SyntheticBassDrum{}
	k.Init(sampleRate)
	return k
}

func (k *SyntheticBassDrum) Init(sampleRate float32) {
	k.drum.Init(sampleRate)
	k.drum.Seed(SEED_SYNTH_BD)
	k.trig.Reset()
}

func (k *SyntheticBassDrum) Process(trigger bool) float32 {
	return k.drum.Process(k.trig.Consume(trigger))
}

func (k *SyntheticBassDrum) Trig() { k.trig.Set() }

func (k *SyntheticBassDrum) Seed(seed uint32) { k.drum.Seed(seed) }

func (k *SyntheticBassDrum) SetSustain(held bool) { k.drum.SetSustain(held) }

func (k *SyntheticBassDrum) SetAccent(accent float32)       { k.drum.SetAccent(accent) }
func (k *SyntheticBassDrum) SetFreq(freqHz float32)         { k.drum.SetFreq(freqHz) }
func (k *SyntheticBassDrum) SetTone(tone float32)           { k.drum.SetTone(tone) }
func (k *SyntheticBassDrum) SetDecay(decay float32)         { k.drum.SetDecay(decay) }
func (k *SyntheticBassDrum) SetDirtiness(dirtiness float32) { k.drum.SetDirtiness(dirtiness) }

func (k *SyntheticBassDrum) SetFmEnvelopeAmount(amount float32) { k.drum.SetFmEnvelopeAmount(amount) }
func (k *SyntheticBassDrum) SetFmEnvelopeDecay(decay float32)   { k.drum.SetFmEnvelopeDecay(decay) }
