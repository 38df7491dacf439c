// synthetic_bassdrum.go - FM / phase-distortion kick model

package models

import (
	"sync/atomic"

	"github.com/chewxy/math32"
)

const (
	SYNTH_MIN_FREQ          = 5.0
	SYNTH_MAX_F             = 0.5
	SYNTH_FM_DECAY_SECONDS  = 0.008
	SYNTH_BODY_SECONDS      = 0.02
	SYNTH_BODY_SPAN         = 60.0 // Semitones of body length across the decay knob
	SYNTH_TRANSIENT_SECONDS = 0.005
	SYNTH_FM_PULSE_SECONDS  = 0.0013
	SYNTH_FM_DEPTH          = 3.5
	SYNTH_CLICK_CUTOFF      = 5000.0
	SYNTH_DRIVE_RANGE       = 4.0
	SYNTH_PHASE_NOISE       = 0.1
)

// SyntheticBassDrum is a digital kick: a sine whose pitch is thrown up by a
// fast FM envelope at the attack, a band-passed noise click whose level
// follows tone, and a dirtiness control that jitters the phase and drives the
// body into a tanh shaper. Dirtiness fades out for higher base frequencies.
type SyntheticBassDrum struct {
	sampleRate float32

	transientCoeff float32
	fmPulseSamples int

	trig    atomic.Bool
	sustain atomic.Bool

	accent    knob
	f0        knob // Normalized to the sample rate
	tone      knob
	decay     knob
	dirtiness knob
	fmAmount  knob
	fmDecay   knob

	bodyCoeff knob
	fmCoeff   knob

	phase        float32
	fm           float32
	fmLP         float32
	bodyEnv      float32
	transientEnv float32
	fmPulse      int
	phaseNoise   float32
	clickLP      float32
	clickHP      float32

	click svf
	noise rng
}

func NewSyntheticBassDrum(sampleRate float32) *SyntheticBassDrum {
	d := &SyntheticBassDrum{}
	d.Init(sampleRate)
	return d
}

func (d *SyntheticBassDrum) Init(sampleRate float32) {
	d.sampleRate = sampleRate
	d.transientCoeff = 1 - 1/(SYNTH_TRANSIENT_SECONDS*sampleRate)
	d.fmPulseSamples = int(SYNTH_FM_PULSE_SECONDS * sampleRate)

	d.trig.Store(false)
	d.sustain.Store(false)

	d.phase = 0
	d.fm = 0
	d.fmLP = 0
	d.bodyEnv = 0
	d.transientEnv = 0
	d.fmPulse = 0
	d.phaseNoise = 0
	d.clickLP = 0
	d.clickHP = 0

	d.click.Reset()
	d.click.SetFQ(SYNTH_CLICK_CUTOFF/sampleRate, 2)
	d.noise.Seed(1)

	d.SetAccent(0.1)
	d.SetFreq(50)
	d.SetTone(0.1)
	d.SetDecay(0.01)
	d.SetDirtiness(0.3)
	d.SetFmEnvelopeAmount(0.6)
	d.SetFmEnvelopeDecay(0.3)
}

func (d *SyntheticBassDrum) Process(trigger bool) float32 {
	accent := d.accent.Load()
	if d.trig.Swap(false) || trigger {
		d.fm = 1
		d.bodyEnv = 0.3 + 0.7*accent
		d.transientEnv = d.bodyEnv
		d.fmPulse = d.fmPulseSamples
	}

	f0 := d.f0.Load()
	tone := d.tone.Load()
	dirtiness := d.dirtiness.Load() * math32.Max(1-8*f0, 0)

	if d.sustain.Load() {
		d.fm = 0
	} else {
		d.fm *= d.fmCoeff.Load()
		d.bodyEnv *= d.bodyCoeff.Load()
	}
	d.transientEnv *= d.transientCoeff
	onePole(&d.fmLP, d.fm, 0.3)

	f := clamp(f0*(1+d.fmAmount.Load()*SYNTH_FM_DEPTH*d.fmLP), 0, SYNTH_MAX_F)
	d.phase += f
	d.phase -= float32(int64(d.phase))

	onePole(&d.phaseNoise, d.noise.Float()-0.5, 0.002)
	jitter := d.phaseNoise * dirtiness * SYNTH_PHASE_NOISE

	body := sinPhase(d.phase + jitter)
	if dirtiness > 0 {
		drive := 1 + dirtiness*SYNTH_DRIVE_RANGE
		body = fastTanh(body*drive) / fastTanh(drive)
	}
	body *= d.bodyEnv

	// Click: noise through a slew, a DC-removing pole and a band-pass
	var excite float32
	if d.fmPulse > 0 {
		d.fmPulse--
		excite = d.noise.Float()*2 - 1
	}
	onePole(&d.clickLP, excite, 0.5)
	onePole(&d.clickHP, d.clickLP, 0.04)
	click, _ := d.click.Process(d.clickLP - d.clickHP)
	click *= d.transientEnv * tone * 4

	return body*(1-0.3*tone) + click
}

func (d *SyntheticBassDrum) Trig() { d.trig.Store(true) }

func (d *SyntheticBassDrum) Seed(seed uint32) { d.noise.Seed(seed) }

func (d *SyntheticBassDrum) SetSustain(held bool) { d.sustain.Store(held) }

func (d *SyntheticBassDrum) SetAccent(accent float32) { d.accent.Store(clamp(accent, 0, 1)) }

func (d *SyntheticBassDrum) SetFreq(freqHz float32) {
	d.f0.Store(clamp(freqHz, SYNTH_MIN_FREQ, d.sampleRate/2) / d.sampleRate)
}

func (d *SyntheticBassDrum) SetTone(tone float32) { d.tone.Store(clamp(tone, 0, 1)) }

// SetDecay sets the body length; the knob is squared before mapping so the
// short end has more resolution.
func (d *SyntheticBassDrum) SetDecay(decay float32) {
	decay = clamp(decay, 0, 1)
	d.decay.Store(decay)
	decay *= decay
	d.bodyCoeff.Store(1 - 1/(SYNTH_BODY_SECONDS*d.sampleRate)*semitonesToRatio(-decay*SYNTH_BODY_SPAN))
}

func (d *SyntheticBassDrum) SetDirtiness(dirtiness float32) {
	d.dirtiness.Store(clamp(dirtiness, 0, 1))
}

func (d *SyntheticBassDrum) SetFmEnvelopeAmount(amount float32) {
	d.fmAmount.Store(clamp(amount, 0, 1))
}

func (d *SyntheticBassDrum) SetFmEnvelopeDecay(decay float32) {
	decay = clamp(decay, 0, 1)
	d.fmDecay.Store(decay)
	decay *= decay
	d.fmCoeff.Store(1 - 1/(SYNTH_FM_DECAY_SECONDS*(1+decay*4)*d.sampleRate))
}
