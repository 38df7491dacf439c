// analog_bassdrum.go - Resonator-based analog kick model

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/drumsynth
License: GPLv3 or later
*/

package models

import (
	"sync/atomic"

	"github.com/chewxy/math32"
)

const (
	ANALOG_TRIGGER_PULSE_SECONDS = 1.0e-3
	ANALOG_FM_PULSE_SECONDS      = 6.0e-3
	ANALOG_PULSE_DECAY_SECONDS   = 0.2e-3
	ANALOG_PULSE_FILTER_SECONDS  = 0.1e-3
	ANALOG_RETRIG_PULSE_SECONDS  = 0.05

	ANALOG_MIN_FREQ  = 5.0
	ANALOG_MAX_F0    = 0.4 // Normalized frequency ceiling for the resonator
	ANALOG_Q_BASE    = 1500.0
	ANALOG_Q_RANGE   = 80.0  // Semitones of Q across the decay knob
	ANALOG_TONE_SPAN = 108.0 // Semitones of tone filter across the tone knob
)

// AnalogBassDrum models the classic transistor kick: a short trigger pulse
// excites a high-Q band-pass resonator whose pitch is pushed up by an FM pulse
// at the attack and by its own output (self-FM punch). A one-pole low-pass
// shapes the tone. Holding sustain swaps the resonator for a free-running
// sine so the note never decays.
type AnalogBassDrum struct {
	sampleRate float32

	triggerPulseSamples int
	fmPulseSamples      int
	pulseDecay          float32
	pulseFilter         float32
	retrigDecay         float32

	trig    atomic.Bool
	sustain atomic.Bool

	accent      knob
	f0          knob // Normalized to the sample rate
	tone        knob
	decay       knob
	attackFm    knob
	selfFm      knob
	q           knob
	toneCoeff   knob
	exciterLeak knob

	pulseRemaining   int
	fmPulseRemaining int
	pulse            float32
	pulseHeight      float32
	pulseLP          float32
	fmPulseLP        float32
	retrigPulse      float32
	lpOut            float32
	toneLP           float32
	sustainPhase     float32

	resonator svf
}

func NewAnalogBassDrum(sampleRate float32) *AnalogBassDrum {
	d := &AnalogBassDrum{}
	d.Init(sampleRate)
	return d
}

func (d *AnalogBassDrum) Init(sampleRate float32) {
	d.sampleRate = sampleRate
	d.triggerPulseSamples = int(ANALOG_TRIGGER_PULSE_SECONDS * sampleRate)
	d.fmPulseSamples = int(ANALOG_FM_PULSE_SECONDS * sampleRate)
	d.pulseDecay = 1 - 1/(ANALOG_PULSE_DECAY_SECONDS*sampleRate)
	d.pulseFilter = clamp(1/(ANALOG_PULSE_FILTER_SECONDS*sampleRate), 0, 1)
	d.retrigDecay = 1 - 1/(ANALOG_RETRIG_PULSE_SECONDS*sampleRate)

	d.trig.Store(false)
	d.sustain.Store(false)

	d.pulseRemaining = 0
	d.fmPulseRemaining = 0
	d.pulse = 0
	d.pulseHeight = 0
	d.pulseLP = 0
	d.fmPulseLP = 0
	d.retrigPulse = 0
	d.lpOut = 0
	d.toneLP = 0
	d.sustainPhase = 0
	d.resonator.Reset()

	d.SetAccent(0.1)
	d.SetFreq(50)
	d.SetTone(0.1)
	d.SetDecay(0.3)
	d.SetAttackFmAmount(0.2)
	d.SetSelfFmAmount(1.0)
}

func (d *AnalogBassDrum) Process(trigger bool) float32 {
	if d.trig.Swap(false) || trigger {
		d.pulseRemaining = d.triggerPulseSamples
		d.fmPulseRemaining = d.fmPulseSamples
		d.pulseHeight = 3 + 7*d.accent.Load()
		d.lpOut = 0
	}

	sustain := d.sustain.Load()
	f0 := d.f0.Load()

	// Exciter
	var pulse float32
	if d.pulseRemaining > 0 {
		d.pulseRemaining--
		if d.pulseRemaining > 0 {
			pulse = d.pulseHeight
		} else {
			pulse = d.pulseHeight - 1
		}
		d.pulse = pulse
	} else {
		d.pulse *= d.pulseDecay
		pulse = d.pulse
	}
	if sustain {
		pulse = 0
	}
	onePole(&d.pulseLP, pulse, d.pulseFilter)
	pulse = diode((pulse - d.pulseLP) + pulse*0.044)

	// Attack FM pulse and the dip that follows it
	var fmPulse float32
	if d.fmPulseRemaining > 0 {
		d.fmPulseRemaining--
		fmPulse = 1
		if d.fmPulseRemaining > 0 {
			d.retrigPulse = 0
		} else {
			d.retrigPulse = -0.8
		}
	} else {
		d.retrigPulse *= d.retrigDecay
	}
	if sustain {
		fmPulse = 0
	}
	onePole(&d.fmPulseLP, fmPulse, d.pulseFilter)

	punch := 0.7 + diode(10*d.lpOut-1)
	attackFm := d.fmPulseLP * 1.7 * d.attackFm.Load()
	selfFm := punch * 0.08 * d.selfFm.Load()
	f := clamp(f0*(1+attackFm+selfFm), 0, ANALOG_MAX_F0)

	var out float32
	if sustain {
		d.sustainPhase += f
		d.sustainPhase -= float32(int64(d.sustainPhase))
		out = sinPhase(d.sustainPhase) * d.accent.Load() * d.decay.Load()
	} else {
		d.resonator.SetFQ(f, 1+d.q.Load()*f)
		scale := 0.001 / f0
		out, d.lpOut = d.resonator.Process((pulse - d.retrigPulse*0.2) * scale)
	}

	onePole(&d.toneLP, pulse*d.exciterLeak.Load()+out, d.toneCoeff.Load())
	return d.toneLP
}

func (d *AnalogBassDrum) Trig() { d.trig.Store(true) }

func (d *AnalogBassDrum) SetSustain(held bool) { d.sustain.Store(held) }

func (d *AnalogBassDrum) SetAccent(accent float32) { d.accent.Store(clamp(accent, 0, 1)) }

// SetFreq sets the resonator pitch in Hz.
func (d *AnalogBassDrum) SetFreq(freqHz float32) {
	d.f0.Store(clamp(freqHz, ANALOG_MIN_FREQ, d.sampleRate/2) / d.sampleRate)
	d.updateTone()
}

func (d *AnalogBassDrum) SetTone(tone float32) {
	d.tone.Store(clamp(tone, 0, 1))
	d.updateTone()
}

func (d *AnalogBassDrum) SetDecay(decay float32) {
	decay = clamp(decay, 0, 1)
	d.decay.Store(decay)
	d.q.Store(ANALOG_Q_BASE * semitonesToRatio(decay*ANALOG_Q_RANGE))
}

func (d *AnalogBassDrum) SetAttackFmAmount(amount float32) { d.attackFm.Store(clamp(amount, 0, 1)) }

func (d *AnalogBassDrum) SetSelfFmAmount(amount float32) { d.selfFm.Store(clamp(amount, 0, 1)) }

func (d *AnalogBassDrum) updateTone() {
	tone := d.tone.Load()
	d.toneCoeff.Store(math32.Min(4*d.f0.Load()*semitonesToRatio(tone*ANALOG_TONE_SPAN), 1))
	d.exciterLeak.Store(0.08 * (tone + 0.25))
}
