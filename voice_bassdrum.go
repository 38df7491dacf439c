// voice_bassdrum.go - Swept-sine bass drum with click and drive

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

package drumsynth

import "github.com/chewxy/math32"

const (
	BD_MIN_FREQ    = 5.0
	BD_CLICK_DECAY = 0.004 // Seconds
	BD_SWEEP_RANGE = 1.6   // Pitch multiplier at full sweep
	BD_DRIVE_GAIN  = 4.0

	BD_DECAY_MIN       = 0.05
	BD_DECAY_MAX       = 1.2
	BD_SWEEP_DECAY_MIN = 0.01
	BD_SWEEP_DECAY_MAX = 0.12
	BD_CLICK_CUT_MIN   = 800.0
	BD_CLICK_CUT_MAX   = 8000.0
	BD_CLICK_AMT_MIN   = 0.1
	BD_CLICK_AMT_MAX   = 0.4
)

// BassDrum is a sine oscillator swept down by a pitch envelope, shaped by an
// amplitude envelope, with a high-passed noise click on the attack and an
// optional soft-clip drive stage.
type BassDrum struct {
	sampleRate float32
	osc        phasor
	trig       trigFlag

	freq        param
	accent      param
	tone        param
	decay       param
	sweep       param // Already scaled by BD_SWEEP_RANGE
	sweepDecay  param
	drive       param
	clickCoeff  param
	clickAmount param

	ampEnv   DecayEnvelope
	pitchEnv DecayEnvelope
	clickEnv DecayEnvelope
	clickLP  OnePoleFilter
	noise    WhiteNoise
}

func NewBassDrum(sampleRate float32) *BassDrum {
	bd := &BassDrum{}
	bd.Init(sampleRate)
	return bd
}

func (bd *BassDrum) Init(sampleRate float32) {
	bd.sampleRate = sampleRate
	bd.osc.Reset()
	bd.trig.Reset()

	bd.ampEnv.Init(sampleRate)
	bd.pitchEnv.Init(sampleRate)
	bd.clickEnv.Init(sampleRate)
	bd.clickLP.Reset()
	bd.noise.Seed(SEED_BASS_DRUM)

	bd.SetFreq(55)
	bd.SetTone(0.5)
	bd.SetDecay(0.5)
	bd.SetAccent(0.8)
	bd.SetSweep(0.6)
	bd.SetSweepDecay(0.35)
	bd.SetDrive(0.2)

	bd.clickEnv.SetDecay(BD_CLICK_DECAY)
}

func (bd *BassDrum) Process(trigger bool) float32 {
	if bd.trig.Consume(trigger) {
		bd.ampEnv.Trig(accentGain(bd.accent.Load()))
		bd.pitchEnv.Trig(1)
		bd.clickEnv.Trig(1)
	}

	pitchEnv := bd.pitchEnv.Process()
	ampEnv := bd.ampEnv.Process()
	clickEnv := bd.clickEnv.Process()

	freq := bd.freq.Load() * (1 + bd.sweep.Load()*pitchEnv)
	phase := bd.osc.Advance(freq / bd.sampleRate)
	body := math32.Sin(TWO_PI*phase) * ampEnv

	n := bd.noise.Process()
	lp := bd.clickLP.ProcessLP(n, bd.clickCoeff.Load())
	click := (n - lp) * clickEnv * bd.clickAmount.Load()

	out := body + click
	if drive := bd.drive.Load(); drive > 0 {
		out = SoftClip(out * (1 + drive*BD_DRIVE_GAIN))
	}
	return out
}

func (bd *BassDrum) Trig() { bd.trig.Set() }

// SetSustain holds the body and pitch envelopes. The click always decays.
func (bd *BassDrum) SetSustain(held bool) {
	bd.ampEnv.SetSustain(held)
	bd.pitchEnv.SetSustain(held)
}

func (bd *BassDrum) Seed(seed uint32) { bd.noise.Seed(seed) }

func (bd *BassDrum) SetAccent(accent float32) { bd.accent.Store(Clamp01(accent)) }

func (bd *BassDrum) SetFreq(freqHz float32) { bd.freq.Store(maxf(freqHz, BD_MIN_FREQ)) }

// SetTone sets the click brightness and level.
func (bd *BassDrum) SetTone(tone float32) {
	tone = Clamp01(tone)
	bd.tone.Store(tone)
	bd.clickCoeff.Store(OnePoleCoeff(Map01(tone, BD_CLICK_CUT_MIN, BD_CLICK_CUT_MAX), bd.sampleRate))
	bd.clickAmount.Store(Map01(tone, BD_CLICK_AMT_MIN, BD_CLICK_AMT_MAX))
}

func (bd *BassDrum) SetDecay(decay float32) {
	decay = Clamp01(decay)
	bd.decay.Store(decay)
	bd.ampEnv.SetDecay(Map01(decay, BD_DECAY_MIN, BD_DECAY_MAX))
}

// SetSweep sets how far above the base frequency the attack starts.
func (bd *BassDrum) SetSweep(sweep float32) {
	bd.sweep.Store(Clamp01(sweep) * BD_SWEEP_RANGE)
}

func (bd *BassDrum) SetSweepDecay(sweepDecay float32) {
	sweepDecay = Clamp01(sweepDecay)
	bd.sweepDecay.Store(sweepDecay)
	bd.pitchEnv.SetDecay(Map01(sweepDecay, BD_SWEEP_DECAY_MIN, BD_SWEEP_DECAY_MAX))
}

func (bd *BassDrum) SetDrive(drive float32) { bd.drive.Store(Clamp01(drive)) }
