// voice_snare.go - Two-mode snare drum with high-passed noise

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
	SD_MIN_FREQ       = 10.0
	SD_OVERTONE       = 1.47
	SD_OVERTONE_LEVEL = 0.6
	SD_BODY_GAIN      = 0.5

	SD_NOISE_CUT_MIN  = 1200.0
	SD_NOISE_CUT_MAX  = 9000.0
	SD_BODY_DECAY_MIN = 0.06
	SD_BODY_DECAY_MAX = 0.6
)

// SnareDrum mixes two sine modes (1.0 and 1.47 times the base frequency) with
// high-passed white noise. Snappy trades body for noise and stretches the
// noise decay. The sum always passes through SoftClip.
type SnareDrum struct {
	sampleRate float32
	osc1, osc2 phasor
	trig       trigFlag

	freq         param
	accent       param
	tone         param
	decay        param
	snappy       param
	noiseHPCoeff param

	bodyEnv  DecayEnvelope
	noiseEnv DecayEnvelope
	noiseHP  OnePoleFilter
	noise    WhiteNoise
}

func NewSnareDrum(sampleRate float32) *SnareDrum {
	sd := &SnareDrum{}
	sd.Init(sampleRate)
	return sd
}

func (sd *SnareDrum) Init(sampleRate float32) {
	sd.sampleRate = sampleRate
	sd.osc1.Reset()
	sd.osc2.Reset()
	sd.trig.Reset()

	sd.bodyEnv.Init(sampleRate)
	sd.noiseEnv.Init(sampleRate)
	sd.noiseHP.Reset()
	sd.noise.Seed(SEED_SNARE)

	sd.SetFreq(180)
	sd.SetDecay(0.5)
	sd.SetTone(0.6)
	sd.SetSnappy(0.7)
	sd.SetAccent(0.8)
}

func (sd *SnareDrum) Process(trigger bool) float32 {
	if sd.trig.Consume(trigger) {
		peak := accentGain(sd.accent.Load())
		sd.bodyEnv.Trig(peak)
		sd.noiseEnv.Trig(peak)
	}

	bodyEnv := sd.bodyEnv.Process()
	noiseEnv := sd.noiseEnv.Process()
	snappy := sd.snappy.Load()

	freq := sd.freq.Load()
	p1 := sd.osc1.Advance(freq / sd.sampleRate)
	p2 := sd.osc2.Advance(freq * SD_OVERTONE / sd.sampleRate)

	body := (math32.Sin(TWO_PI*p1) + SD_OVERTONE_LEVEL*math32.Sin(TWO_PI*p2)) * SD_BODY_GAIN
	body *= bodyEnv * (1 - snappy)

	hp := sd.noiseHP.ProcessHP(sd.noise.Process(), sd.noiseHPCoeff.Load())
	snare := hp * noiseEnv * snappy

	return SoftClip(body + snare)
}

func (sd *SnareDrum) Trig() { sd.trig.Set() }

func (sd *SnareDrum) SetSustain(held bool) {
	sd.bodyEnv.SetSustain(held)
	sd.noiseEnv.SetSustain(held)
}

func (sd *SnareDrum) Seed(seed uint32) { sd.noise.Seed(seed) }

func (sd *SnareDrum) SetAccent(accent float32) { sd.accent.Store(Clamp01(accent)) }

func (sd *SnareDrum) SetFreq(freqHz float32) { sd.freq.Store(maxf(freqHz, SD_MIN_FREQ)) }

// SetTone sets the noise high-pass cutoff.
func (sd *SnareDrum) SetTone(tone float32) {
	tone = Clamp01(tone)
	sd.tone.Store(tone)
	sd.noiseHPCoeff.Store(OnePoleCoeff(Map01(tone, SD_NOISE_CUT_MIN, SD_NOISE_CUT_MAX), sd.sampleRate))
}

func (sd *SnareDrum) SetDecay(decay float32) {
	sd.decay.Store(Clamp01(decay))
	sd.updateDecay()
}

func (sd *SnareDrum) SetSnappy(snappy float32) {
	sd.snappy.Store(Clamp01(snappy))
	sd.updateDecay()
}

// The noise tail runs from 0.6x to 1.5x the body decay as snappy rises.
func (sd *SnareDrum) updateDecay() {
	body := Map01(sd.decay.Load(), SD_BODY_DECAY_MIN, SD_BODY_DECAY_MAX)
	noise := body * (0.6 + 0.9*sd.snappy.Load())
	sd.bodyEnv.SetDecay(body)
	sd.noiseEnv.SetDecay(noise)
}
