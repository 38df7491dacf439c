// voice_rimshot.go - Rimshot: bright two-mode ping plus noise click

package drumsynth

import "github.com/chewxy/math32"

const (
	RS_MIN_FREQ       = 50.0
	RS_OVERTONE       = 1.62
	RS_OVERTONE_LEVEL = 0.5
	RS_BODY_GAIN      = 0.6
	RS_CLICK_DECAY    = 0.008
	RS_CLICK_GAIN     = 0.8

	RS_NOISE_CUT_MIN = 1500.0
	RS_NOISE_CUT_MAX = 9000.0
	RS_DECAY_MIN     = 0.03
	RS_DECAY_MAX     = 0.25
)

// Rimshot is built like the snare but higher and shorter; tone crossfades
// from the tonal ping to the noise click.
type Rimshot struct {
	sampleRate float32
	osc1, osc2 phasor
	trig       trigFlag

	freq         param
	accent       param
	tone         param
	decay        param
	noiseHPCoeff param

	env      DecayEnvelope
	clickEnv DecayEnvelope
	noiseHP  OnePoleFilter
	noise    WhiteNoise
}

func NewRimshot(sampleRate float32) *Rimshot {
	rs := &Rimshot{}
	rs.Init(sampleRate)
	return rs
}

func (rs *Rimshot) Init(sampleRate float32) {
	rs.sampleRate = sampleRate
	rs.osc1.Reset()
	rs.osc2.Reset()
	rs.trig.Reset()

	rs.env.Init(sampleRate)
	rs.clickEnv.Init(sampleRate)
	rs.clickEnv.SetDecay(RS_CLICK_DECAY)
	rs.noiseHP.Reset()
	rs.noise.Seed(SEED_RIMSHOT)

	rs.SetFreq(900)
	rs.SetDecay(0.4)
	rs.SetTone(0.6)
	rs.SetAccent(0.8)
}

func (rs *Rimshot) Process(trigger bool) float32 {
	if rs.trig.Consume(trigger) {
		rs.env.Trig(accentGain(rs.accent.Load()))
		rs.clickEnv.Trig(1)
	}

	env := rs.env.Process()
	clickEnv := rs.clickEnv.Process()
	tone := rs.tone.Load()

	freq := rs.freq.Load()
	p1 := rs.osc1.Advance(freq / rs.sampleRate)
	p2 := rs.osc2.Advance(freq * RS_OVERTONE / rs.sampleRate)

	body := (math32.Sin(TWO_PI*p1) + RS_OVERTONE_LEVEL*math32.Sin(TWO_PI*p2)) * RS_BODY_GAIN
	body *= env * (1 - tone)

	hp := rs.noiseHP.ProcessHP(rs.noise.Process(), rs.noiseHPCoeff.Load())
	click := hp * clickEnv * tone * RS_CLICK_GAIN

	return SoftClip(body + click)
}

func (rs *Rimshot) Trig() { rs.trig.Set() }

func (rs *Rimshot) Seed(seed uint32) { rs.noise.Seed(seed) }

func (rs *Rimshot) SetAccent(accent float32) { rs.accent.Store(Clamp01(accent)) }

func (rs *Rimshot) SetFreq(freqHz float32) { rs.freq.Store(maxf(freqHz, RS_MIN_FREQ)) }

func (rs *Rimshot) SetTone(tone float32) {
	tone = Clamp01(tone)
	rs.tone.Store(tone)
	rs.noiseHPCoeff.Store(OnePoleCoeff(Map01(tone, RS_NOISE_CUT_MIN, RS_NOISE_CUT_MAX), rs.sampleRate))
}

func (rs *Rimshot) SetDecay(decay float32) {
	decay = Clamp01(decay)
	rs.decay.Store(decay)
	rs.env.SetDecay(Map01(decay, RS_DECAY_MIN, RS_DECAY_MAX))
}
