// voice_cymbal.go - Dual metallic-noise cymbal

package drumsynth

const (
	CYM_MIN_FREQ   = 200.0
	CYM_DETUNE     = 1.23
	CYM_MIX_A      = 0.6
	CYM_MIX_B      = 0.4
	CYM_HP_CUTOFF  = 400.0
	CYM_LP_CUT_MIN = 3000.0
	CYM_LP_CUT_MAX = 14000.0
	CYM_DECAY_MIN  = 0.25
	CYM_DECAY_MAX  = 2.5
)

// Cymbal layers two metallic-noise generators, the second detuned by 1.23,
// for a denser spectrum than the hi-hat, and decays for up to 2.5 s.
type Cymbal struct {
	sampleRate float32
	trig       trigFlag

	freq    param
	accent  param
	tone    param
	decay   param
	hpCoeff param
	lpCoeff param

	env    DecayEnvelope
	hp     OnePoleFilter
	lp     OnePoleFilter
	metalA MetallicNoise
	metalB MetallicNoise
}

func NewCymbal(sampleRate float32) *Cymbal {
	c := &Cymbal{}
	c.Init(sampleRate)
	return c
}

func (c *Cymbal) Init(sampleRate float32) {
	c.sampleRate = sampleRate
	c.trig.Reset()

	c.env.Init(sampleRate)
	c.hp.Reset()
	c.lp.Reset()
	c.metalA.Init(sampleRate)
	c.metalB.Init(sampleRate)

	c.SetFreq(2500)
	c.SetTone(0.7)
	c.SetDecay(0.7)
	c.SetAccent(0.8)
}

func (c *Cymbal) Process(trigger bool) float32 {
	if c.trig.Consume(trigger) {
		c.env.Trig(accentGain(c.accent.Load()))
	}

	env := c.env.Process()

	freq := c.freq.Load()
	metal := c.metalA.Process(freq)*CYM_MIX_A + c.metalB.Process(freq*CYM_DETUNE)*CYM_MIX_B

	hp := c.hp.ProcessHP(metal, c.hpCoeff.Load())
	lp := c.lp.ProcessLP(hp, c.lpCoeff.Load())

	return lp * env
}

func (c *Cymbal) Trig() { c.trig.Set() }

func (c *Cymbal) SetSustain(held bool) { c.env.SetSustain(held) }

func (c *Cymbal) SetAccent(accent float32) { c.accent.Store(Clamp01(accent)) }

func (c *Cymbal) SetFreq(freqHz float32) { c.freq.Store(maxf(freqHz, CYM_MIN_FREQ)) }

func (c *Cymbal) SetTone(tone float32) {
	tone = Clamp01(tone)
	c.tone.Store(tone)
	c.hpCoeff.Store(OnePoleCoeff(CYM_HP_CUTOFF, c.sampleRate))
	c.lpCoeff.Store(OnePoleCoeff(Map01(tone, CYM_LP_CUT_MIN, CYM_LP_CUT_MAX), c.sampleRate))
}

func (c *Cymbal) SetDecay(decay float32) {
	decay = Clamp01(decay)
	c.decay.Store(decay)
	c.env.SetDecay(Map01(decay, CYM_DECAY_MIN, CYM_DECAY_MAX))
}
