// voice_hihat.go - Metallic hi-hat core and the closed/open variants

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

const (
	HAT_MIN_FREQ   = 200.0
	HAT_HP_CUTOFF  = 500.0
	HAT_LP_CUT_MIN = 3500.0
	HAT_LP_CUT_MAX = 12000.0

	CLOSED_HAT_DECAY_MIN = 0.02
	CLOSED_HAT_DECAY_MAX = 0.18
	CLOSED_HAT_FREQ      = 3800.0

	OPEN_HAT_DECAY_MIN = 0.12
	OPEN_HAT_DECAY_MAX = 1.2
	OPEN_HAT_FREQ      = 3600.0
)

// HiHatCore runs metallic noise through a fixed high-pass and a tone
// controlled low-pass under one decay envelope. The decay range and base
// frequency are fixed at Init; CloseHihat and OpenHihat are two
// configurations of the same core.
type HiHatCore struct {
	sampleRate float32
	minDecay   float32
	maxDecay   float32
	trig       trigFlag

	freq    param
	accent  param
	tone    param
	decay   param
	hpCoeff param
	lpCoeff param

	env   DecayEnvelope
	hp    OnePoleFilter
	lp    OnePoleFilter
	metal MetallicNoise
}

func (h *HiHatCore) Init(sampleRate, minDecay, maxDecay, baseFreq float32) {
	h.sampleRate = sampleRate
	h.minDecay = minDecay
	h.maxDecay = maxDecay
	h.freq.Store(baseFreq)
	h.trig.Reset()

	h.env.Init(sampleRate)
	h.hp.Reset()
	h.lp.Reset()
	h.metal.Init(sampleRate)

	h.SetTone(0.7)
	h.SetDecay(0.4)
	h.SetAccent(0.8)
}

func (h *HiHatCore) Process(trigger bool) float32 {
	if h.trig.Consume(trigger) {
		h.env.Trig(accentGain(h.accent.Load()))
	}

	env := h.env.Process()
	metal := h.metal.Process(h.freq.Load())

	hp := h.hp.ProcessHP(metal, h.hpCoeff.Load())
	lp := h.lp.ProcessLP(hp, h.lpCoeff.Load())

	return lp * env
}

func (h *HiHatCore) Trig() { h.trig.Set() }

func (h *HiHatCore) SetSustain(held bool) { h.env.SetSustain(held) }

func (h *HiHatCore) SetAccent(accent float32) { h.accent.Store(Clamp01(accent)) }

func (h *HiHatCore) SetFreq(freqHz float32) { h.freq.Store(maxf(freqHz, HAT_MIN_FREQ)) }

func (h *HiHatCore) SetTone(tone float32) {
	tone = Clamp01(tone)
	h.tone.Store(tone)
	h.hpCoeff.Store(OnePoleCoeff(HAT_HP_CUTOFF, h.sampleRate))
	h.lpCoeff.Store(OnePoleCoeff(Map01(tone, HAT_LP_CUT_MIN, HAT_LP_CUT_MAX), h.sampleRate))
}

func (h *HiHatCore) SetDecay(decay float32) {
	decay = Clamp01(decay)
	h.decay.Store(decay)
	h.env.SetDecay(Map01(decay, h.minDecay, h.maxDecay))
}

// CloseHihat is a short-decay HiHatCore.
type CloseHihat struct {
	core HiHatCore
}

func NewCloseHihat(sampleRate float32) *CloseHihat {
	h := &CloseHihat{}
	h.Init(sampleRate)
	return h
}

func (h *CloseHihat) Init(sampleRate float32) {
	h.core.Init(sampleRate, CLOSED_HAT_DECAY_MIN, CLOSED_HAT_DECAY_MAX, CLOSED_HAT_FREQ)
}

func (h *CloseHihat) Process(trigger bool) float32 { return h.core.Process(trigger) }
func (h *CloseHihat) Trig()                        { h.core.Trig() }
func (h *CloseHihat) SetSustain(held bool)         { h.core.SetSustain(held) }
func (h *CloseHihat) SetAccent(accent float32)     { h.core.SetAccent(accent) }
func (h *CloseHihat) SetFreq(freqHz float32)       { h.core.SetFreq(freqHz) }
func (h *CloseHihat) SetTone(tone float32)         { h.core.SetTone(tone) }
func (h *CloseHihat) SetDecay(decay float32)       { h.core.SetDecay(decay) }

// OpenHihat is a long-decay HiHatCore.
type OpenHihat struct {
	core HiHatCore
}

func NewOpenHihat(sampleRate float32) *OpenHihat {
	h := &OpenHihat{}
	h.Init(sampleRate)
	return h
}

func (h *OpenHihat) Init(sampleRate float32) {
	h.core.Init(sampleRate, OPEN_HAT_DECAY_MIN, OPEN_HAT_DECAY_MAX, OPEN_HAT_FREQ)
}

func (h *OpenHihat) Process(trigger bool) float32 { return h.core.Process(trigger) }
func (h *OpenHihat) Trig()                        { h.core.Trig() }
func (h *OpenHihat) SetSustain(held bool)         { h.core.SetSustain(held) }
func (h *OpenHihat) SetAccent(accent float32)     { h.core.SetAccent(accent) }
func (h *OpenHihat) SetFreq(freqHz float32)       { h.core.SetFreq(freqHz) }
func (h *OpenHihat) SetTone(tone float32)         { h.core.SetTone(tone) }
func (h *OpenHihat) SetDecay(decay float32)       { h.core.SetDecay(decay) }
