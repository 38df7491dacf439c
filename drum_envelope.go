// drum_envelope.go - Exponential decay envelope with sustain hold

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

import "sync/atomic"

// DecayEnvelope is a one-multiply exponential decay. Trig jumps straight to
// the new peak; Process returns the current value before decaying it, so the
// sample on which the envelope fires carries the full peak.
type DecayEnvelope struct {
	sampleRate float32
	value      float32 // Audio goroutine only

	coeff   param       // Written by SetDecay
	sustain atomic.Bool // Written by SetSustain
}

func (e *DecayEnvelope) Init(sampleRate float32) {
	e.sampleRate = sampleRate
	e.value = 0
	e.coeff.Store(DEFAULT_DECAY_COEFF)
	e.sustain.Store(false)
}

// SetDecay sets the time for the envelope to fall by 1/e.
func (e *DecayEnvelope) SetDecay(seconds float32) {
	e.coeff.Store(DecayCoeff(seconds, e.sampleRate))
}

func (e *DecayEnvelope) SetSustain(held bool) {
	e.sustain.Store(held)
}

func (e *DecayEnvelope) Trig(amplitude float32) {
	e.value = amplitude
}

func (e *DecayEnvelope) Process() float32 {
	out := e.value
	if !e.sustain.Load() {
		e.value *= e.coeff.Load()
	}
	return out
}

// Value is the level the next Process call will return.
func (e *DecayEnvelope) Value() float32 {
	return e.value
}

// Coeff is the current per-sample decay multiplier.
func (e *DecayEnvelope) Coeff() float32 {
	return e.coeff.Load()
}
