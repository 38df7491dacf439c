// dsp.go - Shared building blocks for the kick models

package models

import (
	"math"
	"sync/atomic"

	"github.com/chewxy/math32"
)

// knob is a float32 shared between the control and audio goroutines.
type knob struct {
	bits atomic.Uint32
}

func (k *knob) Load() float32 { return math.Float32frombits(k.bits.Load()) }

func (k *knob) Store(v float32) { k.bits.Store(math.Float32bits(v)) }

func clamp(x, lo, hi float32) float32 {
	if x != x || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func semitonesToRatio(semitones float32) float32 {
	return math32.Exp2(semitones / 12)
}

// onePole moves state toward in by coefficient c.
func onePole(state *float32, in, c float32) {
	*state += c * (in - *state)
}

// diode passes positive input and soft-compresses negative input.
func diode(x float32) float32 {
	if x >= 0 {
		return x
	}
	x *= 2
	return 0.7 * x / (1 + math32.Abs(x))
}

// svf is a topology-preserving state-variable filter producing band-pass and
// low-pass outputs from one input. f is normalized to the sample rate.
type svf struct {
	g, r, h float32
	s1, s2  float32
}

func (f *svf) Reset() {
	f.s1 = 0
	f.s2 = 0
}

func (f *svf) SetFQ(freq, q float32) {
	f.g = math32.Tan(math32.Pi * clamp(freq, 0, 0.497))
	f.r = 1 / q
	f.h = 1 / (1 + f.r*f.g + f.g*f.g)
}

func (f *svf) Process(in float32) (bp, lp float32) {
	hp := (in - f.r*f.s1 - f.g*f.s1 - f.s2) * f.h
	bp = f.g*hp + f.s1
	f.s1 = f.g*hp + bp
	lp = f.g*bp + f.s2
	f.s2 = f.g*bp + lp
	return bp, lp
}

// rng is a linear congruential generator for repeatable noise.
type rng struct {
	state uint32
}

func (r *rng) Seed(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

// Float returns a value in [0, 1).
func (r *rng) Float() float32 {
	r.state = r.state*1664525 + 1013904223
	return float32(r.state>>8) * (1.0 / (1 << 24))
}
