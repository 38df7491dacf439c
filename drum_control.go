// drum_control.go - Lock-free cells shared between the control and audio goroutines

package drumsynth

import (
	"math"
	"sync/atomic"
)

// param is a float32 written by the control goroutine and read by the audio
// goroutine. Each load sees a whole value; a value that changes between two
// loads inside one Process call only glitches that one sample.
type param struct {
	bits atomic.Uint32
}

func (p *param) Load() float32 {
	return math.Float32frombits(p.bits.Load())
}

func (p *param) Store(v float32) {
	p.bits.Store(math.Float32bits(v))
}

// trigFlag is the one-bit retrigger request. Set is idempotent, so any number
// of Trig calls before the next Process collapse into a single restart, and
// Consume clears it in the same atomic step that reads it so no request that
// arrives after the read is lost.
type trigFlag struct {
	pending atomic.Bool
}

func (t *trigFlag) Set() {
	t.pending.Store(true)
}

func (t *trigFlag) Consume(force bool) bool {
	fired := t.pending.Swap(false)
	return fired || force
}

func (t *trigFlag) Reset() {
	t.pending.Store(false)
}
