// drum_noise.go - Noise sources and the phase accumulator

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
	NOISE_DEFAULT_SEED = 12345 // Replaces a zero seed
	NOISE_LCG_MUL      = 1103515245
	NOISE_LCG_ADD      = 12345
	NOISE_SCALE        = 1.0 / (1 << 23) // Top 24 bits map exactly onto float32
)

// WhiteNoise is a per-voice linear congruential generator producing uniform
// samples in [-1, 1). Two generators with the same seed produce the same
// sequence.
type WhiteNoise struct {
	state uint32
}

func (n *WhiteNoise) Seed(seed uint32) {
	if seed == 0 {
		seed = NOISE_DEFAULT_SEED
	}
	n.state = seed
}

func (n *WhiteNoise) Process() float32 {
	n.state = n.state*NOISE_LCG_MUL + NOISE_LCG_ADD
	return float32(n.state>>8)*NOISE_SCALE - 1
}

// Metallic noise: six square oscillators at inharmonic ratios, summed by
// counting how many sit in the upper half of their cycle.
const (
	METAL_OSCILLATORS = 6
	METAL_MAX_INC     = 0.499 // Cycles per sample, keeps every square below Nyquist
	METAL_GAIN        = 0.33
	PHASE_SCALE_32    = 4294967296.0 // 2^32
)

var metalRatios = [METAL_OSCILLATORS]float32{1.0, 1.304, 1.466, 1.787, 1.932, 2.536}

type MetallicNoise struct {
	sampleRate float32
	phase      [METAL_OSCILLATORS]uint32
}

func (m *MetallicNoise) Init(sampleRate float32) {
	m.sampleRate = sampleRate
	m.phase = [METAL_OSCILLATORS]uint32{}
}

// Process advances every oscillator once for a base frequency in Hz and
// returns 0.33*count-1, where count is the number of oscillators in the high
// half-cycle.
func (m *MetallicNoise) Process(freqHz float32) float32 {
	f0 := freqHz / m.sampleRate
	if !(f0 > 0) {
		f0 = 0
	}

	var count uint32
	for i := range m.phase {
		f := f0 * metalRatios[i]
		if f >= METAL_MAX_INC {
			f = METAL_MAX_INC
		}
		m.phase[i] += uint32(float64(f) * PHASE_SCALE_32)
		count += m.phase[i] >> 31
	}

	return METAL_GAIN*float32(count) - 1
}

// phasor is a normalised oscillator phase. It stays in [0, 1) for any
// non-negative increment; the wrap subtracts the whole cycles instead of
// using a modulo so that small increments keep full precision.
type phasor struct {
	phase float32
}

func (p *phasor) Reset() {
	p.phase = 0
}

func (p *phasor) Advance(inc float32) float32 {
	p.phase += inc
	if p.phase >= 1 {
		p.phase -= float32(int64(p.phase))
		if p.phase >= 1 || p.phase < 0 {
			p.phase = 0
		}
	}
	return p.phase
}

func (p *phasor) Phase() float32 {
	return p.phase
}
