// drum_dsp.go - Shared DSP helpers for the percussion voices

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
	TWO_PI = 2 * math32.Pi

	MIN_DECAY_SECONDS = 0.0005 // Shortest decay time accepted by DecayCoeff
	MIN_CUTOFF_HZ     = 5.0    // Lowest one-pole cutoff accepted by OnePoleCoeff

	DEFAULT_DECAY_COEFF = 0.999 // Envelope coefficient before the first SetDecay
)

// Clamp01 limits x to [0, 1]. NaN maps to 0.
func Clamp01(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Map01 clamps x to [0, 1] and maps it linearly onto [lo, hi].
func Map01(x, lo, hi float32) float32 {
	x = Clamp01(x)
	return lo + (hi-lo)*x
}

// DecayCoeff returns the per-sample multiplier that makes an exponential
// decay fall by 1/e over the given time.
func DecayCoeff(seconds, sampleRate float32) float32 {
	seconds = maxf(seconds, MIN_DECAY_SECONDS)
	return math32.Exp(-1 / (seconds * sampleRate))
}

// OnePoleCoeff returns the smoothing coefficient of a one-pole filter with
// the given cutoff.
func OnePoleCoeff(cutoffHz, sampleRate float32) float32 {
	cutoffHz = maxf(cutoffHz, MIN_CUTOFF_HZ)
	return 1 - math32.Exp(-TWO_PI*cutoffHz/sampleRate)
}

// SoftLimit is a rational tanh approximation, accurate for |x| <= 3.
// Evaluated in float64 so the float32 result stays monotonic and within
// [-1, 1] up to the knee.
func SoftLimit(x float32) float32 {
	d := float64(x)
	return float32(d * (27 + d*d) / (27 + 9*d*d))
}

// SoftClip saturates x smoothly into [-1, 1]. Monotonic, SoftClip(0) == 0.
func SoftClip(x float32) float32 {
	switch {
	case x < -3:
		return -1
	case x > 3:
		return 1
	default:
		return SoftLimit(x)
	}
}

// accentGain is the peak level shared by every accent-scaled envelope.
func accentGain(accent float32) float32 {
	return 0.3 + 0.7*accent
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
