// drum_dsp_test.go - Tests for the shared DSP primitives

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

import (
	"math"
	"testing"
)

const testRate = 48000

func nan32() float32 { return float32(math.NaN()) }

// ============================================================================
// Helpers
// ============================================================================

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{7, 1},
		{nan32(), 0},
		{float32(math.Inf(1)), 1},
		{float32(math.Inf(-1)), 0},
	}
	for _, tc := range tests {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMap01(t *testing.T) {
	if got := Map01(0.5, 100, 300); got != 200 {
		t.Errorf("Map01(0.5, 100, 300) = %v, want 200", got)
	}
	if got := Map01(-3, 100, 300); got != 100 {
		t.Errorf("Map01(-3, 100, 300) = %v, want 100", got)
	}
	if got := Map01(3, 100, 300); got != 300 {
		t.Errorf("Map01(3, 100, 300) = %v, want 300", got)
	}
}

func TestDecayCoeff(t *testing.T) {
	got := DecayCoeff(0.1, testRate)
	want := math.Exp(-1 / (0.1 * testRate))
	if math.Abs(float64(got)-want) > 2e-7 {
		t.Errorf("DecayCoeff(0.1) = %v, want %v", got, want)
	}

	floor := DecayCoeff(MIN_DECAY_SECONDS, testRate)
	for _, s := range []float32{0, -1, 0.0001, nan32()} {
		if got := DecayCoeff(s, testRate); got != floor {
			t.Errorf("DecayCoeff(%v) = %v, want floored %v", s, got, floor)
		}
	}
	if floor <= 0 || floor >= 1 {
		t.Errorf("floored coeff = %v, want in (0, 1)", floor)
	}
}

func TestOnePoleCoeff(t *testing.T) {
	got := OnePoleCoeff(1000, testRate)
	want := 1 - math.Exp(-2*math.Pi*1000/testRate)
	if math.Abs(float64(got)-want) > 1e-6 {
		t.Errorf("OnePoleCoeff(1000) = %v, want %v", got, want)
	}

	floor := OnePoleCoeff(MIN_CUTOFF_HZ, testRate)
	for _, c := range []float32{0, -50, 1, nan32()} {
		if got := OnePoleCoeff(c, testRate); got != floor {
			t.Errorf("OnePoleCoeff(%v) = %v, want floored %v", c, got, floor)
		}
	}
}

// ============================================================================
// SoftClip
// ============================================================================

func TestSoftClip_ZeroAndBounds(t *testing.T) {
	if got := SoftClip(0); got != 0 {
		t.Errorf("SoftClip(0) = %v, want 0", got)
	}
	for _, x := range []float32{-1e9, -100, -3.5, 3.5, 100, 1e9} {
		got := SoftClip(x)
		if got < -1 || got > 1 {
			t.Errorf("SoftClip(%v) = %v, want within [-1, 1]", x, got)
		}
	}
	if got := SoftClip(3); got != 1 {
		t.Errorf("SoftClip(3) = %v, want 1", got)
	}
	if got := SoftClip(-3); got != -1 {
		t.Errorf("SoftClip(-3) = %v, want -1", got)
	}
}

func TestSoftClip_KneeStaysInRange(t *testing.T) {
	prev := SoftClip(-4)
	for i := -400000; i <= 400000; i++ {
		x := float32(i) / 100000
		y := SoftClip(x)
		if y < -1 || y > 1 {
			t.Fatalf("SoftClip(%v) = %v, want within [-1, 1]", x, y)
		}
		if y < prev {
			t.Fatalf("SoftClip(%v) = %v < previous %v", x, y, prev)
		}
		prev = y
	}
}

func TestSoftClip_Monotonic(t *testing.T) {
	prev := SoftClip(-10)
	for i := -999; i <= 1000; i++ {
		x := float32(i) / 100
		y := SoftClip(x)
		if y < prev {
			t.Fatalf("SoftClip(%v) = %v < previous %v", x, y, prev)
		}
		if y < -1 || y > 1 {
			t.Fatalf("SoftClip(%v) = %v out of range", x, y)
		}
		prev = y
	}

	// Strictly increasing well inside the knee
	prev = SoftClip(-2.5)
	for i := -49; i <= 50; i++ {
		x := float32(i) / 20
		y := SoftClip(x)
		if y <= prev {
			t.Fatalf("SoftClip(%v) = %v, not above %v", x, y, prev)
		}
		prev = y
	}
}

func TestSoftClip_OddSymmetry(t *testing.T) {
	for _, x := range []float32{0.1, 0.5, 1, 2, 2.9, 4} {
		if a, b := SoftClip(x), SoftClip(-x); a != -b {
			t.Errorf("SoftClip(%v) = %v, SoftClip(%v) = %v", x, a, -x, b)
		}
	}
}

// ============================================================================
// DecayEnvelope
// ============================================================================

func TestDecayEnvelope_TrigReturnsPeakFirst(t *testing.T) {
	var e DecayEnvelope
	e.Init(testRate)
	e.SetDecay(0.05)
	e.Trig(0.86)
	if got := e.Process(); got != 0.86 {
		t.Errorf("first Process after Trig = %v, want 0.86", got)
	}
	if got := e.Value(); got >= 0.86 {
		t.Errorf("value after one step = %v, want < 0.86", got)
	}
}

func TestDecayEnvelope_Monotonic(t *testing.T) {
	var e DecayEnvelope
	e.Init(testRate)
	e.SetDecay(0.01)
	e.Trig(1)

	prev := e.Process()
	for i := range testRate {
		v := e.Process()
		if v > prev {
			t.Fatalf("step %d: %v > %v", i, v, prev)
		}
		if v < 0 {
			t.Fatalf("step %d: negative value %v", i, v)
		}
		prev = v
	}
	if prev > 1e-6 {
		t.Errorf("value after 1 s of a 10 ms decay = %v, want ~0", prev)
	}
}

func TestDecayEnvelope_SustainHolds(t *testing.T) {
	var e DecayEnvelope
	e.Init(testRate)
	e.SetDecay(0.01)
	e.Trig(1)
	for range 100 {
		e.Process()
	}

	e.SetSustain(true)
	held := e.Value()
	for i := range 1000 {
		if v := e.Process(); v != held {
			t.Fatalf("step %d: %v while held, want %v", i, v, held)
		}
	}

	e.SetSustain(false)
	e.Process()
	if e.Value() >= held {
		t.Errorf("value %v did not resume decaying from %v", e.Value(), held)
	}
}

func TestDecayEnvelope_InitDefaults(t *testing.T) {
	var e DecayEnvelope
	e.Init(testRate)
	if e.Value() != 0 {
		t.Errorf("Value after Init = %v, want 0", e.Value())
	}
	if e.Coeff() != DEFAULT_DECAY_COEFF {
		t.Errorf("Coeff after Init = %v, want %v", e.Coeff(), float32(DEFAULT_DECAY_COEFF))
	}
}

// ============================================================================
// OnePoleFilter
// ============================================================================

func TestOnePoleFilter_LowPassSettles(t *testing.T) {
	var f OnePoleFilter
	c := OnePoleCoeff(1000, testRate)
	var out float32
	for range 10000 {
		out = f.ProcessLP(1, c)
	}
	if math.Abs(float64(out)-1) > 1e-5 {
		t.Errorf("LP DC response = %v, want 1", out)
	}
}

func TestOnePoleFilter_HighPassRemovesDC(t *testing.T) {
	var f OnePoleFilter
	c := OnePoleCoeff(1000, testRate)
	var out float32
	for range 10000 {
		out = f.ProcessHP(1, c)
	}
	if math.Abs(float64(out)) > 1e-5 {
		t.Errorf("HP DC response = %v, want 0", out)
	}
}

func TestOnePoleFilter_HighPassIsInputMinusState(t *testing.T) {
	var f OnePoleFilter
	c := OnePoleCoeff(2000, testRate)
	in := []float32{0.3, -0.7, 1, 0.2}
	for _, x := range in {
		hp := f.ProcessHP(x, c)
		if hp != x-f.State() {
			t.Errorf("HP(%v) = %v, want in-state = %v", x, hp, x-f.State())
		}
	}
	f.Reset()
	if f.State() != 0 {
		t.Errorf("State after Reset = %v, want 0", f.State())
	}
}

// ============================================================================
// Noise and phase
// ============================================================================

func TestWhiteNoise_RangeAndRepeatability(t *testing.T) {
	var a, b WhiteNoise
	a.Seed(42)
	b.Seed(42)
	for i := range 100000 {
		x, y := a.Process(), b.Process()
		if x != y {
			t.Fatalf("sample %d: %v vs %v with equal seeds", i, x, y)
		}
		if x < -1 || x >= 1 {
			t.Fatalf("sample %d = %v, want [-1, 1)", i, x)
		}
	}
}

func TestWhiteNoise_ZeroSeedUsesDefault(t *testing.T) {
	var a, b WhiteNoise
	a.Seed(0)
	b.Seed(NOISE_DEFAULT_SEED)
	for range 16 {
		if x, y := a.Process(), b.Process(); x != y {
			t.Fatalf("zero seed %v, default seed %v", x, y)
		}
	}
}

func TestMetallicNoise_Levels(t *testing.T) {
	var m MetallicNoise
	m.Init(testRate)
	for i := range 10000 {
		v := m.Process(3800)
		count := (v + 1) / METAL_GAIN
		rounded := float32(math.Round(float64(count)))
		if math.Abs(float64(count-rounded)) > 1e-4 || rounded < 0 || rounded > METAL_OSCILLATORS {
			t.Fatalf("sample %d = %v, not 0.33*count-1", i, v)
		}
	}
}

func TestMetallicNoise_ZeroFrequencyIsStatic(t *testing.T) {
	var m MetallicNoise
	m.Init(testRate)
	for range 100 {
		if v := m.Process(0); v != -1 {
			t.Fatalf("Process(0) = %v, want -1", v)
		}
	}
}

func TestPhasor_StaysInUnitInterval(t *testing.T) {
	increments := []float32{1e-6, 0.001, 0.0137, 0.3, 0.499, 0.9999999, 1, 1.5, 3.7}
	for _, inc := range increments {
		var p phasor
		for i := range 100000 {
			ph := p.Advance(inc)
			if ph < 0 || ph >= 1 {
				t.Fatalf("inc %v step %d: phase %v outside [0, 1)", inc, i, ph)
			}
		}
	}
}

func TestPhasor_WrapKeepsFraction(t *testing.T) {
	var p phasor
	p.Advance(0.75)
	if got := p.Advance(0.5); got != 0.25 {
		t.Errorf("0.75 + 0.5 wrapped to %v, want 0.25", got)
	}
	p.Reset()
	if p.Phase() != 0 {
		t.Errorf("Phase after Reset = %v, want 0", p.Phase())
	}
}

// ============================================================================
// Control cells
// ============================================================================

func TestTrigFlag_Coalesces(t *testing.T) {
	var f trigFlag
	f.Set()
	f.Set()
	if !f.Consume(false) {
		t.Fatal("first Consume = false, want true")
	}
	if f.Consume(false) {
		t.Error("second Consume = true, want false")
	}
	if !f.Consume(true) {
		t.Error("forced Consume = false, want true")
	}
}

func TestParam_RoundTrip(t *testing.T) {
	var p param
	for _, v := range []float32{0, -0.5, 1e-30, 12345.678} {
		p.Store(v)
		if got := p.Load(); got != v {
			t.Errorf("Load after Store(%v) = %v", v, got)
		}
	}
}
