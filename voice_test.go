// voice_test.go - Behaviour shared by every drum voice

package drumsynth

import (
	"math"
	"testing"
)

type voiceCase struct {
	name     string
	kind     VoiceKind
	newVoice func(float32) Voice
	minFreq  float32
}

var allVoices = []voiceCase{
	{"kick", KIND_BASS_DRUM, func(sr float32) Voice { return NewBassDrum(sr) }, BD_MIN_FREQ},
	{"snare", KIND_SNARE, func(sr float32) Voice { return NewSnareDrum(sr) }, SD_MIN_FREQ},
	{"clap", KIND_CLAP, func(sr float32) Voice { return NewHandClap(sr) }, 0},
	{"rimshot", KIND_RIMSHOT, func(sr float32) Voice { return NewRimshot(sr) }, RS_MIN_FREQ},
	{"tom", KIND_TOM, func(sr float32) Voice { return NewTom(sr) }, TOM_MIN_FREQ},
	{"closedhat", KIND_CLOSED_HAT, func(sr float32) Voice { return NewCloseHihat(sr) }, HAT_MIN_FREQ},
	{"openhat", KIND_OPEN_HAT, func(sr float32) Voice { return NewOpenHihat(sr) }, HAT_MIN_FREQ},
	{"cymbal", KIND_CYMBAL, func(sr float32) Voice { return NewCymbal(sr) }, CYM_MIN_FREQ},
	{"analogkick", KIND_ANALOG_KICK, func(sr float32) Voice { return NewBassDrumModel(AnalogModel, sr) }, 5},
	{"synthkick", KIND_SYNTH_KICK, func(sr float32) Voice { return NewBassDrumModel(SyntheticModel, sr) }, 5},
}

func renderVoice(v Voice, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v.Process(false)
	}
	return out
}

func sameSamples(a, b []float32) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

func peakAbs(buf []float32) float32 {
	var p float32
	for _, s := range buf {
		if s < 0 {
			s = -s
		}
		if s > p {
			p = s
		}
	}
	return p
}

// ============================================================================
// Common contract
// ============================================================================

func TestVoices_SilentBeforeTrigger(t *testing.T) {
	for _, vc := range allVoices {
		t.Run(vc.name, func(t *testing.T) {
			v := vc.newVoice(testRate)
			for i, s := range renderVoice(v, 4800) {
				if s != 0 {
					t.Fatalf("sample %d = %v before any trigger, want 0", i, s)
				}
			}
		})
	}
}

func TestVoices_SoundAfterTrigger(t *testing.T) {
	for _, vc := range allVoices {
		t.Run(vc.name, func(t *testing.T) {
			v := vc.newVoice(testRate)
			v.Trig()
			out := renderVoice(v, 4800)
			if peakAbs(out) == 0 {
				t.Fatal("no output after Trig")
			}
			for i, s := range out {
				if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
					t.Fatalf("sample %d = %v, want finite", i, s)
				}
			}
		})
	}
}

func TestVoices_TriggerCoalescing(t *testing.T) {
	for _, vc := range allVoices {
		t.Run(vc.name, func(t *testing.T) {
			once := vc.newVoice(testRate)
			twice := vc.newVoice(testRate)
			once.Trig()
			twice.Trig()
			twice.Trig()
			if i := sameSamples(renderVoice(once, 2400), renderVoice(twice, 2400)); i >= 0 {
				t.Errorf("double Trig diverges at sample %d", i)
			}
		})
	}
}

func TestVoices_ProcessFlagMatchesTrig(t *testing.T) {
	for _, vc := range allVoices {
		t.Run(vc.name, func(t *testing.T) {
			a := vc.newVoice(testRate)
			b := vc.newVoice(testRate)
			a.Trig()
			a.Trig()
			outA := renderVoice(a, 2400)
			outB := make([]float32, 2400)
			outB[0] = b.Process(true)
			for i := 1; i < len(outB); i++ {
				outB[i] = b.Process(false)
			}
			if i := sameSamples(outA, outB); i >= 0 {
				t.Errorf("Process(true) diverges from Trig at sample %d", i)
			}
		})
	}
}

func TestVoices_Deterministic(t *testing.T) {
	for _, vc := range allVoices {
		t.Run(vc.name, func(t *testing.T) {
			run := func() []float32 {
				v := vc.newVoice(testRate)
				v.SetTone(0.3)
				v.SetDecay(0.6)
				v.SetAccent(1)
				out := make([]float32, 9600)
				for i := range out {
					out[i] = v.Process(i == 0 || i == 4000)
				}
				return out
			}
			if i := sameSamples(run(), run()); i >= 0 {
				t.Errorf("runs diverge at sample %d", i)
			}
		})
	}
}

// ============================================================================
// Clamping
// ============================================================================

func TestVoices_NormalisedSettersClamp(t *testing.T) {
	setters := []struct {
		name string
		set  func(Voice, float32)
	}{
		{"accent", Voice.SetAccent},
		{"tone", Voice.SetTone},
		{"decay", Voice.SetDecay},
	}
	inputs := []struct {
		raw, clamped float32
	}{
		{-0.5, 0},
		{1.7, 1},
		{nan32(), 0},
		{float32(math.Inf(1)), 1},
	}

	for _, vc := range allVoices {
		for _, s := range setters {
			for _, in := range inputs {
				a := vc.newVoice(testRate)
				b := vc.newVoice(testRate)
				s.set(a, in.raw)
				s.set(b, in.clamped)
				a.Trig()
				b.Trig()
				if i := sameSamples(renderVoice(a, 2048), renderVoice(b, 2048)); i >= 0 {
					t.Errorf("%s.Set%s(%v) differs from %v at sample %d", vc.name, s.name, in.raw, in.clamped, i)
				}
			}
		}
	}
}

func TestVoices_FreqFloors(t *testing.T) {
	for _, vc := range allVoices {
		for _, raw := range []float32{-100, 0, 1, nan32()} {
			a := vc.newVoice(testRate)
			b := vc.newVoice(testRate)
			a.SetFreq(raw)
			b.SetFreq(vc.minFreq)
			a.Trig()
			b.Trig()
			if i := sameSamples(renderVoice(a, 2048), renderVoice(b, 2048)); i >= 0 {
				t.Errorf("%s.SetFreq(%v) differs from floor %v at sample %d", vc.name, raw, vc.minFreq, i)
			}
		}
	}
}

// Voice-specific setters are reached through the kit so every kind is
// covered by one table.
func TestKit_ExtraSettersClamp(t *testing.T) {
	extras := []Param{
		PARAM_SWEEP, PARAM_SWEEP_DECAY, PARAM_DRIVE, PARAM_SNAPPY, PARAM_PITCH_DECAY,
		PARAM_DIRTINESS, PARAM_FM_AMOUNT, PARAM_FM_DECAY, PARAM_ATTACK_FM, PARAM_SELF_FM,
		PARAM_LEVEL,
	}
	for _, vc := range allVoices {
		for _, p := range extras {
			for _, in := range []struct{ raw, clamped float32 }{{-2, 0}, {3, 1}, {nan32(), 0}} {
				a := NewKit(testRate)
				b := NewKit(testRate)
				errA := a.Set(vc.kind, p, in.raw)
				errB := b.Set(vc.kind, p, in.clamped)
				if (errA == nil) != (errB == nil) {
					t.Fatalf("%v/%v: errors differ: %v vs %v", vc.kind, p, errA, errB)
				}
				if errA != nil {
					continue
				}
				a.Trig(vc.kind)
				b.Trig(vc.kind)
				bufA := make([]float32, 1024)
				bufB := make([]float32, 1024)
				a.Render(bufA)
				b.Render(bufB)
				if i := sameSamples(bufA, bufB); i >= 0 {
					t.Errorf("%v %v=%v differs from %v at sample %d", vc.kind, p, in.raw, in.clamped, i)
				}
			}
		}
	}
}

// ============================================================================
// BassDrum
// ============================================================================

func TestBassDrum_Scenario(t *testing.T) {
	bd := NewBassDrum(testRate)
	bd.SetDecay(0.5)
	bd.SetAccent(0.8)
	bd.SetTone(0)
	bd.SetDrive(0)

	s0 := bd.Process(true)
	if math.Abs(float64(s0)) > 0.11 {
		t.Errorf("sample 0 = %v, want near zero", s0)
	}
	for range 100 {
		bd.Process(false)
	}

	coeff := float64(bd.ampEnv.Coeff())
	want := 0.86 * math.Pow(coeff, 101)
	got := float64(bd.ampEnv.Value())
	if math.Abs(got-want) > want*1e-4 {
		t.Errorf("amp envelope after 101 samples = %v, want %v", got, want)
	}
	if wantCoeff := math.Exp(-1 / (float64(Map01(0.5, BD_DECAY_MIN, BD_DECAY_MAX)) * testRate)); math.Abs(coeff-wantCoeff) > 1e-6 {
		t.Errorf("amp coeff = %v, want %v", coeff, wantCoeff)
	}
}

func TestBassDrum_SweepStartsHigh(t *testing.T) {
	phaseAfter := func(sweep float32) float32 {
		bd := NewBassDrum(testRate)
		bd.SetSweep(sweep)
		bd.SetSweepDecay(1)
		bd.Trig()
		for range 100 {
			bd.Process(false)
		}
		return bd.osc.Phase()
	}
	flat, swept := phaseAfter(0), phaseAfter(1)
	if swept <= 2*flat {
		t.Errorf("phase after 100 samples: swept %v, flat %v, want swept > 2x flat", swept, flat)
	}
}

func TestBassDrum_DriveBounded(t *testing.T) {
	bd := NewBassDrum(testRate)
	bd.SetDrive(1)
	bd.SetAccent(1)
	bd.SetTone(1)
	bd.Trig()
	if p := peakAbs(renderVoice(bd, testRate/2)); p > 1 {
		t.Errorf("driven peak = %v, want <= 1", p)
	}
}

func TestBassDrum_SustainHoldsBody(t *testing.T) {
	bd := NewBassDrum(testRate)
	bd.SetDecay(0)
	bd.SetSustain(true)
	bd.Trig()
	renderVoice(bd, testRate)
	if v := bd.ampEnv.Value(); v != accentGain(0.8) {
		t.Errorf("held amp envelope = %v, want %v", v, accentGain(0.8))
	}
}

// ============================================================================
// Snare / Rimshot / Tom
// ============================================================================

func TestSnareDrum_SnappyZeroIsTonal(t *testing.T) {
	a := NewSnareDrum(testRate)
	b := NewSnareDrum(testRate)
	a.SetSnappy(0)
	b.SetSnappy(0)
	b.Seed(0xDEAD)
	a.Trig()
	b.Trig()
	if i := sameSamples(renderVoice(a, 4800), renderVoice(b, 4800)); i >= 0 {
		t.Errorf("snappy 0 output depends on the noise seed (sample %d)", i)
	}
}

func TestSnareDrum_SnappyStretchesNoise(t *testing.T) {
	sd := NewSnareDrum(testRate)
	sd.SetDecay(0.5)
	sd.SetSnappy(0)
	short := sd.noiseEnv.Coeff()
	sd.SetSnappy(1)
	long := sd.noiseEnv.Coeff()
	if long <= short {
		t.Errorf("noise coeff %v at snappy 1, want > %v at snappy 0", long, short)
	}
}

func TestRimshot_ToneZeroIsTonal(t *testing.T) {
	a := NewRimshot(testRate)
	b := NewRimshot(testRate)
	a.SetTone(0)
	b.SetTone(0)
	b.Seed(0xBEEF)
	a.Trig()
	b.Trig()
	if i := sameSamples(renderVoice(a, 4800), renderVoice(b, 4800)); i >= 0 {
		t.Errorf("tone 0 output depends on the noise seed (sample %d)", i)
	}
}

func TestTom_DecayLengthensNote(t *testing.T) {
	energyAt := func(decay float32) float64 {
		tom := NewTom(testRate)
		tom.SetDecay(decay)
		tom.Trig()
		out := renderVoice(tom, testRate/2)
		var e float64
		for _, s := range out[testRate/4:] {
			e += float64(s) * float64(s)
		}
		return e
	}
	if short, long := energyAt(0), energyAt(1); long <= short {
		t.Errorf("late energy %v at decay 1, want > %v at decay 0", long, short)
	}
}

// ============================================================================
// Metallic voices
// ============================================================================

func TestHiHat_OpenRingsLongerThanClosed(t *testing.T) {
	closed := NewCloseHihat(testRate)
	open := NewOpenHihat(testRate)
	closed.Trig()
	open.Trig()
	c := renderVoice(closed, testRate/2)
	o := renderVoice(open, testRate/2)
	if pc, po := peakAbs(c[testRate/5:]), peakAbs(o[testRate/5:]); po <= pc {
		t.Errorf("open tail peak %v, want > closed tail peak %v", po, pc)
	}
}

func TestHiHat_SharedCoreDiffersOnlyInRanges(t *testing.T) {
	var core HiHatCore
	core.Init(testRate, CLOSED_HAT_DECAY_MIN, CLOSED_HAT_DECAY_MAX, CLOSED_HAT_FREQ)
	closed := NewCloseHihat(testRate)
	core.Trig()
	closed.Trig()
	out := make([]float32, 4800)
	for i := range out {
		out[i] = core.Process(false)
	}
	if i := sameSamples(out, renderVoice(closed, 4800)); i >= 0 {
		t.Errorf("CloseHihat diverges from its core configuration at sample %d", i)
	}
}

func TestCymbal_SustainHolds(t *testing.T) {
	c := NewCymbal(testRate)
	c.SetSustain(true)
	c.Trig()
	out := renderVoice(c, testRate*3)
	if p := peakAbs(out[len(out)-4800:]); p == 0 {
		t.Error("held cymbal went silent")
	}
}

// ============================================================================
// Kick variants
// ============================================================================

func TestAnalogBassDrum_DecayKnobClamps(t *testing.T) {
	k := NewAnalogBassDrum(testRate)
	k.SetDecay(5)
	high := k.ampEnv.Coeff()
	k.SetDecay(1)
	if k.ampEnv.Coeff() != high {
		t.Errorf("SetDecay(5) coeff %v, want SetDecay(1) coeff %v", high, k.ampEnv.Coeff())
	}
	want := DecayCoeff(Map01(1, KICK_AMP_DECAY_MIN, KICK_AMP_DECAY_MAX), testRate)
	if high != want {
		t.Errorf("full decay coeff = %v, want %v", high, want)
	}
}

func TestAnalogBassDrum_OwnedEnvelopeDecays(t *testing.T) {
	k := NewAnalogBassDrum(testRate)
	k.SetDecay(0)
	k.Trig()
	out := renderVoice(k, testRate)
	if peakAbs(out[:4800]) == 0 {
		t.Fatal("no attack")
	}
	if p := peakAbs(out[testRate/2:]); p > 1e-6 {
		t.Errorf("tail peak %v after a 20 ms envelope, want ~0", p)
	}
}

func TestBassDrumModel_Selects(t *testing.T) {
	if _, ok := NewBassDrumModel(AnalogModel, testRate).(*AnalogBassDrum); !ok {
		t.Error("AnalogModel did not build *AnalogBassDrum")
	}
	if _, ok := NewBassDrumModel(SyntheticModel, testRate).(*SyntheticBassDrum); !ok {
		t.Error("SyntheticModel did not build *SyntheticBassDrum")
	}
	for _, m := range []BassDrumModel{AnalogModel, SyntheticModel} {
		got, err := ParseBassDrumModel(m.String())
		if err != nil || got != m {
			t.Errorf("ParseBassDrumModel(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseBassDrumModel("tr808"); err == nil {
		t.Error("ParseBassDrumModel accepted an unknown name")
	}
}
