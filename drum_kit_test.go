// drum_kit_test.go - Kit dispatch, naming and mixing

package drumsynth

import (
	"errors"
	"testing"
)

// ============================================================================
// Names
// ============================================================================

func TestVoiceKind_RoundTrip(t *testing.T) {
	for k := VoiceKind(0); k < NUM_VOICE_KINDS; k++ {
		got, err := ParseVoiceKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseVoiceKind(%q) = %v, %v, want %v", k.String(), got, err, k)
		}
	}
	if got, err := ParseVoiceKind("  Snare "); err != nil || got != KIND_SNARE {
		t.Errorf("ParseVoiceKind is not case/space tolerant: %v, %v", got, err)
	}
	if _, err := ParseVoiceKind("cowbell"); !errors.Is(err, ErrUnknownVoice) {
		t.Errorf("ParseVoiceKind(cowbell) error = %v, want ErrUnknownVoice", err)
	}
	if s := VoiceKind(42).String(); s != "VoiceKind(42)" {
		t.Errorf("VoiceKind(42).String() = %q", s)
	}
}

func TestParam_NamesRoundTrip(t *testing.T) {
	for p := Param(0); p < NUM_PARAMS; p++ {
		got, err := ParseParam(p.String())
		if err != nil || got != p {
			t.Errorf("ParseParam(%q) = %v, %v, want %v", p.String(), got, err, p)
		}
	}
	if _, err := ParseParam("wobble"); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("ParseParam(wobble) error = %v, want ErrUnknownParam", err)
	}
}

// ============================================================================
// Dispatch
// ============================================================================

func TestKit_SetErrors(t *testing.T) {
	k := NewKit(testRate)
	tests := []struct {
		name string
		kind VoiceKind
		p    Param
		want error
	}{
		{"unknown voice", VoiceKind(-1), PARAM_TONE, ErrUnknownVoice},
		{"voice past end", NUM_VOICE_KINDS, PARAM_TONE, ErrUnknownVoice},
		{"unknown param", KIND_SNARE, Param(99), ErrUnknownParam},
		{"snappy on kick", KIND_BASS_DRUM, PARAM_SNAPPY, ErrUnsupportedParam},
		{"drive on clap", KIND_CLAP, PARAM_DRIVE, ErrUnsupportedParam},
		{"dirtiness on analog", KIND_ANALOG_KICK, PARAM_DIRTINESS, ErrUnsupportedParam},
		{"freq on clap", KIND_CLAP, PARAM_FREQ, ErrUnsupportedParam},
		{"freq on snare", KIND_SNARE, PARAM_FREQ, nil},
		{"sweep on kick", KIND_BASS_DRUM, PARAM_SWEEP, nil},
		{"snappy on snare", KIND_SNARE, PARAM_SNAPPY, nil},
		{"pitch decay on tom", KIND_TOM, PARAM_PITCH_DECAY, nil},
		{"fm amount on synth", KIND_SYNTH_KICK, PARAM_FM_AMOUNT, nil},
		{"self fm on analog", KIND_ANALOG_KICK, PARAM_SELF_FM, nil},
		{"level on cymbal", KIND_CYMBAL, PARAM_LEVEL, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := k.Set(tc.kind, tc.p, 0.5)
			if tc.want == nil {
				if err != nil {
					t.Errorf("Set = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Set = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestKit_SetSustain(t *testing.T) {
	k := NewKit(testRate)
	for _, kind := range []VoiceKind{KIND_CLAP, KIND_RIMSHOT} {
		if err := k.SetSustain(kind, true); !errors.Is(err, ErrNoSustain) {
			t.Errorf("SetSustain(%v) = %v, want ErrNoSustain", kind, err)
		}
	}
	if err := k.SetSustain(KIND_OPEN_HAT, true); err != nil {
		t.Errorf("SetSustain(openhat) = %v, want nil", err)
	}
	if err := k.Trig(NUM_VOICE_KINDS); !errors.Is(err, ErrUnknownVoice) {
		t.Errorf("Trig(out of range) = %v, want ErrUnknownVoice", err)
	}
}

func TestKit_SetForwardsToVoice(t *testing.T) {
	k := NewKit(testRate)
	if err := k.Set(KIND_SNARE, PARAM_SNAPPY, 0.2); err != nil {
		t.Fatal(err)
	}
	v, _ := k.Voice(KIND_SNARE)
	if got := v.(*SnareDrum).snappy.Load(); got != 0.2 {
		t.Errorf("snare snappy = %v, want 0.2", got)
	}
	if err := k.Set(KIND_TOM, PARAM_LEVEL, 0.3); err != nil {
		t.Fatal(err)
	}
	if got := k.Level(KIND_TOM); got != 0.3 {
		t.Errorf("tom level = %v, want 0.3", got)
	}
}

// ============================================================================
// Mixing
// ============================================================================

func TestKit_SilentUntilTriggered(t *testing.T) {
	k := NewKit(testRate)
	buf := make([]float32, 4800)
	k.Render(buf)
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("sample %d = %v, want 0", i, s)
		}
	}
}

func TestKit_LevelZeroMutes(t *testing.T) {
	k := NewKit(testRate)
	if err := k.Set(KIND_SNARE, PARAM_LEVEL, 0); err != nil {
		t.Fatal(err)
	}
	k.Trig(KIND_SNARE)
	buf := make([]float32, 4800)
	k.Render(buf)
	if p := peakAbs(buf); p != 0 {
		t.Errorf("muted snare peak = %v, want 0", p)
	}
}

func TestKit_MixIsBounded(t *testing.T) {
	k := NewKit(testRate)
	k.SetMaster(1)
	for kind := VoiceKind(0); kind < NUM_VOICE_KINDS; kind++ {
		k.Set(kind, PARAM_LEVEL, 1)
		k.Set(kind, PARAM_ACCENT, 1)
		k.Trig(kind)
	}
	buf := make([]float32, testRate/2)
	k.Render(buf)
	if p := peakAbs(buf); p == 0 || p > 1 {
		t.Errorf("full kit peak = %v, want in (0, 1]", p)
	}
}

func TestKit_MatchesSingleVoice(t *testing.T) {
	k := NewKit(testRate)
	k.SetMaster(1)
	if err := k.Set(KIND_TOM, PARAM_LEVEL, 1); err != nil {
		t.Fatal(err)
	}
	tom := NewTom(testRate)

	k.Trig(KIND_TOM)
	tom.Trig()
	for i := range 4800 {
		got := k.Process()
		want := SoftClip(tom.Process(false))
		if got != want {
			t.Fatalf("sample %d: kit %v, lone tom %v", i, got, want)
		}
	}
}
