// drum_kit.go - One instance of every voice, mixed to a mono output

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
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownVoice     = errors.New("unknown voice")
	ErrUnknownParam     = errors.New("unknown parameter")
	ErrUnsupportedParam = errors.New("parameter not supported by voice")
	ErrNoSustain        = errors.New("voice has no sustain")
)

// VoiceKind identifies a slot in the kit.
type VoiceKind int

const (
	KIND_BASS_DRUM VoiceKind = iota
	KIND_SNARE
	KIND_CLAP
	KIND_RIMSHOT
	KIND_TOM
	KIND_CLOSED_HAT
	KIND_OPEN_HAT
	KIND_CYMBAL
	KIND_ANALOG_KICK
	KIND_SYNTH_KICK

	NUM_VOICE_KINDS
)

var voiceKindNames = [NUM_VOICE_KINDS]string{
	"kick", "snare", "clap", "rimshot", "tom",
	"closedhat", "openhat", "cymbal", "analogkick", "synthkick",
}

func (k VoiceKind) String() string {
	if k < 0 || k >= NUM_VOICE_KINDS {
		return fmt.Sprintf("VoiceKind(%d)", int(k))
	}
	return voiceKindNames[k]
}

// ParseVoiceKind accepts the names returned by String, case-insensitively.
func ParseVoiceKind(name string) (VoiceKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range voiceKindNames {
		if n == name {
			return VoiceKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVoice, name)
}

// Param names a settable control. Accent, tone, decay, freq and level apply
// to every voice; the rest only to the voices that have them.
type Param int

const (
	PARAM_ACCENT Param = iota
	PARAM_TONE
	PARAM_DECAY
	PARAM_FREQ
	PARAM_SWEEP
	PARAM_SWEEP_DECAY
	PARAM_DRIVE
	PARAM_SNAPPY
	PARAM_PITCH_DECAY
	PARAM_DIRTINESS
	PARAM_FM_AMOUNT
	PARAM_FM_DECAY
	PARAM_ATTACK_FM
	PARAM_SELF_FM
	PARAM_LEVEL

	NUM_PARAMS
)

var paramNames = [NUM_PARAMS]string{
	"accent", "tone", "decay", "freq", "sweep", "sweepdecay", "drive", "snappy",
	"pitchdecay", "dirtiness", "fmamount", "fmdecay", "attackfm", "selffm", "level",
}

func (p Param) String() string {
	if p < 0 || p >= NUM_PARAMS {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

func ParseParam(name string) (Param, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range paramNames {
		if n == name {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// Optional setters, matched by type assertion in Kit.Set.
type (
	sweepSetter      interface{ SetSweep(float32) }
	sweepDecaySetter interface{ SetSweepDecay(float32) }
	driveSetter      interface{ SetDrive(float32) }
	snappySetter     interface{ SetSnappy(float32) }
	pitchDecaySetter interface{ SetPitchDecay(float32) }
	dirtinessSetter  interface{ SetDirtiness(float32) }
	fmAmountSetter   interface{ SetFmEnvelopeAmount(float32) }
	fmDecaySetter    interface{ SetFmEnvelopeDecay(float32) }
	attackFmSetter   interface{ SetAttackFmAmount(float32) }
	selfFmSetter     interface{ SetSelfFmAmount(float32) }
)

const (
	KIT_DEFAULT_LEVEL  = 0.8
	KIT_DEFAULT_MASTER = 0.7
)

// Kit owns one voice per kind. Trig, Set, SetSustain and SetMaster may be
// called from a control goroutine while Process or Render runs on the audio
// goroutine; Init and NewKit must not overlap with either.
type Kit struct {
	sampleRate float32
	voices     [NUM_VOICE_KINDS]Voice
	levels     [NUM_VOICE_KINDS]param
	master     param
}

func NewKit(sampleRate float32) *Kit {
	k := &Kit{}
	k.Init(sampleRate)
	return k
}

func (k *Kit) Init(sampleRate float32) {
	k.sampleRate = sampleRate
	k.voices = [NUM_VOICE_KINDS]Voice{
		KIND_BASS_DRUM:   NewBassDrum(sampleRate),
		KIND_SNARE:       NewSnareDrum(sampleRate),
		KIND_CLAP:        NewHandClap(sampleRate),
		KIND_RIMSHOT:     NewRimshot(sampleRate),
		KIND_TOM:         NewTom(sampleRate),
		KIND_CLOSED_HAT:  NewCloseHihat(sampleRate),
		KIND_OPEN_HAT:    NewOpenHihat(sampleRate),
		KIND_CYMBAL:      NewCymbal(sampleRate),
		KIND_ANALOG_KICK: NewBassDrumModel(AnalogModel, sampleRate),
		KIND_SYNTH_KICK:  NewBassDrumModel(SyntheticModel, sampleRate),
	}
	for i := range k.levels {
		k.levels[i].Store(KIT_DEFAULT_LEVEL)
	}
	k.master.Store(KIT_DEFAULT_MASTER)
}

func (k *Kit) SampleRate() float32 { return k.sampleRate }

// Voice returns the voice in the given slot for direct control.
func (k *Kit) Voice(kind VoiceKind) (Voice, error) {
	if kind < 0 || kind >= NUM_VOICE_KINDS {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVoice, kind)
	}
	return k.voices[kind], nil
}

func (k *Kit) Trig(kind VoiceKind) error {
	v, err := k.Voice(kind)
	if err != nil {
		return err
	}
	v.Trig()
	return nil
}

func (k *Kit) Set(kind VoiceKind, p Param, value float32) error {
	v, err := k.Voice(kind)
	if err != nil {
		return err
	}

	ok := true
	switch p {
	case PARAM_ACCENT:
		v.SetAccent(value)
	case PARAM_TONE:
		v.SetTone(value)
	case PARAM_DECAY:
		v.SetDecay(value)
	case PARAM_FREQ:
		// The clap is unpitched.
		ok = kind != KIND_CLAP
		if ok {
			v.SetFreq(value)
		}
	case PARAM_LEVEL:
		k.levels[kind].Store(Clamp01(value))
	case PARAM_SWEEP:
		ok = apply[sweepSetter](v, func(s sweepSetter) { s.SetSweep(value) })
	case PARAM_SWEEP_DECAY:
		ok = apply[sweepDecaySetter](v, func(s sweepDecaySetter) { s.SetSweepDecay(value) })
	case PARAM_DRIVE:
		ok = apply[driveSetter](v, func(s driveSetter) { s.SetDrive(value) })
	case PARAM_SNAPPY:
		ok = apply[snappySetter](v, func(s snappySetter) { s.SetSnappy(value) })
	case PARAM_PITCH_DECAY:
		ok = apply[pitchDecaySetter](v, func(s pitchDecaySetter) { s.SetPitchDecay(value) })
	case PARAM_DIRTINESS:
		ok = apply[dirtinessSetter](v, func(s dirtinessSetter) { s.SetDirtiness(value) })
	case PARAM_FM_AMOUNT:
		ok = apply[fmAmountSetter](v, func(s fmAmountSetter) { s.SetFmEnvelopeAmount(value) })
	case PARAM_FM_DECAY:
		ok = apply[fmDecaySetter](v, func(s fmDecaySetter) { s.SetFmEnvelopeDecay(value) })
	case PARAM_ATTACK_FM:
		ok = apply[attackFmSetter](v, func(s attackFmSetter) { s.SetAttackFmAmount(value) })
	case PARAM_SELF_FM:
		ok = apply[selfFmSetter](v, func(s selfFmSetter) { s.SetSelfFmAmount(value) })
	default:
		return fmt.Errorf("%w: %v", ErrUnknownParam, p)
	}
	if !ok {
		return fmt.Errorf("%w: %v has no %v", ErrUnsupportedParam, kind, p)
	}
	return nil
}

func apply[T any](v Voice, set func(T)) bool {
	s, ok := v.(T)
	if ok {
		set(s)
	}
	return ok
}

// Level reports the mix level of one slot.
func (k *Kit) Level(kind VoiceKind) float32 {
	if kind < 0 || kind >= NUM_VOICE_KINDS {
		return 0
	}
	return k.levels[kind].Load()
}

func (k *Kit) SetSustain(kind VoiceKind, held bool) error {
	v, err := k.Voice(kind)
	if err != nil {
		return err
	}
	s, ok := v.(Sustainer)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNoSustain, kind)
	}
	s.SetSustain(held)
	return nil
}

func (k *Kit) SetMaster(gain float32) { k.master.Store(Clamp01(gain)) }

// Process advances every voice one sample and returns the soft-clipped mix.
func (k *Kit) Process() float32 {
	var mix float32
	for i, v := range k.voices {
		mix += v.Process(false) * k.levels[i].Load()
	}
	return SoftClip(mix * k.master.Load())
}

// Render fills dst with consecutive Process output.
func (k *Kit) Render(dst []float32) {
	for i := range dst {
		dst[i] = k.Process()
	}
}
