// drum_voice.go - Common control surface for all percussion voices

package drumsynth

// Voice is implemented by every drum voice.
//
// Init must run before any other method and again whenever the sample rate
// changes. Process is called once per output sample from the audio goroutine;
// Trig and the setters may be called concurrently from one control goroutine.
// Normalised setters clamp to [0, 1], SetFreq floors to a per-voice minimum.
type Voice interface {
	Init(sampleRate float32)
	// Trig requests a restart on the next Process call. Repeated calls before
	// that Process collapse into one restart.
	Trig()
	// Process advances one sample. trigger == true behaves as if Trig had been
	// called immediately before.
	Process(trigger bool) float32
	SetAccent(accent float32)
	SetTone(tone float32)
	SetDecay(decay float32)
	SetFreq(freqHz float32)
}

// Sustainer is implemented by voices whose envelopes can be held.
type Sustainer interface {
	SetSustain(held bool)
}

// Seeder is implemented by voices that own a white-noise generator.
type Seeder interface {
	Seed(seed uint32)
}

// Per-voice default noise seeds, applied by Init.
const (
	SEED_BASS_DRUM = 0x0BD0
	SEED_SNARE     = 0x05D0
	SEED_CLAP      = 0x0C1A
	SEED_RIMSHOT   = 0x0B1E
	SEED_SYNTH_BD  = 0x0FB0
)
