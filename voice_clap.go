// voice_clap.go - Triple-burst handclap

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
	CLAP_BURST_SECONDS = 0.008
	CLAP_GAP_SECONDS   = 0.007
	CLAP_BURST_DECAY   = 0.01
	CLAP_TAIL_FLOOR    = 0.0005 // Tail level at which the voice goes idle

	CLAP_NOISE_CUT_MIN = 600.0
	CLAP_NOISE_CUT_MAX = 6000.0
	CLAP_TAIL_MIN      = 0.05
	CLAP_TAIL_MAX      = 0.8
)

// ClapStage is the position of the handclap in its burst sequence.
type ClapStage int

const (
	CLAP_IDLE ClapStage = iota
	CLAP_BURST1
	CLAP_GAP1
	CLAP_BURST2
	CLAP_GAP2
	CLAP_BURST3
	CLAP_GAP3
	CLAP_TAIL
)

var clapStageNames = [...]string{"idle", "burst1", "gap1", "burst2", "gap2", "burst3", "gap3", "tail"}

func (s ClapStage) String() string {
	if s < 0 || int(s) >= len(clapStageNames) {
		return "unknown"
	}
	return clapStageNames[s]
}

// HandClap plays three short decaying noise bursts separated by silent gaps,
// then a longer decaying tail, all through one noise high-pass. A trigger at
// any point restarts the sequence from the first burst.
type HandClap struct {
	sampleRate float32
	trig       trigFlag

	stage        ClapStage
	counter      int
	burstSamples int
	gapSamples   int

	burstEnv   float32
	burstCoeff float32
	tailEnv    float32

	accent       param
	tone         param
	decay        param
	tailCoeff    param
	noiseHPCoeff param

	noiseHP OnePoleFilter
	noise   WhiteNoise
}

func NewHandClap(sampleRate float32) *HandClap {
	c := &HandClap{}
	c.Init(sampleRate)
	return c
}

func (c *HandClap) Init(sampleRate float32) {
	c.sampleRate = sampleRate
	c.trig.Reset()
	c.stage = CLAP_IDLE
	c.counter = 0
	c.burstEnv = 0
	c.tailEnv = 0

	c.noiseHP.Reset()
	c.noise.Seed(SEED_CLAP)

	c.burstCoeff = DecayCoeff(CLAP_BURST_DECAY, sampleRate)
	c.burstSamples = int(float64(sampleRate) * CLAP_BURST_SECONDS)
	c.gapSamples = int(float64(sampleRate) * CLAP_GAP_SECONDS)

	c.SetDecay(0.5)
	c.SetTone(0.6)
	c.SetAccent(0.8)
}

func (c *HandClap) Process(trigger bool) float32 {
	if c.trig.Consume(trigger) {
		c.start()
	}

	if c.stage == CLAP_IDLE {
		return 0
	}

	hp := c.noiseHP.ProcessHP(c.noise.Process(), c.noiseHPCoeff.Load())

	var out float32
	switch c.stage {
	case CLAP_BURST1, CLAP_BURST2, CLAP_BURST3:
		out = hp * c.burstEnv * c.accent.Load()
		c.burstEnv *= c.burstCoeff
		c.counter++
		if c.counter >= c.burstSamples {
			c.advance()
		}
	case CLAP_GAP1, CLAP_GAP2, CLAP_GAP3:
		c.counter++
		if c.counter >= c.gapSamples {
			c.advance()
		}
	case CLAP_TAIL:
		out = hp * c.tailEnv * c.accent.Load()
		c.tailEnv *= c.tailCoeff.Load()
		if c.tailEnv < CLAP_TAIL_FLOOR {
			c.stage = CLAP_IDLE
		}
	}
	return out
}

func (c *HandClap) start() {
	c.stage = CLAP_BURST1
	c.counter = 0
	c.burstEnv = 1
}

func (c *HandClap) advance() {
	c.counter = 0
	switch c.stage {
	case CLAP_BURST1:
		c.stage = CLAP_GAP1
	case CLAP_GAP1:
		c.stage = CLAP_BURST2
		c.burstEnv = 1
	case CLAP_BURST2:
		c.stage = CLAP_GAP2
	case CLAP_GAP2:
		c.stage = CLAP_BURST3
		c.burstEnv = 1
	case CLAP_BURST3:
		c.stage = CLAP_GAP3
	case CLAP_GAP3:
		c.stage = CLAP_TAIL
		c.tailEnv = 1
	default:
		c.stage = CLAP_IDLE
	}
}

func (c *HandClap) Trig() { c.trig.Set() }

// Stage reports the current sequence position. Audio goroutine only.
func (c *HandClap) Stage() ClapStage { return c.stage }

func (c *HandClap) Seed(seed uint32) { c.noise.Seed(seed) }

func (c *HandClap) SetAccent(accent float32) { c.accent.Store(Clamp01(accent)) }

// SetFreq is accepted for interface compatibility; the clap is unpitched.
func (c *HandClap) SetFreq(float32) {}

func (c *HandClap) SetTone(tone float32) {
	tone = Clamp01(tone)
	c.tone.Store(tone)
	c.noiseHPCoeff.Store(OnePoleCoeff(Map01(tone, CLAP_NOISE_CUT_MIN, CLAP_NOISE_CUT_MAX), c.sampleRate))
}

// SetDecay sets the length of the tail after the third burst.
func (c *HandClap) SetDecay(decay float32) {
	decay = Clamp01(decay)
	c.decay.Store(decay)
	c.tailCoeff.Store(DecayCoeff(Map01(decay, CLAP_TAIL_MIN, CLAP_TAIL_MAX), c.sampleRate))
}
