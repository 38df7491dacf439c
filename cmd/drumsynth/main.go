// main.go - drumsynth command-line host

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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/intuitionamiga/drumsynth"
)

const VERSION = "0.4.0"

const (
	DEFAULT_RATE    = 48000
	DEFAULT_SECONDS = 1.5
	DEFAULT_WIDTH   = 800
	DEFAULT_HEIGHT  = 240
	DEFAULT_TAIL    = 1.0
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	args := os.Args[2:]
	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(args)
	case "render":
		err = runRender(args)
	case "script":
		err = runScript(args)
	case "plot":
		err = runPlot(args)
	case "version":
		fmt.Printf("drumsynth %s\n", VERSION)
	case "help", "-h", "-help", "--help":
		usage(os.Stdout)
	default:
		err = fmt.Errorf("unknown command %q", os.Args[1])
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: drumsynth <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  play     live keyboard pad (1-9,0 trigger, o/c/k hold, space release, q quits)")
	fmt.Fprintln(w, "  render   render one voice hit to WAV")
	fmt.Fprintln(w, "  script   render a Lua pattern script to WAV")
	fmt.Fprintln(w, "  plot     draw one voice hit as a PNG waveform")
	fmt.Fprintln(w, "  version  print the version")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Voices: %s\n", strings.Join(voiceNames(), ", "))
}

func voiceNames() []string {
	names := make([]string, 0, drumsynth.NUM_VOICE_KINDS)
	for k := drumsynth.VoiceKind(0); k < drumsynth.NUM_VOICE_KINDS; k++ {
		names = append(names, k.String())
	}
	return names
}

// newFlagSet builds a subcommand flag set that prints its own usage on -h.
func newFlagSet(name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		fs.SetOutput(os.Stdout)
		fmt.Printf("Usage: drumsynth %s %s\n", name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

func runPlay(args []string) error {
	fs := newFlagSet("play", "[-rate 48000]")
	rate := fs.Int("rate", DEFAULT_RATE, "output sample rate")
	master := fs.Float64("master", drumsynth.KIT_DEFAULT_MASTER, "master gain 0..1")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", *rate)
	}

	kit := drumsynth.NewKit(float32(*rate))
	keys := newKeyRouter(kit, float32(*master))

	player, err := NewOtoPlayer(*rate)
	if err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	player.SetupPlayer(kit)
	player.Start()
	defer player.Close()

	fmt.Printf("drumsynth %s at %d Hz\n", VERSION, *rate)
	for k := drumsynth.VoiceKind(0); k < drumsynth.NUM_VOICE_KINDS; k++ {
		fmt.Printf("  %d  %v\n", (int(k)+1)%10, k)
	}
	fmt.Println("  o/c/k hold openhat/cymbal/kick, space releases, +/- master, q quits")

	host := NewTerminalHost(keys)
	if err := host.Start(); err != nil {
		return err
	}
	defer host.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-keys.Quit():
	case <-sigCh:
	}
	return nil
}

func runRender(args []string) error {
	fs := newFlagSet("render", "-voice clap [-rate] [-seconds] [-o out.wav] [-set param=value ...]")
	voice := fs.String("voice", "kick", "voice to render")
	rate := fs.Int("rate", DEFAULT_RATE, "output sample rate")
	seconds := fs.Float64("seconds", DEFAULT_SECONDS, "length of the render")
	out := fs.String("o", "", "output WAV (default <voice>.wav)")
	var settings paramList
	fs.Var(&settings, "set", "voice parameter as param=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := drumsynth.ParseVoiceKind(*voice)
	if err != nil {
		return err
	}
	samples, err := renderHit(kind, *rate, *seconds, settings)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = kind.String() + ".wav"
	}
	if err := writeWAV(path, samples, *rate); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d samples)\n", path, len(samples))
	return nil
}

func runScript(args []string) error {
	fs := newFlagSet("script", "[-rate] [-bars 1] [-bpm n] -o out.wav pattern.lua")
	rate := fs.Int("rate", DEFAULT_RATE, "output sample rate")
	bars := fs.Int("bars", 1, "number of bars to render")
	bpm := fs.Float64("bpm", 0, "tempo override (0 keeps the script's)")
	tail := fs.Float64("tail", DEFAULT_TAIL, "seconds of ring-out after the last bar")
	out := fs.String("o", "", "output WAV (default <script>.wav)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("script: expected exactly one Lua file")
	}
	if *rate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", *rate)
	}

	src := fs.Arg(0)
	seq, err := LoadScript(src)
	if err != nil {
		return err
	}
	if *bpm != 0 {
		if err := seq.SetBPM(*bpm); err != nil {
			return err
		}
	}

	kit := drumsynth.NewKit(float32(*rate))
	samples, err := seq.Render(kit, *bars, max(*tail, 0))
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = strings.TrimSuffix(src, ".lua") + ".wav"
	}
	if err := writeWAV(path, samples, *rate); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bars at %g bpm)\n", path, *bars, seq.BPM)
	return nil
}

func runPlot(args []string) error {
	fs := newFlagSet("plot", "-voice closedhat [-width] [-height] [-seconds] [-o out.png] [-set param=value ...]")
	voice := fs.String("voice", "kick", "voice to plot")
	rate := fs.Int("rate", DEFAULT_RATE, "sample rate")
	seconds := fs.Float64("seconds", DEFAULT_SECONDS, "length of the plot")
	width := fs.Int("width", DEFAULT_WIDTH, "image width")
	height := fs.Int("height", DEFAULT_HEIGHT, "image height")
	out := fs.String("o", "", "output PNG (default <voice>.png)")
	var settings paramList
	fs.Var(&settings, "set", "voice parameter as param=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("bad image size %dx%d", *width, *height)
	}

	kind, err := drumsynth.ParseVoiceKind(*voice)
	if err != nil {
		return err
	}
	samples, err := renderHit(kind, *rate, *seconds, settings)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%v  %g s @ %d Hz", kind, *seconds, *rate)
	if len(settings) > 0 {
		caption += "  " + settings.String()
	}
	path := *out
	if path == "" {
		path = kind.String() + ".png"
	}
	if err := writePNG(path, plotWaveform(samples, *width, *height, caption)); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
