// keys.go - Keyboard layout for live play

package main

import (
	"slices"
	"sync"

	"github.com/intuitionamiga/drumsynth"
)

const (
	KEY_CTRL_C = 0x03
	KEY_ESC    = 0x1B

	MASTER_STEP = 0.05
)

// KeyAction is what a single keypress asks the kit to do.
type KeyAction int

const (
	ACTION_NONE KeyAction = iota
	ACTION_TRIG
	ACTION_HOLD
	ACTION_RELEASE
	ACTION_LOUDER
	ACTION_SOFTER
	ACTION_QUIT
)

// Digits 1-9 and 0 trigger the ten voices in kit order. o, c and k trigger
// the open hat, cymbal and kick with sustain held until space is pressed.
func decodeKey(b byte) (KeyAction, drumsynth.VoiceKind) {
	switch {
	case b >= '1' && b <= '9':
		return ACTION_TRIG, drumsynth.VoiceKind(b - '1')
	case b == '0':
		return ACTION_TRIG, drumsynth.VoiceKind(9)
	}
	switch b {
	case 'o':
		return ACTION_HOLD, drumsynth.KIND_OPEN_HAT
	case 'c':
		return ACTION_HOLD, drumsynth.KIND_CYMBAL
	case 'k':
		return ACTION_HOLD, drumsynth.KIND_BASS_DRUM
	case ' ':
		return ACTION_RELEASE, 0
	case '+', '=':
		return ACTION_LOUDER, 0
	case '-', '_':
		return ACTION_SOFTER, 0
	case 'q', KEY_CTRL_C, KEY_ESC:
		return ACTION_QUIT, 0
	}
	return ACTION_NONE, 0
}

// keyRouter applies decoded keys to a kit. It runs on the stdin goroutine
// only, so master and held need no locking.
type keyRouter struct {
	kit      *drumsynth.Kit
	master   float32
	held     []drumsynth.VoiceKind
	quit     chan struct{}
	quitOnce sync.Once
}

func newKeyRouter(kit *drumsynth.Kit, master float32) *keyRouter {
	kit.SetMaster(master)
	return &keyRouter{kit: kit, master: master, quit: make(chan struct{})}
}

// Quit is closed once the quit key has been pressed.
func (r *keyRouter) Quit() <-chan struct{} { return r.quit }

func (r *keyRouter) routeKey(b byte) {
	action, kind := decodeKey(b)
	switch action {
	case ACTION_TRIG:
		_ = r.kit.Trig(kind)
	case ACTION_HOLD:
		if r.kit.SetSustain(kind, true) != nil {
			return
		}
		if !slices.Contains(r.held, kind) {
			r.held = append(r.held, kind)
		}
		_ = r.kit.Trig(kind)
	case ACTION_RELEASE:
		for _, k := range r.held {
			_ = r.kit.SetSustain(k, false)
		}
		r.held = r.held[:0]
	case ACTION_LOUDER:
		r.master = drumsynth.Clamp01(r.master + MASTER_STEP)
		r.kit.SetMaster(r.master)
	case ACTION_SOFTER:
		r.master = drumsynth.Clamp01(r.master - MASTER_STEP)
		r.kit.SetMaster(r.master)
	case ACTION_QUIT:
		r.quitOnce.Do(func() { close(r.quit) })
	}
}
