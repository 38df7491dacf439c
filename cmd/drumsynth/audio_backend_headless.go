//go:build headless

package main

import "github.com/intuitionamiga/drumsynth"

// OtoPlayer stands in for the audio device in headless builds.
type OtoPlayer struct {
	started bool
	kit     *drumsynth.Kit
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(kit *drumsynth.Kit) {
	op.kit = kit
}

func (op *OtoPlayer) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.started = true
}

func (op *OtoPlayer) Close() {
	op.started = false
}

func (op *OtoPlayer) IsStarted() bool {
	return op.started
}
