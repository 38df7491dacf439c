//go:build windows

package main

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// TerminalHost reads raw stdin and feeds keys to a keyRouter.
// The console read blocks, so Stop only restores the terminal and the
// reader goroutine exits with the process.
type TerminalHost struct {
	keys         *keyRouter
	stopped      sync.Once
	fd           int
	oldTermState *term.State
}

func NewTerminalHost(keys *keyRouter) *TerminalHost {
	return &TerminalHost{keys: keys}
}

func (h *TerminalHost) Start() error {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		return fmt.Errorf("terminal raw mode: %w", err)
	}
	h.oldTermState = oldState

	go func() {
		buf := make([]byte, 16)
		for {
			n, err := os.Stdin.Read(buf)
			for _, b := range buf[:n] {
				h.keys.routeKey(b)
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		if h.oldTermState != nil {
			_ = term.Restore(h.fd, h.oldTermState)
		}
	})
}
