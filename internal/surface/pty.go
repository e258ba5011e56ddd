// Package surface provides the two concrete layout.Surface
// implementations referenced by the design notes: a real PTY-backed
// process standing in for a client window, and a mock for tests.
package surface

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/charmbracelet/colorprofile"
	xpty "github.com/charmbracelet/x/xpty"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
	"github.com/Gaurav-Gosain/tuios/internal/pool"
)

// PTY is a layout.Surface backed by a real child process behind a
// pseudo-terminal. Configure resizes the PTY to match the assigned
// rectangle and acks immediately on success, the way a well-behaved
// client acks a configure it can satisfy in full.
type PTY struct {
	ID  layout.WindowID
	pty xpty.Pty
	cmd *exec.Cmd

	mu     sync.Mutex
	tile   *layout.Tile
	cancel context.CancelFunc
}

// Open spawns the user's shell under a fresh pseudo-terminal sized cols
// by rows and returns a PTY surface. The caller is responsible for
// wiring the returned surface into a layout.Tile via layout.NewTile and
// Bind, and calling Close when the tile is removed.
func Open(cols, rows int) (*PTY, error) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	pty, err := xpty.NewPty(cols, rows)
	if err != nil {
		return nil, err
	}

	shell := detectShell()
	cmd := exec.Command(shell)
	termType, colorTerm := detectTermEnv()
	cmd.Env = append(os.Environ(), "TERM="+termType, "COLORTERM="+colorTerm)
	cmd.SysProcAttr = unixSysProcAttr()

	if err := pty.Start(cmd); err != nil {
		_ = pty.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &PTY{ID: layout.NewWindowID(), pty: pty, cmd: cmd, cancel: cancel}

	go func() {
		_ = xpty.WaitProcess(ctx, cmd)
	}()
	go s.drain()

	return s, nil
}

// drain reads and discards the child's output. This surface never
// renders PTY contents, but the process still needs its stdout read so
// writes past the kernel pipe buffer don't block.
func (s *PTY) drain() {
	buf := pool.GetByteSlice()
	defer pool.PutByteSlice(buf)
	for {
		if _, err := s.pty.Read(*buf); err != nil {
			return
		}
	}
}

// Bind associates this surface with the Tile it backs, so Configure can
// ack back to it. layout.NewTile(s) does not do this; until Bind is
// called, Configure resizes the PTY but acks nothing.
func (s *PTY) Bind(tile *layout.Tile) {
	s.mu.Lock()
	s.tile = tile
	s.mu.Unlock()
}

// Configure implements layout.Surface.
func (s *PTY) Configure(rect layout.Rect, fullscreen bool, transactionID uint64) {
	cols, rows := rect.W, rect.H
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if err := s.pty.Resize(cols, rows); err != nil {
		return
	}

	s.mu.Lock()
	tile := s.tile
	s.mu.Unlock()
	if tile != nil {
		tile.Ack(transactionID)
	}
}

// Close terminates the backing process and releases the pseudo-terminal.
func (s *PTY) Close() error {
	s.cancel()
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	return s.pty.Close()
}

func detectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	for _, shell := range []string{"/bin/bash", "/bin/zsh", "/bin/fish", "/bin/sh"} {
		if _, err := os.Stat(shell); err == nil {
			return shell
		}
	}
	return "/bin/sh"
}

func detectTermEnv() (termType, colorTerm string) {
	profile := colorprofile.Detect(os.Stdout, os.Environ())
	switch profile {
	case colorprofile.TrueColor:
		return "xterm-256color", "truecolor"
	case colorprofile.ANSI256:
		return "xterm-256color", ""
	case colorprofile.ANSI:
		return "xterm", ""
	default:
		return "dumb", ""
	}
}

