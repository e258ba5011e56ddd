// Package server provides an SSH demo server that hands each connecting
// client its own per-monitor tiling tree, rendered with internal/tui.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuios/internal/config"
	"github.com/Gaurav-Gosain/tuios/internal/layout"
	"github.com/Gaurav-Gosain/tuios/internal/surface"
	"github.com/Gaurav-Gosain/tuios/internal/tui"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "ssh",
})

// Config holds SSH server settings.
type Config struct {
	Host    string
	Port    string
	KeyPath string
}

// Start runs an SSH server until ctx is cancelled. Each session gets a
// fresh layout.Tree seeded with one window, so a new connection always
// lands on something to look at.
func Start(ctx context.Context, cfg Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("server: resolve home dir: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".ssh", "tiri_host_key")
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("server: create ssh server: %w", err)
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil {
			logger.Error("serve", "err", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	return srv.Shutdown(ctx)
}

func sessionHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := s.Pty()
	if !active {
		return nil, nil
	}

	opts := layout.DefaultOptions()
	if path, err := config.ResolveConfigPath(); err == nil {
		if loaded, err := config.Load(path); err == nil {
			opts = loaded
		} else {
			logger.Warn("load config, using defaults", "err", err)
		}
	}

	tree := layout.NewTree(layout.Rect{W: pty.Window.Width, H: pty.Window.Height}, opts)
	tile, _ := surface.NewMockTile()
	if err := tree.Insert(tile, layout.InsertAuto); err != nil {
		logger.Error("seed initial window", "err", err)
	}
	layout.Arrange(tree)

	model := tui.New(tree)
	return model, []tea.ProgramOption{}
}
