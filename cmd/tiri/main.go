// Command tiri runs the per-monitor tiling layout engine as an
// interactive terminal program, an SSH demo server, or a headless
// script player driving its Mutation API.
package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/tuios/internal/config"
	"github.com/Gaurav-Gosain/tuios/internal/layout"
	"github.com/Gaurav-Gosain/tuios/internal/script"
	"github.com/Gaurav-Gosain/tuios/internal/server"
	"github.com/Gaurav-Gosain/tuios/internal/surface"
	"github.com/Gaurav-Gosain/tuios/internal/theme"
	"github.com/Gaurav-Gosain/tuios/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tiri"})

var themeName string

func main() {
	rootCmd := &cobra.Command{
		Use:   "tiri",
		Short: "A per-monitor tiling layout engine",
		Long: `tiri is the tiling layout engine core of a Wayland-style compositor,
run standalone as an interactive terminal tree inspector.`,
		Example: `  # Run the interactive tree inspector
  tiri

  # Run as an SSH demo server
  tiri ssh --port 2222

  # Replay a mutation script headlessly
  tiri play session.script

  # Run with a color theme
  tiri --theme dracula`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if themeName != "" {
				if err := theme.Initialize(themeName); err != nil {
					logger.Warn("load theme, using default colors", "theme", themeName, "err", err)
				}
			}
			return runLocal()
		},
	}
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")

	var sshHost, sshPort, sshKeyPath string
	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run tiri as an SSH demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Start(context.Background(), server.Config{
				Host: sshHost, Port: sshPort, KeyPath: sshKeyPath,
			})
		},
	}
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	playCmd := &cobra.Command{
		Use:   "play <script>",
		Short: "Replay a mutation script against a headless tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(args[0])
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "config-path",
		Short: "Print the path to tiri's options file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	rootCmd.AddCommand(sshCmd, playCmd, configPathCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s (%s, %s)", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

func runLocal() error {
	opts := layout.DefaultOptions()
	if path, err := config.ResolveConfigPath(); err == nil {
		if loaded, err := config.Load(path); err == nil {
			opts = loaded
		} else {
			logger.Warn("load config, using defaults", "err", err)
		}
	}

	tree := layout.NewTree(layout.Rect{W: 80, H: 24}, opts)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		tree.SetWorkingArea(layout.Rect{W: w, H: h})
	} else {
		logger.Debug("probe terminal size, using default", "err", err)
	}
	tile, _ := surface.NewMockTile()
	if err := tree.Insert(tile, layout.InsertAuto); err != nil {
		return fmt.Errorf("seed initial window: %w", err)
	}
	layout.Arrange(tree)

	p := tea.NewProgram(tui.New(tree))
	_, err := p.Run()
	return err
}

func runScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	cmds, err := script.Parse(string(data))
	if err != nil {
		return err
	}

	tree := layout.NewTree(layout.Rect{W: 80, H: 24}, layout.DefaultOptions())
	newTile := func() (*layout.Tile, error) {
		tile, _ := surface.NewMockTile()
		return tile, nil
	}
	player := script.NewPlayer(tree, newTile, cmds)
	if err := player.Run(); err != nil {
		return err
	}

	layout.Arrange(tree)
	logger.Info("script replayed", "commands", player.TotalCommands(), "windows", tree.WindowCount())
	return nil
}
