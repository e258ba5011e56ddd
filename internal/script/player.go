package script

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
)

// TileFactory creates a new Tile (with whatever Surface backs it) for an
// Open command. Callers typically close over surface.Open or
// surface.NewMockTile.
type TileFactory func() (*layout.Tile, error)

// Player drives a layout.Tree one Command at a time, mirroring the
// teacher's tape Player's index/paused/finished bookkeeping but
// executing Mutation API calls instead of synthesizing keystrokes.
type Player struct {
	Tree     *layout.Tree
	NewTile  TileFactory
	commands []Command
	index    int
	paused   bool
	finished bool
}

// NewPlayer creates a Player over tree, driven by commands, creating new
// Tiles via newTile.
func NewPlayer(tree *layout.Tree, newTile TileFactory, commands []Command) *Player {
	return &Player{Tree: tree, NewTile: newTile, commands: commands}
}

// CurrentIndex returns the index of the next command to run.
func (p *Player) CurrentIndex() int { return p.index }

// TotalCommands returns the number of parsed commands.
func (p *Player) TotalCommands() int { return len(p.commands) }

// IsFinished reports whether every command has been executed.
func (p *Player) IsFinished() bool { return p.finished }

// IsPaused reports whether playback is paused.
func (p *Player) IsPaused() bool { return p.paused }

// SetPaused pauses or resumes playback.
func (p *Player) SetPaused(paused bool) { p.paused = paused }

// Reset rewinds the player to the first command.
func (p *Player) Reset() {
	p.index = 0
	p.paused = false
	p.finished = false
}

// Progress returns playback progress as a percentage.
func (p *Player) Progress() int {
	if len(p.commands) == 0 {
		return 100
	}
	return (p.index * 100) / len(p.commands)
}

// Step executes the next command and advances, returning the command's
// post-execution sleep duration (zero unless it was a Sleep command).
// Comments are executed as no-ops.
func (p *Player) Step() (time.Duration, error) {
	if p.index >= len(p.commands) {
		p.finished = true
		return 0, nil
	}
	cmd := p.commands[p.index]
	p.index++
	if p.index >= len(p.commands) {
		p.finished = true
	}
	return p.execute(cmd)
}

// Run executes every remaining command in order, ignoring Sleep delays
// (the caller decides whether to honor them), and returns the first
// error encountered, if any.
func (p *Player) Run() error {
	for !p.finished {
		if _, err := p.Step(); err != nil {
			return fmt.Errorf("script: %s: %w", p.commands[p.index-1].String(), err)
		}
	}
	return nil
}

func (p *Player) execute(cmd Command) (time.Duration, error) {
	switch cmd.Type {
	case CommandComment:
		return 0, nil

	case CommandOpen:
		if p.NewTile == nil {
			return 0, fmt.Errorf("no tile factory configured")
		}
		tile, err := p.NewTile()
		if err != nil {
			return 0, err
		}
		return 0, p.Tree.Insert(tile, layout.InsertAuto)

	case CommandClose:
		if p.Tree.IsEmpty() {
			return 0, layout.ErrEmptyTree
		}
		return 0, p.Tree.Remove(focusedTileID(p.Tree))

	case CommandSplit:
		mode, err := parseSplitArg(cmd.Args)
		if err != nil {
			return 0, err
		}
		return 0, p.Tree.Split(mode)

	case CommandLayout:
		mode, err := parseModeArg(cmd.Args)
		if err != nil {
			return 0, err
		}
		return 0, p.Tree.SetLayoutMode(mode)

	case CommandFocusDir:
		dir, err := parseDirectionArg(cmd.Args)
		if err != nil {
			return 0, err
		}
		return 0, p.Tree.FocusDirection(dir)

	case CommandMoveDir:
		dir, err := parseDirectionArg(cmd.Args)
		if err != nil {
			return 0, err
		}
		return 0, p.Tree.MoveDirection(dir)

	case CommandFocusParent:
		return 0, p.Tree.FocusParent()

	case CommandFocusChild:
		return 0, p.Tree.FocusChild()

	case CommandFullscreen:
		on, err := parseBoolArg(cmd.Args)
		if err != nil {
			return 0, err
		}
		return 0, p.Tree.SetFocusedFullscreen(on)

	case CommandSleep:
		d, err := parseDurationArg(cmd.Args)
		if err != nil {
			return 0, err
		}
		return d, nil

	default:
		return 0, fmt.Errorf("unhandled command %s", cmd.Type)
	}
}

func focusedTileID(t *layout.Tree) layout.WindowID {
	snap := t.Inspect()
	n := snap.Root
	for _, idx := range snap.FocusPath {
		n = n.Container.Children[idx]
	}
	return n.Tile.ID
}

func parseSplitArg(args []string) (layout.Mode, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("split requires exactly one argument (h|v)")
	}
	switch strings.ToLower(args[0]) {
	case "h", "horizontal":
		return layout.SplitH, nil
	case "v", "vertical":
		return layout.SplitV, nil
	}
	return 0, fmt.Errorf("unknown split axis %q", args[0])
}

func parseModeArg(args []string) (layout.Mode, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("layout requires exactly one argument")
	}
	switch strings.ToLower(args[0]) {
	case "splith":
		return layout.SplitH, nil
	case "splitv":
		return layout.SplitV, nil
	case "tabbed":
		return layout.Tabbed, nil
	case "stacked":
		return layout.Stacked, nil
	}
	return 0, fmt.Errorf("unknown layout mode %q", args[0])
}

func parseDirectionArg(args []string) (layout.Direction, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("direction command requires exactly one argument")
	}
	switch strings.ToLower(args[0]) {
	case "left":
		return layout.Left, nil
	case "right":
		return layout.Right, nil
	case "up":
		return layout.Up, nil
	case "down":
		return layout.Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", args[0])
}

func parseBoolArg(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("expected exactly one argument")
	}
	switch strings.ToLower(args[0]) {
	case "on", "true":
		return true, nil
	case "off", "false":
		return false, nil
	}
	return false, fmt.Errorf("unknown boolean argument %q", args[0])
}

func parseDurationArg(args []string) (time.Duration, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("sleep requires exactly one duration argument")
	}
	if d, err := time.ParseDuration(args[0]); err == nil {
		return d, nil
	}
	if ms, err := strconv.Atoi(args[0]); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return 0, fmt.Errorf("invalid duration %q", args[0])
}
