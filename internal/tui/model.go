// Package tui renders a layout.Tree's Inspection API snapshot as a live
// ASCII tree view, the stand-in renderer the design notes call for: "on
// next frame, the renderer reads Tile geometries".
package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuios/internal/layout"
	"github.com/Gaurav-Gosain/tuios/internal/pool"
	"github.com/Gaurav-Gosain/tuios/internal/surface"
	"github.com/Gaurav-Gosain/tuios/internal/theme"
)

// Model is a bubbletea Model that renders one monitor's tiling tree and
// lets the user drive its Mutation API interactively.
type Model struct {
	Tree   *layout.Tree
	width  int
	height int
	status string
}

// New creates a tui Model over tree.
func New(tree *layout.Tree) Model {
	return Model{Tree: tree}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.Tree.SetWorkingArea(layout.Rect{X: 0, Y: 0, W: m.width, H: m.height})
		layout.Arrange(m.Tree)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	var err error

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "n":
		tile, _ := surface.NewMockTile()
		err = m.Tree.Insert(tile, layout.InsertAuto)

	case "x":
		if !m.Tree.IsEmpty() {
			err = m.Tree.Remove(focusedID(m.Tree))
		}

	case "s":
		err = m.Tree.Split(layout.SplitH)
	case "v":
		err = m.Tree.Split(layout.SplitV)

	case "left", "h":
		err = m.Tree.FocusDirection(layout.Left)
	case "right", "l":
		err = m.Tree.FocusDirection(layout.Right)
	case "up", "k":
		err = m.Tree.FocusDirection(layout.Up)
	case "down", "j":
		err = m.Tree.FocusDirection(layout.Down)

	case "shift+left", "H":
		err = m.Tree.MoveDirection(layout.Left)
	case "shift+right", "L":
		err = m.Tree.MoveDirection(layout.Right)
	case "shift+up", "K":
		err = m.Tree.MoveDirection(layout.Up)
	case "shift+down", "J":
		err = m.Tree.MoveDirection(layout.Down)

	case "f":
		err = m.Tree.SetFocusedFullscreen(!currentlyFullscreen(m.Tree))

	case "t":
		err = m.Tree.SetLayoutMode(nextMode(m.Tree))
	}

	if err != nil {
		m.status = err.Error()
	} else {
		m.status = ""
	}
	layout.Arrange(m.Tree)
	return m, nil
}

// View implements tea.Model.
func (m Model) View() tea.View {
	b := pool.GetStringBuilder()
	defer pool.PutStringBuilder(b)

	snap := m.Tree.Inspect()
	if snap.Root == nil {
		b.WriteString("(empty — press n to open a window)\n")
	} else {
		writeNode(b, snap.Root, 0, snap.FocusPath, nil)
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle().Render(m.status))
	}
	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

func writeNode(b *strings.Builder, n *layout.NodeSnapshot, depth int, focusPath, prefix []int) {
	indent := strings.Repeat("  ", depth)
	onPath := pathHasPrefix(focusPath, prefix)

	if n.Tile != nil {
		line := fmt.Sprintf("%s- tile %s  %s", indent, shortID(n.Tile.ID), rectString(n.Tile.Rect))
		if n.Tile.Fullscreen {
			line += " [fullscreen]"
		}
		if onPath && len(prefix) == len(focusPath) {
			line = focusedStyle().Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		return
	}

	c := n.Container
	b.WriteString(fmt.Sprintf("%s+ %s %s  %s\n", indent, c.Layout, shortID(c.ID), rectString(c.Rect)))
	for i, child := range c.Children {
		writeNode(b, child, depth+1, focusPath, append(append([]int(nil), prefix...), i))
	}
}

func pathHasPrefix(path, prefix []int) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i, v := range prefix {
		if path[i] != v {
			return false
		}
	}
	return true
}

func rectString(r layout.Rect) string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}

func shortID(id layout.WindowID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func focusedID(t *layout.Tree) layout.WindowID {
	snap := t.Inspect()
	n := snap.Root
	for _, idx := range snap.FocusPath {
		n = n.Container.Children[idx]
	}
	return n.Tile.ID
}

func currentlyFullscreen(t *layout.Tree) bool {
	snap := t.Inspect()
	n := snap.Root
	for _, idx := range snap.FocusPath {
		n = n.Container.Children[idx]
	}
	return n.Tile != nil && n.Tile.Fullscreen
}

func nextMode(t *layout.Tree) layout.Mode {
	snap := t.Inspect()
	if snap.Root == nil || len(snap.FocusPath) == 0 {
		return layout.SplitH
	}
	n := snap.Root
	for _, idx := range snap.FocusPath[:len(snap.FocusPath)-1] {
		n = n.Container.Children[idx]
	}
	if n.Container == nil {
		return layout.SplitH
	}
	switch n.Container.Layout {
	case layout.SplitH:
		return layout.SplitV
	case layout.SplitV:
		return layout.Tabbed
	case layout.Tabbed:
		return layout.Stacked
	default:
		return layout.SplitH
	}
}

func focusedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.FocusedColor())
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.ErrorColor())
}
