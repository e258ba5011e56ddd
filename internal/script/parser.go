package script

import (
	"fmt"
	"strings"
)

// Parse tokenizes source into a command list. Each non-blank,
// non-comment line is one command: the first whitespace-separated field
// names the command, the rest are its arguments. Lines starting with #
// become CommandComment (kept so a player can echo them, matching the
// teacher's practice of preserving comments through its own lexer).
func Parse(source string) ([]Command, error) {
	var commands []Command
	for i, raw := range strings.Split(source, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			commands = append(commands, Command{Type: CommandComment, Args: []string{line}, Line: lineNum, Raw: raw})
			continue
		}

		fields := strings.Fields(line)
		name := fields[0]
		args := fields[1:]

		ct, ok := commandTypes[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("script: line %d: unknown command %q", lineNum, name)
		}
		commands = append(commands, Command{Type: ct, Args: args, Line: lineNum, Raw: raw})
	}
	return commands, nil
}

var commandTypes = map[string]CommandType{
	"open":           CommandOpen,
	"close":          CommandClose,
	"split":          CommandSplit,
	"layout":         CommandLayout,
	"focusdirection": CommandFocusDir,
	"focus":          CommandFocusDir,
	"movedirection":  CommandMoveDir,
	"move":           CommandMoveDir,
	"focusparent":    CommandFocusParent,
	"focuschild":     CommandFocusChild,
	"fullscreen":     CommandFullscreen,
	"sleep":          CommandSleep,
}
