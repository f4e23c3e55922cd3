// Package console is the text front end of Number Grab: it turns typed lines
// into moves and commands, prompts the player on the move, and prints
// everything the game has to say.
package console

import (
	"regexp"
	"strings"

	"github.com/vovakirdan/number-grab/internal/core"
)

var moveRe = regexp.MustCompile(`^\s*([012])\s*$`)

// commandLetters maps the first letter of a typed word to its command.
var commandLetters = map[byte]core.Action{
	'q': core.ActionQuit,
	'n': core.ActionNewGame,
	't': core.ActionShowTime,
	'p': core.ActionShowParams,
	'r': core.ActionShowRules,
	's': core.ActionShowLine,
	'c': core.ActionListCommands,
}

// ParseInput classifies one line of player input. A lone 0, 1 or 2 is a
// move; otherwise the first letter of the first word picks a command.
// Whitespace-only input is blank.
func ParseInput(line string) core.Input {
	if m := moveRe.FindStringSubmatch(line); m != nil {
		in := core.MoveInput(core.Side(m[1][0] - '0'))
		in.Raw = line
		return in
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return core.Input{Kind: core.InputBlank, Raw: line}
	}

	word := strings.ToLower(fields[0])
	action, ok := commandLetters[word[0]]
	if !ok {
		action = core.ActionUnknown
	}
	in := core.CommandInput(action)
	in.Raw = line
	return in
}
