package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/number-grab/internal/core"
)

// Source prompts the player on the move and reads one line per call.
// It implements game.MoveSource.
type Source struct {
	prompt func(p string)
	read   func() (string, error)
}

// NewSource reads lines from r and writes prompts to w.
func NewSource(r io.Reader, w io.Writer) *Source {
	br := bufio.NewReader(r)
	return &Source{
		prompt: func(p string) { fmt.Fprint(w, p) },
		read: func() (string, error) {
			line, err := br.ReadString('\n')
			if err != nil && (err != io.EOF || line == "") {
				return "", err
			}
			return strings.TrimRight(line, "\r\n"), nil
		},
	}
}

// NewTerminalSource reads from a raw terminal, such as an SSH session with
// a PTY, which needs local echo and line editing.
func NewTerminalSource(t *term.Terminal) *Source {
	return &Source{
		prompt: t.SetPrompt,
		read:   t.ReadLine,
	}
}

// Next prompts for turn and returns the classified input. Read failures,
// including end of input, are returned as is.
func (s *Source) Next(turn core.PlayerID) (core.Input, error) {
	s.prompt(fmt.Sprintf("%s's move > ", turn))
	line, err := s.read()
	if err != nil {
		return core.Input{}, err
	}
	return ParseInput(line), nil
}
