package game

import (
	"fmt"
	"io"
	"time"

	"github.com/vovakirdan/number-grab/internal/core"
	"github.com/vovakirdan/number-grab/internal/numberline"
)

// scriptSource replays a fixed list of inputs and records who was asked.
type scriptSource struct {
	inputs []core.Input
	asked  []core.PlayerID
}

func moves(sides ...core.Side) []core.Input {
	out := make([]core.Input, len(sides))
	for i, s := range sides {
		out[i] = core.MoveInput(s)
	}
	return out
}

func (s *scriptSource) Next(turn core.PlayerID) (core.Input, error) {
	s.asked = append(s.asked, turn)
	if len(s.inputs) == 0 {
		return core.Input{}, io.EOF
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return in, nil
}

// recordingDisplay captures what the game shows.
type recordingDisplay struct {
	lines    []string
	said     []string
	warned   []string
	outcomes []Result
	hints    int
	rules    int
	commands int
	params   []Config
	times    [][2]float64
}

func (d *recordingDisplay) ShowLine(l *numberline.Line) { d.lines = append(d.lines, l.String()) }
func (d *recordingDisplay) Say(msg string) { d.said = append(d.said, msg) }
func (d *recordingDisplay) Warn(msg string) { d.warned = append(d.warned, msg) }
func (d *recordingDisplay) ShowRules() { d.rules++ }
func (d *recordingDisplay) ShowCommands() { d.commands++ }
func (d *recordingDisplay) ShowHint() { d.hints++ }
func (d *recordingDisplay) ShowParameters(cfg Config) { d.params = append(d.params, cfg) }
func (d *recordingDisplay) ShowOutcome(r Result) { d.outcomes = append(d.outcomes, r) }
func (d *recordingDisplay) ShowRemainingTime(p1, p2 float64) {
	d.times = append(d.times, [2]float64{p1, p2})
}

// fakeStopwatch reports a fixed elapsed time.
type fakeStopwatch struct {
	elapsed time.Duration
}

func (f *fakeStopwatch) Start() {}
func (f *fakeStopwatch) Stop() {}
func (f *fakeStopwatch) Reset() {}
func (f *fakeStopwatch) Elapsed() time.Duration { return f.elapsed }

// stopwatches hands out fake stopwatches whose elapsed times follow
// durations in order, repeating the last one.
func stopwatches(durations ...time.Duration) func() Stopwatch {
	i := 0
	return func() Stopwatch {
		d := durations[len(durations)-1]
		if i < len(durations) {
			d = durations[i]
		}
		i++
		return &fakeStopwatch{elapsed: d}
	}
}

type exitRecorder struct {
	codes []int
}

func (e *exitRecorder) exit(code int) { e.codes = append(e.codes, code) }

type memoryRecorder struct {
	saved []Summary
	err   error
}

func (m *memoryRecorder) SaveSummary(s Summary) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, s)
	return nil
}

// newTestGame builds a game and replaces its line with values.
func newTestGame(cfg Config, src MoveSource, disp Display, values []int, opts ...Option) (*Game, *exitRecorder) {
	ex := &exitRecorder{}
	opts = append([]Option{WithExit(ex.exit), WithStopwatch(stopwatches(0))}, opts...)
	g, err := New(cfg, src, disp, opts...)
	if err != nil {
		panic(fmt.Sprintf("New: %v", err))
	}
	if values != nil {
		g.line = numberline.FromValues(values...)
	}
	return g, ex
}
