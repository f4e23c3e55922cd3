package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/number-grab/internal/core"
	_ "github.com/vovakirdan/number-grab/internal/strategy"
)

func twoPlayer() Config {
	cfg := DefaultConfig()
	cfg.Seed = 11
	return cfg
}

func TestPlayHigherTotalWins(t *testing.T) {
	src := &scriptSource{inputs: moves(core.SideLeft, core.SideRight, core.SideLeft)}
	disp := &recordingDisplay{}
	g, ex := newTestGame(twoPlayer(), src, disp, []int{3, 7, 2})

	res := g.Play()

	require.Equal(t, ReasonLineEmpty, res.Reason)
	require.True(t, res.HasWinner)
	require.Equal(t, core.Player1, res.Winner)
	require.Equal(t, [2]int{10, 2}, res.Totals)
	require.Equal(t, []core.PlayerID{core.Player1, core.Player2, core.Player1}, src.asked)
	require.Equal(t, []int{ExitCode}, ex.codes)
	require.Len(t, disp.outcomes, 1)
	require.Equal(t, "[P1: 0][P2: 0]  < 3 || 7 || 2 >", disp.lines[0])
}

func TestPlayEqualTotalsIsTie(t *testing.T) {
	src := &scriptSource{inputs: moves(core.SideLeft, core.SideLeft)}
	g, ex := newTestGame(twoPlayer(), src, &recordingDisplay{}, []int{4, 4})

	res := g.Play()

	require.Equal(t, ReasonLineEmpty, res.Reason)
	require.False(t, res.HasWinner)
	require.True(t, res.Tie())
	require.Equal(t, []int{ExitCode}, ex.codes)
}

func TestTimedBothOutEndsGameRegardlessOfTotals(t *testing.T) {
	cfg := twoPlayer()
	cfg.Timed = true
	cfg.TimeBudget = 1
	src := &scriptSource{inputs: moves(core.SideRight, core.SideLeft, core.SideLeft, core.SideLeft)}
	g, _ := newTestGame(cfg, src, &recordingDisplay{}, []int{1, 2, 3, 40},
		WithStopwatch(stopwatches(2*time.Second)))

	res := g.Play()

	require.Equal(t, ReasonBothTimedOut, res.Reason)
	require.False(t, res.HasWinner)
	require.Equal(t, [2]int{40, 1}, res.Totals)
	require.Equal(t, 2, g.Line().Size(), "game must stop once both are out of time")
	require.InDelta(t, 2.0, res.Times[0], 1e-9)
	require.InDelta(t, 2.0, res.Times[1], 1e-9)
}

func TestTimedOneOutLoses(t *testing.T) {
	cfg := twoPlayer()
	cfg.SinglePlayer = true
	cfg.Difficulty = 2
	cfg.Timed = true
	cfg.TimeBudget = 1
	src := &scriptSource{inputs: moves(core.SideRight)}
	disp := &recordingDisplay{}
	g, _ := newTestGame(cfg, src, disp, []int{1, 2},
		WithStopwatch(stopwatches(2*time.Second, 0)))

	res := g.Play()

	require.Equal(t, ReasonOneTimedOut, res.Reason)
	require.Equal(t, core.Player1, res.TimedOut)
	require.Equal(t, core.Player2, res.Winner)
	require.Equal(t, [2]int{2, 1}, res.Totals, "P1 leads on points but ran out of time")
	require.Contains(t, disp.said, "Opponent takes the right number.")
}

func TestFrenzyForfeitsSlowMoveAndAdvancesTurn(t *testing.T) {
	cfg := twoPlayer()
	cfg.Frenzy = true
	src := &scriptSource{inputs: moves(core.SideLeft, core.SideRight, core.SideLeft)}
	disp := &recordingDisplay{}
	g, _ := newTestGame(cfg, src, disp, []int{5, 6},
		WithStopwatch(stopwatches(3500*time.Millisecond, 0)))

	res := g.Play()

	require.Equal(t, []string{"Too slow! Turn doesn't count!"}, disp.warned)
	require.Equal(t, []core.PlayerID{core.Player1, core.Player2, core.Player1}, src.asked)
	require.Equal(t, [2]int{5, 6}, res.Totals)
	require.Equal(t, core.Player2, res.Winner)
}

func TestFrenzyAtLimitStillCounts(t *testing.T) {
	cfg := twoPlayer()
	cfg.Frenzy = true
	src := &scriptSource{inputs: moves(core.SideLeft)}
	disp := &recordingDisplay{}
	g, _ := newTestGame(cfg, src, disp, []int{5},
		WithStopwatch(stopwatches(FrenzyLimit)))

	res := g.Play()

	require.Empty(t, disp.warned)
	require.Equal(t, [2]int{5, 0}, res.Totals)
}

func TestPassing(t *testing.T) {
	t.Run("rejected when disabled", func(t *testing.T) {
		src := &scriptSource{inputs: moves(core.SidePass, core.SideLeft, core.SideRight)}
		disp := &recordingDisplay{}
		g, _ := newTestGame(twoPlayer(), src, disp, []int{5, 6})

		res := g.Play()

		require.Equal(t, []string{"Passing is not allowed."}, disp.warned)
		require.Equal(t, []core.PlayerID{core.Player1, core.Player1, core.Player2}, src.asked)
		require.Equal(t, [2]int{5, 6}, res.Totals)
	})

	t.Run("accepted when enabled", func(t *testing.T) {
		cfg := twoPlayer()
		cfg.Passing = true
		src := &scriptSource{inputs: moves(core.SidePass, core.SideLeft, core.SideLeft)}
		disp := &recordingDisplay{}
		g, _ := newTestGame(cfg, src, disp, []int{5, 6})

		res := g.Play()

		require.Contains(t, disp.said, "Turn passed.")
		require.Equal(t, []core.PlayerID{core.Player1, core.Player2, core.Player1}, src.asked)
		require.Equal(t, [2]int{6, 5}, res.Totals)
	})
}

func TestCommandsRepromptWithoutMutation(t *testing.T) {
	cfg := twoPlayer()
	cfg.Timed = true
	cfg.TimeBudget = 30
	inputs := []core.Input{
		core.CommandInput(core.ActionShowTime),
		core.CommandInput(core.ActionShowParams),
		core.CommandInput(core.ActionShowRules),
		core.CommandInput(core.ActionShowLine),
		core.CommandInput(core.ActionListCommands),
		core.CommandInput(core.ActionUnknown),
		{Kind: core.InputBlank},
		core.MoveInput(core.SideLeft),
	}
	src := &scriptSource{inputs: inputs}
	disp := &recordingDisplay{}
	g, _ := newTestGame(cfg, src, disp, []int{9})

	res := g.Play()

	require.Equal(t, [2]int{9, 0}, res.Totals)
	require.Equal(t, [][2]float64{{30, 30}}, disp.times)
	require.Len(t, disp.params, 1)
	require.Equal(t, 1, disp.rules)
	require.Equal(t, 1, disp.commands)
	require.Equal(t, 1, disp.hints)
	// initial line, "s" command, and the empty line after the grab
	require.Equal(t, []string{"[P1: 0][P2: 0]  < 9 >", "[P1: 0][P2: 0]  < 9 >", ""}, disp.lines)
	for _, who := range src.asked {
		require.Equal(t, core.Player1, who)
	}
}

func TestQuit(t *testing.T) {
	src := &scriptSource{inputs: []core.Input{
		core.MoveInput(core.SideLeft),
		core.CommandInput(core.ActionQuit),
	}}
	disp := &recordingDisplay{}
	rec := &memoryRecorder{}
	g, ex := newTestGame(twoPlayer(), src, disp, []int{1, 2, 3}, WithRecorder(rec))

	res := g.Play()

	require.Equal(t, ReasonQuit, res.Reason)
	require.Equal(t, core.Player2, res.By)
	require.Contains(t, disp.said, "P2 has quit.")
	require.Empty(t, disp.outcomes, "quitting skips the final banner")
	require.Equal(t, []int{ExitCode}, ex.codes)
	require.Len(t, rec.saved, 1)
	require.Equal(t, "quit", rec.saved[0].Reason)
}

func TestExhaustedSourceQuits(t *testing.T) {
	src := &scriptSource{}
	g, ex := newTestGame(twoPlayer(), src, &recordingDisplay{}, []int{1, 2})

	res := g.Play()

	require.Equal(t, ReasonQuit, res.Reason)
	require.Equal(t, []int{ExitCode}, ex.codes)
}

func TestNewGamePlaysFreshGameAndExitsOnce(t *testing.T) {
	cfg := twoPlayer()
	cfg.Length = 4
	inputs := append([]core.Input{core.CommandInput(core.ActionNewGame)},
		moves(core.SideLeft, core.SideLeft, core.SideLeft, core.SideLeft)...)
	src := &scriptSource{inputs: inputs}
	disp := &recordingDisplay{}
	rec := &memoryRecorder{}
	g, ex := newTestGame(cfg, src, disp, []int{1, 2, 3}, WithRecorder(rec))

	res := g.Play()

	require.Contains(t, disp.said, "P1 has started a new game.")
	require.Equal(t, ReasonLineEmpty, res.Reason)
	require.NotEqual(t, g.ID(), res.ID)
	require.Equal(t, []int{ExitCode}, ex.codes)
	require.Len(t, rec.saved, 2)
	require.Equal(t, "restarted", rec.saved[0].Reason)
	require.Equal(t, "line-empty", rec.saved[1].Reason)
	require.Equal(t, 4, rec.saved[1].Length)
	require.Equal(t, 3, g.Line().Size(), "abandoned game is left untouched")
}

func TestHumanAsPlayer2FacesMachineFirst(t *testing.T) {
	cfg := twoPlayer()
	cfg.SinglePlayer = true
	cfg.HumanIsPlayer2 = true
	cfg.Difficulty = 3
	src := &scriptSource{inputs: moves(core.SideLeft, core.SideLeft, core.SideLeft)}
	disp := &recordingDisplay{}
	g, _ := newTestGame(cfg, src, disp, []int{1, 2, 3, 4, 20})

	require.False(t, g.Player(core.Player1).IsHuman())
	require.True(t, g.Player(core.Player2).IsHuman())

	res := g.Play()

	require.Equal(t, "Opponent takes the right number.", disp.said[0])
	require.GreaterOrEqual(t, res.Totals[0], 20)
	require.Equal(t, 30, res.Totals[0]+res.Totals[1])
	for _, who := range src.asked {
		require.Equal(t, core.Player2, who)
	}
}

func TestRecorderReceivesSummary(t *testing.T) {
	cfg := twoPlayer()
	cfg.SinglePlayer = true
	cfg.Difficulty = 1
	src := &scriptSource{inputs: moves(core.SideRight)}
	rec := &memoryRecorder{}
	g, _ := newTestGame(cfg, src, &recordingDisplay{}, []int{2, 9}, WithRecorder(rec))

	g.Play()

	require.Len(t, rec.saved, 1)
	s := rec.saved[0]
	require.Equal(t, g.ID(), s.GameID)
	require.Equal(t, "vs-cpu-d1", s.Mode)
	require.Equal(t, 9, s.P1Total)
	require.Equal(t, 2, s.P2Total)
	require.Equal(t, "P1", s.Winner)
	require.Equal(t, "line-empty", s.Reason)
}

func TestRecorderFailureDoesNotStopExit(t *testing.T) {
	rec := &memoryRecorder{err: errors.New("disk full")}
	src := &scriptSource{inputs: moves(core.SideLeft)}
	g, ex := newTestGame(twoPlayer(), src, &recordingDisplay{}, []int{1}, WithRecorder(rec))

	g.Play()

	require.Equal(t, []int{ExitCode}, ex.codes)
}

func TestSameSeedSameLine(t *testing.T) {
	cfg := twoPlayer()
	cfg.Seed = 1234
	a, err := New(cfg, &scriptSource{}, &recordingDisplay{})
	require.NoError(t, err)
	b, err := New(cfg, &scriptSource{}, &recordingDisplay{})
	require.NoError(t, err)

	require.Equal(t, a.Line().Values(), b.Line().Values())
	require.Equal(t, cfg.Length, a.Line().Size())
	require.NotEqual(t, a.ID(), b.ID())
}

func TestUnknownDifficulty(t *testing.T) {
	cfg := twoPlayer()
	cfg.SinglePlayer = true
	cfg.Difficulty = 7

	_, err := New(cfg, &scriptSource{}, &recordingDisplay{})
	require.Error(t, err)
}

func TestConfigMode(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "two-player", cfg.Mode())

	cfg.SinglePlayer = true
	cfg.Difficulty = 3
	require.Equal(t, "vs-cpu-d3", cfg.Mode())

	cfg.HumanIsPlayer2 = true
	require.Equal(t, "cpu-first-d3", cfg.Mode())
}

func TestWallStopwatch(t *testing.T) {
	sw := NewStopwatch()
	require.Zero(t, sw.Elapsed())

	sw.Start()
	time.Sleep(5 * time.Millisecond)
	sw.Stop()
	first := sw.Elapsed()
	require.GreaterOrEqual(t, first, 5*time.Millisecond)

	time.Sleep(2 * time.Millisecond)
	require.Equal(t, first, sw.Elapsed(), "stopped stopwatch must not advance")

	sw.Reset()
	require.Zero(t, sw.Elapsed())
}

func TestNegativeSeedIsReplaced(t *testing.T) {
	g, err := New(DefaultConfig(), &scriptSource{}, &recordingDisplay{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, g.Config().Seed, int64(0))
}
