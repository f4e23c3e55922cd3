// Package numberline holds the shared game state: the line of remaining
// values, both players' running totals, and whose turn it is.
//
// A Line is mutated only by Grab. Search code never touches the live line;
// it works on independent duplicates obtained from Copy.
package numberline

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/number-grab/internal/core"
)

// Line is the sequence of remaining values plus the two totals.
type Line struct {
	values []int
	totals [2]int
	turn   core.PlayerID
}

// New creates a line of length values drawn uniformly from [1, max].
func New(length, max int, rng *rand.Rand) *Line {
	l := &Line{values: make([]int, 0, length), turn: core.Player1}
	for i := length; i > 0; i-- {
		l.values = append(l.values, rng.Intn(max)+1)
	}
	return l
}

// Empty creates a line with no values. It must be populated with SetValues.
func Empty() *Line {
	return &Line{turn: core.Player1}
}

// FromValues creates a line holding a copy of values, with zero totals.
func FromValues(values ...int) *Line {
	l := Empty()
	l.SetValues(values)
	return l
}

// SetValues replaces the remaining values with a copy of values.
func (l *Line) SetValues(values []int) {
	l.values = append(make([]int, 0, len(values)), values...)
}

// SetTotal overwrites a player's running total.
func (l *Line) SetTotal(id core.PlayerID, total int) {
	l.totals[id.Index()] = total
}

// Grab removes the first (SideLeft) or last (SideRight) value, credits it to
// id and returns it. An empty line or any other side is a logic error.
func (l *Line) Grab(id core.PlayerID, side core.Side) int {
	if len(l.values) == 0 {
		panic(fmt.Sprintf("numberline: %s grabbed from an empty line", id))
	}
	var n int
	switch side {
	case core.SideLeft:
		n = l.values[0]
		l.values = l.values[1:]
	case core.SideRight:
		n = l.values[len(l.values)-1]
		l.values = l.values[:len(l.values)-1]
	default:
		panic(fmt.Sprintf("numberline: invalid side %d", side))
	}
	l.totals[id.Index()] += n
	return n
}

// Get returns the nth remaining value; the first value is n = 0.
func (l *Line) Get(n int) int {
	return l.values[n]
}

// First returns the leftmost remaining value.
func (l *Line) First() int {
	return l.values[0]
}

// Last returns the rightmost remaining value.
func (l *Line) Last() int {
	return l.values[len(l.values)-1]
}

// Size returns the number of remaining values.
func (l *Line) Size() int {
	return len(l.values)
}

// IsEmpty reports whether no values remain.
func (l *Line) IsEmpty() bool {
	return len(l.values) == 0
}

// Values returns a copy of the remaining values.
func (l *Line) Values() []int {
	return append([]int(nil), l.values...)
}

// Total returns id's running total.
func (l *Line) Total(id core.PlayerID) int {
	return l.totals[id.Index()]
}

// Sum returns the sum of the remaining values.
func (l *Line) Sum() int {
	s := 0
	for _, v := range l.values {
		s += v
	}
	return s
}

// Copy returns an independent duplicate in O(n).
func (l *Line) Copy() *Line {
	c := Empty()
	c.SetValues(l.values)
	c.totals = l.totals
	c.turn = l.turn
	return c
}

// Swap hands the turn to the other player.
func (l *Line) Swap() {
	l.turn = l.turn.Opponent()
}

// Turn returns the player who currently has the move.
func (l *Line) Turn() core.PlayerID {
	return l.turn
}

// String renders the line as
//
//	[P1: X][P2: Y]  < a || b | c | ... || z >
//
// An empty line renders as the empty string.
func (l *Line) String() string {
	n := len(l.values)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[P1: %d][P2: %d]  ", l.totals[0], l.totals[1])

	switch n {
	case 1:
		fmt.Fprintf(&b, "< %d >", l.values[0])
	case 2:
		fmt.Fprintf(&b, "< %d || %d >", l.values[0], l.values[1])
	default:
		middle := make([]string, 0, n-2)
		for _, v := range l.values[1 : n-1] {
			middle = append(middle, strconv.Itoa(v))
		}
		fmt.Fprintf(&b, "< %d || %s || %d >", l.values[0], strings.Join(middle, " | "), l.values[n-1])
	}
	return b.String()
}
