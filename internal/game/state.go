package game

import (
	"strconv"
	"strings"
)

// State is an ordered snapshot of the remaining objects per pile.
type State []int

// Key returns a comparable form of the state for use as a map key. Two
// states produce the same key iff their pile counts are equal
// element-wise and in order.
func (s State) Key() string {
	var sb strings.Builder
	for i, n := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Total returns the number of objects remaining across all piles.
func (s State) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}
