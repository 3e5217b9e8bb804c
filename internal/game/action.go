package game

// Action represents removing Count objects from the pile at index Pile.
type Action struct {
	Pile  int
	Count int
}

// Validate checks the action against the given pile counts.
func (a Action) Validate(piles State) error {
	if a.Pile < 0 || a.Pile >= len(piles) {
		return ErrInvalidPile
	}
	if a.Count < 1 || a.Count > piles[a.Pile] {
		return ErrInvalidCount
	}
	return nil
}

// AvailableActions enumerates every legal action for the given piles in
// ascending (pile, count) order. Empty when all piles are zero.
func AvailableActions(piles State) []Action {
	var actions []Action
	for i, n := range piles {
		for j := 1; j <= n; j++ {
			actions = append(actions, Action{Pile: i, Count: j})
		}
	}
	return actions
}
