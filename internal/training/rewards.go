package training

// RewardConfig holds configurable reward values for self-play. The
// defaults encode the misère convention used here: the move that empties
// the last pile earns the mover the losing reward, and the opponent's
// preceding move earns the winning reward.
type RewardConfig struct {
	TerminalMove  float64 // move that takes the last object
	OpponentFinal float64 // opponent's previously recorded move at game end
	Intermediate  float64 // every other recorded transition
}

// DefaultRewardConfig returns the default reward configuration
func DefaultRewardConfig() *RewardConfig {
	return &RewardConfig{
		TerminalMove:  -1.0,
		OpponentFinal: 1.0,
		Intermediate:  0.0,
	}
}
