// internal/component/game_state.go
package component

// Phase is one state of the build/combat cycle.
type Phase int

const (
	// PreWave allows construction; no enemies exist.
	PreWave Phase = iota
	// Wave spawns and fights enemies; construction is refused.
	Wave
	// PostWave offers the reward pick; the board is frozen.
	PostWave
	// Defeat is terminal: the player's health reached zero.
	Defeat
)

func (p Phase) String() string {
	switch p {
	case PreWave:
		return "PreWave"
	case Wave:
		return "Wave"
	case PostWave:
		return "PostWave"
	case Defeat:
		return "Defeat"
	}
	return "Unknown"
}

// GameState holds the current phase.
type GameState struct {
	Phase Phase
}
