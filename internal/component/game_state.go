// internal/component/game_state.go
package component

// GameState is the phase the game is in.
type GameState int

const (
	BuildState GameState = iota
	WaveState
	GameOverState
	VictoryState
)

func (s GameState) String() string {
	switch s {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case GameOverState:
		return "gameover"
	case VictoryState:
		return "victory"
	default:
		return "unknown"
	}
}
