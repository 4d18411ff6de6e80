// internal/component/game_state.go
package component

// Phase: фаза игровой сессии.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseBetweenWaves
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseBetweenWaves:
		return "between_waves"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// Stats are the cumulative counters of a session.
type Stats struct {
	ZombiesKilled    int
	TotalDamage      int
	Breaches         int
	WavesCompleted   int
	WaveBonusScrap   int
	ManualStartScrap int
}
