// internal/app/event_listener.go
package app

import (
	"log/slog"

	"bastion-defense/internal/event"
)

// eventLogger пишет события сессии в структурированный лог.
type eventLogger struct {
	log *slog.Logger
}

func (l *eventLogger) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.WaveData:
		l.log.Info("wave", "event", e.Type, "number", d.Number, "bonus", d.Bonus)
	case event.PhaseData:
		l.log.Info("phase changed", "from", d.From, "to", d.To)
	case event.EnemyData:
		if e.Type == event.EnemyBreached {
			l.log.Info("bastion breached", "enemy", d.Type, "id", d.ID, "damage", d.Reward)
			return
		}
		l.log.Debug("enemy killed", "enemy", d.Type, "id", d.ID, "reward", d.Reward)
	case event.TowerData:
		l.log.Info("tower", "event", e.Type, "id", d.ID, "type", d.Type, "spot", d.SpotID, "level", d.Level, "scrap", d.Scrap)
	default:
		l.log.Debug("event", "type", e.Type)
	}
}
