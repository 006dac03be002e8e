// internal/app/log_listener.go
package app

import (
	"go.uber.org/zap"

	"go-card-defense/internal/event"
)

// logListener turns game events into structured log lines. It is the
// only diagnostics channel the core has; nothing prints directly.
type logListener struct {
	log *zap.Logger
}

func newLogListener(log *zap.Logger, dispatcher *event.Dispatcher) *logListener {
	l := &logListener{log: log}
	for _, t := range []event.EventType{
		event.TowerPlaced,
		event.PlacementRejected,
		event.WaveStarted,
		event.WaveEnded,
		event.EnemyLeaked,
		event.PathRecomputed,
		event.PathBlocked,
		event.RewardChosen,
		event.GameOver,
	} {
		dispatcher.Subscribe(t, l)
	}
	return l
}

func (l *logListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlacementRejected:
		rejection, ok := e.Data.(PlacementRejection)
		if !ok {
			return
		}
		l.log.Info("placement rejected",
			zap.Int("card", rejection.CardIndex),
			zap.Int("x", rejection.X),
			zap.Int("y", rejection.Y),
			zap.String("reason", rejection.Reason),
		)
	case event.PathBlocked:
		l.log.Warn("no route from entry to exit; enemies will idle")
	case event.PathRecomputed:
		if n, ok := e.Data.(int); ok {
			l.log.Debug("path recomputed", zap.Int("nodes", n))
		}
	case event.WaveStarted:
		if n, ok := e.Data.(int); ok {
			l.log.Info("wave started", zap.Int("wave", n))
		}
	case event.WaveEnded:
		if n, ok := e.Data.(int); ok {
			l.log.Info("wave cleared", zap.Int("wave", n))
		}
	case event.GameOver:
		if n, ok := e.Data.(int); ok {
			l.log.Info("defeat", zap.Int("wave", n))
		}
	default:
		l.log.Debug(string(e.Type))
	}
}
