package app

import (
	"go-arcade/internal/component"
	"go-arcade/internal/event"

	"go.uber.org/zap"
)

// playingState — покадровая функция игры: движение, столкновения, AI, проверка конца.
type playingState struct {
	game *Game
}

func (s *playingState) Enter() {
	s.game.phase = component.Playing
}

func (s *playingState) Update() {
	g := s.game
	g.MovementSystem.Update()
	g.CollisionSystem.Update()
	g.TrackingSystem.Update()

	if !g.health.Alive() {
		g.sm.SetState(&endedState{game: g})
	}
}

func (s *playingState) Exit() {}

// endedState — терминальное состояние: сцена статична, выхода нет.
type endedState struct {
	game *Game
}

func (s *endedState) Enter() {
	g := s.game
	g.phase = component.Ended
	g.stage.ShowGameOver()

	g.logger.Info("game over",
		zap.Uint64("frame", g.frame),
		zap.Int("health", g.health.Value),
	)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameEnded})
}

func (s *endedState) Update() {}

func (s *endedState) Terminal() bool { return true }

func (s *endedState) Exit() {}
