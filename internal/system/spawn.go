package system

import (
	"math"

	"go-arcade/internal/entity"
	"go-arcade/internal/event"
	"go-arcade/internal/utils"

	"go.uber.org/zap"
)

// LaneConfig задаёт сетку вертикальных полос, на которых появляются враги.
type LaneConfig struct {
	Slots   int     // Максимальный индекс полосы (включительно)
	Spacing float64 // Шаг между полосами в ширинах врага
	Margin  float64 // Отступ от левого края
}

// SpawnSystem выдаёт врагов из пула и расставляет их по полосам.
type SpawnSystem struct {
	pool            *entity.Pool
	rng             *utils.PRNGService
	viewport        float64
	lanes           LaneConfig
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewSpawnSystem(pool *entity.Pool, rng *utils.PRNGService, viewport float64, lanes LaneConfig, eventDispatcher *event.Dispatcher, logger *zap.Logger) *SpawnSystem {
	return &SpawnSystem{
		pool:            pool,
		rng:             rng,
		viewport:        viewport,
		lanes:           lanes,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Spawn берёт врага из пула и ставит его на случайную полосу.
func (s *SpawnSystem) Spawn() *entity.Entity {
	e := s.pool.Spawn()
	s.place(e)
	return e
}

// Respawn убирает врага в пул и сразу выдаёт следующего на новую позицию.
// Пул LIFO, поэтому обычно возвращается тот же объект.
func (s *SpawnSystem) Respawn(e *entity.Entity) *entity.Entity {
	s.pool.Remove(e)
	next := s.Spawn()

	s.logger.Debug("enemy respawned",
		zap.Uint32("enemy_id", uint32(next.ID)),
		zap.Float64("x", next.Position.X),
		zap.Float64("y", next.Position.Y),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyRespawned,
		Data: event.RespawnData{EnemyID: uint32(next.ID), X: next.Position.X, Y: next.Position.Y},
	})
	return next
}

func (s *SpawnSystem) place(e *entity.Entity) {
	hw, hh := e.Size.Half()
	slot := s.rng.RandomInt(0, s.maxSlot(e.Size.Width))
	e.Position.X = hw + s.lanes.Margin + e.Size.Width*float64(slot)*s.lanes.Spacing
	e.Position.Y = float64(s.rng.RandomInt(int(math.Ceil(hh)), int(math.Floor(s.viewport-hh))))
}

// maxSlot ограничивает индекс полосы так, чтобы враг целиком помещался по X.
func (s *SpawnSystem) maxSlot(width float64) int {
	slots := s.lanes.Slots
	step := width * s.lanes.Spacing
	if step <= 0 {
		return slots
	}
	fit := int(math.Floor((s.viewport - width - s.lanes.Margin) / step))
	if fit < 0 {
		fit = 0
	}
	if fit < slots {
		slots = fit
	}
	return slots
}
