package system

import (
	"go-arcade/internal/component"
	"go-arcade/internal/entity"
	"go-arcade/internal/event"
	"go-arcade/internal/utils"

	"go.uber.org/zap"
)

// CollisionSystem проверяет столкновения активных врагов с игроком.
type CollisionSystem struct {
	player          *entity.Entity
	health          *component.Health
	damage          int
	pool            *entity.Pool
	spawner         *SpawnSystem
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewCollisionSystem(player *entity.Entity, health *component.Health, damage int, pool *entity.Pool, spawner *SpawnSystem, eventDispatcher *event.Dispatcher, logger *zap.Logger) *CollisionSystem {
	return &CollisionSystem{
		player:          player,
		health:          health,
		damage:          damage,
		pool:            pool,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Update обрабатывает каждый активный на начало кадра враг не более одного раза.
// При попадании: урон, событие PlayerHit, возврат врага в пул и повторное появление.
func (s *CollisionSystem) Update() int {
	hits := 0
	for _, enemy := range s.pool.Active() {
		if !utils.Intersects(s.player.Box(), enemy.Box()) {
			continue
		}
		hits++
		s.health.Value -= s.damage

		s.logger.Debug("player hit",
			zap.Uint32("enemy_id", uint32(enemy.ID)),
			zap.Int("health", s.health.Value),
		)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerHit,
			Data: event.HitData{EnemyID: uint32(enemy.ID), Damage: s.damage, Health: s.health.Value},
		})

		s.spawner.Respawn(enemy)
	}
	return hits
}
