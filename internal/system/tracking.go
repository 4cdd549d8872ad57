package system

import (
	"go-arcade/internal/config"
	"go-arcade/internal/entity"
	"go-arcade/internal/utils"
)

// TrackingSystem поворачивает врагов с AI-тегом в сторону игрока.
type TrackingSystem struct {
	player *entity.Entity
	pool   *entity.Pool
	mode   config.SteeringMode
}

func NewTrackingSystem(player *entity.Entity, pool *entity.Pool, mode config.SteeringMode) *TrackingSystem {
	return &TrackingSystem{player: player, pool: pool, mode: mode}
}

func (s *TrackingSystem) Update() {
	for _, e := range s.pool.Active() {
		if !e.Tracking() {
			continue
		}
		bearing := utils.Bearing(e.Position.X, e.Position.Y, s.player.Position.X, s.player.Position.Y)
		e.Heading.Angle = s.steer(e.Heading.Angle, bearing, e.Heading.TurnSpeed)
	}
}

func (s *TrackingSystem) steer(current, bearing, t float64) float64 {
	switch s.mode {
	case config.SteeringReference:
		return current + utils.Lerp(current, bearing, t)
	default:
		return utils.LerpAngle(current, bearing, t)
	}
}
