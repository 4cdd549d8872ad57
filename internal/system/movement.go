package system

import (
	"go-arcade/internal/entity"
	"go-arcade/internal/utils"
)

// MovementSystem интегрирует позицию игрока по скорости и держит его во вьюпорте.
type MovementSystem struct {
	player *entity.Entity
	bounds utils.Rect
}

func NewMovementSystem(player *entity.Entity, viewport float64) *MovementSystem {
	return &MovementSystem{
		player: player,
		bounds: utils.ViewportBounds(viewport, player.Size),
	}
}

// Update сдвигает игрока на один кадр и возвращает сработавшую сторону границы.
func (s *MovementSystem) Update() utils.Edge {
	pos := &s.player.Position
	pos.X += s.player.Velocity.X
	pos.Y += s.player.Velocity.Y
	return utils.Contain(pos, s.player.Size, s.bounds)
}
