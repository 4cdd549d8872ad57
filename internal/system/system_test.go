package system

import (
	"math"
	"testing"

	"go-arcade/internal/component"
	"go-arcade/internal/config"
	"go-arcade/internal/entity"
	"go-arcade/internal/event"
	"go-arcade/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var defaultLanes = LaneConfig{Slots: config.LaneSlots, Spacing: config.LaneSpacing, Margin: config.LaneMargin}

func newEnemyPool(size component.Size) *entity.Pool {
	return entity.NewPool(func(id entity.ID) *entity.Entity {
		return entity.NewEnemy(id, size, "enemy", config.RotationSpeed)
	})
}

func TestSpawnPlacesEnemiesOnLanes(t *testing.T) {
	tests := []struct {
		name     string
		size     component.Size
		viewport float64
		maxX     float64
	}{
		{"Default viewport clamps lanes", component.Size{Width: 40, Height: 40}, 500, 410},
		{"Wide viewport keeps all lanes", component.Size{Width: 40, Height: 40}, 2000, 20 + 10 + 40*9*1.9},
		{"Small enemy", component.Size{Width: 10, Height: 16}, 500, 5 + 10 + 10*9*1.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newEnemyPool(tt.size)
			s := NewSpawnSystem(pool, utils.NewPRNGService(3), tt.viewport, defaultLanes, event.NewDispatcher(), zap.NewNop())
			hw, hh := tt.size.Half()
			step := tt.size.Width * defaultLanes.Spacing

			seenMax := 0.0
			for i := 0; i < 500; i++ {
				e := s.Spawn()
				slot := (e.Position.X - hw - defaultLanes.Margin) / step
				assert.InDelta(t, math.Round(slot), slot, 1e-9, "x=%v is not on a lane", e.Position.X)
				assert.GreaterOrEqual(t, e.Position.Y, hh)
				assert.LessOrEqual(t, e.Position.Y, tt.viewport-hh)
				assert.LessOrEqual(t, e.Position.X+hw, tt.viewport)
				seenMax = math.Max(seenMax, e.Position.X)
				require.True(t, pool.Remove(e))
			}
			assert.InDelta(t, tt.maxX, seenMax, 1e-9)
			assert.Equal(t, 1, pool.Created())
		})
	}
}

func TestCollisionRespawnsEnemy(t *testing.T) {
	size := component.Size{Width: 40, Height: 40}
	player := entity.NewPlayer(size, 500, "player")
	pool := newEnemyPool(size)
	d := event.NewDispatcher()
	spawner := NewSpawnSystem(pool, utils.NewPRNGService(9), 500, defaultLanes, d, zap.NewNop())
	health := &component.Health{Value: 10}
	s := NewCollisionSystem(player, health, 1, pool, spawner, d, zap.NewNop())

	far := spawner.Spawn()
	far.Position = component.Position{X: 50, Y: 250}
	near := spawner.Spawn()
	near.Position = component.Position{X: 260, Y: 255}

	hits := s.Update()

	assert.Equal(t, 1, hits)
	assert.Equal(t, 9, health.Value)
	assert.Equal(t, []*entity.Entity{far, near}, pool.Active())
	assert.Equal(t, component.Position{X: 50, Y: 250}, far.Position)
	assert.True(t, near.Visible())
}

func TestCollisionWithoutDamage(t *testing.T) {
	size := component.Size{Width: 40, Height: 40}
	player := entity.NewPlayer(size, 500, "player")
	pool := newEnemyPool(size)
	d := event.NewDispatcher()
	spawner := NewSpawnSystem(pool, utils.NewPRNGService(9), 500, defaultLanes, d, zap.NewNop())
	health := &component.Health{Value: 10}
	s := NewCollisionSystem(player, health, 0, pool, spawner, d, zap.NewNop())

	spawner.Spawn().Position = player.Position

	assert.Equal(t, 1, s.Update())
	assert.Equal(t, 10, health.Value)
}

func TestMovementSystemContainsPlayer(t *testing.T) {
	player := entity.NewPlayer(component.Size{Width: 40, Height: 40}, 500, "player")
	s := NewMovementSystem(player, 500)

	player.Velocity = component.Velocity{X: -5}
	assert.Equal(t, utils.EdgeNone, s.Update())
	assert.Equal(t, 245.0, player.Position.X)

	player.Position.X = 22
	assert.Equal(t, utils.EdgeLeft, s.Update())
	assert.Equal(t, 20.0, player.Position.X)
}

func TestTrackingSkipsInactiveEnemies(t *testing.T) {
	size := component.Size{Width: 40, Height: 40}
	player := entity.NewPlayer(size, 500, "player")
	pool := newEnemyPool(size)
	s := NewTrackingSystem(player, pool, config.SteeringSmooth)

	active := pool.Spawn()
	active.Position = component.Position{X: 250, Y: 100}
	parked := pool.Spawn()
	require.True(t, pool.Remove(parked))

	s.Update()

	assert.InDelta(t, 0.1*math.Pi/2, active.Heading.Angle, 1e-9)
	assert.Equal(t, 0.0, parked.Heading.Angle)
}
