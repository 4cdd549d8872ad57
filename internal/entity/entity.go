// internal/entity/entity.go
package entity

import (
	"go-arcade/internal/component"
	"go-arcade/internal/utils"
)

// ID — идентификатор сущности
type ID uint32

// PlayerID зарезервирован за игроком; враги нумеруются с 1.
const PlayerID ID = 0

// Kind различает игрока и врагов.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// Entity — позиционируемый и отрисовываемый игровой объект.
type Entity struct {
	ID       ID
	Kind     Kind
	Position component.Position
	Velocity component.Velocity
	Size     component.Size
	Heading  component.Heading
	Render   component.Renderable
	Enemy    *component.Enemy // nil у игрока
}

// NewPlayer создаёт игрока в центре вьюпорта.
func NewPlayer(size component.Size, viewport float64, texture string) *Entity {
	return &Entity{
		ID:       PlayerID,
		Kind:     KindPlayer,
		Position: component.Position{X: viewport / 2, Y: viewport / 2},
		Size:     size,
		Render:   component.Renderable{Texture: texture, Visible: true},
	}
}

// NewEnemy создаёт врага. Видимость выставляет пул при выдаче.
func NewEnemy(id ID, size component.Size, texture string, turnSpeed float64) *Entity {
	return &Entity{
		ID:      id,
		Kind:    KindEnemy,
		Size:    size,
		Heading: component.Heading{TurnSpeed: turnSpeed},
		Render:  component.Renderable{Texture: texture},
		Enemy:   &component.Enemy{},
	}
}

// Box возвращает геометрию сущности для проверки пересечений.
func (e *Entity) Box() utils.Box {
	return utils.Box{Center: e.Position, Size: e.Size}
}

// Visible сообщает, участвует ли сущность в отрисовке.
func (e *Entity) Visible() bool {
	return e.Render.Visible
}

// Tracking сообщает, есть ли у сущности AI-тег.
func (e *Entity) Tracking() bool {
	return e.Enemy != nil && e.Enemy.Tracking
}
