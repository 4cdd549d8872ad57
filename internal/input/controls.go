package input

import "go-arcade/internal/component"

// Arrows — четыре привязки, управляющие скоростью игрока.
type Arrows struct {
	Left, Up, Right, Down *Key
}

// BindArrows привязывает стрелки к скорости vel.
// Отпускание обнуляет ось, только если противоположная клавиша тоже отпущена.
func BindArrows(t *Tracker, vel *component.Velocity, speed float64) Arrows {
	var a Arrows
	a.Left = t.Bind(KeyLeft,
		func() { vel.X = -speed },
		func() {
			if a.Right.IsUp() {
				vel.X = 0
			}
		})
	a.Up = t.Bind(KeyUp,
		func() { vel.Y = -speed },
		func() {
			if a.Down.IsUp() {
				vel.Y = 0
			}
		})
	a.Right = t.Bind(KeyRight,
		func() { vel.X = speed },
		func() {
			if a.Left.IsUp() {
				vel.X = 0
			}
		})
	a.Down = t.Bind(KeyDown,
		func() { vel.Y = speed },
		func() {
			if a.Up.IsUp() {
				vel.Y = 0
			}
		})
	return a
}
