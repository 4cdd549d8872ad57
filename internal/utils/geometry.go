package utils

import (
	"math"

	"go-arcade/internal/component"
)

// Edge — сторона границы, на которой сработало ограничение.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeTop
	EdgeRight
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Rect — прямоугольная граница, заданная координатами сторон.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// ViewportBounds возвращает границу квадратного вьюпорта, расширенную на
// половину размера сущности. Вместе с Contain это держит спрайт целиком на экране.
func ViewportBounds(viewport float64, size component.Size) Rect {
	hw, hh := size.Half()
	return Rect{
		Left:   -hw,
		Top:    -hh,
		Right:  viewport + hw,
		Bottom: viewport + hh,
	}
}

// Contain прижимает позицию так, чтобы pos±size оставалось внутри bounds.
// Стороны проверяются в порядке left, top, right, bottom; возвращается
// последняя сработавшая.
func Contain(pos *component.Position, size component.Size, bounds Rect) Edge {
	edge := EdgeNone

	if pos.X-size.Width < bounds.Left {
		pos.X = bounds.Left + size.Width
		edge = EdgeLeft
	}
	if pos.Y-size.Height < bounds.Top {
		pos.Y = bounds.Top + size.Height
		edge = EdgeTop
	}
	if pos.X+size.Width > bounds.Right {
		pos.X = bounds.Right - size.Width
		edge = EdgeRight
	}
	if pos.Y+size.Height > bounds.Bottom {
		pos.Y = bounds.Bottom - size.Height
		edge = EdgeBottom
	}

	return edge
}

// Box — центр и размер прямоугольника, выровненного по осям.
type Box struct {
	Center component.Position
	Size   component.Size
}

// Intersects проверяет строгое перекрытие двух прямоугольников по обеим осям.
// Касание сторонами пересечением не считается.
func Intersects(a, b Box) bool {
	ahw, ahh := a.Size.Half()
	bhw, bhh := b.Size.Half()

	dx := math.Abs(a.Center.X - b.Center.X)
	dy := math.Abs(a.Center.Y - b.Center.Y)

	return dx < ahw+bhw && dy < ahh+bhh
}
