// component/movement.go
package component

// Position — центр сущности в координатах вьюпорта
type Position struct {
	X, Y float64
}

// Velocity — смещение за один кадр
type Velocity struct {
	X, Y float64
}

// Size — габариты сущности (ширина и высота спрайта)
type Size struct {
	Width, Height float64
}

// Half возвращает половину ширины и высоты.
func (s Size) Half() (float64, float64) {
	return s.Width / 2, s.Height / 2
}
