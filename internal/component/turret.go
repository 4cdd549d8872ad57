package component

// Heading отвечает за поворот спрайта.
type Heading struct {
	// Angle - текущий угол поворота в радианах.
	Angle float64
	// TurnSpeed - коэффициент интерполяции к целевому углу за кадр.
	TurnSpeed float64
}
