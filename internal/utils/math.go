// internal/utils/math.go
package utils

import "math"

// Lerp повторяет формулу поворота из исходной игры: current - (1-t)*target.
// Это не линейная интерполяция; для неё см. LerpLinear.
func Lerp(current, target, t float64) float64 {
	return current - (1-t)*target
}

// LerpLinear выполняет стандартную линейную интерполяцию
func LerpLinear(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle выполняет линейную интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to, t float64) float64 {
	// Нормализуем углы в диапазон [-π, π]
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	// Находим кратчайшую разницу
	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return 0
	}
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Bearing возвращает угол направления от (fromX, fromY) к (toX, toY).
func Bearing(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}
