package component

// Enemy помечает сущность как врага.
type Enemy struct {
	Tracking bool // Поворачивается ли враг к игроку (AI-тег)
	Respawns int  // Сколько раз сущность возвращалась из пула
}
