package entity

// Factory создаёт новую сущность с выданным пулом ID.
type Factory func(id ID) *Entity

// Pool переиспользует врагов между активным списком и пулом неактивных.
// Сущность всегда находится ровно в одном из двух списков.
type Pool struct {
	active   []*Entity
	inactive []*Entity
	factory  Factory
	nextID   ID
}

// NewPool создаёт пустой пул. factory вызывается, только когда пул неактивных пуст.
func NewPool(factory Factory) *Pool {
	return &Pool{
		factory: factory,
		nextID:  PlayerID + 1,
	}
}

// Spawn возвращает сущность из пула (LIFO) или создаёт новую.
// Результат видим, помечен AI-тегом и добавлен в конец активного списка.
func (p *Pool) Spawn() *Entity {
	var e *Entity
	if n := len(p.inactive); n > 0 {
		e = p.inactive[n-1]
		p.inactive[n-1] = nil
		p.inactive = p.inactive[:n-1]
		if e.Enemy != nil {
			e.Enemy.Respawns++
		}
	} else {
		e = p.factory(p.nextID)
		p.nextID++
	}
	if e.Enemy != nil {
		e.Enemy.Tracking = true
	}
	e.Render.Visible = true
	p.active = append(p.active, e)
	return e
}

// Remove убирает сущность из активного списка с сохранением порядка,
// прячет её за левым краем экрана и кладёт в пул.
// Возвращает false, если сущность не активна.
func (p *Pool) Remove(e *Entity) bool {
	idx := p.indexOf(e)
	if idx < 0 {
		return false
	}
	copy(p.active[idx:], p.active[idx+1:])
	p.active[len(p.active)-1] = nil
	p.active = p.active[:len(p.active)-1]

	e.Render.Visible = false
	e.Position.X = -e.Size.Width * 2
	p.inactive = append(p.inactive, e)
	return true
}

func (p *Pool) indexOf(e *Entity) int {
	for i, a := range p.active {
		if a == e {
			return i
		}
	}
	return -1
}

// Active возвращает копию активного списка, безопасную для изменения пула во время обхода.
func (p *Pool) Active() []*Entity {
	out := make([]*Entity, len(p.active))
	copy(out, p.active)
	return out
}

// Inactive возвращает копию списка неактивных сущностей.
func (p *Pool) Inactive() []*Entity {
	out := make([]*Entity, len(p.inactive))
	copy(out, p.inactive)
	return out
}

// Len возвращает количество активных сущностей.
func (p *Pool) Len() int {
	return len(p.active)
}

// Created возвращает общее число сущностей, созданных фабрикой.
func (p *Pool) Created() int {
	return int(p.nextID - PlayerID - 1)
}
