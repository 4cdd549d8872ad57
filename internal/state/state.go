// Package state — машина состояний, выбирающая покадровую функцию.
package state

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Exit()
}

// Terminal реализуется состояниями, из которых нет переходов.
type Terminal interface {
	Terminal() bool
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState переключает состояние. Из терминального состояния выйти нельзя:
// вызов возвращает false и ничего не меняет.
func (sm *StateMachine) SetState(next State) bool {
	if sm.IsTerminal() {
		return false
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
	return true
}

// Current возвращает активное состояние (может быть nil).
func (sm *StateMachine) Current() State {
	return sm.current
}

// IsTerminal сообщает, находится ли машина в терминальном состоянии.
func (sm *StateMachine) IsTerminal() bool {
	t, ok := sm.current.(Terminal)
	return ok && t.Terminal()
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}
