package input

// Code — физический код клавиши (совпадает с DOM keyCode для стрелок).
type Code int

const (
	KeyLeft  Code = 37
	KeyUp    Code = 38
	KeyRight Code = 39
	KeyDown  Code = 40
)

// State — состояние клавиши.
type State int

const (
	Up State = iota
	Down
)

func (s State) String() string {
	if s == Down {
		return "down"
	}
	return "up"
}

// Key — привязка к физической клавише с колбэками на фронты нажатия и отпускания.
type Key struct {
	Code      Code
	OnPress   func()
	OnRelease func()
	state     State
}

// NewKey создаёт отпущенную клавишу.
func NewKey(code Code, onPress, onRelease func()) *Key {
	return &Key{Code: code, OnPress: onPress, OnRelease: onRelease}
}

// State возвращает текущее состояние клавиши.
func (k *Key) State() State { return k.state }

// IsDown сообщает, зажата ли клавиша.
func (k *Key) IsDown() bool { return k.state == Down }

// IsUp сообщает, отпущена ли клавиша.
func (k *Key) IsUp() bool { return k.state == Up }

// Press переводит клавишу Up -> Down и вызывает OnPress.
// Повторные нажатия (автоповтор) ничего не делают; возвращает true только на фронте.
func (k *Key) Press() bool {
	if k.state == Down {
		return false
	}
	if k.OnPress != nil {
		k.OnPress()
	}
	k.state = Down
	return true
}

// Release переводит клавишу Down -> Up и вызывает OnRelease.
func (k *Key) Release() bool {
	if k.state == Up {
		return false
	}
	if k.OnRelease != nil {
		k.OnRelease()
	}
	k.state = Up
	return true
}
