package input

// Event — событие клавиатуры от источника ввода.
type Event struct {
	Code Code
	Down bool
}

// Tracker раздаёт события клавиатуры привязанным клавишам.
type Tracker struct {
	keys []*Key
}

// NewTracker создаёт пустой трекер.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Bind регистрирует колбэки на физическую клавишу.
func (t *Tracker) Bind(code Code, onPress, onRelease func()) *Key {
	k := NewKey(code, onPress, onRelease)
	t.keys = append(t.keys, k)
	return k
}

// Handle передаёт событие всем клавишам с совпадающим кодом.
// Возвращает true, если хотя бы одна из них сменила состояние.
func (t *Tracker) Handle(ev Event) bool {
	changed := false
	for _, k := range t.keys {
		if k.Code != ev.Code {
			continue
		}
		if ev.Down {
			changed = k.Press() || changed
		} else {
			changed = k.Release() || changed
		}
	}
	return changed
}

// Key возвращает первую привязку для кода или nil.
func (t *Tracker) Key(code Code) *Key {
	for _, k := range t.keys {
		if k.Code == code {
			return k
		}
	}
	return nil
}

// Codes возвращает коды всех привязанных клавиш.
func (t *Tracker) Codes() []Code {
	codes := make([]Code, 0, len(t.keys))
	for _, k := range t.keys {
		codes = append(codes, k.Code)
	}
	return codes
}
