// Package platform переводит ввод ebiten в события ядра.
package platform

import (
	"go-arcade/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler принимает события клавиатуры (реализуется app.Game).
type InputHandler interface {
	HandleInput(ev input.Event)
}

// Keyboard опрашивает ebiten раз в кадр и отдаёт фронты нажатий и отпусканий.
type Keyboard struct {
	mapping map[ebiten.Key]input.Code
	buf     []ebiten.Key
}

// NewKeyboard создаёт опрос стрелок.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		mapping: map[ebiten.Key]input.Code{
			ebiten.KeyArrowLeft:  input.KeyLeft,
			ebiten.KeyArrowUp:    input.KeyUp,
			ebiten.KeyArrowRight: input.KeyRight,
			ebiten.KeyArrowDown:  input.KeyDown,
		},
	}
}

// Poll отправляет события, накопившиеся с прошлого кадра. Сначала отпускания,
// затем нажатия, чтобы быстрый тап внутри кадра не оставил клавишу зажатой.
func (k *Keyboard) Poll(h InputHandler) {
	k.buf = inpututil.AppendJustReleasedKeys(k.buf[:0])
	for _, key := range k.buf {
		if code, ok := k.mapping[key]; ok {
			h.HandleInput(input.Event{Code: code, Down: false})
		}
	}

	k.buf = inpututil.AppendJustPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		if code, ok := k.mapping[key]; ok {
			h.HandleInput(input.Event{Code: code, Down: true})
		}
	}
}
