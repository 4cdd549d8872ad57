package input

import (
	"testing"

	"go-arcade/internal/component"

	"github.com/stretchr/testify/assert"
)

func press(tr *Tracker, c Code) { tr.Handle(Event{Code: c, Down: true}) }
func release(tr *Tracker, c Code) { tr.Handle(Event{Code: c, Down: false}) }

func TestArrowsSetVelocity(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want component.Velocity
	}{
		{"Left", KeyLeft, component.Velocity{X: -5}},
		{"Right", KeyRight, component.Velocity{X: 5}},
		{"Up", KeyUp, component.Velocity{Y: -5}},
		{"Down", KeyDown, component.Velocity{Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var vel component.Velocity
			tr := NewTracker()
			BindArrows(tr, &vel, 5)

			press(tr, tt.code)
			assert.Equal(t, tt.want, vel)

			release(tr, tt.code)
			assert.Equal(t, component.Velocity{}, vel)
		})
	}
}

func TestArrowsReleaseKeepsVelocityWhileOpposingHeld(t *testing.T) {
	var vel component.Velocity
	tr := NewTracker()
	arrows := BindArrows(tr, &vel, 5)

	press(tr, KeyLeft)
	press(tr, KeyRight)
	assert.Equal(t, 5.0, vel.X)

	// Правая ещё зажата, поэтому отпускание левой не обнуляет скорость.
	release(tr, KeyLeft)
	assert.Equal(t, 5.0, vel.X)
	assert.True(t, arrows.Right.IsDown())

	release(tr, KeyRight)
	assert.Equal(t, 0.0, vel.X)
}

func TestArrowsAxesAreIndependent(t *testing.T) {
	var vel component.Velocity
	tr := NewTracker()
	BindArrows(tr, &vel, 3)

	press(tr, KeyUp)
	press(tr, KeyRight)
	assert.Equal(t, component.Velocity{X: 3, Y: -3}, vel)

	release(tr, KeyUp)
	assert.Equal(t, component.Velocity{X: 3, Y: 0}, vel)
}
