package scene

import (
	"testing"

	"go-arcade/internal/component"
	"go-arcade/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestNewStageVisibility(t *testing.T) {
	s := NewStage()

	assert.True(t, s.Main.IsVisible())
	assert.False(t, s.GameOver.IsVisible())

	s.ShowGameOver()

	assert.False(t, s.Main.IsVisible())
	assert.True(t, s.GameOver.IsVisible())
}

func TestWalkSkipsHiddenSubtrees(t *testing.T) {
	s := NewStage()
	shown := entity.NewPlayer(component.Size{Width: 10, Height: 10}, 100, "player")
	hidden := entity.NewEnemy(1, component.Size{Width: 10, Height: 10}, "enemy", 0)
	s.Main.AddChild(&Sprite{Entity: shown})
	s.Main.AddChild(&Sprite{Entity: hidden})
	s.GameOver.AddChild(&Text{Content: "The End!", Visible: true})

	var sprites, texts int
	Walk(s.Root, func(n Node) {
		switch n.(type) {
		case *Sprite:
			sprites++
		case *Text:
			texts++
		}
	})

	assert.Equal(t, 1, sprites)
	assert.Equal(t, 0, texts)
}
