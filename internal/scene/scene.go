// Package scene описывает граф сцены, который рисует адаптер представления.
package scene

import (
	"image/color"

	"go-arcade/internal/entity"
)

// Node — элемент графа сцены.
type Node interface {
	IsVisible() bool
}

// Container группирует узлы; невидимый контейнер скрывает всё поддерево.
type Container struct {
	Name     string
	Visible  bool
	Children []Node
}

// NewContainer создаёт видимый пустой контейнер.
func NewContainer(name string) *Container {
	return &Container{Name: name, Visible: true}
}

func (c *Container) IsVisible() bool { return c.Visible }

// AddChild добавляет узел в конец списка (рисуется поверх предыдущих).
func (c *Container) AddChild(n Node) {
	c.Children = append(c.Children, n)
}

// Sprite рисует текстуру сущности в её позиции и с её поворотом.
type Sprite struct {
	Entity *entity.Entity
}

func (s *Sprite) IsVisible() bool { return s.Entity != nil && s.Entity.Visible() }

// Text — строка HUD.
type Text struct {
	Content string
	X, Y    float64
	Size    float64
	Color   color.RGBA
	Visible bool
}

func (t *Text) IsVisible() bool { return t.Visible }

// Stage — корень сцены с игровым слоем и экраном окончания игры.
type Stage struct {
	Root     *Container
	Main     *Container
	GameOver *Container
	Health   *Text
	Message  *Text
}

// NewStage собирает корень: Main видим, GameOver скрыт.
func NewStage() *Stage {
	s := &Stage{
		Root:     NewContainer("stage"),
		Main:     NewContainer("main"),
		GameOver: NewContainer("game_over"),
	}
	s.Root.AddChild(s.Main)
	s.Root.AddChild(s.GameOver)
	s.GameOver.Visible = false
	return s
}

// ShowGameOver прячет игровой слой и показывает экран окончания.
func (s *Stage) ShowGameOver() {
	s.Main.Visible = false
	s.GameOver.Visible = true
}

// Walk обходит видимые узлы в порядке отрисовки.
func Walk(n Node, fn func(Node)) {
	if n == nil || !n.IsVisible() {
		return
	}
	fn(n)
	if c, ok := n.(*Container); ok {
		for _, child := range c.Children {
			Walk(child, fn)
		}
	}
}
