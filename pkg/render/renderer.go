// Package render — адаптер представления: рисует граф сцены средствами ebiten.
package render

import (
	"image"

	"go-arcade/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// baseFontHeight — высота basicfont.Face7x13 в пикселях.
const baseFontHeight = 13.0

// Renderer рисует сцену на экран ebiten.
type Renderer struct {
	textures map[string]*ebiten.Image
	face     *text.GoXFace
	colors   Colors
}

// NewRenderer превращает загруженные изображения в текстуры ebiten.
func NewRenderer(images map[string]image.Image, colors Colors) *Renderer {
	textures := make(map[string]*ebiten.Image, len(images))
	for id, img := range images {
		textures[id] = ebiten.NewImageFromImage(img)
	}
	return &Renderer{
		textures: textures,
		face:     text.NewGoXFace(basicfont.Face7x13),
		colors:   colors,
	}
}

// Draw очищает экран и рисует видимые узлы в порядке добавления.
func (r *Renderer) Draw(screen *ebiten.Image, root scene.Node) {
	screen.Fill(r.colors.Background)
	scene.Walk(root, func(n scene.Node) {
		switch node := n.(type) {
		case *scene.Sprite:
			r.drawSprite(screen, node)
		case *scene.Text:
			r.drawText(screen, node)
		}
	})
}

func (r *Renderer) drawSprite(screen *ebiten.Image, s *scene.Sprite) {
	e := s.Entity
	tex, ok := r.textures[e.Render.Texture]
	if !ok {
		hw, hh := e.Size.Half()
		vector.DrawFilledRect(screen,
			float32(e.Position.X-hw), float32(e.Position.Y-hh),
			float32(e.Size.Width), float32(e.Size.Height),
			r.colors.Fallback, false)
		return
	}

	// Якорь в центре текстуры, затем масштаб до размера сущности и поворот.
	b := tex.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(e.Size.Width/w, e.Size.Height/h)
	op.GeoM.Rotate(e.Heading.Angle)
	op.GeoM.Translate(e.Position.X, e.Position.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
}

func (r *Renderer) drawText(screen *ebiten.Image, t *scene.Text) {
	scale := t.Size / baseFontHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(t.Color)
	text.Draw(screen, t.Content, r.face, op)
}
