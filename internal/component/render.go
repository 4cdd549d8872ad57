// component/render.go
package component

// Renderable — компонент для отрисовки
type Renderable struct {
	Texture string // ID текстуры из загрузчика ресурсов
	Visible bool
}
