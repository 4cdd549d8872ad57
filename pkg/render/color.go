package render

import (
	"image/color"

	"go-arcade/internal/config"
)

// Colors holds the colors the renderer needs besides textures.
type Colors struct {
	Background color.RGBA
	Fallback   color.RGBA // Спрайт, текстура которого не загружена
}

// DefaultColors returns the configured palette.
func DefaultColors() Colors {
	return Colors{
		Background: config.BackgroundColor,
		Fallback:   config.FallbackColor,
	}
}
