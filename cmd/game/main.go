// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go-arcade/internal/app"
	"go-arcade/internal/assets"
	"go-arcade/internal/config"
	"go-arcade/internal/logger"
	"go-arcade/internal/platform"
	"go-arcade/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// AppGame связывает ядро игры с циклом ebiten.
type AppGame struct {
	game     *app.Game
	keyboard *platform.Keyboard
	renderer *render.Renderer
	size     int
}

func (a *AppGame) Update() error {
	a.keyboard.Poll(a.game)
	a.game.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.game.Stage().Root)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.size, a.size
}

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults are used when empty)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfiguration, err)
	}
	defer log.Sync()

	// Ресурсы грузятся до старта цикла; ошибка здесь фатальна.
	loader := assets.NewLoader(os.DirFS(cfg.Assets.Dir), log)
	images, err := loader.LoadAll(context.Background(), cfg.TextureIDs())
	if err != nil {
		log.Error("failed to load assets", zap.String("dir", cfg.Assets.Dir), zap.Error(err))
		return err
	}

	game, err := app.NewGame(cfg, log)
	if err != nil {
		return err
	}

	a := &AppGame{
		game:     game,
		keyboard: platform.NewKeyboard(),
		renderer: render.NewRenderer(images, render.DefaultColors()),
		size:     cfg.ViewportSize,
	}
	ebiten.SetWindowSize(cfg.ViewportSize, cfg.ViewportSize)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
