package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"go-arcade/internal/logger"

	"gopkg.in/yaml.v3"
)

const (
	ScreenSize    = 500 // Сторона квадратного вьюпорта по умолчанию
	WindowTitle   = "Arcade"
	PlayerSpeed   = 5.0 // Пикселей за кадр
	PlayerHealth  = 10
	HitDamage     = 1
	EntitySize    = 40.0
	EnemyCount    = 1
	RotationSpeed = 0.1

	// Полосы появления врагов: x = w/2 + LaneMargin + w*slot*LaneSpacing
	LaneMargin  = 10.0
	LaneSlots   = 9
	LaneSpacing = 1.9

	HealthTextX    = 10
	HealthTextY    = 10
	HealthFontSize = 20
	EndText        = "The End!"
	EndTextX       = 120
	EndTextOffsetY = 32
	EndFontSize    = 64

	PlayerTexture = "player.png"
	EnemyTexture  = "enemy.png"
	AssetsDir     = "assets"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	FallbackColor   = color.RGBA{255, 0, 255, 255} // Спрайт без текстуры
)

// ErrInvalidConfiguration возвращается, если значения конфигурации нельзя использовать.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// SteeringMode — способ поворота врага к игроку.
type SteeringMode string

const (
	// SteeringReference: rotation += current - (1-t)*target, как в исходной игре.
	SteeringReference SteeringMode = "reference"
	// SteeringSmooth: поворот по кратчайшей дуге на долю t за кадр.
	SteeringSmooth SteeringMode = "smooth"
)

// Config — настройки сессии, читаемые из YAML.
type Config struct {
	ViewportSize int           `yaml:"viewport_size"`
	Seed         int64         `yaml:"seed"` // 0 — сид от текущего времени
	HitDamage    int           `yaml:"hit_damage"`
	Player       PlayerConfig  `yaml:"player"`
	Enemy        EnemyConfig   `yaml:"enemy"`
	Assets       AssetsConfig  `yaml:"assets"`
	Log          logger.Config `yaml:"log"`
}

type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Health int     `yaml:"health"`
}

type EnemyConfig struct {
	Count         int          `yaml:"count"`
	Width         float64      `yaml:"width"`
	Height        float64      `yaml:"height"`
	RotationSpeed float64      `yaml:"rotation_speed"`
	Steering      SteeringMode `yaml:"steering"`
	LaneSlots     int          `yaml:"lane_slots"`
	LaneSpacing   float64      `yaml:"lane_spacing"`
	LaneMargin    float64      `yaml:"lane_margin"`
}

type AssetsConfig struct {
	Dir    string `yaml:"dir"`
	Player string `yaml:"player"`
	Enemy  string `yaml:"enemy"`
}

// Default возвращает конфигурацию исходной игры.
func Default() Config {
	return Config{
		ViewportSize: ScreenSize,
		HitDamage:    HitDamage,
		Player: PlayerConfig{
			Speed:  PlayerSpeed,
			Width:  EntitySize,
			Height: EntitySize,
			Health: PlayerHealth,
		},
		Enemy: EnemyConfig{
			Count:         EnemyCount,
			Width:         EntitySize,
			Height:        EntitySize,
			RotationSpeed: RotationSpeed,
			Steering:      SteeringSmooth,
			LaneSlots:     LaneSlots,
			LaneSpacing:   LaneSpacing,
			LaneMargin:    LaneMargin,
		},
		Assets: AssetsConfig{
			Dir:    AssetsDir,
			Player: PlayerTexture,
			Enemy:  EnemyTexture,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load читает YAML поверх значений по умолчанию и проверяет результат.
// Пустой path означает конфигурацию по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает YAML поверх значений по умолчанию.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to unmarshal config: %v", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// Validate проверяет значения; все ошибки оборачивают ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.ViewportSize <= 0 {
		return invalid("viewport_size must be positive, got %d", c.ViewportSize)
	}
	if c.HitDamage < 0 {
		return invalid("hit_damage must not be negative, got %d", c.HitDamage)
	}
	if c.Player.Speed < 0 {
		return invalid("player.speed must not be negative, got %v", c.Player.Speed)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Player.Health <= 0 {
		return invalid("player.health must be positive, got %d", c.Player.Health)
	}
	if c.Enemy.Count < 0 {
		return invalid("enemy.count must not be negative, got %d", c.Enemy.Count)
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		return invalid("enemy size must be positive, got %vx%v", c.Enemy.Width, c.Enemy.Height)
	}
	if c.Enemy.LaneSlots < 0 || c.Enemy.LaneSpacing < 0 || c.Enemy.LaneMargin < 0 {
		return invalid("enemy lane settings must not be negative")
	}
	switch c.Enemy.Steering {
	case SteeringReference, SteeringSmooth:
	default:
		return invalid("unknown enemy.steering %q", c.Enemy.Steering)
	}

	viewport := float64(c.ViewportSize)
	if c.Player.Width > viewport || c.Player.Height > viewport {
		return invalid("player does not fit into viewport %d", c.ViewportSize)
	}
	if c.Enemy.Width > viewport || c.Enemy.Height > viewport {
		return invalid("enemy does not fit into viewport %d", c.ViewportSize)
	}
	if c.Assets.Player == "" || c.Assets.Enemy == "" {
		return invalid("assets.player and assets.enemy are required")
	}
	return nil
}

// TextureIDs возвращает ID всех текстур, которые нужно загрузить до старта.
func (c Config) TextureIDs() []string {
	return []string{c.Assets.Player, c.Assets.Enemy}
}
