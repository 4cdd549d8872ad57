// internal/app/game.go
package app

import (
	"fmt"

	"go-arcade/internal/component"
	"go-arcade/internal/config"
	"go-arcade/internal/entity"
	"go-arcade/internal/event"
	"go-arcade/internal/input"
	"go-arcade/internal/scene"
	"go-arcade/internal/state"
	"go-arcade/internal/system"
	"go-arcade/internal/ui"
	"go-arcade/internal/utils"

	"go.uber.org/zap"
)

// Game holds the whole session state: entities, pool, health, scene and systems.
// Вся мутация происходит в Update, вызываемом раз в кадр из одного потока.
type Game struct {
	Config          config.Config
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem  *system.MovementSystem
	SpawnSystem     *system.SpawnSystem
	CollisionSystem *system.CollisionSystem
	TrackingSystem  *system.TrackingSystem

	logger     *zap.Logger
	stage      *scene.Stage
	player     *entity.Entity
	pool       *entity.Pool
	health     component.Health
	tracker    *input.Tracker
	arrows     input.Arrows
	healthText *ui.HealthText
	sm         *state.StateMachine
	phase      component.Phase
	frame      uint64
}

// NewGame validates cfg and builds a session in the Playing phase.
func NewGame(cfg config.Config, logger *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	viewport := float64(cfg.ViewportSize)
	g := &Game{
		Config:          cfg,
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(cfg.Seed),
		logger:          logger,
		stage:           scene.NewStage(),
		health:          component.Health{Value: cfg.Player.Health},
		tracker:         input.NewTracker(),
		sm:              state.NewStateMachine(),
	}

	g.setupPlayer(viewport)
	g.setupGuiText(viewport)
	g.setupEnemies(viewport)

	g.EventDispatcher.Subscribe(event.PlayerHit, g.healthText)

	g.sm.SetState(&playingState{game: g})

	logger.Info("game created",
		zap.Int("viewport", cfg.ViewportSize),
		zap.Int64("seed", g.Rng.Seed()),
		zap.Int("health", g.health.Value),
		zap.Int("enemies", g.pool.Len()),
		zap.String("steering", string(cfg.Enemy.Steering)),
	)
	return g, nil
}

func (g *Game) setupPlayer(viewport float64) {
	size := component.Size{Width: g.Config.Player.Width, Height: g.Config.Player.Height}
	g.player = entity.NewPlayer(size, viewport, g.Config.Assets.Player)
	g.arrows = input.BindArrows(g.tracker, &g.player.Velocity, g.Config.Player.Speed)
	g.stage.Main.AddChild(&scene.Sprite{Entity: g.player})
	g.MovementSystem = system.NewMovementSystem(g.player, viewport)
}

func (g *Game) setupGuiText(viewport float64) {
	healthNode := &scene.Text{
		X:       config.HealthTextX,
		Y:       config.HealthTextY,
		Size:    config.HealthFontSize,
		Color:   config.TextColor,
		Visible: true,
	}
	g.healthText = ui.NewHealthText(healthNode, g.health.Value)
	g.stage.Health = healthNode
	g.stage.Main.AddChild(healthNode)

	message := &scene.Text{
		Content: config.EndText,
		X:       config.EndTextX,
		Y:       viewport/2 - config.EndTextOffsetY,
		Size:    config.EndFontSize,
		Color:   config.TextColor,
		Visible: true,
	}
	g.stage.Message = message
	g.stage.GameOver.AddChild(message)
}

func (g *Game) setupEnemies(viewport float64) {
	ec := g.Config.Enemy
	size := component.Size{Width: ec.Width, Height: ec.Height}

	// Новые враги сразу попадают в игровой слой сцены; переиспользованные уже там.
	g.pool = entity.NewPool(func(id entity.ID) *entity.Entity {
		e := entity.NewEnemy(id, size, g.Config.Assets.Enemy, ec.RotationSpeed)
		g.stage.Main.AddChild(&scene.Sprite{Entity: e})
		return e
	})

	lanes := system.LaneConfig{Slots: ec.LaneSlots, Spacing: ec.LaneSpacing, Margin: ec.LaneMargin}
	g.SpawnSystem = system.NewSpawnSystem(g.pool, g.Rng, viewport, lanes, g.EventDispatcher, g.logger)
	g.CollisionSystem = system.NewCollisionSystem(g.player, &g.health, g.Config.HitDamage, g.pool, g.SpawnSystem, g.EventDispatcher, g.logger)
	g.TrackingSystem = system.NewTrackingSystem(g.player, g.pool, ec.Steering)

	for i := 0; i < ec.Count; i++ {
		g.SpawnSystem.Spawn()
	}
}

// Update продвигает симуляцию на один кадр. Ошибок в цикле нет: всё проверено в NewGame.
func (g *Game) Update() {
	g.frame++
	g.sm.Update()
}

// HandleInput передаёт событие клавиатуры трекеру.
func (g *Game) HandleInput(ev input.Event) {
	g.tracker.Handle(ev)
}

func (g *Game) Phase() component.Phase { return g.phase }

func (g *Game) Health() int { return g.health.Value }

func (g *Game) Frame() uint64 { return g.frame }

func (g *Game) Stage() *scene.Stage { return g.stage }

func (g *Game) Player() *entity.Entity { return g.player }

func (g *Game) Pool() *entity.Pool { return g.pool }

// Enemies возвращает активных врагов.
func (g *Game) Enemies() []*entity.Entity { return g.pool.Active() }

func (g *Game) Tracker() *input.Tracker { return g.tracker }

func (g *Game) Arrows() input.Arrows { return g.arrows }

func (g *Game) String() string {
	return fmt.Sprintf("Game{phase=%s frame=%d health=%d enemies=%d}", g.phase, g.frame, g.health.Value, g.pool.Len())
}
