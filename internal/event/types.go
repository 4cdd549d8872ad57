// internal/event/types.go
package event

const (
	PlayerHit      EventType = "PlayerHit"      // Враг задел игрока
	EnemyRespawned EventType = "EnemyRespawned" // Враг вернулся из пула на новую позицию
	GameEnded      EventType = "GameEnded"      // Здоровье кончилось
)

// HitData — данные события PlayerHit.
type HitData struct {
	EnemyID uint32
	Damage  int
	Health  int // Здоровье после удара
}

// RespawnData — данные события EnemyRespawned.
type RespawnData struct {
	EnemyID uint32
	X, Y    float64
}
