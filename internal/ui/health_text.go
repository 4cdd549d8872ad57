// internal/ui/health_text.go
package ui

import (
	"fmt"

	"go-arcade/internal/event"
	"go-arcade/internal/scene"
)

// HealthText держит текст здоровья в сцене в актуальном состоянии.
type HealthText struct {
	node *scene.Text
}

// NewHealthText выставляет начальное значение и возвращает подписчика на PlayerHit.
func NewHealthText(node *scene.Text, health int) *HealthText {
	node.Content = FormatHealth(health)
	return &HealthText{node: node}
}

// OnEvent обрабатывает события, на которые подписан индикатор.
func (h *HealthText) OnEvent(e event.Event) {
	if e.Type != event.PlayerHit {
		return
	}
	if data, ok := e.Data.(event.HitData); ok {
		h.node.Content = FormatHealth(data.Health)
	}
}

// Text возвращает текущую строку.
func (h *HealthText) Text() string {
	return h.node.Content
}

func FormatHealth(health int) string {
	return fmt.Sprintf("Health: %d", health)
}
