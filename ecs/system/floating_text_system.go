package system

import (
	"battle-ebiten/data"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/yohamta/donburi"
)

// UpdateFloatingTextSystem は浮遊テキストを上昇させ、寿命を過ぎたものを削除します。
func UpdateFloatingTextSystem(world donburi.World, config *data.Config) {
	var expired []*donburi.Entry
	for _, entry := range entity.FloatingTexts(world) {
		ft := component.FloatingTextComponent.Get(entry)
		ft.Y -= float64(config.Animation.FloatingTextRise)
		ft.Counter++
		if ft.Counter > config.Animation.FloatingTextLifetime {
			expired = append(expired, entry)
		}
	}
	for _, entry := range expired {
		world.Remove(entry.Entity())
	}
}

// ClearFloatingTexts は全ての浮遊テキストを削除します。
func ClearFloatingTexts(world donburi.World) {
	for _, entry := range entity.FloatingTexts(world) {
		world.Remove(entry.Entity())
	}
}
