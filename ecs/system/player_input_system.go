package system

import (
	"battle-ebiten/core"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/yohamta/donburi"
)

// UpdatePlayerInputSystem はカーソル下の生存している敵を探し、クリックされていれば攻撃要求を返します。
// 敵のスプライトが重なっている場合は、ターン順で後の敵が優先されます。
// hovered はカーソル下の敵で、いなければnilです。
func UpdatePlayerInputSystem(world donburi.World, input core.InputState) (hovered *donburi.Entry, cmd core.PlayerCommand) {
	for _, entry := range entity.Enemies(world) {
		f := component.FighterComponent.Get(entry)
		if !f.Alive {
			continue
		}
		if !input.Cursor.In(component.TransformComponent.Get(entry).Rect) {
			continue
		}
		hovered = entry
		if input.Clicked {
			cmd = core.PlayerCommand{Type: core.CommandAttack, Target: f.ID}
		}
	}
	return hovered, cmd
}
