package system

import (
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/yohamta/donburi"
)

// CheckGameEndSystem は敵が全滅しているかを判定します。
func CheckGameEndSystem(world donburi.World) bool {
	for _, entry := range entity.Enemies(world) {
		if component.FighterComponent.Get(entry).Alive {
			return false
		}
	}
	return true
}

// RestartBattle は全ファイターを初期状態に戻し、ターンを最初からやり直します。
// ゲーム状態の遷移は呼び出し側が SetGameState で行います。
func RestartBattle(world donburi.World, now int64) {
	for _, entry := range entity.FightersInTurnOrder(world) {
		f := component.FighterComponent.Get(entry)
		f.Alive = true
		f.Potions = f.StartPotions
		f.HP = f.MaxHP
		ResetAnimation(component.AnimationComponent.Get(entry), now)
	}

	turn := entity.GetTurnState(world)
	turn.Current = 1
	turn.ActionCooldown = 0

	ClearFloatingTexts(world)
}
