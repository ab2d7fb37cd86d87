package system

import (
	"battle-ebiten/core"
	"battle-ebiten/ecs/component"

	"github.com/yohamta/donburi"
)

// AIShouldHeal はHP割合がしきい値を下回り、ポーションが残っているかを判定します。
func AIShouldHeal(f *component.Fighter, threshold float64) bool {
	return f.HPRatio() < threshold && f.Potions > 0
}

// aiTakeTurn はAI制御のファイターの行動を決定して実行します。
// 回復が必要なら回復し、そうでなければプレイヤーを攻撃します。
func aiTakeTurn(ctx *BattleContext, entry, player *donburi.Entry) (core.ActionResult, bool) {
	f := component.FighterComponent.Get(entry)
	threshold := ctx.Config.Battle.HealThreshold
	if entry.HasComponent(component.AIComponent) {
		threshold = component.AIComponent.Get(entry).HealThreshold
	}

	if AIShouldHeal(f, threshold) {
		return Heal(ctx, entry), true
	}
	if player == nil || !component.FighterComponent.Get(player).Alive {
		return core.ActionResult{}, false
	}
	return Attack(ctx, entry, player), true
}
