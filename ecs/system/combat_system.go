package system

import (
	"image/color"
	"math/rand"

	"battle-ebiten/core"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/yohamta/donburi"
)

// RollDamage は攻撃力に ±spread の一様乱数を加えたダメージを返します。
// 結果は minDamage を下回りません。
func RollDamage(r *rand.Rand, strength, spread, minDamage int) int {
	offset := 0
	if spread > 0 {
		offset = r.Intn(2*spread+1) - spread
	}
	return max(minDamage, strength+offset)
}

// HealAmount は最大HPを超えない範囲の回復量を返します。
func HealAmount(effect, maxHP, hp int) int {
	return max(0, min(effect, maxHP-hp))
}

// Attack は attacker から target への攻撃を解決します。
// target のHPが1未満になった場合は0に丸めて戦闘不能にします。
func Attack(ctx *BattleContext, attacker, target *donburi.Entry) core.ActionResult {
	battle := ctx.Config.Battle
	af := component.FighterComponent.Get(attacker)
	tf := component.FighterComponent.Get(target)

	damage := RollDamage(ctx.Rand, af.Strength, battle.DamageSpread, battle.MinDamage)
	tf.HP -= damage
	targetAnim := component.AnimationComponent.Get(target)
	PlayAction(targetAnim, core.ActionHurt, ctx.Now)

	died := false
	if tf.HP < 1 {
		tf.HP = 0
		tf.Alive = false
		died = true
		PlayAction(targetAnim, core.ActionDeath, ctx.Now)
	}

	spawnAboveSprite(ctx, target, damage, ctx.Config.UI.Colors.Red)
	PlayAction(component.AnimationComponent.Get(attacker), core.ActionAttack, ctx.Now)

	return core.ActionResult{
		Kind:       core.ResultAttack,
		ActorID:    af.ID,
		ActorName:  af.Name,
		TargetID:   tf.ID,
		TargetName: tf.Name,
		Amount:     damage,
		TargetDied: died,
	}
}

// Heal はポーションを1つ消費してHPを回復します。
// 回復量が0でもポーションは消費されます。
func Heal(ctx *BattleContext, entry *donburi.Entry) core.ActionResult {
	f := component.FighterComponent.Get(entry)
	amount := HealAmount(ctx.Config.Battle.PotionEffect, f.MaxHP, f.HP)
	f.HP += amount
	f.Potions--

	spawnAboveSprite(ctx, entry, amount, ctx.Config.UI.Colors.Green)

	return core.ActionResult{
		Kind:       core.ResultHeal,
		ActorID:    f.ID,
		ActorName:  f.Name,
		TargetID:   f.ID,
		TargetName: f.Name,
		Amount:     amount,
	}
}

// spawnAboveSprite はスプライト上端の中央に数値を浮かべます。
func spawnAboveSprite(ctx *BattleContext, entry *donburi.Entry, amount int, c color.Color) {
	rect := component.TransformComponent.Get(entry).Rect
	centerX := rect.Min.X + rect.Dx()/2
	entity.SpawnFloatingText(ctx.World, float64(centerX), float64(rect.Min.Y), amount, c)
}
