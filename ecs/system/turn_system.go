package system

import (
	"battle-ebiten/core"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/yohamta/donburi"
)

// TurnOutcome は1ティック分のターン処理の結果です。
type TurnOutcome struct {
	Results        []core.ActionResult
	PlayerDefeated bool
}

// NextTurn はターンカウンタを1つ進めます。1..total を循環します。
func NextTurn(current, total int) int {
	if total <= 0 {
		return 1
	}
	return current%total + 1
}

// UpdateTurnSystem は現在の手番のファイターの行動を進めます。
// 手番のファイターは待機ティック数が経過するまで行動できません。
// 倒れた敵の手番は待機なしで飛ばします。
// プレイヤーが倒れている場合は何も行わず PlayerDefeated を返します。
func UpdateTurnSystem(ctx *BattleContext) TurnOutcome {
	var outcome TurnOutcome

	turn := entity.GetTurnState(ctx.World)
	player := entity.FindPlayer(ctx.World)
	if !component.FighterComponent.Get(player).Alive {
		outcome.PlayerDefeated = true
		return outcome
	}

	wait := ctx.Config.Battle.ActionWaitTime
	for _, entry := range entity.FightersInTurnOrder(ctx.World) {
		fighter := component.FighterComponent.Get(entry)
		if turn.Current != fighter.TurnOrder {
			continue
		}
		if !fighter.Alive {
			turn.Current = NextTurn(turn.Current, turn.Total)
			continue
		}

		turn.ActionCooldown++
		if turn.ActionCooldown < wait {
			continue
		}

		var result core.ActionResult
		var acted bool
		if entry.HasComponent(component.PlayerControlComponent) {
			result, acted = resolvePlayerCommand(ctx, entry)
		} else {
			result, acted = aiTakeTurn(ctx, entry, player)
		}
		if !acted {
			continue
		}

		outcome.Results = append(outcome.Results, result)
		turn.Current = NextTurn(turn.Current, turn.Total)
		turn.ActionCooldown = 0
	}

	return outcome
}

// resolvePlayerCommand はプレイヤーの要求を実行します。
// 対象が倒れている場合やポーションが無い場合は行動しません。
func resolvePlayerCommand(ctx *BattleContext, player *donburi.Entry) (core.ActionResult, bool) {
	switch ctx.Command.Type {
	case core.CommandAttack:
		target, ok := entity.FindFighter(ctx.World, ctx.Command.Target)
		if !ok {
			return core.ActionResult{}, false
		}
		tf := component.FighterComponent.Get(target)
		if !tf.Alive || tf.Team == component.FighterComponent.Get(player).Team {
			return core.ActionResult{}, false
		}
		return Attack(ctx, player, target), true
	case core.CommandPotion:
		if component.FighterComponent.Get(player).Potions <= 0 {
			return core.ActionResult{}, false
		}
		return Heal(ctx, player), true
	}
	return core.ActionResult{}, false
}
