package system

import (
	"context"
	"errors"

	"battle-ebiten/core"
	"battle-ebiten/data"
	"battle-ebiten/ecs/component"

	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var actionEvents = map[core.ActionType]string{
	core.ActionIdle:   component.EventIdle,
	core.ActionAttack: component.EventAttack,
	core.ActionHurt:   component.EventHurt,
	core.ActionDeath:  component.EventDie,
}

// PlayAction はアニメーションを action に切り替え、先頭フレームから再生し直します。
// 同じアクションへの切り替えも先頭からの再生になります。
// FSMが遷移を許さない場合 (死亡中の被弾など) は何もせず false を返します。
func PlayAction(anim *component.Animation, action core.ActionType, now int64) bool {
	return fire(anim, actionEvents[action], now)
}

// ResetAnimation は死亡状態を含むどの状態からも待機アニメーションに戻します。
func ResetAnimation(anim *component.Animation, now int64) {
	fire(anim, component.EventReset, now)
}

func fire(anim *component.Animation, name string, now int64) bool {
	err := anim.FSM.Event(context.Background(), name)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return false
	}
	anim.FrameIndex = 0
	anim.UpdateTime = now
	return true
}

// UpdateAnimationSystem は全ファイターのアニメーションフレームを進めます。
func UpdateAnimationSystem(world donburi.World, config *data.Config, now int64) {
	cooldown := int64(config.Animation.FrameDurationMs)
	query.NewQuery(filter.Contains(component.AnimationComponent)).Each(world, func(entry *donburi.Entry) {
		advanceAnimation(component.AnimationComponent.Get(entry), cooldown, now)
	})
}

// advanceAnimation は cooldown ミリ秒を超えて経過していれば1フレーム進めます。
// 最終フレームを過ぎると、死亡アニメーションは最終フレームで停止し、
// それ以外は待機アニメーションに戻ります。
func advanceAnimation(anim *component.Animation, cooldown, now int64) {
	if now-anim.UpdateTime > cooldown {
		anim.UpdateTime = now
		anim.FrameIndex++
	}

	action := anim.Action()
	count := anim.Sprites.FrameCount(action)
	if anim.FrameIndex < count {
		return
	}
	if action == core.ActionDeath {
		anim.FrameIndex = max(0, count-1)
		return
	}
	PlayAction(anim, core.ActionIdle, now)
}
