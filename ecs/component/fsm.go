package component

import (
	"battle-ebiten/core"

	"github.com/looplab/fsm"
)

// アニメーションFSMのイベント名です。
const (
	EventIdle   = "idle"
	EventAttack = "attack"
	EventHurt   = "hurt"
	EventDie    = "die"
	EventReset  = "reset"
)

// ゲーム状態FSMのイベント名です。
const (
	EventWin     = "win"
	EventLose    = "lose"
	EventRestart = "restart"
)

// NewAnimationFSM は待機状態から始まるアニメーションFSMを生成します。
// 死亡状態からは reset でのみ抜けられます。
func NewAnimationFSM() *fsm.FSM {
	idle := core.ActionIdle.StateName()
	attack := core.ActionAttack.StateName()
	hurt := core.ActionHurt.StateName()
	death := core.ActionDeath.StateName()
	living := []string{idle, attack, hurt}

	return fsm.NewFSM(
		idle,
		fsm.Events{
			{Name: EventIdle, Src: living, Dst: idle},
			{Name: EventAttack, Src: living, Dst: attack},
			{Name: EventHurt, Src: living, Dst: hurt},
			{Name: EventDie, Src: living, Dst: death},
			{Name: EventReset, Src: []string{idle, attack, hurt, death}, Dst: idle},
		},
		fsm.Callbacks{},
	)
}

// NewGameStateFSM は戦闘中から始まるゲーム状態FSMを生成します。
func NewGameStateFSM() *fsm.FSM {
	playing := string(core.StatePlaying)
	victory := string(core.StateVictory)
	defeat := string(core.StateDefeat)

	return fsm.NewFSM(
		playing,
		fsm.Events{
			{Name: EventWin, Src: []string{playing}, Dst: victory},
			{Name: EventLose, Src: []string{playing}, Dst: defeat},
			{Name: EventRestart, Src: []string{victory, defeat}, Dst: playing},
		},
		fsm.Callbacks{},
	)
}
