package system

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"battle-ebiten/core"
	"battle-ebiten/data"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"
	"battle-ebiten/event"

	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// BattleContext は戦闘シーンの各状態が共通して必要とする依存関係をまとめた構造体です。
type BattleContext struct {
	World  donburi.World
	Config *data.Config
	Rand   *rand.Rand
	Tick   int
	Now    int64 // Tickをミリ秒に換算した現在時刻

	// このティックで解決された入力
	Command        core.PlayerCommand
	RestartPressed bool
}

// BattleState は戦闘シーンの各状態が満たすべきインターフェースです。
type BattleState interface {
	Update(ctx *BattleContext) ([]event.GameEvent, error)
}

// NewBattleStates は状態ごとの実装を返します。
func NewBattleStates() map[core.GameState]BattleState {
	gameOver := &GameOverState{}
	return map[core.GameState]BattleState{
		core.StatePlaying: &PlayingState{},
		core.StateVictory: gameOver,
		core.StateDefeat:  gameOver,
	}
}

// --- PlayingState ---

type PlayingState struct{}

func (s *PlayingState) Update(ctx *BattleContext) ([]event.GameEvent, error) {
	var gameEvents []event.GameEvent

	outcome := UpdateTurnSystem(ctx)
	for _, result := range outcome.Results {
		gameEvents = append(gameEvents, event.ActionResolvedGameEvent{Result: result})
	}

	if outcome.PlayerDefeated {
		gameEvents = append(gameEvents,
			event.GameOverGameEvent{Result: core.StateDefeat},
			event.StateChangeRequestedGameEvent{NextState: core.StateDefeat},
		)
		return gameEvents, nil
	}

	if CheckGameEndSystem(ctx.World) {
		gameEvents = append(gameEvents,
			event.GameOverGameEvent{Result: core.StateVictory},
			event.StateChangeRequestedGameEvent{NextState: core.StateVictory},
		)
	}

	return gameEvents, nil
}

// --- GameOverState ---

// GameOverState は勝利・敗北画面です。リスタートボタンの入力のみを待ちます。
type GameOverState struct{}

func (s *GameOverState) Update(ctx *BattleContext) ([]event.GameEvent, error) {
	var gameEvents []event.GameEvent
	if ctx.RestartPressed {
		gameEvents = append(gameEvents,
			event.RestartRequestedGameEvent{},
			event.StateChangeRequestedGameEvent{NextState: core.StatePlaying},
		)
	}
	return gameEvents, nil
}

// SetGameState はゲーム状態FSMを next へ遷移させます。
// 既に next の場合は何もしません。
func SetGameState(world donburi.World, next core.GameState) error {
	gs := entity.GetGameState(world)
	if gs.Current() == next {
		return nil
	}

	var name string
	switch next {
	case core.StateVictory:
		name = component.EventWin
	case core.StateDefeat:
		name = component.EventLose
	case core.StatePlaying:
		name = component.EventRestart
	default:
		return fmt.Errorf("unknown game state %q", next)
	}

	err := gs.FSM.Event(context.Background(), name)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return fmt.Errorf("game state %s -> %s: %w", gs.Current(), next, err)
	}
	return nil
}
