package event

import (
	"battle-ebiten/core"
)

// GameEvent は、ゲームロジックから発行されるすべてのイベントを示すマーカーインターフェースです。
type GameEvent interface {
	isGameEvent()
}

// ActionResolvedGameEvent は、攻撃または回復が解決されたことを示すイベントです。
type ActionResolvedGameEvent struct {
	Result core.ActionResult
}

func (e ActionResolvedGameEvent) isGameEvent() {}

// GameOverGameEvent は、勝敗が確定したことを示すイベントです。
type GameOverGameEvent struct {
	Result core.GameState
}

func (e GameOverGameEvent) isGameEvent() {}

// RestartRequestedGameEvent は、リスタートボタンが押されたことを示すイベントです。
type RestartRequestedGameEvent struct{}

func (e RestartRequestedGameEvent) isGameEvent() {}

// GoToTitleSceneGameEvent は、タイトルシーンへの遷移を要求するイベントです。
type GoToTitleSceneGameEvent struct{}

func (e GoToTitleSceneGameEvent) isGameEvent() {}

// StateChangeRequestedGameEvent は、ゲームの状態変更が要求されたことを示すイベントです。
type StateChangeRequestedGameEvent struct {
	NextState core.GameState
}

func (e StateChangeRequestedGameEvent) isGameEvent() {}
