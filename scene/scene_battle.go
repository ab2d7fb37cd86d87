package scene

import (
	"math/rand"

	"battle-ebiten/core"
	"battle-ebiten/data"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"
	"battle-ebiten/ecs/system"
	"battle-ebiten/event"
	"battle-ebiten/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

type BattleScene struct {
	resources *data.SharedResources
	manager   *SceneManager
	world     donburi.World
	tickCount int
	rand      *rand.Rand
	logger    *zap.Logger

	uiManager    *ui.BattleUIManager
	battleStates map[core.GameState]system.BattleState
}

func NewBattleScene(res *data.SharedResources, manager *SceneManager) *BattleScene {
	bs := &BattleScene{
		resources:    res,
		manager:      manager,
		world:        donburi.NewWorld(),
		rand:         res.Rand,
		logger:       res.Logger.Named("scene"),
		battleStates: system.NewBattleStates(),
	}

	entity.InitializeBattleWorld(bs.world, bs.resources)
	bs.uiManager = ui.NewBattleUIManager(res)

	return bs
}

func (bs *BattleScene) Update() error {
	return bs.step(ui.ReadInput())
}

// step は1ティック分の戦闘を進めます。
// 入力はスナップショットとして受け取るので、ebitenを起動せずに呼び出せます。
func (bs *BattleScene) step(input core.InputState) error {
	bs.tickCount++
	cfg := &bs.resources.Config
	now := cfg.TickToMillis(bs.tickCount)

	system.UpdateAnimationSystem(bs.world, cfg, now)
	system.UpdateFloatingTextSystem(bs.world, cfg)

	state := entity.GetGameState(bs.world).Current()

	hovered, cmd := system.UpdatePlayerInputSystem(bs.world, input)
	potionPressed, restartPressed := bs.uiManager.Update(input, hovered, state)
	// 攻撃とポーションが同時に要求された場合は攻撃を優先します
	if cmd.Type == core.CommandNone && potionPressed {
		cmd = core.PlayerCommand{Type: core.CommandPotion}
	}

	battleContext := &system.BattleContext{
		World:          bs.world,
		Config:         cfg,
		Rand:           bs.rand,
		Tick:           bs.tickCount,
		Now:            now,
		Command:        cmd,
		RestartPressed: restartPressed,
	}

	allGameEvents := make([]event.GameEvent, 0)
	if currentStateImpl, ok := bs.battleStates[state]; ok {
		tempGameEvents, err := currentStateImpl.Update(battleContext)
		if err != nil {
			bs.logger.Error("ゲーム状態の更新に失敗しました", zap.String("state", string(state)), zap.Error(err))
		}
		allGameEvents = append(allGameEvents, tempGameEvents...)
	} else {
		bs.logger.Warn("不明なゲーム状態です", zap.String("state", string(state)))
	}
	if input.Cancel {
		allGameEvents = append(allGameEvents, event.GoToTitleSceneGameEvent{})
	}

	return bs.processGameEvents(allGameEvents, now)
}

// processGameEvents はシステムから発行されたイベントを順に処理します。
func (bs *BattleScene) processGameEvents(gameEvents []event.GameEvent, now int64) error {
	battleLogger := bs.resources.BattleLogger
	for _, evt := range gameEvents {
		switch e := evt.(type) {
		case event.ActionResolvedGameEvent:
			battleLogger.LogAction(e.Result)
		case event.GameOverGameEvent:
			battleLogger.LogGameState(e.Result, bs.playerName())
		case event.RestartRequestedGameEvent:
			system.RestartBattle(bs.world, now)
			battleLogger.LogRestart()
		case event.StateChangeRequestedGameEvent:
			if err := system.SetGameState(bs.world, e.NextState); err != nil {
				return err
			}
		case event.GoToTitleSceneGameEvent:
			if bs.manager != nil {
				bs.manager.GoToTitleScene()
			}
		}
	}
	return nil
}

func (bs *BattleScene) playerName() string {
	if player := entity.FindPlayer(bs.world); player != nil {
		return component.FighterComponent.Get(player).Name
	}
	return ""
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(bs.resources.Config.UI.Colors.Background)
	bs.uiManager.Draw(screen, bs.world, entity.GetGameState(bs.world).Current())
}

func (bs *BattleScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return bs.resources.Config.UI.Screen.Width, bs.resources.Config.UI.Screen.Height
}
