package system

import (
	"image"
	"math/rand"
	"testing"

	"battle-ebiten/core"
	"battle-ebiten/data"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const spriteSize = 50

// testSprites は設定どおりのフレーム数を持つ spriteSize 四方のスプライトを返します。
func testSprites(cfg *data.Config) core.SpriteSet {
	set := core.SpriteSet{Frames: make([][]image.Image, len(core.AllActions))}
	for _, action := range core.AllActions {
		for i := 0; i < cfg.FrameCount(action); i++ {
			set.Frames[action] = append(set.Frames[action], image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize)))
		}
	}
	return set
}

type battleFixture struct {
	world   donburi.World
	config  *data.Config
	ctx     *BattleContext
	knight  *donburi.Entry
	bandit1 *donburi.Entry
	bandit2 *donburi.Entry
}

// newBattleFixture は標準編成 (騎士1体 vs 山賊2体) のワールドを用意します。
func newBattleFixture(t *testing.T) *battleFixture {
	t.Helper()
	cfg := data.DefaultConfig()
	world := donburi.NewWorld()
	roster := data.DefaultRoster()

	entity.EnsureWorldState(world, len(roster))
	entries := entity.CreateFighterEntities(world, roster, func(core.FighterData) core.SpriteSet {
		return testSprites(&cfg)
	}, cfg.Battle.HealThreshold)
	require.Len(t, entries, 3)

	return &battleFixture{
		world:  world,
		config: &cfg,
		ctx: &BattleContext{
			World:  world,
			Config: &cfg,
			Rand:   rand.New(rand.NewSource(1)),
		},
		knight:  entries[0],
		bandit1: entries[1],
		bandit2: entries[2],
	}
}

func (f *battleFixture) fighter(entry *donburi.Entry) *component.Fighter {
	return component.FighterComponent.Get(entry)
}

func (f *battleFixture) anim(entry *donburi.Entry) *component.Animation {
	return component.AnimationComponent.Get(entry)
}

func (f *battleFixture) turn() *component.TurnState {
	return entity.GetTurnState(f.world)
}

// runTicks は n ティック分ターン処理を進め、解決された行動を返します。
func (f *battleFixture) runTicks(n int) []core.ActionResult {
	var results []core.ActionResult
	for i := 0; i < n; i++ {
		f.ctx.Tick++
		f.ctx.Now = f.config.TickToMillis(f.ctx.Tick)
		results = append(results, UpdateTurnSystem(f.ctx).Results...)
	}
	return results
}
