package entity

import (
	"image"
	"image/color"
	"strconv"

	"battle-ebiten/core"
	"battle-ebiten/data"
	"battle-ebiten/ecs/component"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// SpriteLoader はファイター構成からスプライト一式を用意する関数です。
type SpriteLoader func(f core.FighterData) core.SpriteSet

// InitializeBattleWorld は戦闘ワールドのECSエンティティを初期化します。
func InitializeBattleWorld(world donburi.World, res *data.SharedResources) {
	EnsureWorldState(world, len(res.GameData.Fighters))

	colors := res.Config.UI.Colors
	loader := func(f core.FighterData) core.SpriteSet {
		placeholder := colors.Enemy
		if f.Team == core.TeamPlayer {
			placeholder = colors.Player
		}
		return res.Assets.LoadFighterSprites(f.Name, placeholder)
	}

	CreateFighterEntities(world, res.GameData.Fighters, loader, res.Config.Battle.HealThreshold)
	res.Logger.Named("battle").Debug("ファイターエンティティを生成しました", zap.Int("count", len(res.GameData.Fighters)))
}

// CreateFighterEntities は編成データからECSのエンティティを生成します。
// 同じ名前のファイターはスプライトを共有します。
func CreateFighterEntities(world donburi.World, fighters []core.FighterData, loadSprites SpriteLoader, healThreshold float64) []*donburi.Entry {
	spriteCache := make(map[string]core.SpriteSet)
	entries := make([]*donburi.Entry, 0, len(fighters))

	for _, f := range fighters {
		entry := world.Entry(world.Create(
			component.FighterComponent,
			component.AnimationComponent,
			component.TransformComponent,
		))

		component.FighterComponent.SetValue(entry, component.Fighter{
			ID:           f.ID,
			Name:         f.Name,
			Team:         f.Team,
			TurnOrder:    f.TurnOrder,
			MaxHP:        f.MaxHP,
			HP:           f.MaxHP,
			Strength:     f.Strength,
			StartPotions: f.Potions,
			Potions:      f.Potions,
			Alive:        true,
		})

		sprites, ok := spriteCache[f.Name]
		if !ok {
			sprites = loadSprites(f)
			spriteCache[f.Name] = sprites
		}
		component.AnimationComponent.SetValue(entry, component.Animation{
			FSM:     component.NewAnimationFSM(),
			Sprites: sprites,
		})

		component.TransformComponent.SetValue(entry, component.Transform{
			X:    f.X,
			Y:    f.Y,
			Rect: centeredRect(sprites.Bounds().Size(), f.X, f.Y),
		})

		if f.Team == core.TeamPlayer {
			donburi.Add(entry, component.PlayerControlComponent, &component.PlayerControl{})
		} else {
			donburi.Add(entry, component.AIComponent, &component.AI{HealThreshold: healThreshold})
		}
		entries = append(entries, entry)
	}
	return entries
}

// centeredRect は (x, y) を中心とする size の矩形を返します。
func centeredRect(size image.Point, x, y float64) image.Rectangle {
	topLeft := image.Pt(int(x)-size.X/2, int(y)-size.Y/2)
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(size)}
}

// SpawnFloatingText は (x, y) を中心とする浮遊テキストを生成します。
func SpawnFloatingText(world donburi.World, x, y float64, amount int, c color.Color) *donburi.Entry {
	entry := world.Entry(world.Create(component.FloatingTextComponent))
	component.FloatingTextComponent.SetValue(entry, component.FloatingText{
		X:     x,
		Y:     y,
		Text:  strconv.Itoa(amount),
		Color: c,
	})
	return entry
}
