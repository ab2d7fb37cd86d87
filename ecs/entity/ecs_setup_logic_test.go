package entity

import (
	"image"
	"image/color"
	"testing"

	"battle-ebiten/core"
	"battle-ebiten/data"
	"battle-ebiten/ecs/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func spritesOfSize(w, h int) core.SpriteSet {
	set := core.SpriteSet{Frames: make([][]image.Image, len(core.AllActions))}
	for _, action := range core.AllActions {
		set.Frames[action] = []image.Image{image.NewRGBA(image.Rect(0, 0, w, h))}
	}
	return set
}

func newTestWorld(t *testing.T) (donburi.World, []*donburi.Entry, map[string]int) {
	t.Helper()
	world := donburi.NewWorld()
	roster := data.DefaultRoster()
	EnsureWorldState(world, len(roster))

	calls := make(map[string]int)
	entries := CreateFighterEntities(world, roster, func(f core.FighterData) core.SpriteSet {
		calls[f.Name]++
		return spritesOfSize(60, 40)
	}, 0.5)
	require.Len(t, entries, len(roster))
	return world, entries, calls
}

func TestCreateFighterEntities(t *testing.T) {
	world, entries, calls := newTestWorld(t)

	assert.Equal(t, map[string]int{"Knight": 1, "Bandit": 1}, calls, "fighters with the same name share sprites")

	knight := component.FighterComponent.Get(entries[0])
	assert.Equal(t, "knight", knight.ID)
	assert.Equal(t, 100, knight.HP)
	assert.Equal(t, 3, knight.StartPotions)
	assert.True(t, knight.Alive)
	assert.True(t, entries[0].HasComponent(component.PlayerControlComponent))
	assert.False(t, entries[0].HasComponent(component.AIComponent))

	for _, e := range entries[1:] {
		assert.True(t, e.HasComponent(component.AIComponent))
		assert.InDelta(t, 0.5, component.AIComponent.Get(e).HealThreshold, 1e-9)
	}

	tr := component.TransformComponent.Get(entries[0])
	assert.Equal(t, image.Rect(170, 240, 230, 280), tr.Rect, "rect is centred on the fighter position")

	anim := component.AnimationComponent.Get(entries[1])
	assert.Equal(t, core.ActionIdle, anim.Action())
	assert.NotNil(t, anim.CurrentFrame())

	assert.Len(t, FightersInTurnOrder(world), 3)
}

func TestWorldStateQueries(t *testing.T) {
	world, entries, _ := newTestWorld(t)

	turn := GetTurnState(world)
	assert.Equal(t, 1, turn.Current)
	assert.Equal(t, 3, turn.Total)
	assert.Equal(t, core.StatePlaying, GetGameState(world).Current())

	assert.Equal(t, "knight", component.FighterComponent.Get(FindPlayer(world)).ID)

	enemies := Enemies(world)
	require.Len(t, enemies, 2)
	assert.Equal(t, "bandit1", component.FighterComponent.Get(enemies[0]).ID)
	assert.Equal(t, "bandit2", component.FighterComponent.Get(enemies[1]).ID)

	found, ok := FindFighter(world, "bandit2")
	require.True(t, ok)
	assert.Equal(t, component.FighterComponent.Get(entries[2]).ID, component.FighterComponent.Get(found).ID)

	_, ok = FindFighter(world, "dragon")
	assert.False(t, ok)
}

func TestEnsureWorldStateIsIdempotent(t *testing.T) {
	world, _, _ := newTestWorld(t)
	GetTurnState(world).Current = 2

	EnsureWorldState(world, 5)

	turn := GetTurnState(world)
	assert.Equal(t, 2, turn.Current)
	assert.Equal(t, 5, turn.Total)
}

func TestGetTurnStatePanicsWithoutWorldState(t *testing.T) {
	assert.Panics(t, func() { GetTurnState(donburi.NewWorld()) })
}

func TestSpawnFloatingText(t *testing.T) {
	world := donburi.NewWorld()
	green := color.RGBA{G: 255, A: 255}

	SpawnFloatingText(world, 12, 34, 15, green)

	texts := FloatingTexts(world)
	require.Len(t, texts, 1)
	ft := component.FloatingTextComponent.Get(texts[0])
	assert.Equal(t, component.FloatingText{X: 12, Y: 34, Text: "15", Color: green}, *ft)
}
