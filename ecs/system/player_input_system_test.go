package system

import (
	"image"
	"testing"

	"battle-ebiten/core"
	"battle-ebiten/ecs/component"

	"github.com/stretchr/testify/assert"
)

func TestPlayerInputHoverAndClick(t *testing.T) {
	f := newBattleFixture(t)
	center := component.TransformComponent.Get(f.bandit1).Rect.Min.Add(image.Pt(spriteSize/2, spriteSize/2))

	hovered, cmd := UpdatePlayerInputSystem(f.world, core.InputState{Cursor: center})
	assert.Equal(t, f.bandit1, hovered)
	assert.Equal(t, core.CommandNone, cmd.Type)

	hovered, cmd = UpdatePlayerInputSystem(f.world, core.InputState{Cursor: center, Clicked: true, MouseDown: true})
	assert.Equal(t, f.bandit1, hovered)
	assert.Equal(t, core.PlayerCommand{Type: core.CommandAttack, Target: "bandit1"}, cmd)
}

func TestPlayerInputIgnoresDeadEnemiesAndPlayer(t *testing.T) {
	f := newBattleFixture(t)
	onBandit := component.TransformComponent.Get(f.bandit2).Rect.Min
	onKnight := component.TransformComponent.Get(f.knight).Rect.Min
	f.fighter(f.bandit2).Alive = false

	hovered, cmd := UpdatePlayerInputSystem(f.world, core.InputState{Cursor: onBandit, Clicked: true})
	assert.Nil(t, hovered)
	assert.Equal(t, core.CommandNone, cmd.Type)

	hovered, cmd = UpdatePlayerInputSystem(f.world, core.InputState{Cursor: onKnight, Clicked: true})
	assert.Nil(t, hovered)
	assert.Equal(t, core.CommandNone, cmd.Type)
}

func TestPlayerInputRectIsHalfOpen(t *testing.T) {
	f := newBattleFixture(t)
	rect := component.TransformComponent.Get(f.bandit1).Rect

	hovered, _ := UpdatePlayerInputSystem(f.world, core.InputState{Cursor: rect.Max})
	assert.Nil(t, hovered)

	hovered, _ = UpdatePlayerInputSystem(f.world, core.InputState{Cursor: rect.Max.Sub(image.Pt(1, 1))})
	assert.Equal(t, f.bandit1, hovered)
}
