package system

import (
	"math/rand"
	"testing"

	"battle-ebiten/core"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollDamageRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		d := RollDamage(r, 10, 5, 1)
		require.GreaterOrEqual(t, d, 5)
		require.LessOrEqual(t, d, 15)
		seen[d] = true
	}
	assert.Len(t, seen, 11, "every offset in [-5, 5] occurs")
}

func TestRollDamageMinimum(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		d := RollDamage(r, 4, 5, 1)
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 9)
	}
	assert.Equal(t, 4, RollDamage(r, 4, 0, 1))
	assert.Equal(t, 1, RollDamage(r, 0, 0, 1))
}

func TestHealAmount(t *testing.T) {
	tests := []struct {
		effect, maxHP, hp, want int
	}{
		{15, 100, 100, 0},
		{15, 100, 90, 10},
		{15, 100, 50, 15},
		{15, 20, 6, 14},
		{15, 100, 120, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HealAmount(tt.effect, tt.maxHP, tt.hp))
	}
}

func TestAttackDamagesTarget(t *testing.T) {
	f := newBattleFixture(t)
	f.ctx.Now = 500

	result := Attack(f.ctx, f.knight, f.bandit1)

	assert.Equal(t, core.ResultAttack, result.Kind)
	assert.Equal(t, "Knight", result.ActorName)
	assert.Equal(t, "Bandit", result.TargetName)
	assert.False(t, result.TargetDied)
	assert.Equal(t, 20-result.Amount, f.fighter(f.bandit1).HP)
	assert.True(t, f.fighter(f.bandit1).Alive)

	assert.Equal(t, core.ActionHurt, f.anim(f.bandit1).Action())
	assert.Equal(t, int64(500), f.anim(f.bandit1).UpdateTime)
	assert.Equal(t, core.ActionAttack, f.anim(f.knight).Action())
}

func TestAttackKillsTarget(t *testing.T) {
	f := newBattleFixture(t)
	f.fighter(f.bandit1).HP = 1

	result := Attack(f.ctx, f.knight, f.bandit1)

	assert.True(t, result.TargetDied)
	assert.Equal(t, 0, f.fighter(f.bandit1).HP, "HP is clamped at zero")
	assert.False(t, f.fighter(f.bandit1).Alive)
	assert.Equal(t, core.ActionDeath, f.anim(f.bandit1).Action())
	assert.Equal(t, 0, f.anim(f.bandit1).FrameIndex)
}

func TestAttackSpawnsRedTextAboveTarget(t *testing.T) {
	f := newBattleFixture(t)

	result := Attack(f.ctx, f.knight, f.bandit1)

	texts := entity.FloatingTexts(f.world)
	require.Len(t, texts, 1)
	ft := component.FloatingTextComponent.Get(texts[0])
	rect := component.TransformComponent.Get(f.bandit1).Rect
	assert.Equal(t, float64(rect.Min.X+rect.Dx()/2), ft.X)
	assert.Equal(t, float64(rect.Min.Y), ft.Y)
	assert.Equal(t, f.config.UI.Colors.Red, ft.Color)
	assert.Equal(t, result.Amount, atoi(t, ft.Text))
}

func TestHealRestoresAndConsumesPotion(t *testing.T) {
	f := newBattleFixture(t)
	f.fighter(f.knight).HP = 50

	result := Heal(f.ctx, f.knight)

	assert.Equal(t, core.ResultHeal, result.Kind)
	assert.Equal(t, 15, result.Amount)
	assert.Equal(t, 65, f.fighter(f.knight).HP)
	assert.Equal(t, 2, f.fighter(f.knight).Potions)

	texts := entity.FloatingTexts(f.world)
	require.Len(t, texts, 1)
	ft := component.FloatingTextComponent.Get(texts[0])
	assert.Equal(t, "15", ft.Text)
	assert.Equal(t, f.config.UI.Colors.Green, ft.Color)
	assert.Equal(t, 200.0, ft.X)
	assert.Equal(t, float64(260-spriteSize/2), ft.Y)
}

func TestHealDoesNotExceedMaxHP(t *testing.T) {
	f := newBattleFixture(t)
	f.fighter(f.knight).HP = 95

	result := Heal(f.ctx, f.knight)

	assert.Equal(t, 5, result.Amount)
	assert.Equal(t, 100, f.fighter(f.knight).HP)
}
