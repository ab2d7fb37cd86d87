package system

import (
	"image/color"
	"testing"

	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatingTextRisesAndExpires(t *testing.T) {
	f := newBattleFixture(t)
	entity.SpawnFloatingText(f.world, 100, 200, 12, color.White)

	lifetime := f.config.Animation.FloatingTextLifetime
	for i := 0; i < lifetime; i++ {
		UpdateFloatingTextSystem(f.world, f.config)
	}

	texts := entity.FloatingTexts(f.world)
	require.Len(t, texts, 1, "text survives while counter <= lifetime")
	ft := component.FloatingTextComponent.Get(texts[0])
	assert.Equal(t, float64(200-lifetime), ft.Y)
	assert.Equal(t, 100.0, ft.X)
	assert.Equal(t, lifetime, ft.Counter)

	UpdateFloatingTextSystem(f.world, f.config)
	assert.Empty(t, entity.FloatingTexts(f.world))
}

func TestClearFloatingTexts(t *testing.T) {
	f := newBattleFixture(t)
	entity.SpawnFloatingText(f.world, 0, 0, 1, color.White)
	entity.SpawnFloatingText(f.world, 0, 0, 2, color.White)

	ClearFloatingTexts(f.world)

	assert.Empty(t, entity.FloatingTexts(f.world))
	assert.Len(t, entity.FightersInTurnOrder(f.world), 3, "fighters are untouched")
}
