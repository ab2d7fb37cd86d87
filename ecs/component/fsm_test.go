package component

import (
	"context"
	"errors"
	"testing"

	"battle-ebiten/core"

	"github.com/looplab/fsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationFSMTransitions(t *testing.T) {
	ctx := context.Background()
	m := NewAnimationFSM()
	assert.Equal(t, "idle", m.Current())

	require.NoError(t, m.Event(ctx, EventAttack))
	assert.Equal(t, "attack", m.Current())
	require.NoError(t, m.Event(ctx, EventHurt))
	require.NoError(t, m.Event(ctx, EventDie))
	assert.Equal(t, "death", m.Current())

	var invalid fsm.InvalidEventError
	assert.True(t, errors.As(m.Event(ctx, EventHurt), &invalid), "the dead cannot be hurt")

	require.NoError(t, m.Event(ctx, EventReset))
	assert.Equal(t, "idle", m.Current())

	var noTransition fsm.NoTransitionError
	assert.True(t, errors.As(m.Event(ctx, EventIdle), &noTransition))
}

func TestGameStateFSM(t *testing.T) {
	ctx := context.Background()
	m := NewGameStateFSM()
	gs := GameStateData{FSM: m}
	assert.Equal(t, core.StatePlaying, gs.Current())

	require.NoError(t, m.Event(ctx, EventLose))
	assert.Equal(t, core.StateDefeat, gs.Current())
	assert.Error(t, m.Event(ctx, EventWin))

	require.NoError(t, m.Event(ctx, EventRestart))
	require.NoError(t, m.Event(ctx, EventWin))
	assert.Equal(t, core.StateVictory, gs.Current())
}

func TestFighterHPRatio(t *testing.T) {
	assert.InDelta(t, 0.25, (&Fighter{MaxHP: 20, HP: 5}).HPRatio(), 1e-9)
	assert.Equal(t, 0.0, (&Fighter{MaxHP: 0, HP: 5}).HPRatio())
}
