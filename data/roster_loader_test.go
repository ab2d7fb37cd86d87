package data

import (
	"testing"

	"battle-ebiten/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const rosterHeader = "id,name,team,turn_order,x,y,max_hp,strength,potions\n"

func TestParseRosterSortsByTurnOrder(t *testing.T) {
	raw := rosterHeader +
		"bandit2,Bandit,enemy,30,700,270,20,4,1\n" +
		"knight,Knight,player,10,200,260,100,10,3\n" +
		"bandit1,Bandit,enemy,20,550,270,20,4,1\n"

	fighters, err := ParseRoster([]byte(raw), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, fighters, 3)

	assert.Equal(t, "knight", fighters[0].ID)
	assert.Equal(t, "bandit1", fighters[1].ID)
	assert.Equal(t, "bandit2", fighters[2].ID)
	for i, f := range fighters {
		assert.Equal(t, i+1, f.TurnOrder)
	}

	knight := fighters[0]
	assert.Equal(t, core.TeamPlayer, knight.Team)
	assert.Equal(t, 200.0, knight.X)
	assert.Equal(t, 260.0, knight.Y)
	assert.Equal(t, 100, knight.MaxHP)
	assert.Equal(t, 10, knight.Strength)
	assert.Equal(t, 3, knight.Potions)
}

func TestParseRosterSkipsMalformedRows(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	raw := rosterHeader +
		"knight,Knight,player,1,200,260,100,10,3\n" +
		"ghost,Ghost,neutral,2,0,0,10,1,0\n" +
		"short,row\n" +
		"bandit1,Bandit,Enemy,3,550,270,20,4,1\n"

	fighters, err := ParseRoster([]byte(raw), zap.New(obs))
	require.NoError(t, err)

	require.Len(t, fighters, 2)
	assert.Equal(t, core.TeamEnemy, fighters[1].Team)
	assert.Equal(t, 2, logs.Len())
}

func TestParseRosterValidation(t *testing.T) {
	tests := []struct {
		name string
		rows string
	}{
		{name: "no player", rows: "b1,Bandit,enemy,1,0,0,20,4,1\n"},
		{name: "two players", rows: "k1,Knight,player,1,0,0,100,10,3\nk2,Knight,player,2,0,0,100,10,3\nb1,Bandit,enemy,3,0,0,20,4,1\n"},
		{name: "no enemy", rows: "k1,Knight,player,1,0,0,100,10,3\n"},
		{name: "duplicate id", rows: "k1,Knight,player,1,0,0,100,10,3\nk1,Bandit,enemy,2,0,0,20,4,1\n"},
		{name: "zero hp", rows: "k1,Knight,player,1,0,0,100,10,3\nb1,Bandit,enemy,2,0,0,0,4,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoster([]byte(rosterHeader+tt.rows), zap.NewNop())
			assert.Error(t, err)
		})
	}
}

func TestParseRosterEmptyInput(t *testing.T) {
	_, err := ParseRoster(nil, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadRosterFallsBackToDefault(t *testing.T) {
	fighters, err := LoadRoster(DefaultAssetPaths(t.TempDir()), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, DefaultRoster(), fighters)
}

func TestLoadRosterReadsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/databases/fighters.csv", rosterHeader+
		"hero,Hero,player,1,100,100,50,8,2\n"+
		"orc,Orc,enemy,2,500,100,40,6,0\n")

	fighters, err := LoadRoster(DefaultAssetPaths(root), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, fighters, 2)
	assert.Equal(t, "Hero", fighters[0].Name)
	assert.Equal(t, "Orc", fighters[1].Name)
}

func TestDefaultRoster(t *testing.T) {
	fighters := DefaultRoster()
	require.Len(t, fighters, 3)

	assert.Equal(t, core.FighterData{ID: "knight", Name: "Knight", Team: core.TeamPlayer, TurnOrder: 1, X: 200, Y: 260, MaxHP: 100, Strength: 10, Potions: 3}, fighters[0])
	for _, b := range fighters[1:] {
		assert.Equal(t, "Bandit", b.Name)
		assert.Equal(t, core.TeamEnemy, b.Team)
		assert.Equal(t, 20, b.MaxHP)
		assert.Equal(t, 4, b.Strength)
		assert.Equal(t, 1, b.Potions)
	}
}
