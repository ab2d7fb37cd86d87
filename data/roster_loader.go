package data

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"battle-ebiten/core"

	"go.uber.org/zap"
)

// DefaultRoster は fighters.csv が無い場合の標準編成 (騎士1体 vs 山賊2体) です。
func DefaultRoster() []core.FighterData {
	return []core.FighterData{
		{ID: "knight", Name: "Knight", Team: core.TeamPlayer, TurnOrder: 1, X: 200, Y: 260, MaxHP: 100, Strength: 10, Potions: 3},
		{ID: "bandit1", Name: "Bandit", Team: core.TeamEnemy, TurnOrder: 2, X: 550, Y: 270, MaxHP: 20, Strength: 4, Potions: 1},
		{ID: "bandit2", Name: "Bandit", Team: core.TeamEnemy, TurnOrder: 3, X: 700, Y: 270, MaxHP: 20, Strength: 4, Potions: 1},
	}
}

// LoadRoster はファイルからファイターの編成を読み込みます。
// ファイルが存在しない場合は DefaultRoster を返します。
func LoadRoster(paths AssetPaths, logger *zap.Logger) ([]core.FighterData, error) {
	path := paths.Resolve(paths.FightersCSV)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("編成ファイルが見つかりません。標準編成を使用します", zap.String("path", path))
		return DefaultRoster(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseRoster(raw, logger)
}

// ParseRoster はCSVデータからファイター構成を読み込み、ターン順に並べて返します。
// ヘッダー: id,name,team,turn_order,x,y,max_hp,strength,potions
func ParseRoster(raw []byte, logger *zap.Logger) ([]core.FighterData, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	if _, err := reader.Read(); err != nil { // Skip header
		return nil, fmt.Errorf("failed to read header from fighters data: %w", err)
	}

	var fighters []core.FighterData
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("fighters.csv の行の読み込みに失敗しました", zap.Error(err))
			continue
		}
		if len(record) < 9 {
			logger.Warn("列が不足している行をスキップします", zap.Strings("record", record))
			continue
		}
		team, err := parseTeam(record[2])
		if err != nil {
			logger.Warn("不正なチーム指定の行をスキップします", zap.Strings("record", record), zap.Error(err))
			continue
		}
		fighters = append(fighters, core.FighterData{
			ID:        strings.TrimSpace(record[0]),
			Name:      strings.TrimSpace(record[1]),
			Team:      team,
			TurnOrder: parseInt(record[3], len(fighters)+1),
			X:         parseFloat(record[4], 0),
			Y:         parseFloat(record[5], 0),
			MaxHP:     parseInt(record[6], 1),
			Strength:  parseInt(record[7], 0),
			Potions:   parseInt(record[8], 0),
		})
	}

	if err := validateRoster(fighters); err != nil {
		return nil, err
	}

	sort.SliceStable(fighters, func(i, j int) bool {
		return fighters[i].TurnOrder < fighters[j].TurnOrder
	})
	for i := range fighters {
		fighters[i].TurnOrder = i + 1
	}
	return fighters, nil
}

func parseTeam(s string) (core.TeamID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "player":
		return core.TeamPlayer, nil
	case "enemy":
		return core.TeamEnemy, nil
	}
	return core.TeamNone, fmt.Errorf("unknown team %q", s)
}

// validateRoster はプレイヤー1体と敵1体以上、IDの重複なしを検証します。
func validateRoster(fighters []core.FighterData) error {
	players, enemies := 0, 0
	seen := make(map[string]struct{}, len(fighters))
	for _, f := range fighters {
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("duplicate fighter id %q", f.ID)
		}
		seen[f.ID] = struct{}{}
		if f.MaxHP <= 0 {
			return fmt.Errorf("fighter %q must have positive max_hp", f.ID)
		}
		switch f.Team {
		case core.TeamPlayer:
			players++
		case core.TeamEnemy:
			enemies++
		}
	}
	if players != 1 {
		return fmt.Errorf("roster needs exactly one player, got %d", players)
	}
	if enemies == 0 {
		return errors.New("roster needs at least one enemy")
	}
	return nil
}
