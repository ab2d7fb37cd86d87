package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"battle-ebiten/core"

	"go.uber.org/zap"
)

// DefaultAssetPaths はアセットの標準配置を返します。
func DefaultAssetPaths(root string) AssetPaths {
	return AssetPaths{
		Root:         root,
		GameSettings: "assets/configs/game_settings.json",
		Messages:     "assets/texts/messages.json",
		FightersCSV:  "assets/databases/fighters.csv",
		Font:         "assets/fonts/font.ttf",
		ImageDir:     "img",
	}
}

// Resolve はRootを基準にした実際のファイルパスを返します。
func (p AssetPaths) Resolve(rel string) string {
	if filepath.IsAbs(rel) || p.Root == "" {
		return rel
	}
	return filepath.Join(p.Root, rel)
}

// DefaultConfig はgame_settings.jsonが存在しない場合にも動作する既定値を返します。
func DefaultConfig() Config {
	var cfg Config

	cfg.Battle = BattleConfig{
		ActionWaitTime: 90,
		PotionEffect:   15,
		DamageSpread:   5,
		MinDamage:      1,
		HealThreshold:  0.5,
	}

	cfg.Animation.FrameDurationMs = 100
	cfg.Animation.ScaleFactor = 3
	cfg.Animation.FloatingTextLifetime = 30
	cfg.Animation.FloatingTextRise = 1
	cfg.Animation.FrameCounts.Idle = 8
	cfg.Animation.FrameCounts.Attack = 8
	cfg.Animation.FrameCounts.Hurt = 3
	cfg.Animation.FrameCounts.Death = 10
	cfg.Animation.Placeholder.Width = 150
	cfg.Animation.Placeholder.Height = 150

	ui := &cfg.UI
	ui.WindowTitle = "Battle"
	ui.TPS = 60
	ui.Screen.Width = 800
	ui.Screen.Height = 550
	ui.BottomPanel = 150
	ui.FontSize = 26
	ui.HealthBar.Width = 150
	ui.HealthBar.Height = 20
	ui.Panel.PlayerX = 100
	ui.Panel.EnemyX = 550
	ui.Panel.TextOffsetY = 10
	ui.Panel.HealthBarOffset = 40
	ui.Panel.EnemyRowSpacing = 60
	ui.Panel.PotionCountX = 150
	ui.PotionButton = Rect{X: 100, Y: 70, Width: 64, Height: 64}
	ui.RestartButton = Rect{X: 330, Y: 120, Width: 120, Height: 30}
	ui.VictoryPos = Point{X: 250, Y: 50}
	ui.DefeatPos = Point{X: 290, Y: 50}
	ui.Colors = ParsedColors{
		White:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Black:      color.RGBA{A: 255},
		Red:        color.RGBA{R: 255, A: 255},
		Green:      color.RGBA{G: 255, A: 255},
		Background: color.RGBA{R: 20, G: 30, B: 50, A: 255},
		Player:     color.RGBA{R: 255, G: 100, B: 100, A: 255},
		Enemy:      color.RGBA{R: 100, G: 100, B: 255, A: 255},
	}

	cfg.AssetPaths = DefaultAssetPaths(".")
	return cfg
}

// LoadConfig は既定値の上に設定ファイルを重ねて読み込みます。
// ファイルが存在しない場合は既定値のまま返します。
func LoadConfig(paths AssetPaths, logger *zap.Logger) (Config, error) {
	cfg := DefaultConfig()
	cfg.AssetPaths = paths

	path := paths.Resolve(paths.GameSettings)
	jsonFile, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("設定ファイルが見つかりません。既定値を使用します", zap.String("path", path))
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(jsonFile, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	cfg.AssetPaths = paths

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logger.Info("設定ファイルを読み込みました", zap.String("path", path))
	return cfg, nil
}

// Validate は計算やレイアウトが破綻する値を検出します。
func (c *Config) Validate() error {
	switch {
	case c.Battle.ActionWaitTime < 0:
		return errors.New("Battle.ActionWaitTime must not be negative")
	case c.Battle.DamageSpread < 0:
		return errors.New("Battle.DamageSpread must not be negative")
	case c.Animation.FrameDurationMs <= 0:
		return errors.New("Animation.FrameDurationMs must be positive")
	case c.Animation.ScaleFactor <= 0:
		return errors.New("Animation.ScaleFactor must be positive")
	case c.UI.TPS <= 0:
		return errors.New("UI.TPS must be positive")
	case c.UI.Screen.Width <= 0 || c.UI.Screen.Height <= c.UI.BottomPanel:
		return errors.New("UI.Screen must be larger than the bottom panel")
	}
	return nil
}

// FrameCount は指定アクションのアニメーションフレーム数を返します。
func (c *Config) FrameCount(action core.ActionType) int {
	fc := c.Animation.FrameCounts
	switch action {
	case core.ActionIdle:
		return fc.Idle
	case core.ActionAttack:
		return fc.Attack
	case core.ActionHurt:
		return fc.Hurt
	case core.ActionDeath:
		return fc.Death
	}
	return 0
}

// TickToMillis はティック数をミリ秒に換算します。
func (c *Config) TickToMillis(tick int) int64 {
	return int64(tick) * 1000 / int64(c.UI.TPS)
}
