package ui

import (
	"image"

	"battle-ebiten/data"
)

// Layout はボトムパネルとオーバーレイの配置を計算します。
type Layout struct {
	ui data.UIConfig
}

// NewLayout は設定からLayoutを作成します。
func NewLayout(ui data.UIConfig) Layout {
	return Layout{ui: ui}
}

// PanelTop はボトムパネル上端のY座標です。
func (l Layout) PanelTop() int {
	return l.ui.BattlefieldHeight()
}

// PlayerTextPos はプレイヤーのHP表示位置です。
func (l Layout) PlayerTextPos() image.Point {
	return image.Pt(l.ui.Panel.PlayerX, l.PanelTop()+l.ui.Panel.TextOffsetY)
}

// EnemyTextPos は i 番目の敵のHP表示位置です。
func (l Layout) EnemyTextPos(i int) image.Point {
	return image.Pt(l.ui.Panel.EnemyX, l.PanelTop()+l.ui.Panel.TextOffsetY+i*l.ui.Panel.EnemyRowSpacing)
}

// PlayerHealthBarPos はプレイヤーのHPバーの位置です。
func (l Layout) PlayerHealthBarPos() image.Point {
	return image.Pt(l.ui.Panel.PlayerX, l.PanelTop()+l.ui.Panel.HealthBarOffset)
}

// EnemyHealthBarPos は i 番目の敵のHPバーの位置です。
func (l Layout) EnemyHealthBarPos(i int) image.Point {
	return image.Pt(l.ui.Panel.EnemyX, l.PanelTop()+l.ui.Panel.HealthBarOffset+i*l.ui.Panel.EnemyRowSpacing)
}

// PotionButtonPos はポーションボタンの左上です。
func (l Layout) PotionButtonPos() image.Point {
	return image.Pt(l.ui.PotionButton.X, l.PanelTop()+l.ui.PotionButton.Y)
}

// PotionCountPos は残りポーション数の表示位置です。
func (l Layout) PotionCountPos() image.Point {
	return image.Pt(l.ui.Panel.PotionCountX, l.PanelTop()+l.ui.PotionButton.Y)
}

// RestartButtonPos はリスタートボタンの左上です。画面座標で指定されます。
func (l Layout) RestartButtonPos() image.Point {
	return image.Pt(l.ui.RestartButton.X, l.ui.RestartButton.Y)
}

// HealthBarFill は緑のバーの幅を返します。最大HPが0以下なら0です。
func HealthBarFill(width, hp, maxHP int) float32 {
	if maxHP <= 0 {
		return 0
	}
	ratio := float32(hp) / float32(maxHP)
	if ratio < 0 {
		ratio = 0
	}
	return float32(width) * ratio
}
