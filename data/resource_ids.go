package data

import (
	"image"
	"image/color"
	"path"
	"strconv"
)

// ImageID は固定アセット画像の識別子です。
type ImageID int

// Resource IDs
const (
	_ ImageID = iota
	ImageBackground
	ImagePanel
	ImagePotion
	ImageRestart
	ImageVictory
	ImageDefeat
	ImageSword
)

// PlaceholderSpec はアセットが無い場合に生成する代替画像の仕様です。
type PlaceholderSpec struct {
	Width  int
	Height int
	Color  color.Color
	Label  string
}

// ImageInfo は画像アセットの登録情報です。
// Sizeが非ゼロの場合、読み込んだ画像はそのサイズに拡縮されます。
type ImageInfo struct {
	Path     string
	Size     image.Point
	Fallback PlaceholderSpec
}

// imageRegistry は固定アセット画像の登録表を返します。
func imageRegistry(cfg *Config) map[ImageID]ImageInfo {
	dir := cfg.AssetPaths.ImageDir
	ui := cfg.UI
	return map[ImageID]ImageInfo{
		ImageBackground: {
			Path:     path.Join(dir, "Background", "background.png"),
			Fallback: PlaceholderSpec{ui.Screen.Width, ui.Screen.Height, color.RGBA{R: 100, G: 150, B: 200, A: 255}, "Background"},
		},
		ImagePanel: {
			Path:     path.Join(dir, "Icons", "panel.png"),
			Fallback: PlaceholderSpec{ui.Screen.Width, ui.BottomPanel, color.RGBA{R: 50, G: 50, B: 50, A: 255}, "Panel"},
		},
		ImagePotion: {
			Path:     path.Join(dir, "Icons", "potion.png"),
			Size:     image.Pt(ui.PotionButton.Width, ui.PotionButton.Height),
			Fallback: PlaceholderSpec{64, 64, color.RGBA{G: 255, A: 255}, "Potion"},
		},
		ImageRestart: {
			Path:     path.Join(dir, "Icons", "restart.png"),
			Size:     image.Pt(ui.RestartButton.Width, ui.RestartButton.Height),
			Fallback: PlaceholderSpec{120, 30, color.RGBA{R: 100, G: 100, B: 100, A: 255}, "Restart"},
		},
		ImageVictory: {
			Path:     path.Join(dir, "Icons", "victory.png"),
			Fallback: PlaceholderSpec{300, 100, color.RGBA{R: 255, G: 255, A: 255}, "VICTORY!"},
		},
		ImageDefeat: {
			Path:     path.Join(dir, "Icons", "defeat.png"),
			Fallback: PlaceholderSpec{300, 100, color.RGBA{R: 255, A: 255}, "DEFEAT!"},
		},
		ImageSword: {
			Path:     path.Join(dir, "Icons", "sword.png"),
			Fallback: PlaceholderSpec{32, 32, color.RGBA{R: 200, G: 200, B: 200, A: 255}, "⚔"},
		},
	}
}

// spriteFramePath はファイターのアニメーションフレームのパスを返します。
func spriteFramePath(dir, fighterName, action string, index int) string {
	return path.Join(dir, fighterName, action, strconv.Itoa(index)+".png")
}
