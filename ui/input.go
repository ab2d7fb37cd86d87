package ui

import (
	"image"

	"battle-ebiten/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ReadInput は現在のマウスとキーボードの状態を core.InputState にまとめます。
func ReadInput() core.InputState {
	x, y := ebiten.CursorPosition()
	return core.InputState{
		Cursor:    image.Pt(x, y),
		Clicked:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Cancel:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
