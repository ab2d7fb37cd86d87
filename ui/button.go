package ui

import (
	"image"

	"battle-ebiten/core"
)

// Button は画像ボタンの当たり判定です。
// マウスボタンを押している間は一度だけ反応し、離すと再び反応できるようになります。
type Button struct {
	Rect    image.Rectangle
	Image   image.Image
	clicked bool
}

// NewButton は左上が (x, y) で画像と同じ大きさのボタンを作成します。
func NewButton(x, y int, img image.Image) *Button {
	size := img.Bounds().Size()
	return &Button{
		Rect:  image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+size.X, y+size.Y)},
		Image: img,
	}
}

// Update はこのティックでボタンが押されたかを返します。
func (b *Button) Update(input core.InputState) bool {
	action := false
	if input.Cursor.In(b.Rect) && input.MouseDown && !b.clicked {
		action = true
		b.clicked = true
	}
	if !input.MouseDown {
		b.clicked = false
	}
	return action
}
