package ui

import (
	"image"
	"testing"

	"battle-ebiten/core"

	"github.com/stretchr/testify/assert"
)

func TestNewButtonUsesImageSize(t *testing.T) {
	b := NewButton(100, 470, image.NewRGBA(image.Rect(0, 0, 64, 64)))
	assert.Equal(t, image.Rect(100, 470, 164, 534), b.Rect)
}

func TestButtonFiresOncePerPress(t *testing.T) {
	b := NewButton(0, 0, image.NewRGBA(image.Rect(0, 0, 10, 10)))
	inside := image.Pt(5, 5)

	assert.True(t, b.Update(core.InputState{Cursor: inside, MouseDown: true}))
	assert.False(t, b.Update(core.InputState{Cursor: inside, MouseDown: true}), "holding the button does not repeat")
	assert.False(t, b.Update(core.InputState{Cursor: inside}))
	assert.True(t, b.Update(core.InputState{Cursor: inside, MouseDown: true}))
}

func TestButtonIgnoresPressOutside(t *testing.T) {
	b := NewButton(0, 0, image.NewRGBA(image.Rect(0, 0, 10, 10)))

	assert.False(t, b.Update(core.InputState{Cursor: image.Pt(10, 10), MouseDown: true}))
	// 外で押したまま中に入ると反応する
	assert.True(t, b.Update(core.InputState{Cursor: image.Pt(9, 9), MouseDown: true}))
}
