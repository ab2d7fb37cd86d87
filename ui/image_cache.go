package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageCache は image.Image から *ebiten.Image への変換結果を保持します。
// 同じ画像を毎フレームGPUへ転送しないためのものです。
type ImageCache struct {
	images map[image.Image]*ebiten.Image
}

func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[image.Image]*ebiten.Image)}
}

// Get は変換済みの画像を返します。src がnilならnilです。
func (c *ImageCache) Get(src image.Image) *ebiten.Image {
	if src == nil {
		return nil
	}
	if img, ok := c.images[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	c.images[src] = img
	return img
}
