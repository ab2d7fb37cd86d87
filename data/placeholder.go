package data

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// CreatePlaceholder は単色で塗りつぶし、中央にラベルを描いた代替画像を生成します。
// ラベル中の改行はそのまま行送りとして扱われます。
func CreatePlaceholder(spec PlaceholderSpec, face font.Face, textColor color.Color) image.Image {
	w, h := spec.Width, spec.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	fill := spec.Color
	if fill == nil {
		fill = color.White
	}
	dc.SetColor(fill)
	dc.Clear()

	if spec.Label != "" {
		if face != nil {
			dc.SetFontFace(face)
		}
		dc.SetColor(textColor)
		dc.DrawStringWrapped(spec.Label, float64(w)/2, float64(h)/2, 0.5, 0.5, float64(w), 1.0, gg.AlignCenter)
	}
	return dc.Image()
}
