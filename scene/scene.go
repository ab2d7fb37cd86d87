package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sceneは、bamennで管理される全てのシーンが満たすべきインターフェースです。
type Scene interface {
	ebiten.Game
}
