package data

import (
	"image/color"
	"math/rand"

	"battle-ebiten/core"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// SharedResources はゲーム全体で共有されるリソースを保持します。
type SharedResources struct {
	GameData     *core.GameData
	Config       Config
	Font         text.Face
	FontFace     font.Face
	Assets       *AssetStore
	Messages     *MessageManager
	ButtonImage  *widget.ButtonImage
	Rand         *rand.Rand
	BattleLogger BattleLogger
	Logger       *zap.Logger
}

// NewSharedResources はSharedResourcesを初期化して返します。
func NewSharedResources(
	gameData *core.GameData,
	config Config,
	fontFace font.Face,
	assets *AssetStore,
	messages *MessageManager,
	logger *zap.Logger,
) *SharedResources {
	return &SharedResources{
		GameData: gameData,
		Config:   config,
		Font:     text.NewGoXFace(fontFace),
		FontFace: fontFace,
		Assets:   assets,
		Messages: messages,
		ButtonImage: &widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}),
			Hover:   image.NewNineSliceColor(color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xFF}),
			Pressed: image.NewNineSliceColor(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}),
		},
		Rand:         rand.New(rand.NewSource(config.Game.RandomSeed)),
		BattleLogger: NewBattleLogger(messages, logger.Named("battle")),
		Logger:       logger,
	}
}
