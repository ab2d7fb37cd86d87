package component

// ECSのCに相当するコンポーネント定義を集約します。

import (
	"image"
	"image/color"

	"battle-ebiten/core"

	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// --- Componentの型定義 ---
// 各コンポーネントにユニークな型情報を持たせます。
var (
	FighterComponent       = donburi.NewComponentType[Fighter]()
	AnimationComponent     = donburi.NewComponentType[Animation]()
	TransformComponent     = donburi.NewComponentType[Transform]()
	PlayerControlComponent = donburi.NewComponentType[PlayerControl]()
	AIComponent            = donburi.NewComponentType[AI]()

	// --- Effect Components ---
	FloatingTextComponent = donburi.NewComponentType[FloatingText]()

	// --- World State Components ---
	TurnStateComponent = donburi.NewComponentType[TurnState]()
	GameStateComponent = donburi.NewComponentType[GameStateData]()
)

// WorldStateTag はワールド状態エンティティを識別するためのタグコンポーネントです。
var WorldStateTag = donburi.NewComponentType[struct{}]()

// --- Component Data Structs ---

// Fighter はファイターの能力値と生存状態を保持します。
type Fighter struct {
	ID           string
	Name         string
	Team         core.TeamID
	TurnOrder    int
	MaxHP        int
	HP           int
	Strength     int
	StartPotions int
	Potions      int
	Alive        bool
}

// HPRatio は最大HPに対する現在HPの割合を返します。最大HPが0以下なら0です。
func (f *Fighter) HPRatio() float64 {
	if f.MaxHP <= 0 {
		return 0
	}
	return float64(f.HP) / float64(f.MaxHP)
}

// Animation はファイターのアニメーション状態です。
// 現在のアクションはFSMの状態として保持します。
type Animation struct {
	FSM        *fsm.FSM
	FrameIndex int
	UpdateTime int64 // 最後にフレームを切り替えた時刻 (ミリ秒)
	Sprites    core.SpriteSet
}

// Action は現在のアクションを返します。
func (a *Animation) Action() core.ActionType {
	return core.ActionFromState(a.FSM.Current())
}

// CurrentFrame は描画すべきフレーム画像を返します。
func (a *Animation) CurrentFrame() image.Image {
	return a.Sprites.Frame(a.Action(), a.FrameIndex)
}

// Transform はスプライトの中心座標と当たり判定矩形です。
// Rect は生成時の待機フレームのサイズから決まり、以後変化しません。
type Transform struct {
	X    float64
	Y    float64
	Rect image.Rectangle
}

// PlayerControl はプレイヤーが操作するファイターを示すタグです。
type PlayerControl struct{}

// AI は敵ファイターの行動判断パラメータです。
type AI struct {
	HealThreshold float64
}

// FloatingText はダメージや回復量を表示する浮遊テキストです。
// X, Y はテキストの中心座標です。
type FloatingText struct {
	X       float64
	Y       float64
	Text    string
	Color   color.Color
	Counter int
}

// TurnState はターン進行の状態です。Current は 1..Total を循環します。
type TurnState struct {
	Current        int
	Total          int
	ActionCooldown int
}

// GameStateData は戦闘全体の進行状態 (playing / victory / defeat) を保持します。
type GameStateData struct {
	FSM *fsm.FSM
}

// Current は現在のゲーム状態を返します。
func (g *GameStateData) Current() core.GameState {
	return core.GameState(g.FSM.Current())
}
