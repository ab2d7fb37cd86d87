package core

import "image"

// --- Enums and Constants ---

type TeamID int
type GameState string
type ActionType int
type CommandType int
type ResultKind string

const (
	TeamPlayer TeamID = 0
	TeamEnemy  TeamID = 1
	TeamNone   TeamID = -1
)

// GameState は戦闘全体の進行状態です。
const (
	StatePlaying GameState = "playing"
	StateVictory GameState = "victory"
	StateDefeat  GameState = "defeat"
)

// ActionType はファイターのアニメーション種別です。
// 値はアニメーションリストのインデックスとしても使われます。
const (
	ActionIdle ActionType = iota
	ActionAttack
	ActionHurt
	ActionDeath
)

// AllActions はアセットの読み込み順に並んだ全アクションです。
var AllActions = []ActionType{ActionIdle, ActionAttack, ActionHurt, ActionDeath}

var actionNames = map[ActionType]string{
	ActionIdle:   "Idle",
	ActionAttack: "Attack",
	ActionHurt:   "Hurt",
	ActionDeath:  "Death",
}

var actionStates = map[ActionType]string{
	ActionIdle:   "idle",
	ActionAttack: "attack",
	ActionHurt:   "hurt",
	ActionDeath:  "death",
}

// String はアセットのディレクトリ名として使われる表示名を返します。
func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// StateName はFSMの状態名を返します。
func (a ActionType) StateName() string {
	return actionStates[a]
}

// ActionFromState はFSMの状態名からActionTypeを逆引きします。
func ActionFromState(state string) ActionType {
	for action, name := range actionStates {
		if name == state {
			return action
		}
	}
	return ActionIdle
}

// CommandType はプレイヤーがこのティックで要求した行動です。
const (
	CommandNone CommandType = iota
	CommandAttack
	CommandPotion
)

const (
	ResultAttack ResultKind = "attack"
	ResultHeal   ResultKind = "heal"
)

// --- Data Structures ---

// FighterData は fighters.csv の1行に対応するファイターの構成データです。
type FighterData struct {
	ID        string
	Name      string
	Team      TeamID
	TurnOrder int
	X         float64
	Y         float64
	MaxHP     int
	Strength  int
	Potions   int
}

// GameData はシーン間で共有される静的なゲームデータです。
type GameData struct {
	Fighters []FighterData
}

// MessageTemplate defines the structure for a single message in the JSON file.
type MessageTemplate struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// InputState は1ティック分のマウス入力のスナップショットです。
// ebitenへの依存をシステム層から切り離すため、シーンが毎ティック組み立てます。
type InputState struct {
	Cursor    image.Point
	Clicked   bool // このティックでボタンが押された
	MouseDown bool // ボタンが押下中
	Cancel    bool // Escキーでタイトルへ戻る
}

// PlayerCommand はプレイヤーの入力から解決された行動要求です。
type PlayerCommand struct {
	Type   CommandType
	Target string // 攻撃対象のファイターID
}

// ActionResult は1回の行動の解決結果です。
type ActionResult struct {
	Kind       ResultKind
	ActorID    string
	ActorName  string
	TargetID   string
	TargetName string
	Amount     int
	TargetDied bool
}

// SpriteSet はファイター1体分のアニメーションフレームです。
// Frames は ActionType をインデックスとします。
type SpriteSet struct {
	Frames [][]image.Image
}

// FrameCount は指定アクションのフレーム数を返します。
func (s SpriteSet) FrameCount(action ActionType) int {
	if int(action) >= len(s.Frames) {
		return 0
	}
	return len(s.Frames[action])
}

// Frame は指定アクション・インデックスのフレームを返します。範囲外の場合はnilです。
func (s SpriteSet) Frame(action ActionType, index int) image.Image {
	if index < 0 || index >= s.FrameCount(action) {
		return nil
	}
	return s.Frames[action][index]
}

// Bounds は当たり判定に使う基準サイズ (待機アニメーションの先頭フレーム) を返します。
func (s SpriteSet) Bounds() image.Rectangle {
	if f := s.Frame(ActionIdle, 0); f != nil {
		return f.Bounds()
	}
	return image.Rectangle{}
}
