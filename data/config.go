package data

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
)

// Configは、ゲーム全体のコンフィグレーションを保持します。
// game_settings.jsonから直接デシリアライズされる部分と、
// コード内で後から設定される部分（AssetPaths, Game）で構成されます。
type Config struct {
	Battle    BattleConfig    `json:"Battle"`
	Animation AnimationConfig `json:"Animation"`
	UI        UIConfig        `json:"UI"`

	// --- Non-JSON fields ---
	AssetPaths AssetPaths `json:"-"`
	Game       GameConfig `json:"-"`
}

// BattleConfig はターン進行と戦闘計算のパラメータです。
type BattleConfig struct {
	ActionWaitTime int     `json:"ActionWaitTime"` // 行動間の待機ティック数
	PotionEffect   int     `json:"PotionEffect"`
	DamageSpread   int     `json:"DamageSpread"` // 攻撃力に加算される乱数の幅 (±)
	MinDamage      int     `json:"MinDamage"`
	HealThreshold  float64 `json:"HealThreshold"` // AIがポーションを使うHP割合
}

// AnimationConfig はスプライトとフローティングテキストの設定です。
type AnimationConfig struct {
	FrameDurationMs      int `json:"FrameDurationMs"`
	ScaleFactor          int `json:"ScaleFactor"`
	FloatingTextLifetime int `json:"FloatingTextLifetime"`
	FloatingTextRise     int `json:"FloatingTextRise"`
	FrameCounts          struct {
		Idle   int `json:"Idle"`
		Attack int `json:"Attack"`
		Hurt   int `json:"Hurt"`
		Death  int `json:"Death"`
	} `json:"FrameCounts"`
	Placeholder struct {
		Width  int `json:"Width"`
		Height int `json:"Height"`
	} `json:"Placeholder"`
}

// AssetPaths は各種アセットへのパスを保持します。
// Root以外はRootからの相対パスです。
type AssetPaths struct {
	Root         string
	GameSettings string
	Messages     string
	FightersCSV  string
	Font         string
	ImageDir     string
}

// GameConfig はゲームプレイ固有の設定を保持します。
type GameConfig struct {
	RandomSeed int64
	SkipTitle  bool
	Debug      bool // ターン状態を画面左上に表示する
}

// Rect はJSONで指定される矩形です。
type Rect struct {
	X      int `json:"X"`
	Y      int `json:"Y"`
	Width  int `json:"Width"`
	Height int `json:"Height"`
}

// Rectangle は image.Rectangle に変換します。
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Point はJSONで指定される座標です。
type Point struct {
	X int `json:"X"`
	Y int `json:"Y"`
}

// UIConfig は game_settings.json の "UI" セクションとマッピングされます。
// パネル内の座標はすべてパネル上端からのオフセットです。
type UIConfig struct {
	WindowTitle string `json:"WindowTitle"`
	TPS         int    `json:"TPS"`
	Screen      struct {
		Width  int `json:"Width"`
		Height int `json:"Height"`
	} `json:"Screen"`
	BottomPanel int     `json:"BottomPanel"`
	FontSize    float64 `json:"FontSize"`
	HealthBar   struct {
		Width  int `json:"Width"`
		Height int `json:"Height"`
	} `json:"HealthBar"`
	Panel struct {
		PlayerX         int `json:"PlayerX"`
		EnemyX          int `json:"EnemyX"`
		TextOffsetY     int `json:"TextOffsetY"`
		HealthBarOffset int `json:"HealthBarOffset"`
		EnemyRowSpacing int `json:"EnemyRowSpacing"`
		PotionCountX    int `json:"PotionCountX"`
	} `json:"Panel"`
	PotionButton  Rect  `json:"PotionButton"`
	RestartButton Rect  `json:"RestartButton"`
	VictoryPos    Point `json:"VictoryPos"`
	DefeatPos     Point `json:"DefeatPos"`

	// ColorsフィールドはJSONから直接デシリアライズされる際に、
	// 下記で定義されたカスタムのUnmarshalJSONメソッドによってパースされます。
	Colors ParsedColors `json:"Colors"`
}

// BattlefieldHeight はボトムパネルを除いた戦場部分の高さです。
func (u UIConfig) BattlefieldHeight() int {
	return u.Screen.Height - u.BottomPanel
}

// ParsedColors はパース済みの色情報を保持します。
type ParsedColors struct {
	White      color.Color
	Black      color.Color
	Red        color.Color
	Green      color.Color
	Background color.Color
	Player     color.Color
	Enemy      color.Color
}

// UnmarshalJSON は ParsedColors 型のカスタムデシリアライザです。
// JSONの "Colors" オブジェクト（キーが色名、値が16進数文字列のマップ）を
// ParsedColors 構造体の各 color.Color フィールドに変換します。
// 指定のないキーは既存の値を保持します。
func (p *ParsedColors) UnmarshalJSON(data []byte) error {
	var raw struct {
		White      string `json:"White"`
		Black      string `json:"Black"`
		Red        string `json:"Red"`
		Green      string `json:"Green"`
		Background string `json:"Background"`
		Player     string `json:"Player"`
		Enemy      string `json:"Enemy"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("色データのJSONアンマーシャルに失敗しました: %w", err)
	}

	assign := func(dst *color.Color, hex string) error {
		if hex == "" {
			return nil
		}
		c, err := parseHexColor(hex)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}

	for _, f := range []struct {
		dst *color.Color
		hex string
	}{
		{&p.White, raw.White},
		{&p.Black, raw.Black},
		{&p.Red, raw.Red},
		{&p.Green, raw.Green},
		{&p.Background, raw.Background},
		{&p.Player, raw.Player},
		{&p.Enemy, raw.Enemy},
	} {
		if err := assign(f.dst, f.hex); err != nil {
			return err
		}
	}
	return nil
}

// parseHexColor は "RRGGBB" 形式の16進数文字列からcolor.Colorをパースします。
func parseHexColor(s string) (color.Color, error) {
	if len(s) != 6 {
		return nil, fmt.Errorf("無効な16進数カラーコードです: %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("16進数カラーコード %q のパースに失敗しました: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
