package ui

import (
	"fmt"
	"image"
	"image/color"

	"battle-ebiten/core"
	"battle-ebiten/data"
	"battle-ebiten/ecs/component"
	"battle-ebiten/ecs/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

// BattleUIManager はバトルシーンのHUDとボタンの管理、描画を担当します。
type BattleUIManager struct {
	config   *data.Config
	font     text.Face
	assets   *data.AssetStore
	messages *data.MessageManager
	layout   Layout
	images   *ImageCache

	potionButton  *Button
	restartButton *Button

	// 直近のUpdateで得た描画用の状態
	cursor  image.Point
	hovered *donburi.Entry
}

// NewBattleUIManager は BattleUIManager の新しいインスタンスを作成します。
// ボタンの大きさは読み込んだ画像から決まります。
func NewBattleUIManager(res *data.SharedResources) *BattleUIManager {
	layout := NewLayout(res.Config.UI)
	potionPos := layout.PotionButtonPos()
	restartPos := layout.RestartButtonPos()
	return &BattleUIManager{
		config:        &res.Config,
		font:          res.Font,
		assets:        res.Assets,
		messages:      res.Messages,
		layout:        layout,
		images:        NewImageCache(),
		potionButton:  NewButton(potionPos.X, potionPos.Y, res.Assets.Image(data.ImagePotion)),
		restartButton: NewButton(restartPos.X, restartPos.Y, res.Assets.Image(data.ImageRestart)),
	}
}

// Update はボタンを更新し、押されたボタンを返します。
// リスタートボタンはゲームオーバー中のみ反応します。
func (m *BattleUIManager) Update(input core.InputState, hovered *donburi.Entry, state core.GameState) (potionPressed, restartPressed bool) {
	m.cursor = input.Cursor
	m.hovered = hovered

	potionPressed = m.potionButton.Update(input)
	if state != core.StatePlaying {
		restartPressed = m.restartButton.Update(input)
	}
	return potionPressed, restartPressed
}

// Targeting はカーソルが攻撃可能な敵の上にあるかを返します。
func (m *BattleUIManager) Targeting() bool {
	return m.hovered != nil && m.hovered.Valid()
}

// Draw は戦場とHUDを描画します。
func (m *BattleUIManager) Draw(screen *ebiten.Image, world donburi.World, state core.GameState) {
	m.drawImage(screen, m.assets.Image(data.ImageBackground), 0, 0)
	m.drawPanel(screen, world)
	m.drawFighters(screen, world)
	m.drawFloatingTexts(screen, world)

	if m.Targeting() {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		m.drawImage(screen, m.assets.Image(data.ImageSword), m.cursor.X, m.cursor.Y)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}

	m.drawImage(screen, m.potionButton.Image, m.potionButton.Rect.Min.X, m.potionButton.Rect.Min.Y)
	if player := entity.FindPlayer(world); player != nil {
		f := component.FighterComponent.Get(player)
		pos := m.layout.PotionCountPos()
		m.drawText(screen, m.messages.FormatMessage("hud_potions", map[string]interface{}{"count": f.Potions}), pos.X, pos.Y, m.config.UI.Colors.White)
	}

	switch state {
	case core.StateVictory:
		pos := m.config.UI.VictoryPos
		m.drawImage(screen, m.assets.Image(data.ImageVictory), pos.X, pos.Y)
	case core.StateDefeat:
		pos := m.config.UI.DefeatPos
		m.drawImage(screen, m.assets.Image(data.ImageDefeat), pos.X, pos.Y)
	}
	if state != core.StatePlaying {
		m.drawImage(screen, m.restartButton.Image, m.restartButton.Rect.Min.X, m.restartButton.Rect.Min.Y)
	}

	if m.config.Game.Debug {
		ebitenutil.DebugPrintAt(screen, DebugText(world, state), 4, 4)
	}
}

// DebugText はデバッグ表示用のターン状態の文字列です。
func DebugText(world donburi.World, state core.GameState) string {
	turn := entity.GetTurnState(world)
	return fmt.Sprintf("state=%s turn=%d/%d cooldown=%d", state, turn.Current, turn.Total, turn.ActionCooldown)
}

// drawPanel はボトムパネル、HP表示とHPバーを描画します。
func (m *BattleUIManager) drawPanel(screen *ebiten.Image, world donburi.World) {
	m.drawImage(screen, m.assets.Image(data.ImagePanel), 0, m.layout.PanelTop())

	if player := entity.FindPlayer(world); player != nil {
		f := component.FighterComponent.Get(player)
		textPos := m.layout.PlayerTextPos()
		m.drawText(screen, m.hpLabel(f), textPos.X, textPos.Y, m.config.UI.Colors.White)
		barPos := m.layout.PlayerHealthBarPos()
		m.drawHealthBar(screen, barPos, f)
	}

	for i, enemy := range entity.Enemies(world) {
		f := component.FighterComponent.Get(enemy)
		textPos := m.layout.EnemyTextPos(i)
		m.drawText(screen, m.hpLabel(f), textPos.X, textPos.Y, m.config.UI.Colors.White)
		m.drawHealthBar(screen, m.layout.EnemyHealthBarPos(i), f)
	}
}

func (m *BattleUIManager) hpLabel(f *component.Fighter) string {
	return m.messages.FormatMessage("hud_hp", map[string]interface{}{
		"name": f.Name,
		"hp":   f.HP,
	})
}

func (m *BattleUIManager) drawHealthBar(screen *ebiten.Image, pos image.Point, f *component.Fighter) {
	w := m.config.UI.HealthBar.Width
	h := float32(m.config.UI.HealthBar.Height)
	x, y := float32(pos.X), float32(pos.Y)
	vector.DrawFilledRect(screen, x, y, float32(w), h, m.config.UI.Colors.Red, false)
	vector.DrawFilledRect(screen, x, y, HealthBarFill(w, f.HP, f.MaxHP), h, m.config.UI.Colors.Green, false)
}

// drawFighters はプレイヤー、敵の順にスプライトを描画します。
func (m *BattleUIManager) drawFighters(screen *ebiten.Image, world donburi.World) {
	var entries []*donburi.Entry
	if player := entity.FindPlayer(world); player != nil {
		entries = append(entries, player)
	}
	entries = append(entries, entity.Enemies(world)...)

	for _, entry := range entries {
		frame := component.AnimationComponent.Get(entry).CurrentFrame()
		if frame == nil {
			continue
		}
		rect := component.TransformComponent.Get(entry).Rect
		m.drawImage(screen, frame, rect.Min.X, rect.Min.Y)
	}
}

func (m *BattleUIManager) drawFloatingTexts(screen *ebiten.Image, world donburi.World) {
	for _, entry := range entity.FloatingTexts(world) {
		ft := component.FloatingTextComponent.Get(entry)
		op := &text.DrawOptions{}
		op.GeoM.Translate(ft.X, ft.Y)
		op.ColorScale.ScaleWithColor(ft.Color)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, ft.Text, m.font, op)
	}
}

func (m *BattleUIManager) drawImage(screen *ebiten.Image, src image.Image, x, y int) {
	img := m.images.Get(src)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func (m *BattleUIManager) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, m.font, op)
}
