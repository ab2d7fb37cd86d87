package scene

import (
	"battle-ebiten/data"

	"github.com/noppikinatta/bamenn"
	"go.uber.org/zap"
)

// SceneManagerはbamennのシーケンスと共有リソースを管理します
type SceneManager struct {
	Sequence  *bamenn.Sequence
	resources *data.SharedResources
	logger    *zap.Logger
}

// NewSceneManagerは新しいシーンマネージャを作成し、初期シーンを設定します。
// SkipTitle が有効な場合はタイトルを飛ばしてバトルから始めます。
func NewSceneManager(res *data.SharedResources) *SceneManager {
	m := &SceneManager{
		resources: res,
		logger:    res.Logger.Named("scene"),
	}

	var initialScene Scene
	if res.Config.Game.SkipTitle {
		initialScene = m.newBattleScene()
	} else {
		initialScene = m.newTitleScene()
	}

	m.Sequence = bamenn.NewSequence(initialScene)
	return m
}

// 各シーンからはマネージャ経由で他のシーンへ遷移します。

func (m *SceneManager) newTitleScene() Scene {
	return NewTitleScene(m.resources, m)
}

func (m *SceneManager) newBattleScene() Scene {
	return NewBattleScene(m.resources, m)
}

func (m *SceneManager) GoToTitleScene() {
	m.logger.Debug("タイトルシーンへ切り替えます")
	m.Sequence.Switch(m.newTitleScene())
}

func (m *SceneManager) GoToBattleScene() {
	m.logger.Debug("バトルシーンへ切り替えます")
	m.Sequence.Switch(m.newBattleScene())
}
