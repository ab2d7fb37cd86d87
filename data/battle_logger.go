package data

import (
	"battle-ebiten/core"

	"go.uber.org/zap"
)

// BattleLogger は戦闘の経過をログに出力するためのインターフェースです。
type BattleLogger interface {
	LogAction(result core.ActionResult)
	LogGameState(state core.GameState, playerName string)
	LogRestart()
}

// BattleLoggerImpl は BattleLogger インターフェースの実装です。
// 文言は MessageManager のテンプレートで整形し、数値はフィールドとしても残します。
type BattleLoggerImpl struct {
	messages *MessageManager
	logger   *zap.Logger
}

// NewBattleLogger は新しい BattleLoggerImpl のインスタンスを生成します。
func NewBattleLogger(mm *MessageManager, logger *zap.Logger) BattleLogger {
	return &BattleLoggerImpl{messages: mm, logger: logger}
}

// LogAction は攻撃または回復の結果を出力します。
func (l *BattleLoggerImpl) LogAction(result core.ActionResult) {
	fields := []zap.Field{
		zap.String("actor", result.ActorID),
		zap.String("kind", string(result.Kind)),
		zap.Int("amount", result.Amount),
	}

	switch result.Kind {
	case core.ResultAttack:
		fields = append(fields, zap.String("target", result.TargetID))
		l.logger.Info(l.messages.FormatMessage("log_attack", map[string]interface{}{
			"ordered_args": []interface{}{result.ActorName, result.TargetName, result.Amount},
		}), fields...)
		if result.TargetDied {
			l.logger.Info(l.messages.FormatMessage("log_death", map[string]interface{}{
				"ordered_args": []interface{}{result.TargetName},
			}), zap.String("fighter", result.TargetID))
		}
	case core.ResultHeal:
		l.logger.Info(l.messages.FormatMessage("log_heal", map[string]interface{}{
			"ordered_args": []interface{}{result.ActorName, result.Amount},
		}), fields...)
	}
}

// LogGameState は勝敗の確定を出力します。
func (l *BattleLoggerImpl) LogGameState(state core.GameState, playerName string) {
	switch state {
	case core.StateVictory:
		l.logger.Info(l.messages.FormatMessage("log_victory", nil), zap.String("state", string(state)))
	case core.StateDefeat:
		l.logger.Info(l.messages.FormatMessage("log_defeat", map[string]interface{}{
			"ordered_args": []interface{}{playerName},
		}), zap.String("state", string(state)))
	}
}

// LogRestart は戦闘のやり直しを出力します。
func (l *BattleLoggerImpl) LogRestart() {
	l.logger.Info(l.messages.FormatMessage("log_restart", nil))
}
