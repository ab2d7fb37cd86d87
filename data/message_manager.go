package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"battle-ebiten/core"

	"go.uber.org/zap"
)

var placeholderRegex = regexp.MustCompile(`{(\w+)}`)

// defaultMessages はmessages.jsonが無い場合に使われる組み込みのテンプレートです。
var defaultMessages = []core.MessageTemplate{
	{ID: "hud_hp", Text: "{name} HP: {hp}"},
	{ID: "hud_potions", Text: "{count}"},
	{ID: "title_text", Text: "Battle"},
	{ID: "title_start", Text: "Start"},
	{ID: "log_attack", Text: "%s attacks %s for %d damage"},
	{ID: "log_heal", Text: "%s drinks a potion and recovers %d HP"},
	{ID: "log_death", Text: "%s has fallen"},
	{ID: "log_victory", Text: "Victory! All enemies defeated"},
	{ID: "log_defeat", Text: "Defeat... %s has fallen"},
	{ID: "log_restart", Text: "Battle restarted"},
}

// MessageManager handles loading and retrieving formatted messages.
type MessageManager struct {
	messages map[string]string
	logger   *zap.Logger
}

// NewMessageManager は、JSON形式のメッセージデータを受け取り、新しいMessageManagerを初期化して返します。
// 組み込みテンプレートを先に登録し、JSON側の同じIDで上書きします。
func NewMessageManager(jsonData []byte, logger *zap.Logger) (*MessageManager, error) {
	messages := make(map[string]string, len(defaultMessages))
	for _, t := range defaultMessages {
		messages[t.ID] = t.Text
	}

	if jsonData != nil {
		var templates []core.MessageTemplate
		if err := json.Unmarshal(jsonData, &templates); err != nil {
			return nil, fmt.Errorf("メッセージデータのJSONパースに失敗しました: %w", err)
		}
		for _, t := range templates {
			messages[t.ID] = t.Text
		}
	}

	mm := &MessageManager{
		messages: messages,
		logger:   logger,
	}

	logger.Debug("メッセージをロードしました", zap.Int("count", len(mm.messages)))
	return mm, nil
}

// LoadMessages はファイルからMessageManagerを作成します。ファイルが無ければ組み込みのみを使います。
func LoadMessages(paths AssetPaths, logger *zap.Logger) (*MessageManager, error) {
	path := paths.Resolve(paths.Messages)
	jsonData, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("メッセージファイルが見つかりません。組み込みメッセージを使用します", zap.String("path", path))
		return NewMessageManager(nil, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewMessageManager(jsonData, logger)
}

// GetRawMessage retrieves a raw message template by its ID.
func (mm *MessageManager) GetRawMessage(id string) (string, bool) {
	msg, found := mm.messages[id]
	return msg, found
}

// FormatMessage formats a message template with the given parameters.
// It handles two types of placeholders:
// 1. {key} - replaced by params[key]
// 2. %s, %d, %f - standard fmt.Sprintf style, using ordered args from params["ordered_args"]
func (mm *MessageManager) FormatMessage(id string, params map[string]interface{}) string {
	template, ok := mm.messages[id]
	if !ok {
		mm.logger.Warn("メッセージIDが見つかりません", zap.String("id", id))
		return id // Return ID if not found, so it's noticeable
	}

	if orderedArgs, ok := params["ordered_args"].([]interface{}); ok {
		numSpecifiers := strings.Count(template, "%s") +
			strings.Count(template, "%d") +
			strings.Count(template, "%f") +
			strings.Count(template, "%v")

		if len(orderedArgs) < numSpecifiers {
			mm.logger.Warn("ordered_argsが不足しています",
				zap.String("id", id), zap.Int("expected", numSpecifiers), zap.Int("got", len(orderedArgs)))
			return template
		}
		return fmt.Sprintf(template, orderedArgs...)
	}

	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.Trim(match, "{}")
		if val, pOk := params[key]; pOk {
			return fmt.Sprintf("%v", val)
		}
		mm.logger.Warn("プレースホルダに対応するパラメータがありません", zap.String("placeholder", match), zap.String("id", id))
		return match
	})
}
