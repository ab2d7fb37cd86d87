package main

import (
	"fmt"
	"os"
	"time"

	"battle-ebiten/core"
	"battle-ebiten/data"
	"battle-ebiten/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	assetRoot  string
	configPath string
	seed       int64
	logLevel   string
	logFormat  string
	skipTitle  bool
	debug      bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "battle",
		Short:         "ターン制バトルのデモを起動します",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.assetRoot, "assets", ".", "アセットのルートディレクトリ")
	flags.StringVar(&opts.configPath, "config", "", "game_settings.json のパス (アセットルートからの相対パス)")
	flags.Int64Var(&opts.seed, "seed", 0, "乱数シード (未指定なら現在時刻)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "ログレベル (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "console", "ログ形式 (console, json)")
	flags.BoolVar(&opts.skipTitle, "skip-title", false, "タイトル画面を飛ばしてバトルから始める")
	flags.BoolVar(&opts.debug, "debug", false, "ターン状態のデバッグ表示を有効にする")
	return cmd
}

func run(opts *options) error {
	logger, err := newLogger(opts.logLevel, opts.logFormat)
	if err != nil {
		return fmt.Errorf("ロガーの初期化に失敗しました: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	paths := data.DefaultAssetPaths(opts.assetRoot)
	if opts.configPath != "" {
		paths.GameSettings = opts.configPath
	}

	config, err := data.LoadConfig(paths, logger.Named("config"))
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗しました: %w", err)
	}
	config.AssetPaths = paths
	config.Game = data.GameConfig{RandomSeed: opts.seed, SkipTitle: opts.skipTitle, Debug: opts.debug}

	messages, err := data.LoadMessages(paths, logger.Named("messages"))
	if err != nil {
		return fmt.Errorf("メッセージの読み込みに失敗しました: %w", err)
	}

	roster, err := data.LoadRoster(paths, logger.Named("roster"))
	if err != nil {
		return fmt.Errorf("ファイター編成の読み込みに失敗しました: %w", err)
	}

	fontFace, err := data.LoadFontFace(paths, config.UI.FontSize, logger.Named("assets"))
	if err != nil {
		return fmt.Errorf("フォントの読み込みに失敗しました: %w", err)
	}

	assets := data.NewAssetStore(os.DirFS(paths.Root), &config, fontFace, logger.Named("assets"))
	res := data.NewSharedResources(&core.GameData{Fighters: roster}, config, fontFace, assets, messages, logger)

	logger.Info("起動します",
		zap.String("assets", paths.Root),
		zap.Int64("seed", opts.seed),
		zap.Int("fighters", len(roster)),
	)

	manager := scene.NewSceneManager(res)

	ebiten.SetWindowSize(config.UI.Screen.Width, config.UI.Screen.Height)
	ebiten.SetWindowTitle(config.UI.WindowTitle)
	ebiten.SetTPS(config.UI.TPS)

	if err := ebiten.RunGame(manager.Sequence); err != nil {
		return fmt.Errorf("ゲームループが異常終了しました: %w", err)
	}
	return nil
}

// newLogger はログレベルと形式からzapのロガーを作成します。
func newLogger(levelName, format string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
