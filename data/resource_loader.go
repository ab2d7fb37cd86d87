package data

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"

	"battle-ebiten/core"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// AssetStore は画像アセットを読み込み、見つからない場合は代替画像を生成します。
// 読み込み結果はIDごとにキャッシュされます。
type AssetStore struct {
	fsys      fs.FS
	config    *Config
	labelFace font.Face
	logger    *zap.Logger
	registry  map[ImageID]ImageInfo
	images    map[ImageID]image.Image
}

// NewAssetStore は fsys をアセットルートとする AssetStore を作成します。
// labelFace は代替画像のラベル描画に使われます。nilの場合はggの既定フォントになります。
func NewAssetStore(fsys fs.FS, config *Config, labelFace font.Face, logger *zap.Logger) *AssetStore {
	return &AssetStore{
		fsys:      fsys,
		config:    config,
		labelFace: labelFace,
		logger:    logger,
		registry:  imageRegistry(config),
		images:    make(map[ImageID]image.Image),
	}
}

// Image は登録済みの固定アセット画像を返します。
func (s *AssetStore) Image(id ImageID) image.Image {
	if img, ok := s.images[id]; ok {
		return img
	}
	info, ok := s.registry[id]
	if !ok {
		s.logger.Error("未登録の画像IDです", zap.Int("id", int(id)))
		return CreatePlaceholder(PlaceholderSpec{Width: 1, Height: 1}, nil, color.Black)
	}

	img := s.LoadImage(info.Path, info.Fallback)
	if !info.Size.Eq(image.Point{}) && img.Bounds().Size() != info.Size {
		img = imaging.Resize(img, info.Size.X, info.Size.Y, imaging.Linear)
	}
	s.images[id] = img
	return img
}

// LoadImage は画像ファイルを読み込みます。
// ファイルが存在しない、またはデコードできない場合は警告を出して代替画像を返します。
func (s *AssetStore) LoadImage(path string, fallback PlaceholderSpec) image.Image {
	img, err := s.decode(path)
	if err == nil {
		return img
	}
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("画像が見つかりません。代替画像を使用します", zap.String("path", path))
	} else {
		s.logger.Warn("画像の読み込みに失敗しました。代替画像を使用します", zap.String("path", path), zap.Error(err))
	}
	return CreatePlaceholder(fallback, s.labelFace, s.config.UI.Colors.Black)
}

func (s *AssetStore) decode(path string) (image.Image, error) {
	if _, err := fs.Stat(s.fsys, path); err != nil {
		return nil, err
	}
	f, err := s.fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadFighterSprites はファイター名に対応する全アクションのフレームを読み込みます。
// 読み込んだフレームはScaleFactor倍にニアレストネイバーで拡大されます。
// 見つからないフレームは placeholderColor の代替画像になります。
func (s *AssetStore) LoadFighterSprites(name string, placeholderColor color.Color) core.SpriteSet {
	scale := s.config.Animation.ScaleFactor
	set := core.SpriteSet{Frames: make([][]image.Image, len(core.AllActions))}
	missing := 0

	for _, action := range core.AllActions {
		count := s.config.FrameCount(action)
		frames := make([]image.Image, 0, count)
		for i := 0; i < count; i++ {
			path := spriteFramePath(s.config.AssetPaths.ImageDir, name, action.String(), i)
			img, err := s.decode(path)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					s.logger.Warn("フレームの読み込みに失敗しました", zap.String("path", path), zap.Error(err))
				}
				missing++
				frames = append(frames, CreatePlaceholder(PlaceholderSpec{
					Width:  s.config.Animation.Placeholder.Width,
					Height: s.config.Animation.Placeholder.Height,
					Color:  placeholderColor,
					Label:  name + "\n" + action.String(),
				}, s.labelFace, s.config.UI.Colors.Black))
				continue
			}
			b := img.Bounds()
			frames = append(frames, imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor))
		}
		set.Frames[action] = frames
	}

	if missing > 0 {
		s.logger.Warn("スプライトフレームが不足しています。代替画像を使用します",
			zap.String("fighter", name), zap.Int("missing", missing))
	}
	return set
}

// LoadFontFace は設定されたTTFを指定サイズで読み込みます。
// ファイルが無い場合は組み込みのGo Regularフォントを使用します。
func LoadFontFace(paths AssetPaths, size float64, logger *zap.Logger) (font.Face, error) {
	path := paths.Resolve(paths.Font)
	ttf, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("フォントファイルが見つかりません。組み込みフォントを使用します", zap.String("path", path))
		ttf = goregular.TTF
	} else if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
