package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/automoto/tilerun/assets/animations"
	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/border"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// Level is a parsed level plus what it needs on screen.
type Level struct {
	*leveldata.LevelData
	Background *ebiten.Image

	fsys     fs.FS
	tilesets map[string]image.Image
	borders  map[tileKey]*border.SpriteBorder
}

type tileKey struct {
	image string
	src   image.Rectangle
}

// OpenLevel resolves a level path. Paths that exist on disk are loaded from
// there, anything else from the embedded levels.
func OpenLevel(p string) (fs.FS, string) {
	if _, err := os.Stat(p); err == nil {
		return os.DirFS(filepath.Dir(p)), filepath.Base(p)
	}
	return assetFS, path.Clean(filepath.ToSlash(p))
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LoadLevel parses the level and renders its background layers.
func (l *LevelLoader) LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	data, err := leveldata.Load(fsys, levelPath)
	if err != nil {
		return nil, err
	}

	level := &Level{
		LevelData: data,
		fsys:      fsys,
		tilesets:  make(map[string]image.Image),
		borders:   make(map[tileKey]*border.SpriteBorder),
	}

	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("assets: reload %s: %w", levelPath, err)
	}
	level.Background = renderBackground(levelMap, fsys)
	return level, nil
}

func renderBackground(levelMap *tiled.Map, fsys fs.FS) *ebiten.Image {
	bg := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
	bg.Fill(config.Level.Background)

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		log.Printf("assets: no background renderer: %v", err)
		return bg
	}

	for i, layer := range levelMap.Layers {
		// Use "render" custom property to determine visibility
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("assets: skipping layer %s: %v", layer.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return bg
}

// TileBorder returns the silhouette of a tile in tile-local coordinates, or
// nil when its tileset image is unavailable. Borders are shared between
// tiles with the same source rectangle.
func (l *Level) TileBorder(t leveldata.Tile, threshold uint32) *border.SpriteBorder {
	if t.Image == "" {
		return nil
	}
	key := tileKey{image: t.Image, src: t.Src}
	if b, ok := l.borders[key]; ok {
		return b
	}

	img, ok := l.tilesets[t.Image]
	if !ok {
		var err error
		img, err = decodeImage(l.fsys, t.Image)
		if err != nil {
			log.Printf("assets: tileset %s: %v", t.Image, err)
		}
		l.tilesets[t.Image] = img
	}
	if img == nil {
		l.borders[key] = nil
		return nil
	}

	sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		l.borders[key] = nil
		return nil
	}
	frame := border.Scale(sub.SubImage(t.Src.Add(img.Bounds().Min)), t.W, t.H)
	b := border.Extract(border.ImageSampler{Image: frame}, threshold)
	l.borders[key] = b
	return b
}

func decodeImage(fsys fs.FS, p string) (image.Image, error) {
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}

type sheet struct {
	image  *ebiten.Image
	source image.Image
}

type AnimationLoader struct {
	cache      map[string]sheet
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]sheet),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) loadSheet(p string) (sheet, error) {
	if s, ok := l.cache[p]; ok {
		return s, nil
	}

	imgBytes, err := animationFS.ReadFile(p)
	if err != nil {
		return sheet{}, fmt.Errorf("read image file %s: %w", p, err)
	}

	img, src, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return sheet{}, fmt.Errorf("create image from bytes for %s: %w", p, err)
	}

	s := sheet{image: img, source: src}
	l.cache[p] = s
	return s, nil
}

func (l *AnimationLoader) MustLoadImage(p string) *ebiten.Image {
	s, err := l.loadSheet(p)
	if err != nil {
		panic(err)
	}
	return s.image
}

// GetFrame returns a cached sub-image for a specific animation frame.
func (l *AnimationLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state.String(), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(sheetPath(dir, state))
	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

// CharacterSet is everything an animated entity needs, keyed by state.
type CharacterSet struct {
	Sheets     map[config.StateID]*ebiten.Image
	Frames     map[config.StateID]map[int]*ebiten.Image
	Animations map[config.StateID]*animations.Animation
}

// LoadCharacter builds the animations listed in config.CharacterAnimations
// for key. Each frame gets a border extracted with threshold. Sheets that
// are missing are skipped with a log line.
func (l *AnimationLoader) LoadCharacter(key string, frameW, frameH int, threshold uint32) CharacterSet {
	set := CharacterSet{
		Sheets:     make(map[config.StateID]*ebiten.Image),
		Frames:     make(map[config.StateID]map[int]*ebiten.Image),
		Animations: make(map[config.StateID]*animations.Animation),
	}

	for state, def := range config.CharacterAnimations[key] {
		s, err := l.loadSheet(sheetPath(key, state))
		if err != nil {
			log.Printf("assets: skipping %s %s: %v", key, state, err)
			continue
		}

		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		anim.SetBorders(animations.StripBorders(s.source, frameW, frameH, 0, 0, threshold))

		frames := make(map[int]*ebiten.Image)
		step := max(def.Step, 1)
		for i := def.First; i <= def.Last; i += step {
			frames[i] = l.GetFrame(key, state, i, animations.FrameRect(i, frameW, frameH))
		}

		set.Sheets[state] = s.image
		set.Frames[state] = frames
		set.Animations[state] = anim
	}
	return set
}

var (
	animationLoader = NewAnimationLoader()
)

func sheetPath(dir string, state config.StateID) string {
	return fmt.Sprintf("images/%s/%s.png", dir, state.String())
}

func GetObjectImage(name string) *ebiten.Image {
	return animationLoader.MustLoadImage(fmt.Sprintf("images/objects/%s", name))
}

// LoadCharacter uses the shared loader.
func LoadCharacter(key string, frameW, frameH int, threshold uint32) CharacterSet {
	return animationLoader.LoadCharacter(key, frameW, frameH, threshold)
}

// PreloadAllAnimations loads every sprite sheet up front so the first frames
// don't stall on texture uploads.
func PreloadAllAnimations() {
	for key := range config.CharacterAnimations {
		for state := range config.CharacterAnimations[key] {
			if _, err := animationLoader.loadSheet(sheetPath(key, state)); err != nil {
				log.Printf("assets: preload: %v", err)
			}
		}
	}
}
