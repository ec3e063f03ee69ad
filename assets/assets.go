package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/shared/tilemap"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// LevelDir is the embedded directory holding the manifest, maps and tilesets.
const LevelDir = "levels"

// ManifestFile lists the levels in play order.
const ManifestFile = "levels.yaml"

var ErrUnknownLevel = errors.New("unknown level")

// LevelInfo is one manifest entry.
type LevelInfo struct {
	Name string `yaml:"name"`
	Map  string `yaml:"map"`
	// Buttons enables the state buttons in balloon.SteadyStates order.
	Buttons []bool `yaml:"buttons"`
}

// Enabled reports whether the level lets the player pick state s.
func (l LevelInfo) Enabled(s balloon.State) bool {
	if !s.Steady() || int(s) >= len(l.Buttons) {
		return false
	}
	return l.Buttons[s]
}

type Manifest struct {
	Levels []LevelInfo `yaml:"levels"`
}

// ParseManifest decodes and validates a level manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Levels) == 0 {
		return nil, errors.New("parse manifest: no levels")
	}
	for i, l := range m.Levels {
		if l.Map == "" {
			return nil, fmt.Errorf("parse manifest: level %d (%s) has no map", i, l.Name)
		}
		if len(l.Buttons) != len(balloon.SteadyStates) {
			return nil, fmt.Errorf("parse manifest: level %d (%s) needs %d buttons, got %d",
				i, l.Name, len(balloon.SteadyStates), len(l.Buttons))
		}
	}
	return &m, nil
}

// Level returns the entry at index.
func (m *Manifest) Level(index int) (LevelInfo, error) {
	if index < 0 || index >= len(m.Levels) {
		return LevelInfo{}, fmt.Errorf("%w: index %d", ErrUnknownLevel, index)
	}
	return m.Levels[index], nil
}

// Index finds a level by name or map file.
func (m *Manifest) Index(name string) (int, error) {
	for i, l := range m.Levels {
		if l.Name == name || l.Map == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Next is the index after i, wrapping to the first level.
func (m *Manifest) Next(i int) int {
	return (i + 1) % len(m.Levels)
}

// LevelLoader reads levels from a file system laid out like LevelDir.
type LevelLoader struct {
	fsys     fs.FS
	dir      string
	manifest *Manifest
}

// NewLevelLoader reads the embedded levels.
func NewLevelLoader() (*LevelLoader, error) {
	return NewLevelLoaderFS(levelFS, LevelDir)
}

// MustNewLevelLoader is NewLevelLoader for startup code.
func MustNewLevelLoader() *LevelLoader {
	l, err := NewLevelLoader()
	if err != nil {
		panic(fmt.Sprintf("Failed to load level manifest: %v", err))
	}
	return l
}

// NewLevelLoaderFS reads the manifest in dir of fsys. Use it with os.DirFS
// to play levels that are not embedded.
func NewLevelLoaderFS(fsys fs.FS, dir string) (*LevelLoader, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return &LevelLoader{fsys: fsys, dir: dir, manifest: m}, nil
}

func (l *LevelLoader) Manifest() *Manifest {
	return l.manifest
}

// LoadLevel parses the map of the level at index.
func (l *LevelLoader) LoadLevel(index int) (LevelInfo, *tilemap.Map, error) {
	info, err := l.manifest.Level(index)
	if err != nil {
		return LevelInfo{}, nil, err
	}
	m, err := tilemap.Load(l.fsys, path.Join(l.dir, info.Map))
	if err != nil {
		return LevelInfo{}, nil, fmt.Errorf("level %s: %w", info.Name, err)
	}
	m.Name = info.Name
	return info, m, nil
}

// RenderBackground draws every tile layer that has the "render" property
// into one image the size of the map.
func (l *LevelLoader) RenderBackground(info LevelInfo) (image.Image, error) {
	levelMap, err := tiled.LoadFile(path.Join(l.dir, info.Map), tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", info.Map, err)
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", info.Map, err)
	}
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %s of %s: %w", layer.Name, info.Map, err)
		}
	}
	return renderer.Result, nil
}

// SpriteImage decodes the balloon sprite or clip sheet called name.
func SpriteImage(name string) (image.Image, error) {
	f, err := imageFS.Open(path.Join("images", "balloon", name+".png"))
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", name, err)
	}
	return img, nil
}

// MustSpriteImage is SpriteImage for preloading.
func MustSpriteImage(name string) image.Image {
	img, err := SpriteImage(name)
	if err != nil {
		panic(err)
	}
	return img
}
