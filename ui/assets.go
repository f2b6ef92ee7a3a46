package ui

import (
	"log/slog"
	"path/filepath"

	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Assets resolves AssetRefs to textures loaded from <dir>/<key>.png. Missing
// images are remembered as absent and drawn as flat colored tiles instead.
type Assets struct {
	dir      string
	textures map[string]rl.Texture2D
	logger   *slog.Logger
}

func NewAssets(dir string, logger *slog.Logger) *Assets {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assets{
		dir:      dir,
		textures: make(map[string]rl.Texture2D),
		logger:   logger,
	}
}

// Texture returns the texture for ref, loading it on first use. ok is false
// when no image exists for ref.
func (a *Assets) Texture(ref types.AssetRef) (rl.Texture2D, bool) {
	key := ref.Key()
	if tex, seen := a.textures[key]; seen {
		return tex, tex.ID != 0
	}

	var tex rl.Texture2D
	if a.dir != "" {
		path := filepath.Join(a.dir, key+".png")
		if rl.FileExists(path) {
			tex = rl.LoadTexture(path)
		}
		if tex.ID == 0 {
			a.logger.Debug("asset not found, using fallback color", "key", key, "path", path)
		}
	}
	a.textures[key] = tex
	return tex, tex.ID != 0
}

// Unload releases every texture. Must run before the window closes.
func (a *Assets) Unload() {
	for key, tex := range a.textures {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
		delete(a.textures, key)
	}
}

// fallbackColor is what a sprite looks like without its image
func fallbackColor(ref types.AssetRef) rl.Color {
	switch ref.Kind {
	case types.AssetBackground:
		return rl.Color{R: 24, G: 32, B: 24, A: 255}
	case types.AssetGameOver:
		return rl.Color{R: 48, G: 12, B: 12, A: 255}
	case types.AssetStartScene:
		return rl.Color{R: 12, G: 24, B: 48, A: 255}
	case types.AssetSnakeHead:
		return rl.Lime
	case types.AssetSnakeBody:
		return rl.DarkGreen
	case types.AssetFood:
		palette := []rl.Color{rl.Gold, rl.Orange, rl.Pink, rl.Yellow, rl.Purple, rl.SkyBlue}
		return palette[ref.Index%len(palette)]
	case types.AssetBrick:
		palette := []rl.Color{rl.Brown, rl.Gray, rl.Maroon}
		return palette[(ref.Index+len(palette)-1)%len(palette)]
	case types.AssetHazard:
		return rl.Red
	}
	return rl.Magenta
}
