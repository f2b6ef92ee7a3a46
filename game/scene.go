package game

import "gridsnake/game/types"

// Screen selects which of the three layouts the frontend draws
type Screen int

const (
	ScreenStart Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// Sprite is one image placed on the board
type Sprite struct {
	Asset types.AssetRef
	Rect  types.Rect
}

// Scene is everything a frontend needs to draw one frame. It holds no
// drawing-library types.
type Scene struct {
	Screen     Screen
	Background types.AssetRef
	Paused     bool

	// Sprites are in draw order: snake head first, then body, food, obstacles.
	Sprites []Sprite
	Heading types.Direction
	Score   int
	Level   int

	// Hazard is drawn last, after the score text, and is nil when inactive.
	Hazard *Sprite

	LastScore     int
	LastReason    types.EndReason
	AwaitingScore bool
}

// Scene snapshots the current state for rendering
func (g *Game) Scene() Scene {
	sc := Scene{
		Level:         g.level.Number,
		LastScore:     g.lastScore,
		LastReason:    g.lastReason,
		AwaitingScore: g.pendingScore,
	}

	switch {
	case g.InProgress():
		sc.Screen = ScreenPlaying
		sc.Background = types.AssetRef{Kind: types.AssetBackground}
	case g.state == Ended && g.lastScore > 0:
		sc.Screen = ScreenGameOver
		sc.Background = types.AssetRef{Kind: types.AssetGameOver}
		return sc
	default:
		sc.Screen = ScreenStart
		sc.Background = types.AssetRef{Kind: types.AssetStartScene}
		return sc
	}

	sc.Paused = g.state == Paused
	sc.Score = g.snake.Score
	sc.Heading = g.snake.Direction

	sc.Sprites = make([]Sprite, 0, len(g.snake.Body)+1+g.obstacles.Len())
	for i, part := range g.snake.Body {
		kind := types.AssetSnakeBody
		if i == 0 {
			kind = types.AssetSnakeHead
		}
		sc.Sprites = append(sc.Sprites, Sprite{Asset: types.AssetRef{Kind: kind}, Rect: part.Tile()})
	}

	food := g.GetFood()
	sc.Sprites = append(sc.Sprites, Sprite{Asset: food.Asset(), Rect: food.Rect()})

	brick := g.obstacles.Asset()
	for _, t := range g.obstacles.Tiles() {
		sc.Sprites = append(sc.Sprites, Sprite{Asset: brick, Rect: t.Tile()})
	}

	if g.hazard.Active {
		sc.Hazard = &Sprite{Asset: types.AssetRef{Kind: types.AssetHazard}, Rect: g.hazard.Rect()}
	}
	return sc
}
