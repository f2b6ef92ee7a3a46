package types

import "strconv"

// Board geometry in board units. Every grid entity sits on a multiple of TileSize.
const (
	BoardWidth  = 800
	BoardHeight = 600
	TileSize    = 20

	Columns = BoardWidth / TileSize  // 40
	Rows    = BoardHeight / TileSize // 30

	FoodVariants = 17
)

// Grid represents the board dimensions in board units
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the 800x600 board
func DefaultGrid() Grid {
	return Grid{Width: BoardWidth, Height: BoardHeight}
}

// Contains reports whether r lies entirely inside the grid
func (g Grid) Contains(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= g.Width && r.Y+r.H <= g.Height
}

// Point is a position in board units
type Point struct {
	X, Y int
}

// Tile returns the TileSize square anchored at p
func (p Point) Tile() Rect {
	return Rect{X: p.X, Y: p.Y, W: TileSize, H: TileSize}
}

// Add returns p shifted by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rect is an axis-aligned rectangle in board units
type Rect struct {
	X, Y, W, H int
}

// Intersects reports whether the two rectangles share any interior area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Min returns the top-left corner
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Direction is the snake's heading
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Opposite returns the 180 degree reversal of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Delta returns the one-tile step for d in board units
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -TileSize}
	case Down:
		return Point{X: 0, Y: TileSize}
	case Left:
		return Point{X: -TileSize, Y: 0}
	case Right:
		return Point{X: TileSize, Y: 0}
	}
	return Point{}
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// AssetKind identifies a sprite or background the frontend resolves
type AssetKind int

const (
	AssetBackground AssetKind = iota
	AssetGameOver
	AssetStartScene
	AssetSnakeHead
	AssetSnakeBody
	AssetFood
	AssetBrick
	AssetHazard
)

// AssetRef names an image without loading it. Index is the food variant
// for AssetFood and the level for AssetBrick.
type AssetRef struct {
	Kind  AssetKind
	Index int
}

// Key is the lookup name used by the asset provider
func (a AssetRef) Key() string {
	switch a.Kind {
	case AssetBackground:
		return "UI-background"
	case AssetGameOver:
		return "game-scene-01"
	case AssetStartScene:
		return "game-start-scene"
	case AssetSnakeHead:
		return "snake-head-right"
	case AssetSnakeBody:
		return "snake-body"
	case AssetFood:
		return strconv.Itoa(a.Index)
	case AssetBrick:
		return "brick-" + strconv.Itoa(a.Index)
	case AssetHazard:
		return "red-dot"
	}
	return ""
}

// Rand is the randomness the simulation draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// RandomTile draws a uniformly random tile-aligned point inside g
func RandomTile(rng Rand, g Grid) Point {
	return Point{
		X: rng.Intn(g.Width/TileSize) * TileSize,
		Y: rng.Intn(g.Height/TileSize) * TileSize,
	}
}

// EndReason records why a session ended
type EndReason int

const (
	NotEnded EndReason = iota
	OutOfBounds
	SelfCollision
	ObstacleCollision
	HazardCollision
	Stopped
)

func (r EndReason) String() string {
	switch r {
	case OutOfBounds:
		return "out_of_bounds"
	case SelfCollision:
		return "self_collision"
	case ObstacleCollision:
		return "obstacle_collision"
	case HazardCollision:
		return "hazard_collision"
	case Stopped:
		return "stopped"
	}
	return "none"
}

// Terminal reports whether r is a collision or out-of-bounds condition
// rather than a user stop
func (r EndReason) Terminal() bool {
	return r >= OutOfBounds && r <= HazardCollision
}
