package entity

import "gridsnake/game/types"

// Obstacles is the static hazard set of one level. It is built once by the
// obstacle manager and never mutated afterwards.
type Obstacles struct {
	level int
	tiles []types.Point
}

func NewObstacles(level int, tiles []types.Point) *Obstacles {
	cp := make([]types.Point, len(tiles))
	copy(cp, tiles)
	return &Obstacles{level: level, tiles: cp}
}

func (o *Obstacles) Level() int {
	return o.level
}

func (o *Obstacles) Len() int {
	return len(o.tiles)
}

// Tiles returns a copy of the obstacle positions
func (o *Obstacles) Tiles() []types.Point {
	cp := make([]types.Point, len(o.tiles))
	copy(cp, o.tiles)
	return cp
}

// Hit reports whether r overlaps any obstacle
func (o *Obstacles) Hit(r types.Rect) bool {
	for _, t := range o.tiles {
		if t.Tile().Intersects(r) {
			return true
		}
	}
	return false
}

func (o *Obstacles) Asset() types.AssetRef {
	return types.AssetRef{Kind: types.AssetBrick, Index: o.level}
}
