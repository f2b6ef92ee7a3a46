package entity

import "gridsnake/game/types"

// Food is the single pickup on the board. Variant picks one of the
// FoodVariants sprites and has no effect on play.
type Food struct {
	Position types.Point
	Variant  int
}

func NewFood(rng types.Rand, grid types.Grid) *Food {
	f := &Food{}
	f.Reposition(rng, grid)
	return f
}

// Reposition moves the food to a uniformly random tile. Overlap with the
// snake or obstacles is allowed.
func (f *Food) Reposition(rng types.Rand, grid types.Grid) {
	f.Variant = rng.Intn(types.FoodVariants)
	f.Position = types.RandomTile(rng, grid)
}

func (f *Food) Rect() types.Rect {
	return f.Position.Tile()
}

func (f *Food) Asset() types.AssetRef {
	return types.AssetRef{Kind: types.AssetFood, Index: f.Variant}
}
