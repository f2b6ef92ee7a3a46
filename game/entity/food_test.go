package entity

import (
	"testing"

	"gridsnake/game/types"
)

func TestFoodReposition(t *testing.T) {
	rng := &scriptedRand{vals: []int{16, 39, 29, 3, 1, 2}}
	f := NewFood(rng, types.DefaultGrid())
	if f.Variant != 16 || f.Position != (types.Point{X: 780, Y: 580}) {
		t.Fatalf("first food = %+v", f)
	}

	f.Reposition(rng, types.DefaultGrid())
	if f.Variant != 3 || f.Position != (types.Point{X: 20, Y: 40}) {
		t.Errorf("repositioned food = %+v", f)
	}
	if got := f.Asset().Key(); got != "3" {
		t.Errorf("asset key %q, want 3", got)
	}
}

func TestObstaclesHit(t *testing.T) {
	tiles := []types.Point{{X: 100, Y: 100}, {X: 400, Y: 200}}
	o := NewObstacles(2, tiles)
	tiles[0] = types.Point{X: 0, Y: 0} // caller's slice must not leak in

	if !o.Hit(types.Point{X: 100, Y: 100}.Tile()) {
		t.Error("expected hit on first obstacle")
	}
	if o.Hit(types.Point{X: 0, Y: 0}.Tile()) {
		t.Error("obstacles changed through the input slice")
	}
	if o.Hit(types.Point{X: 120, Y: 100}.Tile()) {
		t.Error("adjacent tile is not a hit")
	}
	if o.Len() != 2 || o.Level() != 2 || o.Asset().Key() != "brick-2" {
		t.Errorf("len=%d level=%d key=%s", o.Len(), o.Level(), o.Asset().Key())
	}
}
