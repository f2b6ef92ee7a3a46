package entity

import (
	"time"

	"gridsnake/game/types"
)

const (
	HazardMinDelay = 10 * time.Second
	HazardMaxDelay = 30 * time.Second
	HazardLifetime = 10 * time.Second
	HazardSpeed    = 2 // board units per tick on each axis
)

// Hazard is the roaming red dot. It moves in board units rather than whole
// tiles, so while active its position is generally not tile aligned.
// Collisions are rectangle tests and do not depend on alignment.
type Hazard struct {
	Position types.Point
	Velocity types.Point
	Active   bool

	speed       int
	grid        types.Grid
	lastChange  time.Duration // clock reading at last spawn or despawn
	spawnDelay  time.Duration
	activatedAt time.Duration
}

// NewHazard returns an inactive hazard whose first spawn delay is drawn from rng
func NewHazard(rng types.Rand, grid types.Grid, speed int, now time.Duration) *Hazard {
	if speed <= 0 {
		speed = HazardSpeed
	}
	h := &Hazard{speed: speed, grid: grid}
	h.Reset(rng, now)
	return h
}

// Reset deactivates the hazard and starts a fresh spawn cycle at now
func (h *Hazard) Reset(rng types.Rand, now time.Duration) {
	h.Active = false
	h.Velocity = types.Point{X: h.speed, Y: h.speed}
	h.lastChange = now
	h.spawnDelay = drawDelay(rng)
}

func drawDelay(rng types.Rand) time.Duration {
	spread := int((HazardMaxDelay - HazardMinDelay) / time.Millisecond)
	return HazardMinDelay + time.Duration(rng.Intn(spread))*time.Millisecond
}

// SpawnDelay is the wait drawn for the current inactive period
func (h *Hazard) SpawnDelay() time.Duration {
	return h.spawnDelay
}

// MaybeActivate spawns the hazard on a random tile once the spawn delay has
// elapsed. Returns true if it spawned on this call.
func (h *Hazard) MaybeActivate(rng types.Rand, now time.Duration) bool {
	if h.Active || now-h.lastChange <= h.spawnDelay {
		return false
	}
	h.Active = true
	h.Position = types.RandomTile(rng, h.grid)
	h.Velocity = types.Point{X: h.speed, Y: h.speed}
	h.activatedAt = now
	h.lastChange = now
	return true
}

// Advance expires the hazard after its lifetime, otherwise moves it one step,
// reflecting off the board edges. Returns true if it expired on this call.
func (h *Hazard) Advance(rng types.Rand, now time.Duration) bool {
	if !h.Active {
		return false
	}
	if now-h.activatedAt >= HazardLifetime {
		h.Deactivate(rng, now)
		return true
	}

	maxX := h.grid.Width - types.TileSize
	maxY := h.grid.Height - types.TileSize

	nx := h.Position.X + h.Velocity.X
	if nx < 0 || nx > maxX {
		h.Velocity.X = -h.Velocity.X
		nx = clamp(h.Position.X+h.Velocity.X, 0, maxX)
	}
	ny := h.Position.Y + h.Velocity.Y
	if ny < 0 || ny > maxY {
		h.Velocity.Y = -h.Velocity.Y
		ny = clamp(h.Position.Y+h.Velocity.Y, 0, maxY)
	}
	h.Position = types.Point{X: nx, Y: ny}
	return false
}

// Deactivate removes the hazard from the board and draws the next spawn delay
func (h *Hazard) Deactivate(rng types.Rand, now time.Duration) {
	h.Active = false
	h.lastChange = now
	h.spawnDelay = drawDelay(rng)
}

func (h *Hazard) Rect() types.Rect {
	return h.Position.Tile()
}

// Collides reports whether an active hazard overlaps r
func (h *Hazard) Collides(r types.Rect) bool {
	return h.Active && h.Rect().Intersects(r)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
