package manager

import (
	"errors"
	"fmt"
	"log/slog"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

const (
	DefaultClearance   = 100   // board units, per axis
	DefaultMaxAttempts = 10000 // candidates drawn per clearance level
)

var (
	ErrGenerationInfeasible = errors.New("level generation infeasible")
	ErrInvalidLevel         = errors.New("invalid level")
)

// Level describes what a level puts on the board
type Level struct {
	Number      int
	Obstacles   int
	HazardSpeed int
}

var levels = map[int]Level{
	1: {Number: 1, Obstacles: 8, HazardSpeed: entity.HazardSpeed},
	2: {Number: 2, Obstacles: 10, HazardSpeed: entity.HazardSpeed},
	3: {Number: 3, Obstacles: 10, HazardSpeed: 3},
}

// LevelCount is the number of selectable levels
const LevelCount = 3

// LookupLevel returns the settings for level n (1-based)
func LookupLevel(n int) (Level, error) {
	l, ok := levels[n]
	if !ok {
		return Level{}, fmt.Errorf("%w: %d", ErrInvalidLevel, n)
	}
	return l, nil
}

type ObstacleManager struct {
	grid         types.Grid
	rng          types.Rand
	collisionMgr *CollisionManager
	clearance    int
	maxAttempts  int
	logger       *slog.Logger
}

func NewObstacleManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager, clearance, maxAttempts int, logger *slog.Logger) *ObstacleManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ObstacleManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		clearance:    clearance,
		maxAttempts:  maxAttempts,
		logger:       logger,
	}
}

// Generate places the level's obstacles by rejection sampling around head.
// When a clearance cannot be satisfied within maxAttempts draws it is halved,
// and finally dropped, before giving up with ErrGenerationInfeasible.
func (om *ObstacleManager) Generate(level Level, head types.Point) (*entity.Obstacles, error) {
	for _, clearance := range om.clearanceSteps() {
		tiles, ok := om.place(level.Obstacles, head, clearance)
		if ok {
			if clearance != om.clearance {
				om.logger.Warn("obstacle clearance relaxed",
					"level", level.Number, "wanted", om.clearance, "used", clearance)
			}
			return entity.NewObstacles(level.Number, tiles), nil
		}
	}
	return nil, fmt.Errorf("level %d, %d obstacles: %w", level.Number, level.Obstacles, ErrGenerationInfeasible)
}

func (om *ObstacleManager) clearanceSteps() []int {
	steps := []int{}
	for c := om.clearance; c >= types.TileSize; c /= 2 {
		steps = append(steps, c)
	}
	return append(steps, 0)
}

func (om *ObstacleManager) place(n int, head types.Point, clearance int) ([]types.Point, bool) {
	tiles := make([]types.Point, 0, n)
	for attempt := 0; len(tiles) < n; attempt++ {
		if attempt >= om.maxAttempts {
			return nil, false
		}
		candidate := types.RandomTile(om.rng, om.grid)
		if om.collisionMgr.ValidateObstacle(candidate, tiles, head, clearance) {
			tiles = append(tiles, candidate)
		}
	}
	return tiles, true
}
