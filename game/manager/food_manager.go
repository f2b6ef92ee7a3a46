package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	rng          types.Rand
	food         *entity.Food
	eaten        int
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		food:         entity.NewFood(rng, grid),
		collisionMgr: collisionMgr,
	}
}

// Update feeds the snake if its head is on the food. The snake grows and the
// food moves to a new random tile in the same step.
func (fm *FoodManager) Update(snake *entity.Snake) bool {
	if !fm.collisionMgr.IsFoodCollision(snake, fm.food) {
		return false
	}
	snake.Grow()
	fm.food.Reposition(fm.rng, fm.grid)
	fm.eaten++
	return true
}

// Reset places fresh food and clears the per-session counter
func (fm *FoodManager) Reset() {
	fm.food.Reposition(fm.rng, fm.grid)
	fm.eaten = 0
}

func (fm *FoodManager) GetFood() *entity.Food {
	return fm.food
}

// Eaten is the number of pickups this session
func (fm *FoodManager) Eaten() int {
	return fm.eaten
}
