package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a tile at pos leaves the board
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos.Tile())
}

// IsFoodCollision checks if the snake's head overlaps the food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return snake.HeadRect().Intersects(food.Rect())
}

// IsSelfCollision checks if the snake's head overlaps its own body
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.CheckSelfCollision()
}

// IsObstacleCollision checks if the snake's head overlaps any obstacle
func (cm *CollisionManager) IsObstacleCollision(snake *entity.Snake, obstacles *entity.Obstacles) bool {
	if obstacles == nil {
		return false
	}
	return obstacles.Hit(snake.HeadRect())
}

// IsHazardCollision checks if an active hazard overlaps the snake's head
func (cm *CollisionManager) IsHazardCollision(snake *entity.Snake, hazard *entity.Hazard) bool {
	return hazard != nil && hazard.Collides(snake.HeadRect())
}

// ValidateObstacle checks a generation candidate against the tiles already
// accepted and the clearance from head. Clearance is per axis: both the
// horizontal and vertical distance to head must exceed it.
func (cm *CollisionManager) ValidateObstacle(pos types.Point, accepted []types.Point, head types.Point, clearance int) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	candidate := pos.Tile()
	for _, o := range accepted {
		if o.Tile().Intersects(candidate) {
			return false
		}
	}
	if clearance > 0 && (abs(pos.X-head.X) <= clearance || abs(pos.Y-head.Y) <= clearance) {
		return false
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
