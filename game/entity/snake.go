package entity

import (
	"gridsnake/game/types"
)

const (
	InitialSize   = 3
	PointsPerFood = 10
)

// SpawnHead is where a reset snake's head starts
var SpawnHead = types.Point{X: 300, Y: 300}

type Snake struct {
	Body      []types.Point // head first
	Direction types.Direction
	Size      int
	Score     int

	moved types.Direction // heading of the last move
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset lays out a horizontal body facing right with its head on SpawnHead
func (s *Snake) Reset() {
	s.Size = InitialSize
	s.Score = 0
	s.Direction = types.Right
	s.moved = s.Direction
	s.Body = make([]types.Point, 0, 16)
	for i := 0; i < s.Size; i++ {
		s.Body = append(s.Body, types.Point{X: SpawnHead.X - i*types.TileSize, Y: SpawnHead.Y})
	}
}

// Move advances the head one tile in the current direction. It returns false
// and leaves the body untouched when the new head would leave the grid.
func (s *Snake) Move(grid types.Grid) bool {
	newHead := s.GetHead().Add(s.Direction.Delta())
	if !grid.Contains(newHead.Tile()) {
		return false
	}

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.moved = s.Direction
	if len(s.Body) > s.Size {
		s.Body = s.Body[:s.Size]
	}
	return true
}

// Grow lengthens the target size; the body catches up over the next moves
func (s *Snake) Grow() {
	s.Size++
	s.Score += PointsPerFood
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) HeadRect() types.Rect {
	return s.GetHead().Tile()
}

// CheckSelfCollision reports whether the head overlaps any other segment
func (s *Snake) CheckSelfCollision() bool {
	head := s.HeadRect()
	for _, part := range s.Body[1:] {
		if part.Tile().Intersects(head) {
			return true
		}
	}
	return false
}

// SetDirection changes heading unless dir reverses the heading of the last
// move. Several turns between two moves are all checked against that move.
// Returns whether the heading was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	last := s.moved
	if !last.Valid() {
		last = s.Direction
	}
	if !dir.Valid() || dir == last.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
