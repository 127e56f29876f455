package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
)

// Cell is a board coordinate, valid when both axes are in [0, GridSize)
type Cell struct {
	X, Y int
}

// InBounds reports whether the cell lies on the board
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < constants.GridSize && c.Y >= 0 && c.Y < constants.GridSize
}

// Step returns the neighbouring cell one unit in direction d
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is the heading of the snake
type Direction uint8

const (
	DirRight Direction = iota
	DirUp
	DirDown
	DirLeft
)

// Delta returns the unit vector for the direction
// Up decreases Y, Down increases Y (screen coordinates)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// FoodKind distinguishes normal from special food
type FoodKind uint8

const (
	FoodNormal FoodKind = iota
	FoodSpecial
)

// Score returns the points awarded for eating this kind
func (k FoodKind) Score() int {
	if k == FoodSpecial {
		return constants.SpecialFoodScore
	}
	return constants.NormalFoodScore
}

func (k FoodKind) String() string {
	if k == FoodSpecial {
		return "special"
	}
	return "normal"
}

// Food is the single consumable item on the board
type Food struct {
	Cell Cell
	Kind FoodKind
}

// Collision identifies what ended the game
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
	CollisionBarrier
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionBarrier:
		return "barrier"
	default:
		return "none"
	}
}
