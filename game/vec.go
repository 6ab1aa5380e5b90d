package game

import "math"

// Vec2 is a position or velocity in cells
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Cell returns the grid cell nearest to v
func (v Vec2) Cell() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

// SameCell reports whether v and o round to the same cell
func (v Vec2) SameCell(o Vec2) bool {
	vx, vy := v.Cell()
	ox, oy := o.Cell()
	return vx == ox && vy == oy
}
