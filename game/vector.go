package game

import "math"

// Vector2D is a point or direction in playfield space.
// Mutators work in place on the receiver, like the entity fields they update.
type Vector2D struct {
	X float64
	Y float64
}

// Add adds v to the receiver
func (p *Vector2D) Add(v Vector2D) {
	p.X += v.X
	p.Y += v.Y
}

// Subtract subtracts v from the receiver
func (p *Vector2D) Subtract(v Vector2D) {
	p.X -= v.X
	p.Y -= v.Y
}

// Scale multiplies the receiver component-wise by v
func (p *Vector2D) Scale(v Vector2D) {
	p.X *= v.X
	p.Y *= v.Y
}

// CopyFrom overwrites the receiver with v
func (p *Vector2D) CopyFrom(v Vector2D) {
	p.X = v.X
	p.Y = v.Y
}

// Zero resets both components
func (p *Vector2D) Zero() {
	p.X = 0
	p.Y = 0
}

// Length returns the magnitude of the vector
func (p Vector2D) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the Euclidean distance between two points
func (p Vector2D) Distance(other Vector2D) float64 {
	dx := math.Abs(p.X - other.X)
	dy := math.Abs(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
