package entity

import (
	"fmt"

	"github.com/quillcad/quill/pkg/geom"
)

// Compile-time interface check.
var _ Entity = (*Circle)(nil)

// Circle is a circular entity: a world-frame center, a radius and an
// optional extrusion thickness along the orientation normal. The radius is
// not validated; a non-positive radius produces a degenerate or mirrored
// polygon when tessellated and is surfaced by drawing validation instead.
type Circle struct {
	attributes

	Center    geom.Vec3
	Radius    float64
	Thickness float64
}

// NewCircle creates a circle with the given world-frame center and radius.
// Attributes start at the defaults: Default layer, by-layer color and line
// type, normal +Z.
func NewCircle(center geom.Vec3, radius float64) *Circle {
	return &Circle{
		attributes: defaultAttributes(),
		Center:     center,
		Radius:     radius,
	}
}

// NewUnitCircle creates the default circle: unit radius at the world origin.
func NewUnitCircle() *Circle {
	return NewCircle(geom.Zero, 1)
}

// Kind returns KindCircle.
func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) String() string {
	return fmt.Sprintf("circle(center=%v r=%g)", c.Center, c.Radius)
}
