// Package ocs maps points between the world frame and an entity's object
// frame, the coordinate system implied by the entity's orientation normal.
// The capability is an interface so geometry code can be exercised with a
// deterministic fake; ArbitraryAxis is the standard implementation.
package ocs

import (
	"math"

	"github.com/quillcad/quill/pkg/geom"
)

// Frame identifies a coordinate frame for a transform endpoint.
type Frame int

const (
	World Frame = iota // the global frame shared by all entities
	Object             // the frame local to one entity's orientation normal
)

func (f Frame) String() string {
	switch f {
	case World:
		return "world"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Transformer maps a point between the world frame and the object frame
// implied by normal. Swapping from and to inverts the mapping. The normal
// must be non-degenerate; behavior for a zero-length normal is undefined.
type Transformer interface {
	Transform(p, normal geom.Vec3, from, to Frame) geom.Vec3
}

// ArbitraryAxis implements Transformer with the arbitrary-axis algorithm:
// the object X axis is the world Y or Z axis crossed with the normal,
// seeded by whichever is further from the normal direction.
type ArbitraryAxis struct{}

// Compile-time interface check.
var _ Transformer = ArbitraryAxis{}

// axisThreshold decides when the normal is close enough to the world Z
// axis that the world Y axis must seed the basis instead.
const axisThreshold = 1.0 / 64

// basis derives the orthonormal object axes for a normal.
func basis(normal geom.Vec3) (ax, ay, az geom.Vec3) {
	az = normal.Unit()

	seed := geom.UnitZ
	if math.Abs(az.X) < axisThreshold && math.Abs(az.Y) < axisThreshold {
		seed = geom.Vec3{Y: 1}
	}

	ax = seed.Cross(az).Unit()
	ay = az.Cross(ax)
	return ax, ay, az
}

// Transform maps p between frames. A same-frame call returns p unchanged.
func (ArbitraryAxis) Transform(p, normal geom.Vec3, from, to Frame) geom.Vec3 {
	if from == to {
		return p
	}

	ax, ay, az := basis(normal)
	if from == World {
		// Project onto the object axes.
		return geom.Vec3{X: p.Dot(ax), Y: p.Dot(ay), Z: p.Dot(az)}
	}
	// Recompose from object coordinates.
	return ax.Scale(p.X).Add(ay.Scale(p.Y)).Add(az.Scale(p.Z))
}
