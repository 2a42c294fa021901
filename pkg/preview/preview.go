// Package preview turns thick circle entities into triangle meshes for
// downstream viewers. Solid modeling happens behind an abstract kernel
// interface; the sdfx subpackage provides the production backend.
package preview

import (
	"fmt"
	"math"

	"github.com/quillcad/quill/pkg/drawing"
	"github.com/quillcad/quill/pkg/geom"
)

// Solid is an opaque handle to a kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract solid-modeling interface the extruder drives.
// Implementations provide the geometry behind it, so backends can be
// swapped (or faked in tests) without changing the extrusion logic.
type Kernel interface {
	// Cylinder creates a cylinder of the given height and radius,
	// centered at the origin with its axis along +Z.
	Cylinder(height, radius float64) Solid

	// Rotate rotates a solid by Euler angles in degrees around X, Y, Z.
	Rotate(s Solid, x, y, z float64) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}

// Extrude produces one mesh per circle in d that has a nonzero thickness
// and a positive radius. Each circle becomes a cylinder extruded from the
// circle's plane along its normal. The drawing is not mutated.
func Extrude(d *drawing.Drawing, k Kernel) ([]*Mesh, error) {
	var meshes []*Mesh

	for i, c := range d.Circles() {
		if c.Thickness == 0 || c.Radius <= 0 {
			continue
		}

		s := k.Cylinder(math.Abs(c.Thickness), c.Radius)

		// Tilt the cylinder axis from +Z onto the circle's normal.
		rx, ry := eulerFromNormal(c.Normal())
		if rx != 0 || ry != 0 {
			s = k.Rotate(s, rx, ry, 0)
		}

		// The extrusion grows from the circle's plane along the normal,
		// so the slab midpoint sits half a thickness off the center.
		mid := c.Center.Add(c.Normal().Scale(c.Thickness / 2))
		s = k.Translate(s, mid.X, mid.Y, mid.Z)

		m, err := k.ToMesh(s)
		if err != nil {
			return nil, fmt.Errorf("preview: meshing circle %d: %w", i, err)
		}

		if name := d.NameOf(c); name != "" {
			m.Name = name
		} else {
			m.Name = fmt.Sprintf("circle-%d", i)
		}
		meshes = append(meshes, m)
	}

	return meshes, nil
}

// eulerFromNormal returns X and Y rotations in degrees that map the +Z
// axis onto the unit normal n when applied X first, then Y.
func eulerFromNormal(n geom.Vec3) (rx, ry float64) {
	y := math.Max(-1, math.Min(1, n.Y))
	rx = math.Asin(-y) * 180 / math.Pi
	ry = math.Atan2(n.X, n.Z) * 180 / math.Pi
	return rx, ry
}
