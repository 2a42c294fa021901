// Package tessellate approximates circle entities with closed polylines.
// The sampling happens in each circle's object frame; the injected ocs
// transformer resolves the world-frame center into that frame.
package tessellate

import (
	"errors"
	"fmt"
	"math"

	"github.com/quillcad/quill/pkg/drawing"
	"github.com/quillcad/quill/pkg/entity"
	"github.com/quillcad/quill/pkg/geom"
	"github.com/quillcad/quill/pkg/ocs"
)

// MinPrecision is the smallest vertex count that still encloses area.
const MinPrecision = 3

// ErrPrecision is wrapped by errors rejecting a too-small precision.
var ErrPrecision = errors.New("tessellate: precision out of range")

// Circle approximates c with a closed polyline of exactly precision
// vertices, a regular polygon of circumradius c.Radius in the circle's
// object frame. Vertices run counter-clockwise starting at the circle's
// local north; the closing vertex is implied by the Closed flag, never
// appended. The polyline shares c's layer, color, line type, normal and
// extended data by reference and takes its elevation from the depth
// component of the transformed center. c itself is never mutated.
func Circle(c *entity.Circle, tr ocs.Transformer, precision int) (*entity.Polyline, error) {
	if precision < MinPrecision {
		return nil, fmt.Errorf("%w: precision is %d, need at least %d", ErrPrecision, precision, MinPrecision)
	}

	// Resolve the world-frame center into the circle's own object frame.
	// X/Y become the planar offset of every sample, Z the elevation.
	center := tr.Transform(c.Center, c.Normal(), ocs.World, ocs.Object)

	p := entity.NewPolyline()
	p.Closed = true
	p.Elevation = center.Z
	p.Thickness = c.Thickness
	if err := p.SetLayer(c.Layer()); err != nil {
		return nil, fmt.Errorf("tessellate: inheriting layer: %w", err)
	}
	if err := p.SetColor(c.Color()); err != nil {
		return nil, fmt.Errorf("tessellate: inheriting color: %w", err)
	}
	if err := p.SetLineType(c.LineType()); err != nil {
		return nil, fmt.Errorf("tessellate: inheriting line type: %w", err)
	}
	if err := p.SetNormal(c.Normal()); err != nil {
		return nil, fmt.Errorf("tessellate: inheriting normal: %w", err)
	}
	p.SetXData(c.XData())

	// Phase offset of pi/2 puts the first vertex at local north.
	step := 2 * math.Pi / float64(precision)
	for i := 0; i < precision; i++ {
		angle := math.Pi/2 + float64(i)*step
		p.Append(geom.Vec2{
			X: c.Radius*math.Cos(angle) + center.X,
			Y: c.Radius*math.Sin(angle) + center.Y,
		})
	}

	return p, nil
}

// Drawing tessellates every circle in d, returning one polyline per circle
// in insertion order. The drawing and its circles are not mutated; the
// caller decides whether to insert the results.
func Drawing(d *drawing.Drawing, tr ocs.Transformer, precision int) ([]*entity.Polyline, error) {
	var polys []*entity.Polyline
	for i, c := range d.Circles() {
		p, err := Circle(c, tr, precision)
		if err != nil {
			return nil, fmt.Errorf("tessellate: circle %d: %w", i, err)
		}
		polys = append(polys, p)
	}
	return polys, nil
}
