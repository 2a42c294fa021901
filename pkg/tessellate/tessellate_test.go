package tessellate

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/quillcad/quill/pkg/drawing"
	"github.com/quillcad/quill/pkg/entity"
	"github.com/quillcad/quill/pkg/geom"
	"github.com/quillcad/quill/pkg/ocs"
	"github.com/quillcad/quill/pkg/table"
)

const tol = 1e-9

// fixedTransformer is a deterministic fake with a known mapping: it shifts
// world points by a constant offset on the way into the object frame.
type fixedTransformer struct {
	offset geom.Vec3
}

func (f fixedTransformer) Transform(p, normal geom.Vec3, from, to ocs.Frame) geom.Vec3 {
	if from == to {
		return p
	}
	if from == ocs.World {
		return p.Add(f.offset)
	}
	return p.Sub(f.offset)
}

func TestUnitCircleSquare(t *testing.T) {
	c := entity.NewUnitCircle()
	p, err := Circle(c, ocs.ArbitraryAxis{}, 4)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}

	if !p.Closed {
		t.Error("polyline should be closed")
	}
	if p.Elevation != 0 {
		t.Errorf("elevation = %v, want 0", p.Elevation)
	}
	if p.VertexCount() != 4 {
		t.Fatalf("vertex count = %d, want 4", p.VertexCount())
	}

	want := []geom.Vec2{
		{X: 0, Y: 1},  // local north first
		{X: -1, Y: 0}, // then counter-clockwise
		{X: 0, Y: -1},
		{X: 1, Y: 0},
	}
	for i, w := range want {
		got := p.Vertices()[i]
		if got.Sub(w).Length() > tol {
			t.Errorf("vertex %d = %v, want %v", i, got, w)
		}
	}
}

func TestVertexCountAndRadius(t *testing.T) {
	tr := ocs.ArbitraryAxis{}
	center := geom.Vec3{X: 12, Y: -3, Z: 7}

	for _, precision := range []int{3, 4, 5, 8, 17, 100} {
		for _, radius := range []float64{0.25, 1, 40} {
			c := entity.NewCircle(center, radius)
			p, err := Circle(c, tr, precision)
			if err != nil {
				t.Fatalf("Circle(precision=%d): %v", precision, err)
			}
			if p.VertexCount() != precision {
				t.Fatalf("precision %d: vertex count = %d", precision, p.VertexCount())
			}

			// Every vertex sits at distance radius from the resolved center.
			local := tr.Transform(center, c.Normal(), ocs.World, ocs.Object)
			for i, v := range p.Vertices() {
				d := v.Sub(geom.Vec2{X: local.X, Y: local.Y}).Length()
				if math.Abs(d-radius) > tol*(1+radius) {
					t.Errorf("precision %d r %v: vertex %d at distance %v", precision, radius, i, d)
				}
			}
		}
	}
}

func TestNoDuplicateClosingVertex(t *testing.T) {
	p, err := Circle(entity.NewUnitCircle(), ocs.ArbitraryAxis{}, 12)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	vs := p.Vertices()
	first, last := vs[0], vs[len(vs)-1]
	if first.Sub(last).Length() < 1e-6 {
		t.Errorf("last vertex %v duplicates first %v; closure must be implied by the flag", last, first)
	}
}

func TestPrecisionOutOfRange(t *testing.T) {
	c := entity.NewUnitCircle()
	for _, precision := range []int{2, 1, 0, -5} {
		p, err := Circle(c, ocs.ArbitraryAxis{}, precision)
		if !errors.Is(err, ErrPrecision) {
			t.Errorf("precision %d: err = %v, want ErrPrecision", precision, err)
		}
		if p != nil {
			t.Errorf("precision %d: got output %v, want nil", precision, p)
		}
		// The message names the offending value.
		if err != nil && !strings.Contains(err.Error(), "precision") {
			t.Errorf("error should name the parameter: %q", err)
		}
	}
}

func TestAttributeInheritance(t *testing.T) {
	layer := table.NewLayer("holes", table.Yellow, nil)
	dashed := table.NewLineType("dashed", 12, 6)

	c := entity.NewCircle(geom.Vec3{X: 1, Y: 2}, 5)
	if err := c.SetLayer(layer); err != nil {
		t.Fatalf("SetLayer: %v", err)
	}
	if err := c.SetColor(table.Red); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if err := c.SetLineType(dashed); err != nil {
		t.Fatalf("SetLineType: %v", err)
	}
	c.Thickness = 2.5
	c.PutXData("QUILL_APP", []int{1, 2, 3})

	p, err := Circle(c, ocs.ArbitraryAxis{}, 6)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}

	// Same handles, not copies.
	if p.Layer() != layer {
		t.Error("layer handle not shared")
	}
	if p.Color() != table.Red {
		t.Error("color handle not shared")
	}
	if p.LineType() != dashed {
		t.Error("line type handle not shared")
	}
	if p.Thickness != 2.5 {
		t.Errorf("thickness = %v, want 2.5", p.Thickness)
	}
	if !p.Closed {
		t.Error("closed flag not set")
	}
	if p.Normal() != c.Normal() {
		t.Errorf("normal = %v, want %v", p.Normal(), c.Normal())
	}

	// Extended data is the same map.
	c.PutXData("LATER_APP", "x")
	if _, ok := p.XData()["LATER_APP"]; !ok {
		t.Error("xdata not shared by reference")
	}
}

func TestTiltedCircleElevation(t *testing.T) {
	c := entity.NewCircle(geom.Vec3{X: 3, Y: 4, Z: 5}, 2)
	if err := c.SetNormal(geom.Vec3{Z: -1}); err != nil {
		t.Fatalf("SetNormal: %v", err)
	}

	// With the real transformer, normal -Z maps (x,y,z) to (-x,y,-z).
	p, err := Circle(c, ocs.ArbitraryAxis{}, 8)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	if math.Abs(p.Elevation-(-5)) > tol {
		t.Errorf("elevation = %v, want -5", p.Elevation)
	}

	// With a stub mapping the elevation is exactly the stub's depth.
	stub := fixedTransformer{offset: geom.Vec3{X: 10, Y: 20, Z: 30}}
	p, err = Circle(c, stub, 3)
	if err != nil {
		t.Fatalf("Circle(stub): %v", err)
	}
	if p.Elevation != 35 {
		t.Errorf("stub elevation = %v, want 35", p.Elevation)
	}
	// First vertex: local north offset by the stub-resolved planar center.
	first := p.Vertices()[0]
	want := geom.Vec2{X: 13, Y: 26} // (3+10, 4+20) + (0, radius)
	if first.Sub(want).Length() > tol {
		t.Errorf("first vertex = %v, want %v", first, want)
	}
}

func TestSourceCircleNotMutated(t *testing.T) {
	c := entity.NewCircle(geom.Vec3{X: 1, Y: 2, Z: 3}, 4)
	before := *c

	if _, err := Circle(c, ocs.ArbitraryAxis{}, 16); err != nil {
		t.Fatalf("Circle: %v", err)
	}

	if c.Center != before.Center || c.Radius != before.Radius ||
		c.Thickness != before.Thickness || c.Normal() != before.Normal() {
		t.Error("tessellation mutated the source circle")
	}
}

func TestNegativeRadiusMirrors(t *testing.T) {
	// Open-question behavior preserved: a negative radius mirrors the
	// polygon through the center rather than failing.
	p, err := Circle(entity.NewCircle(geom.Zero, -1), ocs.ArbitraryAxis{}, 4)
	if err != nil {
		t.Fatalf("Circle: %v", err)
	}
	first := p.Vertices()[0]
	if first.Sub(geom.Vec2{X: 0, Y: -1}).Length() > tol {
		t.Errorf("first vertex = %v, want mirrored south (0,-1)", first)
	}
}

func TestDrawingSweep(t *testing.T) {
	d := drawing.New()
	d.Add(entity.NewCircle(geom.Vec3{X: 1}, 2))
	d.Add(entity.NewPolyline()) // not a circle, skipped
	d.Add(entity.NewCircle(geom.Vec3{X: -1}, 3))

	polys, err := Drawing(d, ocs.ArbitraryAxis{}, 5)
	if err != nil {
		t.Fatalf("Drawing: %v", err)
	}
	if len(polys) != 2 {
		t.Fatalf("polyline count = %d, want 2", len(polys))
	}
	for i, p := range polys {
		if p.VertexCount() != 5 {
			t.Errorf("polyline %d vertex count = %d", i, p.VertexCount())
		}
	}
	// Sweep does not insert into the drawing.
	if d.EntityCount() != 3 {
		t.Errorf("drawing entity count changed to %d", d.EntityCount())
	}

	if _, err := Drawing(d, ocs.ArbitraryAxis{}, 2); !errors.Is(err, ErrPrecision) {
		t.Errorf("sweep with precision 2 = %v, want ErrPrecision", err)
	}
}
