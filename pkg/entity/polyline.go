package entity

import (
	"fmt"

	"github.com/quillcad/quill/pkg/geom"
)

// Compile-time interface check.
var _ Entity = (*Polyline)(nil)

// Polyline is an ordered sequence of 2D vertices in the entity's object
// frame, at a fixed elevation along its normal. A closed polyline implies
// the segment from its last vertex back to its first; the closing vertex
// is never duplicated in the sequence.
type Polyline struct {
	attributes

	Closed    bool
	Elevation float64
	Thickness float64

	vertices []geom.Vec2
}

// NewPolyline creates an empty open polyline with default attributes.
func NewPolyline() *Polyline {
	return &Polyline{attributes: defaultAttributes()}
}

// Kind returns KindPolyline.
func (p *Polyline) Kind() Kind { return KindPolyline }

// Append adds a vertex at the end of the sequence. Insertion order is the
// drawing order around the curve.
func (p *Polyline) Append(v geom.Vec2) {
	p.vertices = append(p.vertices, v)
}

// Vertices returns the vertex sequence. The slice is the polyline's own
// backing store; callers must not reorder it.
func (p *Polyline) Vertices() []geom.Vec2 {
	return p.vertices
}

// VertexCount returns the number of vertices.
func (p *Polyline) VertexCount() int {
	return len(p.vertices)
}

func (p *Polyline) String() string {
	shape := "open"
	if p.Closed {
		shape = "closed"
	}
	return fmt.Sprintf("polyline(%s, %d vertices)", shape, len(p.vertices))
}
