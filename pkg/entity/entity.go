// Package entity defines the drawing entity model: the capability contract
// every entity exposes, the Circle entity and the Polyline entity produced
// by tessellating one. Entities reference shared table handles (layer,
// color, line type) but never own them.
package entity

import (
	"errors"

	"github.com/quillcad/quill/pkg/geom"
	"github.com/quillcad/quill/pkg/table"
)

// Kind tags the concrete type of an entity.
type Kind int

const (
	KindCircle Kind = iota
	KindPolyline
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindPolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// ErrNilReference is returned by attribute setters handed a nil handle.
var ErrNilReference = errors.New("entity: nil attribute reference")

// ErrZeroNormal is returned by SetNormal for a zero-length vector.
var ErrZeroNormal = errors.New("entity: zero-length normal")

// XData maps an application registry id to an opaque payload. It is
// propagated by reference when one entity is derived from another, so two
// entities may share one map.
type XData map[string]any

// Entity is the capability contract shared by every concrete entity kind.
// Setters either fully succeed or leave the previous value unchanged.
type Entity interface {
	Kind() Kind

	Layer() *table.Layer
	SetLayer(*table.Layer) error

	Color() *table.Color
	SetColor(*table.Color) error

	LineType() *table.LineType
	SetLineType(*table.LineType) error

	// Normal is unit length at every observable point; SetNormal
	// re-normalizes its argument before storing it.
	Normal() geom.Vec3
	SetNormal(geom.Vec3) error

	XData() XData
}
