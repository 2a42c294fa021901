package entity

import (
	"fmt"

	"github.com/quillcad/quill/pkg/geom"
	"github.com/quillcad/quill/pkg/table"
)

// attributes is the shared attribute surface embedded by every concrete
// entity. It enforces the contract invariants: handles are never nil and
// the stored normal is always unit length.
type attributes struct {
	layer    *table.Layer
	color    *table.Color
	lineType *table.LineType
	normal   geom.Vec3
	xdata    XData
}

// defaultAttributes returns the attribute set every newly constructed
// entity starts with.
func defaultAttributes() attributes {
	return attributes{
		layer:    table.DefaultLayer,
		color:    table.ColorByLayer,
		lineType: table.LineTypeByLayer,
		normal:   geom.UnitZ,
	}
}

// Layer returns the referenced layer handle.
func (a *attributes) Layer() *table.Layer { return a.layer }

// SetLayer replaces the layer reference. A nil handle is rejected and the
// previous value kept.
func (a *attributes) SetLayer(l *table.Layer) error {
	if l == nil {
		return fmt.Errorf("%w: layer", ErrNilReference)
	}
	a.layer = l
	return nil
}

// Color returns the referenced color handle.
func (a *attributes) Color() *table.Color { return a.color }

// SetColor replaces the color reference. A nil handle is rejected and the
// previous value kept.
func (a *attributes) SetColor(c *table.Color) error {
	if c == nil {
		return fmt.Errorf("%w: color", ErrNilReference)
	}
	a.color = c
	return nil
}

// LineType returns the referenced line type handle.
func (a *attributes) LineType() *table.LineType { return a.lineType }

// SetLineType replaces the line type reference. A nil handle is rejected
// and the previous value kept.
func (a *attributes) SetLineType(lt *table.LineType) error {
	if lt == nil {
		return fmt.Errorf("%w: line type", ErrNilReference)
	}
	a.lineType = lt
	return nil
}

// Normal returns the stored orientation normal. It is unit length.
func (a *attributes) Normal() geom.Vec3 { return a.normal }

// SetNormal normalizes v and stores it. A zero-length vector is rejected
// and the previous value kept; the stored normal is therefore unit length
// at every observable point.
func (a *attributes) SetNormal(v geom.Vec3) error {
	if v.IsZero() {
		return ErrZeroNormal
	}
	a.normal = v.Unit()
	return nil
}

// XData returns the extended-data slot. Nil until populated; the returned
// map is the entity's own slot, shared by reference with entities derived
// from this one.
func (a *attributes) XData() XData { return a.xdata }

// SetXData attaches an extended-data map by reference.
func (a *attributes) SetXData(x XData) { a.xdata = x }

// PutXData stores a payload under an application id, allocating the slot
// on first use.
func (a *attributes) PutXData(app string, payload any) {
	if a.xdata == nil {
		a.xdata = make(XData)
	}
	a.xdata[app] = payload
}
