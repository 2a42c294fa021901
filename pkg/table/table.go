package table

import "fmt"

// Table interns layer and line type definitions for one drawing. Lookups
// return the shared handle so every entity on a layer references the same
// instance.
type Table struct {
	layers    map[string]*Layer
	lineTypes map[string]*LineType
}

// NewTable creates a registry pre-seeded with the Default layer and the
// Continuous line type.
func NewTable() *Table {
	t := &Table{
		layers:    make(map[string]*Layer),
		lineTypes: make(map[string]*LineType),
	}
	t.layers[DefaultLayer.Name()] = DefaultLayer
	t.lineTypes[Continuous.Name()] = Continuous
	return t
}

// AddLayer interns a new layer definition.
func (t *Table) AddLayer(name string, color *Color, lineType *LineType) (*Layer, error) {
	if _, exists := t.layers[name]; exists {
		return nil, fmt.Errorf("table: layer %q already defined", name)
	}
	l := NewLayer(name, color, lineType)
	t.layers[name] = l
	return l, nil
}

// AddLineType interns a new line type definition.
func (t *Table) AddLineType(name string, pattern ...float64) (*LineType, error) {
	if _, exists := t.lineTypes[name]; exists {
		return nil, fmt.Errorf("table: line type %q already defined", name)
	}
	lt := NewLineType(name, pattern...)
	t.lineTypes[name] = lt
	return lt, nil
}

// Layer returns the interned layer with the given name, or nil.
func (t *Table) Layer(name string) *Layer {
	return t.layers[name]
}

// LineType returns the interned line type with the given name, or nil.
func (t *Table) LineType(name string) *LineType {
	return t.lineTypes[name]
}

// HasLayer reports whether the exact handle l is interned in this table.
func (t *Table) HasLayer(l *Layer) bool {
	return l != nil && t.layers[l.Name()] == l
}

// HasLineType reports whether the exact handle lt is interned in this
// table. The by-layer sentinel always passes.
func (t *Table) HasLineType(lt *LineType) bool {
	if lt == LineTypeByLayer {
		return true
	}
	return lt != nil && t.lineTypes[lt.Name()] == lt
}

// LayerNames returns the names of all interned layers.
func (t *Table) LayerNames() []string {
	names := make([]string, 0, len(t.layers))
	for name := range t.layers {
		names = append(names, name)
	}
	return names
}
