// Package drawing provides the container that owns entities and their
// shared attribute tables, plus tiered validation over the result.
package drawing

import (
	"fmt"

	"github.com/quillcad/quill/pkg/entity"
	"github.com/quillcad/quill/pkg/table"
)

// Drawing is the top-level structure entities are inserted into. It owns
// the table registry that entity attribute handles should be interned in;
// the entities themselves only reference those handles.
type Drawing struct {
	Tables *table.Table
	Units  string

	entities []entity.Entity
	names    map[string]entity.Entity
}

// New creates an empty drawing with a seeded table registry. Units default
// to millimeters.
func New() *Drawing {
	return &Drawing{
		Tables: table.NewTable(),
		Units:  "mm",
		names:  make(map[string]entity.Entity),
	}
}

// Add appends an entity to the drawing.
func (d *Drawing) Add(e entity.Entity) {
	d.entities = append(d.entities, e)
}

// AddNamed appends an entity under a user-assigned name. Names are unique
// within a drawing.
func (d *Drawing) AddNamed(name string, e entity.Entity) error {
	if _, exists := d.names[name]; exists {
		return fmt.Errorf("drawing: entity %q already defined", name)
	}
	d.names[name] = e
	d.entities = append(d.entities, e)
	return nil
}

// Lookup returns the entity with the given user-assigned name, or nil.
func (d *Drawing) Lookup(name string) entity.Entity {
	return d.names[name]
}

// MustLookup returns the entity with the given name, or panics.
func (d *Drawing) MustLookup(name string) entity.Entity {
	e := d.Lookup(name)
	if e == nil {
		panic(fmt.Sprintf("drawing: no entity named %q", name))
	}
	return e
}

// NameOf returns the user-assigned name of an entity, or "" if the entity
// was added anonymously.
func (d *Drawing) NameOf(e entity.Entity) string {
	for name, named := range d.names {
		if named == e {
			return name
		}
	}
	return ""
}

// Entities returns all entities in insertion order.
func (d *Drawing) Entities() []entity.Entity {
	return d.entities
}

// EntityCount returns the number of entities.
func (d *Drawing) EntityCount() int {
	return len(d.entities)
}

// Circles returns all circle entities in insertion order.
func (d *Drawing) Circles() []*entity.Circle {
	var circles []*entity.Circle
	for _, e := range d.entities {
		if c, ok := e.(*entity.Circle); ok {
			circles = append(circles, c)
		}
	}
	return circles
}

// Polylines returns all polyline entities in insertion order.
func (d *Drawing) Polylines() []*entity.Polyline {
	var polys []*entity.Polyline
	for _, e := range d.entities {
		if p, ok := e.(*entity.Polyline); ok {
			polys = append(polys, p)
		}
	}
	return polys
}
