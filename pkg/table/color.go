// Package table defines the shared drawing attributes — layers, line types
// and colors — that entities reference but do not own. Handles are immutable
// after creation; a Table registry interns them per drawing so that multiple
// entities share one instance of each definition.
package table

import "fmt"

// ByLayerIndex is the color index meaning "inherit from the entity's layer".
const ByLayerIndex = 256

// Color is an immutable color handle. Entities hold a *Color reference;
// identical-looking colors created separately are distinct handles.
type Color struct {
	name  string
	index int
}

// NewColor creates a color handle with the given display name and index.
func NewColor(name string, index int) *Color {
	return &Color{name: name, index: index}
}

// ColorByLayer is the sentinel meaning "use the layer's color".
var ColorByLayer = &Color{name: "ByLayer", index: ByLayerIndex}

// Well-known colors, indexed per the conventional 1..7 palette.
var (
	Red     = &Color{name: "Red", index: 1}
	Yellow  = &Color{name: "Yellow", index: 2}
	Green   = &Color{name: "Green", index: 3}
	Cyan    = &Color{name: "Cyan", index: 4}
	Blue    = &Color{name: "Blue", index: 5}
	Magenta = &Color{name: "Magenta", index: 6}
	White   = &Color{name: "White", index: 7}
)

// palette maps the well-known indices to their shared handles.
var palette = map[int]*Color{
	1: Red, 2: Yellow, 3: Green, 4: Cyan, 5: Blue, 6: Magenta, 7: White,
	ByLayerIndex: ColorByLayer,
}

// ColorByIndex returns the shared handle for a well-known color index.
func ColorByIndex(index int) (*Color, error) {
	c, ok := palette[index]
	if !ok {
		return nil, fmt.Errorf("table: no well-known color with index %d", index)
	}
	return c, nil
}

// Name returns the color's display name.
func (c *Color) Name() string { return c.name }

// Index returns the color's palette index.
func (c *Color) Index() int { return c.index }

// IsByLayer reports whether c is the by-layer sentinel.
func (c *Color) IsByLayer() bool { return c == ColorByLayer }

func (c *Color) String() string {
	return fmt.Sprintf("%s(%d)", c.name, c.index)
}
