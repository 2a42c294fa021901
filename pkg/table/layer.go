package table

// Layer is an immutable layer handle. Entities whose color or line type is
// a by-layer sentinel resolve through their layer's values.
type Layer struct {
	name     string
	color    *Color
	lineType *LineType
}

// NewLayer creates a layer handle. A nil color or line type falls back to
// White and Continuous.
func NewLayer(name string, color *Color, lineType *LineType) *Layer {
	if color == nil {
		color = White
	}
	if lineType == nil {
		lineType = Continuous
	}
	return &Layer{name: name, color: color, lineType: lineType}
}

// DefaultLayer is the process-wide fallback layer referenced by every
// entity constructed without an explicit layer.
var DefaultLayer = NewLayer("Default", White, Continuous)

// Name returns the layer's name.
func (l *Layer) Name() string { return l.name }

// Color returns the layer's own color.
func (l *Layer) Color() *Color { return l.color }

// LineType returns the layer's own line type.
func (l *Layer) LineType() *LineType { return l.lineType }
