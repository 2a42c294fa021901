package table

// LineType is an immutable line style handle: a name plus a dash pattern.
// An empty pattern means a continuous line.
type LineType struct {
	name    string
	pattern []float64
}

// NewLineType creates a line type with the given dash pattern. The pattern
// slice is copied so the handle stays immutable.
func NewLineType(name string, pattern ...float64) *LineType {
	lt := &LineType{name: name}
	if len(pattern) > 0 {
		lt.pattern = append([]float64(nil), pattern...)
	}
	return lt
}

// Continuous is the process-wide unbroken line style.
var Continuous = &LineType{name: "Continuous"}

// LineTypeByLayer is the sentinel meaning "use the layer's line type".
var LineTypeByLayer = &LineType{name: "ByLayer"}

// Name returns the line type's name.
func (lt *LineType) Name() string { return lt.name }

// Pattern returns a copy of the dash pattern. Nil means continuous.
func (lt *LineType) Pattern() []float64 {
	if lt.pattern == nil {
		return nil
	}
	return append([]float64(nil), lt.pattern...)
}

// IsByLayer reports whether lt is the by-layer sentinel.
func (lt *LineType) IsByLayer() bool { return lt == LineTypeByLayer }
