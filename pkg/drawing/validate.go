package drawing

import (
	"fmt"
	"math"

	"github.com/quillcad/quill/pkg/entity"
)

// Severity indicates whether a validation finding blocks downstream use or
// is merely advisory.
type Severity int

const (
	SeverityError   Severity = iota // blocking
	SeverityWarning                 // advisory
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding describes a single validation result.
type Finding struct {
	Entity   entity.Entity // which entity has the problem (nil if drawing-level)
	Message  string
	Severity Severity
}

func (f Finding) String() string {
	if f.Entity == nil {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Entity.Kind(), f.Message)
}

// Validate runs all validation tiers over the drawing. It is read-only and
// never mutates the drawing. An empty result means the drawing is clean.
func Validate(d *Drawing) []Finding {
	var findings []Finding
	findings = append(findings, validateReferences(d)...)
	findings = append(findings, validateGeometry(d)...)

	if d.EntityCount() == 0 {
		findings = append(findings, Finding{
			Message:  "drawing has no entities",
			Severity: SeverityWarning,
		})
	}
	return findings
}

// validateReferences checks that every entity's attribute handles are
// interned in the drawing's own tables. Entities referencing handles from
// another drawing (or none at all) are blocking errors.
func validateReferences(d *Drawing) []Finding {
	var findings []Finding
	for _, e := range d.Entities() {
		if !d.Tables.HasLayer(e.Layer()) {
			findings = append(findings, Finding{
				Entity:   e,
				Message:  fmt.Sprintf("layer %q is not in the drawing's layer table", e.Layer().Name()),
				Severity: SeverityError,
			})
		}
		if !d.Tables.HasLineType(e.LineType()) {
			findings = append(findings, Finding{
				Entity:   e,
				Message:  fmt.Sprintf("line type %q is not in the drawing's line type table", e.LineType().Name()),
				Severity: SeverityError,
			})
		}
	}
	return findings
}

// validateGeometry checks entity geometry. Degenerate radii are advisory:
// tessellation accepts them and produces a degenerate or mirrored polygon,
// so they warn rather than block.
func validateGeometry(d *Drawing) []Finding {
	var findings []Finding
	for _, e := range d.Entities() {
		if e.Normal().IsZero() {
			findings = append(findings, Finding{
				Entity:   e,
				Message:  "orientation normal has zero length",
				Severity: SeverityError,
			})
		}

		switch v := e.(type) {
		case *entity.Circle:
			if v.Radius <= 0 {
				findings = append(findings, Finding{
					Entity:   e,
					Message:  fmt.Sprintf("radius is %.4f, expected positive", v.Radius),
					Severity: SeverityWarning,
				})
			}
		case *entity.Polyline:
			if v.VertexCount() == 0 && math.Abs(v.Thickness) > 0 {
				findings = append(findings, Finding{
					Entity:   e,
					Message:  "thick polyline has no vertices",
					Severity: SeverityWarning,
				})
			}
		}
	}
	return findings
}
