package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/quillcad/quill/pkg/drawing"
	"github.com/quillcad/quill/pkg/entity"
	"github.com/quillcad/quill/pkg/geom"
	"github.com/quillcad/quill/pkg/table"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a geom.Vec3.
type sexpVec3 struct {
	vec geom.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.1f %.1f %.1f)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpLayer wraps an interned *table.Layer so it can be passed to entities.
type sexpLayer struct {
	layer *table.Layer
}

func (l *sexpLayer) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(layer %q)", l.layer.Name())
}
func (l *sexpLayer) Type() *zygo.RegisteredType { return nil }

// sexpEntity wraps a constructed entity so scripts can refer to it.
type sexpEntity struct {
	ent  entity.Entity
	name string // user-assigned name for display
}

func (e *sexpEntity) SexpString(ps *zygo.PrintState) string {
	if e.name != "" {
		return fmt.Sprintf("(entity %q)", e.name)
	}
	return fmt.Sprintf("(entity %s)", e.ent.Kind())
}
func (e *sexpEntity) Type() *zygo.RegisteredType { return nil }

// toVec3 extracts a geom.Vec3 from a sexpVec3.
func toVec3(s zygo.Sexp) (geom.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return geom.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// resolveLayer accepts either a layer name string or a sexpLayer and
// returns the interned handle from the drawing's tables.
func resolveLayer(d *drawing.Drawing, s zygo.Sexp) (*table.Layer, error) {
	switch v := s.(type) {
	case *sexpLayer:
		return v.layer, nil
	case *zygo.SexpStr:
		l := d.Tables.Layer(v.S)
		if l == nil {
			return nil, fmt.Errorf("no layer named %q", v.S)
		}
		return l, nil
	}
	return nil, fmt.Errorf("expected layer or layer name, got %T", s)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all Quill DSL builtins into a zygomys environment.
// The builtins operate on the provided Drawing, populating it during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, d *drawing.Drawing) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}

		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}

		return &sexpVec3{vec: geom.Vec3{X: x, Y: y, Z: z}}, nil
	})

	// -----------------------------------------------------------------------
	// (linetype "dashed" :pattern [12 6])
	// -----------------------------------------------------------------------
	env.AddFunction("linetype", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("linetype requires a name argument")
		}
		ltName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("linetype: name: %w", err)
		}

		var pattern []float64
		if v, ok := pa.kw["pattern"]; ok {
			pattern, err = toFloatSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("linetype: pattern: %w", err)
			}
		}

		if _, err := d.Tables.AddLineType(ltName, pattern...); err != nil {
			return zygo.SexpNull, fmt.Errorf("linetype: %w", err)
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (layer "walls" :color 1 :line-type "dashed")
	// -----------------------------------------------------------------------
	env.AddFunction("layer", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("layer requires a name argument")
		}
		layerName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("layer: name: %w", err)
		}

		var color *table.Color
		if v, ok := pa.kw["color"]; ok {
			idx, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("layer: color: %w", err)
			}
			color, err = table.ColorByIndex(idx)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("layer: %w", err)
			}
		}

		var lineType *table.LineType
		if v, ok := pa.kw["line-type"]; ok {
			ltName, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("layer: line-type: %w", err)
			}
			lineType = d.Tables.LineType(ltName)
			if lineType == nil {
				return zygo.SexpNull, fmt.Errorf("layer: no line type named %q", ltName)
			}
		}

		l, err := d.Tables.AddLayer(layerName, color, lineType)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("layer: %w", err)
		}
		return &sexpLayer{layer: l}, nil
	})

	// -----------------------------------------------------------------------
	// (circle :center (vec3 10 0 0) :radius 40 :layer "walls"
	//         :thickness 2.5 :normal (vec3 0 0 -1) :name "bolt-hole")
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		c := entity.NewUnitCircle()

		if v, ok := pa.kw["center"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: center: %w", err)
			}
			c.Center = vec
		}
		if v, ok := pa.kw["radius"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: radius: %w", err)
			}
			c.Radius = f
		}
		if v, ok := pa.kw["thickness"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: thickness: %w", err)
			}
			c.Thickness = f
		}
		if v, ok := pa.kw["normal"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: normal: %w", err)
			}
			if err := c.SetNormal(vec); err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: normal: %w", err)
			}
		}
		if v, ok := pa.kw["layer"]; ok {
			l, err := resolveLayer(d, v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: layer: %w", err)
			}
			if err := c.SetLayer(l); err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: layer: %w", err)
			}
		}
		if v, ok := pa.kw["color"]; ok {
			idx, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: color: %w", err)
			}
			col, err := table.ColorByIndex(idx)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: %w", err)
			}
			if err := c.SetColor(col); err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: color: %w", err)
			}
		}
		if v, ok := pa.kw["line-type"]; ok {
			ltName, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: line-type: %w", err)
			}
			lt := d.Tables.LineType(ltName)
			if lt == nil {
				return zygo.SexpNull, fmt.Errorf("circle: no line type named %q", ltName)
			}
			if err := c.SetLineType(lt); err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: line-type: %w", err)
			}
		}

		entName := ""
		if v, ok := pa.kw["name"]; ok {
			entName, _ = toString(v)
		}
		if entName != "" {
			if err := d.AddNamed(entName, c); err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: %w", err)
			}
		} else {
			d.Add(c)
		}

		return &sexpEntity{ent: c, name: entName}, nil
	})
}
