package model

import (
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/evaluator"
	"github.com/solidkit/simplex/internal/geom"
	"github.com/solidkit/simplex/internal/types"
)

// Artifact is one product's evaluated output, grouped by kind: every
// Solid result is combined by union into a single mesh, every other
// result is serialized textually in evaluation order.
type Artifact struct {
	Product string
	Solid   *geom.Solid // nil if the product produced no solids
	Lines   []string
}

// Execute evaluates the named products' body expressions and groups
// their results into artifacts. With no names given, every product in
// the program runs.
func (m *Model) Execute(names ...string) ([]Artifact, *errors.List) {
	list := &errors.List{}
	wanted := m.Program.Products
	if len(names) > 0 {
		wanted = nil
		want := make(map[string]bool, len(names))
		for _, n := range names {
			want[n] = true
		}
		for _, prod := range m.Program.Products {
			if want[prod.Name] {
				wanted = append(wanted, prod)
			}
		}
	}

	artifacts := make([]Artifact, 0, len(wanted))
	for _, prod := range wanted {
		// One child scope per product, matching
		// internal/semantic.Validate's product-body scoping so a
		// product cannot leak `let` bindings into its siblings.
		scope := m.RootEnv.Child()
		art := Artifact{Product: prod.Name}
		for _, expr := range prod.Body {
			v, err := evaluator.Eval(expr, scope)
			if err != nil {
				list.Add(asSimplexError(err))
				break
			}
			switch rv := v.(type) {
			case *types.SolidValue:
				if art.Solid == nil {
					art.Solid = rv.Solid
				} else {
					art.Solid = geom.Union(art.Solid, rv.Solid)
				}
			default:
				art.Lines = append(art.Lines, rv.String())
			}
		}
		artifacts = append(artifacts, art)
	}
	return artifacts, list
}

func asSimplexError(err error) *errors.SimplexError {
	if se, ok := err.(*errors.SimplexError); ok {
		return se
	}
	return errors.New(errors.Internal, err.Error())
}
