// Package semantic implements Simplex's static analysis: resolving
// surface type expressions to types.Type, and validating every
// expression and definition before any evaluation runs. Analysis and
// result-type computation are one recursive walk (Infer) rather than
// two separate passes: both need the identical tree traversal, and
// Go's type switches make one pass simpler than threading two
// mutually-recursive ones (see DESIGN.md).
package semantic

import (
	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/types"
)

// ResolveTypeExpr turns surface syntax (`Name`, `[T]`, `(T1,T2)->R`)
// into a registered types.Type.
func ResolveTypeExpr(e *env.Environment, texpr ast.TypeExpr) (types.Type, error) {
	switch t := texpr.(type) {
	case *ast.SimpleTypeExpr:
		resolved, ok := e.Registry.Lookup(t.Name)
		if !ok {
			return nil, errors.At(errors.Undefined, "undefined type: "+t.Name, t.Pos())
		}
		return resolved, nil
	case *ast.VectorTypeExpr:
		elem, err := ResolveTypeExpr(e, t.Elem)
		if err != nil {
			return nil, err
		}
		return types.NewVectorType(elem), nil
	case *ast.FunctionTypeExpr:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			pt, err := ResolveTypeExpr(e, p)
			if err != nil {
				return nil, err
			}
			params[i] = pt
		}
		ret, err := ResolveTypeExpr(e, t.Return)
		if err != nil {
			return nil, err
		}
		return types.NewFunctionType([][]types.Type{params}, ret), nil
	default:
		return nil, errors.At(errors.Internal, "unknown type expression", texpr.Pos())
	}
}
