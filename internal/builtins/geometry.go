// Package builtins preloads a root Environment with the standard
// library every Simplex program sees before its own definitions are
// installed: the geometry kernel's constructors and methods,
// locale-aware string comparison, and a handful of process-level
// helpers. Each builtin adds its bindings directly to the root
// environment and the relevant type's operation table.
package builtins

import (
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/geom"
	"github.com/solidkit/simplex/internal/types"
)

// declareBuiltin declares and binds a builtin function in one step,
// since a builtin's type never needs a separate forward declaration
// the way a user `fun` does for recursion.
func declareBuiltin(rootEnv *env.Environment, b *types.BuiltinValue) error {
	if err := rootEnv.DeclareType(b.Name, b.Sig); err != nil {
		return err
	}
	return rootEnv.AddValue(b.Name, b)
}

// installGeometry binds the Solid/Polygon constructors as root
// functions and the kernel operations as methods on Solid, each a thin
// adapter over internal/geom's handle API.
func installGeometry(rootEnv *env.Environment) *errors.List {
	var list errors.List

	float1 := []types.Type{types.FloatType}
	float2 := []types.Type{types.FloatType, types.FloatType}
	float3 := []types.Type{types.FloatType, types.FloatType, types.FloatType}
	solid2 := []types.Type{types.SolidType, types.SolidType}

	builtinsFn := []*types.BuiltinValue{
		{
			Name: "cuboid",
			Sig:  types.NewFunctionType([][]types.Type{float3}, types.SolidType),
			Call: func(args []types.Value) (types.Value, error) {
				l, w, h := args[0].(types.FloatValue).Val, args[1].(types.FloatValue).Val, args[2].(types.FloatValue).Val
				return &types.SolidValue{Solid: geom.NewCuboid(l, w, h)}, nil
			},
		},
		{
			Name: "sphere",
			Sig:  types.NewFunctionType([][]types.Type{float1}, types.SolidType),
			Call: func(args []types.Value) (types.Value, error) {
				return &types.SolidValue{Solid: geom.NewSphere(args[0].(types.FloatValue).Val)}, nil
			},
		},
		{
			Name: "cylinder",
			Sig:  types.NewFunctionType([][]types.Type{float2}, types.SolidType),
			Call: func(args []types.Value) (types.Value, error) {
				r, h := args[0].(types.FloatValue).Val, args[1].(types.FloatValue).Val
				return &types.SolidValue{Solid: geom.NewCylinder(r, h)}, nil
			},
		},
		{
			Name: "union",
			Sig:  types.NewFunctionType([][]types.Type{solid2}, types.SolidType),
			Call: func(args []types.Value) (types.Value, error) {
				a, b := args[0].(*types.SolidValue), args[1].(*types.SolidValue)
				return &types.SolidValue{Solid: geom.Union(a.Solid, b.Solid)}, nil
			},
		},
		{
			Name: "intersect",
			Sig:  types.NewFunctionType([][]types.Type{solid2}, types.SolidType),
			Call: func(args []types.Value) (types.Value, error) {
				a, b := args[0].(*types.SolidValue), args[1].(*types.SolidValue)
				return &types.SolidValue{Solid: geom.Intersect(a.Solid, b.Solid)}, nil
			},
		},
		{
			Name: "difference",
			Sig:  types.NewFunctionType([][]types.Type{solid2}, types.SolidType),
			Call: func(args []types.Value) (types.Value, error) {
				a, b := args[0].(*types.SolidValue), args[1].(*types.SolidValue)
				return &types.SolidValue{Solid: geom.Difference(a.Solid, b.Solid)}, nil
			},
		},
		{
			Name: "rectangle",
			Sig:  types.NewFunctionType([][]types.Type{float2}, types.PolygonType),
			Call: func(args []types.Value) (types.Value, error) {
				w, h := args[0].(types.FloatValue).Val, args[1].(types.FloatValue).Val
				return &types.PolygonValue{Polygon: geom.NewRectanglePolygon(w, h)}, nil
			},
		},
		{
			Name: "circle",
			Sig:  types.NewFunctionType([][]types.Type{float1}, types.PolygonType),
			Call: func(args []types.Value) (types.Value, error) {
				return &types.PolygonValue{Polygon: geom.NewCirclePolygon(args[0].(types.FloatValue).Val)}, nil
			},
		},
	}
	for _, b := range builtinsFn {
		if err := declareBuiltin(rootEnv, b); err != nil {
			list.Add(asSimplexError(err))
		}
	}

	solidOps := types.SolidType.Ops()
	solidOps.Register(&types.MethodSignature{
		Name: "move", ParamTypes: float3, ReturnType: types.SolidType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			s := self.(*types.SolidValue).Solid
			dx, dy, dz := args[0].(types.FloatValue).Val, args[1].(types.FloatValue).Val, args[2].(types.FloatValue).Val
			return &types.SolidValue{Solid: s.Move(dx, dy, dz)}, nil
		},
	})
	solidOps.Register(&types.MethodSignature{
		Name: "rotate", ParamTypes: float3, ReturnType: types.SolidType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			s := self.(*types.SolidValue).Solid
			rx, ry, rz := args[0].(types.FloatValue).Val, args[1].(types.FloatValue).Val, args[2].(types.FloatValue).Val
			return &types.SolidValue{Solid: s.Rotate(rx, ry, rz)}, nil
		},
	})
	solidOps.Register(&types.MethodSignature{
		Name: "scale", ParamTypes: float3, ReturnType: types.SolidType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			s := self.(*types.SolidValue).Solid
			sx, sy, sz := args[0].(types.FloatValue).Val, args[1].(types.FloatValue).Val, args[2].(types.FloatValue).Val
			return &types.SolidValue{Solid: s.Scale(sx, sy, sz)}, nil
		},
	})
	solidOps.Register(&types.MethodSignature{
		Name: "union", ParamTypes: []types.Type{types.SolidType}, ReturnType: types.SolidType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			a := self.(*types.SolidValue).Solid
			b := args[0].(*types.SolidValue).Solid
			return &types.SolidValue{Solid: geom.Union(a, b)}, nil
		},
	})
	solidOps.Register(&types.MethodSignature{
		Name: "intersect", ParamTypes: []types.Type{types.SolidType}, ReturnType: types.SolidType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			a := self.(*types.SolidValue).Solid
			b := args[0].(*types.SolidValue).Solid
			return &types.SolidValue{Solid: geom.Intersect(a, b)}, nil
		},
	})
	solidOps.Register(&types.MethodSignature{
		Name: "difference", ParamTypes: []types.Type{types.SolidType}, ReturnType: types.SolidType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			a := self.(*types.SolidValue).Solid
			b := args[0].(*types.SolidValue).Solid
			return &types.SolidValue{Solid: geom.Difference(a, b)}, nil
		},
	})
	// bounds() returns [min, max] as a 2-element Point vector, the
	// simplest representation of the (min, max) pair without
	// introducing a tuple construct the rest of the language doesn't
	// have.
	pointVecType := types.NewVectorType(types.PointType)
	solidOps.Register(&types.MethodSignature{
		Name: "bounds", ParamTypes: nil, ReturnType: pointVecType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			b := self.(*types.SolidValue).Solid.Bounds()
			min := types.PointValue{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z}
			max := types.PointValue{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z}
			return &types.VectorValue{Elems: []types.Value{min, max}, ElemType: types.PointType}, nil
		},
	})
	// toStl takes no name argument at the language level; the model
	// driver calls (*geom.Solid).ToStl directly with the product name
	// when writing a product's combined P-N.stl artifact.
	solidOps.Register(&types.MethodSignature{
		Name: "toStl", ParamTypes: nil, ReturnType: types.StringType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			s := self.(*types.SolidValue).Solid
			return types.StringValue{Val: s.ToStl("solid")}, nil
		},
	})

	return &list
}

func asSimplexError(err error) *errors.SimplexError {
	if se, ok := err.(*errors.SimplexError); ok {
		return se
	}
	return errors.New(errors.Internal, err.Error())
}
