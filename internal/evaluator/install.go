package evaluator

import (
	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/semantic"
	"github.com/solidkit/simplex/internal/types"
)

// InstallMethods attaches a BuiltinMethod closure for every `method`
// definition to its target type's operation table, so it can resolve
// through the exact same OperationTable.Resolve path as a built-in
// operator. It must run before Validate so method calls type-check
// against a populated table, and before InstallValues so method bodies
// referencing top-level functions see them declared (though not yet
// necessarily bound).
func InstallMethods(defs []ast.Definition, rootEnv *env.Environment) *errors.List {
	var list errors.List
	for _, d := range defs {
		md, ok := d.(*ast.MethodDef)
		if !ok {
			continue
		}
		target, err := semantic.ResolveTypeExpr(rootEnv, md.Target)
		if err != nil {
			list.Add(asSimplexError(err))
			continue
		}
		paramTypes := make([]types.Type, len(md.Params))
		for i, p := range md.Params {
			pt, err := semantic.ResolveTypeExpr(rootEnv, p.Type)
			if err != nil {
				list.Add(asSimplexError(err))
				pt = types.AnyType
			}
			paramTypes[i] = pt
		}
		retType, err := semantic.ResolveTypeExpr(rootEnv, md.ReturnType)
		if err != nil {
			list.Add(asSimplexError(err))
			continue
		}
		def := md
		target.Ops().Register(&types.MethodSignature{
			Name:       def.Name,
			ParamTypes: paramTypes,
			ReturnType: retType,
			Fn: func(self types.Value, args []types.Value) (types.Value, error) {
				scope := rootEnv.Child()
				if err := scope.DeclareType("self", self.Type()); err != nil {
					return nil, err
				}
				if err := scope.AddValue("self", self); err != nil {
					return nil, err
				}
				for i, p := range def.Params {
					if err := scope.DeclareType(p.Name, paramTypes[i]); err != nil {
						return nil, err
					}
					if err := scope.AddValue(p.Name, args[i]); err != nil {
						return nil, err
					}
				}
				return Eval(def.Body, scope)
			},
		})
	}
	return &list
}

// InstallValues binds every top-level `let` and `fun` definition's
// runtime value, in declaration order: `fun` becomes a ClosureValue
// capturing rootEnv, `let` evaluates its initializer immediately. Data
// definitions and methods must already be installed; static types must
// already be declared via semantic.InstallStaticDefs.
func InstallValues(defs []ast.Definition, rootEnv *env.Environment) *errors.List {
	var list errors.List
	for _, d := range defs {
		switch def := d.(type) {
		case *ast.FunDef:
			if err := installFunValue(def, rootEnv); err != nil {
				list.Add(asSimplexError(err))
			}
		case *ast.VarDef:
			v, err := Eval(def.Init, rootEnv)
			if err != nil {
				list.Add(asSimplexError(err))
				continue
			}
			if err := rootEnv.AddValue(def.Name, v); err != nil {
				list.Add(asSimplexError(err))
			}
		}
	}
	return &list
}

func installFunValue(def *ast.FunDef, rootEnv *env.Environment) error {
	paramTypes := make([]types.Type, len(def.Params))
	for i, p := range def.Params {
		pt, err := semantic.ResolveTypeExpr(rootEnv, p.Type)
		if err != nil {
			return err
		}
		paramTypes[i] = pt
	}
	call := func(args []types.Value) (types.Value, error) {
		scope := rootEnv.Child()
		for i, p := range def.Params {
			if err := scope.DeclareType(p.Name, paramTypes[i]); err != nil {
				return nil, err
			}
			if err := scope.AddValue(p.Name, args[i]); err != nil {
				return nil, err
			}
		}
		return Eval(def.Body, scope)
	}
	// semantic.InstallStaticDefs already declared def.Name's
	// FunctionType; reuse it rather than re-resolving the signature.
	sigType, ok := rootEnv.LookupType(def.Name)
	if !ok {
		return errors.New(errors.Internal, "fun "+def.Name+" has no declared static type")
	}
	ft, ok := sigType.(*types.FunctionType)
	if !ok {
		return errors.New(errors.Internal, "fun "+def.Name+" declared type is not a function type")
	}
	closure := &types.ClosureValue{Name: def.Name, Sig: ft, Call: call}
	return rootEnv.AddValue(def.Name, closure)
}

func asSimplexError(err error) *errors.SimplexError {
	if se, ok := err.(*errors.SimplexError); ok {
		return se
	}
	return errors.New(errors.Internal, err.Error())
}
