package semantic

import (
	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/types"
)

// InstallDataDefs registers every `data` definition's type descriptor
// so mutual reference among data types and methods works. It must run
// before InstallStaticDefs and before any method is installed on a
// target type.
func InstallDataDefs(defs []ast.Definition, en *env.Environment) *errors.List {
	var list errors.List
	for _, d := range defs {
		dd, ok := d.(*ast.DataDef)
		if !ok {
			continue
		}
		st := types.NewSimpleType(dd.Name)
		st.Fields = make([]types.FieldDescriptor, len(dd.Fields))
		for i, f := range dd.Fields {
			ft, err := ResolveTypeExpr(en, f.Type)
			if err != nil {
				list.Add(asSimplexError(err))
				ft = types.AnyType
			}
			st.Fields[i] = types.FieldDescriptor{Name: f.Name, Type: ft}
		}
		if err := en.RegisterTypeDef(dd.Name, st); err != nil {
			list.Add(asSimplexError(err))
		}
	}
	return &list
}

// InstallStaticDefs declares every `let` and `fun` top-level
// definition's name and type. Data definitions and methods must
// already be installed.
func InstallStaticDefs(defs []ast.Definition, en *env.Environment) *errors.List {
	var list errors.List
	for _, d := range defs {
		switch def := d.(type) {
		case *ast.VarDef:
			t, err := staticLetType(def.Annotation, def.Init, en)
			if err != nil {
				list.Add(asSimplexError(err))
				continue
			}
			if err := en.DeclareType(def.Name, t); err != nil {
				list.Add(asSimplexError(err))
			}
		case *ast.FunDef:
			ft, err := funSignature(def.Params, def.ReturnType, en)
			if err != nil {
				list.Add(asSimplexError(err))
				continue
			}
			if err := en.DeclareType(def.Name, ft); err != nil {
				list.Add(asSimplexError(err))
			}
		}
	}
	return &list
}

func staticLetType(ann ast.TypeExpr, init ast.Expression, en *env.Environment) (types.Type, error) {
	if ann != nil {
		return ResolveTypeExpr(en, ann)
	}
	return Infer(init, en.Child())
}

func funSignature(params []ast.Param, ret ast.TypeExpr, en *env.Environment) (*types.FunctionType, error) {
	paramTypes := make([]types.Type, len(params))
	for i, p := range params {
		t, err := ResolveTypeExpr(en, p.Type)
		if err != nil {
			return nil, err
		}
		paramTypes[i] = t
	}
	retType, err := ResolveTypeExpr(en, ret)
	if err != nil {
		return nil, err
	}
	return types.NewFunctionType([][]types.Type{paramTypes}, retType), nil
}

// Validate walks every top-level definition's body and every
// product's body expressions, accumulating diagnostics per
// definition: a failure in one definition does not stop the others
// from being checked.
func Validate(prog *ast.Program, en *env.Environment) *errors.List {
	var list errors.List
	for _, d := range prog.Definitions {
		switch def := d.(type) {
		case *ast.VarDef:
			if _, err := inferLetLike(def.Annotation, def.Init, en); err != nil {
				list.Add(asSimplexError(err))
			}
		case *ast.FunDef:
			if err := validateFunBody(def, en); err != nil {
				list.Add(asSimplexError(err))
			}
		case *ast.MethodDef:
			if err := validateMethodBody(def, en); err != nil {
				list.Add(asSimplexError(err))
			}
		}
	}
	for _, prod := range prog.Products {
		scope := en.Child()
		for _, expr := range prod.Body {
			if _, err := Infer(expr, scope); err != nil {
				list.Add(asSimplexError(err))
				break
			}
		}
	}
	return &list
}

func inferLetLike(ann ast.TypeExpr, init ast.Expression, en *env.Environment) (types.Type, error) {
	it, err := Infer(init, en)
	if err != nil {
		return nil, err
	}
	if ann != nil {
		at, err := ResolveTypeExpr(en, ann)
		if err != nil {
			return nil, err
		}
		if !at.MatchedBy(it) {
			return nil, errors.At(errors.TypeMismatch, "initializer type "+it.String()+" not matched by annotation "+at.String(), init.Pos())
		}
		return at, nil
	}
	return it, nil
}

func validateFunBody(def *ast.FunDef, en *env.Environment) error {
	scope := en.Child()
	for _, p := range def.Params {
		pt, err := ResolveTypeExpr(en, p.Type)
		if err != nil {
			return err
		}
		if err := scope.DeclareType(p.Name, pt); err != nil {
			return err
		}
	}
	retType, err := ResolveTypeExpr(en, def.ReturnType)
	if err != nil {
		return err
	}
	bt, err := Infer(def.Body, scope)
	if err != nil {
		return err
	}
	if !retType.MatchedBy(bt) {
		return errors.At(errors.TypeMismatch, "function "+def.Name+" body type "+bt.String()+" not matched by declared return "+retType.String(), def.Body.Pos())
	}
	return nil
}

func validateMethodBody(def *ast.MethodDef, en *env.Environment) error {
	target, err := ResolveTypeExpr(en, def.Target)
	if err != nil {
		return err
	}
	scope := en.Child()
	if err := scope.DeclareType("self", target); err != nil {
		return err
	}
	for _, p := range def.Params {
		pt, err := ResolveTypeExpr(en, p.Type)
		if err != nil {
			return err
		}
		if err := scope.DeclareType(p.Name, pt); err != nil {
			return err
		}
	}
	retType, err := ResolveTypeExpr(en, def.ReturnType)
	if err != nil {
		return err
	}
	bt, err := Infer(def.Body, scope)
	if err != nil {
		return err
	}
	if !retType.MatchedBy(bt) {
		return errors.At(errors.TypeMismatch, "method "+def.Name+" body type "+bt.String()+" not matched by declared return "+retType.String(), def.Body.Pos())
	}
	return nil
}

func asSimplexError(err error) *errors.SimplexError {
	if se, ok := err.(*errors.SimplexError); ok {
		return se
	}
	return errors.New(errors.Internal, err.Error())
}
