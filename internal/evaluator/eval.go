// Package evaluator executes a validated Simplex AST against an
// Environment. It assumes the program has already passed
// internal/semantic's Validate
// pass: arity, type, and name-resolution errors are not expected here,
// though operation lookups still use the same OperationTable.Resolve
// path as the analyzer so a bug in one layer can't silently diverge
// from the other.
package evaluator

import (
	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/lexer"
	"github.com/solidkit/simplex/internal/semantic"
	"github.com/solidkit/simplex/internal/types"
)

// attachPos anchors a bare runtime error (e.g. division by zero,
// raised deep inside internal/types's operation tables with no
// position) to the call-site position, without overwriting a position
// an inner layer already attached.
func attachPos(err error, pos lexer.Position) error {
	if se, ok := err.(*errors.SimplexError); ok {
		return se.WithPos(pos)
	}
	return err
}

// Eval evaluates an expression in the given environment, mutating en
// when the expression is a `let` (new child scopes narrow from there,
// mirroring internal/semantic.inferBlock's shadowing strategy).
func Eval(e ast.Expression, en *env.Environment) (types.Value, error) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return types.IntValue{Val: n.Value}, nil
	case *ast.FloatLiteral:
		return types.FloatValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return types.StringValue{Val: n.Value}, nil
	case *ast.BoolLiteral:
		return types.BoolValue{Val: n.Value}, nil

	case *ast.Identifier:
		v, ok := en.LookupValue(n.Name)
		if !ok {
			return nil, errors.At(errors.Undefined, "undefined name: "+n.Name, n.Pos())
		}
		return v, nil

	case *ast.Assignment:
		v, err := Eval(n.Value, en)
		if err != nil {
			return nil, err
		}
		if err := en.UpdateValue(n.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Block:
		return evalBlock(n, en)

	case *ast.Let:
		return evalLet(n, en)

	case *ast.Conditional:
		return evalConditional(n, en)

	case *ast.While:
		return evalWhile(n, en)

	case *ast.ForEach:
		return evalForEach(n, en)

	case *ast.VectorLiteral:
		return evalVectorLiteral(n, en)

	case *ast.DataConstructor:
		return evalDataConstructor(n, en)

	case *ast.FieldAccess:
		return evalFieldAccess(n, en)

	case *ast.FieldUpdate:
		return evalFieldUpdate(n, en)

	case *ast.BinaryOp:
		return evalBinaryOp(n, en)

	case *ast.UnaryOp:
		return evalUnaryOp(n, en)

	case *ast.LogicalOp:
		return evalLogicalOp(n, en)

	case *ast.IndexOp:
		return evalIndexOp(n, en)

	case *ast.Call:
		return evalCall(n, en)

	case *ast.MethodCall:
		return evalMethodCall(n, en)

	case *ast.Lambda:
		return evalLambda(n, en)

	default:
		return nil, errors.At(errors.Internal, "unhandled expression kind", e.Pos())
	}
}

// evalBlock mirrors internal/semantic.inferBlock: each `let` narrows
// the remaining statements into a fresh child scope so repeated `let
// x` sequences shadow rather than collide.
func evalBlock(n *ast.Block, en *env.Environment) (types.Value, error) {
	scope := en.Child()
	var result types.Value
	for _, expr := range n.Exprs {
		v, err := Eval(expr, scope)
		if err != nil {
			return nil, err
		}
		result = v
		if _, ok := expr.(*ast.Let); ok {
			scope = scope.Child()
		}
	}
	return result, nil
}

func evalLet(n *ast.Let, en *env.Environment) (types.Value, error) {
	v, err := Eval(n.Init, en)
	if err != nil {
		return nil, err
	}
	declared := v.Type()
	if n.Annotation != nil {
		t, err := semantic.ResolveTypeExpr(en, n.Annotation)
		if err != nil {
			return nil, err
		}
		declared = t
	}
	if err := en.DeclareType(n.Name, declared); err != nil {
		return nil, err
	}
	if err := en.AddValue(n.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func evalConditional(n *ast.Conditional, en *env.Environment) (types.Value, error) {
	for _, c := range n.Clauses {
		gv, err := Eval(c.Guard, en)
		if err != nil {
			return nil, err
		}
		if gv.Truthy() {
			return Eval(c.Then, en)
		}
	}
	return Eval(n.Else, en)
}

func evalWhile(n *ast.While, en *env.Environment) (types.Value, error) {
	var result types.Value = types.BoolValue{Val: false}
	for {
		cv, err := Eval(n.Cond, en)
		if err != nil {
			return nil, err
		}
		if !cv.Truthy() {
			return result, nil
		}
		v, err := Eval(n.Body, en)
		if err != nil {
			return nil, err
		}
		result = v
	}
}

func evalForEach(n *ast.ForEach, en *env.Environment) (types.Value, error) {
	cv, err := Eval(n.Collection, en)
	if err != nil {
		return nil, err
	}
	vec, ok := cv.(*types.VectorValue)
	if !ok {
		return nil, errors.At(errors.Evaluation, "for-each requires a vector value", n.Collection.Pos())
	}
	results := make([]types.Value, len(vec.Elems))
	// The result's element type is the body's static type, so an empty
	// source still yields a typed vector; only when the body cannot be
	// typed statically does the last result's runtime type stand in.
	var elemType types.Type = types.AnyType
	staticType := false
	if staticScope := en.Child(); vec.ElemType != nil && staticScope.DeclareType(n.Var, vec.ElemType) == nil {
		if t, err := semantic.Infer(n.Body, staticScope); err == nil {
			elemType, staticType = t, true
		}
	}
	for i, el := range vec.Elems {
		scope := en.Child()
		if err := scope.DeclareType(n.Var, el.Type()); err != nil {
			return nil, err
		}
		if err := scope.AddValue(n.Var, el); err != nil {
			return nil, err
		}
		v, err := Eval(n.Body, scope)
		if err != nil {
			return nil, err
		}
		results[i] = v
		if !staticType {
			elemType = v.Type()
		}
	}
	return &types.VectorValue{Elems: results, ElemType: elemType}, nil
}

func evalVectorLiteral(n *ast.VectorLiteral, en *env.Environment) (types.Value, error) {
	elems := make([]types.Value, len(n.Elements))
	var elemType types.Type = types.AnyType
	for i, el := range n.Elements {
		v, err := Eval(el, en)
		if err != nil {
			return nil, err
		}
		elems[i] = v
		elemType = v.Type()
	}
	return &types.VectorValue{Elems: elems, ElemType: elemType}, nil
}

func evalDataConstructor(n *ast.DataConstructor, en *env.Environment) (types.Value, error) {
	rt, ok := en.Registry.Lookup(n.TypeName)
	if !ok {
		return nil, errors.At(errors.Undefined, "undefined data type: "+n.TypeName, n.Pos())
	}
	st, ok := rt.(*types.SimpleType)
	if !ok {
		return nil, errors.At(errors.Evaluation, n.TypeName+" is not a data type", n.Pos())
	}
	slots := make([]types.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, en)
		if err != nil {
			return nil, err
		}
		slots[i] = v
	}
	return &types.RecordValue{TypeRef: st, Slots: slots}, nil
}

func evalFieldAccess(n *ast.FieldAccess, en *env.Environment) (types.Value, error) {
	tv, err := Eval(n.Target, en)
	if err != nil {
		return nil, err
	}
	rec, ok := tv.(*types.RecordValue)
	if !ok {
		return nil, errors.At(errors.Evaluation, tv.Type().String()+" is not a data record", n.Pos())
	}
	v, ok := rec.Get(n.Field)
	if !ok {
		return nil, errors.At(errors.Undefined, "undefined field: "+n.Field, n.Pos())
	}
	return v, nil
}

func evalFieldUpdate(n *ast.FieldUpdate, en *env.Environment) (types.Value, error) {
	tv, err := Eval(n.Target, en)
	if err != nil {
		return nil, err
	}
	rec, ok := tv.(*types.RecordValue)
	if !ok {
		return nil, errors.At(errors.Evaluation, tv.Type().String()+" is not a data record", n.Pos())
	}
	vv, err := Eval(n.Value, en)
	if err != nil {
		return nil, err
	}
	if !rec.Set(n.Field, vv) {
		return nil, errors.At(errors.Undefined, "undefined field: "+n.Field, n.Pos())
	}
	// Field update mutates in place and evaluates to the record.
	return rec, nil
}

func evalLogicalOp(n *ast.LogicalOp, en *env.Environment) (types.Value, error) {
	lv, err := Eval(n.Left, en)
	if err != nil {
		return nil, err
	}
	if n.Op == "and" {
		if !lv.Truthy() {
			return types.BoolValue{Val: false}, nil
		}
		rv, err := Eval(n.Right, en)
		if err != nil {
			return nil, err
		}
		return types.BoolValue{Val: rv.Truthy()}, nil
	}
	// "or" short-circuits on a truthy left operand.
	if lv.Truthy() {
		return types.BoolValue{Val: true}, nil
	}
	rv, err := Eval(n.Right, en)
	if err != nil {
		return nil, err
	}
	return types.BoolValue{Val: rv.Truthy()}, nil
}

func evalLambda(n *ast.Lambda, en *env.Environment) (types.Value, error) {
	paramTypes := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		t, err := semantic.ResolveTypeExpr(en, p.Type)
		if err != nil {
			return nil, err
		}
		paramTypes[i] = t
	}
	ret, err := semantic.ResolveTypeExpr(en, n.ReturnType)
	if err != nil {
		return nil, err
	}
	sig := types.NewFunctionType([][]types.Type{paramTypes}, ret)
	captured := en
	call := func(args []types.Value) (types.Value, error) {
		scope := captured.Child()
		for i, p := range n.Params {
			if err := scope.DeclareType(p.Name, paramTypes[i]); err != nil {
				return nil, err
			}
			if err := scope.AddValue(p.Name, args[i]); err != nil {
				return nil, err
			}
		}
		return Eval(n.Body, scope)
	}
	return &types.ClosureValue{Sig: sig, Name: "<lambda>", Call: call}, nil
}
