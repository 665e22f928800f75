package evaluator

import (
	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/types"
)

// binaryMethodNames mirrors internal/semantic's operator-to-method
// table; duplicated here rather than imported so the evaluator's hot
// path never reaches back into the analyzer package for anything but
// type-expression resolution and a for-each body's static type.
var binaryMethodNames = map[string]string{
	"+": "plus", "-": "minus", "*": "times", "/": "div", "%": "mod", "^": "pow",
	"==": "eq", "!=": "eq",
	"<": "compare", ">": "compare", "<=": "compare", ">=": "compare",
}

func evalBinaryOp(n *ast.BinaryOp, en *env.Environment) (types.Value, error) {
	lv, err := Eval(n.Left, en)
	if err != nil {
		return nil, err
	}
	rv, err := Eval(n.Right, en)
	if err != nil {
		return nil, err
	}
	methodName := binaryMethodNames[n.Op]
	sig, ok := lv.Type().Ops().Resolve(methodName, []types.Type{rv.Type()})
	if !ok {
		return nil, errors.At(errors.UnsupportedOperation, lv.Type().String()+" has no "+methodName+" method accepting "+rv.Type().String(), n.Pos())
	}
	result, err := sig.Fn(lv, []types.Value{rv})
	if err != nil {
		return nil, attachPos(err, n.Pos())
	}
	switch n.Op {
	case "!=":
		return types.BoolValue{Val: !result.Truthy()}, nil
	case "<":
		return types.BoolValue{Val: result.(types.IntValue).Val < 0}, nil
	case ">":
		return types.BoolValue{Val: result.(types.IntValue).Val > 0}, nil
	case "<=":
		return types.BoolValue{Val: result.(types.IntValue).Val <= 0}, nil
	case ">=":
		return types.BoolValue{Val: result.(types.IntValue).Val >= 0}, nil
	default:
		return result, nil
	}
}

func evalUnaryOp(n *ast.UnaryOp, en *env.Environment) (types.Value, error) {
	rv, err := Eval(n.Right, en)
	if err != nil {
		return nil, err
	}
	methodName := "neg"
	if n.Op == "!" {
		methodName = "not"
	}
	sig, ok := rv.Type().Ops().Resolve(methodName, nil)
	if !ok {
		return nil, errors.At(errors.UnsupportedOperation, rv.Type().String()+" has no "+methodName+" method", n.Pos())
	}
	result, err := sig.Fn(rv, nil)
	if err != nil {
		return nil, attachPos(err, n.Pos())
	}
	return result, nil
}

func evalIndexOp(n *ast.IndexOp, en *env.Environment) (types.Value, error) {
	tv, err := Eval(n.Target, en)
	if err != nil {
		return nil, err
	}
	iv, err := Eval(n.Index, en)
	if err != nil {
		return nil, err
	}
	sig, ok := tv.Type().Ops().Resolve("sub", []types.Type{iv.Type()})
	if !ok {
		return nil, errors.At(errors.UnsupportedOperation, tv.Type().String()+" does not support indexing", n.Pos())
	}
	result, err := sig.Fn(tv, []types.Value{iv})
	if err != nil {
		return nil, attachPos(err, n.Pos())
	}
	return result, nil
}

// evalCall evaluates a function call `callee(args...)`. The callee is
// always a ClosureValue or BuiltinValue: function calls invoke the
// value's own Call trampoline rather than going through an operation
// table, since a plain function call is not one of the operator/method
// dispatch forms.
func evalCall(n *ast.Call, en *env.Environment) (types.Value, error) {
	cv, err := Eval(n.Callee, en)
	if err != nil {
		return nil, err
	}
	args := make([]types.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, en)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	var call func([]types.Value) (types.Value, error)
	switch fv := cv.(type) {
	case *types.ClosureValue:
		call = fv.Call
	case *types.BuiltinValue:
		call = fv.Call
	default:
		return nil, errors.At(errors.Evaluation, cv.Type().String()+" is not callable", n.Pos())
	}
	result, err := call(args)
	if err != nil {
		return nil, attachPos(err, n.Pos())
	}
	return result, nil
}

// evalMethodCall evaluates `target->method(args...)`, dispatching
// through the target type's operation table.
func evalMethodCall(n *ast.MethodCall, en *env.Environment) (types.Value, error) {
	tv, err := Eval(n.Target, en)
	if err != nil {
		return nil, err
	}
	args := make([]types.Value, len(n.Args))
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, en)
		if err != nil {
			return nil, err
		}
		args[i] = v
		argTypes[i] = v.Type()
	}
	sig, ok := tv.Type().Ops().Resolve(n.Method, argTypes)
	if !ok {
		return nil, errors.At(errors.UnsupportedOperation, tv.Type().String()+" has no method "+n.Method+" accepting the given arguments", n.Pos())
	}
	result, err := sig.Fn(tv, args)
	if err != nil {
		return nil, attachPos(err, n.Pos())
	}
	return result, nil
}
