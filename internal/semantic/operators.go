package semantic

import (
	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/types"
)

// binaryMethodNames is the fixed operator-to-method mapping for
// two-operand operators.
var binaryMethodNames = map[string]string{
	"+":  "plus",
	"-":  "minus",
	"*":  "times",
	"/":  "div",
	"%":  "mod",
	"^":  "pow",
	"==": "eq",
	"!=": "eq",
	"<":  "compare",
	">":  "compare",
	"<=": "compare",
	">=": "compare",
}

func isComparisonOp(op string) bool {
	switch op {
	case "<", ">", "<=", ">=":
		return true
	default:
		return false
	}
}

// inferBinaryOp resolves an operator to a method call on the left
// operand's type.
func inferBinaryOp(n *ast.BinaryOp, en *env.Environment) (types.Type, error) {
	lt, err := Infer(n.Left, en)
	if err != nil {
		return nil, err
	}
	rt, err := Infer(n.Right, en)
	if err != nil {
		return nil, err
	}
	methodName, ok := binaryMethodNames[n.Op]
	if !ok {
		return nil, errors.At(errors.Internal, "unknown operator: "+n.Op, n.Pos())
	}
	sig, ok := lt.Ops().Resolve(methodName, []types.Type{rt})
	if !ok {
		return nil, errors.At(errors.UnsupportedOperation, lt.String()+" has no "+methodName+" method accepting "+rt.String(), n.Pos())
	}
	switch {
	case n.Op == "==" || n.Op == "!=":
		return types.BoolType, nil
	case isComparisonOp(n.Op):
		return types.BoolType, nil
	default:
		return sig.ReturnType, nil
	}
}

// inferUnaryOp resolves `-x` to `neg` and `!b` to `not`.
func inferUnaryOp(n *ast.UnaryOp, en *env.Environment) (types.Type, error) {
	rt, err := Infer(n.Right, en)
	if err != nil {
		return nil, err
	}
	methodName := "neg"
	if n.Op == "!" {
		methodName = "not"
	}
	sig, ok := rt.Ops().Resolve(methodName, nil)
	if !ok {
		return nil, errors.At(errors.UnsupportedOperation, rt.String()+" has no "+methodName+" method", n.Pos())
	}
	return sig.ReturnType, nil
}

// inferCall validates a function call: the callee's type must be a
// function, and some signature's arity and parameter types must match.
func inferCall(n *ast.Call, en *env.Environment) (types.Type, error) {
	ct, err := Infer(n.Callee, en)
	if err != nil {
		return nil, err
	}
	ft, ok := ct.(*types.FunctionType)
	if !ok {
		return nil, errors.At(errors.Analysis, "callee is not a function: "+ct.String(), n.Callee.Pos())
	}
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		at, err := Infer(a, en)
		if err != nil {
			return nil, err
		}
		argTypes[i] = at
	}
	for _, sig := range ft.ArgLists {
		if argListMatchesTypes(sig, argTypes) {
			return ft.Return, nil
		}
	}
	return nil, errors.At(errors.ParameterCount, "no signature of "+ct.String()+" accepts the given arguments", n.Pos())
}

func argListMatchesTypes(params []types.Type, args []types.Type) bool {
	if len(params) != len(args) {
		return false
	}
	for i := range params {
		if !params[i].MatchedBy(args[i]) {
			return false
		}
	}
	return true
}

// inferMethodCall validates `target->method(args)`: the target's type
// must define the method, with the same signature-selection rule as
// function calls.
func inferMethodCall(n *ast.MethodCall, en *env.Environment) (types.Type, error) {
	tt, err := Infer(n.Target, en)
	if err != nil {
		return nil, err
	}
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		at, err := Infer(a, en)
		if err != nil {
			return nil, err
		}
		argTypes[i] = at
	}
	sig, ok := tt.Ops().Resolve(n.Method, argTypes)
	if !ok {
		return nil, errors.At(errors.UnsupportedOperation, tt.String()+" has no method "+n.Method+" accepting the given arguments", n.Pos())
	}
	return sig.ReturnType, nil
}
