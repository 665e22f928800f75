package semantic

import (
	"strconv"

	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/lexer"
	"github.com/solidkit/simplex/internal/types"
)

// Infer computes an expression's static result type, validating every
// rule along the way; it both answers `resultType` and performs
// `validate` in the same traversal (see the package doc for why these
// are merged). It may mutate env by declaring names introduced by
// `let`.
func Infer(e ast.Expression, en *env.Environment) (types.Type, error) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return types.IntType, nil
	case *ast.FloatLiteral:
		return types.FloatType, nil
	case *ast.StringLiteral:
		return types.StringType, nil
	case *ast.BoolLiteral:
		return types.BoolType, nil

	case *ast.Identifier:
		t, ok := en.LookupType(n.Name)
		if !ok {
			return nil, errors.At(errors.Undefined, "undefined name: "+n.Name, n.Pos())
		}
		return t, nil

	case *ast.Assignment:
		declared, ok := en.LookupType(n.Name)
		if !ok {
			return nil, errors.At(errors.Undefined, "undefined name: "+n.Name, n.Pos())
		}
		vt, err := Infer(n.Value, en)
		if err != nil {
			return nil, err
		}
		if !declared.MatchedBy(vt) {
			return nil, errors.At(errors.TypeMismatch, "cannot assign "+vt.String()+" to "+n.Name+" of type "+declared.String(), n.Pos())
		}
		return vt, nil

	case *ast.Block:
		return inferBlock(n, en)

	case *ast.Let:
		return inferLet(n, en)

	case *ast.Conditional:
		return inferConditional(n, en)

	case *ast.While:
		return inferWhile(n, en)

	case *ast.ForEach:
		return inferForEach(n, en)

	case *ast.VectorLiteral:
		return inferVectorLiteral(n, en)

	case *ast.DataConstructor:
		return inferDataConstructor(n, en)

	case *ast.FieldAccess:
		_, ft, err := resolveField(n.Target, n.Field, en, n.Pos())
		return ft, err

	case *ast.FieldUpdate:
		return inferFieldUpdate(n, en)

	case *ast.BinaryOp:
		return inferBinaryOp(n, en)

	case *ast.UnaryOp:
		return inferUnaryOp(n, en)

	case *ast.LogicalOp:
		return inferLogicalOp(n, en)

	case *ast.IndexOp:
		return inferIndexOp(n, en)

	case *ast.Call:
		return inferCall(n, en)

	case *ast.MethodCall:
		return inferMethodCall(n, en)

	case *ast.Lambda:
		return inferLambda(n, en)

	default:
		return nil, errors.At(errors.Internal, "unhandled expression kind", e.Pos())
	}
}

// inferBlock evaluates types in a fresh child scope; each `let`
// narrows the remaining scope into a further child so repeated
// `let x` sequences shadow rather than collide (`let x = e1; let x =
// e2; x` evaluates to e2) while still honoring that shadowing is
// permitted across nested scopes but not within one scope.
func inferBlock(n *ast.Block, en *env.Environment) (types.Type, error) {
	if len(n.Exprs) == 0 {
		return nil, errors.At(errors.Analysis, "block must not be empty", n.Pos())
	}
	scope := en.Child()
	var result types.Type
	for _, expr := range n.Exprs {
		t, err := Infer(expr, scope)
		if err != nil {
			return nil, err
		}
		result = t
		if _, ok := expr.(*ast.Let); ok {
			scope = scope.Child()
		}
	}
	return result, nil
}

func inferLet(n *ast.Let, en *env.Environment) (types.Type, error) {
	initType, err := Infer(n.Init, en)
	if err != nil {
		return nil, err
	}
	declared := initType
	if n.Annotation != nil {
		ann, err := ResolveTypeExpr(en, n.Annotation)
		if err != nil {
			return nil, err
		}
		if !ann.MatchedBy(initType) {
			return nil, errors.At(errors.TypeMismatch, "let "+n.Name+": initializer type "+initType.String()+" not matched by annotation "+ann.String(), n.Pos())
		}
		declared = ann
	}
	if err := en.DeclareType(n.Name, declared); err != nil {
		return nil, err
	}
	return declared, nil
}

func inferConditional(n *ast.Conditional, en *env.Environment) (types.Type, error) {
	var result types.Type
	for _, c := range n.Clauses {
		gt, err := Infer(c.Guard, en)
		if err != nil {
			return nil, err
		}
		if !types.BoolType.MatchedBy(gt) {
			return nil, errors.At(errors.Analysis, "conditional guard must be Boolean", c.Guard.Pos())
		}
		tt, err := Infer(c.Then, en)
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = tt
		} else if !result.EqualsStructurally(tt) {
			return nil, errors.At(errors.Analysis, "conditional branches must share a single type", c.Then.Pos())
		}
	}
	et, err := Infer(n.Else, en)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = et
	} else if !result.EqualsStructurally(et) {
		return nil, errors.At(errors.Analysis, "conditional else branch must share the clauses' type", n.Else.Pos())
	}
	return result, nil
}

func inferWhile(n *ast.While, en *env.Environment) (types.Type, error) {
	ct, err := Infer(n.Cond, en)
	if err != nil {
		return nil, err
	}
	if !types.BoolType.MatchedBy(ct) {
		return nil, errors.At(errors.Analysis, "while condition must be Boolean", n.Cond.Pos())
	}
	return Infer(n.Body, en)
}

func inferForEach(n *ast.ForEach, en *env.Environment) (types.Type, error) {
	ct, err := Infer(n.Collection, en)
	if err != nil {
		return nil, err
	}
	vt, ok := ct.(*types.VectorType)
	if !ok {
		return nil, errors.At(errors.Analysis, "for-each requires a vector collection, got "+ct.String(), n.Collection.Pos())
	}
	scope := en.Child()
	if err := scope.DeclareType(n.Var, vt.Elem); err != nil {
		return nil, err
	}
	bodyType, err := Infer(n.Body, scope)
	if err != nil {
		return nil, err
	}
	return types.NewVectorType(bodyType), nil
}

func inferVectorLiteral(n *ast.VectorLiteral, en *env.Environment) (types.Type, error) {
	if len(n.Elements) == 0 {
		return types.NewVectorType(types.AnyType), nil
	}
	first, err := Infer(n.Elements[0], en)
	if err != nil {
		return nil, err
	}
	for _, el := range n.Elements[1:] {
		t, err := Infer(el, en)
		if err != nil {
			return nil, err
		}
		if !first.EqualsStructurally(t) {
			return nil, errors.At(errors.Analysis, "inconsistent vector element types: "+first.String()+" vs "+t.String(), el.Pos())
		}
	}
	return types.NewVectorType(first), nil
}

func inferDataConstructor(n *ast.DataConstructor, en *env.Environment) (types.Type, error) {
	rt, ok := en.Registry.Lookup(n.TypeName)
	if !ok {
		return nil, errors.At(errors.Undefined, "undefined data type: "+n.TypeName, n.Pos())
	}
	st, ok := rt.(*types.SimpleType)
	if !ok || st.Fields == nil {
		return nil, errors.At(errors.Analysis, n.TypeName+" is not a data type", n.Pos())
	}
	if len(n.Args) != len(st.Fields) {
		return nil, errors.At(errors.ParameterCount, n.TypeName+" expects "+strconv.Itoa(len(st.Fields))+" fields, got "+strconv.Itoa(len(n.Args)), n.Pos())
	}
	for i, arg := range n.Args {
		at, err := Infer(arg, en)
		if err != nil {
			return nil, err
		}
		if !st.Fields[i].Type.MatchedBy(at) {
			return nil, errors.At(errors.TypeMismatch, "field "+st.Fields[i].Name+" expects "+st.Fields[i].Type.String()+", got "+at.String(), arg.Pos())
		}
	}
	return st, nil
}

func resolveField(target ast.Expression, field string, en *env.Environment, pos lexer.Position) (*types.SimpleType, types.Type, error) {
	tt, err := Infer(target, en)
	if err != nil {
		return nil, nil, err
	}
	st, ok := tt.(*types.SimpleType)
	if !ok || st.Fields == nil {
		return nil, nil, errors.At(errors.Analysis, tt.String()+" is not a data type", pos)
	}
	fd, _, ok := st.FieldByName(field)
	if !ok {
		return nil, nil, errors.At(errors.Undefined, "undefined field: "+field, pos)
	}
	return st, fd.Type, nil
}

func inferFieldUpdate(n *ast.FieldUpdate, en *env.Environment) (types.Type, error) {
	st, ft, err := resolveField(n.Target, n.Field, en, n.Pos())
	if err != nil {
		return nil, err
	}
	vt, err := Infer(n.Value, en)
	if err != nil {
		return nil, err
	}
	if !ft.MatchedBy(vt) {
		return nil, errors.At(errors.TypeMismatch, "field "+n.Field+" expects "+ft.String()+", got "+vt.String(), n.Value.Pos())
	}
	// Field update mutates and returns the record.
	return st, nil
}

func inferLogicalOp(n *ast.LogicalOp, en *env.Environment) (types.Type, error) {
	lt, err := Infer(n.Left, en)
	if err != nil {
		return nil, err
	}
	if !types.BoolType.MatchedBy(lt) {
		return nil, errors.At(errors.Analysis, "left operand of "+n.Op+" must be Boolean", n.Left.Pos())
	}
	rt, err := Infer(n.Right, en)
	if err != nil {
		return nil, err
	}
	if !types.BoolType.MatchedBy(rt) {
		return nil, errors.At(errors.Analysis, "right operand of "+n.Op+" must be Boolean", n.Right.Pos())
	}
	return types.BoolType, nil
}

func inferIndexOp(n *ast.IndexOp, en *env.Environment) (types.Type, error) {
	tt, err := Infer(n.Target, en)
	if err != nil {
		return nil, err
	}
	it, err := Infer(n.Index, en)
	if err != nil {
		return nil, err
	}
	sig, ok := tt.Ops().Resolve("sub", []types.Type{it})
	if !ok {
		return nil, errors.At(errors.UnsupportedOperation, tt.String()+" does not support indexing", n.Pos())
	}
	return sig.ReturnType, nil
}

func inferLambda(n *ast.Lambda, en *env.Environment) (types.Type, error) {
	paramTypes := make([]types.Type, len(n.Params))
	scope := en.Child()
	for i, p := range n.Params {
		pt, err := ResolveTypeExpr(en, p.Type)
		if err != nil {
			return nil, err
		}
		paramTypes[i] = pt
		if err := scope.DeclareType(p.Name, pt); err != nil {
			return nil, err
		}
	}
	ret, err := ResolveTypeExpr(en, n.ReturnType)
	if err != nil {
		return nil, err
	}
	bt, err := Infer(n.Body, scope)
	if err != nil {
		return nil, err
	}
	if !ret.MatchedBy(bt) {
		return nil, errors.At(errors.TypeMismatch, "lambda body type "+bt.String()+" not matched by declared return "+ret.String(), n.Body.Pos())
	}
	return types.NewFunctionType([][]types.Type{paramTypes}, ret), nil
}
