package builtins

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/types"
)

// installStringOps supersedes String's ordinal "compare"/"eq" fallbacks
// (internal/types/primitives.go) with locale-aware, normalization-aware
// implementations, built on language.Parse/collate.New/CompareString so
// that "café" compares equal across composed and decomposed input.
func installStringOps() *errors.List {
	var list errors.List
	t := types.StringType.Ops()

	t.Overwrite(&types.MethodSignature{
		Name:       "compare",
		ParamTypes: []types.Type{types.StringType},
		ReturnType: types.IntType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			a, b := self.(types.StringValue).Val, args[0].(types.StringValue).Val
			col := collate.New(language.English)
			return types.IntValue{Val: int64(col.CompareString(a, b))}, nil
		},
	})

	// eq normalizes both operands to NFC first, so composed and
	// decomposed forms of the same text ("café" built from U+00E9 vs.
	// "e"+U+0301) compare equal.
	t.Overwrite(&types.MethodSignature{
		Name:       "eq",
		ParamTypes: []types.Type{types.StringType},
		ReturnType: types.BoolType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			a, b := self.(types.StringValue).Val, args[0].(types.StringValue).Val
			return types.BoolValue{Val: norm.NFC.String(a) == norm.NFC.String(b)}, nil
		},
	})

	t.Register(&types.MethodSignature{
		Name:       "compareLocale",
		ParamTypes: []types.Type{types.StringType, types.StringType},
		ReturnType: types.IntType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			a, b := self.(types.StringValue).Val, args[0].(types.StringValue).Val
			locale := args[1].(types.StringValue).Val
			tag, err := language.Parse(locale)
			if err != nil {
				tag = language.English
			}
			col := collate.New(tag, collate.IgnoreCase)
			return types.IntValue{Val: int64(col.CompareString(a, b))}, nil
		},
	})

	t.Register(&types.MethodSignature{
		Name:       "sameText",
		ParamTypes: []types.Type{types.StringType},
		ReturnType: types.BoolType,
		Fn: func(self types.Value, args []types.Value) (types.Value, error) {
			a, b := self.(types.StringValue).Val, args[0].(types.StringValue).Val
			return types.BoolValue{Val: strings.EqualFold(a, b)}, nil
		},
	})

	return &list
}
