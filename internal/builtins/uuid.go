package builtins

import (
	"github.com/google/uuid"

	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/types"
)

// installUUID binds a zero-argument `uuid` builtin returning a random
// (version 4) UUID's canonical string form, for tagging generated
// artifacts with a unique id from within a program.
func installUUID(rootEnv *env.Environment) *errors.List {
	var list errors.List
	b := &types.BuiltinValue{
		Name: "uuid",
		Sig:  types.NewFunctionType([][]types.Type{{}}, types.StringType),
		Call: func(args []types.Value) (types.Value, error) {
			return types.StringValue{Val: uuid.NewString()}, nil
		},
	}
	if err := declareBuiltin(rootEnv, b); err != nil {
		list.Add(asSimplexError(err))
	}
	return &list
}
