package builtins

import (
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
)

// Install preloads rootEnv with the full standard library before any
// user definition is installed. It must run before
// internal/semantic.InstallStaticDefs, which declares user top-level
// names in the same root scope (reusing a builtin name there is a
// Redefined error), and before internal/evaluator.InstallMethods so a user
// `method` definition on a builtin type can add further overloads
// alongside these.
func Install(rootEnv *env.Environment) *errors.List {
	var list errors.List
	list.Errs = append(list.Errs, installGeometry(rootEnv).Errs...)
	list.Errs = append(list.Errs, installStringOps().Errs...)
	list.Errs = append(list.Errs, installUUID(rootEnv).Errs...)
	return &list
}
