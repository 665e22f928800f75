// Package model is Simplex's model driver: it wires the lexer, parser,
// semantic analyzer, evaluator, and standard library into the one
// pipeline a caller actually runs a `.simplex` source file through,
// behind a single Bind/Execute entry point.
package model

import (
	"github.com/solidkit/simplex/internal/ast"
	"github.com/solidkit/simplex/internal/builtins"
	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/evaluator"
	"github.com/solidkit/simplex/internal/parser"
	"github.com/solidkit/simplex/internal/semantic"
	"github.com/solidkit/simplex/internal/types"
)

// Model is a fully bound program: its parsed definitions/products plus
// the root environment every product body evaluates against.
type Model struct {
	Program *ast.Program
	RootEnv *env.Environment
}

// Bind parses src and runs the full install/validate/bind pipeline. A
// non-empty diagnostic list means the model is not safe to Execute;
// callers should report it instead.
func Bind(src string) (*Model, *errors.List) {
	p := parser.New(src)
	prog := p.ParseProgram()
	if perrs := p.Errors(); len(perrs) > 0 {
		return nil, &errors.List{Errs: perrs}
	}

	// Step 1: a fresh root environment, preloaded with primitive types
	// and built-in functions.
	rootEnv := env.NewRoot(types.NewRegistry())
	list := &errors.List{}
	list.Errs = append(list.Errs, builtins.Install(rootEnv).Errs...)
	if !list.Empty() {
		return nil, list
	}

	// Step 2: installStatic — data types, method tables, then static
	// signatures, in that order so method calls type-check against a
	// populated operation table.
	list.Errs = append(list.Errs, semantic.InstallDataDefs(prog.Definitions, rootEnv).Errs...)
	list.Errs = append(list.Errs, evaluator.InstallMethods(prog.Definitions, rootEnv).Errs...)
	list.Errs = append(list.Errs, semantic.InstallStaticDefs(prog.Definitions, rootEnv).Errs...)
	if !list.Empty() {
		return nil, list
	}

	// Step 3: validate every definition and product body.
	if l := semantic.Validate(prog, rootEnv); !l.Empty() {
		return nil, l
	}

	// Step 4: bind every top-level value in source order.
	if l := evaluator.InstallValues(prog.Definitions, rootEnv); !l.Empty() {
		return nil, l
	}

	return &Model{Program: prog, RootEnv: rootEnv}, &errors.List{}
}
