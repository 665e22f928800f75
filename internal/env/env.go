// Package env implements Simplex's lexical environment: a chain of
// nested scopes mapping names to declared types and to values, plus
// the shared, process-wide type registry.
package env

import (
	"github.com/solidkit/simplex/internal/errors"
	"github.com/solidkit/simplex/internal/types"
)

// Environment is one lexical scope. Lookup walks the parent chain;
// shadowing is permitted across scopes but not within one.
type Environment struct {
	parent        *Environment
	Registry      *types.Registry
	declaredTypes map[string]types.Type
	values        map[string]types.Value
}

// NewRoot creates the outermost scope, backed by the given shared type
// registry.
func NewRoot(reg *types.Registry) *Environment {
	return &Environment{
		Registry:      reg,
		declaredTypes: make(map[string]types.Type),
		values:        make(map[string]types.Value),
	}
}

// Child creates a new scope nested inside this one, sharing the same
// type registry.
func (e *Environment) Child() *Environment {
	return &Environment{
		parent:        e,
		Registry:      e.Registry,
		declaredTypes: make(map[string]types.Type),
		values:        make(map[string]types.Value),
	}
}

// Parent returns the enclosing scope, or nil at the root.
func (e *Environment) Parent() *Environment { return e.parent }

// DeclareType declares name's static type in this scope. Fails with
// Redefined if name already has a declared type in this scope.
func (e *Environment) DeclareType(name string, t types.Type) error {
	if _, ok := e.declaredTypes[name]; ok {
		return errors.New(errors.Redefined, "name already declared in this scope: "+name)
	}
	e.declaredTypes[name] = t
	return nil
}

// AddValue binds name's initial value. Fails with Undefined if no
// declared type is found anywhere in the chain, and with TypeMismatch
// if the value's type is not matched-by the declared type.
func (e *Environment) AddValue(name string, v types.Value) error {
	declared, ok := e.LookupType(name)
	if !ok {
		return errors.New(errors.Undefined, "no declared type for: "+name)
	}
	if !declared.MatchedBy(v.Type()) {
		return errors.New(errors.TypeMismatch, "value for "+name+" has type "+v.Type().String()+", expected "+declared.String())
	}
	e.values[name] = v
	return nil
}

// UpdateValue reassigns an already-bound name, walking the parent
// chain to find where it lives. Fails with Undefined if absent.
func (e *Environment) UpdateValue(name string, v types.Value) error {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.values[name]; ok {
			scope.values[name] = v
			return nil
		}
	}
	return errors.New(errors.Undefined, "assignment to undeclared name: "+name)
}

// LookupType walks the chain for name's declared type.
func (e *Environment) LookupType(name string) (types.Type, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if t, ok := scope.declaredTypes[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// LookupValue walks the chain for name's current value.
func (e *Environment) LookupValue(name string) (types.Value, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// RegisterTypeDef registers a user `data` type definition in the
// shared registry. Fails with Redefined if the name is already
// registered.
func (e *Environment) RegisterTypeDef(name string, t types.Type) error {
	if _, ok := e.Registry.Lookup(name); ok {
		return errors.New(errors.Redefined, "type already defined: "+name)
	}
	e.Registry.Define(t)
	return nil
}
