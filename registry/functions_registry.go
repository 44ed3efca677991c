package registry

import (
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/token"
	"github.com/cwbudde/enumlang/types"
)

// FunctionsRegistry holds every declared top-level function, keyed by its
// single-segment name. Functions live in a flat namespace; there are no
// nested function declarations.
type FunctionsRegistry struct {
	fns map[string]*types.FunctionImplementation
}

func NewFunctionsRegistry() *FunctionsRegistry {
	return &FunctionsRegistry{fns: make(map[string]*types.FunctionImplementation)}
}

// Register adds fn under its name. Returns a redeclaration error if a
// function with that name is already registered.
func (r *FunctionsRegistry) Register(pos token.Position, fn *types.FunctionImplementation) error {
	key := fn.Name.Key()
	if _, exists := r.fns[key]; exists {
		return errors.FunctionRedeclaration(pos, fn.Name.String())
	}
	r.fns[key] = fn
	return nil
}

// Get returns the function registered under name.
func (r *FunctionsRegistry) Get(name types.TypeName) (*types.FunctionImplementation, bool) {
	fn, ok := r.fns[name.Key()]
	return fn, ok
}

// Names returns every registered function name, for diagnostics.
func (r *FunctionsRegistry) Names() []string {
	out := make([]string, 0, len(r.fns))
	for k := range r.fns {
		out = append(out, k)
	}
	return out
}
