package registry

import "github.com/cwbudde/enumlang/types"

// IsTest reports whether a value of runtime type actual satisfies an
// `is asType` test. Unlike the operator tables this needs no dispatch
// table: it is a structural check against the TypesRegistry's variant
// tree (an enum variant "is" its own type and, transitively, "is" every
// enum that declares it).
func (r *TypesRegistry) IsTest(actual, asType types.TypeName) bool {
	if actual.Equal(asType) {
		return true
	}
	// actual matches asType if asType is an enum that declares actual as
	// one of its variants (directly or through a nested enum).
	enum, ok := r.GetEnum(asType)
	if !ok {
		return false
	}
	found := false
	enum.Variants.Range(func(_ string, variant types.TypeImplementation) bool {
		if r.IsTest(actual, variant.TypeName()) {
			found = true
			return false
		}
		return true
	})
	return found
}
