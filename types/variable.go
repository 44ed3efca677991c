package types

// Variable is a named binding held in a Frame: whether it may be
// reassigned, and its current Value. Once created, a variable's declared
// type is fixed: reassignment requires Mutable and an exact TypeName
// match.
type Variable struct {
	Mutable      bool
	DeclaredType TypeName
	Value        Value
}
