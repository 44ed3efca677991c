package registry

import (
	"github.com/cwbudde/enumlang/errors"
	"github.com/cwbudde/enumlang/token"
	"github.com/cwbudde/enumlang/types"
)

// Operand patterns. A concrete pattern matches only its own TypeName;
// "*" matches any left-hand type, "&" matches any right-hand type. They
// are distinct symbols because a rule is always read left-to-right and
// the priority order depends on which side is concrete.
const (
	wildcardLeft  = "*"
	wildcardRight = "&"
)

// operand is an exact TypeName or one of the two wildcards.
type operand struct {
	exact    types.TypeName
	wildcard string // "" when exact is set
}

func exact(t types.TypeName) operand { return operand{exact: t} }
func anyLeft() operand               { return operand{wildcard: wildcardLeft} }
func anyRight() operand              { return operand{wildcard: wildcardRight} }

func (o operand) matches(t types.TypeName) bool {
	if o.wildcard != "" {
		return true
	}
	return o.exact.Equal(t)
}

// weight scores specificity: exact beats either wildcard. Scoring the
// left operand twice the right reproduces the priority order
// (exact,exact) > (exact,*) > (*,exact) > (*,&).
func (o operand) weight() int {
	if o.wildcard == "" {
		return 1
	}
	return 0
}

// BinaryHandler computes the result of a dyadic operation on two already
// type-checked operands.
type BinaryHandler func(left, right types.Value) (types.Value, error)

// UnaryHandler computes the result of a monadic operation.
type UnaryHandler func(operand types.Value) (types.Value, error)

type binaryEntry struct {
	left, right operand
	handler     BinaryHandler
}

// binaryTable dispatches a two-operand operation (arithmetic, boolean,
// compare) by operand type pair, honoring wildcard priority: it stores a
// rule list per operator symbol and linearly scans for the
// highest-priority match.
type binaryTable struct {
	entries map[string][]binaryEntry
}

func newBinaryTable() *binaryTable {
	return &binaryTable{entries: make(map[string][]binaryEntry)}
}

func (t *binaryTable) register(op string, left, right operand, h BinaryHandler) {
	t.entries[op] = append(t.entries[op], binaryEntry{left: left, right: right, handler: h})
}

func (t *binaryTable) lookup(op string, leftType, rightType types.TypeName) (BinaryHandler, bool) {
	var best *binaryEntry
	bestScore := -1
	for i := range t.entries[op] {
		e := &t.entries[op][i]
		if !e.left.matches(leftType) || !e.right.matches(rightType) {
			continue
		}
		score := e.left.weight()*2 + e.right.weight()
		if score > bestScore {
			bestScore = score
			best = e
		}
	}
	if best == nil {
		return nil, false
	}
	return best.handler, true
}

type unaryEntry struct {
	operand operand
	handler UnaryHandler
}

type unaryTable struct {
	entries map[string][]unaryEntry
}

func newUnaryTable() *unaryTable {
	return &unaryTable{entries: make(map[string][]unaryEntry)}
}

func (t *unaryTable) register(op string, o operand, h UnaryHandler) {
	t.entries[op] = append(t.entries[op], unaryEntry{operand: o, handler: h})
}

func (t *unaryTable) lookup(op string, operandType types.TypeName) (UnaryHandler, bool) {
	var best *unaryEntry
	bestScore := -1
	for i := range t.entries[op] {
		e := &t.entries[op][i]
		if !e.operand.matches(operandType) {
			continue
		}
		if w := e.operand.weight(); w > bestScore {
			bestScore = w
			best = e
		}
	}
	if best == nil {
		return nil, false
	}
	return best.handler, true
}

// OperationRegistry is the full dispatch surface for runtime operations:
// binary arithmetic, boolean combinators, comparisons, unary operators,
// and casts. "is" type tests are not dispatched here; they go through
// TypesRegistry.IsTest. One instance is shared by every evaluation
// in a Run.
type OperationRegistry struct {
	binary  *binaryTable
	compare *binaryTable
	boolean *binaryTable
	unary   *unaryTable
	castsTo map[string][]castEntry
}

type castEntry struct {
	to      operand
	handler UnaryHandler
}

func NewOperationRegistry() *OperationRegistry {
	return &OperationRegistry{
		binary:  newBinaryTable(),
		compare: newBinaryTable(),
		boolean: newBinaryTable(),
		unary:   newUnaryTable(),
		castsTo: make(map[string][]castEntry),
	}
}

// RegisterBinary adds a dispatch rule for a `+ - * /` operator.
func (r *OperationRegistry) RegisterBinary(op string, left, right types.TypeName, h BinaryHandler) {
	r.binary.register(op, exact(left), exact(right), h)
}

// RegisterBinaryWildcardLeft adds a rule whose left operand is the "*"
// wildcard; its siblings below cover the other wildcard placements.
func (r *OperationRegistry) RegisterBinaryWildcardLeft(op string, right types.TypeName, h BinaryHandler) {
	r.binary.register(op, anyLeft(), exact(right), h)
}

func (r *OperationRegistry) RegisterBinaryWildcardRight(op string, left types.TypeName, h BinaryHandler) {
	r.binary.register(op, exact(left), anyRight(), h)
}

func (r *OperationRegistry) RegisterBinaryWildcardBoth(op string, h BinaryHandler) {
	r.binary.register(op, anyLeft(), anyRight(), h)
}

// LookupBinary finds the highest-priority handler for op over (left,
// right), or an OperationUndefined error at pos.
func (r *OperationRegistry) LookupBinary(pos token.Position, op string, left, right types.TypeName) (BinaryHandler, error) {
	h, ok := r.binary.lookup(op, left, right)
	if !ok {
		return nil, errors.OperationUndefined(pos, op, left.String(), right.String())
	}
	return h, nil
}

// RegisterCompare adds a dispatch rule for `== != < >`.
func (r *OperationRegistry) RegisterCompare(op string, left, right types.TypeName, h BinaryHandler) {
	r.compare.register(op, exact(left), exact(right), h)
}

func (r *OperationRegistry) RegisterCompareWildcardRight(op string, left types.TypeName, h BinaryHandler) {
	r.compare.register(op, exact(left), anyRight(), h)
}

func (r *OperationRegistry) RegisterCompareWildcardBoth(op string, h BinaryHandler) {
	r.compare.register(op, anyLeft(), anyRight(), h)
}

func (r *OperationRegistry) LookupCompare(pos token.Position, op string, left, right types.TypeName) (BinaryHandler, error) {
	h, ok := r.compare.lookup(op, left, right)
	if !ok {
		return nil, errors.OperationUndefined(pos, op, left.String(), right.String())
	}
	return h, nil
}

// RegisterBool adds a dispatch rule for `&& ||`. These go through the
// same table shape as every other dyadic operator, so wildcard fallbacks
// apply to them too.
func (r *OperationRegistry) RegisterBool(op string, left, right types.TypeName, h BinaryHandler) {
	r.boolean.register(op, exact(left), exact(right), h)
}

func (r *OperationRegistry) RegisterBoolWildcardBoth(op string, h BinaryHandler) {
	r.boolean.register(op, anyLeft(), anyRight(), h)
}

func (r *OperationRegistry) LookupBool(pos token.Position, op string, left, right types.TypeName) (BinaryHandler, error) {
	h, ok := r.boolean.lookup(op, left, right)
	if !ok {
		return nil, errors.OperationUndefined(pos, op, left.String(), right.String())
	}
	return h, nil
}

// RegisterUnary adds a dispatch rule for `- !`.
func (r *OperationRegistry) RegisterUnary(op string, operandType types.TypeName, h UnaryHandler) {
	r.unary.register(op, exact(operandType), h)
}

func (r *OperationRegistry) LookupUnary(pos token.Position, op string, operandType types.TypeName) (UnaryHandler, error) {
	h, ok := r.unary.lookup(op, operandType)
	if !ok {
		return nil, errors.OperationUndefined(pos, op, operandType.String(), "")
	}
	return h, nil
}

// RegisterCast adds a rule for casting `from` to `to`.
func (r *OperationRegistry) RegisterCast(from, to types.TypeName, h UnaryHandler) {
	key := from.Key()
	r.castsTo[key] = append(r.castsTo[key], castEntry{to: exact(to), handler: h})
}

// LookupCast finds the handler that casts a value of type `from` to `to`.
func (r *OperationRegistry) LookupCast(pos token.Position, from, to types.TypeName) (UnaryHandler, error) {
	for _, e := range r.castsTo[from.Key()] {
		if e.to.matches(to) {
			return e.handler, nil
		}
	}
	return nil, errors.OperationUndefined(pos, "as "+to.String(), from.String(), "")
}
