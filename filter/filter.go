package filter

import (
	"errors"
	"fmt"
)

// Filter represents one node of a boolean predicate tree.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and keeps
// the variant set closed for renderers.
type Filter interface {
	filterNode() // Marker method - seals interface to this package

	// Render produces the SQL text for this node. Value formatting is
	// delegated to the Renderer. Render never mutates the node.
	Render(r Renderer) string

	// Clone returns a structural deep copy. Mutating the copy (or any
	// subquery value it holds) never affects the original.
	Clone() Filter

	// And folds other into this node's conjunction and returns the
	// resulting root. An AndFilter appends and returns itself; any other
	// variant returns a new AndFilter{receiver, other}.
	And(other Filter) Filter
}

// Renderer formats comparison values during rendering. It is the single
// capability sqlbuilder.Builder exposes to the filter tree: quoting rules,
// boolean mapping, and the query-parameter token all live behind it.
type Renderer interface {
	// FormatValue returns the SQL text for a comparison value.
	FormatValue(value any) string
}

// Reference is a column reference used as a comparison value. It renders
// verbatim, never quoted, distinguishing "Car.COLOR_ID" the column from
// "Car.COLOR_ID" the string literal.
type Reference string

// Subquery is a nested statement used as a comparison value, satisfied by
// sqlbuilder.Builder. It exists so this package can deep-copy and render
// embedded builders without importing them.
type Subquery interface {
	// String returns the full rendered statement, without parentheses.
	String() string

	// CloneQuery returns an independent deep copy of the statement.
	CloneQuery() Subquery
}

// Op identifies a comparison operator.
type Op int

const (
	Equal Op = iota
	NotEqual
	LessThan
	GreaterThan
	LessThanEqual
	GreaterThanEqual
	Like
	In

	// IsNull and NotNull are the only single-operand operators: they take
	// no right-hand value and render their keyword text after the field.
	IsNull
	NotNull
)

// opText is the fixed operator-to-SQL mapping.
var opText = map[Op]string{
	Equal:            "=",
	NotEqual:         "!=",
	LessThan:         "<",
	GreaterThan:      ">",
	LessThanEqual:    "<=",
	GreaterThanEqual: ">=",
	Like:             "LIKE",
	In:               "IN",
	IsNull:           "IS NULL",
	NotNull:          "NOT NULL",
}

// String returns the SQL text for the operator.
func (op Op) String() string {
	if text, ok := opText[op]; ok {
		return text
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Unary reports whether the operator takes no right-hand value.
func (op Op) Unary() bool {
	return op == IsNull || op == NotNull
}

// ArgumentError reports a misuse of a constructor or builder entry point:
// a single-operand comparison with a binary operator, a binary comparison
// with no value, a malformed field/alias tuple. These are programmer
// errors detected eagerly at the call that introduces them.
type ArgumentError struct {
	// Op names the entry point that was misused.
	Op string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// IsArgumentError returns true if err is an ArgumentError.
// Uses errors.As to handle wrapped errors.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

// cloneValue deep-copies a comparison value. Subquery values carry mutable
// builder state and must not be shared between trees; everything else the
// builder accepts is an immutable scalar or a Reference.
func cloneValue(v any) any {
	if sub, ok := v.(Subquery); ok {
		return sub.CloneQuery()
	}
	return v
}
