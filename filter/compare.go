package filter

// CompareFilter is a field-to-value comparison.
//
// Semantics:
//
//	<field> <op> <formatted value>
//
// or, for the single-operand operators:
//
//	<field> IS NULL
//	<field> NOT NULL
//
// Value may be a literal (string, number, bool), a Reference to another
// column, a placeholder token matching the renderer's query parameter, or
// a Subquery. Formatting is decided by the Renderer at render time.
type CompareFilter struct {
	Field string // Left-hand column text, verbatim
	Op    Op
	Value any // nil for single-operand operators
}

func (*CompareFilter) filterNode() {}

// NewCompare creates a field-to-value comparison.
// Returns an ArgumentError if a binary operator is given no value; the
// single-operand operators ignore value entirely.
func NewCompare(field string, op Op, value any) (*CompareFilter, error) {
	if op.Unary() {
		return &CompareFilter{Field: field, Op: op}, nil
	}
	if value == nil {
		return nil, &ArgumentError{
			Op:      "filter.NewCompare",
			Message: "operator " + op.String() + " requires a value",
		}
	}
	return &CompareFilter{Field: field, Op: op, Value: value}, nil
}

// NewUnary creates a single-operand comparison (IS NULL / NOT NULL).
// Any other operator is an ArgumentError.
func NewUnary(field string, op Op) (*CompareFilter, error) {
	if !op.Unary() {
		return nil, &ArgumentError{
			Op:      "filter.NewUnary",
			Message: "illegal 1 argument compare " + op.String(),
		}
	}
	return &CompareFilter{Field: field, Op: op}, nil
}

// NewFieldCompare creates a column-to-column equality, the condition form
// used by join clauses. The right side renders verbatim, never quoted.
func NewFieldCompare(field1, field2 string) *CompareFilter {
	return &CompareFilter{Field: field1, Op: Equal, Value: Reference(field2)}
}

// Render implements Filter.
func (c *CompareFilter) Render(r Renderer) string {
	if c.Op.Unary() {
		return c.Field + " " + c.Op.String()
	}
	return c.Field + " " + c.Op.String() + " " + r.FormatValue(c.Value)
}

// Clone implements Filter.
func (c *CompareFilter) Clone() Filter {
	return &CompareFilter{Field: c.Field, Op: c.Op, Value: cloneValue(c.Value)}
}

// And implements Filter.
func (c *CompareFilter) And(other Filter) Filter {
	return NewAnd(c, other)
}
