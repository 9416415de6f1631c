package filter

// RawFilter is a verbatim SQL fragment, opaque to the composition engine.
// No validation or escaping is performed; the text is trusted input.
type RawFilter struct {
	Expression string
}

func (*RawFilter) filterNode() {}

// NewRaw wraps a verbatim SQL fragment.
func NewRaw(expression string) *RawFilter {
	return &RawFilter{Expression: expression}
}

// Render implements Filter.
func (f *RawFilter) Render(Renderer) string {
	return f.Expression
}

// Clone implements Filter.
func (f *RawFilter) Clone() Filter {
	return &RawFilter{Expression: f.Expression}
}

// And implements Filter.
func (f *RawFilter) And(other Filter) Filter {
	return NewAnd(f, other)
}
