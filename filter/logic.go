package filter

import "strings"

// AndFilter is a conjunction: every child must hold.
//
// Children render joined by " AND " with no surrounding parentheses; AND
// binds tighter than OR, and OrFilter children parenthesize themselves, so
// a flat rendering preserves the tree's semantics. An empty conjunction
// renders "1 = 1" (vacuous truth).
type AndFilter struct {
	Filters []Filter
}

func (*AndFilter) filterNode() {}

// NewAnd creates a conjunction of the given filters, in order.
func NewAnd(filters ...Filter) *AndFilter {
	return &AndFilter{Filters: append([]Filter(nil), filters...)}
}

// Render implements Filter.
func (a *AndFilter) Render(r Renderer) string {
	if len(a.Filters) == 0 {
		return "1 = 1"
	}
	parts := make([]string, len(a.Filters))
	for i, f := range a.Filters {
		parts[i] = f.Render(r)
	}
	return strings.Join(parts, " AND ")
}

// Clone implements Filter.
func (a *AndFilter) Clone() Filter {
	children := make([]Filter, len(a.Filters))
	for i, f := range a.Filters {
		children[i] = f.Clone()
	}
	return &AndFilter{Filters: children}
}

// And implements Filter: appends in place and returns the receiver.
func (a *AndFilter) And(other Filter) Filter {
	a.Filters = append(a.Filters, other)
	return a
}

// OrFilter is a disjunction: at least one child must hold.
//
// With two or more children the whole group renders parenthesized so it
// composes safely inside a surrounding conjunction. A single child renders
// bare, and an empty disjunction renders "1 = 1" like an empty conjunction.
type OrFilter struct {
	Filters []Filter
}

func (*OrFilter) filterNode() {}

// NewOr creates a disjunction of the given filters, in order.
func NewOr(filters ...Filter) *OrFilter {
	return &OrFilter{Filters: append([]Filter(nil), filters...)}
}

// Render implements Filter.
func (o *OrFilter) Render(r Renderer) string {
	switch len(o.Filters) {
	case 0:
		return "1 = 1"
	case 1:
		return o.Filters[0].Render(r)
	}
	parts := make([]string, len(o.Filters))
	for i, f := range o.Filters {
		parts[i] = f.Render(r)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// Clone implements Filter.
func (o *OrFilter) Clone() Filter {
	children := make([]Filter, len(o.Filters))
	for i, f := range o.Filters {
		children[i] = f.Clone()
	}
	return &OrFilter{Filters: children}
}

// And implements Filter.
func (o *OrFilter) And(other Filter) Filter {
	return NewAnd(o, other)
}

// Or appends another alternative to the disjunction.
func (o *OrFilter) Or(other Filter) *OrFilter {
	o.Filters = append(o.Filters, other)
	return o
}
