// Package filter provides the boolean-predicate expression tree used by
// querykit's SQL SELECT builder.
//
// A Filter is a node in a closed set of variants:
//
//   - CompareFilter: field <op> value (or the single-operand IS NULL /
//     NOT NULL forms)
//   - AndFilter: conjunction of child filters
//   - OrFilter: disjunction of child filters, parenthesized on render
//   - RawFilter: verbatim SQL fragment, opaque to composition
//
// SEALED INTERFACES:
//
// Filter is a sealed interface using the marker method pattern. Only types
// in this package implement it. This enables exhaustive type switches in
// renderers and keeps the variant set closed at compile time.
//
// RENDERING:
//
// Filters render themselves against a Renderer, the capability interface
// implemented by sqlbuilder.Builder. Value formatting (quoting, boolean
// mapping, placeholder pass-through, subquery parenthesization) is the
// renderer's concern, not the tree's. Rendering is pure: no node is
// mutated by Render.
//
// COMPOSITION:
//
// Every Filter supports And(other), which folds another filter into the
// receiver's conjunction and returns the resulting root:
//
//	f := filter.NewRaw("a = 1")
//	f = f.And(filter.NewRaw("b = 2")) // (a = 1 AND b = 2)
//
// An AndFilter appends in place and returns itself; any other variant
// returns a new AndFilter wrapping receiver and argument. Callers must
// keep the returned root.
//
// Every Filter also supports Clone, a structural deep copy with no shared
// mutable sub-state, so a tree can be merged into another builder without
// aliasing. Subquery values are deep-copied through the Subquery interface.
//
// This package performs no validation of field names, table names, or raw
// fragments: all text is trusted verbatim input.
package filter
