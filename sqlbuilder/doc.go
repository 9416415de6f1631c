// Package sqlbuilder assembles SQL SELECT statements programmatically.
//
// A Builder is a mutable aggregate of selected fields, source tables,
// joins, a filter tree, grouping and ordering, configured through
// chainable mutators and rendered to literal SQL text:
//
//	sql, err := sqlbuilder.New().
//		Table("Car").
//		Join("Colors", "Color.ID", "Car.COLOR_ID").
//		Field("Name").
//		OrderBy("Color.Name").
//		Build()
//
//	// SELECT Name FROM Car JOIN Colors ON Color.ID = Car.COLOR_ID ORDER BY Color.Name
//
// CLAUSE ORDER:
//
// Rendering is a pure function of builder state, emitting clauses in a
// fixed order: SELECT [DISTINCT] fields, FROM tables, joins, WHERE,
// GROUP BY, ORDER BY. BuildCount replaces the field list with count(*)
// and suppresses GROUP BY and ORDER BY.
//
// FILTER GROUPS:
//
// Predicates added through the *ToGroup entry points sharing a non-zero
// group id are OR-combined inside one parenthesized block; the blocks are
// then AND-ed after all ungrouped predicates, in first-seen group order:
//
//	WHERE Car.IS_COOL = 1 AND (Car.ID = ? OR Car.NAME = 'Ford') AND (...)
//
// COMPOSITION:
//
// Builders compose three ways: Apply merges another builder's state into
// the receiver (reusable filter/ordering fragments), TableQuery and IN
// comparisons embed a builder as a parenthesized subquery, and
// Union/UnionAll join complete builders into one set expression.
//
// Clone returns a fully independent deep copy, so a builder can serve as
// a template for variants. A Builder has no internal synchronization;
// callers branching into concurrent variants must Clone first.
//
// This package produces text and placeholders only: no escaping, no
// schema knowledge, no execution. Field, table, and raw fragments are
// inserted verbatim. Values bind externally via the query-parameter token
// (default "?", overridable per builder).
//
// Construction errors (illegal single-operand comparisons, malformed
// field/alias tuples) accumulate on the builder; the offending fragment
// is never attached, and Build reports everything via errors.Join.
package sqlbuilder
