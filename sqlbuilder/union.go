package sqlbuilder

import "strings"

// Union renders the builders joined by UNION, the whole expression
// wrapped in one pair of parentheses. It is a pure function over complete
// builders; the result can feed an outer builder via Table.
func Union(builders ...*Builder) string {
	return union(" UNION ", builders)
}

// UnionAll renders the builders joined by UNION ALL, wrapped in one pair
// of parentheses.
func UnionAll(builders ...*Builder) string {
	return union(" UNION ALL ", builders)
}

func union(separator string, builders []*Builder) string {
	parts := make([]string, len(builders))
	for i, b := range builders {
		parts[i] = b.String()
	}
	return "(" + strings.Join(parts, separator) + ")"
}
