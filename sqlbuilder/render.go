package sqlbuilder

import (
	"fmt"
	"strings"

	"github.com/roach88/querykit/filter"
)

var (
	_ filter.Renderer = (*Builder)(nil)
	_ filter.Subquery = (*Builder)(nil)
)

// Build renders the accumulated state to SQL. It fails if any mutator
// recorded an invalid-argument error.
func (b *Builder) Build() (string, error) {
	if err := b.Err(); err != nil {
		return "", err
	}
	return b.build(false), nil
}

// BuildCount renders in count-only mode: the field list is replaced by
// count(*) and GROUP BY / ORDER BY are suppressed regardless of their
// presence.
func (b *Builder) BuildCount() (string, error) {
	if err := b.Err(); err != nil {
		return "", err
	}
	return b.build(true), nil
}

// String renders the statement, ignoring accumulated errors. Fragments
// that failed validation were never attached, so the output is always
// well formed. Implements fmt.Stringer and filter.Subquery.
func (b *Builder) String() string {
	return b.build(false)
}

// build walks the state in fixed clause order. Apart from caching the
// select and post-select text for introspection, it is side-effect-free
// and idempotent.
func (b *Builder) build(countOnly bool) string {
	var sel strings.Builder
	sel.WriteString("SELECT ")
	if b.distinct {
		sel.WriteString("DISTINCT ")
	}
	if countOnly {
		sel.WriteString("count(*)")
	} else if len(b.fields) > 0 {
		for i, f := range b.fields {
			if i > 0 {
				sel.WriteString(", ")
			}
			sel.WriteString(f.String())
		}
	} else {
		sel.WriteString("*")
	}
	b.selectClause = sel.String()

	var post strings.Builder
	post.WriteString(" FROM ")
	post.WriteString(strings.Join(b.tables, ", "))
	for _, j := range b.joins {
		post.WriteString(" ")
		post.WriteString(j.render(b))
	}
	if where := b.renderWhere(); where != "" {
		post.WriteString(" WHERE ")
		post.WriteString(where)
	}
	if len(b.groupBys) > 0 && !countOnly {
		post.WriteString(" GROUP BY ")
		post.WriteString(strings.Join(b.groupBys, ", "))
	}
	if len(b.orderBys) > 0 && !countOnly {
		post.WriteString(" ORDER BY ")
		post.WriteString(strings.Join(b.orderBys, ", "))
	}
	b.postSelectClause = post.String()

	return b.selectClause + b.postSelectClause
}

// renderWhere composes the WHERE text: ungrouped predicates first, then
// each OR bucket in first-seen order. A bucket always parenthesizes, even
// with a single member, because grouping was requested explicitly.
func (b *Builder) renderWhere() string {
	var parts []string
	if b.filter != nil {
		parts = append(parts, b.filter.Render(b))
	}
	for _, g := range b.groups {
		members := make([]string, len(g.filters))
		for i, f := range g.filters {
			members[i] = f.Render(b)
		}
		parts = append(parts, "("+strings.Join(members, " OR ")+")")
	}
	return strings.Join(parts, " AND ")
}

// FormatValue implements filter.Renderer. Strings are single-quoted
// unless they equal the builder's query parameter token, booleans map to
// 1/0, column references and everything numeric pass through unquoted,
// and subquery values render parenthesized.
func (b *Builder) FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case bool:
		if v {
			return "1"
		}
		return "0"
	case string:
		if v == b.queryParameter {
			return v
		}
		return "'" + v + "'"
	case filter.Reference:
		return string(v)
	case filter.Subquery:
		return "(" + v.String() + ")"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SelectClause returns the SELECT portion of the last render, rendering
// first if the builder has never been rendered.
func (b *Builder) SelectClause() string {
	if b.selectClause == "" {
		b.build(false)
	}
	return b.selectClause
}

// PostSelectClause returns everything after the SELECT portion of the
// last render.
func (b *Builder) PostSelectClause() string {
	return b.postSelectClause
}
