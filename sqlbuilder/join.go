package sqlbuilder

import (
	"fmt"

	"github.com/roach88/querykit/filter"
)

// JoinKind identifies a join clause variant.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

// joinText is the fixed kind-to-SQL mapping.
var joinText = map[JoinKind]string{
	InnerJoin: "JOIN",
	LeftJoin:  "LEFT JOIN",
	RightJoin: "RIGHT JOIN",
	FullJoin:  "FULL JOIN",
	CrossJoin: "CROSS JOIN",
}

// String returns the SQL text for the join kind.
func (k JoinKind) String() string {
	if text, ok := joinText[k]; ok {
		return text
	}
	return fmt.Sprintf("JoinKind(%d)", int(k))
}

// Join is one "<KIND> <table> ON <condition>" clause. Joins render in
// insertion order, after the FROM clause and before WHERE.
type Join struct {
	Kind      JoinKind
	Table     string
	Condition filter.Filter
}

func (j Join) render(r filter.Renderer) string {
	return j.Kind.String() + " " + j.Table + " ON " + j.Condition.Render(r)
}

func (j Join) clone() Join {
	clone := j
	if j.Condition != nil {
		clone.Condition = j.Condition.Clone()
	}
	return clone
}

// Join adds an inner join on a column equality.
func (b *Builder) Join(table, field1, field2 string) *Builder {
	return b.JoinWith(InnerJoin, table, field1, field2)
}

// JoinWith adds a join of the given kind on a column equality.
func (b *Builder) JoinWith(kind JoinKind, table, field1, field2 string) *Builder {
	b.joins = append(b.joins, Join{
		Kind:      kind,
		Table:     table,
		Condition: filter.NewFieldCompare(field1, field2),
	})
	return b
}

// JoinOn adds an inner join whose condition ANDs the given filters.
func (b *Builder) JoinOn(table string, conditions ...filter.Filter) *Builder {
	return b.JoinOnWith(InnerJoin, table, conditions...)
}

// JoinOnWith adds a join of the given kind whose condition ANDs the given
// filters.
func (b *Builder) JoinOnWith(kind JoinKind, table string, conditions ...filter.Filter) *Builder {
	b.joins = append(b.joins, Join{
		Kind:      kind,
		Table:     table,
		Condition: filter.NewAnd(conditions...),
	})
	return b
}

// AddJoin appends pre-built join clauses.
func (b *Builder) AddJoin(joins ...Join) *Builder {
	b.joins = append(b.joins, joins...)
	return b
}

// JoinColumns is the legacy two-field shorthand: it does NOT create a
// join clause. It ANDs "field1 = field2" directly onto the WHERE clause,
// the implicit-join style used with comma-joined FROM lists. Preserved as
// documented behavior; prefer Join for an explicit join clause.
func (b *Builder) JoinColumns(field1, field2 string) *Builder {
	return b.FilterNode(filter.NewFieldCompare(field1, field2))
}
