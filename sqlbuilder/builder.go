package sqlbuilder

import (
	"errors"

	"github.com/roach88/querykit/filter"
)

// DefaultQueryParameter is the placeholder token emitted for values bound
// by an external execution layer.
const DefaultQueryParameter = "?"

// NoGroup is the group id meaning "top-level AND-ed predicate": the
// *ToGroup entry points treat it exactly like the plain filter calls.
const NoGroup = 0

// fieldRef is one entry of the SELECT list.
type fieldRef struct {
	name  string
	alias string
}

func (f fieldRef) String() string {
	if f.alias != "" {
		return f.name + " AS " + f.alias
	}
	return f.name
}

// filterGroup is the OR-bucket for one group id. Buckets keep first-seen
// order and each is AND-ed into the WHERE clause exactly once, however
// many members it accumulates.
type filterGroup struct {
	id      int
	filters []filter.Filter
}

// Builder accumulates SELECT statement state. The zero value is not
// usable; construct with New.
//
// Insertion order is render order for fields, tables, joins, group-bys
// and order-bys, and duplicates are allowed. Nothing is validated against
// a schema: unknown columns, missing tables and keyword collisions are
// accepted uncritically.
type Builder struct {
	distinct    bool
	distinctSet bool

	fields   []fieldRef
	tables   []string
	joins    []Join
	filter   filter.Filter
	groups   []*filterGroup
	groupBys []string
	orderBys []string

	// Cached by the last render, for introspection accessors.
	selectClause     string
	postSelectClause string

	queryParameter string

	// Construction errors accumulate here; the fragments that caused
	// them were never attached. Build surfaces them joined.
	errs []error
}

// New creates an empty builder with the default query parameter token.
func New() *Builder {
	b := &Builder{queryParameter: DefaultQueryParameter}
	b.Reset()
	return b
}

// Reset returns the builder to its empty state. The query parameter token
// survives a reset.
func (b *Builder) Reset() {
	b.distinct = false
	b.distinctSet = false
	b.fields = nil
	b.tables = nil
	b.joins = nil
	b.filter = nil
	b.groups = nil
	b.groupBys = nil
	b.orderBys = nil
	b.selectClause = ""
	b.postSelectClause = ""
	b.errs = nil
}

// Clone returns a fully independent deep copy: lists are copied, the
// filter tree and group buckets are cloned, and embedded subquery
// builders are cloned with them. Mutating the clone never affects the
// original.
func (b *Builder) Clone() *Builder {
	clone := &Builder{
		distinct:         b.distinct,
		distinctSet:      b.distinctSet,
		fields:           append([]fieldRef(nil), b.fields...),
		tables:           append([]string(nil), b.tables...),
		groupBys:         append([]string(nil), b.groupBys...),
		orderBys:         append([]string(nil), b.orderBys...),
		selectClause:     b.selectClause,
		postSelectClause: b.postSelectClause,
		queryParameter:   b.queryParameter,
		errs:             append([]error(nil), b.errs...),
	}
	clone.joins = make([]Join, len(b.joins))
	for i, j := range b.joins {
		clone.joins[i] = j.clone()
	}
	if b.filter != nil {
		clone.filter = b.filter.Clone()
	}
	clone.groups = make([]*filterGroup, len(b.groups))
	for i, g := range b.groups {
		members := make([]filter.Filter, len(g.filters))
		for j, f := range g.filters {
			members[j] = f.Clone()
		}
		clone.groups[i] = &filterGroup{id: g.id, filters: members}
	}
	return clone
}

// CloneQuery implements filter.Subquery.
func (b *Builder) CloneQuery() filter.Subquery {
	return b.Clone()
}

// Apply merges another builder's state into the receiver: lists are
// appended after the receiver's own entries, the other builder's filter
// and group buckets are cloned in (buckets merge by group id), and
// distinct is taken from the receiver if already set, otherwise from the
// other builder. Used to compose a base query with reusable fragments.
func (b *Builder) Apply(other *Builder) *Builder {
	if !b.distinctSet && other.distinctSet {
		b.distinct = other.distinct
		b.distinctSet = true
	}
	b.fields = append(b.fields, other.fields...)
	b.tables = append(b.tables, other.tables...)
	b.joins = append(b.joins, other.joins...)
	if other.filter != nil {
		b.andRoot(other.filter.Clone())
	}
	for _, g := range other.groups {
		bucket := b.bucket(g.id)
		for _, f := range g.filters {
			bucket.filters = append(bucket.filters, f.Clone())
		}
	}
	b.groupBys = append(b.groupBys, other.groupBys...)
	b.orderBys = append(b.orderBys, other.orderBys...)
	b.errs = append(b.errs, other.errs...)
	return b
}

// Distinct sets whether SELECT DISTINCT is emitted.
func (b *Builder) Distinct(distinct bool) *Builder {
	b.distinct = distinct
	b.distinctSet = true
	return b
}

// IsDistinct reports whether DISTINCT is set.
func (b *Builder) IsDistinct() bool {
	return b.distinct
}

// Field adds a column to the SELECT list.
func (b *Builder) Field(name string) *Builder {
	b.fields = append(b.fields, fieldRef{name: name})
	return b
}

// FieldAs adds an aliased column, rendered "name AS alias".
func (b *Builder) FieldAs(name, alias string) *Builder {
	b.fields = append(b.fields, fieldRef{name: name, alias: alias})
	return b
}

// QualifiedField adds "table.field AS alias" to the SELECT list.
func (b *Builder) QualifiedField(table, field, alias string) *Builder {
	return b.FieldAs(table+"."+field, alias)
}

// Fields adds columns in order.
func (b *Builder) Fields(names ...string) *Builder {
	for _, name := range names {
		b.Field(name)
	}
	return b
}

// FieldPairs adds columns from {name} or {name, alias} tuples. A tuple of
// any other length is an invalid-argument error; the tuple is skipped and
// the error is reported by Build.
func (b *Builder) FieldPairs(pairs ...[]string) *Builder {
	for _, pair := range pairs {
		switch len(pair) {
		case 1:
			b.Field(pair[0])
		case 2:
			b.FieldAs(pair[0], pair[1])
		default:
			b.fail(&filter.ArgumentError{
				Op:      "sqlbuilder.FieldPairs",
				Message: "field tuple must have 1 or 2 entries",
			})
		}
	}
	return b
}

// Table adds a source table. Multiple tables render as a comma-joined
// FROM list (implicit cross join). The name is verbatim, so a
// pre-rendered fragment such as a Union result is also accepted.
func (b *Builder) Table(name string) *Builder {
	b.tables = append(b.tables, name)
	return b
}

// TableAs adds a source table with an alias, rendered "name alias".
func (b *Builder) TableAs(name, alias string) *Builder {
	b.tables = append(b.tables, name+" "+alias)
	return b
}

// TableQuery adds a nested builder as a parenthesized subquery source.
// The subquery is rendered at insertion time; later mutation of sub does
// not affect this builder.
func (b *Builder) TableQuery(sub *Builder) *Builder {
	b.tables = append(b.tables, "("+sub.String()+")")
	return b
}

// Filter adds an equality predicate, AND-ed onto the WHERE clause.
func (b *Builder) Filter(field string, value any) *Builder {
	return b.FilterOp(field, filter.Equal, value)
}

// FilterOp adds a comparison predicate, AND-ed onto the WHERE clause.
func (b *Builder) FilterOp(field string, op filter.Op, value any) *Builder {
	f, err := filter.NewCompare(field, op, value)
	if err != nil {
		return b.fail(err)
	}
	return b.FilterNode(f)
}

// FilterUnary adds a single-operand predicate (IS NULL / NOT NULL). Any
// other operator is an invalid-argument error.
func (b *Builder) FilterUnary(field string, op filter.Op) *Builder {
	f, err := filter.NewUnary(field, op)
	if err != nil {
		return b.fail(err)
	}
	return b.FilterNode(f)
}

// FilterRaw adds a verbatim SQL fragment as a predicate.
func (b *Builder) FilterRaw(expression string) *Builder {
	return b.FilterNode(filter.NewRaw(expression))
}

// FilterNode ANDs an already-built filter onto the WHERE clause.
func (b *Builder) FilterNode(f filter.Filter) *Builder {
	b.andRoot(f)
	return b
}

// FilterToGroup adds an equality predicate to an OR group. Group NoGroup
// behaves exactly like Filter.
func (b *Builder) FilterToGroup(field string, value any, group int) *Builder {
	return b.FilterOpToGroup(field, filter.Equal, value, group)
}

// FilterOpToGroup adds a comparison predicate to an OR group. All
// predicates sharing a group id render as one parenthesized OR block,
// AND-ed into the WHERE clause after the ungrouped predicates.
func (b *Builder) FilterOpToGroup(field string, op filter.Op, value any, group int) *Builder {
	f, err := filter.NewCompare(field, op, value)
	if err != nil {
		return b.fail(err)
	}
	return b.FilterNodeToGroup(f, group)
}

// FilterNodeToGroup adds an already-built filter to an OR group.
func (b *Builder) FilterNodeToGroup(f filter.Filter, group int) *Builder {
	if group == NoGroup {
		return b.FilterNode(f)
	}
	bucket := b.bucket(group)
	bucket.filters = append(bucket.filters, f)
	return b
}

// GroupBy adds GROUP BY expressions in order.
func (b *Builder) GroupBy(items ...string) *Builder {
	b.groupBys = append(b.groupBys, items...)
	return b
}

// OrderBy adds ORDER BY expressions in order.
func (b *Builder) OrderBy(items ...string) *Builder {
	b.orderBys = append(b.orderBys, items...)
	return b
}

// OrderByDir adds an ORDER BY expression with an explicit direction.
func (b *Builder) OrderByDir(item string, ascending bool) *Builder {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}
	b.orderBys = append(b.orderBys, item+" "+direction)
	return b
}

// QueryParameter returns the placeholder token, default "?".
func (b *Builder) QueryParameter() string {
	return b.queryParameter
}

// SetQueryParameter overrides the placeholder token for this builder.
// String values equal to the token render unquoted.
func (b *Builder) SetQueryParameter(token string) *Builder {
	b.queryParameter = token
	return b
}

// Err returns the accumulated construction errors, joined, or nil.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

// andRoot folds a predicate into the root filter, creating it if absent.
func (b *Builder) andRoot(f filter.Filter) {
	if b.filter == nil {
		b.filter = f
		return
	}
	b.filter = b.filter.And(f)
}

// bucket finds or creates the OR bucket for a group id, preserving
// first-seen order across groups.
func (b *Builder) bucket(id int) *filterGroup {
	for _, g := range b.groups {
		if g.id == id {
			return g
		}
	}
	g := &filterGroup{id: id}
	b.groups = append(b.groups, g)
	return g
}

func (b *Builder) fail(err error) *Builder {
	b.errs = append(b.errs, err)
	return b
}
