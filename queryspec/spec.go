package queryspec

import "fmt"

// Document is a declarative query definition.
type Document struct {
	// Name identifies the query; required.
	Name string `yaml:"name"`

	// Distinct emits SELECT DISTINCT when true.
	Distinct bool `yaml:"distinct,omitempty"`

	// Parameter overrides the builder's query-parameter token.
	Parameter string `yaml:"parameter,omitempty"`

	// Fields lists SELECT columns in render order. Empty means "*".
	Fields []FieldSpec `yaml:"fields,omitempty"`

	// Tables lists FROM sources in render order; required, non-empty.
	Tables []TableSpec `yaml:"tables"`

	// Joins lists join clauses in render order.
	Joins []JoinSpec `yaml:"joins,omitempty"`

	// Filters lists WHERE predicates. Predicates sharing a non-zero
	// group id are OR-combined into one parenthesized block.
	Filters []FilterSpec `yaml:"filters,omitempty"`

	// GroupBy lists GROUP BY expressions.
	GroupBy []string `yaml:"group_by,omitempty"`

	// OrderBy lists ORDER BY expressions.
	OrderBy []OrderSpec `yaml:"order_by,omitempty"`
}

// FieldSpec is one SELECT column, optionally aliased.
type FieldSpec struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias,omitempty"`
}

// TableSpec is one FROM source, optionally aliased.
type TableSpec struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias,omitempty"`
}

// JoinSpec is one join clause. Kind is one of "inner" (default), "left",
// "right", "full", "cross". The on conditions are AND-ed.
type JoinSpec struct {
	Kind  string   `yaml:"kind,omitempty"`
	Table string   `yaml:"table"`
	On    []OnSpec `yaml:"on,omitempty"`
}

// OnSpec is one column-to-column equality in a join condition.
type OnSpec struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// FilterSpec is one WHERE predicate: either a raw fragment or a
// field/op/value comparison. Op is one of "eq" (default), "ne", "lt",
// "gt", "le", "ge", "like", "in", "is_null", "not_null".
type FilterSpec struct {
	Field string `yaml:"field,omitempty"`
	Op    string `yaml:"op,omitempty"`
	Value any    `yaml:"value,omitempty"`
	Raw   string `yaml:"raw,omitempty"`
	Group int    `yaml:"group,omitempty"`
}

// OrderSpec is one ORDER BY expression with an optional DESC direction.
type OrderSpec struct {
	Expr string `yaml:"expr"`
	Desc bool   `yaml:"desc,omitempty"`
}

// validateDocument checks that required fields are present and that each
// entry is internally consistent.
func validateDocument(doc *Document) error {
	if doc.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(doc.Tables) == 0 {
		return fmt.Errorf("tables list is required and must be non-empty")
	}
	for i, table := range doc.Tables {
		if table.Name == "" {
			return fmt.Errorf("tables[%d]: name is required", i)
		}
	}

	for i, field := range doc.Fields {
		if field.Name == "" {
			return fmt.Errorf("fields[%d]: name is required", i)
		}
	}

	for i, join := range doc.Joins {
		if join.Table == "" {
			return fmt.Errorf("joins[%d]: table is required", i)
		}
		if len(join.On) == 0 && join.Kind != "cross" {
			return fmt.Errorf("joins[%d]: on list is required for %q joins", i, joinKindName(join.Kind))
		}
		for j, on := range join.On {
			if on.Left == "" || on.Right == "" {
				return fmt.Errorf("joins[%d].on[%d]: left and right are required", i, j)
			}
		}
	}

	for i, f := range doc.Filters {
		if f.Raw == "" && f.Field == "" {
			return fmt.Errorf("filters[%d]: field or raw is required", i)
		}
		if f.Raw != "" && f.Field != "" {
			return fmt.Errorf("filters[%d]: field and raw are mutually exclusive", i)
		}
	}

	for i, o := range doc.OrderBy {
		if o.Expr == "" {
			return fmt.Errorf("order_by[%d]: expr is required", i)
		}
	}

	return nil
}

func joinKindName(kind string) string {
	if kind == "" {
		return "inner"
	}
	return kind
}
