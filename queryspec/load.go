package queryspec

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/querykit/filter"
	"github.com/roach88/querykit/sqlbuilder"
)

//go:embed schema.cue
var schemaCUE string

// Load reads, validates, and parses a query document from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query document: %w", err)
	}
	return Parse(data)
}

// Parse validates and parses a query document from YAML bytes.
// Returns an error if the YAML is malformed, contains unknown fields
// (typos), violates the document schema, or is missing required fields.
func Parse(data []byte) (*Document, error) {
	// Parse YAML with strict field validation (catches typos like "filter:" vs "filters:")
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("invalid query document: %w", err)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, fmt.Errorf("invalid query document: %w", err)
	}

	return &doc, nil
}

// validateSchema unifies the raw document with the embedded CUE schema,
// catching type mismatches and out-of-range enum values (op, join kind)
// with positions the Go-side structural checks cannot give.
func validateSchema(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("building document schema: %w", err)
	}

	value := ctx.Encode(raw)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(); err != nil {
		return err
	}
	return nil
}

// Build materializes a document into a builder, equivalent to making the
// same mutator calls by hand. The result can be rendered directly or
// Apply-merged onto another builder as a reusable fragment.
func Build(doc *Document) (*sqlbuilder.Builder, error) {
	b := sqlbuilder.New()
	if doc.Parameter != "" {
		b.SetQueryParameter(doc.Parameter)
	}
	if doc.Distinct {
		b.Distinct(true)
	}

	for _, f := range doc.Fields {
		if f.Alias != "" {
			b.FieldAs(f.Name, f.Alias)
		} else {
			b.Field(f.Name)
		}
	}

	for _, t := range doc.Tables {
		if t.Alias != "" {
			b.TableAs(t.Name, t.Alias)
		} else {
			b.Table(t.Name)
		}
	}

	for i, j := range doc.Joins {
		kind, err := parseJoinKind(j.Kind)
		if err != nil {
			return nil, fmt.Errorf("joins[%d]: %w", i, err)
		}
		conditions := make([]filter.Filter, len(j.On))
		for k, on := range j.On {
			conditions[k] = filter.NewFieldCompare(on.Left, on.Right)
		}
		b.JoinOnWith(kind, j.Table, conditions...)
	}

	for i, f := range doc.Filters {
		node, err := buildFilter(f)
		if err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
		b.FilterNodeToGroup(node, f.Group)
	}

	b.GroupBy(doc.GroupBy...)
	for _, o := range doc.OrderBy {
		if o.Desc {
			b.OrderByDir(o.Expr, false)
		} else {
			b.OrderBy(o.Expr)
		}
	}

	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// buildFilter converts one FilterSpec into a filter node.
func buildFilter(f FilterSpec) (filter.Filter, error) {
	if f.Raw != "" {
		return filter.NewRaw(f.Raw), nil
	}
	op, err := parseOp(f.Op)
	if err != nil {
		return nil, err
	}
	if op.Unary() {
		return filter.NewUnary(f.Field, op)
	}
	return filter.NewCompare(f.Field, op, f.Value)
}

// parseOp maps a document op string to a filter operator. Empty means
// equality.
func parseOp(op string) (filter.Op, error) {
	switch op {
	case "", "eq":
		return filter.Equal, nil
	case "ne":
		return filter.NotEqual, nil
	case "lt":
		return filter.LessThan, nil
	case "gt":
		return filter.GreaterThan, nil
	case "le":
		return filter.LessThanEqual, nil
	case "ge":
		return filter.GreaterThanEqual, nil
	case "like":
		return filter.Like, nil
	case "in":
		return filter.In, nil
	case "is_null":
		return filter.IsNull, nil
	case "not_null":
		return filter.NotNull, nil
	default:
		return 0, &filter.ArgumentError{
			Op:      "queryspec.Build",
			Message: fmt.Sprintf("unknown op %q", op),
		}
	}
}

// parseJoinKind maps a document join kind to a JoinKind. Empty means
// inner.
func parseJoinKind(kind string) (sqlbuilder.JoinKind, error) {
	switch kind {
	case "", "inner":
		return sqlbuilder.InnerJoin, nil
	case "left":
		return sqlbuilder.LeftJoin, nil
	case "right":
		return sqlbuilder.RightJoin, nil
	case "full":
		return sqlbuilder.FullJoin, nil
	case "cross":
		return sqlbuilder.CrossJoin, nil
	default:
		return 0, &filter.ArgumentError{
			Op:      "queryspec.Build",
			Message: fmt.Sprintf("unknown join kind %q", kind),
		}
	}
}
