package queryspec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidDocument(t *testing.T) {
	content := `
name: cool-cars
tables:
  - name: Car
fields:
  - name: Name
joins:
  - table: Colors
    on:
      - left: Color.ID
        right: Car.COLOR_ID
filters:
  - field: Car.IS_COOL
    value: true
order_by:
  - expr: Color.Name
`
	doc, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, "cool-cars", doc.Name)
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, "Car", doc.Tables[0].Name)
	require.Len(t, doc.Joins, 1)
	assert.Equal(t, "Colors", doc.Joins[0].Table)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	content := `
name: typo
tables:
  - name: Car
filter:
  - field: Car.ID
`
	_, err := Parse([]byte(content))
	require.Error(t, err, "unknown field 'filter' (should be 'filters') must be rejected")
}

func TestParse_MissingName(t *testing.T) {
	content := `
tables:
  - name: Car
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestParse_MissingTables(t *testing.T) {
	_, err := Parse([]byte(`name: no-tables`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tables")
}

func TestParse_SchemaRejectsBadOp(t *testing.T) {
	content := `
name: bad-op
tables:
  - name: Car
filters:
  - field: Car.ID
    op: gte
    value: 1
`
	_, err := Parse([]byte(content))
	require.Error(t, err, "op outside the schema enum must be rejected")
}

func TestParse_SchemaRejectsBadJoinKind(t *testing.T) {
	content := `
name: bad-kind
tables:
  - name: Car
joins:
  - kind: outer
    table: Colors
    on:
      - left: a
        right: b
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
}

func TestParse_JoinRequiresOn(t *testing.T) {
	content := `
name: no-on
tables:
  - name: Car
joins:
  - table: Colors
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on list is required")
}

func TestParse_FilterRequiresFieldOrRaw(t *testing.T) {
	content := `
name: empty-filter
tables:
  - name: Car
filters:
  - group: 1
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field or raw is required")
}

func TestBuild_FullDocument(t *testing.T) {
	content := `
name: cool-cars
tables:
  - name: Car
fields:
  - name: Name
joins:
  - table: Colors
    on:
      - left: Color.ID
        right: Car.COLOR_ID
  - kind: left
    table: Owner
    on:
      - left: Owner.ID
        right: Car.OWNER_ID
filters:
  - field: Car.IS_COOL
    value: true
  - field: Car.ID
    value: "?"
    group: 1
  - field: Car.NAME
    value: Ford
    group: 1
  - field: Car.WHEELS
    op: gt
    value: 4
    group: 2
  - field: Car.WHEELS
    op: le
    value: 2
    group: 2
order_by:
  - expr: Color.Name
`
	doc, err := Parse([]byte(content))
	require.NoError(t, err)

	b, err := Build(doc)
	require.NoError(t, err)

	sql, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT Name FROM Car JOIN Colors ON Color.ID = Car.COLOR_ID LEFT JOIN Owner ON Owner.ID = Car.OWNER_ID"+
			" WHERE Car.IS_COOL = 1 AND (Car.ID = ? OR Car.NAME = 'Ford') AND (Car.WHEELS > 4 OR Car.WHEELS <= 2)"+
			" ORDER BY Color.Name",
		sql)
}

func TestBuild_DistinctAliasesAndRaw(t *testing.T) {
	content := `
name: people
distinct: true
tables:
  - name: Person
    alias: p
fields:
  - name: p.LastName
    alias: surname
filters:
  - raw: "p.Age > 21"
  - field: p.id
    op: not_null
group_by: [p.LastName]
order_by:
  - expr: p.LastName
    desc: true
`
	doc, err := Parse([]byte(content))
	require.NoError(t, err)

	b, err := Build(doc)
	require.NoError(t, err)

	sql, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT DISTINCT p.LastName AS surname FROM Person p WHERE p.Age > 21 AND p.id NOT NULL"+
			" GROUP BY p.LastName ORDER BY p.LastName DESC",
		sql)
}

func TestBuild_CustomParameter(t *testing.T) {
	content := `
name: params
parameter: "$1"
tables:
  - name: Car
filters:
  - field: Car.ID
    value: "$1"
`
	doc, err := Parse([]byte(content))
	require.NoError(t, err)

	b, err := Build(doc)
	require.NoError(t, err)

	sql, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM Car WHERE Car.ID = $1", sql)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cars.yaml")

	content := `
name: cars
tables:
  - name: Car
filters:
  - field: Car.ID
    value: "?"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cars", doc.Name)

	b, err := Build(doc)
	require.NoError(t, err)
	sql, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM Car WHERE Car.ID = ?", sql)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read query document")
}
