package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnion(t *testing.T) {
	a := New().Field("id").Table("Person")
	b := New().Field("id").Table("Family")

	assert.Equal(t, "(SELECT id FROM Person UNION SELECT id FROM Family)", Union(a, b))
}

func TestUnionAll(t *testing.T) {
	a := New().Field("id").Table("Person")
	b := New().Field("id").Table("Family")

	assert.Equal(t, "(SELECT id FROM Person UNION ALL SELECT id FROM Family)", UnionAll(a, b))
}

func TestUnion_SingleBuilder(t *testing.T) {
	a := New().Field("id").Table("Person")
	assert.Equal(t, "(SELECT id FROM Person)", Union(a))
}

func TestUnion_ThreeBuilders(t *testing.T) {
	a := New().Field("id").Table("A")
	b := New().Field("id").Table("B")
	c := New().Field("id").Table("C")

	assert.Equal(t, "(SELECT id FROM A UNION SELECT id FROM B UNION SELECT id FROM C)", Union(a, b, c))
}

func TestUnion_DoesNotMutateBuilders(t *testing.T) {
	a := New().Field("id").Table("Person").Filter("id", "?")
	before := a.String()

	Union(a, New().Field("id").Table("Family"))
	assert.Equal(t, before, a.String())
}

func TestUnion_AsTableReference(t *testing.T) {
	a := New().Field("id").Table("Person")
	b := New().Field("id").Table("Family")

	outer := New().Table(Union(a, b))
	sql, err := outer.Build()
	assert.NoError(t, err)
	assert.Equal(t, "SELECT * FROM (SELECT id FROM Person UNION SELECT id FROM Family)", sql)
}
