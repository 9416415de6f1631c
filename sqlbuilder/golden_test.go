package sqlbuilder

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/querykit/filter"
)

// TestBuild_Golden pins the exact rendered text of representative
// statements. The golden files are the source of truth for the wire
// contract (spacing included); regenerate with:
//
//	go test ./sqlbuilder -update
func TestBuild_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	cases := []struct {
		name  string
		build func() *Builder
	}{
		{
			name:  "basic",
			build: func() *Builder { return New().Table("Person") },
		},
		{
			name: "join_order_by",
			build: func() *Builder {
				return New().
					Table("Car").
					Join("Colors", "Color.ID", "Car.COLOR_ID").
					Field("Name").
					OrderBy("Color.Name")
			},
		},
		{
			name: "grouped_or",
			build: func() *Builder {
				return New().
					Table("Car").
					FilterToGroup("Car.ID", "?", 1).
					FilterToGroup("Car.NAME", "Ford", 1).
					FilterToGroup("Car.NAME", "Chevy", 1).
					FilterOpToGroup("Car.WHEELS", filter.GreaterThan, 4, 2).
					FilterOpToGroup("Car.WHEELS", filter.LessThanEqual, 2, 2).
					Filter("Car.IS_COOL", true)
			},
		},
		{
			name: "subquery_in",
			build: func() *Builder {
				sub := New().Field("id").Table("Person")
				return New().Table("Family").FilterOp("HeadPerson", filter.In, sub)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g.Assert(t, tc.name, []byte(tc.build().String()))
		})
	}
}

func TestUnion_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	a := New().Field("id").Table("Person")
	b := New().Field("id").Table("Family")
	g.Assert(t, "union", []byte(Union(a, b)))
}
