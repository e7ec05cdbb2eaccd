package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func TestCompile(t *testing.T) {
	t.Run("No criteria still excludes deleted", func(t *testing.T) {
		pred := Compile(FilterCriteria{})

		assert.Equal(t, "p.deleted = FALSE", pred.Where())
		assert.Empty(t, pred.Args())
		assert.Equal(t, 1, pred.NextArg())
	})

	t.Run("Price bounds", func(t *testing.T) {
		pred := Compile(FilterCriteria{
			MinPrice: int64Ptr(100),
			MaxPrice: int64Ptr(500),
		})

		assert.Equal(t, "p.deleted = FALSE AND p.price >= $1 AND p.price <= $2", pred.Where())
		assert.Equal(t, []any{int64(100), int64(500)}, pred.Args())
		assert.Equal(t, 3, pred.NextArg())
	})

	t.Run("Search key expands to four-way OR", func(t *testing.T) {
		pred := Compile(FilterCriteria{SearchKey: strPtr("cam")})

		assert.Equal(t,
			"p.deleted = FALSE AND (p.name ILIKE $1 OR p.serial_name ILIKE $1 OR p.detail ILIKE $1 OR c.name ILIKE $1)",
			pred.Where(),
		)
		assert.Equal(t, []any{"%cam%"}, pred.Args())
	})

	t.Run("Supplier and category are exact matches", func(t *testing.T) {
		pred := Compile(FilterCriteria{
			SupplierID: strPtr("sup-1"),
			CategoryID: strPtr("cat-1"),
		})

		assert.Equal(t, "p.deleted = FALSE AND p.supplier_id = $1 AND p.category_id = $2", pred.Where())
		assert.Equal(t, []any{"sup-1", "cat-1"}, pred.Args())
	})

	t.Run("All clauses keep their fixed order", func(t *testing.T) {
		pred := Compile(FilterCriteria{
			MinPrice:   int64Ptr(0),
			MaxPrice:   int64Ptr(1000),
			SearchKey:  strPtr("x"),
			SupplierID: strPtr("s"),
			CategoryID: strPtr("c"),
		})

		assert.Equal(t,
			"p.deleted = FALSE"+
				" AND p.price >= $1"+
				" AND p.price <= $2"+
				" AND (p.name ILIKE $3 OR p.serial_name ILIKE $3 OR p.detail ILIKE $3 OR c.name ILIKE $3)"+
				" AND p.supplier_id = $4"+
				" AND p.category_id = $5",
			pred.Where(),
		)
		assert.Equal(t, []any{int64(0), int64(1000), "%x%", "s", "c"}, pred.Args())
		assert.Equal(t, 6, pred.NextArg())
	})
}

func TestOrderBy(t *testing.T) {
	t.Run("No sort key falls back to id", func(t *testing.T) {
		assert.Equal(t, "ORDER BY p.id ASC", OrderBy(FilterCriteria{}))
	})

	t.Run("Name ascending", func(t *testing.T) {
		got := OrderBy(FilterCriteria{SortKey: SortName})
		assert.Equal(t, "ORDER BY LOWER(p.name) ASC, p.id ASC", got)
	})

	t.Run("Name descending", func(t *testing.T) {
		got := OrderBy(FilterCriteria{SortKey: SortName, SortDesc: true})
		assert.Equal(t, "ORDER BY LOWER(p.name) DESC, p.id ASC", got)
	})

	t.Run("Price descending keeps ascending tiebreak", func(t *testing.T) {
		got := OrderBy(FilterCriteria{SortKey: SortPrice, SortDesc: true})
		assert.Equal(t, "ORDER BY p.price DESC, p.id ASC", got)
	})
}
