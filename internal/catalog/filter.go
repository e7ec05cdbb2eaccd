package catalog

import (
	"fmt"
	"strings"
)

// Predicate is the compiled WHERE clause of a listing request: an ordered
// list of conditions folded with AND, with positional args already
// numbered from $1. It never executes anything itself; the store appends
// it to its SELECT and COUNT statements.
type Predicate struct {
	where []string
	args  []any
}

// Compile builds the predicate from normalized criteria. Clause order is
// fixed; each optional clause is emitted only when its criterion is set.
// Text clauses rely on ILIKE, and the search key matches any of the
// product name, serial name, detail text, or joined category name.
func Compile(fc FilterCriteria) Predicate {
	where := []string{"p.deleted = FALSE"}
	args := []any{}

	if fc.MinPrice != nil {
		where = append(where, fmt.Sprintf("p.price >= $%d", len(args)+1))
		args = append(args, *fc.MinPrice)
	}

	if fc.MaxPrice != nil {
		where = append(where, fmt.Sprintf("p.price <= $%d", len(args)+1))
		args = append(args, *fc.MaxPrice)
	}

	if fc.SearchKey != nil {
		n := len(args) + 1
		where = append(where, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.serial_name ILIKE $%d OR p.detail ILIKE $%d OR c.name ILIKE $%d)",
			n, n, n, n,
		))
		args = append(args, "%"+*fc.SearchKey+"%")
	}

	if fc.SupplierID != nil {
		where = append(where, fmt.Sprintf("p.supplier_id = $%d", len(args)+1))
		args = append(args, *fc.SupplierID)
	}

	if fc.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, *fc.CategoryID)
	}

	return Predicate{where: where, args: args}
}

// Where returns the AND-joined SQL fragment.
func (p Predicate) Where() string {
	return strings.Join(p.where, " AND ")
}

// Args returns the positional arguments backing the fragment.
func (p Predicate) Args() []any {
	return p.args
}

// NextArg is the placeholder index after the predicate's own args,
// for statements that append LIMIT/OFFSET parameters.
func (p Predicate) NextArg() int {
	return len(p.args) + 1
}
