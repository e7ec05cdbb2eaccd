package catalog

import "fmt"

// OrderBy maps the sort key and direction to an ORDER BY fragment.
// Every ordering ends with `p.id ASC` so that equal keys have a
// deterministic order and page boundaries stay stable between requests.
func OrderBy(fc FilterCriteria) string {
	dir := "ASC"
	if fc.SortDesc {
		dir = "DESC"
	}

	switch fc.SortKey {
	case SortName:
		return fmt.Sprintf("ORDER BY LOWER(p.name) %s, p.id ASC", dir)
	case SortPrice:
		return fmt.Sprintf("ORDER BY p.price %s, p.id ASC", dir)
	default:
		return "ORDER BY p.id ASC"
	}
}
