package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
	maxTopSellers   = 100
)

// RawCriteria carries a listing request exactly as it arrives from the
// caller (query-string scalars, all optional). Normalize turns it into a
// FilterCriteria; it is the only place where raw input is parsed.
type RawCriteria struct {
	MinPrice   string
	MaxPrice   string
	SearchKey  string
	SupplierID string
	CategoryID string
	SortKey    string
	SortDesc   string
	PageNumber string
	PageSize   string
}

// Normalize validates and defaults the raw request.
//
// Missing or empty fields are "no constraint", never errors. The only
// rejected input is a non-numeric price bound; out-of-range paging is
// silently clamped so a sloppy caller still gets page 1.
func (rc RawCriteria) Normalize() (FilterCriteria, error) {
	fc := FilterCriteria{
		PageNumber: 1,
		PageSize:   defaultPageSize,
	}

	minPrice, err := parsePriceBound(rc.MinPrice)
	if err != nil {
		return FilterCriteria{}, fmt.Errorf("%w: min_price %q", ErrInvalidPriceBound, rc.MinPrice)
	}
	fc.MinPrice = minPrice

	maxPrice, err := parsePriceBound(rc.MaxPrice)
	if err != nil {
		return FilterCriteria{}, fmt.Errorf("%w: max_price %q", ErrInvalidPriceBound, rc.MaxPrice)
	}
	fc.MaxPrice = maxPrice

	if s := strings.TrimSpace(rc.SearchKey); s != "" {
		fc.SearchKey = &s
	}
	if s := strings.TrimSpace(rc.SupplierID); s != "" {
		fc.SupplierID = &s
	}
	if s := strings.TrimSpace(rc.CategoryID); s != "" {
		fc.CategoryID = &s
	}

	switch SortKey(strings.ToLower(strings.TrimSpace(rc.SortKey))) {
	case SortName:
		fc.SortKey = SortName
	case SortPrice:
		fc.SortKey = SortPrice
	default:
		fc.SortKey = SortNone
	}

	if desc, err := strconv.ParseBool(rc.SortDesc); err == nil {
		fc.SortDesc = desc
	}

	if page, err := strconv.Atoi(rc.PageNumber); err == nil && page >= 1 {
		fc.PageNumber = page
	}

	if size, err := strconv.Atoi(rc.PageSize); err == nil && size >= 1 {
		fc.PageSize = size
	}
	if fc.PageSize > maxPageSize {
		fc.PageSize = maxPageSize
	}

	return fc, nil
}

func parsePriceBound(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	if v < 0 {
		v = 0
	}
	return &v, nil
}
