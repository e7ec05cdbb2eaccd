package catalog

import "time"

type Product struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	SerialName      string     `json:"serial_name"`
	Detail          *string    `json:"detail,omitempty"`
	Price           int64      `json:"price"`
	Stock           int        `json:"stock"`
	GuaranteeMonths int        `json:"guarantee_months"`
	SupplierID      *string    `json:"supplier_id,omitempty"`
	CategoryID      *string    `json:"category_id,omitempty"`
	CategoryName    *string    `json:"category_name,omitempty"`
	Deleted         bool       `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type Image struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Href      string `json:"href"`
}

type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderLine is immutable once created and never exposed directly;
// the engine only reads it in aggregate.
type OrderLine struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SortKey string

const (
	SortNone  SortKey = ""
	SortName  SortKey = "name"
	SortPrice SortKey = "price"
)

// FilterCriteria is the normalized form of a listing request.
// Nil pointer fields mean "no constraint".
type FilterCriteria struct {
	MinPrice   *int64
	MaxPrice   *int64
	SearchKey  *string
	SupplierID *string
	CategoryID *string
	SortKey    SortKey
	SortDesc   bool
	PageNumber int
	PageSize   int
}

// ProductSummary is the projection returned by the listing path: the
// product scalars plus materialized image hrefs, not full image rows.
type ProductSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	SerialName      string   `json:"serial_name"`
	Detail          *string  `json:"detail,omitempty"`
	Price           int64    `json:"price"`
	Stock           int      `json:"stock"`
	GuaranteeMonths int      `json:"guarantee_months"`
	SupplierID      *string  `json:"supplier_id,omitempty"`
	CategoryID      *string  `json:"category_id,omitempty"`
	CategoryName    *string  `json:"category_name,omitempty"`
	Images          []string `json:"images"`
}

type PagedResult struct {
	Items      []ProductSummary `json:"items"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	TotalCount int              `json:"total_count"`
}

type TopSellerEntry struct {
	ProductID         string   `json:"product_id"`
	ProductName       string   `json:"product_name"`
	TotalQuantitySold int      `json:"total_quantity_sold"`
	Images            []string `json:"images"`
}

type NewProductInput struct {
	Name            string  `json:"name"`
	SerialName      string  `json:"serial_name"`
	Detail          *string `json:"detail,omitempty"`
	Price           int64   `json:"price"`
	Stock           int     `json:"stock"`
	GuaranteeMonths int     `json:"guarantee_months"`
	SupplierID      *string `json:"supplier_id,omitempty"`
	CategoryID      *string `json:"category_id,omitempty"`
}
