package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"catalva-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the catalog query engine exposed to the transport layer.
type Service interface {
	ListProducts(ctx context.Context, raw RawCriteria) (*PagedResult, error)
	TopSellers(ctx context.Context, count int) ([]*TopSellerEntry, error)
	GetProduct(ctx context.Context, id string) (*ProductSummary, error)
	CreateProduct(ctx context.Context, input NewProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AddImage(ctx context.Context, productID, href string) (*Image, error)
	RemoveImage(ctx context.Context, productID, imageID string) error
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

// ListProducts runs the full pipeline: normalize criteria, compile the
// predicate, count matches, fetch the requested page, then batch-load
// images for just that page. A page past the end is not an error; it
// returns no items with the same count metadata as page 1.
func (s *service) ListProducts(ctx context.Context, raw RawCriteria) (*PagedResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	fc, err := raw.Normalize()
	if err != nil {
		log.Warn("listing criteria rejected", zap.Error(err))
		return nil, err
	}

	log.Debug("product listing requested",
		zap.Int("page", fc.PageNumber),
		zap.Int("page_size", fc.PageSize),
		zap.Any("filters", map[string]any{
			"min_price":   fc.MinPrice,
			"max_price":   fc.MaxPrice,
			"search":      fc.SearchKey,
			"supplier_id": fc.SupplierID,
			"category_id": fc.CategoryID,
			"sort":        fc.SortKey,
			"sort_desc":   fc.SortDesc,
		}),
	)

	pred := Compile(fc)

	total, err := s.store.CountProducts(ctx, pred)
	if err != nil {
		log.Error("failed to count products", zap.Error(err))
		return nil, err
	}

	totalPages := (total + fc.PageSize - 1) / fc.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	result := &PagedResult{
		Items:      []ProductSummary{},
		PageNumber: fc.PageNumber,
		PageSize:   fc.PageSize,
		TotalPages: totalPages,
		TotalCount: total,
	}

	offset := (fc.PageNumber - 1) * fc.PageSize
	if total == 0 || offset >= total {
		log.Info("product listing empty page",
			zap.Int("total", total),
			zap.Duration("duration", time.Since(start)),
		)
		return result, nil
	}

	products, err := s.store.QueryProducts(ctx, pred, OrderBy(fc), fc.PageSize, offset)
	if err != nil {
		log.Error("failed to fetch product page", zap.Error(err))
		return nil, err
	}

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	images, err := s.store.ImagesByProductIDs(ctx, ids)
	if err != nil {
		log.Error("failed to fetch product images", zap.Error(err))
		return nil, err
	}

	result.Items = make([]ProductSummary, 0, len(products))
	for _, p := range products {
		result.Items = append(result.Items, toSummary(p, images[p.ID]))
	}

	log.Info("product listing success",
		zap.Int("count", len(result.Items)),
		zap.Int("total", total),
		zap.Int("total_pages", totalPages),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// TopSellers ranks products by summed historical order quantity. Sums are
// grouped storage-side, inner-joined against the live products (deleted or
// never-ordered products fall out), ranked descending with product id as
// the tie-break, truncated to count, and only then decorated with images.
func (s *service) TopSellers(ctx context.Context, count int) ([]*TopSellerEntry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "TopSellers"),
		zap.Int("count", count),
	)

	if count < 0 {
		log.Warn("top sellers rejected: negative count")
		return nil, ErrNegativeCount
	}
	if count == 0 {
		return []*TopSellerEntry{}, nil
	}
	if count > maxTopSellers {
		count = maxTopSellers
	}

	start := time.Now()

	sums, err := s.store.SumQuantityByProduct(ctx)
	if err != nil {
		log.Error("failed to sum order quantities", zap.Error(err))
		return nil, err
	}

	if len(sums) == 0 {
		return []*TopSellerEntry{}, nil
	}

	ids := make([]string, 0, len(sums))
	for id := range sums {
		ids = append(ids, id)
	}

	products, err := s.store.ProductsByIDs(ctx, ids)
	if err != nil {
		log.Error("failed to resolve ordered products", zap.Error(err))
		return nil, err
	}

	entries := make([]*TopSellerEntry, 0, len(products))
	for id, p := range products {
		entries = append(entries, &TopSellerEntry{
			ProductID:         id,
			ProductName:       p.Name,
			TotalQuantitySold: sums[id],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalQuantitySold != entries[j].TotalQuantitySold {
			return entries[i].TotalQuantitySold > entries[j].TotalQuantitySold
		}
		return entries[i].ProductID < entries[j].ProductID
	})

	if len(entries) > count {
		entries = entries[:count]
	}

	// Images only for the rows that survived the cut.
	finalIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		finalIDs = append(finalIDs, e.ProductID)
	}

	images, err := s.store.ImagesByProductIDs(ctx, finalIDs)
	if err != nil {
		log.Error("failed to fetch top seller images", zap.Error(err))
		return nil, err
	}

	for _, e := range entries {
		e.Images = images[e.ProductID]
		if e.Images == nil {
			e.Images = []string{}
		}
	}

	log.Info("top sellers success",
		zap.Int("returned", len(entries)),
		zap.Duration("duration", time.Since(start)),
	)

	return entries, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*ProductSummary, error) {
	p, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	images, err := s.store.ImagesByProductIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	summary := toSummary(p, images[id])
	return &summary, nil
}

func (s *service) CreateProduct(ctx context.Context, input NewProductInput) (*Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrEmptyProductName
	}
	if input.Price < 0 {
		return nil, ErrNegativePrice
	}

	p := &Product{
		ID:              uuid.NewString(),
		Name:            input.Name,
		SerialName:      input.SerialName,
		Detail:          input.Detail,
		Price:           input.Price,
		Stock:           input.Stock,
		GuaranteeMonths: input.GuaranteeMonths,
		SupplierID:      input.SupplierID,
		CategoryID:      input.CategoryID,
	}

	if err := s.store.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created", zap.String("product_id", p.ID))
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.store.SoftDeleteProduct(ctx, id)
}

func (s *service) AddImage(ctx context.Context, productID, href string) (*Image, error) {
	if strings.TrimSpace(href) == "" {
		return nil, ErrEmptyImageHref
	}

	p, err := s.store.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	img := &Image{
		ID:        uuid.NewString(),
		ProductID: productID,
		Href:      href,
	}

	if err := s.store.AddImage(ctx, img); err != nil {
		return nil, err
	}

	return img, nil
}

func (s *service) RemoveImage(ctx context.Context, productID, imageID string) error {
	return s.store.RemoveImage(ctx, productID, imageID)
}
