package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"catalva-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Store is the read/write surface of the catalog relations. The listing
// and top-seller paths only ever read; the pass-through CRUD is kept here
// so the whole product surface shares one repository.
type Store interface {
	QueryProducts(ctx context.Context, pred Predicate, orderBy string, limit, offset int) ([]*Product, error)
	CountProducts(ctx context.Context, pred Predicate) (int, error)
	ImagesByProductIDs(ctx context.Context, productIDs []string) (map[string][]string, error)
	SumQuantityByProduct(ctx context.Context) (map[string]int, error)
	ProductsByIDs(ctx context.Context, ids []string) (map[string]*Product, error)

	GetProductByID(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	SoftDeleteProduct(ctx context.Context, id string) error
	AddImage(ctx context.Context, img *Image) error
	RemoveImage(ctx context.Context, productID, imageID string) error
}

type store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

const productColumns = `
	p.id,
	p.name,
	p.serial_name,
	p.detail,
	p.price,
	p.stock,
	p.guarantee_months,
	p.supplier_id,
	p.category_id,
	c.name AS category_name,
	p.deleted,
	p.created_at,
	p.updated_at
`

func (s *store) QueryProducts(
	ctx context.Context,
	pred Predicate,
	orderBy string,
	limit, offset int,
) ([]*Product, error) {

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE %s
		%s
		LIMIT $%d OFFSET $%d`,
		productColumns, pred.Where(), orderBy, pred.NextArg(), pred.NextArg()+1,
	)

	args := append(pred.Args(), limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed QueryProducts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := make([]*Product, 0, limit)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return products, nil
}

func (s *store) CountProducts(ctx context.Context, pred Predicate) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(p.id)
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE %s`,
		pred.Where(),
	)

	var count int
	err := s.db.QueryRowContext(ctx, query, pred.Args()...).Scan(&count)
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed CountProducts", zap.Error(err))
		return 0, err
	}

	return count, nil
}

// ImagesByProductIDs batch-loads image hrefs for a page worth of products,
// ordered by image id within each product.
func (s *store) ImagesByProductIDs(
	ctx context.Context,
	productIDs []string,
) (map[string][]string, error) {

	images := make(map[string][]string, len(productIDs))
	if len(productIDs) == 0 {
		return images, nil
	}

	query := `
		SELECT product_id, href
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY product_id, id
	`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(productIDs))
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed ImagesByProductIDs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productID, href string
		if err := rows.Scan(&productID, &href); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		images[productID] = append(images[productID], href)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return images, nil
}

// SumQuantityByProduct groups the whole order_lines relation by product.
// Products nobody ever ordered are simply absent from the result.
func (s *store) SumQuantityByProduct(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT product_id, SUM(quantity)
		FROM order_lines
		GROUP BY product_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed SumQuantityByProduct", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]int)

	for rows.Next() {
		var productID string
		var total int
		if err := rows.Scan(&productID, &total); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		sums[productID] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return sums, nil
}

// ProductsByIDs returns the non-deleted products among ids, keyed by id.
func (s *store) ProductsByIDs(ctx context.Context, ids []string) (map[string]*Product, error) {
	products := make(map[string]*Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.deleted = FALSE AND p.id = ANY($1)`,
		productColumns,
	)

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed ProductsByIDs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		products[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return products, nil
}

func (s *store) GetProductByID(ctx context.Context, id string) (*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.deleted = FALSE AND p.id = $1`,
		productColumns,
	)

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed GetProductByID", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *store) CreateProduct(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (
			id, name, serial_name, detail, price, stock,
			guarantee_months, supplier_id, category_id, deleted, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,FALSE,NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.ID,
		p.Name,
		p.SerialName,
		p.Detail,
		p.Price,
		p.Stock,
		p.GuaranteeMonths,
		p.SupplierID,
		p.CategoryID,
	).Scan(&p.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed CreateProduct", zap.Error(err))
		return fmt.Errorf("create product failed: %w", err)
	}

	return nil
}

func (s *store) SoftDeleteProduct(ctx context.Context, id string) error {
	query := `
		UPDATE products
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed SoftDeleteProduct", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (s *store) AddImage(ctx context.Context, img *Image) error {
	query := `
		INSERT INTO product_images (id, product_id, href)
		VALUES ($1, $2, $3)
	`

	_, err := s.db.ExecContext(ctx, query, img.ID, img.ProductID, img.Href)
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed AddImage", zap.Error(err))
		return fmt.Errorf("add image failed: %w", err)
	}

	return nil
}

func (s *store) RemoveImage(ctx context.Context, productID, imageID string) error {
	query := `
		DELETE FROM product_images
		WHERE id = $1 AND product_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, imageID, productID)
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed RemoveImage", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrImageNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SerialName,
		&p.Detail,
		&p.Price,
		&p.Stock,
		&p.GuaranteeMonths,
		&p.SupplierID,
		&p.CategoryID,
		&p.CategoryName,
		&p.Deleted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
