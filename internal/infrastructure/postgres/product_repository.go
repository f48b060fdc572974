package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id, p.name, p.description, p.price, p.category_id, p.subcategory_id,
	p.images, p.stock, p.sku, COALESCE(c.name, ''), COALESCE(sc.name, ''), p.created_at, p.updated_at`

const productJoins = `
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN subcategories sc ON p.subcategory_id = sc.id`

// FindAll lista todos los productos con nombres de categoría y subcategoría, más recientes primero.
func (r *ProductRepo) FindAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + productJoins + `
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// FindByID obtiene un producto por ID con los nombres de categoría y subcategoría.
func (r *ProductRepo) FindByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + productJoins + `
		WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create persiste un nuevo producto y devuelve el id generado.
// Una categoría o subcategoría inexistente dispara la foreign key y se mapea a ErrNotFound.
func (r *ProductRepo) Create(product *entity.Product) (int64, error) {
	imagesJSON, err := marshalImages(product.Images)
	if err != nil {
		return 0, err
	}
	query := `
		INSERT INTO products (name, description, price, category_id, subcategory_id, images, stock, sku, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err = r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.CategoryID, product.SubCategoryID,
		imagesJSON, product.Stock, product.SKU, product.CreatedAt, product.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// Update reemplaza las columnas nombradas; reporta si la fila existía.
func (r *ProductRepo) Update(product *entity.Product) (bool, error) {
	imagesJSON, err := marshalImages(product.Images)
	if err != nil {
		return false, err
	}
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, category_id = $5,
			subcategory_id = $6, images = $7, stock = $8, sku = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.CategoryID,
		product.SubCategoryID, imagesJSON, product.Stock, product.SKU, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto; la base de datos borra en cascada sus filas de product_images.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var imagesJSON []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.SubCategoryID,
		&imagesJSON, &p.Stock, &p.SKU, &p.CategoryName, &p.SubCategoryName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return nil, fmt.Errorf("decode product images: %w", err)
		}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

// marshalImages serializa la lista ordenada de rutas para la columna JSONB.
func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("encode product images: %w", err)
	}
	return b, nil
}
