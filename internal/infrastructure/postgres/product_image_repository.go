package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.ProductImageRepository = (*ProductImageRepo)(nil)

// ProductImageRepo implementación del puerto ProductImageRepository sobre PostgreSQL.
// Se usa dentro de la transacción de creación/actualización de productos.
type ProductImageRepo struct {
	q Querier
}

// NewProductImageRepository construye el adaptador para las filas de product_images.
func NewProductImageRepository(q Querier) *ProductImageRepo {
	return &ProductImageRepo{q: q}
}

// ReplaceForProduct borra las filas del producto e inserta las rutas dadas, en orden.
// Llamar siempre dentro de una transacción junto con el write del producto.
func (r *ProductImageRepo) ReplaceForProduct(productID int64, imageURLs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete product images: %w", err)
	}
	for _, url := range imageURLs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_images (product_id, image_url) VALUES ($1, $2)`,
			productID, url,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert product image: %w", err)
		}
	}
	return nil
}
