package usecase

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos de producto e imágenes atados a una misma
// transacción: el producto y sus filas de product_images se confirman o
// revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		imageRepo repository.ProductImageRepository,
	) error) error
}
