package repository

import "github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas incluyen los nombres de categoría y subcategoría vía LEFT JOIN.
type ProductRepository interface {
	FindAll() ([]*entity.Product, error)
	FindByID(id int64) (*entity.Product, error)
	Create(product *entity.Product) (int64, error)
	Update(product *entity.Product) (bool, error)
	Delete(id int64) (bool, error)
}

// ProductImageRepository define el puerto para las filas de product_images.
// Se usa junto con ProductRepository dentro de una transacción (TxRunner).
type ProductImageRepository interface {
	ReplaceForProduct(productID int64, imageURLs []string) error
}
