package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Images son las rutas ya almacenadas por el storage (máx. 5).
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=255"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	CategoryID    int64           `json:"category_id" validate:"required"`
	SubCategoryID int64           `json:"sub_category_id" validate:"required"`
	Images        []string        `json:"images" validate:"max=5"`
	Stock         int             `json:"stock" validate:"min=0"`
	SKU           *string         `json:"sku"`
}

// UpdateProductRequest actualización parcial: solo campos no nil se aplican.
// Images nil conserva las imágenes existentes; lista vacía las elimina.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	CategoryID    *int64           `json:"category_id"`
	SubCategoryID *int64           `json:"sub_category_id"`
	Images        []string         `json:"images" validate:"omitempty,max=5"`
	Stock         *int             `json:"stock" validate:"omitempty,min=0"`
	SKU           *string          `json:"sku"`
}

// ProductResponse salida de un producto con los nombres de categoría y subcategoría.
type ProductResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      int64           `json:"category_id"`
	SubCategoryID   int64           `json:"sub_category_id"`
	Images          []string        `json:"images"`
	Stock           int             `json:"stock"`
	SKU             *string         `json:"sku"`
	CategoryName    string          `json:"category_name"`
	SubCategoryName string          `json:"subcategory_name"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
