package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Pertenece a una Category y una SubCategory.
// Images es la lista ordenada de rutas públicas almacenadas (máx. 5).
// CategoryName y SubCategoryName se llenan solo en lecturas (LEFT JOIN).
type Product struct {
	ID              int64
	Name            string
	Description     *string
	Price           decimal.Decimal
	CategoryID      int64
	SubCategoryID   int64
	Images          []string
	Stock           int
	SKU             *string // único cuando está presente
	CategoryName    string
	SubCategoryName string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
