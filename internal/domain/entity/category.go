package entity

import "time"

// Category representa una categoría de productos. Name es único a nivel global.
// Image es la ruta pública devuelta por el almacenamiento de archivos (nil si no hay imagen).
type Category struct {
	ID          int64
	Name        string
	Description *string
	Image       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
