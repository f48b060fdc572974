package entity

import "time"

// SubCategory representa una subcategoría; pertenece a exactamente una Category.
// CategoryName se llena solo en lecturas (LEFT JOIN), no es columna propia.
type SubCategory struct {
	ID           int64
	Name         string
	Description  *string
	CategoryID   int64
	Image        *string
	CategoryName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
