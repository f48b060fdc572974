package dto

import "time"

// CreateSubCategoryRequest entrada para crear una subcategoría.
type CreateSubCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description"`
	CategoryID  int64   `json:"category_id" validate:"required"`
	Image       *string `json:"image"`
}

// UpdateSubCategoryRequest actualización parcial: solo campos no nil se aplican.
type UpdateSubCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"category_id"`
	Image       *string `json:"image"`
}

// SubCategoryResponse salida de una subcategoría con el nombre de su categoría.
type SubCategoryResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	CategoryID   int64     `json:"category_id"`
	Image        *string   `json:"image"`
	CategoryName string    `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
