package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
// Image es la ruta ya almacenada por el storage (nil si no se adjuntó archivo).
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// UpdateCategoryRequest entrada para actualización parcial: solo los campos
// presentes (no nil) se aplican sobre la fila existente.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
