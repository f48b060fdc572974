package usecase

import (
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías, más recientes primero.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID (nil si no existe).
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCategoryResponse(c), nil
}

// Create crea una categoría. El nombre es único: devuelve ErrDuplicate si ya existe.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.FindByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := uc.repo.Create(category)
	if err != nil {
		return nil, err
	}
	// Releer para devolver la fila persistida (timestamps de la DB incluidos).
	created, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(created), nil
}

// Update aplica una actualización parcial: solo los campos presentes (no nil)
// reemplazan el valor existente. Devuelve nil si la categoría no existe.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, err := uc.repo.FindByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = in.Description
	}
	if in.Image != nil {
		category.Image = in.Image
	}
	category.UpdatedAt = time.Now()
	affected, err := uc.repo.Update(category)
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría; la cascada de la DB se lleva subcategorías y productos.
// Devuelve false si la categoría no existía.
func (uc *CategoryUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
