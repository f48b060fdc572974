package usecase

import (
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// SubCategoryUseCase casos de uso CRUD para subcategorías.
type SubCategoryUseCase struct {
	repo       repository.SubCategoryRepository
	categories repository.CategoryRepository
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, categories repository.CategoryRepository) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, categories: categories}
}

// List devuelve todas las subcategorías con el nombre de su categoría, más recientes primero.
func (uc *SubCategoryUseCase) List() ([]dto.SubCategoryResponse, error) {
	list, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubCategoryResponse, 0, len(list))
	for _, sc := range list {
		items = append(items, *toSubCategoryResponse(sc))
	}
	return items, nil
}

// GetByID obtiene una subcategoría por ID (nil si no existe).
func (uc *SubCategoryUseCase) GetByID(id int64) (*dto.SubCategoryResponse, error) {
	sc, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, nil
	}
	return toSubCategoryResponse(sc), nil
}

// Create crea una subcategoría. Devuelve ErrNotFound si la categoría referida no existe.
func (uc *SubCategoryUseCase) Create(in dto.CreateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	category, err := uc.categories.FindByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	subCategory := &entity.SubCategory{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := uc.repo.Create(subCategory)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Update aplica una actualización parcial: solo campos no nil reemplazan el valor
// existente. Devuelve nil si la subcategoría no existe y ErrNotFound si se
// intenta mover a una categoría inexistente.
func (uc *SubCategoryUseCase) Update(id int64, in dto.UpdateSubCategoryRequest) (*dto.SubCategoryResponse, error) {
	subCategory, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if subCategory == nil {
		return nil, nil
	}
	if in.CategoryID != nil {
		category, err := uc.categories.FindByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		subCategory.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		subCategory.Name = *in.Name
	}
	if in.Description != nil {
		subCategory.Description = in.Description
	}
	if in.Image != nil {
		subCategory.Image = in.Image
	}
	subCategory.UpdatedAt = time.Now()
	affected, err := uc.repo.Update(subCategory)
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, nil
	}
	return uc.GetByID(id)
}

// Delete elimina una subcategoría; la cascada de la DB se lleva sus productos.
func (uc *SubCategoryUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toSubCategoryResponse(sc *entity.SubCategory) *dto.SubCategoryResponse {
	if sc == nil {
		return nil
	}
	return &dto.SubCategoryResponse{
		ID:           sc.ID,
		Name:         sc.Name,
		Description:  sc.Description,
		CategoryID:   sc.CategoryID,
		Image:        sc.Image,
		CategoryName: sc.CategoryName,
		CreatedAt:    sc.CreatedAt,
		UpdatedAt:    sc.UpdatedAt,
	}
}
