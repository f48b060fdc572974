package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// MaxProductImages máximo de imágenes por producto.
const MaxProductImages = 5

// ProductUseCase casos de uso CRUD para productos. Los writes pasan por TxRunner
// para que el producto y sus filas de product_images se confirmen juntos.
type ProductUseCase struct {
	repo          repository.ProductRepository
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
	tx            TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	subCategories repository.SubCategoryRepository,
	tx TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, subCategories: subCategories, tx: tx}
}

// List devuelve todos los productos con nombres de categoría y subcategoría, más recientes primero.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// Create crea un producto dentro de una transacción junto con sus filas de imágenes.
// Devuelve ErrNotFound si la categoría o subcategoría no existen,
// ErrInvalidInput si precio, stock o imágenes violan las reglas,
// ErrDuplicate si el SKU ya está registrado.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.validateRefs(in.CategoryID, in.SubCategoryID); err != nil {
		return nil, err
	}
	if in.Price.LessThanOrEqual(decimal.Zero) || in.Stock < 0 || len(in.Images) > MaxProductImages {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		Images:        in.Images,
		Stock:         in.Stock,
		SKU:           in.SKU,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	var id int64
	err := uc.tx.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		imageRepo repository.ProductImageRepository,
	) error {
		var err error
		id, err = productRepo.Create(product)
		if err != nil {
			return err
		}
		return imageRepo.ReplaceForProduct(id, in.Images)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Update aplica una actualización parcial dentro de una transacción: solo campos
// no nil reemplazan el valor existente; Images nil conserva las actuales.
// Devuelve nil si el producto no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.CategoryID != nil || in.SubCategoryID != nil {
		categoryID := product.CategoryID
		subCategoryID := product.SubCategoryID
		if in.CategoryID != nil {
			categoryID = *in.CategoryID
		}
		if in.SubCategoryID != nil {
			subCategoryID = *in.SubCategoryID
		}
		if err := uc.validateRefs(categoryID, subCategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
		product.SubCategoryID = subCategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = in.Description
	}
	if in.Price != nil {
		if in.Price.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.SKU != nil {
		product.SKU = in.SKU
	}
	if in.Images != nil {
		if len(in.Images) > MaxProductImages {
			return nil, domain.ErrInvalidInput
		}
		product.Images = in.Images
	}
	product.UpdatedAt = time.Now()

	var affected bool
	err = uc.tx.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		imageRepo repository.ProductImageRepository,
	) error {
		var err error
		affected, err = productRepo.Update(product)
		if err != nil || !affected {
			return err
		}
		return imageRepo.ReplaceForProduct(id, product.Images)
	})
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, nil
	}
	return uc.GetByID(id)
}

// Delete elimina un producto; la cascada de la DB se lleva sus filas de imágenes.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

// validateRefs verifica que categoría y subcategoría existan antes de escribir;
// la foreign key de la DB queda como respaldo.
func (uc *ProductUseCase) validateRefs(categoryID, subCategoryID int64) error {
	category, err := uc.categories.FindByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	subCategory, err := uc.subCategories.FindByID(subCategoryID)
	if err != nil {
		return err
	}
	if subCategory == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		CategoryID:      p.CategoryID,
		SubCategoryID:   p.SubCategoryID,
		Images:          images,
		Stock:           p.Stock,
		SKU:             p.SKU,
		CategoryName:    p.CategoryName,
		SubCategoryName: p.SubCategoryName,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
