package repository

import "github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"

// SubCategoryRepository define el puerto de persistencia para SubCategory (DIP).
// Las lecturas incluyen el nombre de la categoría padre vía LEFT JOIN.
type SubCategoryRepository interface {
	FindAll() ([]*entity.SubCategory, error)
	FindByID(id int64) (*entity.SubCategory, error)
	Create(subCategory *entity.SubCategory) (int64, error)
	Update(subCategory *entity.SubCategory) (bool, error)
	Delete(id int64) (bool, error)
}
