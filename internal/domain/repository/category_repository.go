package repository

import "github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Update y Delete reportan si alguna fila fue afectada; el borrado en cascada
// de subcategorías y productos lo aplica la base de datos, no la aplicación.
type CategoryRepository interface {
	FindAll() ([]*entity.Category, error)
	FindByID(id int64) (*entity.Category, error)
	FindByName(name string) (*entity.Category, error)
	Create(category *entity.Category) (int64, error)
	Update(category *entity.Category) (bool, error)
	Delete(id int64) (bool, error)
}
