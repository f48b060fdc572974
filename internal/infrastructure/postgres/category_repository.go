package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// FindAll lista todas las categorías, más recientes primero.
func (r *CategoryRepo) FindAll() ([]*entity.Category, error) {
	query := `
		SELECT id, name, description, image, created_at, updated_at
		FROM categories ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// FindByID obtiene una categoría por ID.
func (r *CategoryRepo) FindByID(id int64) (*entity.Category, error) {
	return r.findOne(`SELECT id, name, description, image, created_at, updated_at
		FROM categories WHERE id = $1`, id)
}

// FindByName obtiene una categoría por nombre (chequeo de unicidad pre-insert).
func (r *CategoryRepo) FindByName(name string) (*entity.Category, error) {
	return r.findOne(`SELECT id, name, description, image, created_at, updated_at
		FROM categories WHERE name = $1`, name)
}

func (r *CategoryRepo) findOne(query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Create persiste una nueva categoría y devuelve el id generado.
func (r *CategoryRepo) Create(category *entity.Category) (int64, error) {
	query := `
		INSERT INTO categories (name, description, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		category.Name, category.Description, category.Image, category.CreatedAt, category.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

// Update reemplaza las columnas nombradas; reporta si la fila existía.
func (r *CategoryRepo) Update(category *entity.Category) (bool, error) {
	query := `
		UPDATE categories SET name = $2, description = $3, image = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Image, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una categoría; la base de datos borra en cascada
// subcategorías y productos dependientes.
func (r *CategoryRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
