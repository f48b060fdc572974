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

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre PostgreSQL.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

// FindAll lista todas las subcategorías con el nombre de su categoría, más recientes primero.
func (r *SubCategoryRepo) FindAll() ([]*entity.SubCategory, error) {
	query := `
		SELECT sc.id, sc.name, sc.description, sc.category_id, sc.image,
		       COALESCE(c.name, ''), sc.created_at, sc.updated_at
		FROM subcategories sc
		LEFT JOIN categories c ON sc.category_id = c.id
		ORDER BY sc.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubCategory
	for rows.Next() {
		var sc entity.SubCategory
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Description, &sc.CategoryID, &sc.Image,
			&sc.CategoryName, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &sc)
	}
	return list, rows.Err()
}

// FindByID obtiene una subcategoría por ID con el nombre de su categoría.
func (r *SubCategoryRepo) FindByID(id int64) (*entity.SubCategory, error) {
	query := `
		SELECT sc.id, sc.name, sc.description, sc.category_id, sc.image,
		       COALESCE(c.name, ''), sc.created_at, sc.updated_at
		FROM subcategories sc
		LEFT JOIN categories c ON sc.category_id = c.id
		WHERE sc.id = $1`
	var sc entity.SubCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&sc.ID, &sc.Name, &sc.Description, &sc.CategoryID, &sc.Image,
		&sc.CategoryName, &sc.CreatedAt, &sc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &sc, nil
}

// Create persiste una nueva subcategoría y devuelve el id generado.
// Una categoría inexistente dispara la foreign key y se mapea a ErrNotFound.
func (r *SubCategoryRepo) Create(subCategory *entity.SubCategory) (int64, error) {
	query := `
		INSERT INTO subcategories (name, description, category_id, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		subCategory.Name, subCategory.Description, subCategory.CategoryID, subCategory.Image,
		subCategory.CreatedAt, subCategory.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert subcategory: %w", err)
	}
	return id, nil
}

// Update reemplaza las columnas nombradas; reporta si la fila existía.
func (r *SubCategoryRepo) Update(subCategory *entity.SubCategory) (bool, error) {
	query := `
		UPDATE subcategories SET name = $2, description = $3, category_id = $4, image = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		subCategory.ID, subCategory.Name, subCategory.Description, subCategory.CategoryID,
		subCategory.Image, subCategory.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("update subcategory: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una subcategoría; la base de datos borra en cascada los productos dependientes.
func (r *SubCategoryRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete subcategory: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
