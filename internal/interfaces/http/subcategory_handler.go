package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// SubCategoryHandler maneja las peticiones HTTP para SubCategory.
type SubCategoryHandler struct {
	uc      *usecase.SubCategoryUseCase
	storage FileStorage
}

// NewSubCategoryHandler construye el handler.
func NewSubCategoryHandler(uc *usecase.SubCategoryUseCase, storage FileStorage) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc, storage: storage}
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Produce      json
// @Success      200  {array}  dto.SubCategoryResponse
// @Router       /api/subcategories [get]
func (h *SubCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID
// @Tags         subcategories
// @Produce      json
// @Param        id   path  int  true  "ID de la subcategoría"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [get]
func (h *SubCategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subcategoría no encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Nombre"
// @Param        category_id  formData  int     true   "Categoría padre"
// @Param        description  formData  string  false  "Descripción"
// @Param        image        formData  file    false  "Imagen"
// @Success      201  {object}  dto.SubCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories [post]
func (h *SubCategoryHandler) Create(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	categoryID, err := strconv.ParseInt(c.FormValue("category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category_id es requerido y debe ser un entero"})
	}
	in := dto.CreateSubCategoryRequest{Name: name, CategoryID: categoryID}
	if desc := c.FormValue("description"); desc != "" {
		in.Description = &desc
	}
	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, err := h.storage.Save(c.Context(), file)
		if err != nil {
			return uploadError(c, err)
		}
		in.Image = &path
	}

	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la categoría padre no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar subcategoría (parcial)
// @Description  Solo los campos presentes en el formulario se modifican.
// @Tags         subcategories
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      int     true   "ID de la subcategoría"
// @Param        name         formData  string  false  "Nombre"
// @Param        category_id  formData  int     false  "Categoría padre"
// @Param        description  formData  string  false  "Descripción"
// @Param        image        formData  file    false  "Imagen"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [put]
func (h *SubCategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera multipart/form-data"})
	}

	var in dto.UpdateSubCategoryRequest
	if v, ok := formValue(form, "name"); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name no puede quedar vacío"})
		}
		in.Name = &v
	}
	if v, ok := formValue(form, "description"); ok {
		in.Description = &v
	}
	if v, ok := formValue(form, "category_id"); ok {
		categoryID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || categoryID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category_id debe ser un entero"})
		}
		in.CategoryID = &categoryID
	}
	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, err := h.storage.Save(c.Context(), file)
		if err != nil {
			return uploadError(c, err)
		}
		in.Image = &path
	}

	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la categoría padre no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subcategoría no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar subcategoría
// @Description  Borra la subcategoría y, en cascada, sus productos.
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la subcategoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [delete]
func (h *SubCategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "subcategoría no encontrada"})
	}
	return c.JSON(dto.MessageResponse{Message: "subcategoría eliminada correctamente"})
}
