package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para Product.
// Create y Update reciben multipart/form-data con hasta 5 imágenes.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	storage FileStorage
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, storage FileStorage) *ProductHandler {
	return &ProductHandler{uc: uc, storage: storage}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name             formData  string  true   "Nombre"
// @Param        price            formData  string  true   "Precio (decimal > 0)"
// @Param        category_id      formData  int     true   "Categoría"
// @Param        sub_category_id  formData  int     true   "Subcategoría"
// @Param        description      formData  string  false  "Descripción"
// @Param        stock            formData  int     false  "Stock (default 0)"
// @Param        sku              formData  string  false  "SKU (único)"
// @Param        images           formData  file    false  "Imágenes (máx. 5)"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price es requerido y debe ser decimal"})
	}
	categoryID, err := strconv.ParseInt(c.FormValue("category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category_id es requerido y debe ser un entero"})
	}
	subCategoryID, err := strconv.ParseInt(c.FormValue("sub_category_id"), 10, 64)
	if err != nil || subCategoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sub_category_id es requerido y debe ser un entero"})
	}

	in := dto.CreateProductRequest{
		Name:          name,
		Price:         price,
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
	}
	if desc := c.FormValue("description"); desc != "" {
		in.Description = &desc
	}
	if sku := strings.TrimSpace(c.FormValue("sku")); sku != "" {
		in.SKU = &sku
	}
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock debe ser un entero >= 0"})
		}
		in.Stock = stock
	}

	images, err := h.saveImages(c)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return uploadError(c, err)
	}
	in.Images = images

	out, err := h.uc.Create(in)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Description  Solo los campos presentes se modifican. Si se adjuntan imágenes
// @Description  reemplazan a las existentes; remove_images=true las elimina todas.
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id               path      int     true   "ID del producto"
// @Param        name             formData  string  false  "Nombre"
// @Param        price            formData  string  false  "Precio (decimal > 0)"
// @Param        category_id      formData  int     false  "Categoría"
// @Param        sub_category_id  formData  int     false  "Subcategoría"
// @Param        description      formData  string  false  "Descripción"
// @Param        stock            formData  int     false  "Stock"
// @Param        sku              formData  string  false  "SKU (único)"
// @Param        images           formData  file    false  "Imágenes (máx. 5, reemplazan)"
// @Param        remove_images    formData  bool    false  "Eliminar todas las imágenes"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera multipart/form-data"})
	}

	var in dto.UpdateProductRequest
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
	if v, ok := formValue(form, "price"); ok {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price debe ser decimal"})
		}
		in.Price = &price
	}
	if v, ok := formValue(form, "category_id"); ok {
		categoryID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || categoryID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category_id debe ser un entero"})
		}
		in.CategoryID = &categoryID
	}
	if v, ok := formValue(form, "sub_category_id"); ok {
		subCategoryID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || subCategoryID <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sub_category_id debe ser un entero"})
		}
		in.SubCategoryID = &subCategoryID
	}
	if v, ok := formValue(form, "stock"); ok {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock debe ser un entero >= 0"})
		}
		in.Stock = &stock
	}
	if v, ok := formValue(form, "sku"); ok {
		v = strings.TrimSpace(v)
		in.SKU = &v
	}

	images, err := h.saveImages(c)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return uploadError(c, err)
	}
	switch {
	case len(images) > 0:
		in.Images = images
	case c.FormValue("remove_images") == "true":
		in.Images = []string{}
	}

	out, err := h.uc.Update(id, in)
	if err != nil {
		return h.writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado correctamente"})
}

// saveImages guarda los archivos del campo images y devuelve sus rutas.
// Rechaza más del máximo permitido antes de guardar nada.
func (h *ProductHandler) saveImages(c *fiber.Ctx) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil || form.File == nil {
		return nil, nil
	}
	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > usecase.MaxProductImages {
		return nil, fmt.Errorf("%w: máximo %d imágenes por producto", domain.ErrInvalidInput, usecase.MaxProductImages)
	}
	paths := make([]string, 0, len(files))
	for _, file := range files {
		path, err := h.storage.Save(c.Context(), file)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeError mapea los errores del caso de uso a la respuesta HTTP.
func (h *ProductHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría o subcategoría no existe"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el SKU ya existe"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
