package http

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// FileStorage guarda archivos subidos y devuelve la ruta pública del archivo.
// Lo implementan los backends de disco y S3 de infraestructura.
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// formValue devuelve el primer valor del campo del formulario multipart y si
// el cliente realmente lo envió. La distinción presente/ausente es la base de
// las actualizaciones parciales: campo ausente = conservar valor actual.
func formValue(form *multipart.Form, name string) (string, bool) {
	if form == nil || form.Value == nil {
		return "", false
	}
	values, ok := form.Value[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// uploadError mapea errores del storage a la respuesta HTTP: tipo o tamaño
// inválido son culpa del cliente (400); el resto es fallo del servidor (500).
func uploadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidFileType) || errors.Is(err, domain.ErrFileTooLarge) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UPLOAD", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseID parsea el parámetro de ruta :id como entero positivo.
// Si no lo es, responde 400 y devuelve ok=false.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
		return 0, false
	}
	return id, true
}
