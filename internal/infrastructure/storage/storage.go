package storage

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// Storage es el colaborador de almacenamiento de archivos: recibe el archivo
// subido y devuelve la ruta pública bajo la que quedó guardado.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// Solo formatos de imagen del catálogo.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// validate rechaza archivos que no sean imágenes o excedan el tamaño máximo.
func validate(file *multipart.FileHeader, maxSizeBytes int64) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return domain.ErrInvalidFileType
	}
	if file.Size > maxSizeBytes {
		return domain.ErrFileTooLarge
	}
	return nil
}

// randomName genera un nombre aleatorio conservando la extensión original,
// para evitar colisiones entre archivos subidos con el mismo nombre.
func randomName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.New().String() + ext
}
