package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var _ Storage = (*DiskStorage)(nil)

// DiskStorage guarda los archivos en disco local; el servidor los sirve
// estáticamente bajo /uploads.
type DiskStorage struct {
	dir          string
	maxSizeBytes int64
	logger       zerolog.Logger
}

// NewDiskStorage crea el storage de disco y asegura que el directorio exista.
func NewDiskStorage(dir string, maxSizeMB int, logger zerolog.Logger) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &DiskStorage{
		dir:          dir,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
		logger:       logger.With().Str("component", "disk-storage").Logger(),
	}, nil
}

// Save valida el archivo, lo copia bajo un nombre aleatorio y devuelve
// la ruta pública /uploads/<nombre>.
func (s *DiskStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := validate(file, s.maxSizeBytes); err != nil {
		return "", err
	}

	name := randomName(file.Filename)
	dst := filepath.Join(s.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("crear archivo destino: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("escribir archivo: %w", err)
	}

	s.logger.Debug().
		Str("original", file.Filename).
		Str("stored", name).
		Int64("size", file.Size).
		Msg("archivo guardado en disco")

	return "/uploads/" + name, nil
}
