package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

var _ Storage = (*S3Storage)(nil)

// S3Storage sube los archivos a un bucket S3. Backend alternativo al disco
// local para despliegues sin filesystem persistente.
type S3Storage struct {
	client       *s3.Client
	bucket       string
	region       string
	prefix       string
	maxSizeBytes int64
	logger       zerolog.Logger
}

// NewS3Storage crea el storage S3 cargando la configuración AWS por defecto.
func NewS3Storage(ctx context.Context, bucket, region, prefix string, maxSizeMB int, logger zerolog.Logger) (*S3Storage, error) {
	logger = logger.With().Str("component", "s3-storage").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("cargar configuración AWS")
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("storage S3 inicializado")

	return &S3Storage{
		client:       client,
		bucket:       bucket,
		region:       region,
		prefix:       prefix,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
		logger:       logger,
	}, nil
}

// Save valida el archivo, lo sube bajo un nombre aleatorio y devuelve la URL pública del objeto.
func (s *S3Storage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := validate(file, s.maxSizeBytes); err != nil {
		return "", err
	}

	name := randomName(file.Filename)
	key := s.prefix + name

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("subir objeto a S3")
		return "", fmt.Errorf("subir objeto a S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Debug().
		Str("original", file.Filename).
		Str("key", key).
		Msg("archivo subido a S3")

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
