package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/mail"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/ecommerce-admin-api/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subCategoryRepo := postgres.NewSubCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Backend de archivos: disco local por defecto, S3 si se configura.
	var store httpRouter.FileStorage
	switch cfg.Upload.Backend {
	case "s3":
		store, err = storage.NewS3Storage(ctx, cfg.Upload.S3Bucket, cfg.Upload.S3Region,
			cfg.Upload.S3Prefix, cfg.Upload.MaxSizeMB, log.Zerolog())
	default:
		store, err = storage.NewDiskStorage(cfg.Upload.Dir, cfg.Upload.MaxSizeMB, log.Zerolog())
	}
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Upload.Backend).Msg("inicializar storage de uploads")
	}

	mailer := mail.New(cfg.SMTP, log.Zerolog())

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	subCategoryUC := usecase.NewSubCategoryUseCase(subCategoryRepo, categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, subCategoryRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.Upload.MaxSizeMB + 1) * 1024 * 1024 * usecase.MaxProductImages,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	// Las imágenes subidas a disco se sirven estáticas bajo /uploads.
	if cfg.Upload.Backend != "s3" {
		app.Static("/uploads", cfg.Upload.Dir)
	}

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		SubCategoryUC: subCategoryUC,
		ProductUC:     productUC,
		Users:         userRepo,
		Storage:       store,
		JWTSecret:     cfg.JWT.Secret,
		ProtectWrites: cfg.Auth.ProtectWrites,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
