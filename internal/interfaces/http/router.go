package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubCategoryUC *usecase.SubCategoryUseCase
	ProductUC     *usecase.ProductUseCase
	Users         repository.UserRepository
	Storage       FileStorage
	JWTSecret     string
	// ProtectWrites exige Bearer Token en POST/PUT/DELETE del catálogo.
	// Las lecturas son públicas siempre.
	ProtectWrites bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authMW := AuthMiddleware(deps.JWTSecret, deps.Users)

	// Auth (público, salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Get("/me", authMW, authHandler.Me)

	// guard protege las escrituras del catálogo según configuración.
	guard := authMW
	if !deps.ProtectWrites {
		guard = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Storage)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", guard, categoryHandler.Create)
	categories.Put("/:id", guard, categoryHandler.Update)
	categories.Delete("/:id", guard, categoryHandler.Delete)

	// SubCategories
	subcategories := api.Group("/subcategories")
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC, deps.Storage)
	subcategories.Get("/", subCategoryHandler.List)
	subcategories.Get("/:id", subCategoryHandler.GetByID)
	subcategories.Post("/", guard, subCategoryHandler.Create)
	subcategories.Put("/:id", guard, subCategoryHandler.Update)
	subcategories.Delete("/:id", guard, subCategoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Storage)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", guard, productHandler.Create)
	products.Put("/:id", guard, productHandler.Update)
	products.Delete("/:id", guard, productHandler.Delete)
}
