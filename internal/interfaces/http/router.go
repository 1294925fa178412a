package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	LedgerUC    *sales.LedgerUseCase
	ReportUC    *sales.ReportUseCase
	DashboardUC *sales.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Cada ruta protegida se cablea con
// Gate(<operación>), cuyo conjunto de roles vive en la tabla Operations.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo administrador)
	userHandler := NewUserHandler(deps.AuthUC)
	protected.Post("/users", Gate("user.create"), userHandler.Create)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", Gate("category.list"), categoryHandler.List)
	categories.Post("/", Gate("category.create"), categoryHandler.Create)
	categories.Get("/:id", Gate("category.get"), categoryHandler.GetByID)
	categories.Put("/:id", Gate("category.update"), categoryHandler.Update)
	categories.Delete("/:id", Gate("category.delete"), categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", Gate("supplier.list"), supplierHandler.List)
	suppliers.Post("/", Gate("supplier.create"), supplierHandler.Create)
	suppliers.Get("/:id", Gate("supplier.get"), supplierHandler.GetByID)
	suppliers.Put("/:id", Gate("supplier.update"), supplierHandler.Update)
	suppliers.Delete("/:id", Gate("supplier.delete"), supplierHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", Gate("product.list"), productHandler.List)
	products.Post("/", Gate("product.create"), productHandler.Create)
	products.Get("/:id", Gate("product.get"), productHandler.GetByID)
	products.Put("/:id", Gate("product.update"), productHandler.Update)
	products.Delete("/:id", Gate("product.delete"), productHandler.Delete)

	// Customers. Las rutas /me van antes de /:id para que Fiber no capture
	// "me" como parámetro.
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	saleHandler := NewSaleHandler(deps.LedgerUC)
	customers.Get("/me", Gate("customer.me"), customerHandler.GetOwn)
	customers.Put("/me", Gate("customer.me.update"), customerHandler.UpdateOwn)
	customers.Get("/me/purchases", Gate("customer.me.purchases"), saleHandler.MyPurchases)
	customers.Get("/", Gate("customer.list"), customerHandler.List)
	customers.Post("/", Gate("customer.create"), customerHandler.Create)
	customers.Get("/:id", Gate("customer.get"), customerHandler.GetByID)
	customers.Put("/:id", Gate("customer.update"), customerHandler.Update)
	customers.Delete("/:id", Gate("customer.delete"), customerHandler.Delete)

	// Sales (libro append-only) y reportes
	salesGroup := protected.Group("/sales")
	reportHandler := NewReportHandler(deps.ReportUC)
	salesGroup.Post("/", Gate("sale.create"), saleHandler.Create)
	salesGroup.Get("/report", Gate("report.view"), reportHandler.Get)
	salesGroup.Get("/report/pdf", Gate("report.view"), reportHandler.GetPDF)
	salesGroup.Get("/:id", Gate("sale.get"), saleHandler.GetByID)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", Gate("dashboard.view"), dashboardHandler.Get)
}
