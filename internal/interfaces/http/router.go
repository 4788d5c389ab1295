package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tu-usuario/masterdata-pro/internal/application/auth"
	"github.com/tu-usuario/masterdata-pro/internal/application/bulk"
	"github.com/tu-usuario/masterdata-pro/internal/application/usecase"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	MaterialUC  *usecase.MaterialUseCase
	SupplierUC  *usecase.SupplierUseCase
	ImportUC    *bulk.SupplierImportUseCase
	Permissions *usecase.PermissionService
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Métricas Prometheus (público)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Rutas protegidas: Bearer Token + permisos resueltos una vez por request
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret), LoadPermissions(deps.Permissions))

	// Dashboard: pantalla de aterrizaje y destino de los rechazos por permiso
	dashboardHandler := NewDashboardHandler()
	protected.Get("/dashboard", dashboardHandler.Show)

	// Materials (nivel 0 se redirige al dashboard)
	materials := protected.Group("/materials", RequireModuleAccess(entity.ModuleMaterials))
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Get("/create", materialHandler.CreateForm)
	materials.Post("/create", materialHandler.Create)
	materials.Get("/:id/edit", materialHandler.EditForm)
	materials.Post("/:id/edit", materialHandler.Update)
	materials.Get("/:id/delete", materialHandler.ConfirmDelete)
	materials.Post("/:id/delete", materialHandler.Delete)

	// Suppliers (nivel 0 se redirige al dashboard)
	suppliers := protected.Group("/suppliers", RequireModuleAccess(entity.ModuleSuppliers))
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.ImportUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/create", supplierHandler.CreateForm)
	suppliers.Post("/create", supplierHandler.Create)
	// rutas fijas antes que las paramétricas
	suppliers.Post("/bulk_create", supplierHandler.BulkCreate)
	suppliers.Get("/bulk/template", supplierHandler.BulkTemplate)
	suppliers.Get("/:id/edit", supplierHandler.EditForm)
	suppliers.Post("/:id/edit", supplierHandler.Update)
	suppliers.Get("/:id/delete", supplierHandler.ConfirmDelete)
	suppliers.Post("/:id/delete", supplierHandler.Delete)
}
