package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arquetipo/clientes-api/internal/application/customer"
	"github.com/arquetipo/clientes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Customers    *customer.Handler
	OperationsUC *usecase.OperationsUseCase // nil si OPERATIONS_API_BASE_ADDRESS no está configurada
	Tokens       TokenVerifier
}

// Router registra las rutas de la API.
//   - Lecturas y operaciones: públicas.
//   - POST/PUT/PATCH: Bearer token.
//   - DELETE: Bearer token con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	auth := AuthMiddleware(deps.Tokens)
	adminOnly := RequireRole("admin")

	customerHandler := NewCustomerHandler(deps.Customers)

	// v1
	v1 := api.Group("/v1")
	v1.Get("/customers", customerHandler.ListV1)
	v1.Get("/customers/:id", customerHandler.GetByIDV1)
	v1.Post("/customers", auth, customerHandler.CreateV1)
	v1.Put("/customers", auth, customerHandler.UpdateV1)
	v1.Delete("/customers/:id", auth, adminOnly, customerHandler.Delete)

	// v2
	v2 := api.Group("/v2")
	v2.Get("/customers", customerHandler.ListV2)
	v2.Get("/customers/:id", customerHandler.GetByIDV2)
	v2.Post("/customers", auth, customerHandler.CreateV2)
	v2.Patch("/customers", auth, customerHandler.PatchV2)
	v2.Delete("/customers/:id", auth, adminOnly, customerHandler.Delete)

	// Operaciones (API externa)
	opsHandler := NewOperationsHandler(deps.OperationsUC)
	ops := v1.Group("/operations")
	ops.Get("/exchange-rate", opsHandler.ExchangeRate)
	ops.Get("/legal-holidays", opsHandler.LegalHolidays)
}
