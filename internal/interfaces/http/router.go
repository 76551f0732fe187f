package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/store"
	"github.com/jhoicas/store-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreSvc *store.Service
	AuthUC   *auth.AuthUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Basic o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	// Stores, aisles y shelves (protegido)
	storeHandler := NewStoreHandler(deps.StoreSvc, deps.AuthUC)
	stores := protected.Group("/stores")
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:storeId", storeHandler.GetByID)
	stores.Put("/:storeId", storeHandler.Update)
	stores.Delete("/:storeId", storeHandler.Delete)
	stores.Post("/:storeId/aisles", storeHandler.CreateAisle)
	stores.Get("/:storeId/aisles/:aisleNumber", storeHandler.GetAisle)
	stores.Post("/:storeId/aisles/:aisleNumber/shelves", storeHandler.CreateShelf)
	stores.Get("/:storeId/aisles/:aisleNumber/shelves/:shelfId", storeHandler.GetShelf)

	// Products e inventory (protegido)
	productHandler := NewProductHandler(deps.StoreSvc)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/", productHandler.CreateInventory)
	invGroup.Get("/:id", productHandler.GetInventory)
	invGroup.Put("/:id", productHandler.UpdateInventory)

	// Customers y baskets (protegido)
	customerHandler := NewCustomerHandler(deps.StoreSvc)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Get("/:id/basket", customerHandler.GetBasket)
	customers.Post("/:id/basket/:basketId", customerHandler.AssignBasket)
	baskets := protected.Group("/baskets")
	baskets.Post("/", customerHandler.CreateBasket)
	baskets.Get("/:id", customerHandler.ShowBasket)
	baskets.Post("/:id/items", customerHandler.AddBasketItem)
	baskets.Delete("/:id/items", customerHandler.RemoveBasketItem)
	baskets.Post("/:id/clear", customerHandler.ClearBasket)

	// Devices (protegido)
	deviceHandler := NewDeviceHandler(deps.StoreSvc)
	devices := protected.Group("/devices")
	devices.Post("/", deviceHandler.Create)
	devices.Get("/:id", deviceHandler.GetByID)
	devices.Post("/:id/events", deviceHandler.RaiseEvent)
	devices.Post("/:id/commands", deviceHandler.IssueCommand)

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", authHandler.ListUsers)
	users.Get("/:email", authHandler.GetUser)
	users.Put("/:email", authHandler.UpdateUser)
	users.Delete("/:email", authHandler.DeleteUser)
}
