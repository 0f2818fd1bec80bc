package routes

import (
	"lendshare/internal/adapters/http/handlers"
	"lendshare/internal/adapters/persistence/repositories"
	"lendshare/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup wires repositories, services and handlers and registers all
// routes on the app.
func Setup(app *fiber.App, store *repositories.Store) {
	// Initialize services
	userService := services.NewUserService(store.Users)
	itemService := services.NewItemService(store.Items, store.Users)
	loanService := services.NewLoanService(store.Loans, store.Items, store.Users)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store.Backend)
	userHandler := handlers.NewUserHandler(userService)
	itemHandler := handlers.NewItemHandler(itemService)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health
	app.Get("/health", healthHandler.HealthCheck)

	// Users
	users := app.Group("/users")
	users.Post("/", userHandler.CreateUser)
	users.Get("/", userHandler.ListUsers)

	// Items
	items := app.Group("/items")
	items.Post("/", itemHandler.CreateItem)
	items.Get("/", itemHandler.ListItems)

	// Loans
	loans := app.Group("/loans")
	loans.Post("/", loanHandler.BorrowItem)
	loans.Get("/", loanHandler.ListLoans)
	loans.Post("/return/:item_id", loanHandler.ReturnItem)
}
