package main

import (
	"log"
	"time"

	"boba_pos/internal/config"
	"boba_pos/internal/database"
	"boba_pos/internal/handlers"
	"boba_pos/internal/migrations"
	"boba_pos/internal/redis"
	"boba_pos/internal/repository"
	"boba_pos/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Pick the data store once at startup. A missing DATABASE_URL or a
	// failed connection is not fatal: the process runs against the seeded
	// in-memory store instead.
	store, storeMode := openStore(cfg)

	// Initialize the menu cache (optional)
	var cache *redis.Client
	if storeMode == "database" {
		c, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.MenuCacheTTL)*time.Second)
		if err != nil {
			log.Printf("Warning: Redis unavailable, menu cache disabled: %v", err)
		} else {
			cache = c
			defer cache.Close()
		}
	}

	// Initialize services
	catalogService := services.NewCatalogService(store, cache)
	inventoryService := services.NewInventoryService(store)
	employeeService := services.NewEmployeeService(store)
	orderService := services.NewOrderService(store)
	reportService := services.NewReportService(store)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(catalogService, inventoryService, employeeService, orderService, reportService, storeMode)

	// Setup routes
	router := gin.Default()

	router.GET("/", apiHandler.Health)

	api := router.Group("/api")
	{
		api.GET("/menu", apiHandler.GetMenu)
		api.POST("/menu", apiHandler.AddMenuItem)
		api.GET("/menu/:id/recipe", apiHandler.GetRecipe)
		api.PUT("/menu/:id/price", apiHandler.UpdateMenuItemPrice)

		api.GET("/inventory", apiHandler.GetInventory)
		api.POST("/inventory", apiHandler.AddIngredient)
		api.PUT("/inventory/:id", apiHandler.SetIngredientCount)

		api.GET("/employees", apiHandler.GetEmployees)
		api.POST("/employees", apiHandler.AddEmployee)
		api.PUT("/employees/:id", apiHandler.UpdateEmployee)
		api.DELETE("/employees/:id", apiHandler.DeleteEmployee)

		api.GET("/orders", apiHandler.GetOrders)
		api.POST("/orders", apiHandler.SubmitOrder)
		api.GET("/orders/:id/items", apiHandler.GetOrderItems)

		api.GET("/analytics/product-usage", apiHandler.GetProductUsage)
		api.GET("/analytics/total-sales", apiHandler.GetTotalSales)
	}

	// Start server
	log.Printf("Server starting on port %s (store: %s)", cfg.ServerPort, storeMode)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func openStore(cfg *config.Config) (repository.Store, string) {
	if cfg.DatabaseURL == "" {
		log.Println("No DATABASE_URL configured. Using in-memory demo store.")
		return repository.NewDemoStore(), "memory"
	}

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Println("Switching to in-memory demo store...")
		return repository.NewDemoStore(), "memory"
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Printf("Database migration failed: %v", err)
		log.Println("Switching to in-memory demo store...")
		return repository.NewDemoStore(), "memory"
	}

	return repository.NewPostgresStore(db), "database"
}
