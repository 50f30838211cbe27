package main

import (
	"fmt"
	"log"

	"boba_pos/internal/config"
	"boba_pos/internal/database"
	"boba_pos/internal/models"
	"boba_pos/internal/repository"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set to initialize the database")
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.RecipeLine{},
		&models.Employee{},
		&models.Ingredient{},
		&models.MenuItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.Ingredient{},
		&models.RecipeLine{},
		&models.Employee{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load the demo shop
	store := repository.NewPostgresStore(db)

	fmt.Println("Seeding menu items...")
	for _, item := range repository.DemoMenuItems() {
		menuItem := item
		if err := store.AddMenuItem(&menuItem); err != nil {
			log.Fatal("Failed to seed menu item:", err)
		}
	}

	fmt.Println("Seeding inventory...")
	for _, item := range repository.DemoIngredients() {
		ingredient := item
		if err := store.AddIngredient(&ingredient); err != nil {
			log.Fatal("Failed to seed ingredient:", err)
		}
	}

	fmt.Println("Seeding employees...")
	for _, emp := range repository.DemoEmployees() {
		employee := emp
		if err := store.AddEmployee(&employee); err != nil {
			log.Fatal("Failed to seed employee:", err)
		}
	}

	fmt.Println("Seeding recipes...")
	recipes := repository.DemoRecipes()
	if err := db.Create(&recipes).Error; err != nil {
		log.Fatal("Failed to seed recipes:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
