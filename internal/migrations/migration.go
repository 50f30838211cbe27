package migrations

import (
	"log"

	"boba_pos/internal/models"
	"boba_pos/internal/repository"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and, on a fresh database, loads the demo
// shop so a new install is immediately usable. Seeding is skipped when any
// menu items already exist.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.MenuItem{},
		&models.Ingredient{},
		&models.RecipeLine{},
		&models.Employee{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Menu already populated, skipping seed data")
		return nil
	}

	log.Println("Seeding demo menu, inventory and employees...")
	store := repository.NewPostgresStore(db)

	for _, item := range repository.DemoMenuItems() {
		menuItem := item
		if err := store.AddMenuItem(&menuItem); err != nil {
			return err
		}
	}
	for _, item := range repository.DemoIngredients() {
		ingredient := item
		if err := store.AddIngredient(&ingredient); err != nil {
			return err
		}
	}
	for _, emp := range repository.DemoEmployees() {
		employee := emp
		if err := store.AddEmployee(&employee); err != nil {
			return err
		}
	}
	recipes := repository.DemoRecipes()
	if err := db.Create(&recipes).Error; err != nil {
		return err
	}

	log.Println("Demo data seeded successfully!")
	return nil
}
