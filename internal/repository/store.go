package repository

import (
	"time"

	"boba_pos/internal/models"
)

// Store is the single data-access contract for the POS. Two implementations
// exist: PostgresStore against the durable schema and MemoryStore for demo
// or offline operation. The caller picks one at startup; nothing switches
// modes per call.
type Store interface {
	// Catalog
	ListMenuItems() ([]models.MenuItem, error)
	RecipeFor(menuItemID uint) ([]models.RecipeLine, error)
	AddMenuItem(item *models.MenuItem) error
	UpdateMenuItemPrice(menuItemID uint, newPrice float64) error

	// Inventory
	ListIngredients() ([]models.Ingredient, error)
	Ingredient(ingredientID uint) (*models.Ingredient, error)
	AddIngredient(item *models.Ingredient) error
	SetIngredientCount(ingredientID uint, newCount int) error
	DecrementIngredient(ingredientID uint, amount int) error

	// Employees
	ListEmployees() ([]models.Employee, error)
	AddEmployee(employee *models.Employee) error
	UpdateEmployee(employee *models.Employee) error
	DeleteEmployee(employeeID uint) error

	// Orders
	NextOrderID() (uint, error)
	NextOrderItemID() (uint, error)
	InsertOrder(order *models.Order) error
	InsertOrderItems(items []models.OrderItem) error
	ListOrders() ([]models.Order, error)
	OrderItemsFor(orderID uint) ([]models.OrderItem, error)

	// Order submission support. Requirements map ingredient id to the total
	// units the candidate order consumes. CheckInventory is the read-only
	// validation pass; ConsumeInventory performs the decrements. The memory
	// implementation treats both as always-succeed no-ops.
	CheckInventory(requirements map[uint]int) error
	ConsumeInventory(requirements map[uint]int) error

	// Atomically runs fn against a store bound to one unit of work. The
	// durable implementation rolls everything back if fn returns an error;
	// the memory implementation applies each call in place immediately.
	Atomically(fn func(Store) error) error

	// Reporting
	ProductUsage(since time.Time) (map[string]int, error)
	TotalSales(start, end time.Time) (float64, error)
}
