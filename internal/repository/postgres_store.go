package repository

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"boba_pos/internal/models"

	"gorm.io/gorm"
)

type postgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Order("menuitemname").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *postgresStore) RecipeFor(menuItemID uint) ([]models.RecipeLine, error) {
	var lines []models.RecipeLine
	err := s.db.Where("menuitemid = ?", menuItemID).Order("ingredientid").Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe for menu item %d: %w", menuItemID, err)
	}
	return lines, nil
}

func (s *postgresStore) AddMenuItem(item *models.MenuItem) error {
	next, err := s.nextID(&models.MenuItem{}, "menuitemid")
	if err != nil {
		return err
	}
	item.ID = next
	return s.db.Create(item).Error
}

func (s *postgresStore) UpdateMenuItemPrice(menuItemID uint, newPrice float64) error {
	result := s.db.Model(&models.MenuItem{}).Where("menuitemid = ?", menuItemID).Update("price", newPrice)
	if result.Error != nil {
		return fmt.Errorf("failed to update menu item price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "menu item", ID: menuItemID}
	}
	return nil
}

func (s *postgresStore) ListIngredients() ([]models.Ingredient, error) {
	var items []models.Ingredient
	err := s.db.Order("ingredientname").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return items, nil
}

func (s *postgresStore) Ingredient(ingredientID uint) (*models.Ingredient, error) {
	var item models.Ingredient
	err := s.db.Where("ingredientid = ?", ingredientID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "ingredient", ID: ingredientID}
		}
		return nil, fmt.Errorf("failed to load ingredient %d: %w", ingredientID, err)
	}
	return &item, nil
}

func (s *postgresStore) AddIngredient(item *models.Ingredient) error {
	next, err := s.nextID(&models.Ingredient{}, "ingredientid")
	if err != nil {
		return err
	}
	item.ID = next
	return s.db.Create(item).Error
}

func (s *postgresStore) SetIngredientCount(ingredientID uint, newCount int) error {
	result := s.db.Model(&models.Ingredient{}).Where("ingredientid = ?", ingredientID).Update("ingredientcount", newCount)
	if result.Error != nil {
		return fmt.Errorf("failed to set ingredient count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "ingredient", ID: ingredientID}
	}
	return nil
}

// DecrementIngredient guards against driving the count below zero even
// though the coordinator validates first; the ledger never clamps.
func (s *postgresStore) DecrementIngredient(ingredientID uint, amount int) error {
	result := s.db.Model(&models.Ingredient{}).
		Where("ingredientid = ? AND ingredientcount >= ?", ingredientID, amount).
		Update("ingredientcount", gorm.Expr("ingredientcount - ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to decrement ingredient %d: %w", ingredientID, result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := s.Ingredient(ingredientID); err != nil {
			return err
		}
		return ErrInsufficientStock
	}
	return nil
}

func (s *postgresStore) ListEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := s.db.Order("employeename").Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *postgresStore) AddEmployee(employee *models.Employee) error {
	next, err := s.nextID(&models.Employee{}, "employeeid")
	if err != nil {
		return err
	}
	employee.ID = next
	return s.db.Create(employee).Error
}

func (s *postgresStore) UpdateEmployee(employee *models.Employee) error {
	result := s.db.Model(&models.Employee{}).Where("employeeid = ?", employee.ID).Updates(map[string]interface{}{
		"employeename": employee.Name,
		"employeerole": employee.Role,
		"hoursworked":  employee.HoursWorked,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "employee", ID: employee.ID}
	}
	return nil
}

func (s *postgresStore) DeleteEmployee(employeeID uint) error {
	result := s.db.Where("employeeid = ?", employeeID).Delete(&models.Employee{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "employee", ID: employeeID}
	}
	return nil
}

func (s *postgresStore) NextOrderID() (uint, error) {
	return s.nextID(&models.Order{}, "orderid")
}

func (s *postgresStore) NextOrderItemID() (uint, error) {
	return s.nextID(&models.OrderItem{}, "orderitemid")
}

func (s *postgresStore) InsertOrder(order *models.Order) error {
	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (s *postgresStore) InsertOrderItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (s *postgresStore) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Order("timeoforder DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *postgresStore) OrderItemsFor(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.Where("orderid = ?", orderID).Order("orderitemid").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	return items, nil
}

// CheckInventory is the read-only validation pass. Ingredients are checked
// in ascending id order so the first failure reported is deterministic.
func (s *postgresStore) CheckInventory(requirements map[uint]int) error {
	for _, id := range sortedIngredientIDs(requirements) {
		required := requirements[id]
		ingredient, err := s.Ingredient(id)
		if err != nil {
			return err
		}
		if ingredient.Count < required {
			return &InsufficientInventoryError{
				IngredientID: id,
				Available:    ingredient.Count,
				Required:     required,
			}
		}
	}
	return nil
}

func (s *postgresStore) ConsumeInventory(requirements map[uint]int) error {
	for _, id := range sortedIngredientIDs(requirements) {
		if err := s.DecrementIngredient(id, requirements[id]); err != nil {
			return err
		}
	}
	return nil
}

func (s *postgresStore) Atomically(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&postgresStore{db: tx})
	})
}

func (s *postgresStore) ProductUsage(since time.Time) (map[string]int, error) {
	var rows []struct {
		Name      string
		TotalSold int
	}
	err := s.db.Table("menuitems").
		Select("menuitems.menuitemname AS name, SUM(orderitems.quantity) AS total_sold").
		Joins("JOIN orderitems ON menuitems.menuitemid = orderitems.menuitemid").
		Joins("JOIN orders ON orderitems.orderid = orders.orderid").
		Where("orders.timeoforder >= ?", since).
		Group("menuitems.menuitemname").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load product usage: %w", err)
	}

	usage := make(map[string]int, len(rows))
	for _, row := range rows {
		usage[row.Name] = row.TotalSold
	}
	return usage, nil
}

func (s *postgresStore) TotalSales(start, end time.Time) (float64, error) {
	var total float64
	err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(totalcost), 0)").
		Where("timeoforder BETWEEN ? AND ?", start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to calculate total sales: %w", err)
	}
	return total, nil
}

// nextID computes max existing id + 1 (1 when the table is empty). This is
// only safe under the single-writer assumption; a multi-terminal deployment
// would need a real sequence.
func (s *postgresStore) nextID(model interface{}, column string) (uint, error) {
	var next uint
	err := s.db.Model(model).
		Select(fmt.Sprintf("COALESCE(MAX(%s), 0) + 1", column)).
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("failed to generate next %s: %w", column, err)
	}
	return next, nil
}

func sortedIngredientIDs(requirements map[uint]int) []uint {
	ids := make([]uint, 0, len(requirements))
	for id := range requirements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
