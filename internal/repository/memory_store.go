package repository

import (
	"sort"
	"sync"
	"time"

	"boba_pos/internal/models"
)

// memoryStore is the fallback data provider used when no database is
// reachable. It keeps everything in process-local slices with the same
// max+1 id rules as the durable store. It has no multi-step atomicity:
// every call mutates in place immediately. Inventory checks always succeed
// in this mode, so an offline terminal can keep ringing up orders.
type memoryStore struct {
	mu sync.RWMutex

	menuItems   []models.MenuItem
	recipes     []models.RecipeLine
	ingredients []models.Ingredient
	employees   []models.Employee
	orders      []models.Order
	orderItems  []models.OrderItem
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) ListMenuItems() ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, len(s.menuItems))
	copy(items, s.menuItems)
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *memoryStore) RecipeFor(menuItemID uint) ([]models.RecipeLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lines []models.RecipeLine
	for _, line := range s.recipes {
		if line.MenuItemID == menuItemID {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].IngredientID < lines[j].IngredientID })
	return lines, nil
}

func (s *memoryStore) AddMenuItem(item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = nextMemoryID(len(s.menuItems), func(i int) uint { return s.menuItems[i].ID })
	s.menuItems = append(s.menuItems, *item)
	return nil
}

func (s *memoryStore) UpdateMenuItemPrice(menuItemID uint, newPrice float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menuItems {
		if s.menuItems[i].ID == menuItemID {
			s.menuItems[i].Price = newPrice
			return nil
		}
	}
	return &NotFoundError{Entity: "menu item", ID: menuItemID}
}

func (s *memoryStore) ListIngredients() ([]models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Ingredient, len(s.ingredients))
	copy(items, s.ingredients)
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *memoryStore) Ingredient(ingredientID uint) (*models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.ingredients {
		if item.ID == ingredientID {
			found := item
			return &found, nil
		}
	}
	return nil, &NotFoundError{Entity: "ingredient", ID: ingredientID}
}

func (s *memoryStore) AddIngredient(item *models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = nextMemoryID(len(s.ingredients), func(i int) uint { return s.ingredients[i].ID })
	s.ingredients = append(s.ingredients, *item)
	return nil
}

func (s *memoryStore) SetIngredientCount(ingredientID uint, newCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ingredients {
		if s.ingredients[i].ID == ingredientID {
			s.ingredients[i].Count = newCount
			return nil
		}
	}
	return &NotFoundError{Entity: "ingredient", ID: ingredientID}
}

func (s *memoryStore) DecrementIngredient(ingredientID uint, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ingredients {
		if s.ingredients[i].ID == ingredientID {
			if s.ingredients[i].Count < amount {
				return ErrInsufficientStock
			}
			s.ingredients[i].Count -= amount
			return nil
		}
	}
	return &NotFoundError{Entity: "ingredient", ID: ingredientID}
}

func (s *memoryStore) ListEmployees() ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees := make([]models.Employee, len(s.employees))
	copy(employees, s.employees)
	sort.Slice(employees, func(i, j int) bool { return employees[i].Name < employees[j].Name })
	return employees, nil
}

func (s *memoryStore) AddEmployee(employee *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee.ID = nextMemoryID(len(s.employees), func(i int) uint { return s.employees[i].ID })
	s.employees = append(s.employees, *employee)
	return nil
}

func (s *memoryStore) UpdateEmployee(employee *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == employee.ID {
			s.employees[i] = *employee
			return nil
		}
	}
	return &NotFoundError{Entity: "employee", ID: employee.ID}
}

func (s *memoryStore) DeleteEmployee(employeeID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == employeeID {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Entity: "employee", ID: employeeID}
}

func (s *memoryStore) NextOrderID() (uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return nextMemoryID(len(s.orders), func(i int) uint { return s.orders[i].ID }), nil
}

func (s *memoryStore) NextOrderItemID() (uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return nextMemoryID(len(s.orderItems), func(i int) uint { return s.orderItems[i].ID }), nil
}

func (s *memoryStore) InsertOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, *order)
	return nil
}

func (s *memoryStore) InsertOrderItems(items []models.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderItems = append(s.orderItems, items...)
	return nil
}

func (s *memoryStore) ListOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	sort.Slice(orders, func(i, j int) bool { return orders[i].TimeOfOrder.After(orders[j].TimeOfOrder) })
	return orders, nil
}

func (s *memoryStore) OrderItemsFor(orderID uint) ([]models.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.OrderItem
	for _, item := range s.orderItems {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// CheckInventory always succeeds in fallback mode: an offline terminal has
// no authoritative stock counts to refuse an order against.
func (s *memoryStore) CheckInventory(requirements map[uint]int) error {
	return nil
}

// ConsumeInventory is a no-op in fallback mode; demo counts stay as seeded.
func (s *memoryStore) ConsumeInventory(requirements map[uint]int) error {
	return nil
}

// Atomically has no transactional behavior here; each call inside fn has
// already mutated the store by the time fn returns.
func (s *memoryStore) Atomically(fn func(Store) error) error {
	return fn(s)
}

func (s *memoryStore) ProductUsage(since time.Time) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[uint]int)
	for _, item := range s.orderItems {
		for _, order := range s.orders {
			if order.ID == item.OrderID && !order.TimeOfOrder.Before(since) {
				counts[item.MenuItemID] += item.Quantity
				break
			}
		}
	}

	usage := make(map[string]int, len(counts))
	for _, menuItem := range s.menuItems {
		if sold, ok := counts[menuItem.ID]; ok {
			usage[menuItem.Name] = sold
		}
	}
	return usage, nil
}

func (s *memoryStore) TotalSales(start, end time.Time) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, order := range s.orders {
		if !order.TimeOfOrder.Before(start) && !order.TimeOfOrder.After(end) {
			total += order.TotalCost
		}
	}
	return total, nil
}

func nextMemoryID(n int, idAt func(int) uint) uint {
	var max uint
	for i := 0; i < n; i++ {
		if id := idAt(i); id > max {
			max = id
		}
	}
	return max + 1
}
