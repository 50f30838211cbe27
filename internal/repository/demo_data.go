package repository

import (
	"time"

	"boba_pos/internal/models"
)

// NewDemoStore returns a memory store preloaded with the demo shop: the
// full drink menu, back-room inventory, staff roster and a few recent
// orders, so the application is usable the moment it falls back to memory
// mode.
func NewDemoStore() Store {
	store := NewMemoryStore()

	for _, item := range DemoMenuItems() {
		menuItem := item
		_ = store.AddMenuItem(&menuItem)
	}
	for _, item := range DemoIngredients() {
		ingredient := item
		_ = store.AddIngredient(&ingredient)
	}
	for _, emp := range DemoEmployees() {
		employee := emp
		_ = store.AddEmployee(&employee)
	}

	ms := store.(*memoryStore)
	ms.recipes = DemoRecipes()

	seedDemoOrders(store)
	return store
}

func DemoMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{DrinkCategory: "Milk Tea", Name: "Classic Milk Tea", Price: 4.50},
		{DrinkCategory: "Milk Tea", Name: "Taro Milk Tea", Price: 5.00},
		{DrinkCategory: "Milk Tea", Name: "Thai Milk Tea", Price: 4.75},
		{DrinkCategory: "Milk Tea", Name: "Matcha Milk Tea", Price: 5.25},
		{DrinkCategory: "Milk Tea", Name: "Honeydew Milk Tea", Price: 4.75},
		{DrinkCategory: "Fruit Tea", Name: "Passion Fruit Tea", Price: 4.25},
		{DrinkCategory: "Fruit Tea", Name: "Mango Green Tea", Price: 4.50},
		{DrinkCategory: "Fruit Tea", Name: "Lychee Black Tea", Price: 4.25},
		{DrinkCategory: "Fruit Tea", Name: "Peach Oolong Tea", Price: 4.75},
		{DrinkCategory: "Fruit Tea", Name: "Strawberry Tea", Price: 4.50},
		{DrinkCategory: "Coffee", Name: "Iced Coffee", Price: 3.75},
		{DrinkCategory: "Coffee", Name: "Coffee Milk Tea", Price: 5.00},
		{DrinkCategory: "Coffee", Name: "Caramel Macchiato", Price: 5.50},
		{DrinkCategory: "Smoothie", Name: "Mango Smoothie", Price: 5.25},
		{DrinkCategory: "Smoothie", Name: "Avocado Smoothie", Price: 5.50},
		{DrinkCategory: "Smoothie", Name: "Taro Smoothie", Price: 5.25},
		{DrinkCategory: "Specialty", Name: "Brown Sugar Boba", Price: 6.00},
		{DrinkCategory: "Specialty", Name: "Cheese Foam Tea", Price: 5.75},
		{DrinkCategory: "Specialty", Name: "Dirty Boba", Price: 6.25},
		{DrinkCategory: "Specialty", Name: "Seasonal Special", Price: 6.50},
	}
}

func DemoIngredients() []models.Ingredient {
	return []models.Ingredient{
		{Name: "Black Tea", Count: 150},
		{Name: "Green Tea", Count: 120},
		{Name: "Oolong Tea", Count: 100},
		{Name: "White Tea", Count: 80},
		{Name: "Whole Milk", Count: 200},
		{Name: "Almond Milk", Count: 75},
		{Name: "Coconut Milk", Count: 60},
		{Name: "Oat Milk", Count: 45},
		{Name: "Cane Sugar", Count: 300},
		{Name: "Brown Sugar", Count: 150},
		{Name: "Honey", Count: 80},
		{Name: "Mango Syrup", Count: 90},
		{Name: "Strawberry Syrup", Count: 85},
		{Name: "Passion Fruit Syrup", Count: 70},
		{Name: "Lychee Syrup", Count: 65},
		{Name: "Taro Powder", Count: 110},
		{Name: "Matcha Powder", Count: 95},
		{Name: "Tapioca Pearls (Boba)", Count: 500},
		{Name: "Lychee Jelly", Count: 200},
		{Name: "Grass Jelly", Count: 180},
		{Name: "Pudding", Count: 150},
		{Name: "Aloe Vera", Count: 120},
		{Name: "Red Bean", Count: 100},
		{Name: "Popping Boba (Mango)", Count: 300},
		{Name: "Popping Boba (Strawberry)", Count: 280},
		{Name: "Crystal Boba", Count: 250},
		{Name: "Plastic Cups (16oz)", Count: 1000},
		{Name: "Plastic Cups (20oz)", Count: 800},
		{Name: "Plastic Lids", Count: 1200},
		{Name: "Straws", Count: 2000},
		{Name: "Cup Sleeves", Count: 500},
		{Name: "Napkins", Count: 800},
	}
}

func DemoEmployees() []models.Employee {
	return []models.Employee{
		{Name: "John Smith", Role: "Manager", HoursWorked: 160},
		{Name: "Sarah Johnson", Role: "Assistant Manager", HoursWorked: 140},
		{Name: "Mike Chen", Role: "Cashier", HoursWorked: 120},
		{Name: "Emily Davis", Role: "Cashier", HoursWorked: 100},
		{Name: "Alex Rodriguez", Role: "Barista", HoursWorked: 110},
		{Name: "Lisa Wang", Role: "Barista", HoursWorked: 95},
		{Name: "David Kim", Role: "Part-time Cashier", HoursWorked: 60},
		{Name: "Jennifer Lee", Role: "Part-time Barista", HoursWorked: 45},
	}
}

// DemoRecipes covers the classics; quantities are per drink.
func DemoRecipes() []models.RecipeLine {
	return []models.RecipeLine{
		// Classic Milk Tea: black tea, whole milk, cane sugar, boba
		{MenuItemID: 1, IngredientID: 1, Quantity: 2},
		{MenuItemID: 1, IngredientID: 5, Quantity: 1},
		{MenuItemID: 1, IngredientID: 9, Quantity: 1},
		{MenuItemID: 1, IngredientID: 18, Quantity: 3},
		// Taro Milk Tea
		{MenuItemID: 2, IngredientID: 16, Quantity: 2},
		{MenuItemID: 2, IngredientID: 5, Quantity: 1},
		{MenuItemID: 2, IngredientID: 18, Quantity: 3},
		// Matcha Milk Tea
		{MenuItemID: 4, IngredientID: 17, Quantity: 2},
		{MenuItemID: 4, IngredientID: 5, Quantity: 1},
		// Mango Green Tea
		{MenuItemID: 7, IngredientID: 2, Quantity: 2},
		{MenuItemID: 7, IngredientID: 12, Quantity: 1},
		// Brown Sugar Boba
		{MenuItemID: 17, IngredientID: 10, Quantity: 2},
		{MenuItemID: 17, IngredientID: 5, Quantity: 1},
		{MenuItemID: 17, IngredientID: 18, Quantity: 4},
	}
}

func seedDemoOrders(store Store) {
	now := time.Now()
	_, week := now.ISOWeek()

	samples := []struct {
		placedAt   time.Time
		employeeID uint
		totalCost  float64
		menuItemID uint
		quantity   int
	}{
		{now.Add(-60 * time.Minute), 3, 9.00, 1, 2},   // 2x Classic Milk Tea
		{now.Add(-30 * time.Minute), 4, 5.25, 14, 1},  // 1x Mango Smoothie
		{now.Add(-15 * time.Minute), 3, 12.00, 17, 2}, // 2x Brown Sugar Boba
	}

	for _, sample := range samples {
		orderID, _ := store.NextOrderID()
		itemID, _ := store.NextOrderItemID()
		_ = store.InsertOrder(&models.Order{
			ID:          orderID,
			TimeOfOrder: sample.placedAt,
			EmployeeID:  sample.employeeID,
			TotalCost:   sample.totalCost,
			OrderWeek:   week,
		})
		_ = store.InsertOrderItems([]models.OrderItem{{
			ID:         itemID,
			OrderID:    orderID,
			MenuItemID: sample.menuItemID,
			Quantity:   sample.quantity,
		}})
	}
}
