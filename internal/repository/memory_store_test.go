package repository

import (
	"testing"
	"time"

	"boba_pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMenuItemIDs(t *testing.T) {
	store := NewMemoryStore()

	first := &models.MenuItem{Name: "Classic Milk Tea", Price: 4.50}
	second := &models.MenuItem{Name: "Taro Milk Tea", Price: 5.00}
	require.NoError(t, store.AddMenuItem(first))
	require.NoError(t, store.AddMenuItem(second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestMemoryStoreMenuOrderedByName(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.AddMenuItem(&models.MenuItem{Name: "Taro Milk Tea"}))
	require.NoError(t, store.AddMenuItem(&models.MenuItem{Name: "Classic Milk Tea"}))

	items, err := store.ListMenuItems()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Classic Milk Tea", items[0].Name)
	assert.Equal(t, "Taro Milk Tea", items[1].Name)
}

func TestMemoryStoreUpdatePriceNotFound(t *testing.T) {
	store := NewMemoryStore()

	err := store.UpdateMenuItemPrice(42, 3.00)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "menu item", notFound.Entity)
	assert.Equal(t, uint(42), notFound.ID)
}

func TestMemoryStoreRecipeForUnknownItemIsEmpty(t *testing.T) {
	store := NewMemoryStore()

	lines, err := store.RecipeFor(7)

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMemoryStoreDecrementGuardsNonNegative(t *testing.T) {
	store := NewMemoryStore()
	ingredient := &models.Ingredient{Name: "Black Tea", Count: 15}
	require.NoError(t, store.AddIngredient(ingredient))

	err := store.DecrementIngredient(ingredient.ID, 20)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	loaded, err := store.Ingredient(ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, loaded.Count)

	require.NoError(t, store.DecrementIngredient(ingredient.ID, 15))
	loaded, err = store.Ingredient(ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Count)
}

func TestMemoryStoreDecrementUnknownIngredient(t *testing.T) {
	store := NewMemoryStore()

	err := store.DecrementIngredient(9, 1)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMemoryStoreNextOrderIDIsPureRead(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.NextOrderID()
	require.NoError(t, err)
	second, err := store.NextOrderID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, uint(1), first)

	require.NoError(t, store.InsertOrder(&models.Order{ID: first, TimeOfOrder: time.Now(), EmployeeID: 1}))

	next, err := store.NextOrderID()
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}

func TestMemoryStoreOrdersMostRecentFirst(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	require.NoError(t, store.InsertOrder(&models.Order{ID: 1, TimeOfOrder: now.Add(-time.Hour), EmployeeID: 1}))
	require.NoError(t, store.InsertOrder(&models.Order{ID: 2, TimeOfOrder: now, EmployeeID: 1}))

	orders, err := store.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].ID)
	assert.Equal(t, uint(1), orders[1].ID)
}

func TestMemoryStoreInventoryChecksAlwaysSucceed(t *testing.T) {
	store := NewMemoryStore()
	ingredient := &models.Ingredient{Name: "Black Tea", Count: 5}
	require.NoError(t, store.AddIngredient(ingredient))

	requirements := map[uint]int{ingredient.ID: 1000}
	assert.NoError(t, store.CheckInventory(requirements))
	assert.NoError(t, store.ConsumeInventory(requirements))

	loaded, err := store.Ingredient(ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Count)
}

func TestMemoryStoreEmployeeCRUD(t *testing.T) {
	store := NewMemoryStore()
	employee := &models.Employee{Name: "Mike Chen", Role: "Cashier", HoursWorked: 120}
	require.NoError(t, store.AddEmployee(employee))
	require.Equal(t, uint(1), employee.ID)

	employee.HoursWorked = 130
	require.NoError(t, store.UpdateEmployee(employee))

	employees, err := store.ListEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, 130, employees[0].HoursWorked)

	require.NoError(t, store.DeleteEmployee(employee.ID))
	err = store.DeleteEmployee(employee.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMemoryStoreAtomicallyHasNoRollback(t *testing.T) {
	store := NewMemoryStore()

	err := store.Atomically(func(tx Store) error {
		require.NoError(t, tx.InsertOrder(&models.Order{ID: 1, TimeOfOrder: time.Now(), EmployeeID: 1}))
		return assert.AnError
	})
	require.Error(t, err)

	// The order inserted before the failure sticks; there is no unit of
	// work to roll back in memory mode.
	orders, listErr := store.ListOrders()
	require.NoError(t, listErr)
	assert.Len(t, orders, 1)
}

func TestDemoStoreSeed(t *testing.T) {
	store := NewDemoStore()

	menu, err := store.ListMenuItems()
	require.NoError(t, err)
	assert.Len(t, menu, 20)

	inventory, err := store.ListIngredients()
	require.NoError(t, err)
	assert.Len(t, inventory, 32)

	employees, err := store.ListEmployees()
	require.NoError(t, err)
	assert.Len(t, employees, 8)

	orders, err := store.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	// Most recent demo order first.
	assert.True(t, orders[0].TimeOfOrder.After(orders[1].TimeOfOrder))

	// Classic Milk Tea has a recipe; every line references a seeded
	// ingredient.
	recipe, err := store.RecipeFor(1)
	require.NoError(t, err)
	require.NotEmpty(t, recipe)
	for _, line := range recipe {
		_, err := store.Ingredient(line.IngredientID)
		assert.NoError(t, err)
	}
}

func TestDemoStoreUsageAndSales(t *testing.T) {
	store := NewDemoStore()

	usage, err := store.ProductUsage(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, usage["Classic Milk Tea"])
	assert.Equal(t, 1, usage["Mango Smoothie"])
	assert.Equal(t, 2, usage["Brown Sugar Boba"])

	total, err := store.TotalSales(time.Now().Add(-24*time.Hour), time.Now())
	require.NoError(t, err)
	assert.InDelta(t, 26.25, total, 0.001)
}
