package services

import (
	"errors"
	"testing"
	"time"

	"boba_pos/internal/models"
	"boba_pos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDurableStore mimics the durable store's semantics in memory: real
// inventory checks, real decrements, and a snapshot-based Atomically that
// restores all state when the callback fails. Store faults are injected
// through the fail* flags.
type fakeDurableStore struct {
	menuItems   []models.MenuItem
	recipes     []models.RecipeLine
	ingredients map[uint]models.Ingredient
	orders      []models.Order
	orderItems  []models.OrderItem

	failInsertOrder      bool
	failInsertOrderItems bool
}

func newFakeDurableStore() *fakeDurableStore {
	return &fakeDurableStore{ingredients: make(map[uint]models.Ingredient)}
}

func (f *fakeDurableStore) ListMenuItems() ([]models.MenuItem, error) {
	return append([]models.MenuItem(nil), f.menuItems...), nil
}

func (f *fakeDurableStore) RecipeFor(menuItemID uint) ([]models.RecipeLine, error) {
	var lines []models.RecipeLine
	for _, line := range f.recipes {
		if line.MenuItemID == menuItemID {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (f *fakeDurableStore) AddMenuItem(item *models.MenuItem) error {
	item.ID = uint(len(f.menuItems) + 1)
	f.menuItems = append(f.menuItems, *item)
	return nil
}

func (f *fakeDurableStore) UpdateMenuItemPrice(menuItemID uint, newPrice float64) error {
	for i := range f.menuItems {
		if f.menuItems[i].ID == menuItemID {
			f.menuItems[i].Price = newPrice
			return nil
		}
	}
	return &repository.NotFoundError{Entity: "menu item", ID: menuItemID}
}

func (f *fakeDurableStore) ListIngredients() ([]models.Ingredient, error) {
	var items []models.Ingredient
	for _, item := range f.ingredients {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeDurableStore) Ingredient(ingredientID uint) (*models.Ingredient, error) {
	item, ok := f.ingredients[ingredientID]
	if !ok {
		return nil, &repository.NotFoundError{Entity: "ingredient", ID: ingredientID}
	}
	return &item, nil
}

func (f *fakeDurableStore) AddIngredient(item *models.Ingredient) error {
	item.ID = uint(len(f.ingredients) + 1)
	f.ingredients[item.ID] = *item
	return nil
}

func (f *fakeDurableStore) SetIngredientCount(ingredientID uint, newCount int) error {
	item, ok := f.ingredients[ingredientID]
	if !ok {
		return &repository.NotFoundError{Entity: "ingredient", ID: ingredientID}
	}
	item.Count = newCount
	f.ingredients[ingredientID] = item
	return nil
}

func (f *fakeDurableStore) DecrementIngredient(ingredientID uint, amount int) error {
	item, ok := f.ingredients[ingredientID]
	if !ok {
		return &repository.NotFoundError{Entity: "ingredient", ID: ingredientID}
	}
	if item.Count < amount {
		return repository.ErrInsufficientStock
	}
	item.Count -= amount
	f.ingredients[ingredientID] = item
	return nil
}

func (f *fakeDurableStore) ListEmployees() ([]models.Employee, error) { return nil, nil }
func (f *fakeDurableStore) AddEmployee(*models.Employee) error        { return nil }
func (f *fakeDurableStore) UpdateEmployee(*models.Employee) error     { return nil }
func (f *fakeDurableStore) DeleteEmployee(uint) error                 { return nil }

func (f *fakeDurableStore) NextOrderID() (uint, error) {
	var max uint
	for _, order := range f.orders {
		if order.ID > max {
			max = order.ID
		}
	}
	return max + 1, nil
}

func (f *fakeDurableStore) NextOrderItemID() (uint, error) {
	var max uint
	for _, item := range f.orderItems {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1, nil
}

func (f *fakeDurableStore) InsertOrder(order *models.Order) error {
	if f.failInsertOrder {
		return errors.New("simulated insert failure")
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeDurableStore) InsertOrderItems(items []models.OrderItem) error {
	if f.failInsertOrderItems {
		return errors.New("simulated insert failure")
	}
	f.orderItems = append(f.orderItems, items...)
	return nil
}

func (f *fakeDurableStore) ListOrders() ([]models.Order, error) {
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeDurableStore) OrderItemsFor(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	for _, item := range f.orderItems {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeDurableStore) CheckInventory(requirements map[uint]int) error {
	var ids []uint
	for id := range requirements {
		ids = append(ids, id)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}
	for _, id := range ids {
		item, ok := f.ingredients[id]
		if !ok {
			return &repository.NotFoundError{Entity: "ingredient", ID: id}
		}
		if item.Count < requirements[id] {
			return &repository.InsufficientInventoryError{
				IngredientID: id,
				Available:    item.Count,
				Required:     requirements[id],
			}
		}
	}
	return nil
}

func (f *fakeDurableStore) ConsumeInventory(requirements map[uint]int) error {
	for id, amount := range requirements {
		if err := f.DecrementIngredient(id, amount); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeDurableStore) Atomically(fn func(repository.Store) error) error {
	snapshot := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(snapshot)
		return err
	}
	return nil
}

func (f *fakeDurableStore) ProductUsage(time.Time) (map[string]int, error) { return nil, nil }
func (f *fakeDurableStore) TotalSales(time.Time, time.Time) (float64, error) {
	return 0, nil
}

type fakeSnapshot struct {
	ingredients map[uint]models.Ingredient
	orders      []models.Order
	orderItems  []models.OrderItem
}

func (f *fakeDurableStore) snapshot() fakeSnapshot {
	ingredients := make(map[uint]models.Ingredient, len(f.ingredients))
	for id, item := range f.ingredients {
		ingredients[id] = item
	}
	return fakeSnapshot{
		ingredients: ingredients,
		orders:      append([]models.Order(nil), f.orders...),
		orderItems:  append([]models.OrderItem(nil), f.orderItems...),
	}
}

func (f *fakeDurableStore) restore(s fakeSnapshot) {
	f.ingredients = s.ingredients
	f.orders = s.orders
	f.orderItems = s.orderItems
}

// milkTeaStore sets up the catalog from the reference scenario: one menu
// item requiring 10 units of ingredient 1 per drink.
func milkTeaStore(t *testing.T, onHand int) *fakeDurableStore {
	t.Helper()
	store := newFakeDurableStore()
	require.NoError(t, store.AddMenuItem(&models.MenuItem{DrinkCategory: "Milk Tea", Name: "Milk Tea", Price: 4.50}))
	require.NoError(t, store.AddIngredient(&models.Ingredient{Name: "Black Tea", Count: onHand}))
	store.recipes = append(store.recipes, models.RecipeLine{MenuItemID: 1, IngredientID: 1, Quantity: 10})
	return store
}

func TestSubmitOrderEmpty(t *testing.T) {
	store := milkTeaStore(t, 15)
	svc := NewOrderService(store)

	_, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, nil)

	assert.ErrorIs(t, err, repository.ErrEmptyOrder)
	assert.Empty(t, store.orders)
}

func TestSubmitOrderInvalidQuantity(t *testing.T) {
	store := milkTeaStore(t, 15)
	svc := NewOrderService(store)

	_, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 0},
	})

	assert.Error(t, err)
	assert.Empty(t, store.orders)
}

func TestSubmitOrderUnknownMenuItem(t *testing.T) {
	store := milkTeaStore(t, 15)
	svc := NewOrderService(store)

	_, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 99, Quantity: 1},
	})

	var notFound *repository.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(99), notFound.ID)
	assert.Empty(t, store.orders)
}

func TestSubmitOrderInsufficientInventory(t *testing.T) {
	// 2 drinks need 20 units, only 15 on hand.
	store := milkTeaStore(t, 15)
	svc := NewOrderService(store)

	_, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 2},
	})

	var insufficient *repository.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, uint(1), insufficient.IngredientID)
	assert.Equal(t, 15, insufficient.Available)
	assert.Equal(t, 20, insufficient.Required)

	// No partial writes of any kind.
	assert.Empty(t, store.orders)
	assert.Empty(t, store.orderItems)
	assert.Equal(t, 15, store.ingredients[1].Count)
}

func TestSubmitOrderSuccess(t *testing.T) {
	store := milkTeaStore(t, 25)
	svc := NewOrderService(store)

	persisted, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), persisted.ID)
	assert.Equal(t, 9.00, persisted.TotalCost)
	assert.False(t, persisted.TimeOfOrder.IsZero())
	_, wantWeek := persisted.TimeOfOrder.ISOWeek()
	assert.Equal(t, wantWeek, persisted.OrderWeek)

	require.Len(t, store.orders, 1)
	require.Len(t, store.orderItems, 1)
	assert.Equal(t, persisted.ID, store.orderItems[0].OrderID)
	assert.Equal(t, 5, store.ingredients[1].Count)
}

func TestSubmitOrderAssignsSequentialIDs(t *testing.T) {
	store := milkTeaStore(t, 1000)
	svc := NewOrderService(store)

	first, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 1},
	})
	require.NoError(t, err)
	second, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 1},
		{MenuItemID: 1, Quantity: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	// Order item ids are scoped globally, not per order.
	require.Len(t, store.orderItems, 3)
	assert.Equal(t, uint(1), store.orderItems[0].ID)
	assert.Equal(t, uint(2), store.orderItems[1].ID)
	assert.Equal(t, uint(3), store.orderItems[2].ID)
}

func TestSubmitOrderSumsSharedIngredients(t *testing.T) {
	// Two line items of the same drink: each alone fits in 15 units, their
	// combined 30-unit demand must not.
	store := milkTeaStore(t, 15)
	svc := NewOrderService(store)

	_, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 1},
		{MenuItemID: 1, Quantity: 2},
	})

	var insufficient *repository.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 30, insufficient.Required)
	assert.Equal(t, 15, store.ingredients[1].Count)
}

func TestSubmitOrderNoRecipeMeansNoConstraint(t *testing.T) {
	store := newFakeDurableStore()
	require.NoError(t, store.AddMenuItem(&models.MenuItem{Name: "Water", Price: 1.00}))
	svc := NewOrderService(store)

	persisted, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 5},
	})

	require.NoError(t, err)
	assert.Equal(t, 5.00, persisted.TotalCost)
}

func TestSubmitOrderRecomputesTotalCost(t *testing.T) {
	store := milkTeaStore(t, 25)
	svc := NewOrderService(store)

	persisted, err := svc.SubmitOrder(&models.Order{EmployeeID: 3, TotalCost: 0.01}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 9.00, persisted.TotalCost)
}

func TestSubmitOrderRollsBackOnItemInsertFailure(t *testing.T) {
	store := milkTeaStore(t, 25)
	store.failInsertOrderItems = true
	svc := NewOrderService(store)

	_, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 2},
	})

	var persistence *repository.PersistenceError
	require.ErrorAs(t, err, &persistence)

	// The order insert succeeded before the item insert failed; the
	// rollback must leave no trace of either, and no inventory change.
	assert.Empty(t, store.orders)
	assert.Empty(t, store.orderItems)
	assert.Equal(t, 25, store.ingredients[1].Count)
}

func TestSubmitOrderRollsBackOnOrderInsertFailure(t *testing.T) {
	store := milkTeaStore(t, 25)
	store.failInsertOrder = true
	svc := NewOrderService(store)

	_, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 2},
	})

	var persistence *repository.PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Empty(t, store.orders)
	assert.Equal(t, 25, store.ingredients[1].Count)
}

func TestSubmitOrderFallbackModeAlwaysSucceeds(t *testing.T) {
	// In memory mode inventory is never a constraint and counts never move,
	// no matter how absurd the quantities.
	store := repository.NewDemoStore()
	svc := NewOrderService(store)

	before, err := store.ListIngredients()
	require.NoError(t, err)

	persisted, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 100000},
	})
	require.NoError(t, err)
	assert.NotZero(t, persisted.ID)

	after, err := store.ListIngredients()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSubmitOrderWalkInCustomer(t *testing.T) {
	store := milkTeaStore(t, 25)
	svc := NewOrderService(store)

	persisted, err := svc.SubmitOrder(&models.Order{EmployeeID: 3}, []models.OrderItem{
		{MenuItemID: 1, Quantity: 1},
	})

	require.NoError(t, err)
	assert.Nil(t, persisted.CustomerID)
}
