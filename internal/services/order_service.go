package services

import (
	"fmt"
	"time"

	"boba_pos/internal/models"
	"boba_pos/internal/repository"
)

type OrderService interface {
	// SubmitOrder runs the order-submission transaction: validate inventory
	// first, then persist the order, its items and the stock decrements as
	// one unit of work. On success the returned order carries its assigned
	// id, recomputed total and derived week number.
	SubmitOrder(order *models.Order, items []models.OrderItem) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrderItems(orderID uint) ([]models.OrderItem, error)
}

type orderService struct {
	store repository.Store
}

func NewOrderService(store repository.Store) OrderService {
	return &orderService{store: store}
}

func (s *orderService) SubmitOrder(order *models.Order, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, repository.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for menu item %d", item.Quantity, item.MenuItemID)
		}
	}

	if order.TimeOfOrder.IsZero() {
		order.TimeOfOrder = time.Now()
	}
	_, week := order.TimeOfOrder.ISOWeek()
	order.OrderWeek = week

	// The total is recomputed from catalog prices rather than trusted from
	// the caller.
	total, err := s.totalCostOf(items)
	if err != nil {
		return nil, err
	}
	order.TotalCost = total

	// Validation pass: a complete read-only sufficiency check before any
	// mutation, so an order that is infeasible on its last line item never
	// touches stock for its first.
	requirements, err := s.requirementsFor(items)
	if err != nil {
		return nil, err
	}
	if err := s.store.CheckInventory(requirements); err != nil {
		return nil, err
	}

	// Commit pass: everything below either fully applies or fully rolls
	// back.
	err = s.store.Atomically(func(tx repository.Store) error {
		orderID, err := tx.NextOrderID()
		if err != nil {
			return err
		}
		order.ID = orderID
		if err := tx.InsertOrder(order); err != nil {
			return err
		}

		// Items are inserted one at a time so each id generation sees the
		// previously inserted row.
		for i := range items {
			itemID, err := tx.NextOrderItemID()
			if err != nil {
				return err
			}
			items[i].ID = itemID
			items[i].OrderID = orderID
			if err := tx.InsertOrderItems(items[i : i+1]); err != nil {
				return err
			}
		}

		return tx.ConsumeInventory(requirements)
	})
	if err != nil {
		return nil, &repository.PersistenceError{Op: "submit order", Err: err}
	}

	return order, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.store.ListOrders()
}

func (s *orderService) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	return s.store.OrderItemsFor(orderID)
}

func (s *orderService) totalCostOf(items []models.OrderItem) (float64, error) {
	menuItems, err := s.store.ListMenuItems()
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog: %w", err)
	}
	prices := make(map[uint]float64, len(menuItems))
	for _, menuItem := range menuItems {
		prices[menuItem.ID] = menuItem.Price
	}

	var total float64
	for _, item := range items {
		price, ok := prices[item.MenuItemID]
		if !ok {
			return 0, &repository.NotFoundError{Entity: "menu item", ID: item.MenuItemID}
		}
		total += price * float64(item.Quantity)
	}
	return total, nil
}

// requirementsFor expands each candidate item through its recipe and sums
// the required units per ingredient across all items, so two line items
// sharing an ingredient are checked against their combined demand.
func (s *orderService) requirementsFor(items []models.OrderItem) (map[uint]int, error) {
	requirements := make(map[uint]int)
	for _, item := range items {
		recipe, err := s.store.RecipeFor(item.MenuItemID)
		if err != nil {
			return nil, err
		}
		for _, line := range recipe {
			requirements[line.IngredientID] += line.Quantity * item.Quantity
		}
	}
	return requirements, nil
}
