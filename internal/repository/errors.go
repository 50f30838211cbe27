package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOrder is returned when a submission carries no line items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrInsufficientStock is returned by DecrementIngredient when the
	// requested amount would drive the on-hand count below zero.
	ErrInsufficientStock = errors.New("insufficient ingredient stock")
)

// InsufficientInventoryError reports the first ingredient whose required
// total exceeded its on-hand count during the validation pass.
type InsufficientInventoryError struct {
	IngredientID uint
	Available    int
	Required     int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for ingredient %d (available %d, required %d)",
		e.IngredientID, e.Available, e.Required)
}

// NotFoundError reports a referenced id that does not exist in the store.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// PersistenceError wraps a store failure during the commit pass. By the time
// the caller sees it, the transaction has already been rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
