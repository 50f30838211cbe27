package services

import (
	"boba_pos/internal/models"
	"boba_pos/internal/repository"
)

type InventoryService interface {
	GetInventory() ([]models.Ingredient, error)
	Available(ingredientID uint) (int, error)
	AddIngredient(item *models.Ingredient) error
	SetCount(ingredientID uint, newCount int) error
	Decrement(ingredientID uint, amount int) error
}

type inventoryService struct {
	store repository.Store
}

func NewInventoryService(store repository.Store) InventoryService {
	return &inventoryService{store: store}
}

func (s *inventoryService) GetInventory() ([]models.Ingredient, error) {
	return s.store.ListIngredients()
}

func (s *inventoryService) Available(ingredientID uint) (int, error) {
	ingredient, err := s.store.Ingredient(ingredientID)
	if err != nil {
		return 0, err
	}
	return ingredient.Count, nil
}

func (s *inventoryService) AddIngredient(item *models.Ingredient) error {
	return s.store.AddIngredient(item)
}

func (s *inventoryService) SetCount(ingredientID uint, newCount int) error {
	return s.store.SetIngredientCount(ingredientID, newCount)
}

func (s *inventoryService) Decrement(ingredientID uint, amount int) error {
	return s.store.DecrementIngredient(ingredientID, amount)
}
