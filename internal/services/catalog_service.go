package services

import (
	"log"

	"boba_pos/internal/models"
	"boba_pos/internal/redis"
	"boba_pos/internal/repository"
)

type CatalogService interface {
	GetMenu() ([]models.MenuItem, error)
	GetRecipe(menuItemID uint) ([]models.RecipeLine, error)
	AddMenuItem(item *models.MenuItem) error
	UpdatePrice(menuItemID uint, newPrice float64) error
}

type catalogService struct {
	store repository.Store
	cache *redis.Client
}

// NewCatalogService wires the menu catalog. cache may be nil; every cache
// interaction fails open to the store.
func NewCatalogService(store repository.Store, cache *redis.Client) CatalogService {
	return &catalogService{store: store, cache: cache}
}

func (s *catalogService) GetMenu() ([]models.MenuItem, error) {
	if s.cache != nil {
		if items, err := s.cache.GetMenu(); err == nil {
			return items, nil
		}
	}

	items, err := s.store.ListMenuItems()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(items); err != nil {
			log.Printf("Warning: failed to cache menu: %v", err)
		}
	}
	return items, nil
}

func (s *catalogService) GetRecipe(menuItemID uint) ([]models.RecipeLine, error) {
	return s.store.RecipeFor(menuItemID)
}

func (s *catalogService) AddMenuItem(item *models.MenuItem) error {
	if err := s.store.AddMenuItem(item); err != nil {
		return err
	}
	s.invalidateMenu()
	return nil
}

func (s *catalogService) UpdatePrice(menuItemID uint, newPrice float64) error {
	if err := s.store.UpdateMenuItemPrice(menuItemID, newPrice); err != nil {
		return err
	}
	s.invalidateMenu()
	return nil
}

func (s *catalogService) invalidateMenu() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMenu(); err != nil {
		log.Printf("Warning: failed to invalidate menu cache: %v", err)
	}
}
