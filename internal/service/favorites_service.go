package service

import (
	"drink-coffee/internal/repositories"
	"drink-coffee/models"
	"drink-coffee/pkg/logger"
)

// FavoritesServiceInterface exposes the favorites operations.
type FavoritesServiceInterface interface {
	Toggle(productID int) (bool, error)
	List() []models.Product
	IsFavorite(productID int) bool
}

// FavoritesService validates favorite toggles against the catalog.
type FavoritesService struct {
	catalogRepo   repositories.CatalogRepositoryInterface
	favoritesRepo repositories.FavoritesRepositoryInterface
	logger        *logger.Logger
}

// NewFavoritesService creates a new FavoritesService with the given repositories and logger
func NewFavoritesService(catalogRepo repositories.CatalogRepositoryInterface, favoritesRepo repositories.FavoritesRepositoryInterface, logger *logger.Logger) *FavoritesService {
	return &FavoritesService{
		catalogRepo:   catalogRepo,
		favoritesRepo: favoritesRepo,
		logger:        logger.WithComponent("favorites_service"),
	}
}

// Toggle flips the favorite state of the product and reports the new
// membership. Toggling twice always restores the original state.
func (s *FavoritesService) Toggle(productID int) (bool, error) {
	product, err := s.catalogRepo.GetByID(productID)
	if err != nil {
		s.logger.Warn("Toggle failed: unknown product", "product_id", productID, "error", err)
		return false, err
	}

	favorite := s.favoritesRepo.Toggle(product)
	s.logger.Info("Favorite toggled", "product_id", productID, "favorite", favorite)
	return favorite, nil
}

// List returns the favorite products in the order they were added
func (s *FavoritesService) List() []models.Product {
	return s.favoritesRepo.List()
}

// IsFavorite reports whether the product is currently a favorite
func (s *FavoritesService) IsFavorite(productID int) bool {
	return s.favoritesRepo.IsFavorite(productID)
}
