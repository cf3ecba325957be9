package repositories

import (
	"errors"
	"fmt"
	"os"

	"drink-coffee/models"
	"drink-coffee/pkg/logger"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepositoryInterface is the read-only product catalog. The catalog
// is the only valid source of product ids for carts and favorites.
type CatalogRepositoryInterface interface {
	GetAll() []models.Product
	GetByID(id int) (models.Product, error)
}

// CatalogRepository holds the immutable product list. It is populated once
// at construction, either from the built-in menu or from a YAML file, and
// never mutated afterwards, so reads need no locking.
type CatalogRepository struct {
	logger   *logger.Logger
	products []models.Product
	byID     map[int]models.Product
}

// catalogEntry is the YAML schema for one catalog file record. Price is a
// string so it survives the trip into decimal without a float detour.
type catalogEntry struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	ImageURL    string `yaml:"image_url"`
}

type catalogFile struct {
	Products []catalogEntry `yaml:"products"`
}

// NewCatalogRepository builds the catalog. An empty path selects the
// built-in menu.
func NewCatalogRepository(path string, log *logger.Logger) (*CatalogRepository, error) {
	log = log.WithComponent("catalog_repository")

	products := defaultCatalog()
	if path != "" {
		loaded, err := loadCatalogFile(path)
		if err != nil {
			log.Error("Failed to load catalog file", "path", path, "error", err)
			return nil, err
		}
		products = loaded
		log.Info("Catalog loaded from file", "path", path, "products", len(products))
	} else {
		log.Info("Using built-in catalog", "products", len(products))
	}

	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d in catalog", p.ID)
		}
		byID[p.ID] = p
	}

	return &CatalogRepository{
		logger:   log,
		products: products,
		byID:     byID,
	}, nil
}

// GetAll returns every product in menu order
func (r *CatalogRepository) GetAll() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// GetByID returns the product with the given id
func (r *CatalogRepository) GetByID(id int) (models.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return product, nil
}

func loadCatalogFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	products := make([]models.Product, 0, len(file.Products))
	for i, entry := range file.Products {
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("product %d: invalid price %q: %w", i+1, entry.Price, err)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("product %d: name is required", i+1)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("product %d: price must not be negative", i+1)
		}

		products = append(products, models.Product{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Price:       price,
			ImageURL:    entry.ImageURL,
		})
	}
	return products, nil
}

// defaultCatalog is the built-in coffee menu.
func defaultCatalog() []models.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []models.Product{
		{ID: 1, Name: "Espresso", Price: price("55.00"), Description: "A strong, concentrated shot of pure coffee.", ImageURL: "https://placehold.co/100x100/A0522D/FFFFFF?text=Espresso"},
		{ID: 2, Name: "Latte", Price: price("60.00"), Description: "Smooth espresso with steamed milk and a delicate foam.", ImageURL: "https://placehold.co/100x100/D2B48C/FFFFFF?text=Latte"},
		{ID: 3, Name: "Cappuccino", Price: price("65.00"), Description: "Classic blend of espresso, steamed milk, and rich foam.", ImageURL: "https://placehold.co/100x100/8B4513/FFFFFF?text=Cappuccino"},
		{ID: 4, Name: "Americano", Price: price("58.00"), Description: "Espresso diluted with hot water, similar to drip coffee.", ImageURL: "https://placehold.co/100x100/696969/FFFFFF?text=Americano"},
		{ID: 5, Name: "Mocha", Price: price("70.00"), Description: "A delightful mix of espresso, chocolate, and steamed milk.", ImageURL: "https://placehold.co/100x100/4B3621/FFFFFF?text=Mocha"},
		{ID: 6, Name: "Cold Brew", Price: price("75.00"), Description: "Slow-steeped for a naturally sweet, low-acid experience.", ImageURL: "https://placehold.co/100x100/2F4F4F/FFFFFF?text=Cold+Brew"},
		{ID: 7, Name: "Macchiato", Price: price("59.00"), Description: "Espresso 'stained' with a small amount of foamed milk.", ImageURL: "https://placehold.co/100x100/CD853F/FFFFFF?text=Macchiato"},
		{ID: 8, Name: "Flat White", Price: price("62.00"), Description: "Espresso with velvety microfoam, less airy than a latte.", ImageURL: "https://placehold.co/100x100/704214/FFFFFF?text=Flat+White"},
		{ID: 9, Name: "Traditional Jebena Buna", Price: price("25.00"), Description: "Authentic Ethiopian coffee, brewed in a traditional clay pot.", ImageURL: "https://placehold.co/100x100/8B4513/FFFFFF?text=Jebena+Buna"},
	}
}
