package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInCatalog(t *testing.T) {
	repo, err := NewCatalogRepository("", testLogger())
	require.NoError(t, err)

	products := repo.GetAll()
	require.Len(t, products, 9)
	assert.Equal(t, "Espresso", products[0].Name)
	assert.Equal(t, "55", products[0].Price.String())

	latte, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "60", latte.Price.String())

	_, err = repo.GetByID(999)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogFromFile(t *testing.T) {
	path := writeCatalogFile(t, `
products:
  - id: 1
    name: House Blend
    description: Daily drip.
    price: "40.00"
  - id: 2
    name: Affogato
    price: "85.50"
`)

	repo, err := NewCatalogRepository(path, testLogger())
	require.NoError(t, err)

	products := repo.GetAll()
	require.Len(t, products, 2)
	assert.Equal(t, "House Blend", products[0].Name)
	assert.Equal(t, "85.5", products[1].Price.String())
}

func TestCatalogFileRejectsBadPrice(t *testing.T) {
	path := writeCatalogFile(t, `
products:
  - id: 1
    name: House Blend
    price: "forty"
`)

	_, err := NewCatalogRepository(path, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price")
}

func TestCatalogFileRejectsDuplicateIDs(t *testing.T) {
	path := writeCatalogFile(t, `
products:
  - id: 7
    name: House Blend
    price: "40.00"
  - id: 7
    name: Affogato
    price: "85.50"
`)

	_, err := NewCatalogRepository(path, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product id")
}

func TestCatalogFileRejectsEmpty(t *testing.T) {
	path := writeCatalogFile(t, "products: []\n")

	_, err := NewCatalogRepository(path, testLogger())
	require.Error(t, err)
}

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
