package repository

import (
	"os"
	"path/filepath"
	"testing"

	"car-rental/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cars.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestJSONCarRepositoryFindByID(t *testing.T) {
	path := writeCatalog(t, `[
		{"id": "car-1", "name": "Chevrolet Silverado", "releaseYear": 2020, "available": true, "gasAvailable": true},
		{"id": "car-2", "name": "Ford F-150", "releaseYear": 2019, "available": true, "gasAvailable": false}
	]`)

	repo, err := NewJSONCarRepository(path)
	require.NoError(t, err)

	car, err := repo.FindByID("car-2")
	require.NoError(t, err)
	assert.Equal(t, "Ford F-150", car.Name)
	assert.Equal(t, 2019, car.ReleaseYear)
}

func TestJSONCarRepositoryNotFound(t *testing.T) {
	path := writeCatalog(t, `[{"id": "car-1", "name": "Chevrolet Silverado"}]`)

	repo, err := NewJSONCarRepository(path)
	require.NoError(t, err)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestJSONCarRepositoryMissingFile(t *testing.T) {
	_, err := NewJSONCarRepository(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestJSONCarRepositoryMalformedCatalog(t *testing.T) {
	path := writeCatalog(t, `{not json`)

	_, err := NewJSONCarRepository(path)
	assert.Error(t, err)
}
