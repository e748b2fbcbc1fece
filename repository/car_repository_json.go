package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"car-rental/domain"
)

// JSONCarRepository serves car lookups from a catalog file loaded once
// at construction. The catalog is read-only; there is no hot-reload.
type JSONCarRepository struct {
	cars map[string]domain.Car
}

// NewJSONCarRepository reads a JSON array of cars from path and indexes
// it by car id.
func NewJSONCarRepository(path string) (*JSONCarRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read car catalog: %w", err)
	}

	var cars []domain.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, fmt.Errorf("parse car catalog: %w", err)
	}

	repo := &JSONCarRepository{cars: make(map[string]domain.Car, len(cars))}
	for _, car := range cars {
		repo.cars[car.ID] = car
	}
	return repo, nil
}

// FindByID returns the car with the exact id, or ErrCarNotFound.
func (r *JSONCarRepository) FindByID(id string) (domain.Car, error) {
	car, ok := r.cars[id]
	if !ok {
		return domain.Car{}, domain.ErrCarNotFound
	}
	return car, nil
}
