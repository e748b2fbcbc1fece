package service

import (
	"errors"
	"fmt"
	"time"

	"car-rental/domain"
	"car-rental/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CarService is the rental engine: it resolves an available car for a
// category, prices the rental, and issues the transaction receipt.
type CarService struct {
	carRepo repository.CarRepository
	pricing *PricingService
	locale  Locale
	logger  *zap.Logger

	// now is swapped in tests to pin the due date.
	now func() time.Time
}

func NewCarService(
	carRepo repository.CarRepository,
	pricing *PricingService,
	locale Locale,
	logger *zap.Logger,
) *CarService {
	return &CarService{
		carRepo: carRepo,
		pricing: pricing,
		locale:  locale,
		logger:  logger,
		now:     time.Now,
	}
}

// GetAvailableCar returns the first candidate in the category's carIds
// that resolves to a catalog car. Candidates are assumed pre-ranked by
// the category, so order matters. An empty or exhausted list yields
// ErrNoAvailableCar.
func (s *CarService) GetAvailableCar(category domain.CarCategory) (domain.Car, error) {
	for _, id := range category.CarIDs {
		car, err := s.carRepo.FindByID(id)
		if err == nil {
			return car, nil
		}
		if !errors.Is(err, domain.ErrCarNotFound) {
			return domain.Car{}, fmt.Errorf("look up car %s: %w", id, err)
		}
	}
	return domain.Car{}, domain.ErrNoAvailableCar
}

// CalculateFinalPrice delegates to the pricing engine so callers deal
// with a single rental API.
func (s *CarService) CalculateFinalPrice(
	customer domain.Customer,
	category domain.CarCategory,
	numberOfDays int,
) (string, error) {
	return s.pricing.CalculateFinalPrice(customer, category, numberOfDays)
}

// Rent resolves a car, prices the rental, and returns the receipt. Any
// resolution failure short-circuits: no partial transaction is ever
// returned.
func (s *CarService) Rent(
	customer domain.Customer,
	category domain.CarCategory,
	numberOfDays int,
) (domain.Transaction, error) {

	car, err := s.GetAvailableCar(category)
	if err != nil {
		return domain.Transaction{}, err
	}

	amount, err := s.pricing.CalculateFinalPrice(customer, category, numberOfDays)
	if err != nil {
		return domain.Transaction{}, err
	}

	dueDate := s.locale.FormatLongDate(s.now().AddDate(0, 0, numberOfDays))

	transaction := domain.Transaction{
		ID:       uuid.NewString(),
		Customer: customer,
		Car:      car,
		DueDate:  dueDate,
		Amount:   amount,
	}

	s.logger.Info("transaction receipt issued",
		zap.String("transactionId", transaction.ID),
		zap.String("customerId", customer.ID),
		zap.String("carId", car.ID),
		zap.String("dueDate", dueDate),
	)

	return transaction, nil
}
