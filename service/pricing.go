package service

import (
	"fmt"

	"car-rental/domain"
	"car-rental/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PricingService computes the total rental amount for a customer renting
// a category for a number of days. The bracket table is injected so
// tests and policy changes can swap it without touching the engine.
type PricingService struct {
	brackets []domain.AgeTaxBracket
	locale   Locale
	cache    repository.CacheRepository
	logger   *zap.Logger
}

func NewPricingService(
	brackets []domain.AgeTaxBracket,
	locale Locale,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *PricingService {
	return &PricingService{
		brackets: brackets,
		locale:   locale,
		cache:    cache,
		logger:   logger,
	}
}

// CalculateFinalPrice returns the locale-formatted total for
// price × bracket multiplier × numberOfDays. An age outside every
// bracket is an expected gap and yields ErrNoMatchingTaxBracket, never
// an implicit 1.0 multiplier.
func (s *PricingService) CalculateFinalPrice(
	customer domain.Customer,
	category domain.CarCategory,
	numberOfDays int,
) (string, error) {

	if numberOfDays < MinRentalDays || numberOfDays > MaxRentalDays {
		return "", fmt.Errorf("%w: numberOfDays must be between %d and %d",
			domain.ErrInvalidRentalPeriod, MinRentalDays, MaxRentalDays)
	}

	// The final amount is always non-negative.
	if category.Price.IsNegative() {
		return "", fmt.Errorf("%w: price must not be negative", domain.ErrInvalidPrice)
	}

	key := quoteKey(customer, category, numberOfDays)
	if amount, ok := s.cache.Get(key); ok {
		return amount, nil
	}

	bracket, ok := s.bracketFor(customer.Age)
	if !ok {
		return "", domain.ErrNoMatchingTaxBracket
	}

	dailyRate := category.Price.Mul(bracket.Then)
	total := dailyRate.Mul(decimal.NewFromInt(int64(numberOfDays)))

	amount := s.locale.FormatCurrency(total)

	// Caching is best-effort; a failed write never fails the quote.
	if err := s.cache.Set(key, amount); err != nil {
		s.logger.Warn("failed to cache pricing quote",
			zap.String("categoryId", category.ID),
			zap.Error(err),
		)
	}

	return amount, nil
}

func (s *PricingService) bracketFor(age int) (domain.AgeTaxBracket, bool) {
	for _, b := range s.brackets {
		if b.Matches(age) {
			return b, true
		}
	}
	return domain.AgeTaxBracket{}, false
}

func quoteKey(customer domain.Customer, category domain.CarCategory, days int) string {
	return fmt.Sprintf("quote:%s:%s:%d:%d",
		category.ID, category.Price.String(), customer.Age, days)
}
