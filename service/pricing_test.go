package service

import (
	"testing"

	"car-rental/domain"
	"car-rental/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPricing(brackets []domain.AgeTaxBracket) *PricingService {
	return NewPricingService(brackets, PtBR(), repository.NewMemoryCache(), zap.NewNop())
}

func TestCalculateFinalPrice(t *testing.T) {
	pricing := newTestPricing([]domain.AgeTaxBracket{
		{From: 40, To: 50, Then: decimal.NewFromFloat(1.3)},
	})

	customer := domain.Customer{ID: "cust-1", Name: "Ms. Bruce Boyle", Age: 50}
	category := domain.CarCategory{ID: "cat-1", Name: "Extended Cab Pickup", Price: decimal.NewFromFloat(37.6)}

	// 37.60 * 1.3 = 48.88 daily, * 5 days = 244.40
	amount, err := pricing.CalculateFinalPrice(customer, category, 5)

	require.NoError(t, err)
	assert.Equal(t, "R$ 244,40", amount)
}

func TestCalculateFinalPriceUsesFirstMatchingBracket(t *testing.T) {
	pricing := newTestPricing([]domain.AgeTaxBracket{
		{From: 18, To: 25, Then: decimal.NewFromFloat(1.1)},
		{From: 25, To: 30, Then: decimal.NewFromFloat(1.5)},
	})

	customer := domain.Customer{ID: "cust-1", Age: 25}
	category := domain.CarCategory{ID: "cat-1", Price: decimal.NewFromInt(100)}

	amount, err := pricing.CalculateFinalPrice(customer, category, 1)

	require.NoError(t, err)
	assert.Equal(t, "R$ 110,00", amount)
}

func TestCalculateFinalPriceAgeOutsideBrackets(t *testing.T) {
	pricing := newTestPricing(DefaultTaxBrackets())

	customer := domain.Customer{ID: "cust-1", Age: 0}
	category := domain.CarCategory{ID: "cat-1", Price: decimal.Zero}

	_, err := pricing.CalculateFinalPrice(customer, category, 1)

	assert.ErrorIs(t, err, domain.ErrNoMatchingTaxBracket)
}

func TestCalculateFinalPriceInvalidDays(t *testing.T) {
	pricing := newTestPricing(DefaultTaxBrackets())

	customer := domain.Customer{ID: "cust-1", Age: 30}
	category := domain.CarCategory{ID: "cat-1", Price: decimal.NewFromInt(10)}

	_, err := pricing.CalculateFinalPrice(customer, category, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidRentalPeriod)

	_, err = pricing.CalculateFinalPrice(customer, category, MaxRentalDays+1)
	assert.ErrorIs(t, err, domain.ErrInvalidRentalPeriod)
}

func TestCalculateFinalPriceNegativePrice(t *testing.T) {
	pricing := newTestPricing(DefaultTaxBrackets())

	customer := domain.Customer{ID: "cust-1", Age: 30}
	category := domain.CarCategory{ID: "cat-1", Price: decimal.NewFromFloat(-37.6)}

	_, err := pricing.CalculateFinalPrice(customer, category, 5)

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestCalculateFinalPriceIsIdempotent(t *testing.T) {
	pricing := newTestPricing(DefaultTaxBrackets())

	customer := domain.Customer{ID: "cust-1", Age: 20}
	category := domain.CarCategory{ID: "cat-1", Price: decimal.NewFromFloat(37.6)}

	first, err := pricing.CalculateFinalPrice(customer, category, 5)
	require.NoError(t, err)

	second, err := pricing.CalculateFinalPrice(customer, category, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateFinalPriceReturnsCachedQuote(t *testing.T) {
	cache := repository.NewMemoryCache()
	pricing := NewPricingService(DefaultTaxBrackets(), PtBR(), cache, zap.NewNop())

	customer := domain.Customer{ID: "cust-1", Age: 20}
	category := domain.CarCategory{ID: "cat-1", Price: decimal.NewFromFloat(37.6)}

	err := cache.Set(quoteKey(customer, category, 5), "R$ 999,99")
	require.NoError(t, err)

	amount, err := pricing.CalculateFinalPrice(customer, category, 5)

	require.NoError(t, err)
	assert.Equal(t, "R$ 999,99", amount)
}
