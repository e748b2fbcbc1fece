package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"car-rental/domain"
	"car-rental/service"

	"go.uber.org/zap"
)

type CarHandler struct {
	service *service.CarService
	logger  *zap.Logger
}

func NewCarHandler(service *service.CarService, logger *zap.Logger) *CarHandler {
	return &CarHandler{service: service, logger: logger}
}

type rentalRequest struct {
	Customer     *domain.Customer    `json:"customer"`
	CarCategory  *domain.CarCategory `json:"carCategory"`
	NumberOfDays int                 `json:"numberOfDays"`
}

type amountResponse struct {
	Amount string `json:"amount"`
}

// AvailableCar resolves the first available car for a category.
// POST /available-car
func (h *CarHandler) AvailableCar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var category domain.CarCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if category.ID == "" || category.Name == "" {
		http.Error(w, "invalid fields", http.StatusBadRequest)
		return
	}

	car, err := h.service.GetAvailableCar(category)
	if err != nil {
		h.writeError(w, err, "car not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, car)
}

// FinalAmount computes the locale-formatted rental total.
// POST /final-amount
func (h *CarHandler) FinalAmount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	input, ok := h.decodeRentalRequest(w, r)
	if !ok {
		return
	}

	amount, err := h.service.CalculateFinalPrice(
		*input.Customer, *input.CarCategory, input.NumberOfDays)
	if err != nil {
		h.writeError(w, err, "final amount not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, amountResponse{Amount: amount})
}

// TransactionReceipt issues the full rental transaction.
// POST /transaction-receipt
func (h *CarHandler) TransactionReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	input, ok := h.decodeRentalRequest(w, r)
	if !ok {
		return
	}

	transaction, err := h.service.Rent(
		*input.Customer, *input.CarCategory, input.NumberOfDays)
	if err != nil {
		h.writeError(w, err, "transaction receipt not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, transaction)
}

// decodeRentalRequest rejects bodies missing customer, carCategory or a
// positive numberOfDays before the engine is invoked. Age is left to the
// pricing engine: an unmatched age is a 404, not a 400.
func (h *CarHandler) decodeRentalRequest(w http.ResponseWriter, r *http.Request) (rentalRequest, bool) {
	var input rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return rentalRequest{}, false
	}

	if input.Customer == nil || input.CarCategory == nil || input.NumberOfDays < 1 {
		http.Error(w, "invalid fields", http.StatusBadRequest)
		return rentalRequest{}, false
	}

	if input.CarCategory.Price.IsNegative() {
		http.Error(w, "invalid fields", http.StatusBadRequest)
		return rentalRequest{}, false
	}

	return input, true
}

func (h *CarHandler) writeError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRentalPeriod),
		errors.Is(err, domain.ErrInvalidPrice):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNoAvailableCar),
		errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrNoMatchingTaxBracket):
		http.Error(w, notFoundMsg, http.StatusNotFound)
	default:
		h.logger.Error("request failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
