package domain

import "errors"

// Expected business outcomes, signaled as sentinels so the transport
// layer can map them to a status without inspecting error internals.
var (
	ErrCarNotFound          = errors.New("car not found")
	ErrNoAvailableCar       = errors.New("no available car for category")
	ErrNoMatchingTaxBracket = errors.New("no tax bracket matches customer age")
	ErrInvalidRentalPeriod  = errors.New("invalid rental period")
	ErrInvalidPrice         = errors.New("invalid category price")
)
