package errors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")

	ErrUnknownClient  = errors.New("unknown client")
	ErrUnknownService = errors.New("unknown service")
	ErrUnknownRack    = errors.New("unknown rack")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidStatus  = errors.New("invalid status")

	ErrRackOccupied    = errors.New("rack occupied")
	ErrRackUnavailable = errors.New("rack unavailable")
	ErrRackConflict    = errors.New("rack claimed by more than one line item")

	ErrPaymentPending = errors.New("payment pending")
	ErrOrderDelivered = errors.New("order already delivered")
	ErrOrderCancelled = errors.New("order cancelled")

	ErrClientHasOrders = errors.New("client has orders")
	ErrServiceInUse    = errors.New("service in use")
	ErrPhotosDisabled  = errors.New("photo storage disabled")
)

// PendingPaymentError blocks a delivery until the outstanding amount is acknowledged.
type PendingPaymentError struct {
	Pending decimal.Decimal
}

func (e *PendingPaymentError) Error() string {
	return fmt.Sprintf("payment pending: %s outstanding", e.Pending.StringFixed(2))
}

// Is reports ErrPaymentPending as the matching sentinel.
func (e *PendingPaymentError) Is(target error) bool {
	return target == ErrPaymentPending
}

// IsValidation reports whether err rejects malformed input rather than a business rule.
func IsValidation(err error) bool {
	for _, target := range []error{ErrValidation, ErrUnknownClient, ErrUnknownService, ErrUnknownRack, ErrInvalidAmount, ErrInvalidStatus} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Invalid wraps ErrValidation with a field level message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
