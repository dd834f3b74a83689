package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/xXDatiXx/pimp-cleaner-25/internal/domain/errors"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// ChangeStatus moves order to target in place.
//
// Any non-terminal target applies immediately. Delivery is gated: while part
// of the total is unpaid the transition fails with *PendingPaymentError
// unless acknowledged is set, in which case the outstanding amount is
// recorded as collected. Delivered orders are final and cancelled orders can
// only be handed back. A transition to the current status is a no-op and
// returns a nil change.
func ChangeStatus(order *model.Order, target model.OrderStatus, acknowledged bool, now time.Time, catalog model.Catalog) (*model.StatusChange, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, target)
	}
	switch {
	case order.Status == model.OrderStatusDelivered:
		return nil, domainErrors.ErrOrderDelivered
	case order.Status == target:
		return nil, nil
	case order.Status == model.OrderStatusCancelled && target != model.OrderStatusDelivered:
		return nil, domainErrors.ErrOrderCancelled
	}

	change := &model.StatusChange{
		OrderID:         order.ID,
		From:            order.Status,
		To:              target,
		AmountCollected: decimal.Zero,
		ChangedAt:       now,
	}

	if target == model.OrderStatusDelivered {
		total := Total(*order, catalog)
		pending := total.Sub(order.AmountPaid)
		if pending.IsPositive() {
			if !acknowledged {
				return nil, &domainErrors.PendingPaymentError{Pending: pending}
			}
			change.AmountCollected = pending
			order.AmountPaid = total
		}
		order.PaymentStatus = model.PaymentStatusPaid
		delivered := dateOf(now)
		order.DeliveredAt = &delivered
	}

	order.Status = target
	order.UpdatedAt = now
	return change, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
