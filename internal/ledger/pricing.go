package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/domain/model"
)

// Total sums the current catalog price of every line item. Prices are looked
// up live, so a catalog change alters the total of existing orders. Items
// whose service left the catalog contribute nothing.
func Total(order model.Order, catalog model.Catalog) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.Items {
		if price, ok := catalog.Price(item.ServiceID); ok {
			total = total.Add(price)
		}
	}
	return total
}

// Pending is the part of the total not yet paid. It is negative on overpayment.
func Pending(order model.Order, catalog model.Catalog) decimal.Decimal {
	return Total(order, catalog).Sub(order.AmountPaid)
}

// DerivePaymentStatus classifies paid against total.
func DerivePaymentStatus(paid, total decimal.Decimal) model.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total) && total.IsPositive():
		return model.PaymentStatusPaid
	case paid.IsPositive():
		return model.PaymentStatusPartial
	default:
		return model.PaymentStatusPending
	}
}
