// Package money renders decimal amounts for people.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter prints amounts in one currency using locale number formatting.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter builds a formatter for an ISO 4217 code and a BCP 47 locale.
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	return &Formatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

// Format renders amount with the currency symbol, e.g. "$ 35.00".
func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.Round(2).InexactFloat64())))
}

// Currency returns the ISO code.
func (f *Formatter) Currency() string {
	return f.unit.String()
}
