// Package money formats prices for display and computes cart totals.
package money

import (
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts in a currency using a locale's number format
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
	symbol  string
	scale   int32
	pattern string
}

// NewFormatter builds a formatter for a BCP 47 locale and an ISO 4217 currency code
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	printer := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)

	return &Formatter{
		unit:    unit,
		printer: printer,
		symbol:  printer.Sprint(currency.Symbol(unit)),
		scale:   int32(scale),
		pattern: fmt.Sprintf("%%.%df", scale),
	}, nil
}

// Format returns the amount as a display string such as "R$ 54,00".
// Rounding happens in decimal; the float only carries the rounded value
// to the locale printer.
func (f *Formatter) Format(amount decimal.Decimal) string {
	value, _ := amount.Round(f.scale).Float64()
	return f.symbol + " " + f.printer.Sprintf(f.pattern, value)
}

// Currency returns the ISO code the formatter renders
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// CartTotal computes (sum of extra value x extra quantity + price) x quantity
func CartTotal(price decimal.Decimal, extras []models.Extra, quantity int) decimal.Decimal {
	extrasTotal := decimal.Zero
	for _, extra := range extras {
		extrasTotal = extrasTotal.Add(extra.Value.Mul(decimal.NewFromInt(int64(extra.Quantity))))
	}

	return extrasTotal.Add(price).Mul(decimal.NewFromInt(int64(quantity)))
}
