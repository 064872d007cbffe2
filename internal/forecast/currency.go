package forecast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Currency is one of the currencies the forecast accumulates.
type Currency string

const (
	GBP Currency = "GBP"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Currencies lists all supported currencies in output order.
var Currencies = []Currency{GBP, USD, EUR}

// DefaultCurrency is used for records that do not specify a currency.
const DefaultCurrency = USD

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ParseCurrency validates an ISO 4217 code and maps it onto the supported set.
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	switch unit {
	case currency.GBP:
		return GBP, nil
	case currency.USD:
		return USD, nil
	case currency.EUR:
		return EUR, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
}

// Amounts holds one total per supported currency. The zero value has all
// totals at zero. All operations return new values.
type Amounts struct {
	GBP decimal.Decimal `json:"GBP" example:"12.50"`
	USD decimal.Decimal `json:"USD" example:"30"`
	EUR decimal.Decimal `json:"EUR" example:"0"`
}

// Single returns Amounts with only the slot for c set.
func Single(c Currency, amount decimal.Decimal) Amounts {
	return Amounts{}.With(c, amount)
}

// Get returns the total for a currency.
func (a Amounts) Get(c Currency) decimal.Decimal {
	switch c {
	case GBP:
		return a.GBP
	case USD:
		return a.USD
	case EUR:
		return a.EUR
	}
	return decimal.Zero
}

// With returns a copy of a with the total for c replaced.
func (a Amounts) With(c Currency, amount decimal.Decimal) Amounts {
	switch c {
	case GBP:
		a.GBP = amount
	case USD:
		a.USD = amount
	case EUR:
		a.EUR = amount
	}
	return a
}

// Add sums slot-wise.
func (a Amounts) Add(b Amounts) Amounts {
	return Amounts{
		GBP: a.GBP.Add(b.GBP),
		USD: a.USD.Add(b.USD),
		EUR: a.EUR.Add(b.EUR),
	}
}

// Sub subtracts slot-wise. Results may be negative.
func (a Amounts) Sub(b Amounts) Amounts {
	return Amounts{
		GBP: a.GBP.Sub(b.GBP),
		USD: a.USD.Sub(b.USD),
		EUR: a.EUR.Sub(b.EUR),
	}
}

// Div divides every slot by n. For n <= 0, the zero value is returned.
func (a Amounts) Div(n int) Amounts {
	if n <= 0 {
		return Amounts{}
	}

	d := decimal.NewFromInt(int64(n))
	return Amounts{
		GBP: a.GBP.Div(d),
		USD: a.USD.Div(d),
		EUR: a.EUR.Div(d),
	}
}

// IsZero reports whether all slots are zero.
func (a Amounts) IsZero() bool {
	return a.GBP.IsZero() && a.USD.IsZero() && a.EUR.IsZero()
}

// Equal reports whether all slots are numerically equal.
func (a Amounts) Equal(b Amounts) bool {
	return a.GBP.Equal(b.GBP) && a.USD.Equal(b.USD) && a.EUR.Equal(b.EUR)
}
