package shared

import (
	"math"
	"regexp"
	"strings"
)

var currencyPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Money is a positive amount in a single ISO 4217 currency. The currency code
// is stored upper-cased; equality is structural.
type Money struct {
	amount   float64
	currency string
}

func NewMoney(amount float64, currency string) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Money{}, NewValidationError("amount", "must be a positive number")
	}
	if !currencyPattern.MatchString(currency) {
		return Money{}, NewValidationError("currency", "must be a 3-letter ISO 4217 code")
	}

	return Money{
		amount:   amount,
		currency: strings.ToUpper(currency),
	}, nil
}

func (m Money) Amount() float64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

func (m Money) IsZero() bool {
	return m == Money{}
}
