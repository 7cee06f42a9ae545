package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// rialFormatter prints whole rials with comma thousands separators and no symbol.
var rialFormatter = money.NewFormatter(0, ".", ",", "", "1")

// FormatAmount rounds amount to whole currency units and groups thousands.
// Example: 500000 returns "500,000"; 1234.6 returns "1,235".
func FormatAmount(amount decimal.Decimal) string {
	return rialFormatter.Format(amount.Round(0).IntPart())
}
