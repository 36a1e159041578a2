package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way receipts print it: "Rp" prefix,
// dot thousand separators, comma decimals (id-ID locale).
func FormatRupiah(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("Rp%.2f", f)
}
