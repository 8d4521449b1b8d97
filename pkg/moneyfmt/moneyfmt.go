// Package moneyfmt formatea importes para documentos en es-ES: separador de
// miles con punto, decimales con coma y símbolo de la moneda configurada.
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Spanish)

// symbol devuelve el símbolo para los códigos de moneda que maneja la
// aplicación; para el resto se usa el propio código.
func symbol(currency string) string {
	switch currency {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "MXN":
		return "$"
	default:
		return currency
	}
}

// Format devuelve el importe con dos decimales en formato es-ES seguido del
// símbolo de moneda, ej. "1.500,00 €".
func Format(amount decimal.Decimal, currency string) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("%v %s",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)),
		symbol(currency),
	)
}
