package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "€"

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formata o valor em euros com agrupamento en-US e sem casas decimais, ex: €12,345
func FormatCurrency(value float64) string {
	rounded := math.Round(value)
	// normaliza -0
	if rounded == 0 {
		rounded = 0
	}

	return currencySymbol + currencyPrinter.Sprintf("%.0f", rounded)
}
