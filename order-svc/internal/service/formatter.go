package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter renders amounts kept in the smallest currency unit.
type PriceFormatter interface {
	Format(amount int) string
}

type LocalePriceFormatter struct {
	printer *message.Printer
	symbol  string
}

func NewLocalePriceFormatter(tag language.Tag, symbol string) *LocalePriceFormatter {
	return &LocalePriceFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

func (f *LocalePriceFormatter) Format(amount int) string {
	formatted := f.printer.Sprintf("%.2f", float64(amount)/100)
	if f.symbol == "" {
		return formatted
	}
	return formatted + " " + f.symbol
}

func formatPrice(f PriceFormatter, amount int) string {
	if f == nil {
		return ""
	}
	return f.Format(amount)
}
