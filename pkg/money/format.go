// Package money formatea montos y porcentajes para el reporte y la CLI con
// separadores de miles del español.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter presentación de montos con símbolo de moneda y dos decimales.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter symbol vacío omite el prefijo de moneda.
func NewFormatter(symbol string) *Formatter {
	return &Formatter{printer: message.NewPrinter(language.Spanish), symbol: symbol}
}

// Amount p. ej. "$ 1.234.567,89".
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := f.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
	if f.symbol == "" {
		return s
	}
	return f.symbol + " " + s
}

// AmountPtr "-" cuando el monto aún no está calculado.
func (f *Formatter) AmountPtr(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return f.Amount(*d)
}

// Number cantidad sin símbolo, con los decimales indicados.
func (f *Formatter) Number(d decimal.Decimal, places int32) string {
	if places <= 0 {
		return f.printer.Sprintf("%d", d.Round(0).IntPart())
	}
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", places), d.Round(places).InexactFloat64())
}

// Percent tasa ya expresada en porcentaje, p. ej. "12,50 %".
func (f *Formatter) Percent(d decimal.Decimal) string {
	return f.printer.Sprintf("%.2f", d.Round(2).InexactFloat64()) + " %"
}

// Rate TIR u otra tasa float64; NaN o Inf se muestran como no calculable.
func (f *Formatter) Rate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "No calculable"
	}
	return f.printer.Sprintf("%.2f", v) + " %"
}
