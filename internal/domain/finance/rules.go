// Package finance implementa el motor de proyección financiera del plan de negocio
// (secciones 7.4 a 7.9): costos unitarios, estructura de financiamiento, proyecciones a
// cinco años, recuperación de la inversión e indicadores VAN, TIR, B/C y PR.
//
// Todas las funciones son puras: no modifican sus entradas ni hacen E/S. Los porcentajes
// fijos de esta plantilla contable son reglas de negocio, no parámetros.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// Horizonte de la plantilla: año 0 (inversión) y cinco años de operación.
const (
	FirstOperatingYear = 1
	LastYear           = 5
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)

	// Supuestos de la proyección de ingresos (7.6).
	loanShare       = decimal.RequireFromString("0.6")
	fixedAssetShare = decimal.RequireFromString("0.8")
	exitsShare      = decimal.RequireFromString("0.8")

	// Distribución del gasto operativo (7.7) y de costos y gastos.
	salariesShare      = decimal.RequireFromString("0.6")
	materialShare      = decimal.RequireFromString("0.3")
	basicServicesShare = decimal.RequireFromString("0.05")
	fuelShare          = decimal.RequireFromString("0.05")
	transportShare     = decimal.RequireFromString("0.02")
	otherExpensesShare = decimal.RequireFromString("0.03")
	depreciationShare  = decimal.RequireFromString("0.1")
	depreciation15     = decimal.RequireFromString("0.15")

	participationPercentage = decimal.NewFromInt(100)
)

// compound devuelve (1 + ratePct/100)^periods. Se multiplica año a año para mantener
// exactitud decimal con exponentes enteros pequeños.
func compound(ratePct decimal.Decimal, periods int) decimal.Decimal {
	factor := decimal.NewFromInt(1)
	step := decimal.NewFromInt(1).Add(ratePct.Div(hundred))
	for i := 0; i < periods; i++ {
		factor = factor.Mul(step)
	}
	return factor
}

// BaseSales ventas anuales a precios del año 0: Σ demanda mensual × PVP × 12.
func BaseSales(demand []entity.DemandDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range demand {
		total = total.Add(d.MonthlyDemand.Mul(d.PVP).Mul(twelve))
	}
	return total
}

// TotalInvestment suma el costo total de los equipos.
func TotalInvestment(equipment []entity.Equipment) decimal.Decimal {
	total := decimal.Zero
	for _, eq := range equipment {
		total = total.Add(eq.TotalCost)
	}
	return total
}
