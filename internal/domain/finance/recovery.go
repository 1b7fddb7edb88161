package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// CalculateInvestmentRecovery tabla de recuperación de la inversión, años 0 a 5 (7.9).
//
// El flujo neto del año 0 es la inversión en negativo; desde el año 1 es ingreso menos
// gasto operativo del estado de resultados (la depreciación no se suma de vuelta).
// El saldo por recuperar nunca es negativo.
func CalculateInvestmentRecovery(
	equipment []entity.Equipment,
	statement entity.IncomeStatementProjection,
) entity.InvestmentRecoveryTable {
	totalInvestment := TotalInvestment(equipment)

	byYear := make(map[int]entity.YearlyIncomeStatement, len(statement.Years))
	for _, y := range statement.Years {
		if _, seen := byYear[y.Year]; !seen {
			byYear[y.Year] = y
		}
	}

	years := make([]entity.YearlyInvestmentRecovery, 0, LastYear+1)
	accumulated := decimal.Zero
	for year := 0; year <= LastYear; year++ {
		var netCashFlow decimal.Decimal
		if year == 0 {
			netCashFlow = totalInvestment.Neg()
		} else if row, ok := byYear[year]; ok {
			netCashFlow = row.Income.Sub(row.OperativeExpenses)
		} else {
			netCashFlow = decimal.Zero
		}

		accumulated = accumulated.Add(netCashFlow)
		remaining := totalInvestment.Sub(accumulated.Abs())
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		years = append(years, entity.YearlyInvestmentRecovery{
			Year:                 year,
			NetCashFlow:          netCashFlow,
			AccumulatedRecovered: accumulated,
			RemainingBalance:     remaining,
		})
	}
	return entity.InvestmentRecoveryTable{Years: years}
}
