package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// CalculateIncomeProjection proyección de entradas y salidas de efectivo, años 0 a 5 (7.6).
//
// El año 0 es el instante de la inversión: entra y sale la inversión total, el aporte de
// capital es un mes de costos (capital de trabajo) y se asume un préstamo del 60%.
// Los años 1 a 5 escalan las ventas base solo por crecimiento de la producción.
func CalculateIncomeProjection(
	rates entity.FinancialRates,
	demand []entity.DemandDetail,
	equipment []entity.Equipment,
	monthlyCostTotal decimal.Decimal,
) entity.IncomeProjection {
	baseSales := BaseSales(demand)
	totalInvestment := TotalInvestment(equipment)
	workingCapital := monthlyCostTotal

	years := make([]entity.YearlyProjection, 0, LastYear+1)
	years = append(years, entity.YearlyProjection{
		Year:                0,
		Entries:             totalInvestment,
		Sales:               decimal.Zero,
		CapitalContribution: workingCapital,
		Loan:                totalInvestment.Mul(loanShare),
		Exits:               totalInvestment,
		ForInvestment:       totalInvestment,
		WorkingCapital:      workingCapital,
		FixedAsset:          totalInvestment.Mul(fixedAssetShare),
		DeferredAsset:       decimal.Zero,
		OtherAssets:         decimal.Zero,
		ForCostsAndExpenses: decimal.Zero,
	})

	for year := FirstOperatingYear; year <= LastYear; year++ {
		sales := baseSales.Mul(compound(rates.ProductionGrowth, year))
		years = append(years, entity.YearlyProjection{
			Year:                year,
			Entries:             sales,
			Sales:               sales,
			CapitalContribution: decimal.Zero,
			Loan:                decimal.Zero,
			Exits:               sales.Mul(exitsShare),
			ForInvestment:       decimal.Zero,
			WorkingCapital:      decimal.Zero,
			FixedAsset:          decimal.Zero,
			DeferredAsset:       decimal.Zero,
			OtherAssets:         decimal.Zero,
			ForCostsAndExpenses: sales.Mul(exitsShare),
		})
	}
	return entity.IncomeProjection{Years: years}
}

// CalculateCostsExpensesProjection desglose de costos y gastos, años 1 a 5.
// El costo anual se indexa por inflación desde el año 1 (exponente año-1); los
// campos financieros y tributarios quedan en cero hasta que la plantilla los modele.
func CalculateCostsExpensesProjection(
	rates entity.FinancialRates,
	equipment []entity.Equipment,
	monthlyCostTotal decimal.Decimal,
) entity.CostsExpensesProjection {
	annualCost := monthlyCostTotal.Mul(twelve)
	totalEquipment := TotalInvestment(equipment)

	years := make([]entity.YearlyCostsExpenses, 0, LastYear)
	for year := FirstOperatingYear; year <= LastYear; year++ {
		base := annualCost.Mul(compound(rates.InflationRate, year-1))
		initialEffective := decimal.Zero
		if year == FirstOperatingYear {
			initialEffective = monthlyCostTotal
		}
		years = append(years, entity.YearlyCostsExpenses{
			Year:                  year,
			TotalVariableCost:     base,
			MaterialCost:          base.Mul(materialShare),
			Salaries:              base.Mul(salariesShare),
			BasicServices:         base.Mul(basicServicesShare),
			Fuel:                  base.Mul(fuelShare),
			Transport:             base.Mul(transportShare),
			Rent:                  decimal.Zero,
			Advertising:           decimal.Zero,
			OtherExpenses:         base.Mul(otherExpensesShare),
			DepreciationExpense:   totalEquipment.Mul(depreciationShare),
			FinancialExpense:      decimal.Zero,
			DepreciationExpense15: totalEquipment.Mul(depreciation15),
			IncomeTax25:           decimal.Zero,
			CapitalPayment:        decimal.Zero,
			LoanPayment:           decimal.Zero,
			EffectiveCashFlow:     decimal.Zero,
			InitialEffective:      initialEffective,
			FinalEffective:        decimal.Zero,
		})
	}
	return entity.CostsExpensesProjection{Years: years}
}

// CalculateIncomeStatementProjection estado de resultados proyectado, años 1 a 5 (7.7).
//
//	ventas(y) = ventasBase × (1+crecimientoProducción)^y
//	gastos(y) = costoAnual × (1+inflación)^(y-1)
//
// Los gastos se reparten con porcentajes fijos de la plantilla; la depreciación es el 10%
// del equipo, constante en los cinco años.
func CalculateIncomeStatementProjection(
	rates entity.FinancialRates,
	demand []entity.DemandDetail,
	equipment []entity.Equipment,
	monthlyCostTotal decimal.Decimal,
) entity.IncomeStatementProjection {
	baseSales := BaseSales(demand)
	annualCost := monthlyCostTotal.Mul(twelve)
	depreciation := TotalInvestment(equipment).Mul(depreciationShare)

	years := make([]entity.YearlyIncomeStatement, 0, LastYear)
	for year := FirstOperatingYear; year <= LastYear; year++ {
		sales := baseSales.Mul(compound(rates.ProductionGrowth, year))
		expenses := annualCost.Mul(compound(rates.InflationRate, year-1))
		years = append(years, entity.YearlyIncomeStatement{
			Year:                year,
			Income:              sales,
			OperativeIncome:     sales,
			Sales:               sales,
			OperativeExpenses:   expenses,
			Total:               expenses,
			SalariesWages:       expenses.Mul(salariesShare),
			BasicServices:       expenses.Mul(basicServicesShare),
			Fuel:                expenses.Mul(fuelShare),
			Transport:           expenses.Mul(transportShare),
			Rent:                decimal.Zero,
			Advertising:         decimal.Zero,
			OtherExpenses:       expenses.Mul(otherExpensesShare),
			DepreciationExpense: depreciation,
			AmortizationExpense: decimal.Zero,
		})
	}
	return entity.IncomeStatementProjection{Years: years}
}
