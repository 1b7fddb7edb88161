package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// UnitCostSummary salida del agregador de costos unitarios (7.4).
type UnitCostSummary struct {
	UnitCosts          []entity.UnitCost
	ProductCostDetails []entity.ProductCostDetail // copia con UnitCost recalculado
	MonthlyCostTotal   decimal.Decimal
	AnnualCostTotal    decimal.Decimal
	// UnmatchedProducts productos con insumos pero sin demanda registrada; su costo
	// unitario queda en 0 en lugar de fallar.
	UnmatchedProducts []string
}

// AggregateUnitCosts combina los insumos de cada producto con su demanda mensual:
//
//	costoUnitario = Σ insumos / demandaMensual   (0 si no hay demanda o es 0)
//
// La demanda se busca por nombre de producto; si hay nombres repetidos gana el primero.
func AggregateUnitCosts(details []entity.ProductCostDetail, demand []entity.DemandDetail) UnitCostSummary {
	byName := make(map[string]decimal.Decimal, len(demand))
	for _, d := range demand {
		if _, seen := byName[d.ProductName]; !seen {
			byName[d.ProductName] = d.MonthlyDemand
		}
	}

	out := UnitCostSummary{
		UnitCosts:          make([]entity.UnitCost, 0, len(details)),
		ProductCostDetails: make([]entity.ProductCostDetail, 0, len(details)),
		MonthlyCostTotal:   decimal.Zero,
	}
	for _, p := range details {
		inputsTotal := p.InputsTotal()
		monthlyDemand, ok := byName[p.ProductName]
		if !ok {
			out.UnmatchedProducts = append(out.UnmatchedProducts, p.ProductName)
			monthlyDemand = decimal.Zero
		}
		unitCost := decimal.Zero
		if monthlyDemand.IsPositive() {
			unitCost = inputsTotal.Div(monthlyDemand)
		}

		detail := p
		detail.UnitCost = unitCost
		out.ProductCostDetails = append(out.ProductCostDetails, detail)

		out.UnitCosts = append(out.UnitCosts, entity.UnitCost{
			ProductName: p.ProductName,
			Unit:        entity.UnitCostUnit,
			Quantity:    monthlyDemand,
			UnitPrice:   unitCost,
			TotalCost:   inputsTotal,
		})
		out.MonthlyCostTotal = out.MonthlyCostTotal.Add(inputsTotal)
	}
	out.AnnualCostTotal = out.MonthlyCostTotal.Mul(twelve)
	return out
}
