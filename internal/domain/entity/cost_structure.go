package entity

import "github.com/shopspring/decimal"

// Tipos de financiamiento de un equipo (7.3). Vacío equivale a FinancingOwn.
const (
	FinancingOwn      = "PROPIA"
	FinancingDonation = "DONACIÓN"
	FinancingLoan     = "PRÉSTAMO"
)

// UnitCostUnit unidad fija de las filas de costo unitario (7.4).
const UnitCostUnit = "UNIDAD"

// FinancialRates tasas de la sección 7.1, en porcentaje [0,100].
// PriceGrowth se captura pero ninguna proyección la aplica.
type FinancialRates struct {
	ProductionGrowth decimal.Decimal `json:"production_growth"`
	PriceGrowth      decimal.Decimal `json:"price_growth"`
	DiscountRate     decimal.Decimal `json:"discount_rate"`
	InflationRate    decimal.Decimal `json:"inflation_rate"`
	SalaryIncrease   decimal.Decimal `json:"salary_increase"`
}

// DemandDetail demanda mensual y PVP de un producto o servicio (7.2).
// ProductName es la llave que une la demanda con el detalle de insumos.
type DemandDetail struct {
	ProductName   string          `json:"product_name"`
	MonthlyDemand decimal.Decimal `json:"monthly_demand"`
	PVP           decimal.Decimal `json:"pvp"`
}

// Equipment equipo o maquinaria de la inversión inicial (7.3).
type Equipment struct {
	Description    string          `json:"description"`
	AnnualQuantity decimal.Decimal `json:"annual_quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalCost      decimal.Decimal `json:"total_cost"` // AnnualQuantity * UnitPrice
	AccountName    string          `json:"account_name,omitempty"`
	FinancingType  string          `json:"financing_type,omitempty"`
}

// ProductInput insumo (materia prima) de un producto.
type ProductInput struct {
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TotalCost decimal.Decimal `json:"total_cost"` // Quantity * UnitPrice
}

// ProductCostDetail insumos de un producto y su costo unitario derivado.
type ProductCostDetail struct {
	ProductName string          `json:"product_name"`
	Inputs      []ProductInput  `json:"inputs"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// InputsTotal suma el costo total de los insumos del producto.
func (p ProductCostDetail) InputsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, in := range p.Inputs {
		total = total.Add(in.TotalCost)
	}
	return total
}

// UnitCost fila resumen de costo unitario por producto (7.4).
type UnitCost struct {
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

// CostStructure raíz agregada de la sección 7: entradas del usuario y tablas derivadas.
// Los campos puntero ausentes (nil) significan "aún no calculado/capturado", nunca cero.
type CostStructure struct {
	FinancialRates     *FinancialRates     `json:"financial_rates,omitempty"`
	DemandDetails      []DemandDetail      `json:"demand_details,omitempty"`
	Equipment          []Equipment         `json:"equipment"`
	ProductCostDetails []ProductCostDetail `json:"product_cost_details,omitempty"`

	UnitCosts        []UnitCost       `json:"unit_costs,omitempty"`
	MonthlyCostTotal *decimal.Decimal `json:"monthly_cost_total,omitempty"`
	AnnualCostTotal  *decimal.Decimal `json:"annual_cost_total,omitempty"`

	AdministrativeProvisions string `json:"administrative_provisions,omitempty"`
	Financing                string `json:"financing"`

	FinancingStructure        *FinancingStructure        `json:"financing_structure,omitempty"`
	IncomeProjection          *IncomeProjection          `json:"income_projection,omitempty"`
	CostsExpensesProjection   *CostsExpensesProjection   `json:"costs_expenses_projection,omitempty"`
	IncomeStatementProjection *IncomeStatementProjection `json:"income_statement_projection,omitempty"`
	InvestmentRecoveryTable   *InvestmentRecoveryTable   `json:"investment_recovery_table,omitempty"`
	FinancialIndicators       *FinancialIndicators       `json:"financial_indicators,omitempty"`
}
