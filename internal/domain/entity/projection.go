package entity

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// PaybackBeyondHorizon etiqueta del período de recuperación cuando no se recupera en 5 años.
const PaybackBeyondHorizon = "MAYOR A LOS 5 AÑOS"

// FinancingItem clasificación de un equipo por fuente de financiamiento (7.5).
type FinancingItem struct {
	Description    string          `json:"description"`
	Investment     decimal.Decimal `json:"investment"`
	OwnSource      bool            `json:"own_source"`
	DonationSource bool            `json:"donation_source"`
	LoanSource     bool            `json:"loan_source"`
}

// FinancingStructure estructura del financiamiento (7.5).
type FinancingStructure struct {
	Items                   []FinancingItem `json:"items"`
	TotalInvestment         decimal.Decimal `json:"total_investment"`
	ParticipationPercentage decimal.Decimal `json:"participation_percentage"`
}

// YearlyProjection fila de la proyección de ingresos (7.6). Año 0 = inversión inicial.
type YearlyProjection struct {
	Year                int             `json:"year"`
	Entries             decimal.Decimal `json:"entries"`
	Sales               decimal.Decimal `json:"sales"`
	CapitalContribution decimal.Decimal `json:"capital_contribution"`
	Loan                decimal.Decimal `json:"loan"`
	Exits               decimal.Decimal `json:"exits"`
	ForInvestment       decimal.Decimal `json:"for_investment"`
	WorkingCapital      decimal.Decimal `json:"working_capital"`
	FixedAsset          decimal.Decimal `json:"fixed_asset"`
	DeferredAsset       decimal.Decimal `json:"deferred_asset"`
	OtherAssets         decimal.Decimal `json:"other_assets"`
	ForCostsAndExpenses decimal.Decimal `json:"for_costs_and_expenses"`
}

// IncomeProjection años 0 a 5.
type IncomeProjection struct {
	Years []YearlyProjection `json:"years"`
}

// YearlyCostsExpenses fila de la proyección de costos y gastos.
type YearlyCostsExpenses struct {
	Year                  int             `json:"year"`
	TotalVariableCost     decimal.Decimal `json:"total_variable_cost"`
	MaterialCost          decimal.Decimal `json:"material_cost"`
	Salaries              decimal.Decimal `json:"salaries"`
	BasicServices         decimal.Decimal `json:"basic_services"`
	Fuel                  decimal.Decimal `json:"fuel"`
	Transport             decimal.Decimal `json:"transport"`
	Rent                  decimal.Decimal `json:"rent"`
	Advertising           decimal.Decimal `json:"advertising"`
	OtherExpenses         decimal.Decimal `json:"other_expenses"`
	DepreciationExpense   decimal.Decimal `json:"depreciation_expense"`
	FinancialExpense      decimal.Decimal `json:"financial_expense"`
	DepreciationExpense15 decimal.Decimal `json:"depreciation_expense_15"`
	IncomeTax25           decimal.Decimal `json:"income_tax_25"`
	CapitalPayment        decimal.Decimal `json:"capital_payment"`
	LoanPayment           decimal.Decimal `json:"loan_payment"`
	EffectiveCashFlow     decimal.Decimal `json:"effective_cash_flow"`
	InitialEffective      decimal.Decimal `json:"initial_effective"`
	FinalEffective        decimal.Decimal `json:"final_effective"`
}

// CostsExpensesProjection años 1 a 5.
type CostsExpensesProjection struct {
	Years []YearlyCostsExpenses `json:"years"`
}

// YearlyIncomeStatement fila del estado de resultados proyectado (7.7).
type YearlyIncomeStatement struct {
	Year                int             `json:"year"`
	Income              decimal.Decimal `json:"income"`
	OperativeIncome     decimal.Decimal `json:"operative_income"`
	Sales               decimal.Decimal `json:"sales"`
	OperativeExpenses   decimal.Decimal `json:"operative_expenses"`
	Total               decimal.Decimal `json:"total"`
	SalariesWages       decimal.Decimal `json:"salaries_wages"`
	BasicServices       decimal.Decimal `json:"basic_services"`
	Fuel                decimal.Decimal `json:"fuel"`
	Transport           decimal.Decimal `json:"transport"`
	Rent                decimal.Decimal `json:"rent"`
	Advertising         decimal.Decimal `json:"advertising"`
	OtherExpenses       decimal.Decimal `json:"other_expenses"`
	DepreciationExpense decimal.Decimal `json:"depreciation_expense"`
	AmortizationExpense decimal.Decimal `json:"amortization_expense"`
}

// IncomeStatementProjection años 1 a 5.
type IncomeStatementProjection struct {
	Years []YearlyIncomeStatement `json:"years"`
}

// YearlyInvestmentRecovery fila de la tabla de recuperación de la inversión (7.9).
type YearlyInvestmentRecovery struct {
	Year                 int             `json:"year"`
	NetCashFlow          decimal.Decimal `json:"net_cash_flow"`
	AccumulatedRecovered decimal.Decimal `json:"accumulated_recovered"`
	RemainingBalance     decimal.Decimal `json:"remaining_balance"`
}

// InvestmentRecoveryTable años 0 a 5.
type InvestmentRecoveryTable struct {
	Years []YearlyInvestmentRecovery `json:"years"`
}

// CashFlows devuelve el flujo neto de cada año en orden.
func (t InvestmentRecoveryTable) CashFlows() []decimal.Decimal {
	flows := make([]decimal.Decimal, len(t.Years))
	for i, y := range t.Years {
		flows[i] = y.NetCashFlow
	}
	return flows
}

// FinancialIndicators indicadores de la sección 7.8.
// TIR es float64 en porcentaje y puede no ser finita (NaN/Inf) si Newton no converge;
// TIRFinite lo indica para que la presentación decida cómo mostrarla.
type FinancialIndicators struct {
	VAN       decimal.Decimal `json:"van"`
	TIR       float64         `json:"tir"`
	TIRFinite bool            `json:"tir_finite"`
	BC        decimal.Decimal `json:"bc"`
	PR        string          `json:"pr"`
}

type financialIndicatorsJSON struct {
	VAN       decimal.Decimal `json:"van"`
	TIR       *float64        `json:"tir"`
	TIRFinite bool            `json:"tir_finite"`
	BC        decimal.Decimal `json:"bc"`
	PR        string          `json:"pr"`
}

// MarshalJSON serializa una TIR no finita como null: JSON no admite NaN ni Inf.
func (f FinancialIndicators) MarshalJSON() ([]byte, error) {
	out := financialIndicatorsJSON{VAN: f.VAN, TIRFinite: f.TIRFinite, BC: f.BC, PR: f.PR}
	if !math.IsNaN(f.TIR) && !math.IsInf(f.TIR, 0) {
		tir := f.TIR
		out.TIR = &tir
	}
	return json.Marshal(out)
}

// UnmarshalJSON restaura una TIR null como NaN con TIRFinite en false.
func (f *FinancialIndicators) UnmarshalJSON(data []byte) error {
	var in financialIndicatorsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	f.VAN, f.BC, f.PR, f.TIRFinite = in.VAN, in.BC, in.PR, in.TIRFinite
	if in.TIR == nil {
		f.TIR = math.NaN()
		f.TIRFinite = false
		return nil
	}
	f.TIR = *in.TIR
	return nil
}
