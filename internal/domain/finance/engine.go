package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// Stage etapa del motor de proyección.
type Stage string

const (
	StageUnitCosts                 Stage = "unit_costs"
	StageFinancingStructure        Stage = "financing_structure"
	StageIncomeProjection          Stage = "income_projection"
	StageCostsExpensesProjection   Stage = "costs_expenses_projection"
	StageIncomeStatementProjection Stage = "income_statement_projection"
	StageInvestmentRecovery        Stage = "investment_recovery"
	StageFinancialIndicators       Stage = "financial_indicators"
)

// ErrMissingInput falta un grupo de datos que la etapa necesita.
var ErrMissingInput = errors.New("faltan datos de entrada")

// SkippedStage etapa omitida y el motivo (envuelve ErrMissingInput).
type SkippedStage struct {
	Stage  Stage
	Reason error
}

// Result tablas derivadas de una corrida del motor. Un campo nil es una etapa que no corrió.
type Result struct {
	UnitCosts          []entity.UnitCost
	ProductCostDetails []entity.ProductCostDetail
	MonthlyCostTotal   *decimal.Decimal
	AnnualCostTotal    *decimal.Decimal

	FinancingStructure        *entity.FinancingStructure
	IncomeProjection          *entity.IncomeProjection
	CostsExpensesProjection   *entity.CostsExpensesProjection
	IncomeStatementProjection *entity.IncomeStatementProjection
	InvestmentRecoveryTable   *entity.InvestmentRecoveryTable
	FinancialIndicators       *entity.FinancialIndicators

	Skipped           []SkippedStage
	UnmatchedProducts []string
}

var projectionStages = []Stage{
	StageFinancingStructure,
	StageIncomeProjection,
	StageCostsExpensesProjection,
	StageIncomeStatementProjection,
	StageInvestmentRecovery,
	StageFinancialIndicators,
}

// ProjectFinancials corre todo el pipeline sobre una instantánea de la estructura de costos.
//
// Los costos unitarios requieren detalle de insumos y demanda. Las proyecciones requieren
// además tasas y al menos un equipo; si falta algo la etapa se reporta en Skipped y su
// campo queda en nil. No modifica cs.
func ProjectFinancials(cs entity.CostStructure) Result {
	var res Result

	if len(cs.ProductCostDetails) == 0 || len(cs.DemandDetails) == 0 {
		res.skip(StageUnitCosts, "se requieren detalle de insumos y demanda")
		for _, s := range projectionStages {
			res.skip(s, "se requieren costos unitarios")
		}
		return res
	}

	summary := AggregateUnitCosts(cs.ProductCostDetails, cs.DemandDetails)
	monthly, annual := summary.MonthlyCostTotal, summary.AnnualCostTotal
	res.UnitCosts = summary.UnitCosts
	res.ProductCostDetails = summary.ProductCostDetails
	res.MonthlyCostTotal = &monthly
	res.AnnualCostTotal = &annual
	res.UnmatchedProducts = summary.UnmatchedProducts

	var reason string
	switch {
	case cs.FinancialRates == nil && len(cs.Equipment) == 0:
		reason = "se requieren tasas financieras y equipos"
	case cs.FinancialRates == nil:
		reason = "se requieren tasas financieras"
	case len(cs.Equipment) == 0:
		reason = "se requiere al menos un equipo"
	}
	if reason != "" {
		for _, s := range projectionStages {
			res.skip(s, reason)
		}
		return res
	}

	rates := *cs.FinancialRates
	financing := CalculateFinancingStructure(cs.Equipment)
	income := CalculateIncomeProjection(rates, cs.DemandDetails, cs.Equipment, monthly)
	costs := CalculateCostsExpensesProjection(rates, cs.Equipment, monthly)
	statement := CalculateIncomeStatementProjection(rates, cs.DemandDetails, cs.Equipment, monthly)
	recovery := CalculateInvestmentRecovery(cs.Equipment, statement)
	indicators := CalculateFinancialIndicators(rates.DiscountRate, recovery)

	res.FinancingStructure = &financing
	res.IncomeProjection = &income
	res.CostsExpensesProjection = &costs
	res.IncomeStatementProjection = &statement
	res.InvestmentRecoveryTable = &recovery
	res.FinancialIndicators = &indicators
	return res
}

func (r *Result) skip(stage Stage, reason string) {
	r.Skipped = append(r.Skipped, SkippedStage{
		Stage:  stage,
		Reason: fmt.Errorf("%s: %w", reason, ErrMissingInput),
	})
}

// Ran indica si la etapa se ejecutó.
func (r Result) Ran(stage Stage) bool {
	for _, s := range r.Skipped {
		if s.Stage == stage {
			return false
		}
	}
	return true
}

// Complete todas las etapas corrieron.
func (r Result) Complete() bool { return len(r.Skipped) == 0 }

// Apply devuelve una copia de cs con los campos de las etapas que corrieron.
// Los de etapas omitidas conservan el valor previo, no se limpian.
func (r Result) Apply(cs entity.CostStructure) entity.CostStructure {
	out := cs
	if r.Ran(StageUnitCosts) {
		out.UnitCosts = r.UnitCosts
		out.ProductCostDetails = r.ProductCostDetails
		out.MonthlyCostTotal = r.MonthlyCostTotal
		out.AnnualCostTotal = r.AnnualCostTotal
	}
	if r.Ran(StageFinancingStructure) {
		out.FinancingStructure = r.FinancingStructure
	}
	if r.Ran(StageIncomeProjection) {
		out.IncomeProjection = r.IncomeProjection
	}
	if r.Ran(StageCostsExpensesProjection) {
		out.CostsExpensesProjection = r.CostsExpensesProjection
	}
	if r.Ran(StageIncomeStatementProjection) {
		out.IncomeStatementProjection = r.IncomeStatementProjection
	}
	if r.Ran(StageInvestmentRecovery) {
		out.InvestmentRecoveryTable = r.InvestmentRecoveryTable
	}
	if r.Ran(StageFinancialIndicators) {
		out.FinancialIndicators = r.FinancialIndicators
	}
	return out
}
