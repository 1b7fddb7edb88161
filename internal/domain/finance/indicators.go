package finance

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// Parámetros del método de Newton para la TIR.
const (
	irrInitialGuess  = 0.1
	irrMaxIterations = 100
	irrTolerance     = 0.01
)

// NetPresentValue Σ flujo[t] / (1+rate)^t. rate es una fracción (0.10 = 10%).
func NetPresentValue(flows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	step := decimal.NewFromInt(1).Add(rate)
	factor := decimal.NewFromInt(1)
	npv := decimal.Zero
	for t, cf := range flows {
		if t > 0 {
			factor = factor.Mul(step)
		}
		if factor.IsZero() {
			continue
		}
		npv = npv.Add(cf.DivRound(factor, 16))
	}
	return npv
}

// IRRResult resultado del método de Newton.
type IRRResult struct {
	Percent    float64 // tasa final × 100, puede ser NaN o ±Inf
	Iterations int
	Converged  bool // |VAN| < 0.01 antes de agotar las iteraciones
	Finite     bool
}

// InternalRateOfReturn resuelve VAN(r) = 0 con Newton desde r = 0.10.
//
// Solo se limita el número de iteraciones: una derivada nula o una serie divergente
// dejan el último valor calculado, que puede no ser finito. Finite lo informa.
func InternalRateOfReturn(flows []decimal.Decimal) IRRResult {
	cf := make([]float64, len(flows))
	for i, f := range flows {
		cf[i] = f.InexactFloat64()
	}

	rate := irrInitialGuess
	res := IRRResult{}
	for i := 0; i < irrMaxIterations; i++ {
		npv, deriv := npvAt(cf, rate)
		res.Iterations = i + 1
		if math.Abs(npv) < irrTolerance {
			res.Converged = true
			break
		}
		rate -= npv / deriv
	}
	res.Percent = rate * 100
	res.Finite = !math.IsNaN(res.Percent) && !math.IsInf(res.Percent, 0)
	return res
}

// npvAt evalúa el VAN y su derivada respecto a la tasa.
func npvAt(cf []float64, rate float64) (npv, deriv float64) {
	for t, v := range cf {
		npv += v / math.Pow(1+rate, float64(t))
		if t > 0 {
			deriv -= float64(t) * v / math.Pow(1+rate, float64(t+1))
		}
	}
	return npv, deriv
}

// BenefitCostRatio Σ flujos positivos de los años 1..n / |flujo del año 0|.
// Sin desembolso inicial devuelve 0.
func BenefitCostRatio(flows []decimal.Decimal) decimal.Decimal {
	if len(flows) == 0 || flows[0].IsZero() {
		return decimal.Zero
	}
	benefits := decimal.Zero
	for _, cf := range flows[1:] {
		if cf.IsPositive() {
			benefits = benefits.Add(cf)
		}
	}
	return benefits.DivRound(flows[0].Abs(), 16)
}

// PaybackPeriod primer año ≥ 1 con recuperación acumulada no negativa.
func PaybackPeriod(table entity.InvestmentRecoveryTable) string {
	for _, y := range table.Years {
		if y.Year >= FirstOperatingYear && !y.AccumulatedRecovered.IsNegative() {
			return fmt.Sprintf("%d AÑOS", y.Year)
		}
	}
	return entity.PaybackBeyondHorizon
}

// CalculateFinancialIndicators VAN, TIR, B/C y PR a partir de la tabla de recuperación (7.8).
// discountRatePct está en porcentaje; 0 descuenta a tasa cero.
func CalculateFinancialIndicators(
	discountRatePct decimal.Decimal,
	table entity.InvestmentRecoveryTable,
) entity.FinancialIndicators {
	flows := table.CashFlows()
	irr := InternalRateOfReturn(flows)
	return entity.FinancialIndicators{
		VAN:       NetPresentValue(flows, discountRatePct.Div(hundred)),
		TIR:       irr.Percent,
		TIRFinite: irr.Finite,
		BC:        BenefitCostRatio(flows),
		PR:        PaybackPeriod(table),
	}
}
