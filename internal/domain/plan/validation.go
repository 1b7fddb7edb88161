// Package plan contiene validaciones de dominio del plan de negocio que van más allá
// del formato de los campos: identificación del representante (pkg/sri) y coherencia
// de la estructura de costos antes de correr el motor financiero.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/pkg/sri"
)

// ErrInvalidPlan agrupa errores de validación del plan.
var ErrInvalidPlan = errors.New("plan de negocio inválido")

var hundred = decimal.NewFromInt(100)

// ValidateGeneralData valida cédula, RUC (si declara tenerlo) y provincia.
func ValidateGeneralData(g entity.GeneralData) error {
	var errs []error
	if err := sri.ValidateCedula(g.CI); err != nil {
		errs = append(errs, fmt.Errorf("ci: %w", err))
	}
	if g.HasRUC {
		if err := sri.ValidateRUC(g.RUC); err != nil {
			errs = append(errs, fmt.Errorf("ruc: %w", err))
		}
	}
	if g.Province != "" && !sri.IsKnownProvince(g.Province) {
		errs = append(errs, fmt.Errorf("province: provincia desconocida %q", g.Province))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidPlan}, errs...)...)
	}
	return nil
}

// ValidateCostStructure comprueba lo que el motor asume de sus entradas:
// nombres de producto únicos y no vacíos en la demanda, tasas en [0,100] y totales
// de equipos e insumos iguales a cantidad × precio.
func ValidateCostStructure(cs entity.CostStructure) error {
	var errs []error

	if r := cs.FinancialRates; r != nil {
		rates := map[string]decimal.Decimal{
			"production_growth": r.ProductionGrowth,
			"price_growth":      r.PriceGrowth,
			"discount_rate":     r.DiscountRate,
			"inflation_rate":    r.InflationRate,
			"salary_increase":   r.SalaryIncrease,
		}
		for _, name := range []string{"production_growth", "price_growth", "discount_rate", "inflation_rate", "salary_increase"} {
			v := rates[name]
			if v.IsNegative() || v.GreaterThan(hundred) {
				errs = append(errs, fmt.Errorf("%s: debe estar entre 0 y 100, se recibió %s", name, v))
			}
		}
	}

	seen := make(map[string]bool, len(cs.DemandDetails))
	for i, d := range cs.DemandDetails {
		name := strings.TrimSpace(d.ProductName)
		if name == "" {
			errs = append(errs, fmt.Errorf("demand_details[%d]: el nombre del producto es requerido", i))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("demand_details[%d]: producto repetido %q", i, name))
		}
		seen[name] = true
		if d.MonthlyDemand.IsNegative() || d.PVP.IsNegative() {
			errs = append(errs, fmt.Errorf("demand_details[%d]: demanda y PVP no pueden ser negativos", i))
		}
	}

	for i, eq := range cs.Equipment {
		expected := eq.AnnualQuantity.Mul(eq.UnitPrice)
		if !eq.TotalCost.Equal(expected) {
			errs = append(errs, fmt.Errorf("equipment[%d]: total (%s) no coincide con cantidad × precio (%s)", i, eq.TotalCost, expected))
		}
		switch eq.FinancingType {
		case "", entity.FinancingOwn, entity.FinancingDonation, entity.FinancingLoan:
		default:
			errs = append(errs, fmt.Errorf("equipment[%d]: tipo de financiamiento desconocido %q", i, eq.FinancingType))
		}
	}

	for i, p := range cs.ProductCostDetails {
		for j, in := range p.Inputs {
			expected := in.Quantity.Mul(in.UnitPrice)
			if !in.TotalCost.Equal(expected) {
				errs = append(errs, fmt.Errorf("product_cost_details[%d].inputs[%d]: total (%s) no coincide con cantidad × precio (%s)", i, j, in.TotalCost, expected))
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidPlan}, errs...)...)
	}
	return nil
}
