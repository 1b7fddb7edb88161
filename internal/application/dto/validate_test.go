package dto_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/internal/domain"
)

func validCostStructure() dto.CostStructureRequest {
	return dto.CostStructureRequest{
		FinancialRates: &dto.FinancialRatesRequest{
			ProductionGrowth: decimal.NewFromInt(10),
			DiscountRate:     decimal.NewFromInt(12),
		},
		DemandDetails: []dto.DemandDetailRequest{
			{ProductName: "Pan", MonthlyDemand: decimal.NewFromInt(300), PVP: decimal.NewFromInt(2)},
			{ProductName: "Torta", MonthlyDemand: decimal.NewFromInt(20), PVP: decimal.NewFromInt(15)},
		},
		Equipment: []dto.EquipmentRequest{
			{Description: "Horno", AnnualQuantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(800), FinancingType: "PRÉSTAMO"},
		},
	}
}

func TestValidate_CostStructureValida(t *testing.T) {
	require.NoError(t, dto.Validate(validCostStructure()))
}

func TestValidate_TasaFueraDeRango(t *testing.T) {
	in := validCostStructure()
	in.FinancialRates.InflationRate = decimal.NewFromInt(150)

	err := dto.Validate(in)

	var verr *dto.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "max=100", verr.Fields["financial_rates.inflation_rate"])
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestValidate_ProductoRepetidoEnDemanda(t *testing.T) {
	in := validCostStructure()
	in.DemandDetails[1].ProductName = "Pan"

	err := dto.Validate(in)

	var verr *dto.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "unique=ProductName", verr.Fields["demand_details"])
}

func TestValidate_TipoDeFinanciamiento(t *testing.T) {
	in := validCostStructure()
	in.Equipment[0].FinancingType = "LEASING"
	in.Equipment[0].AnnualQuantity = decimal.Zero

	err := dto.Validate(in)

	var verr *dto.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "equipment[0].financing_type")
	assert.Equal(t, "min=1", verr.Fields["equipment[0].annual_quantity"])
}

func TestValidate_RUCObligatorioSiLoDeclara(t *testing.T) {
	g := dto.GeneralDataRequest{
		ProjectName: "Panadería", RepresentativeName: "María Pérez", CI: "1710034065",
		Gender: "FEMENINO", Nationality: "ECUATORIANA", BirthDate: "1990-05-01",
		Province: "PICHINCHA", Canton: "QUITO", Parish: "IÑAQUITO", Address: "Av. Amazonas N24",
		Email: "maria@example.com", CellPhone: "0991234567", StartDate: "2024-01-15",
	}
	require.NoError(t, dto.Validate(g))

	g.HasRUC = true
	err := dto.Validate(g)

	var verr *dto.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields["ruc"], "required_if")
}
