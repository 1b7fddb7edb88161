package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/domain/finance"
)

func completeProject() *entity.Project {
	cs := entity.CostStructure{
		FinancialRates: &entity.FinancialRates{
			ProductionGrowth: decimal.NewFromInt(10),
			DiscountRate:     decimal.NewFromInt(12),
			InflationRate:    decimal.NewFromInt(3),
		},
		DemandDetails: []entity.DemandDetail{
			{ProductName: "Pan", MonthlyDemand: decimal.NewFromInt(300), PVP: decimal.NewFromInt(2)},
		},
		Equipment: []entity.Equipment{
			{Description: "Horno", AnnualQuantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(800), TotalCost: decimal.NewFromInt(800), FinancingType: entity.FinancingOwn},
		},
		ProductCostDetails: []entity.ProductCostDetail{
			{ProductName: "Pan", Inputs: []entity.ProductInput{
				{Name: "Harina", Unit: "KG", Quantity: decimal.NewFromInt(50), UnitPrice: decimal.NewFromInt(3), TotalCost: decimal.NewFromInt(150)},
			}},
		},
		Financing: "Ahorros familiares y reinversión de utilidades",
	}
	return &entity.Project{
		ID: "p-1",
		GeneralData: entity.GeneralData{
			ProjectName: "Panadería La Espiga", RepresentativeName: "María Pérez", CI: "1710034065",
			Province: "PICHINCHA", Canton: "QUITO", Parish: "IÑAQUITO",
		},
		BusinessDescription: strings.Repeat("Elaboramos pan artesanal con harina local. ", 8),
		Team:                []entity.TeamMember{{Name: "María Pérez", Role: "Gerente", Experience: "10 años"}},
		CostStructure:       finance.ProjectFinancials(cs).Apply(cs),
	}
}

func TestGenerateProjectPDF_Completo(t *testing.T) {
	g := NewMarotoReportGenerator("Programa Semillero", "$")

	out, err := g.GenerateProjectPDF(context.Background(), completeProject())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateProjectPDF_SinProyeccion(t *testing.T) {
	g := NewMarotoReportGenerator("Programa Semillero", "$")
	p := &entity.Project{GeneralData: entity.GeneralData{ProjectName: "Huerto"}}

	out, err := g.GenerateProjectPDF(context.Background(), p)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateProjectPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarotoReportGenerator("", "$").GenerateProjectPDF(ctx, completeProject())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrapText(t *testing.T) {
	lines := wrapText("uno dos tres cuatro cinco", 9)
	assert.Equal(t, []string{"uno dos", "tres", "cuatro", "cinco"}, lines)

	for _, l := range wrapText(strings.Repeat("pequeño ", 40), 30) {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), 30)
	}
	assert.Empty(t, wrapText("  \n ", 10))
}

func TestFinancingSource(t *testing.T) {
	assert.Equal(t, entity.FinancingLoan, financingSource(entity.FinancingItem{LoanSource: true}))
	assert.Equal(t, entity.FinancingDonation, financingSource(entity.FinancingItem{DonationSource: true}))
	assert.Equal(t, entity.FinancingOwn, financingSource(entity.FinancingItem{OwnSource: true}))
}
