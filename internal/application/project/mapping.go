package project

import (
	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/domain/finance"
)

func toGeneralData(in dto.GeneralDataRequest) entity.GeneralData {
	return entity.GeneralData{
		ProjectName:        in.ProjectName,
		Logo:               in.Logo,
		RepresentativeName: in.RepresentativeName,
		CI:                 in.CI,
		Gender:             in.Gender,
		Nationality:        in.Nationality,
		BirthDate:          in.BirthDate,
		Province:           in.Province,
		Canton:             in.Canton,
		Parish:             in.Parish,
		Address:            in.Address,
		Email:              in.Email,
		ConventionalPhone:  in.ConventionalPhone,
		CellPhone:          in.CellPhone,
		HasRUC:             in.HasRUC,
		RUC:                in.RUC,
		StartDate:          in.StartDate,
	}
}

func toTeam(in []dto.TeamMemberRequest) []entity.TeamMember {
	out := make([]entity.TeamMember, 0, len(in))
	for _, m := range in {
		out = append(out, entity.TeamMember{Name: m.Name, Experience: m.Experience, Role: m.Role})
	}
	return out
}

// mergeCostStructureInputs reemplaza las entradas crudas de prev y conserva sus tablas
// derivadas; el motor decide después cuáles se recalculan. Los totales de equipos e
// insumos se calculan aquí, nunca se aceptan del cliente.
func mergeCostStructureInputs(prev entity.CostStructure, in dto.CostStructureRequest) entity.CostStructure {
	cs := prev
	cs.FinancialRates = nil
	if r := in.FinancialRates; r != nil {
		cs.FinancialRates = &entity.FinancialRates{
			ProductionGrowth: r.ProductionGrowth,
			PriceGrowth:      r.PriceGrowth,
			DiscountRate:     r.DiscountRate,
			InflationRate:    r.InflationRate,
			SalaryIncrease:   r.SalaryIncrease,
		}
	}

	cs.DemandDetails = make([]entity.DemandDetail, 0, len(in.DemandDetails))
	for _, d := range in.DemandDetails {
		cs.DemandDetails = append(cs.DemandDetails, entity.DemandDetail{
			ProductName:   d.ProductName,
			MonthlyDemand: d.MonthlyDemand,
			PVP:           d.PVP,
		})
	}

	cs.Equipment = make([]entity.Equipment, 0, len(in.Equipment))
	for _, e := range in.Equipment {
		cs.Equipment = append(cs.Equipment, entity.Equipment{
			Description:    e.Description,
			AnnualQuantity: e.AnnualQuantity,
			UnitPrice:      e.UnitPrice,
			TotalCost:      e.AnnualQuantity.Mul(e.UnitPrice),
			AccountName:    e.AccountName,
			FinancingType:  e.FinancingType,
		})
	}

	cs.ProductCostDetails = make([]entity.ProductCostDetail, 0, len(in.ProductCostDetails))
	for _, p := range in.ProductCostDetails {
		inputs := make([]entity.ProductInput, 0, len(p.Inputs))
		for _, pi := range p.Inputs {
			inputs = append(inputs, entity.ProductInput{
				Name:      pi.Name,
				Unit:      pi.Unit,
				Quantity:  pi.Quantity,
				UnitPrice: pi.UnitPrice,
				TotalCost: pi.Quantity.Mul(pi.UnitPrice),
			})
		}
		cs.ProductCostDetails = append(cs.ProductCostDetails, entity.ProductCostDetail{
			ProductName: p.ProductName,
			Inputs:      inputs,
		})
	}

	cs.AdministrativeProvisions = in.AdministrativeProvisions
	cs.Financing = in.Financing
	return cs
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	team := p.Team
	if team == nil {
		team = []entity.TeamMember{}
	}
	return &dto.ProjectResponse{
		ID:                        p.ID,
		OwnerID:                   p.OwnerID,
		GeneralData:               p.GeneralData,
		BusinessDescription:       p.BusinessDescription,
		ValueProposition:          p.ValueProposition,
		Team:                      team,
		CommunicationChannels:     p.CommunicationChannels,
		CommercializationChannels: p.CommercializationChannels,
		SupplyChain:               p.SupplyChain,
		KeyPartners:               p.KeyPartners,
		CustomerSegments:          p.CustomerSegments,
		CostStructure:             p.CostStructure,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

func toSkippedStages(skipped []finance.SkippedStage) []dto.SkippedStageResponse {
	out := make([]dto.SkippedStageResponse, 0, len(skipped))
	for _, s := range skipped {
		out = append(out, dto.SkippedStageResponse{Stage: string(s.Stage), Reason: s.Reason.Error()})
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// toProjectionResponse tablas vigentes del proyecto más lo que informó la corrida res.
func toProjectionResponse(p *entity.Project, res finance.Result) *dto.ProjectionResponse {
	cs := p.CostStructure
	return &dto.ProjectionResponse{
		ProjectID:                 p.ID,
		Complete:                  res.Complete(),
		SkippedStages:             toSkippedStages(res.Skipped),
		UnmatchedProducts:         nonNilStrings(res.UnmatchedProducts),
		UnitCosts:                 cs.UnitCosts,
		MonthlyCostTotal:          cs.MonthlyCostTotal,
		AnnualCostTotal:           cs.AnnualCostTotal,
		FinancingStructure:        cs.FinancingStructure,
		IncomeProjection:          cs.IncomeProjection,
		CostsExpensesProjection:   cs.CostsExpensesProjection,
		IncomeStatementProjection: cs.IncomeStatementProjection,
		InvestmentRecoveryTable:   cs.InvestmentRecoveryTable,
		FinancialIndicators:       cs.FinancialIndicators,
	}
}
