package finance

import (
	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// CalculateFinancingStructure clasifica cada equipo por fuente de financiamiento (7.5).
// Un tipo vacío o desconocido cuenta como fuente propia, así cada ítem tiene
// exactamente una fuente marcada. La participación es fija en 100%.
func CalculateFinancingStructure(equipment []entity.Equipment) entity.FinancingStructure {
	items := make([]entity.FinancingItem, 0, len(equipment))
	for _, eq := range equipment {
		item := entity.FinancingItem{
			Description: eq.Description,
			Investment:  eq.TotalCost,
		}
		switch eq.FinancingType {
		case entity.FinancingDonation:
			item.DonationSource = true
		case entity.FinancingLoan:
			item.LoanSource = true
		default:
			item.OwnSource = true
		}
		items = append(items, item)
	}
	return entity.FinancingStructure{
		Items:                   items,
		TotalInvestment:         TotalInvestment(equipment),
		ParticipationPercentage: participationPercentage,
	}
}
