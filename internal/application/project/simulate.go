package project

import (
	"fmt"

	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/domain/finance"
	"github.com/jhoicas/semillero-api/internal/domain/plan"
)

// Simulate arma el proyecto desde una instantánea y corre el motor sin persistir nada.
// Aplica las mismas validaciones que Create y UpdateCostStructure.
func Simulate(in dto.PlanSnapshot) (*entity.Project, *dto.ProjectionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, nil, err
	}
	p, err := newProject("", in.CreateProjectRequest)
	if err != nil {
		return nil, nil, err
	}

	cs := mergeCostStructureInputs(p.CostStructure, in.CostStructure)
	if err := plan.ValidateCostStructure(cs); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	res := finance.ProjectFinancials(cs)
	p.CostStructure = res.Apply(cs)
	return p, toProjectionResponse(p, res), nil
}
