// Package project casos de uso del plan de negocio: perfil por secciones, estructura de
// costos con recálculo de la proyección financiera y reporte PDF.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/domain/finance"
	"github.com/jhoicas/semillero-api/internal/domain/plan"
	"github.com/jhoicas/semillero-api/internal/domain/repository"
	"github.com/jhoicas/semillero-api/pkg/logger"
)

// ProjectUseCase CRUD del perfil y recálculo de la estructura de costos.
type ProjectUseCase struct {
	repo repository.ProjectRepository
	log  *logger.Logger
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, log *logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, log: log.Component("project")}
}

// Create registra un perfil nuevo. La estructura de costos empieza vacía.
func (uc *ProjectUseCase) Create(ctx context.Context, actor Actor, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p, err := newProject(actor.UserID, in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("project: crear: %w", err)
	}
	uc.log.Info().Str("project_id", p.ID).Str("owner_id", p.OwnerID).Msg("proyecto creado")
	return toProjectResponse(p), nil
}

// GetByID devuelve el proyecto si el actor puede leerlo.
func (uc *ProjectUseCase) GetByID(ctx context.Context, actor Actor, id string) (*dto.ProjectResponse, error) {
	p, err := uc.load(ctx, actor, id, false)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(p), nil
}

// List proyectos del actor con el resumen de indicadores.
func (uc *ProjectUseCase) List(ctx context.Context, actor Actor, page dto.PageRequest) (*dto.ProjectListResponse, error) {
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	rows, err := uc.repo.ListByOwner(ctx, actor.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("project: listar: %w", err)
	}
	items := make([]dto.ProjectSummaryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ProjectSummaryResponse{
			ID:          r.ID,
			ProjectName: r.ProjectName,
			VAN:         r.VAN,
			TIR:         r.TIR,
			PR:          r.PR,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina el proyecto (solo el dueño).
func (uc *ProjectUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := uc.load(ctx, actor, id, true); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("project: eliminar: %w", err)
	}
	uc.log.Info().Str("project_id", id).Msg("proyecto eliminado")
	return nil
}

// UpdateSection reemplaza una sección del perfil. El cuerpo depende de la sección:
// general-data usa GeneralDataRequest, team usa TeamRequest y las narrativas {"text": ...}.
func (uc *ProjectUseCase) UpdateSection(ctx context.Context, actor Actor, id string, in dto.UpdateSectionRequest) (*dto.ProjectResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p, err := uc.load(ctx, actor, id, true)
	if err != nil {
		return nil, err
	}

	switch in.Section {
	case entity.SectionGeneralData:
		var body dto.GeneralDataRequest
		if err := decodeSection(in.Body, &body); err != nil {
			return nil, err
		}
		general := toGeneralData(body)
		if err := plan.ValidateGeneralData(general); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		p.GeneralData = general
	case entity.SectionTeam:
		var body dto.TeamRequest
		if err := decodeSection(in.Body, &body); err != nil {
			return nil, err
		}
		p.Team = toTeam(body.Members)
	case entity.SectionBusinessDescription, entity.SectionValueProposition:
		var body dto.LongNarrativeRequest
		if err := decodeSection(in.Body, &body); err != nil {
			return nil, err
		}
		if in.Section == entity.SectionBusinessDescription {
			p.BusinessDescription = body.Text
		} else {
			p.ValueProposition = body.Text
		}
	default:
		var body dto.NarrativeRequest
		if err := decodeSection(in.Body, &body); err != nil {
			return nil, err
		}
		switch in.Section {
		case entity.SectionCommunicationChannels:
			p.CommunicationChannels = body.Text
		case entity.SectionCommercializationChannels:
			p.CommercializationChannels = body.Text
		case entity.SectionSupplyChain:
			p.SupplyChain = body.Text
		case entity.SectionKeyPartners:
			p.KeyPartners = body.Text
		case entity.SectionCustomerSegments:
			p.CustomerSegments = body.Text
		}
	}

	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("project: actualizar sección %s: %w", in.Section, err)
	}
	return toProjectResponse(p), nil
}

// UpdateCostStructure reemplaza las entradas de la estructura de costos, corre el motor
// financiero completo y fusiona el resultado antes de persistir. Las etapas sin datos
// suficientes conservan sus tablas anteriores y se informan en la respuesta.
func (uc *ProjectUseCase) UpdateCostStructure(ctx context.Context, actor Actor, id string, in dto.CostStructureRequest) (*dto.CostStructureResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p, err := uc.load(ctx, actor, id, true)
	if err != nil {
		return nil, err
	}

	cs := mergeCostStructureInputs(p.CostStructure, in)
	if err := plan.ValidateCostStructure(cs); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	res := finance.ProjectFinancials(cs)
	p.CostStructure = res.Apply(cs)
	uc.logResult(p.ID, res)

	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("project: guardar estructura de costos: %w", err)
	}

	out := &dto.CostStructureResponse{
		CostStructure:     p.CostStructure,
		Complete:          res.Complete(),
		SkippedStages:     toSkippedStages(res.Skipped),
		UnmatchedProducts: nonNilStrings(res.UnmatchedProducts),
	}
	if res.FinancialIndicators != nil {
		finite := res.FinancialIndicators.TIRFinite
		out.TIRFinite = &finite
	}
	return out, nil
}

// GetProjection tablas derivadas vigentes. Corre el motor sobre la instantánea guardada
// solo para informar qué etapas no tienen datos; no persiste nada.
func (uc *ProjectUseCase) GetProjection(ctx context.Context, actor Actor, id string) (*dto.ProjectionResponse, error) {
	p, err := uc.load(ctx, actor, id, false)
	if err != nil {
		return nil, err
	}
	return toProjectionResponse(p, finance.ProjectFinancials(p.CostStructure)), nil
}

func (uc *ProjectUseCase) logResult(projectID string, res finance.Result) {
	for _, s := range res.Skipped {
		uc.log.Debug().Str("project_id", projectID).Str("stage", string(s.Stage)).Err(s.Reason).Msg("etapa omitida")
	}
	if len(res.UnmatchedProducts) > 0 {
		uc.log.Debug().Str("project_id", projectID).Strs("products", res.UnmatchedProducts).Msg("productos sin demanda, costo unitario 0")
	}
	if ind := res.FinancialIndicators; ind != nil && !ind.TIRFinite {
		uc.log.Warn().Str("project_id", projectID).Float64("tir", ind.TIR).Msg("la TIR no converge a un valor finito")
	}
}

// load obtiene el proyecto y aplica la regla de acceso.
func (uc *ProjectUseCase) load(ctx context.Context, actor Actor, id string, write bool) (*entity.Project, error) {
	return loadProject(ctx, uc.repo, actor, id, write)
}

func loadProject(ctx context.Context, repo repository.ProjectRepository, actor Actor, id string, write bool) (*entity.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project: obtener: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if write && !actor.canWrite(p) || !write && !actor.canRead(p) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func decodeSection(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: cuerpo de sección inválido: %v", domain.ErrInvalidInput, err)
	}
	return dto.Validate(out)
}

// newProject arma el perfil inicial. La estructura de costos empieza vacía.
func newProject(ownerID string, in dto.CreateProjectRequest) (*entity.Project, error) {
	general := toGeneralData(in.GeneralData)
	if err := plan.ValidateGeneralData(general); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	now := time.Now()
	return &entity.Project{
		ID:                        uuid.New().String(),
		OwnerID:                   ownerID,
		GeneralData:               general,
		BusinessDescription:       in.BusinessDescription,
		ValueProposition:          in.ValueProposition,
		Team:                      toTeam(in.Team),
		CommunicationChannels:     in.CommunicationChannels,
		CommercializationChannels: in.CommercializationChannels,
		SupplyChain:               in.SupplyChain,
		KeyPartners:               in.KeyPartners,
		CustomerSegments:          in.CustomerSegments,
		CostStructure:             entity.CostStructure{Equipment: []entity.Equipment{}},
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}, nil
}
