package project_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/internal/application/project"
	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/domain/finance"
	"github.com/jhoicas/semillero-api/internal/domain/repository"
	"github.com/jhoicas/semillero-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

// MockProjectRepository implementación mock de repository.ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, p *entity.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProjectRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]repository.ProjectSummary, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ProjectSummary), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockReportGenerator implementación mock de project.ReportGenerator.
type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateProjectPDF(ctx context.Context, p *entity.Project) ([]byte, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var (
	owner   = project.Actor{UserID: "owner-1", Role: entity.RoleEntrepreneur}
	other   = project.Actor{UserID: "other-1", Role: entity.RoleEntrepreneur}
	advisor = project.Actor{UserID: "advisor-1", Role: entity.RoleAdvisor}
)

func generalData() dto.GeneralDataRequest {
	return dto.GeneralDataRequest{
		ProjectName: "Panadería La Espiga", RepresentativeName: "María Pérez", CI: "1710034065",
		Gender: "FEMENINO", Nationality: "ECUATORIANA", BirthDate: "1990-05-01",
		Province: "PICHINCHA", Canton: "QUITO", Parish: "IÑAQUITO", Address: "Av. Amazonas N24",
		Email: "maria@example.com", CellPhone: "0991234567", StartDate: "2024-01-15",
	}
}

func storedProject() *entity.Project {
	return &entity.Project{
		ID:          uuid.NewString(),
		OwnerID:     owner.UserID,
		GeneralData: entity.GeneralData{ProjectName: "Panadería La Espiga"},
		CostStructure: entity.CostStructure{
			Equipment: []entity.Equipment{},
		},
	}
}

func costStructureRequest() dto.CostStructureRequest {
	return dto.CostStructureRequest{
		FinancialRates: &dto.FinancialRatesRequest{
			ProductionGrowth: decimal.NewFromInt(10),
			DiscountRate:     decimal.NewFromInt(12),
			InflationRate:    decimal.NewFromInt(3),
		},
		DemandDetails: []dto.DemandDetailRequest{
			{ProductName: "Pan", MonthlyDemand: decimal.NewFromInt(300), PVP: decimal.NewFromInt(2)},
		},
		Equipment: []dto.EquipmentRequest{
			{Description: "Horno", AnnualQuantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500), FinancingType: entity.FinancingLoan},
		},
		ProductCostDetails: []dto.ProductCostDetailRequest{
			{ProductName: "Pan", Inputs: []dto.ProductInputRequest{
				{Name: "Harina", Unit: "KG", Quantity: decimal.NewFromInt(50), UnitPrice: decimal.NewFromInt(3)},
			}},
		},
		Financing: "Crédito productivo y fondos propios",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AsignaDuenio(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProjectRepository)
	repo.On("Create", ctx, mock.AnythingOfType("*entity.Project")).Return(nil)

	uc := project.NewProjectUseCase(repo, logger.Nop())
	out, err := uc.Create(ctx, owner, dto.CreateProjectRequest{GeneralData: generalData()})

	require.NoError(t, err)
	assert.Equal(t, owner.UserID, out.OwnerID)
	assert.Equal(t, "Panadería La Espiga", out.GeneralData.ProjectName)
	assert.Nil(t, out.CostStructure.FinancialIndicators)
	repo.AssertExpectations(t)
}

func TestCreate_CedulaInvalida(t *testing.T) {
	repo := new(MockProjectRepository)
	in := dto.CreateProjectRequest{GeneralData: generalData()}
	in.GeneralData.CI = "1710034064"

	_, err := project.NewProjectUseCase(repo, logger.Nop()).Create(context.Background(), owner, in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByID_ReglasDeAcceso(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)
	uc := project.NewProjectUseCase(repo, logger.Nop())

	_, err := uc.GetByID(ctx, owner, p.ID)
	assert.NoError(t, err)

	_, err = uc.GetByID(ctx, advisor, p.ID)
	assert.NoError(t, err, "el asesor puede leer")

	_, err = uc.GetByID(ctx, other, p.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetByID_NoExiste(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, id).Return(nil, nil)
	uc := project.NewProjectUseCase(repo, logger.Nop())

	_, err := uc.GetByID(ctx, owner, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(ctx, owner, "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_AsesorNoPuedeEliminar(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)

	err := project.NewProjectUseCase(repo, logger.Nop()).Delete(ctx, advisor, p.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestList_AplicaPaginaPorDefecto(t *testing.T) {
	ctx := context.Background()
	van := decimal.NewFromInt(1500)
	repo := new(MockProjectRepository)
	repo.On("ListByOwner", ctx, owner.UserID, 20, 0).Return([]repository.ProjectSummary{
		{ID: "p-1", ProjectName: "Panadería", VAN: &van, PR: "2 AÑOS"},
	}, nil)

	out, err := project.NewProjectUseCase(repo, logger.Nop()).List(ctx, owner, dto.PageRequest{})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2 AÑOS", out.Items[0].PR)
	assert.Equal(t, 20, out.Page.Limit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Secciones
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateSection_Narrativa(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)
	repo.On("Update", ctx, p).Return(nil)

	body, _ := json.Marshal(dto.NarrativeRequest{Text: "Tiendas de barrio y ferias locales del cantón"})
	out, err := project.NewProjectUseCase(repo, logger.Nop()).UpdateSection(ctx, owner, p.ID, dto.UpdateSectionRequest{
		Section: entity.SectionCommercializationChannels,
		Body:    body,
	})

	require.NoError(t, err)
	assert.Equal(t, "Tiendas de barrio y ferias locales del cantón", out.CommercializationChannels)
}

func TestUpdateSection_Equipo(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)
	repo.On("Update", ctx, p).Return(nil)

	body, _ := json.Marshal(dto.TeamRequest{Members: []dto.TeamMemberRequest{
		{Name: "María Pérez", Experience: "10 años en panadería", Role: "Gerente"},
	}})
	out, err := project.NewProjectUseCase(repo, logger.Nop()).UpdateSection(ctx, owner, p.ID, dto.UpdateSectionRequest{
		Section: entity.SectionTeam,
		Body:    body,
	})

	require.NoError(t, err)
	require.Len(t, out.Team, 1)
	assert.Equal(t, "Gerente", out.Team[0].Role)
}

func TestUpdateSection_TextoCorto(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)

	_, err := project.NewProjectUseCase(repo, logger.Nop()).UpdateSection(ctx, owner, p.ID, dto.UpdateSectionRequest{
		Section: entity.SectionBusinessDescription,
		Body:    json.RawMessage(`{"text":"corto"}`),
	})

	var verr *dto.ValidationError
	require.True(t, errors.As(err, &verr))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSection_SeccionDesconocida(t *testing.T) {
	repo := new(MockProjectRepository)
	_, err := project.NewProjectUseCase(repo, logger.Nop()).UpdateSection(context.Background(), owner, uuid.NewString(), dto.UpdateSectionRequest{
		Section: "annexes",
		Body:    json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estructura de costos
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateCostStructure_CorreElMotorYPersiste(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)
	repo.On("Update", ctx, p).Return(nil)

	out, err := project.NewProjectUseCase(repo, logger.Nop()).UpdateCostStructure(ctx, owner, p.ID, costStructureRequest())

	require.NoError(t, err)
	assert.True(t, out.Complete)
	assert.Empty(t, out.SkippedStages)
	require.NotNil(t, out.TIRFinite)
	assert.True(t, *out.TIRFinite)

	cs := out.CostStructure
	assert.True(t, cs.Equipment[0].TotalCost.Equal(decimal.NewFromInt(1000)), "total calculado en el servidor")
	assert.True(t, cs.ProductCostDetails[0].Inputs[0].TotalCost.Equal(decimal.NewFromInt(150)))
	require.NotNil(t, cs.MonthlyCostTotal)
	assert.True(t, cs.MonthlyCostTotal.Equal(decimal.NewFromInt(150)))
	require.NotNil(t, cs.FinancialIndicators)
	assert.Equal(t, "1 AÑOS", cs.FinancialIndicators.PR)
	assert.True(t, cs.FinancingStructure.Items[0].LoanSource)

	saved := repo.Calls[1].Arguments.Get(1).(*entity.Project)
	assert.NotNil(t, saved.CostStructure.InvestmentRecoveryTable)
}

func TestUpdateCostStructure_SinEquiposConservaProyeccionPrevia(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	previous := &entity.FinancialIndicators{PR: "3 AÑOS", TIRFinite: true}
	p.CostStructure.FinancialIndicators = previous
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)
	repo.On("Update", ctx, p).Return(nil)

	in := costStructureRequest()
	in.Equipment = nil
	out, err := project.NewProjectUseCase(repo, logger.Nop()).UpdateCostStructure(ctx, owner, p.ID, in)

	require.NoError(t, err)
	assert.False(t, out.Complete)
	assert.Len(t, out.SkippedStages, 6)
	assert.Equal(t, string(finance.StageFinancingStructure), out.SkippedStages[0].Stage)
	assert.Same(t, previous, out.CostStructure.FinancialIndicators)
	assert.NotNil(t, out.CostStructure.MonthlyCostTotal, "los costos unitarios sí corren")
	assert.Nil(t, out.TIRFinite)
}

func TestUpdateCostStructure_ProductoRepetido(t *testing.T) {
	repo := new(MockProjectRepository)
	in := costStructureRequest()
	in.DemandDetails = append(in.DemandDetails, in.DemandDetails[0])

	_, err := project.NewProjectUseCase(repo, logger.Nop()).UpdateCostStructure(context.Background(), owner, uuid.NewString(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateCostStructure_SoloElDuenio(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)

	_, err := project.NewProjectUseCase(repo, logger.Nop()).UpdateCostStructure(ctx, advisor, p.ID, costStructureRequest())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetProjection_InformaEtapasOmitidas(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)

	out, err := project.NewProjectUseCase(repo, logger.Nop()).GetProjection(ctx, advisor, p.ID)

	require.NoError(t, err)
	assert.False(t, out.Complete)
	assert.Len(t, out.SkippedStages, 7)
	assert.Nil(t, out.FinancialIndicators)
	assert.Empty(t, out.UnmatchedProducts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadReportPDF_ProyeccionIncompleta(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)
	gen := new(MockReportGenerator)

	_, _, err := project.NewReportUseCase(repo, gen, logger.Nop()).DownloadReportPDF(ctx, owner, p.ID)

	assert.ErrorIs(t, err, domain.ErrIncompleteProjection)
	gen.AssertNotCalled(t, "GenerateProjectPDF", mock.Anything, mock.Anything)
}

func TestDownloadReportPDF_GeneraConNombreSinTildes(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	p.CostStructure.FinancialIndicators = &entity.FinancialIndicators{PR: "2 AÑOS"}
	p.CostStructure.InvestmentRecoveryTable = &entity.InvestmentRecoveryTable{}
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)
	gen := new(MockReportGenerator)
	gen.On("GenerateProjectPDF", ctx, p).Return([]byte("%PDF-1.4"), nil)

	pdf, filename, err := project.NewReportUseCase(repo, gen, logger.Nop()).DownloadReportPDF(ctx, advisor, p.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Equal(t, "plan_panaderia_la_espiga.pdf", filename)
}

func TestDownloadReportPDF_ErrorDelGenerador(t *testing.T) {
	ctx := context.Background()
	p := storedProject()
	p.CostStructure.FinancialIndicators = &entity.FinancialIndicators{}
	p.CostStructure.InvestmentRecoveryTable = &entity.InvestmentRecoveryTable{}
	repo := new(MockProjectRepository)
	repo.On("GetByID", ctx, p.ID).Return(p, nil)
	gen := new(MockReportGenerator)
	gen.On("GenerateProjectPDF", ctx, p).Return(nil, errors.New("fuente no encontrada"))

	_, _, err := project.NewReportUseCase(repo, gen, logger.Nop()).DownloadReportPDF(ctx, owner, p.ID)
	assert.Error(t, err)
}
