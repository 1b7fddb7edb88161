package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// GeneralDataRequest datos generales del emprendimiento y su representante.
type GeneralDataRequest struct {
	ProjectName        string `json:"project_name" validate:"required,min=3,max=200"`
	Logo               string `json:"logo" validate:"omitempty,url"`
	RepresentativeName string `json:"representative_name" validate:"required,min=3"`
	CI                 string `json:"ci" validate:"required,len=10,numeric"`
	Gender             string `json:"gender" validate:"required,oneof=MASCULINO FEMENINO OTRO"`
	Nationality        string `json:"nationality" validate:"required"`
	BirthDate          string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Province           string `json:"province" validate:"required"`
	Canton             string `json:"canton" validate:"required"`
	Parish             string `json:"parish" validate:"required"`
	Address            string `json:"address" validate:"required,min=5"`
	Email              string `json:"email" validate:"required,email"`
	ConventionalPhone  string `json:"conventional_phone"`
	CellPhone          string `json:"cell_phone" validate:"required,min=10"`
	HasRUC             bool   `json:"has_ruc"`
	RUC                string `json:"ruc" validate:"required_if=HasRUC true,omitempty,len=13,numeric"`
	StartDate          string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

// TeamMemberRequest integrante del equipo.
type TeamMemberRequest struct {
	Name       string `json:"name" validate:"required,min=3"`
	Experience string `json:"experience" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

// CreateProjectRequest perfil inicial; las narrativas y la estructura de costos pueden
// completarse después por sección.
type CreateProjectRequest struct {
	GeneralData               GeneralDataRequest  `json:"general_data" validate:"required"`
	BusinessDescription       string              `json:"business_description" validate:"omitempty,min=50"`
	ValueProposition          string              `json:"value_proposition" validate:"omitempty,min=50"`
	Team                      []TeamMemberRequest `json:"team" validate:"dive"`
	CommunicationChannels     string              `json:"communication_channels" validate:"omitempty,min=20"`
	CommercializationChannels string              `json:"commercialization_channels" validate:"omitempty,min=20"`
	SupplyChain               string              `json:"supply_chain" validate:"omitempty,min=20"`
	KeyPartners               string              `json:"key_partners" validate:"omitempty,min=20"`
	CustomerSegments          string              `json:"customer_segments" validate:"omitempty,min=20"`
}

// NarrativeRequest cuerpo de las secciones de texto libre del modelo de negocio.
type NarrativeRequest struct {
	Text string `json:"text" validate:"required,min=20"`
}

// LongNarrativeRequest descripción del negocio y propuesta de valor.
type LongNarrativeRequest struct {
	Text string `json:"text" validate:"required,min=50"`
}

// TeamRequest sección de equipo.
type TeamRequest struct {
	Members []TeamMemberRequest `json:"members" validate:"required,min=1,dive"`
}

// UpdateSectionRequest sección a actualizar y su cuerpo sin decodificar; el caso de uso
// lo interpreta según la sección.
type UpdateSectionRequest struct {
	Section string          `validate:"required,oneof=general-data business-description value-proposition team communication-channels commercialization-channels supply-chain key-partners customer-segments"`
	Body    json.RawMessage `validate:"required"`
}

// FinancialRatesRequest tasas en porcentaje.
type FinancialRatesRequest struct {
	ProductionGrowth decimal.Decimal `json:"production_growth" validate:"min=0,max=100"`
	PriceGrowth      decimal.Decimal `json:"price_growth" validate:"min=0,max=100"`
	DiscountRate     decimal.Decimal `json:"discount_rate" validate:"min=0,max=100"`
	InflationRate    decimal.Decimal `json:"inflation_rate" validate:"min=0,max=100"`
	SalaryIncrease   decimal.Decimal `json:"salary_increase" validate:"min=0,max=100"`
}

// DemandDetailRequest demanda mensual y PVP de un producto.
type DemandDetailRequest struct {
	ProductName   string          `json:"product_name" validate:"required"`
	MonthlyDemand decimal.Decimal `json:"monthly_demand" validate:"min=0"`
	PVP           decimal.Decimal `json:"pvp" validate:"min=0"`
}

// EquipmentRequest equipo de la inversión inicial. El total lo calcula el servidor.
type EquipmentRequest struct {
	Description    string          `json:"description" validate:"required"`
	AnnualQuantity decimal.Decimal `json:"annual_quantity" validate:"min=1"`
	UnitPrice      decimal.Decimal `json:"unit_price" validate:"min=0"`
	AccountName    string          `json:"account_name"`
	FinancingType  string          `json:"financing_type" validate:"omitempty,oneof=PROPIA DONACIÓN PRÉSTAMO"`
}

// ProductInputRequest insumo de un producto. El total lo calcula el servidor.
type ProductInputRequest struct {
	Name      string          `json:"name" validate:"required"`
	Unit      string          `json:"unit" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"min=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
}

// ProductCostDetailRequest insumos de un producto.
type ProductCostDetailRequest struct {
	ProductName string                `json:"product_name" validate:"required"`
	Inputs      []ProductInputRequest `json:"inputs" validate:"dive"`
}

// CostStructureRequest entradas crudas de la estructura de costos. Cualquier grupo puede
// faltar: el motor omite las etapas que no tienen datos.
type CostStructureRequest struct {
	FinancialRates           *FinancialRatesRequest     `json:"financial_rates"`
	DemandDetails            []DemandDetailRequest      `json:"demand_details" validate:"omitempty,unique=ProductName,dive"`
	Equipment                []EquipmentRequest         `json:"equipment" validate:"dive"`
	ProductCostDetails       []ProductCostDetailRequest `json:"product_cost_details" validate:"omitempty,unique=ProductName,dive"`
	AdministrativeProvisions string                     `json:"administrative_provisions"`
	Financing                string                     `json:"financing" validate:"omitempty,min=20"`
}

// ProjectResponse perfil completo con la estructura de costos y sus tablas derivadas.
type ProjectResponse struct {
	ID                        string               `json:"id"`
	OwnerID                   string               `json:"owner_id"`
	GeneralData               entity.GeneralData   `json:"general_data"`
	BusinessDescription       string               `json:"business_description"`
	ValueProposition          string               `json:"value_proposition"`
	Team                      []entity.TeamMember  `json:"team"`
	CommunicationChannels     string               `json:"communication_channels"`
	CommercializationChannels string               `json:"commercialization_channels"`
	SupplyChain               string               `json:"supply_chain"`
	KeyPartners               string               `json:"key_partners"`
	CustomerSegments          string               `json:"customer_segments"`
	CostStructure             entity.CostStructure `json:"cost_structure"`
	CreatedAt                 time.Time            `json:"created_at"`
	UpdatedAt                 time.Time            `json:"updated_at"`
}

// ProjectSummaryResponse fila del listado de proyectos.
type ProjectSummaryResponse struct {
	ID          string           `json:"id"`
	ProjectName string           `json:"project_name"`
	VAN         *decimal.Decimal `json:"van,omitempty"`
	TIR         *float64         `json:"tir,omitempty"`
	PR          string           `json:"pr,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProjectListResponse lista paginada de proyectos.
type ProjectListResponse struct {
	Items []ProjectSummaryResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// SkippedStageResponse etapa del motor que no corrió y el motivo.
type SkippedStageResponse struct {
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

// CostStructureResponse resultado de guardar la estructura de costos.
type CostStructureResponse struct {
	CostStructure     entity.CostStructure   `json:"cost_structure"`
	Complete          bool                   `json:"complete"`
	SkippedStages     []SkippedStageResponse `json:"skipped_stages"`
	UnmatchedProducts []string               `json:"unmatched_products"`
	TIRFinite         *bool                  `json:"tir_finite,omitempty"`
}

// ProjectionResponse tablas derivadas vigentes de un proyecto.
type ProjectionResponse struct {
	ProjectID                 string                            `json:"project_id"`
	Complete                  bool                              `json:"complete"`
	SkippedStages             []SkippedStageResponse            `json:"skipped_stages"`
	UnmatchedProducts         []string                          `json:"unmatched_products"`
	UnitCosts                 []entity.UnitCost                 `json:"unit_costs,omitempty"`
	MonthlyCostTotal          *decimal.Decimal                  `json:"monthly_cost_total,omitempty"`
	AnnualCostTotal           *decimal.Decimal                  `json:"annual_cost_total,omitempty"`
	FinancingStructure        *entity.FinancingStructure        `json:"financing_structure,omitempty"`
	IncomeProjection          *entity.IncomeProjection          `json:"income_projection,omitempty"`
	CostsExpensesProjection   *entity.CostsExpensesProjection   `json:"costs_expenses_projection,omitempty"`
	IncomeStatementProjection *entity.IncomeStatementProjection `json:"income_statement_projection,omitempty"`
	InvestmentRecoveryTable   *entity.InvestmentRecoveryTable   `json:"investment_recovery_table,omitempty"`
	FinancialIndicators       *entity.FinancialIndicators       `json:"financial_indicators,omitempty"`
}

// PlanSnapshot archivo de entrada de la CLI: el perfil más las entradas de la sección 7.
type PlanSnapshot struct {
	CreateProjectRequest
	CostStructure CostStructureRequest `json:"cost_structure"`
}
