package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo guarda el perfil completo como documento JSONB y copia los indicadores
// a columnas propias para el listado.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// projectDocument contenido de la columna data.
type projectDocument struct {
	GeneralData               entity.GeneralData   `json:"general_data"`
	BusinessDescription       string               `json:"business_description,omitempty"`
	ValueProposition          string               `json:"value_proposition,omitempty"`
	Team                      []entity.TeamMember  `json:"team,omitempty"`
	CommunicationChannels     string               `json:"communication_channels,omitempty"`
	CommercializationChannels string               `json:"commercialization_channels,omitempty"`
	SupplyChain               string               `json:"supply_chain,omitempty"`
	KeyPartners               string               `json:"key_partners,omitempty"`
	CustomerSegments          string               `json:"customer_segments,omitempty"`
	CostStructure             entity.CostStructure `json:"cost_structure"`
}

func toDocument(p *entity.Project) projectDocument {
	return projectDocument{
		GeneralData:               p.GeneralData,
		BusinessDescription:       p.BusinessDescription,
		ValueProposition:          p.ValueProposition,
		Team:                      p.Team,
		CommunicationChannels:     p.CommunicationChannels,
		CommercializationChannels: p.CommercializationChannels,
		SupplyChain:               p.SupplyChain,
		KeyPartners:               p.KeyPartners,
		CustomerSegments:          p.CustomerSegments,
		CostStructure:             p.CostStructure,
	}
}

func (d projectDocument) apply(p *entity.Project) {
	p.GeneralData = d.GeneralData
	p.BusinessDescription = d.BusinessDescription
	p.ValueProposition = d.ValueProposition
	p.Team = d.Team
	p.CommunicationChannels = d.CommunicationChannels
	p.CommercializationChannels = d.CommercializationChannels
	p.SupplyChain = d.SupplyChain
	p.KeyPartners = d.KeyPartners
	p.CustomerSegments = d.CustomerSegments
	p.CostStructure = d.CostStructure
}

// summaryColumns valores de van, tir y pr; nulos mientras no haya indicadores.
func summaryColumns(cs entity.CostStructure) (decimal.NullDecimal, *float64, string) {
	ind := cs.FinancialIndicators
	if ind == nil {
		return decimal.NullDecimal{}, nil, ""
	}
	var tir *float64
	if ind.TIRFinite && !math.IsNaN(ind.TIR) && !math.IsInf(ind.TIR, 0) {
		v := ind.TIR
		tir = &v
	}
	return decimal.NewNullDecimal(ind.VAN), tir, ind.PR
}

// Create persiste un proyecto nuevo.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	data, err := json.Marshal(toDocument(p))
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	van, tir, pr := summaryColumns(p.CostStructure)
	query := `
		INSERT INTO projects (id, owner_id, project_name, data, van, tir, pr, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		p.ID, p.OwnerID, p.Name(), data, van, tir, pr, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene el proyecto. (nil, nil) si no existe.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `
		SELECT id, owner_id, data, created_at, updated_at
		FROM projects WHERE id = $1`
	var (
		p    entity.Project
		data []byte
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.OwnerID, &data, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	var doc projectDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", p.ID, err)
	}
	doc.apply(&p)
	return &p, nil
}

// Update reemplaza el documento y el resumen de indicadores.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	data, err := json.Marshal(toDocument(p))
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	van, tir, pr := summaryColumns(p.CostStructure)
	query := `
		UPDATE projects
		SET project_name = $2,
		    data         = $3,
		    van          = $4,
		    tir          = $5,
		    pr           = $6,
		    updated_at   = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Name(), data, van, tir, pr, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update project %s: no existe", p.ID)
	}
	return nil
}

// ListByOwner resumen de los proyectos del usuario, el más reciente primero.
func (r *ProjectRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]repository.ProjectSummary, error) {
	query := `
		SELECT id, project_name, van, tir, pr, updated_at
		FROM projects WHERE owner_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	list := make([]repository.ProjectSummary, 0)
	for rows.Next() {
		var (
			s   repository.ProjectSummary
			van decimal.NullDecimal
		)
		if err := rows.Scan(&s.ID, &s.ProjectName, &van, &s.TIR, &s.PR, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		s.VAN = decimalPtr(van)
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina el proyecto por ID.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
