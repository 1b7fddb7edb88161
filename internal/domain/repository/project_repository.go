package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// ProjectSummary fila liviana para listados: nombre e indicadores ya calculados.
// VAN y PR quedan vacíos mientras la proyección no esté completa.
type ProjectSummary struct {
	ID          string
	ProjectName string
	VAN         *decimal.Decimal
	TIR         *float64
	PR          string
	UpdatedAt   time.Time
}

// ProjectRepository define el puerto de persistencia para Project (DIP).
// GetByID devuelve (nil, nil) si el proyecto no existe.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]ProjectSummary, error)
	Delete(ctx context.Context, id string) error
}
