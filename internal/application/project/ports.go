package project

import (
	"context"

	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

// ReportGenerator genera el documento PDF del plan de negocio.
// Solo formatea: no calcula nada que no esté ya en el proyecto.
type ReportGenerator interface {
	GenerateProjectPDF(ctx context.Context, project *entity.Project) ([]byte, error)
}

// Actor usuario autenticado que ejecuta el caso de uso.
type Actor struct {
	UserID string
	Role   string
}

// canRead el dueño y los asesores pueden consultar un proyecto.
func (a Actor) canRead(p *entity.Project) bool {
	return p.OwnerID == a.UserID || a.Role == entity.RoleAdvisor
}

// canWrite solo el dueño modifica su proyecto.
func (a Actor) canWrite(p *entity.Project) bool {
	return p.OwnerID == a.UserID
}
