// Package draft autoguardado del formulario: el cliente envía el estado en curso y el
// servidor lo guarda en un DraftStore con cuota por usuario.
package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/semillero-api/internal/application/dto"
	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/pkg/logger"
)

// DraftStore puerto de persistencia de borradores.
// Save devuelve domain.ErrQuotaExceeded si el borrador supera la cuota; Get devuelve
// (nil, nil) si no hay borrador.
type DraftStore interface {
	Save(ctx context.Context, draft *entity.Draft) error
	Get(ctx context.Context, userID string) (*entity.Draft, error)
	Delete(ctx context.Context, userID string) error
}

// DraftUseCase guarda, recupera y descarta el borrador del usuario.
type DraftUseCase struct {
	store DraftStore
	log   *logger.Logger
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(store DraftStore, log *logger.Logger) *DraftUseCase {
	return &DraftUseCase{store: store, log: log.Component("draft")}
}

// Save reemplaza el borrador actual del usuario.
func (uc *DraftUseCase) Save(ctx context.Context, userID string, in dto.SaveDraftRequest) (*dto.DraftResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	d := &entity.Draft{
		UserID:    userID,
		Step:      in.Step,
		Data:      []byte(in.Data),
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.store.Save(ctx, d); err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			uc.log.Warn().Str("user_id", userID).Int("bytes", d.Size()).Msg("borrador excede la cuota")
			return nil, err
		}
		return nil, fmt.Errorf("draft: guardar: %w", err)
	}
	return toDraftResponse(d), nil
}

// Get devuelve el borrador o domain.ErrNotFound.
func (uc *DraftUseCase) Get(ctx context.Context, userID string) (*dto.DraftResponse, error) {
	d, err := uc.store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("draft: obtener: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDraftResponse(d), nil
}

// Delete descarta el borrador (idempotente).
func (uc *DraftUseCase) Delete(ctx context.Context, userID string) error {
	if err := uc.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("draft: eliminar: %w", err)
	}
	return nil
}

func toDraftResponse(d *entity.Draft) *dto.DraftResponse {
	return &dto.DraftResponse{
		Step:      d.Step,
		Data:      d.Data,
		SizeBytes: d.Size(),
		UpdatedAt: d.UpdatedAt,
	}
}
