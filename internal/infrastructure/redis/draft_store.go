package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/semillero-api/internal/application/draft"
	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
)

var _ draft.DraftStore = (*DraftStore)(nil)

const draftKeyPrefix = "draft:"

// DraftStore un borrador por usuario, serializado en JSON bajo draft:<userID>.
// Cada Save renueva el TTL.
type DraftStore struct {
	client   *goredis.Client
	maxBytes int
	ttl      time.Duration
}

// NewDraftStore maxBytes <= 0 desactiva la cuota; ttl 0 conserva el borrador sin vencimiento.
func NewDraftStore(client *goredis.Client, maxBytes int, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, maxBytes: maxBytes, ttl: ttl}
}

type storedDraft struct {
	Step      string          `json:"step"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func draftKey(userID string) string { return draftKeyPrefix + userID }

// Save reemplaza el borrador. domain.ErrQuotaExceeded si supera maxBytes.
func (s *DraftStore) Save(ctx context.Context, d *entity.Draft) error {
	if s.maxBytes > 0 && d.Size() > s.maxBytes {
		return fmt.Errorf("%w: %d de %d bytes", domain.ErrQuotaExceeded, d.Size(), s.maxBytes)
	}
	raw, err := json.Marshal(storedDraft{Step: d.Step, Data: d.Data, UpdatedAt: d.UpdatedAt})
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(d.UserID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Get (nil, nil) si el usuario no tiene borrador o ya venció.
func (s *DraftStore) Get(ctx context.Context, userID string) (*entity.Draft, error) {
	raw, err := s.client.Get(ctx, draftKey(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var sd storedDraft
	if err := json.Unmarshal(raw, &sd); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &entity.Draft{UserID: userID, Step: sd.Step, Data: sd.Data, UpdatedAt: sd.UpdatedAt}, nil
}

// Delete descarta el borrador; no falla si no existe.
func (s *DraftStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, draftKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
