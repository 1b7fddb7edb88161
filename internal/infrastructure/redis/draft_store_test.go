package redis_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/infrastructure/redis"
	"github.com/jhoicas/semillero-api/pkg/config"
)

func newStore(t *testing.T, maxBytes int, ttl time.Duration) (*redis.DraftStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewDraftStore(client, maxBytes, ttl), mr
}

func TestDraftStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, 1024, time.Hour)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &entity.Draft{UserID: "u-1", Step: "demand", Data: []byte(`{"a":1}`), UpdatedAt: now}))
	assert.Equal(t, time.Hour, mr.TTL("draft:u-1"))

	got, err := store.Get(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "demand", got.Step)
	assert.JSONEq(t, `{"a":1}`, string(got.Data))
	assert.True(t, now.Equal(got.UpdatedAt))

	require.NoError(t, store.Delete(ctx, "u-1"))
	got, err = store.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, store.Delete(ctx, "u-1"), "borrar dos veces no falla")
}

func TestDraftStore_CuotaExcedida(t *testing.T) {
	store, mr := newStore(t, 10, 0)

	err := store.Save(context.Background(), &entity.Draft{UserID: "u-1", Step: "team", Data: []byte(`{"nombre":"largo"}`)})

	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.False(t, mr.Exists("draft:u-1"))
}

func TestDraftStore_Vence(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, 0, time.Minute)
	require.NoError(t, store.Save(ctx, &entity.Draft{UserID: "u-2", Step: "rates", Data: []byte(`{}`)}))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "u-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNew_SinServidor(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redis.New(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}

func TestNew_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.New(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	_ = client.Close()
}
