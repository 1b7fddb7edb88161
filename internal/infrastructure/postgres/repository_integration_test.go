//go:build integration

package postgres_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/semillero-api/internal/domain"
	"github.com/jhoicas/semillero-api/internal/domain/entity"
	"github.com/jhoicas/semillero-api/internal/infrastructure/postgres"
	"github.com/jhoicas/semillero-api/pkg/config"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("semillero"),
		tcpostgres.WithUsername("semillero"),
		tcpostgres.WithPassword("semillero"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	require.NotEmpty(t, applied)

	again, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	require.Empty(t, again, "las migraciones ya aplicadas no se repiten")
	return pool
}

func newUser(t *testing.T, repo *postgres.UserRepo, email string) *entity.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := &entity.User{
		ID: uuid.NewString(), Email: email, PasswordHash: "hash", Name: "Ana",
		Role: entity.RoleEntrepreneur, Status: "active", CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewUserRepository(pool)

	u := newUser(t, repo, "ana@example.com")

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)

	missing, err := repo.GetByEmail(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(ctx, &entity.User{
		ID: uuid.NewString(), Email: "ana@example.com", PasswordHash: "x", Name: "Otra",
		Role: entity.RoleEntrepreneur, Status: "active",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestProjectRepo_RoundTrip(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	owner := newUser(t, postgres.NewUserRepository(pool), "dueno@example.com")
	repo := postgres.NewProjectRepository(pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := &entity.Project{
		ID:          uuid.NewString(),
		OwnerID:     owner.ID,
		GeneralData: entity.GeneralData{ProjectName: "Panadería", Province: "PICHINCHA"},
		Team:        []entity.TeamMember{{Name: "Ana", Role: "Gerente"}},
		CostStructure: entity.CostStructure{
			Equipment: []entity.Equipment{{Description: "Horno", TotalCost: decimal.NewFromInt(800)}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Panadería", got.Name())
	assert.Equal(t, "Gerente", got.Team[0].Role)
	assert.True(t, got.CostStructure.Equipment[0].TotalCost.Equal(decimal.NewFromInt(800)))
	assert.Nil(t, got.CostStructure.FinancialIndicators)

	list, err := repo.ListByOwner(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].VAN)
	assert.Nil(t, list[0].TIR)

	p.CostStructure.FinancialIndicators = &entity.FinancialIndicators{
		VAN: decimal.RequireFromString("1234.5"), TIR: math.Inf(1), TIRFinite: false, PR: "2 AÑOS",
	}
	p.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, p))

	list, err = repo.ListByOwner(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	require.NotNil(t, list[0].VAN)
	assert.True(t, list[0].VAN.Equal(decimal.RequireFromString("1234.5")))
	assert.Nil(t, list[0].TIR, "TIR no finita se guarda como NULL")
	assert.Equal(t, "2 AÑOS", list[0].PR)

	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.CostStructure.FinancialIndicators.TIRFinite)
	assert.True(t, math.IsNaN(got.CostStructure.FinancialIndicators.TIR))

	require.NoError(t, repo.Delete(ctx, p.ID))
	gone, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	notUUID, err := repo.GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, notUUID)
}
