package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/RMahshie/sedview/internal/repository"
	"github.com/RMahshie/sedview/pkg/models"
)

// setupDatabase starts a PostgreSQL container and returns a migrated connection
func setupDatabase(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	container, err := pgContainer.Run(ctx,
		"postgres:15-alpine",
		pgContainer.WithDatabase("sedview_test"),
		pgContainer.WithUsername("testuser"),
		pgContainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	// Second run must be a no-op
	require.NoError(t, Migrate(ctx, db))

	return db
}

func TestPlotRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := setupDatabase(t)
	repo := NewPostgresPlotRepository(db)
	ctx := context.Background()

	older := &models.PlotRecord{
		ID:          uuid.New().String(),
		GalaxyIndex: 12,
		RA:          161.25,
		Dec:         58.5,
		PointCount:  17,
		Format:      "png",
		StorageKey:  "plots/12/a.png",
		CreatedAt:   time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond),
	}
	newer := &models.PlotRecord{
		ID:          uuid.New().String(),
		GalaxyIndex: 12,
		RA:          161.25,
		Dec:         58.5,
		PointCount:  15,
		Format:      "svg",
		StorageKey:  "plots/12/b.svg",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.GetByID(ctx, uuid.MustParse(older.ID))
	require.NoError(t, err)
	assert.Equal(t, older.StorageKey, got.StorageKey)
	assert.Equal(t, 17, got.PointCount)
	assert.True(t, older.CreatedAt.Equal(got.CreatedAt))

	list, err := repo.ListByGalaxy(ctx, 12)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	empty, err := repo.ListByGalaxy(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, uuid.MustParse(older.ID)))
	assert.ErrorIs(t, repo.Delete(ctx, uuid.MustParse(older.ID)), repository.ErrNotFound)
}
