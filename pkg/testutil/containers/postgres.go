//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"medvirkning/internal/platform/postgres"
)

// PostgresContainer wraps a migrated testcontainers PostgreSQL instance.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts PostgreSQL and applies the embedded migrations.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("ismanglendemedvirkning"),
		tcpostgres.WithUsername("username"),
		tcpostgres.WithPassword("password"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres: %v", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to migrate postgres: %v", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn, DB: db}
}

// Truncate empties every table. Use between tests to ensure isolation.
func (p *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx, `TRUNCATE vurdering_pdf, varsel, vurdering RESTART IDENTITY CASCADE`)
	return err
}

// Close releases the connection pool and stops the container.
func (p *PostgresContainer) Close(ctx context.Context) {
	_ = p.DB.Close()
	_ = p.Container.Terminate(ctx)
}
