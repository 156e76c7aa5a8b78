package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"supermarket/internal/database"
	"supermarket/internal/model"
	"supermarket/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and
// the application schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// Catalog used by the integration tests.
var (
	Toothbrush     = model.MustProduct("toothbrush", model.ProductUnitEach)
	Apples         = model.MustProduct("apples", model.ProductUnitKilo)
	Rice           = model.MustProduct("rice", model.ProductUnitEach)
	Toothpaste     = model.MustProduct("toothpaste", model.ProductUnitEach)
	CherryTomatoes = model.MustProduct("cherry tomatoes", model.ProductUnitEach)
)

// SeedCatalog stores the test catalog.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	repo := repository.NewProductRepository(pool, zerolog.Nop())
	err := repo.Upsert(context.Background(), []model.PricedProduct{
		{Product: Toothbrush, Price: 0.99},
		{Product: Apples, Price: 1.99},
		{Product: Rice, Price: 2.49},
		{Product: Toothpaste, Price: 1.79},
		{Product: CherryTomatoes, Price: 0.69},
	})
	if err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"receipt_discounts", "receipt_items", "receipts", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
