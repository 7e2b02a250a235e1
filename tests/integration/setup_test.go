package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/powerdash/powerdash/internal/adapter/storage/postgres"
)

// TestEnv holds test environment resources
type TestEnv struct {
	DB                *gorm.DB
	PostgresContainer testcontainers.Container
	Logger            *zap.Logger
}

var testEnv *TestEnv

// SetupTestEnvironment initializes the test environment with containers
func SetupTestEnvironment(t *testing.T) *TestEnv {
	if testEnv != nil {
		return testEnv
	}

	ctx := context.Background()

	// Check if using external services (CI environment)
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return setupExternalDatabase(t, url)
	}

	// Use testcontainers for local testing
	return setupContainers(t, ctx)
}

func setupExternalDatabase(t *testing.T, url string) *TestEnv {
	logger, _ := zap.NewDevelopment()

	db, err := postgres.NewConnection(url, 10, 2, logger)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := postgres.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	testEnv = &TestEnv{
		DB:     db,
		Logger: logger,
	}
	return testEnv
}

func setupContainers(t *testing.T, ctx context.Context) *TestEnv {
	logger, _ := zap.NewDevelopment()

	postgresContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("powerdash_test"),
		tcpostgres.WithUsername("powerdash"),
		tcpostgres.WithPassword("powerdash_test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	pgHost, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get postgres host: %v", err)
	}
	pgPort, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get postgres port: %v", err)
	}

	url := fmt.Sprintf("postgres://powerdash:powerdash_test@%s:%s/powerdash_test?sslmode=disable", pgHost, pgPort.Port())

	db, err := postgres.NewConnection(url, 10, 2, logger)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	if err := postgres.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	testEnv = &TestEnv{
		DB:                db,
		PostgresContainer: postgresContainer,
		Logger:            logger,
	}
	return testEnv
}

// CleanDatabase truncates all tables
func CleanDatabase(t *testing.T, db *gorm.DB) {
	tables := []string{
		"alerts",
		"readings",
		"meters",
		"users",
		"companies",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("Failed to truncate %s: %v", table, err)
		}
	}
}

func TestMain(m *testing.M) {
	code := m.Run()

	if testEnv != nil && testEnv.PostgresContainer != nil {
		_ = testEnv.PostgresContainer.Terminate(context.Background())
	}

	os.Exit(code)
}
