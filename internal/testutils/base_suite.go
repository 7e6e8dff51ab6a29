package testutils

import (
	"fmt"
	"os"
	"testing"
	"time"

	"token-auth-backend/internal/database"
	"token-auth-backend/internal/database/models"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// BaseTestSuite owns a migrated Postgres database for integration suites.
// TEST_DATABASE_URL points the suite at an existing database; otherwise a
// throwaway container is started through dockertest.
type BaseTestSuite struct {
	DB       *gorm.DB
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite prepares the database or skips the calling test when neither
// TEST_DATABASE_URL nor a Docker daemon is available.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration tests in short mode")
	}

	base := &BaseTestSuite{}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		var err error
		dsn, err = base.startPostgres()
		if err != nil {
			t.Skipf("skipping database integration tests: %v", err)
		}
	}

	var db *gorm.DB
	connect := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}

	if base.pool != nil {
		if err := base.pool.Retry(connect); err != nil {
			base.TeardownTestSuite()
			t.Fatalf("could not connect to postgres container: %v", err)
		}
	} else if err := connect(); err != nil {
		t.Fatalf("could not connect to TEST_DATABASE_URL: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		base.TeardownTestSuite()
		t.Fatalf("migrate test database: %v", err)
	}
	base.DB = db
	return base
}

func (b *BaseTestSuite) startPostgres() (string, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return "", fmt.Errorf("construct docker pool: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return "", fmt.Errorf("docker not reachable: %w", err)
	}
	pool.MaxWait = 90 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=tokens",
			"POSTGRES_PASSWORD=tokens",
			"POSTGRES_DB=token_auth_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}
	// Hard stop for containers leaked by interrupted runs
	_ = resource.Expire(300)

	b.pool = pool
	b.resource = resource
	return fmt.Sprintf("postgres://tokens:tokens@%s/token_auth_test?sslmode=disable", resource.GetHostPort("5432/tcp")), nil
}

// TeardownTestSuite closes the connection and removes the container if one was started
func (b *BaseTestSuite) TeardownTestSuite() {
	if b == nil {
		return
	}
	if b.DB != nil {
		_ = database.Close(b.DB)
	}
	if b.pool != nil && b.resource != nil {
		_ = b.pool.Purge(b.resource)
	}
}

// SetupTest starts each test from empty tables
func (b *BaseTestSuite) SetupTest() {
	b.CleanTestDB()
}

// TearDownTest clears tables written by the test
func (b *BaseTestSuite) TearDownTest() {
	b.CleanTestDB()
}

// CleanTestDB truncates all tables owned by the service
func (b *BaseTestSuite) CleanTestDB() {
	if b == nil || b.DB == nil {
		return
	}
	b.DB.Exec(`TRUNCATE TABLE "token_auth", "users" RESTART IDENTITY CASCADE;`)
}

// CreateUser inserts an active user with the given username
func (b *BaseTestSuite) CreateUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Active: true}
	if err := b.DB.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}
