package database

import (
	"context"
	"log"
	"testing"

	"github.com/siherrmann/queuer/helper"
	"github.com/testcontainers/testcontainers-go"
)

var dbPort string

func TestMain(m *testing.M) {
	var teardown func(ctx context.Context, opts ...testcontainers.TerminateOption) error
	var err error
	teardown, dbPort, err = helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("error starting postgres container: %v", err)
	}

	exitCode := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("error tearing down postgres container: %v", err)
		}
	}

	if exitCode != 0 {
		log.Fatalf("tests failed with exit code: %d", exitCode)
	}
}

// newTestStore creates all tables on a fresh schema state.
func newTestStore(t *testing.T) *Store {
	helper.SetTestDatabaseConfigEnvs(t, dbPort)
	dbConfig, err := helper.NewDatabaseConfiguration()
	if err != nil {
		t.Fatalf("failed to create database configuration: %v", err)
	}
	database := helper.NewTestDatabase(dbConfig)

	store, err := NewStore(database, true)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}
