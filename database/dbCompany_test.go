package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/model"
	"github.com/siherrmann/queuer/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyNewCompanyDBHandler(t *testing.T) {
	helper.SetTestDatabaseConfigEnvs(t, dbPort)
	dbConfig, err := helper.NewDatabaseConfiguration()
	if err != nil {
		t.Fatalf("failed to create database configuration: %v", err)
	}

	t.Run("Valid call NewCompanyDBHandler", func(t *testing.T) {
		database := helper.NewTestDatabase(dbConfig)

		companyDbHandler, err := NewCompanyDBHandler(database, true)
		assert.NoError(t, err, "Expected NewCompanyDBHandler to not return an error")
		require.NotNil(t, companyDbHandler, "Expected NewCompanyDBHandler to return a non-nil instance")
		require.NotNil(t, companyDbHandler.db.Instance, "Expected NewCompanyDBHandler to have a non-nil database connection instance")

		exists, err := companyDbHandler.CheckTableExistance()
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Invalid call NewCompanyDBHandler with nil database", func(t *testing.T) {
		_, err := NewCompanyDBHandler(nil, true)
		assert.Error(t, err, "Expected error when creating CompanyDBHandler with nil database")
		assert.Contains(t, err.Error(), "database connection is nil")
	})
}

func TestCompanyInsertAndSelect(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	company, err := store.Companies.InsertCompany(ctx, &model.Company{
		Name:      "Acme Corp",
		Industry:  "Tech",
		Website:   "https://acme.example",
		CreatedAt: created,
	})
	require.NoError(t, err, "Expected InsertCompany to not return an error")
	assert.NotEqual(t, uuid.Nil, company.ID, "Expected company ID to be generated")
	assert.True(t, company.CreatedAt.Equal(created), "Expected given created_at to be kept")
	assert.False(t, company.Verified)

	selected, err := store.Companies.SelectCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", selected.Name)
	assert.Equal(t, "Tech", selected.Industry)

	_, err = store.Companies.SelectCompany(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompanyUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	company, err := store.Companies.InsertCompany(ctx, &model.Company{Name: "Globex"})
	require.NoError(t, err)

	t.Run("Toggle verified", func(t *testing.T) {
		updated, err := store.Companies.UpdateCompany(ctx, company.ID, model.DataMap{"verified": true})
		require.NoError(t, err)
		assert.True(t, updated.Verified)
		assert.Equal(t, "Globex", updated.Name, "Expected untouched fields to keep their value")
	})

	t.Run("Unknown field", func(t *testing.T) {
		_, err := store.Companies.UpdateCompany(ctx, company.ID, model.DataMap{"created_at": "now"})
		assert.ErrorIs(t, err, model.ErrUnknownField)
	})

	t.Run("Missing company", func(t *testing.T) {
		_, err := store.Companies.UpdateCompany(ctx, uuid.New(), model.DataMap{"verified": true})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCompanyDeleteClearsJobs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	company, err := store.Companies.InsertCompany(ctx, &model.Company{Name: "Initech"})
	require.NoError(t, err)
	job, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "TPS Reporter", CompanyID: &company.ID, JobType: model.JobTypeFullTime})
	require.NoError(t, err)

	err = store.Companies.DeleteCompany(ctx, company.ID)
	require.NoError(t, err)

	err = store.Companies.DeleteCompany(ctx, company.ID)
	assert.NoError(t, err, "Expected deleting a missing company to succeed")

	remaining, err := store.Jobs.SelectJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Nil(t, remaining.CompanyID, "Expected job to outlive its company")
}
