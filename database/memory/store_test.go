package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertFillsDefaults(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	application, err := store.Applications.InsertApplication(ctx, &model.Application{UserID: uuid.New(), JobID: uuid.New()})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, application.ID)
	assert.False(t, application.AppliedAt.IsZero())
	assert.Equal(t, model.ApplicationPending, application.Status)

	message, err := store.ContactMessages.InsertContactMessage(ctx, &model.ContactMessage{Name: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, model.MessageUnread, message.Status)

	_, err = store.ContactMessages.InsertContactMessage(ctx, &model.ContactMessage{ID: message.ID})
	assert.Error(t, err)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	job, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "Engineer"})
	require.NoError(t, err)
	job.Title = "Changed"

	stored, err := store.Jobs.SelectJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", stored.Title)
}

func TestSelectAllJobs(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, jobType := range []string{model.JobTypeFullTime, model.JobTypeRemote, model.JobTypeRemote} {
		_, err := store.Jobs.InsertJob(ctx, &model.Job{
			Title:     "Job",
			JobType:   jobType,
			CreatedAt: base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	t.Run("Newest first", func(t *testing.T) {
		jobs, err := store.Jobs.SelectAllJobs(ctx, model.NewestFirst("created_at"))
		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.True(t, jobs[0].CreatedAt.After(jobs[1].CreatedAt))
		assert.True(t, jobs[1].CreatedAt.After(jobs[2].CreatedAt))
	})

	t.Run("Equality filter and limit", func(t *testing.T) {
		jobs, err := store.Jobs.SelectAllJobs(ctx, model.Query{
			Filters: []model.Filter{model.Eq("job_type", model.JobTypeRemote)},
			Order:   &model.Order{Column: "created_at"},
			Limit:   1,
		})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.True(t, jobs[0].CreatedAt.Equal(base.AddDate(0, 0, 2)))
	})

	t.Run("Count with time window", func(t *testing.T) {
		count, err := store.Jobs.CountJobs(ctx, model.Gte("created_at", base.AddDate(0, 0, 1)), model.Lt("created_at", base.AddDate(0, 0, 2)))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Boolean filter", func(t *testing.T) {
		count, err := store.Jobs.CountJobs(ctx, model.Eq("is_featured", false))
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Unknown column", func(t *testing.T) {
		_, err := store.Jobs.SelectAllJobs(ctx, model.Query{Order: &model.Order{Column: "salary"}})
		assert.ErrorIs(t, err, database.ErrUnknownColumn)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Jobs.SelectAllJobs(cancelled, model.Query{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestUpdateAndDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	company, err := store.Companies.InsertCompany(ctx, &model.Company{Name: "Acme"})
	require.NoError(t, err)

	updated, err := store.Companies.UpdateCompany(ctx, company.ID, model.DataMap{"verified": "on"})
	require.NoError(t, err)
	assert.True(t, updated.Verified)

	_, err = store.Companies.UpdateCompany(ctx, company.ID, model.DataMap{"owner": "me"})
	assert.ErrorIs(t, err, model.ErrUnknownField)

	_, err = store.Companies.UpdateCompany(ctx, uuid.New(), model.DataMap{"verified": "on"})
	assert.ErrorIs(t, err, database.ErrNotFound)

	require.NoError(t, store.Companies.DeleteCompany(ctx, company.ID))
	require.NoError(t, store.Companies.DeleteCompany(ctx, company.ID))

	_, err = store.Companies.SelectCompany(ctx, company.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeleteCascades(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	company, err := store.Companies.InsertCompany(ctx, &model.Company{Name: "Acme"})
	require.NoError(t, err)
	job, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "Engineer", CompanyID: &company.ID})
	require.NoError(t, err)
	profile, err := store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "Ann"})
	require.NoError(t, err)
	other, err := store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "Bob"})
	require.NoError(t, err)

	_, err = store.Applications.InsertApplication(ctx, &model.Application{UserID: profile.ID, JobID: job.ID})
	require.NoError(t, err)
	_, err = store.Applications.InsertApplication(ctx, &model.Application{UserID: other.ID, JobID: job.ID})
	require.NoError(t, err)

	t.Run("Company delete clears company_id", func(t *testing.T) {
		require.NoError(t, store.Companies.DeleteCompany(ctx, company.ID))

		stored, err := store.Jobs.SelectJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.CompanyID)

		count, err := store.Jobs.CountJobs(ctx, model.Eq("company_id", nil))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Profile delete removes its applications", func(t *testing.T) {
		require.NoError(t, store.Profiles.DeleteProfile(ctx, profile.ID))

		count, err := store.Applications.CountApplications(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Job delete removes its applications", func(t *testing.T) {
		require.NoError(t, store.Jobs.DeleteJob(ctx, job.ID))

		count, err := store.Applications.CountApplications(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestDropTable(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "Ann"})
	require.NoError(t, err)

	exists, err := store.Profiles.CheckTableExistance()
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Profiles.DropTable())
	count, err := store.Profiles.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
