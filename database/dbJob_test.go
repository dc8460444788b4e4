package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobSelectAllJobs(t *testing.T) {
	store := newTestStore(t)
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
		assert.Equal(t, model.JobTypeRemote, jobs[0].JobType)
		assert.True(t, jobs[0].CreatedAt.Equal(base.AddDate(0, 0, 2)))
	})

	t.Run("Count with time window", func(t *testing.T) {
		count, err := store.Jobs.CountJobs(ctx, model.Gte("created_at", base.AddDate(0, 0, 1)), model.Lt("created_at", base.AddDate(0, 0, 2)))
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = store.Jobs.CountJobs(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Unknown filter column", func(t *testing.T) {
		_, err := store.Jobs.SelectAllJobs(ctx, model.Query{Filters: []model.Filter{model.Eq("salary", 1)}})
		assert.ErrorIs(t, err, ErrUnknownColumn)
	})
}

func TestJobSelectJobsByIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "First"})
	require.NoError(t, err)
	_, err = store.Jobs.InsertJob(ctx, &model.Job{Title: "Second"})
	require.NoError(t, err)

	jobs, err := store.Jobs.SelectJobsByIDs(ctx, []uuid.UUID{first.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "First", jobs[0].Title)

	jobs, err = store.Jobs.SelectJobsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobUpdateAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	job, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "Engineer", JobType: model.JobTypeFullTime})
	require.NoError(t, err)

	updated, err := store.Jobs.UpdateJob(ctx, job.ID, model.DataMap{"is_featured": "true"})
	require.NoError(t, err)
	assert.True(t, updated.IsFeatured)

	_, err = store.Jobs.UpdateJob(ctx, job.ID, model.DataMap{"job_type": "gig"})
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	err = store.Jobs.DeleteJob(ctx, job.ID)
	require.NoError(t, err)

	_, err = store.Jobs.SelectJob(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
