package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profile, err := store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "Ada", LastName: "Lovelace", Role: model.RoleCandidate})
	require.NoError(t, err)
	job, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "Analyst"})
	require.NoError(t, err)

	application, err := store.Applications.InsertApplication(ctx, &model.Application{
		UserID: profile.ID,
		JobID:  job.ID,
		Status: model.ApplicationPending,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, application.ID)
	assert.False(t, application.AppliedAt.IsZero(), "Expected applied_at to default to now")

	updated, err := store.Applications.UpdateApplication(ctx, application.ID, model.DataMap{"status": model.ApplicationHired})
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationHired, updated.Status)

	count, err := store.Applications.CountApplications(ctx, model.Eq("status", model.ApplicationHired))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = store.Profiles.DeleteProfile(ctx, profile.ID)
	require.NoError(t, err)

	count, err = store.Applications.CountApplications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "Expected applications of a deleted profile to be removed")
}

func TestApplicationInsertWithUnknownProfile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	job, err := store.Jobs.InsertJob(ctx, &model.Job{Title: "Analyst"})
	require.NoError(t, err)

	_, err = store.Applications.InsertApplication(ctx, &model.Application{UserID: uuid.New(), JobID: job.ID})
	assert.Error(t, err, "Expected foreign key violation")
}
