package database

import (
	"context"
	"testing"

	"github.com/jobportal/portalManager/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "Ada", Role: model.RoleCandidate})
	require.NoError(t, err)
	employer, err := store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "Grace", Role: model.RoleEmployer})
	require.NoError(t, err)

	employers, err := store.Profiles.SelectAllProfiles(ctx, model.Query{Filters: []model.Filter{model.Eq("role", model.RoleEmployer)}})
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, employer.ID, employers[0].ID)

	_, err = store.Profiles.UpdateProfile(ctx, employer.ID, model.DataMap{"role": "admin"})
	assert.ErrorIs(t, err, model.ErrInvalidValue)

	exists, err := store.Profiles.CheckTableExistance()
	require.NoError(t, err)
	assert.True(t, exists)
}
