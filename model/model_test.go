package model

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsNormalize(t *testing.T) {
	t.Run("Converts form booleans", func(t *testing.T) {
		for input, expected := range map[any]bool{"true": true, "on": true, "1": true, "false": false, "off": false, true: true} {
			normalized, err := JobUpdateFields.Normalize(DataMap{"is_featured": input})
			require.NoError(t, err, "input %v", input)
			assert.Equal(t, expected, normalized["is_featured"], "input %v", input)
		}
	})

	t.Run("Rejects unknown fields", func(t *testing.T) {
		_, err := JobUpdateFields.Normalize(DataMap{"id": "x"})
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("Rejects values outside the enum", func(t *testing.T) {
		_, err := ContactMessageUpdateFields.Normalize(DataMap{"status": "archived"})
		assert.ErrorIs(t, err, ErrInvalidValue)

		normalized, err := ContactMessageUpdateFields.Normalize(DataMap{"status": " read "})
		require.NoError(t, err)
		assert.Equal(t, "read", normalized["status"])
	})

	t.Run("Rejects empty updates and bad types", func(t *testing.T) {
		_, err := CompanyUpdateFields.Normalize(DataMap{})
		assert.ErrorIs(t, err, ErrInvalidValue)

		_, err = CompanyUpdateFields.Normalize(DataMap{"name": 12})
		assert.ErrorIs(t, err, ErrInvalidValue)

		_, err = CompanyUpdateFields.Normalize(DataMap{"verified": "maybe"})
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestApplyUpdate(t *testing.T) {
	job := &Job{Title: "Engineer", JobType: JobTypeFullTime}
	err := job.ApplyUpdate(DataMap{"is_featured": "true", "job_type": JobTypeRemote})
	require.NoError(t, err)
	assert.True(t, job.IsFeatured)
	assert.Equal(t, JobTypeRemote, job.JobType)
	assert.Equal(t, "Engineer", job.Title)

	company := &Company{Name: "Acme"}
	err = company.ApplyUpdate(DataMap{"verified": true})
	require.NoError(t, err)
	assert.True(t, company.Verified)

	err = company.ApplyUpdate(DataMap{"created_at": "now"})
	assert.ErrorIs(t, err, ErrUnknownField)

	message := &ContactMessage{Status: MessageUnread}
	require.NoError(t, message.ApplyUpdate(DataMap{"status": MessageReplied}))
	assert.Equal(t, MessageReplied, message.Status)

	profile := &Profile{Role: RoleCandidate}
	assert.Error(t, profile.ApplyUpdate(DataMap{"role": "admin"}))
	assert.Equal(t, RoleCandidate, profile.Role)
}

func TestProfileFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&Profile{FirstName: "Ada", LastName: "Lovelace"}).FullName())
	assert.Equal(t, "Ada", (&Profile{FirstName: " Ada "}).FullName())
	assert.Equal(t, "Unknown User", (&Profile{}).FullName())
}

func TestToRow(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	job := &Job{ID: id, Title: "Engineer", CreatedAt: created}
	row := job.ToRow()
	assert.Equal(t, id.String(), row.ID())
	assert.Equal(t, "", row.String("company_id"))
	assert.False(t, row.Bool("is_featured"))

	companyID := uuid.New()
	job.CompanyID = &companyID
	assert.Equal(t, companyID.String(), job.ToRow().String("company_id"))

	view := &ApplicationView{ID: id, Candidate: "Ada"}
	assert.Nil(t, view.ToRow().Time("applied_at"))
}

func TestFilterValues(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	values, err := In("id", ids).Strings()
	require.NoError(t, err)
	assert.Equal(t, []string{ids[0].String(), ids[1].String()}, values)

	_, err = In("id", "nope").Strings()
	assert.ErrorIs(t, err, ErrInvalidValue)

	now := time.Now()
	got, err := Gte("created_at", now).Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(now))

	_, err = Eq("created_at", "yesterday").Time()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestDataMapFromForm(t *testing.T) {
	values := url.Values{
		"status":             {"read", "ignored"},
		"gorilla.csrf.Token": {"token"},
		"empty":              {},
	}
	dataMap := DataMapFromForm(values)
	assert.Equal(t, DataMap{"status": "read"}, dataMap)
	assert.Equal(t, []string{"status"}, dataMap.Keys())
	assert.True(t, dataMap.Has("status"))
	assert.Equal(t, "read", dataMap.GetStringByKey("status"))
}
