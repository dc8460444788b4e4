package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/database/memory"
	"github.com/jobportal/portalManager/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s := NewService(memory.NewStore(), slog.Default())
	s.Now = func() time.Time { return testNow }
	return s
}

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "+0%", FormatChange(5, 0))
	assert.Equal(t, "+0%", FormatChange(0, 0))
	assert.Equal(t, "+50.0%", FormatChange(3, 2))
	assert.Equal(t, "-25.0%", FormatChange(3, 4))
	assert.Equal(t, "+0.0%", FormatChange(4, 4))
}

func TestTopSlices(t *testing.T) {
	slices := topSlices(map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}, 3)
	assert.Equal(t, []model.Slice{{Name: "c", Value: 5}, {Name: "a", Value: 2}, {Name: "b", Value: 2}}, slices)
	assert.Len(t, topSlices(map[string]int{"a": 1, "b": 1}, 0), 2)
	assert.Empty(t, topSlices(map[string]int{}, 6))
}

func TestApplicationsJoin(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	company, err := s.Store.Companies.InsertCompany(ctx, &model.Company{Name: "Acme"})
	require.NoError(t, err)
	job, err := s.Store.Jobs.InsertJob(ctx, &model.Job{Title: "Engineer", CompanyID: &company.ID})
	require.NoError(t, err)
	orphanJob, err := s.Store.Jobs.InsertJob(ctx, &model.Job{Title: "Designer"})
	require.NoError(t, err)
	ann, err := s.Store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "Ann", LastName: "Lee"})
	require.NoError(t, err)
	blank, err := s.Store.Profiles.InsertProfile(ctx, &model.Profile{})
	require.NoError(t, err)

	inserts := []*model.Application{
		{UserID: ann.ID, JobID: job.ID, Status: model.ApplicationHired, AppliedAt: testNow.Add(-3 * time.Hour)},
		{UserID: blank.ID, JobID: orphanJob.ID, AppliedAt: testNow.Add(-2 * time.Hour)},
		{UserID: uuid.New(), JobID: uuid.New(), Status: model.ApplicationRejected, AppliedAt: testNow.Add(-1 * time.Hour)},
	}
	for _, application := range inserts {
		_, err := s.Store.Applications.InsertApplication(ctx, application)
		require.NoError(t, err)
	}

	views, err := s.Applications(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, "Unknown Candidate", views[0].Candidate)
	assert.Equal(t, "Unknown Job", views[0].Job)
	assert.Equal(t, "Unknown Company", views[0].Company)
	assert.Equal(t, model.ApplicationRejected, views[0].Status)

	assert.Equal(t, "Candidate", views[1].Candidate)
	assert.Equal(t, "Designer", views[1].Job)
	assert.Equal(t, "Unknown Company", views[1].Company)
	assert.Equal(t, model.ApplicationPending, views[1].Status)

	assert.Equal(t, "Ann Lee", views[2].Candidate)
	assert.Equal(t, "Engineer", views[2].Job)
	assert.Equal(t, "Acme", views[2].Company)
	require.NotNil(t, views[2].AppliedAt)

	recent, err := s.RecentApplications(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestApplicationsEmpty(t *testing.T) {
	s := newTestService(t)

	views, err := s.Applications(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestDashboard(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for _, createdAt := range []time.Time{testNow.AddDate(0, 0, -1), testNow.AddDate(0, 0, -2), testNow.AddDate(0, 0, -40), testNow.AddDate(0, -4, 0)} {
		_, err := s.Store.Profiles.InsertProfile(ctx, &model.Profile{FirstName: "User", CreatedAt: createdAt})
		require.NoError(t, err)
	}
	for _, industry := range []string{"Tech", "Tech", "Finance", ""} {
		_, err := s.Store.Companies.InsertCompany(ctx, &model.Company{Name: "Company", Industry: industry, CreatedAt: testNow.AddDate(0, 0, -5)})
		require.NoError(t, err)
	}
	_, err := s.Store.Jobs.InsertJob(ctx, &model.Job{Title: "Engineer", CreatedAt: testNow.AddDate(0, -1, 0)})
	require.NoError(t, err)
	for _, status := range []string{model.MessageUnread, model.MessageUnread, model.MessageReplied} {
		_, err := s.Store.ContactMessages.InsertContactMessage(ctx, &model.ContactMessage{Name: "Visitor", Status: status})
		require.NoError(t, err)
	}

	stats, err := s.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, model.Trend{Total: 4, Change: "+100.0%"}, stats.Users)
	assert.Equal(t, model.Trend{Total: 4, Change: "+0%"}, stats.Companies)
	assert.Equal(t, 1, stats.Jobs.Total)
	assert.Equal(t, 0, stats.Applications.Total)
	assert.Equal(t, 2, stats.UnreadMessages)
	assert.Empty(t, stats.RecentApplications)

	require.Len(t, stats.Growth, 6)
	assert.Equal(t, "Jan", stats.Growth[0].Month)
	assert.Equal(t, "Jun", stats.Growth[5].Month)
	assert.Equal(t, 1, stats.Growth[1].Users)
	assert.Equal(t, 2, stats.Growth[5].Users)
	assert.Equal(t, 1, stats.Growth[4].Jobs)

	assert.Equal(t, []model.Slice{
		{Name: "Tech", Value: 2},
		{Name: "Finance", Value: 1},
		{Name: "Other", Value: 1},
	}, stats.Industries)
}

func TestAnalytics(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	for _, jobType := range []string{model.JobTypeRemote, model.JobTypeRemote, model.JobTypeContract, ""} {
		_, err := s.Store.Jobs.InsertJob(ctx, &model.Job{Title: "Job", JobType: jobType})
		require.NoError(t, err)
	}
	for _, appliedAt := range []time.Time{
		testNow.AddDate(0, 0, -200),
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC),
	} {
		_, err := s.Store.Applications.InsertApplication(ctx, &model.Application{UserID: uuid.New(), JobID: uuid.New(), AppliedAt: appliedAt})
		require.NoError(t, err)
	}

	stats, err := s.Analytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalJobs)
	assert.Equal(t, stats.TotalJobs, stats.ActiveJobs)
	assert.Equal(t, 4, stats.TotalApplications)
	assert.Equal(t, []model.Slice{
		{Name: model.JobTypeRemote, Value: 2},
		{Name: "Other", Value: 1},
		{Name: model.JobTypeContract, Value: 1},
	}, stats.JobTypes)
	assert.Equal(t, []model.Slice{
		{Name: "Mar", Value: 2},
		{Name: "May", Value: 1},
	}, stats.ApplicationsPerMonth)
	assert.Empty(t, stats.TopIndustries)
}

func TestDashboardReadFailure(t *testing.T) {
	s := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Dashboard(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJobs(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	company, err := s.Store.Companies.InsertCompany(ctx, &model.Company{Name: "Acme"})
	require.NoError(t, err)
	_, err = s.Store.Jobs.InsertJob(ctx, &model.Job{Title: "Engineer", CompanyID: &company.ID, CreatedAt: testNow.Add(-2 * time.Hour)})
	require.NoError(t, err)
	_, err = s.Store.Jobs.InsertJob(ctx, &model.Job{Title: "Designer", CreatedAt: testNow.Add(-1 * time.Hour)})
	require.NoError(t, err)

	jobs, err := s.Jobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Designer", jobs[0].Title)
	assert.Equal(t, "Unknown", jobs[0].Company)
	assert.Equal(t, "Engineer", jobs[1].Title)
	assert.Equal(t, "Acme", jobs[1].Company)
	assert.Equal(t, "Acme", jobs[1].ToRow()["company"])
}
