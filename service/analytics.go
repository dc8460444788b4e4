package service

import (
	"context"
	"time"

	"github.com/jobportal/portalManager/model"
	"golang.org/x/sync/errgroup"
)

const (
	analyticsWindow     = 180 * 24 * time.Hour
	analyticsIndustries = 5
	jobTypeOther        = "Other"
)

// Analytics loads the analytics page figures concurrently.
func (s *Service) Analytics(ctx context.Context) (*model.AnalyticsStats, error) {
	stats := &model.AnalyticsStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.Store.Profiles.CountProfiles(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalJobs, err = s.Store.Jobs.CountJobs(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalApplications, err = s.Store.Applications.CountApplications(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalCompanies, err = s.Store.Companies.CountCompanies(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.JobTypes, err = s.jobTypes(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ApplicationsPerMonth, err = s.applicationsPerMonth(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TopIndustries, err = s.industries(gctx, analyticsIndustries)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Jobs have no closed state, every posting counts as active.
	stats.ActiveJobs = stats.TotalJobs
	return stats, nil
}

func (s *Service) jobTypes(ctx context.Context) ([]model.Slice, error) {
	jobs, err := s.Store.Jobs.SelectAllJobs(ctx, model.Query{})
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, job := range jobs {
		jobType := job.JobType
		if jobType == "" {
			jobType = jobTypeOther
		}
		counts[jobType]++
	}
	return topSlices(counts, 0), nil
}

// applicationsPerMonth buckets the applications of the last 180 days by
// calendar month in chronological order.
func (s *Service) applicationsPerMonth(ctx context.Context) ([]model.Slice, error) {
	applications, err := s.Store.Applications.SelectAllApplications(ctx, model.Query{
		Filters: []model.Filter{model.Gte("applied_at", s.Now().Add(-analyticsWindow))},
		Order:   &model.Order{Column: "applied_at", Ascending: true},
	})
	if err != nil {
		return nil, err
	}

	months := []model.Slice{}
	var last time.Time
	for _, application := range applications {
		month := monthStart(application.AppliedAt)
		if len(months) == 0 || !month.Equal(last) {
			months = append(months, model.Slice{Name: month.Format("Jan")})
			last = month
		}
		months[len(months)-1].Value++
	}
	return months, nil
}
