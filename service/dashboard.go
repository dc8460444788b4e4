package service

import (
	"context"

	"github.com/jobportal/portalManager/model"
	"golang.org/x/sync/errgroup"
)

const (
	recentApplications  = 10
	dashboardIndustries = 6
)

// Dashboard loads every figure of the dashboard concurrently. The first
// failing read cancels the others and is returned.
func (s *Service) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Users, err = s.trend(gctx, s.Store.Profiles.CountProfiles, "created_at")
		return err
	})
	g.Go(func() (err error) {
		stats.Jobs, err = s.trend(gctx, s.Store.Jobs.CountJobs, "created_at")
		return err
	})
	g.Go(func() (err error) {
		stats.Applications, err = s.trend(gctx, s.Store.Applications.CountApplications, "applied_at")
		return err
	})
	g.Go(func() (err error) {
		stats.Companies, err = s.trend(gctx, s.Store.Companies.CountCompanies, "created_at")
		return err
	})
	g.Go(func() (err error) {
		stats.UnreadMessages, err = s.UnreadMessages(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.RecentApplications, err = s.RecentApplications(gctx, recentApplications)
		return err
	})
	g.Go(func() (err error) {
		stats.Growth, err = s.Growth(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Industries, err = s.industries(gctx, dashboardIndustries)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// Growth counts users and jobs created in each of the last six calendar
// months, oldest month first.
func (s *Service) Growth(ctx context.Context) ([]model.GrowthPoint, error) {
	current := monthStart(s.Now())
	points := make([]model.GrowthPoint, growthMonths)

	g, gctx := errgroup.WithContext(ctx)
	for i := range points {
		start := current.AddDate(0, i-growthMonths+1, 0)
		end := start.AddDate(0, 1, 0)
		points[i].Month = start.Format("Jan")

		g.Go(func() (err error) {
			points[i].Users, err = s.Store.Profiles.CountProfiles(gctx, model.Gte("created_at", start), model.Lt("created_at", end))
			return err
		})
		g.Go(func() (err error) {
			points[i].Jobs, err = s.Store.Jobs.CountJobs(gctx, model.Gte("created_at", start), model.Lt("created_at", end))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}
