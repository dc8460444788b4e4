package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/model"
	"golang.org/x/sync/errgroup"
)

const (
	unknownCandidate = "Unknown Candidate"
	blankCandidate   = "Candidate"
	unknownJob       = "Unknown Job"
	unknownCompany   = "Unknown Company"
)

// RecentApplications returns the newest applications joined with candidate,
// job and company names.
func (s *Service) RecentApplications(ctx context.Context, limit int) ([]*model.ApplicationView, error) {
	query := model.NewestFirst("applied_at")
	query.Limit = limit
	return s.applications(ctx, query)
}

// Applications returns every application, newest first, joined like
// RecentApplications.
func (s *Service) Applications(ctx context.Context) ([]*model.ApplicationView, error) {
	return s.applications(ctx, model.NewestFirst("applied_at"))
}

func (s *Service) applications(ctx context.Context, query model.Query) ([]*model.ApplicationView, error) {
	applications, err := s.Store.Applications.SelectAllApplications(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return []*model.ApplicationView{}, nil
	}

	userIDs := []uuid.UUID{}
	jobIDs := []uuid.UUID{}
	for _, application := range applications {
		userIDs = append(userIDs, application.UserID)
		jobIDs = append(jobIDs, application.JobID)
	}

	var profiles []*model.Profile
	var jobs []*model.Job
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = s.Store.Profiles.SelectProfilesByIDs(gctx, uniqueIDs(userIDs))
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.Store.Jobs.SelectJobsByIDs(gctx, uniqueIDs(jobIDs))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	companyIDs := []uuid.UUID{}
	for _, job := range jobs {
		if job.CompanyID != nil {
			companyIDs = append(companyIDs, *job.CompanyID)
		}
	}
	companies, err := s.Store.Companies.SelectCompaniesByIDs(ctx, uniqueIDs(companyIDs))
	if err != nil {
		return nil, err
	}

	return joinApplications(applications, profiles, jobs, companies), nil
}

func joinApplications(applications []*model.Application, profiles []*model.Profile, jobs []*model.Job, companies []*model.Company) []*model.ApplicationView {
	profileByID := map[uuid.UUID]*model.Profile{}
	for _, profile := range profiles {
		profileByID[profile.ID] = profile
	}
	jobByID := map[uuid.UUID]*model.Job{}
	for _, job := range jobs {
		jobByID[job.ID] = job
	}
	companyByID := map[uuid.UUID]*model.Company{}
	for _, company := range companies {
		companyByID[company.ID] = company
	}

	views := make([]*model.ApplicationView, 0, len(applications))
	for _, application := range applications {
		view := &model.ApplicationView{
			ID:        application.ID,
			Candidate: unknownCandidate,
			Job:       unknownJob,
			Company:   unknownCompany,
			Status:    application.Status,
		}
		if view.Status == "" {
			view.Status = model.ApplicationPending
		}
		if !application.AppliedAt.IsZero() {
			appliedAt := application.AppliedAt
			view.AppliedAt = &appliedAt
		}

		if profile, ok := profileByID[application.UserID]; ok {
			view.Candidate = strings.TrimSpace(profile.FirstName + " " + profile.LastName)
			if view.Candidate == "" {
				view.Candidate = blankCandidate
			}
		}
		if job, ok := jobByID[application.JobID]; ok {
			if job.Title != "" {
				view.Job = job.Title
			}
			if job.CompanyID != nil {
				if company, ok := companyByID[*job.CompanyID]; ok && company.Name != "" {
					view.Company = company.Name
				}
			}
		}
		views = append(views, view)
	}
	return views
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	unique := []uuid.UUID{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}
