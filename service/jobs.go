package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/model"
)

// unknownJobCompany is shown for jobs whose company is gone.
const unknownJobCompany = "Unknown"

// Jobs returns every job newest first with the name of its company.
func (s *Service) Jobs(ctx context.Context) ([]*model.JobView, error) {
	jobs, err := s.Store.Jobs.SelectAllJobs(ctx, model.NewestFirst("created_at"))
	if err != nil {
		return nil, err
	}

	companyIDs := []uuid.UUID{}
	for _, job := range jobs {
		if job.CompanyID != nil {
			companyIDs = append(companyIDs, *job.CompanyID)
		}
	}

	names := map[uuid.UUID]string{}
	if len(companyIDs) > 0 {
		companies, err := s.Store.Companies.SelectCompaniesByIDs(ctx, uniqueIDs(companyIDs))
		if err != nil {
			return nil, err
		}
		for _, company := range companies {
			names[company.ID] = company.Name
		}
	}

	views := make([]*model.JobView, 0, len(jobs))
	for _, job := range jobs {
		view := &model.JobView{Job: *job, Company: unknownJobCompany}
		if job.CompanyID != nil && names[*job.CompanyID] != "" {
			view.Company = names[*job.CompanyID]
		}
		views = append(views, view)
	}
	return views, nil
}
