package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/helper"
	"github.com/jobportal/portalManager/model"
	"github.com/jobportal/portalManager/table"
	"github.com/jobportal/portalManager/view/components"
	"github.com/jobportal/portalManager/view/screens"

	"github.com/a-h/templ"
	"github.com/google/uuid"
)

const (
	styleBlue   = "bg-blue-100 hover:bg-blue-200 text-blue-600"
	styleYellow = "bg-yellow-100 hover:bg-yellow-200 text-yellow-600"
	styleGreen  = "bg-green-100 hover:bg-green-200 text-green-600"
	styleRed    = "bg-red-100 hover:bg-red-200 text-red-600"
)

const (
	ResourceJobs            = "jobs"
	ResourceUsers           = "users"
	ResourceCompanies       = "companies"
	ResourceApplications    = "applications"
	ResourceContactMessages = "contactMessages"
)

func (m *AdminHandler) jobsResource() *resource {
	segments := table.Segments{}
	for _, jobType := range model.JobTypes {
		segments = append(segments, table.Segment{Key: jobType, Label: helper.Capitalize(jobType), Match: table.FieldEquals("job_type", jobType)})
	}

	return &resource{
		name:        ResourceJobs,
		title:       "Jobs",
		subtitle:    "Manage all job postings",
		placeholder: "Search jobs...",
		segments:    segments,
		columns: []table.Column{
			{Key: "title", Header: "Job Title"},
			{Key: "company", Header: "Company"},
			{Key: "location", Header: "Location"},
			capitalizedColumn("job_type", "Type"),
			yesNoColumn("is_featured", "Featured"),
			dateColumn("created_at", "Posted"),
		},
		actions: []rowAction{
			viewAction(ResourceJobs),
			{
				Action: table.Action{
					Name:  "feature",
					Icon:  table.IconStar,
					Label: "Feature",
					Style: styleYellow,
					OnClick: withID(func(ctx context.Context, id uuid.UUID, row table.Row) error {
						_, err := m.store.Jobs.UpdateJob(ctx, id, model.DataMap{"is_featured": !row.Bool("is_featured")})
						return err
					}),
				},
				Success: func(row table.Row) string {
					if row.Bool("is_featured") {
						return "Job unfeatured!"
					}
					return "Job featured!"
				},
				Failure: "Failed to update featured status",
			},
			deleteAction("job", m.store.Jobs.DeleteJob),
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			jobs, err := m.service.Jobs(ctx)
			if err != nil {
				return nil, err
			}
			return toRows(jobs), nil
		},
		detail: m.jobDetail,
	}
}

func (m *AdminHandler) usersResource() *resource {
	return &resource{
		name:        ResourceUsers,
		title:       "Users",
		subtitle:    "Manage candidates and employers",
		placeholder: "Search users...",
		segments: table.Segments{
			{Key: model.RoleCandidate, Label: "Candidates", Match: table.FieldEquals("role", model.RoleCandidate)},
			{Key: model.RoleEmployer, Label: "Employers", Match: table.FieldEquals("role", model.RoleEmployer)},
		},
		columns: []table.Column{
			{Key: "full_name", Header: "Name"},
			{Key: "phone", Header: "Phone"},
			{Key: "location", Header: "Location"},
			capitalizedColumn("role", "Role"),
			dateColumn("created_at", "Joined"),
		},
		actions: []rowAction{
			viewAction(ResourceUsers),
			deleteAction("user", m.store.Profiles.DeleteProfile),
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			profiles, err := m.store.Profiles.SelectAllProfiles(ctx, model.NewestFirst("created_at"))
			if err != nil {
				return nil, err
			}
			return toRows(profiles), nil
		},
		detail: m.userDetail,
	}
}

func (m *AdminHandler) companiesResource() *resource {
	return &resource{
		name:        ResourceCompanies,
		title:       "Companies",
		subtitle:    "Manage registered companies",
		placeholder: "Search companies...",
		segments: table.Segments{
			{Key: "verified", Label: "Verified", Match: func(row table.Row) bool { return row.Bool("verified") }},
			{Key: "unverified", Label: "Unverified", Match: func(row table.Row) bool { return !row.Bool("verified") }},
		},
		columns: []table.Column{
			{Key: "name", Header: "Company Name"},
			{Key: "industry", Header: "Industry"},
			{
				Key:    "website",
				Header: "Website",
				Render: func(row table.Row) templ.Component {
					return components.ExternalLink(row.String("website"), "Visit")
				},
			},
			yesNoColumn("verified", "Verified"),
			dateColumn("created_at", "Joined"),
		},
		actions: []rowAction{
			viewAction(ResourceCompanies),
			{
				Action: table.Action{
					Name:  "verify",
					Icon:  table.IconCheck,
					Label: "Verify",
					Style: styleGreen,
					OnClick: withID(func(ctx context.Context, id uuid.UUID, row table.Row) error {
						_, err := m.store.Companies.UpdateCompany(ctx, id, model.DataMap{"verified": !row.Bool("verified")})
						return err
					}),
				},
				Success: func(row table.Row) string {
					if row.Bool("verified") {
						return "Company unverified!"
					}
					return "Company verified!"
				},
				Failure: "Failed to update verification status",
			},
			deleteAction("company", m.store.Companies.DeleteCompany),
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			companies, err := m.store.Companies.SelectAllCompanies(ctx, model.NewestFirst("created_at"))
			if err != nil {
				return nil, err
			}
			return toRows(companies), nil
		},
		detail: m.companyDetail,
	}
}

func (m *AdminHandler) applicationsResource() *resource {
	segments := table.Segments{}
	for _, status := range model.ApplicationStatuses {
		segments = append(segments, table.Segment{Key: status, Label: helper.Capitalize(status), Match: table.FieldEquals("status", status)})
	}

	return &resource{
		name:        ResourceApplications,
		title:       "Applications",
		subtitle:    "Track candidate applications",
		placeholder: "Search applications...",
		segments:    segments,
		columns: []table.Column{
			{Key: "candidate", Header: "Candidate"},
			{Key: "job", Header: "Job Title"},
			{Key: "company", Header: "Company"},
			dateColumn("applied_at", "Applied Date"),
			{
				Key:    "status",
				Header: "Status",
				Render: func(row table.Row) templ.Component {
					return components.ApplicationStatus(row.String("status"))
				},
			},
		},
		actions: []rowAction{
			statusAction("hire", table.IconCheck, "Hire", styleGreen, model.ApplicationHired, "Application marked as hired", m.updateApplicationStatus),
			statusAction("reject", table.IconXMark, "Reject", styleRed, model.ApplicationRejected, "Application rejected", m.updateApplicationStatus),
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			applications, err := m.service.Applications(ctx)
			if err != nil {
				return nil, err
			}
			return toRows(applications), nil
		},
	}
}

func (m *AdminHandler) contactMessagesResource() *resource {
	segments := table.Segments{}
	for _, status := range model.MessageStatuses {
		segments = append(segments, table.Segment{Key: status, Label: helper.Capitalize(status), Match: table.FieldEquals("status", status)})
	}

	return &resource{
		name:        ResourceContactMessages,
		title:       "Messages",
		subtitle:    "Messages sent through the contact form",
		placeholder: "Search messages...",
		segments:    segments,
		columns: []table.Column{
			{Key: "name", Header: "Name"},
			{Key: "email", Header: "Email"},
			{Key: "subject", Header: "Subject"},
			{
				Key:    "message",
				Header: "Message",
				Render: func(row table.Row) templ.Component {
					return components.Text(helper.Truncate(row.String("message"), 100))
				},
			},
			{
				Key:    "created_at",
				Header: "Date",
				Render: func(row table.Row) templ.Component {
					return components.Text(helper.FormatDateTime(row.Time("created_at")))
				},
				Plain: func(row table.Row) string {
					return helper.FormatDateTime(row.Time("created_at"))
				},
			},
			{
				Key:    "status",
				Header: "Status",
				Render: func(row table.Row) templ.Component {
					return components.MessageStatus(row.String("status"))
				},
			},
		},
		actions: []rowAction{
			statusAction("read", table.IconCheck, "Mark Read", styleGreen, model.MessageRead, "Marked as read", m.updateMessageStatus),
			statusAction("replied", table.IconReply, "Mark Replied", styleBlue, model.MessageReplied, "Marked as replied", m.updateMessageStatus),
			deleteAction("message", m.store.ContactMessages.DeleteContactMessage),
		},
		load: func(ctx context.Context) ([]table.Row, error) {
			messages, err := m.store.ContactMessages.SelectAllContactMessages(ctx, model.NewestFirst("created_at"))
			if err != nil {
				return nil, err
			}
			return toRows(messages), nil
		},
	}
}

func (m *AdminHandler) updateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := m.store.Applications.UpdateApplication(ctx, id, model.DataMap{"status": status})
	return err
}

func (m *AdminHandler) updateMessageStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := m.store.ContactMessages.UpdateContactMessage(ctx, id, model.DataMap{"status": status})
	return err
}

// =======Detail pages=======

func (m *AdminHandler) jobDetail(ctx context.Context, id uuid.UUID) (*detailPage, error) {
	job, err := m.store.Jobs.SelectJob(ctx, id)
	if err != nil {
		return nil, err
	}

	company := "Unknown"
	if job.CompanyID != nil {
		c, err := m.store.Companies.SelectCompany(ctx, *job.CompanyID)
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			return nil, err
		} else if err == nil {
			company = c.Name
		}
	}

	applications, err := m.store.Applications.CountApplications(ctx, model.Eq("job_id", id))
	if err != nil {
		return nil, err
	}

	return &detailPage{
		Title: job.Title,
		Fields: []model.KeyValuePair{
			{Key: "Company", Value: company},
			{Key: "Location", Value: orNotAvailable(job.Location)},
			{Key: "Type", Value: helper.Capitalize(job.JobType)},
			{Key: "Experience Level", Value: orNotAvailable(job.ExperienceLevel)},
			{Key: "Featured", Value: yesNo(job.IsFeatured)},
			{Key: "Posted", Value: helper.FormatDate(&job.CreatedAt)},
			{Key: "Applications", Value: helper.FormatCount(applications)},
		},
	}, nil
}

func (m *AdminHandler) userDetail(ctx context.Context, id uuid.UUID) (*detailPage, error) {
	profile, err := m.store.Profiles.SelectProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	applications, err := m.store.Applications.CountApplications(ctx, model.Eq("user_id", id))
	if err != nil {
		return nil, err
	}

	return &detailPage{
		Title: profile.FullName(),
		Fields: []model.KeyValuePair{
			{Key: "Phone", Value: orNotAvailable(profile.Phone)},
			{Key: "Location", Value: orNotAvailable(profile.Location)},
			{Key: "Role", Value: helper.Capitalize(profile.Role)},
			{Key: "Joined", Value: helper.FormatDate(&profile.CreatedAt)},
			{Key: "Applications", Value: helper.FormatCount(applications)},
		},
	}, nil
}

func (m *AdminHandler) companyDetail(ctx context.Context, id uuid.UUID) (*detailPage, error) {
	company, err := m.store.Companies.SelectCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	jobs, err := m.store.Jobs.CountJobs(ctx, model.Eq("company_id", id))
	if err != nil {
		return nil, err
	}

	return &detailPage{
		Title: company.Name,
		Fields: []model.KeyValuePair{
			{Key: "Industry", Value: company.IndustryOrOther()},
			{Key: "Website", Value: orNotAvailable(company.Website)},
			{Key: "Description", Value: orNotAvailable(company.Description)},
			{Key: "Verified", Value: yesNo(company.Verified)},
			{Key: "Joined", Value: helper.FormatDate(&company.CreatedAt)},
			{Key: "Jobs", Value: helper.FormatCount(jobs)},
		},
		Extra: screens.LogoForm(fmt.Sprintf("/api/company/logo/%s", company.ID), company.LogoURL),
	}, nil
}

// =======Column and action builders=======

type rowConverter interface {
	ToRow() table.Row
}

func toRows[T rowConverter](records []T) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.ToRow())
	}
	return rows
}

func dateColumn(key string, header string) table.Column {
	return table.Column{
		Key:    key,
		Header: header,
		Render: func(row table.Row) templ.Component {
			return components.Text(helper.FormatDate(row.Time(key)))
		},
		Plain: func(row table.Row) string {
			return helper.FormatDate(row.Time(key))
		},
	}
}

func capitalizedColumn(key string, header string) table.Column {
	return table.Column{
		Key:    key,
		Header: header,
		Render: func(row table.Row) templ.Component {
			return components.Text(helper.Capitalize(row.String(key)))
		},
		Plain: func(row table.Row) string {
			return helper.Capitalize(row.String(key))
		},
	}
}

func yesNoColumn(key string, header string) table.Column {
	return table.Column{
		Key:    key,
		Header: header,
		Render: func(row table.Row) templ.Component {
			return components.YesNo(row.Bool(key))
		},
		Plain: func(row table.Row) string {
			return yesNo(row.Bool(key))
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func orNotAvailable(value string) string {
	if value == "" {
		return helper.NotAvailable
	}
	return value
}

// withID parses the row id before calling fn.
func withID(fn func(ctx context.Context, id uuid.UUID, row table.Row) error) func(ctx context.Context, row table.Row) error {
	return func(ctx context.Context, row table.Row) error {
		id, err := uuid.Parse(row.ID())
		if err != nil {
			return fmt.Errorf("invalid row id %q: %w", row.ID(), err)
		}
		return fn(ctx, id, row)
	}
}

func viewAction(resourceName string) rowAction {
	return rowAction{
		Action: table.Action{
			Name:  "view",
			Icon:  table.IconEye,
			Label: "View",
			Style: styleBlue,
			Href: func(row table.Row) string {
				return "/admin/" + resourceName + "/" + row.ID()
			},
		},
	}
}

func deleteAction(noun string, remove func(ctx context.Context, id uuid.UUID) error) rowAction {
	return rowAction{
		Action: table.Action{
			Name:    "delete",
			Icon:    table.IconTrash,
			Label:   "Delete",
			Style:   styleRed,
			Confirm: fmt.Sprintf("Delete this %s?", noun),
			OnClick: withID(func(ctx context.Context, id uuid.UUID, _ table.Row) error {
				return remove(ctx, id)
			}),
		},
		Success: func(table.Row) string { return helper.Capitalize(noun) + " deleted" },
		Failure: fmt.Sprintf("Failed to delete %s", noun),
	}
}

func statusAction(name string, icon table.Icon, label string, style string, status string, success string, update func(ctx context.Context, id uuid.UUID, status string) error) rowAction {
	return rowAction{
		Action: table.Action{
			Name:  name,
			Icon:  icon,
			Label: label,
			Style: style,
			OnClick: withID(func(ctx context.Context, id uuid.UUID, _ table.Row) error {
				return update(ctx, id, status)
			}),
		},
		Success: func(table.Row) string { return success },
		Failure: "Failed to update status",
	}
}
