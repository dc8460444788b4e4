package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/model"
)

// NewStore returns an empty in-memory store. Deletes follow the Postgres
// schema: removing a profile or job removes its applications and removing a
// company clears company_id on its jobs.
func NewStore() *database.Store {
	profiles := &Profiles{newMemoryTable(
		"profiles", model.ProfileColumns,
		func(p *model.Profile) uuid.UUID { return p.ID },
		func(p *model.Profile, now time.Time) uuid.UUID {
			p.ID = newID(p.ID)
			p.CreatedAt = orNow(p.CreatedAt, now)
			return p.ID
		},
	)}
	companies := &Companies{newMemoryTable(
		"companies", model.CompanyColumns,
		func(c *model.Company) uuid.UUID { return c.ID },
		func(c *model.Company, now time.Time) uuid.UUID {
			c.ID = newID(c.ID)
			c.CreatedAt = orNow(c.CreatedAt, now)
			return c.ID
		},
	)}
	jobs := &Jobs{newMemoryTable(
		"jobs", model.JobColumns,
		func(j *model.Job) uuid.UUID { return j.ID },
		func(j *model.Job, now time.Time) uuid.UUID {
			j.ID = newID(j.ID)
			j.CreatedAt = orNow(j.CreatedAt, now)
			return j.ID
		},
	)}
	applications := &Applications{newMemoryTable(
		"applications", model.ApplicationColumns,
		func(a *model.Application) uuid.UUID { return a.ID },
		func(a *model.Application, now time.Time) uuid.UUID {
			a.ID = newID(a.ID)
			a.AppliedAt = orNow(a.AppliedAt, now)
			if a.Status == "" {
				a.Status = model.ApplicationPending
			}
			return a.ID
		},
	)}
	contactMessages := &ContactMessages{newMemoryTable(
		"contact_messages", model.ContactMessageColumns,
		func(m *model.ContactMessage) uuid.UUID { return m.ID },
		func(m *model.ContactMessage, now time.Time) uuid.UUID {
			m.ID = newID(m.ID)
			m.CreatedAt = orNow(m.CreatedAt, now)
			if m.Status == "" {
				m.Status = model.MessageUnread
			}
			return m.ID
		},
	)}

	profiles.onDelete = func(ctx context.Context, id uuid.UUID) {
		applications.deleteWhere(model.Eq("user_id", id))
	}
	jobs.onDelete = func(ctx context.Context, id uuid.UUID) {
		applications.deleteWhere(model.Eq("job_id", id))
	}
	companies.onDelete = func(ctx context.Context, id uuid.UUID) {
		jobs.modify(model.Eq("company_id", id), func(j *model.Job) { j.CompanyID = nil })
	}

	return &database.Store{
		Profiles:        profiles,
		Jobs:            jobs,
		Applications:    applications,
		Companies:       companies,
		ContactMessages: contactMessages,
	}
}

func newID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

func orNow(t time.Time, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}
