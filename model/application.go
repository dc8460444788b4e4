package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/table"
)

const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationHired    = "hired"
	ApplicationRejected = "rejected"
)

var ApplicationStatuses = []string{ApplicationPending, ApplicationReviewed, ApplicationHired, ApplicationRejected}

var ApplicationColumns = []string{"id", "user_id", "job_id", "status", "applied_at"}

var ApplicationUpdateFields = Fields{
	"status": {Kind: KindString, Values: ApplicationStatuses},
}

// Application links a candidate profile to a job.
type Application struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

func (a *Application) ToRow() table.Row {
	return table.Row{
		"id":         a.ID.String(),
		"user_id":    a.UserID.String(),
		"job_id":     a.JobID.String(),
		"status":     a.Status,
		"applied_at": a.AppliedAt,
	}
}

func (a *Application) ApplyUpdate(fields DataMap) error {
	normalized, err := ApplicationUpdateFields.Normalize(fields)
	if err != nil {
		return err
	}
	if status, ok := normalized["status"]; ok {
		a.Status = status.(string)
	}
	return nil
}

// ApplicationView is an application joined with the names of its candidate,
// job and company.
type ApplicationView struct {
	ID        uuid.UUID  `json:"id"`
	Candidate string     `json:"candidate"`
	Job       string     `json:"job"`
	Company   string     `json:"company"`
	Status    string     `json:"status"`
	AppliedAt *time.Time `json:"applied_at"`
}

func (a *ApplicationView) ToRow() table.Row {
	return table.Row{
		"id":         a.ID.String(),
		"candidate":  a.Candidate,
		"job":        a.Job,
		"company":    a.Company,
		"status":     a.Status,
		"applied_at": a.AppliedAt,
	}
}
