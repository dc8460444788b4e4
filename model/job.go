package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/table"
)

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeRemote     = "remote"
	JobTypeContract   = "contract"
	JobTypeFreelance  = "freelance"
	JobTypeInternship = "internship"
)

var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeContract, JobTypeFreelance, JobTypeInternship}

var JobColumns = []string{"id", "title", "company_id", "location", "job_type", "experience_level", "is_featured", "created_at"}

var JobUpdateFields = Fields{
	"title":            {Kind: KindString},
	"location":         {Kind: KindString},
	"job_type":         {Kind: KindString, Values: JobTypes},
	"experience_level": {Kind: KindString},
	"is_featured":      {Kind: KindBool},
}

// Job is a posting. CompanyID is nil once the company has been deleted.
type Job struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	CompanyID       *uuid.UUID `json:"company_id"`
	Location        string     `json:"location"`
	JobType         string     `json:"job_type"`
	ExperienceLevel string     `json:"experience_level"`
	IsFeatured      bool       `json:"is_featured"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (j *Job) ToRow() table.Row {
	row := table.Row{
		"id":               j.ID.String(),
		"title":            j.Title,
		"company_id":       nil,
		"location":         j.Location,
		"job_type":         j.JobType,
		"experience_level": j.ExperienceLevel,
		"is_featured":      j.IsFeatured,
		"created_at":       j.CreatedAt,
	}
	if j.CompanyID != nil {
		row["company_id"] = j.CompanyID.String()
	}
	return row
}

func (j *Job) ApplyUpdate(fields DataMap) error {
	normalized, err := JobUpdateFields.Normalize(fields)
	if err != nil {
		return err
	}
	for key, value := range normalized {
		switch key {
		case "title":
			j.Title = value.(string)
		case "location":
			j.Location = value.(string)
		case "job_type":
			j.JobType = value.(string)
		case "experience_level":
			j.ExperienceLevel = value.(string)
		case "is_featured":
			j.IsFeatured = value.(bool)
		}
	}
	return nil
}

// JobView is a job joined with the name of its company.
type JobView struct {
	Job
	Company string `json:"company"`
}

func (j *JobView) ToRow() table.Row {
	row := j.Job.ToRow()
	row["company"] = j.Company
	return row
}
