package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/model"
	"github.com/siherrmann/queuer/helper"
)

// JobDBHandlerFunctions defines the interface for Job database operations.
type JobDBHandlerFunctions interface {
	CheckTableExistance() (bool, error)
	CreateTable() error
	DropTable() error
	InsertJob(ctx context.Context, job *model.Job) (*model.Job, error)
	CountJobs(ctx context.Context, filters ...model.Filter) (int, error)
	SelectJob(ctx context.Context, id uuid.UUID) (*model.Job, error)
	SelectAllJobs(ctx context.Context, query model.Query) ([]*model.Job, error)
	SelectJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
}

// JobDBHandler implements JobDBHandlerFunctions and holds the database connection.
type JobDBHandler struct {
	db *helper.Database
}

const jobSelectColumns = `
	id,
	title,
	company_id,
	location,
	job_type,
	experience_level,
	is_featured,
	created_at`

// NewJobDBHandler creates a new instance of JobDBHandler.
// If withTableDrop is true, it will drop the existing jobs table before creating a new one.
func NewJobDBHandler(dbConnection *helper.Database, withTableDrop bool) (*JobDBHandler, error) {
	if dbConnection == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	jobDbHandler := &JobDBHandler{
		db: dbConnection,
	}

	if withTableDrop {
		err := jobDbHandler.DropTable()
		if err != nil {
			return nil, helper.NewError("drop table", err)
		}
	}

	err := jobDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	return jobDbHandler, nil
}

// CheckTableExistance checks if the 'jobs' table exists in the database.
func (r JobDBHandler) CheckTableExistance() (bool, error) {
	jobsExists, err := r.db.CheckTableExistance("jobs")
	if err != nil {
		return false, helper.NewError("jobs table", err)
	}
	return jobsExists, nil
}

// CreateTable creates the 'jobs' table in the database.
// Jobs outlive their company, company_id is cleared when it is deleted.
func (r JobDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `
		CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(200) NOT NULL DEFAULT '',
			company_id UUID REFERENCES companies(id) ON DELETE SET NULL,
			location VARCHAR(200) NOT NULL DEFAULT '',
			job_type VARCHAR(50) NOT NULL DEFAULT '',
			experience_level VARCHAR(50) NOT NULL DEFAULT '',
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_jobs_company_id ON jobs(company_id);
		CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs(created_at);
	`

	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("create jobs table", err)
	}

	r.db.Logger.Info("Checked/created table jobs")

	return nil
}

// DropTable drops the 'jobs' table from the database.
func (r JobDBHandler) DropTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `DROP TABLE IF EXISTS jobs CASCADE`
	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("drop jobs table", err)
	}

	r.db.Logger.Info("Dropped table jobs")

	return nil
}

// InsertJob inserts a new job. A nil ID or zero CreatedAt is filled in by the database.
func (r JobDBHandler) InsertJob(ctx context.Context, job *model.Job) (*model.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `
		INSERT INTO jobs (
			id,
			title,
			company_id,
			location,
			job_type,
			experience_level,
			is_featured,
			created_at
		) VALUES (COALESCE($1, gen_random_uuid()), $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()))
		RETURNING` + jobSelectColumns

	newJob, err := scanJob(r.db.Instance.QueryRowContext(
		ctx,
		query,
		nullUUID(job.ID),
		job.Title,
		nullUUIDPtr(job.CompanyID),
		job.Location,
		job.JobType,
		job.ExperienceLevel,
		job.IsFeatured,
		nullTime(job.CreatedAt),
	))
	if err != nil {
		return nil, helper.NewError("insert job", err)
	}

	return newJob, nil
}

// CountJobs counts the jobs matching all filters.
func (r JobDBHandler) CountJobs(ctx context.Context, filters ...model.Filter) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(filters, model.JobColumns)
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}

	var count int
	err = r.db.Instance.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`+where, stmt.args...).Scan(&count)
	if err != nil {
		return 0, helper.NewError("count jobs", err)
	}

	return count, nil
}

// SelectJob retrieves a job by id.
func (r JobDBHandler) SelectJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `SELECT` + jobSelectColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.Instance.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("select job: %w: no job with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("select job", err)
	}

	return job, nil
}

// SelectAllJobs retrieves the jobs matching the query.
func (r JobDBHandler) SelectAllJobs(ctx context.Context, query model.Query) ([]*model.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(query.Filters, model.JobColumns)
	if err != nil {
		return nil, fmt.Errorf("select jobs: %w", err)
	}
	tail, err := stmt.orderAndLimit(query, model.JobColumns)
	if err != nil {
		return nil, fmt.Errorf("select jobs: %w", err)
	}

	rows, err := r.db.Instance.QueryContext(ctx, `SELECT`+jobSelectColumns+` FROM jobs`+where+tail, stmt.args...)
	if err != nil {
		return nil, helper.NewError("select jobs", err)
	}
	defer rows.Close()

	jobs := []*model.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, helper.NewError("scan job", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return jobs, nil
}

// SelectJobsByIDs retrieves the jobs with the given ids. Unknown ids are skipped.
func (r JobDBHandler) SelectJobsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Job, error) {
	if len(ids) == 0 {
		return []*model.Job{}, nil
	}
	return r.SelectAllJobs(ctx, model.Query{Filters: []model.Filter{model.In("id", ids)}})
}

// UpdateJob sets the given fields of a job and returns the updated record.
func (r JobDBHandler) UpdateJob(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Job, error) {
	normalized, err := model.JobUpdateFields.Normalize(fields)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	set := stmt.set(normalized)
	query := `UPDATE jobs SET ` + set + ` WHERE id = ` + stmt.arg(id) + ` RETURNING` + jobSelectColumns

	job, err := scanJob(r.db.Instance.QueryRowContext(ctx, query, stmt.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update job: %w: no job with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("update job", err)
	}

	return job, nil
}

// DeleteJob deletes a job by id. Deleting a missing job is not an error.
func (r JobDBHandler) DeleteJob(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.db.Instance.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return helper.NewError("delete job", err)
	}

	return nil
}

func scanJob(row scanner) (*model.Job, error) {
	job := &model.Job{}
	var companyID uuid.NullUUID
	err := row.Scan(
		&job.ID,
		&job.Title,
		&companyID,
		&job.Location,
		&job.JobType,
		&job.ExperienceLevel,
		&job.IsFeatured,
		&job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if companyID.Valid {
		job.CompanyID = &companyID.UUID
	}
	return job, nil
}
