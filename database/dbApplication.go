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

// ApplicationDBHandlerFunctions defines the interface for Application database operations.
type ApplicationDBHandlerFunctions interface {
	CheckTableExistance() (bool, error)
	CreateTable() error
	DropTable() error
	InsertApplication(ctx context.Context, application *model.Application) (*model.Application, error)
	CountApplications(ctx context.Context, filters ...model.Filter) (int, error)
	SelectApplication(ctx context.Context, id uuid.UUID) (*model.Application, error)
	SelectAllApplications(ctx context.Context, query model.Query) ([]*model.Application, error)
	SelectApplicationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Application, error)
	UpdateApplication(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Application, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
}

// ApplicationDBHandler implements ApplicationDBHandlerFunctions and holds the database connection.
type ApplicationDBHandler struct {
	db *helper.Database
}

const applicationSelectColumns = `
	id,
	user_id,
	job_id,
	status,
	applied_at`

// NewApplicationDBHandler creates a new instance of ApplicationDBHandler.
// If withTableDrop is true, it will drop the existing applications table before creating a new one.
func NewApplicationDBHandler(dbConnection *helper.Database, withTableDrop bool) (*ApplicationDBHandler, error) {
	if dbConnection == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	applicationDbHandler := &ApplicationDBHandler{
		db: dbConnection,
	}

	if withTableDrop {
		err := applicationDbHandler.DropTable()
		if err != nil {
			return nil, helper.NewError("drop table", err)
		}
	}

	err := applicationDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	return applicationDbHandler, nil
}

// CheckTableExistance checks if the 'applications' table exists in the database.
func (r ApplicationDBHandler) CheckTableExistance() (bool, error) {
	applicationsExists, err := r.db.CheckTableExistance("applications")
	if err != nil {
		return false, helper.NewError("applications table", err)
	}
	return applicationsExists, nil
}

// CreateTable creates the 'applications' table in the database.
// Applications are removed together with their profile or job.
func (r ApplicationDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `
		CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_applications_user_id ON applications(user_id);
		CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id);
		CREATE INDEX IF NOT EXISTS idx_applications_applied_at ON applications(applied_at);
	`

	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("create applications table", err)
	}

	r.db.Logger.Info("Checked/created table applications")

	return nil
}

// DropTable drops the 'applications' table from the database.
func (r ApplicationDBHandler) DropTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `DROP TABLE IF EXISTS applications CASCADE`
	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("drop applications table", err)
	}

	r.db.Logger.Info("Dropped table applications")

	return nil
}

// InsertApplication inserts a new application. A nil ID or zero AppliedAt is filled in by the database.
func (r ApplicationDBHandler) InsertApplication(ctx context.Context, application *model.Application) (*model.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `
		INSERT INTO applications (
			id,
			user_id,
			job_id,
			status,
			applied_at
		) VALUES (COALESCE($1, gen_random_uuid()), $2, $3, $4, COALESCE($5, NOW()))
		RETURNING` + applicationSelectColumns

	newApplication, err := scanApplication(r.db.Instance.QueryRowContext(
		ctx,
		query,
		nullUUID(application.ID),
		application.UserID,
		application.JobID,
		application.Status,
		nullTime(application.AppliedAt),
	))
	if err != nil {
		return nil, helper.NewError("insert application", err)
	}

	return newApplication, nil
}

// CountApplications counts the applications matching all filters.
func (r ApplicationDBHandler) CountApplications(ctx context.Context, filters ...model.Filter) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(filters, model.ApplicationColumns)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}

	var count int
	err = r.db.Instance.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`+where, stmt.args...).Scan(&count)
	if err != nil {
		return 0, helper.NewError("count applications", err)
	}

	return count, nil
}

// SelectApplication retrieves an application by id.
func (r ApplicationDBHandler) SelectApplication(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `SELECT` + applicationSelectColumns + ` FROM applications WHERE id = $1`
	application, err := scanApplication(r.db.Instance.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("select application: %w: no application with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("select application", err)
	}

	return application, nil
}

// SelectAllApplications retrieves the applications matching the query.
func (r ApplicationDBHandler) SelectAllApplications(ctx context.Context, query model.Query) ([]*model.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(query.Filters, model.ApplicationColumns)
	if err != nil {
		return nil, fmt.Errorf("select applications: %w", err)
	}
	tail, err := stmt.orderAndLimit(query, model.ApplicationColumns)
	if err != nil {
		return nil, fmt.Errorf("select applications: %w", err)
	}

	rows, err := r.db.Instance.QueryContext(ctx, `SELECT`+applicationSelectColumns+` FROM applications`+where+tail, stmt.args...)
	if err != nil {
		return nil, helper.NewError("select applications", err)
	}
	defer rows.Close()

	applications := []*model.Application{}
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, helper.NewError("scan application", err)
		}
		applications = append(applications, application)
	}

	if err = rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return applications, nil
}

// SelectApplicationsByIDs retrieves the applications with the given ids. Unknown ids are skipped.
func (r ApplicationDBHandler) SelectApplicationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Application, error) {
	if len(ids) == 0 {
		return []*model.Application{}, nil
	}
	return r.SelectAllApplications(ctx, model.Query{Filters: []model.Filter{model.In("id", ids)}})
}

// UpdateApplication sets the given fields of an application and returns the updated record.
func (r ApplicationDBHandler) UpdateApplication(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Application, error) {
	normalized, err := model.ApplicationUpdateFields.Normalize(fields)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	set := stmt.set(normalized)
	query := `UPDATE applications SET ` + set + ` WHERE id = ` + stmt.arg(id) + ` RETURNING` + applicationSelectColumns

	application, err := scanApplication(r.db.Instance.QueryRowContext(ctx, query, stmt.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update application: %w: no application with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("update application", err)
	}

	return application, nil
}

// DeleteApplication deletes an application by id. Deleting a missing application is not an error.
func (r ApplicationDBHandler) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.db.Instance.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return helper.NewError("delete application", err)
	}

	return nil
}

func scanApplication(row scanner) (*model.Application, error) {
	application := &model.Application{}
	err := row.Scan(
		&application.ID,
		&application.UserID,
		&application.JobID,
		&application.Status,
		&application.AppliedAt,
	)
	if err != nil {
		return nil, err
	}
	return application, nil
}
