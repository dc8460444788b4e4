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

// CompanyDBHandlerFunctions defines the interface for Company database operations.
type CompanyDBHandlerFunctions interface {
	CheckTableExistance() (bool, error)
	CreateTable() error
	DropTable() error
	InsertCompany(ctx context.Context, company *model.Company) (*model.Company, error)
	CountCompanies(ctx context.Context, filters ...model.Filter) (int, error)
	SelectCompany(ctx context.Context, id uuid.UUID) (*model.Company, error)
	SelectAllCompanies(ctx context.Context, query model.Query) ([]*model.Company, error)
	SelectCompaniesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

// CompanyDBHandler implements CompanyDBHandlerFunctions and holds the database connection.
type CompanyDBHandler struct {
	db *helper.Database
}

const companySelectColumns = `
	id,
	name,
	description,
	website,
	industry,
	logo_url,
	verified,
	created_at`

// NewCompanyDBHandler creates a new instance of CompanyDBHandler.
// If withTableDrop is true, it will drop the existing companies table before creating a new one.
func NewCompanyDBHandler(dbConnection *helper.Database, withTableDrop bool) (*CompanyDBHandler, error) {
	if dbConnection == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	companyDbHandler := &CompanyDBHandler{
		db: dbConnection,
	}

	if withTableDrop {
		err := companyDbHandler.DropTable()
		if err != nil {
			return nil, helper.NewError("drop table", err)
		}
	}

	err := companyDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	return companyDbHandler, nil
}

// CheckTableExistance checks if the 'companies' table exists in the database.
func (r CompanyDBHandler) CheckTableExistance() (bool, error) {
	companiesExists, err := r.db.CheckTableExistance("companies")
	if err != nil {
		return false, helper.NewError("companies table", err)
	}
	return companiesExists, nil
}

// CreateTable creates the 'companies' table in the database.
func (r CompanyDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `
		CREATE TABLE IF NOT EXISTS companies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(200) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			website VARCHAR(500) NOT NULL DEFAULT '',
			industry VARCHAR(100) NOT NULL DEFAULT '',
			logo_url VARCHAR(500) NOT NULL DEFAULT '',
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_companies_created_at ON companies(created_at);
	`

	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("create companies table", err)
	}

	r.db.Logger.Info("Checked/created table companies")

	return nil
}

// DropTable drops the 'companies' table from the database.
func (r CompanyDBHandler) DropTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `DROP TABLE IF EXISTS companies CASCADE`
	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("drop companies table", err)
	}

	r.db.Logger.Info("Dropped table companies")

	return nil
}

// InsertCompany inserts a new company. A nil ID or zero CreatedAt is filled in by the database.
func (r CompanyDBHandler) InsertCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `
		INSERT INTO companies (
			id,
			name,
			description,
			website,
			industry,
			logo_url,
			verified,
			created_at
		) VALUES (COALESCE($1, gen_random_uuid()), $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()))
		RETURNING` + companySelectColumns

	newCompany, err := scanCompany(r.db.Instance.QueryRowContext(
		ctx,
		query,
		nullUUID(company.ID),
		company.Name,
		company.Description,
		company.Website,
		company.Industry,
		company.LogoURL,
		company.Verified,
		nullTime(company.CreatedAt),
	))
	if err != nil {
		return nil, helper.NewError("insert company", err)
	}

	return newCompany, nil
}

// CountCompanies counts the companies matching all filters.
func (r CompanyDBHandler) CountCompanies(ctx context.Context, filters ...model.Filter) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(filters, model.CompanyColumns)
	if err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}

	var count int
	err = r.db.Instance.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`+where, stmt.args...).Scan(&count)
	if err != nil {
		return 0, helper.NewError("count companies", err)
	}

	return count, nil
}

// SelectCompany retrieves a company by id.
func (r CompanyDBHandler) SelectCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `SELECT` + companySelectColumns + ` FROM companies WHERE id = $1`
	company, err := scanCompany(r.db.Instance.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("select company: %w: no company with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("select company", err)
	}

	return company, nil
}

// SelectAllCompanies retrieves the companies matching the query.
func (r CompanyDBHandler) SelectAllCompanies(ctx context.Context, query model.Query) ([]*model.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(query.Filters, model.CompanyColumns)
	if err != nil {
		return nil, fmt.Errorf("select companies: %w", err)
	}
	tail, err := stmt.orderAndLimit(query, model.CompanyColumns)
	if err != nil {
		return nil, fmt.Errorf("select companies: %w", err)
	}

	rows, err := r.db.Instance.QueryContext(ctx, `SELECT`+companySelectColumns+` FROM companies`+where+tail, stmt.args...)
	if err != nil {
		return nil, helper.NewError("select companies", err)
	}
	defer rows.Close()

	companies := []*model.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, helper.NewError("scan company", err)
		}
		companies = append(companies, company)
	}

	if err = rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return companies, nil
}

// SelectCompaniesByIDs retrieves the companies with the given ids. Unknown ids are skipped.
func (r CompanyDBHandler) SelectCompaniesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Company, error) {
	if len(ids) == 0 {
		return []*model.Company{}, nil
	}
	return r.SelectAllCompanies(ctx, model.Query{Filters: []model.Filter{model.In("id", ids)}})
}

// UpdateCompany sets the given fields of a company and returns the updated record.
func (r CompanyDBHandler) UpdateCompany(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Company, error) {
	normalized, err := model.CompanyUpdateFields.Normalize(fields)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	set := stmt.set(normalized)
	query := `UPDATE companies SET ` + set + ` WHERE id = ` + stmt.arg(id) + ` RETURNING` + companySelectColumns

	company, err := scanCompany(r.db.Instance.QueryRowContext(ctx, query, stmt.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update company: %w: no company with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("update company", err)
	}

	return company, nil
}

// DeleteCompany deletes a company by id. Deleting a missing company is not an error.
func (r CompanyDBHandler) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.db.Instance.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return helper.NewError("delete company", err)
	}

	return nil
}

func scanCompany(row scanner) (*model.Company, error) {
	company := &model.Company{}
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Description,
		&company.Website,
		&company.Industry,
		&company.LogoURL,
		&company.Verified,
		&company.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return company, nil
}
