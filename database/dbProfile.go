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

// ProfileDBHandlerFunctions defines the interface for Profile database operations.
type ProfileDBHandlerFunctions interface {
	CheckTableExistance() (bool, error)
	CreateTable() error
	DropTable() error
	InsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	CountProfiles(ctx context.Context, filters ...model.Filter) (int, error)
	SelectProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	SelectAllProfiles(ctx context.Context, query model.Query) ([]*model.Profile, error)
	SelectProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

// ProfileDBHandler implements ProfileDBHandlerFunctions and holds the database connection.
type ProfileDBHandler struct {
	db *helper.Database
}

const profileSelectColumns = `
	id,
	first_name,
	last_name,
	phone,
	location,
	role,
	created_at`

// NewProfileDBHandler creates a new instance of ProfileDBHandler.
// If withTableDrop is true, it will drop the existing profiles table before creating a new one.
func NewProfileDBHandler(dbConnection *helper.Database, withTableDrop bool) (*ProfileDBHandler, error) {
	if dbConnection == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	profileDbHandler := &ProfileDBHandler{
		db: dbConnection,
	}

	if withTableDrop {
		err := profileDbHandler.DropTable()
		if err != nil {
			return nil, helper.NewError("drop table", err)
		}
	}

	err := profileDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	return profileDbHandler, nil
}

// CheckTableExistance checks if the 'profiles' table exists in the database.
func (r ProfileDBHandler) CheckTableExistance() (bool, error) {
	profilesExists, err := r.db.CheckTableExistance("profiles")
	if err != nil {
		return false, helper.NewError("profiles table", err)
	}
	return profilesExists, nil
}

// CreateTable creates the 'profiles' table in the database.
func (r ProfileDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `
		CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(100) NOT NULL DEFAULT '',
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			location VARCHAR(200) NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL DEFAULT 'candidate',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_profiles_role ON profiles(role);
		CREATE INDEX IF NOT EXISTS idx_profiles_created_at ON profiles(created_at);
	`

	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("create profiles table", err)
	}

	r.db.Logger.Info("Checked/created table profiles")

	return nil
}

// DropTable drops the 'profiles' table from the database.
func (r ProfileDBHandler) DropTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `DROP TABLE IF EXISTS profiles CASCADE`
	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("drop profiles table", err)
	}

	r.db.Logger.Info("Dropped table profiles")

	return nil
}

// InsertProfile inserts a new profile. A nil ID or zero CreatedAt is filled in by the database.
func (r ProfileDBHandler) InsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `
		INSERT INTO profiles (
			id,
			first_name,
			last_name,
			phone,
			location,
			role,
			created_at
		) VALUES (COALESCE($1, gen_random_uuid()), $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING` + profileSelectColumns

	newProfile, err := scanProfile(r.db.Instance.QueryRowContext(
		ctx,
		query,
		nullUUID(profile.ID),
		profile.FirstName,
		profile.LastName,
		profile.Phone,
		profile.Location,
		profile.Role,
		nullTime(profile.CreatedAt),
	))
	if err != nil {
		return nil, helper.NewError("insert profile", err)
	}

	return newProfile, nil
}

// CountProfiles counts the profiles matching all filters.
func (r ProfileDBHandler) CountProfiles(ctx context.Context, filters ...model.Filter) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(filters, model.ProfileColumns)
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}

	var count int
	err = r.db.Instance.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`+where, stmt.args...).Scan(&count)
	if err != nil {
		return 0, helper.NewError("count profiles", err)
	}

	return count, nil
}

// SelectProfile retrieves a profile by id.
func (r ProfileDBHandler) SelectProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `SELECT` + profileSelectColumns + ` FROM profiles WHERE id = $1`
	profile, err := scanProfile(r.db.Instance.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("select profile: %w: no profile with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("select profile", err)
	}

	return profile, nil
}

// SelectAllProfiles retrieves the profiles matching the query.
func (r ProfileDBHandler) SelectAllProfiles(ctx context.Context, query model.Query) ([]*model.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(query.Filters, model.ProfileColumns)
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	tail, err := stmt.orderAndLimit(query, model.ProfileColumns)
	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}

	rows, err := r.db.Instance.QueryContext(ctx, `SELECT`+profileSelectColumns+` FROM profiles`+where+tail, stmt.args...)
	if err != nil {
		return nil, helper.NewError("select profiles", err)
	}
	defer rows.Close()

	profiles := []*model.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, helper.NewError("scan profile", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return profiles, nil
}

// SelectProfilesByIDs retrieves the profiles with the given ids. Unknown ids are skipped.
func (r ProfileDBHandler) SelectProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error) {
	if len(ids) == 0 {
		return []*model.Profile{}, nil
	}
	return r.SelectAllProfiles(ctx, model.Query{Filters: []model.Filter{model.In("id", ids)}})
}

// UpdateProfile sets the given fields of a profile and returns the updated record.
func (r ProfileDBHandler) UpdateProfile(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.Profile, error) {
	normalized, err := model.ProfileUpdateFields.Normalize(fields)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	set := stmt.set(normalized)
	query := `UPDATE profiles SET ` + set + ` WHERE id = ` + stmt.arg(id) + ` RETURNING` + profileSelectColumns

	profile, err := scanProfile(r.db.Instance.QueryRowContext(ctx, query, stmt.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update profile: %w: no profile with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("update profile", err)
	}

	return profile, nil
}

// DeleteProfile deletes a profile by id. Deleting a missing profile is not an error.
func (r ProfileDBHandler) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.db.Instance.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return helper.NewError("delete profile", err)
	}

	return nil
}

func scanProfile(row scanner) (*model.Profile, error) {
	profile := &model.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Phone,
		&profile.Location,
		&profile.Role,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
