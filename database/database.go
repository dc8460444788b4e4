package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/queuer/helper"

	_ "github.com/lib/pq"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUnknownColumn = errors.New("unknown column")
)

// Configuration holds the Postgres connection settings.
type Configuration struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
	Schema   string
	SSLMode  string
}

func (c Configuration) dsn() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema,
	)
}

// Open connects to Postgres and wraps the connection for the table handlers.
func Open(config Configuration, logger *slog.Logger) (*helper.Database, error) {
	db, err := sql.Open("postgres", config.dsn())
	if err != nil {
		return nil, helper.NewError("open database", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, helper.NewError("ping database", err)
	}

	logger.Info("Connected to database", "host", config.Host, "database", config.Database)

	return helper.NewDatabaseWithDB("portal", db, logger), nil
}

// Store bundles the row store of every logical table.
type Store struct {
	Profiles        ProfileDBHandlerFunctions
	Jobs            JobDBHandlerFunctions
	Applications    ApplicationDBHandlerFunctions
	Companies       CompanyDBHandlerFunctions
	ContactMessages ContactMessageDBHandlerFunctions
}

// NewStore creates the Postgres handlers. Tables are created in dependency
// order so foreign keys resolve.
func NewStore(db *helper.Database, withTableDrop bool) (*Store, error) {
	profiles, err := NewProfileDBHandler(db, withTableDrop)
	if err != nil {
		return nil, err
	}
	companies, err := NewCompanyDBHandler(db, withTableDrop)
	if err != nil {
		return nil, err
	}
	jobs, err := NewJobDBHandler(db, withTableDrop)
	if err != nil {
		return nil, err
	}
	applications, err := NewApplicationDBHandler(db, withTableDrop)
	if err != nil {
		return nil, err
	}
	contactMessages, err := NewContactMessageDBHandler(db, withTableDrop)
	if err != nil {
		return nil, err
	}

	return &Store{
		Profiles:        profiles,
		Jobs:            jobs,
		Applications:    applications,
		Companies:       companies,
		ContactMessages: contactMessages,
	}, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func nullUUIDPtr(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return nullUUID(*id)
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
