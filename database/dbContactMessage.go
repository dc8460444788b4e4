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

// ContactMessageDBHandlerFunctions defines the interface for ContactMessage database operations.
type ContactMessageDBHandlerFunctions interface {
	CheckTableExistance() (bool, error)
	CreateTable() error
	DropTable() error
	InsertContactMessage(ctx context.Context, contactMessage *model.ContactMessage) (*model.ContactMessage, error)
	CountContactMessages(ctx context.Context, filters ...model.Filter) (int, error)
	SelectContactMessage(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	SelectAllContactMessages(ctx context.Context, query model.Query) ([]*model.ContactMessage, error)
	SelectContactMessagesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.ContactMessage, error)
	UpdateContactMessage(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id uuid.UUID) error
}

// ContactMessageDBHandler implements ContactMessageDBHandlerFunctions and holds the database connection.
type ContactMessageDBHandler struct {
	db *helper.Database
}

const contactMessageSelectColumns = `
	id,
	name,
	email,
	subject,
	message,
	status,
	created_at`

// NewContactMessageDBHandler creates a new instance of ContactMessageDBHandler.
// If withTableDrop is true, it will drop the existing contact_messages table before creating a new one.
func NewContactMessageDBHandler(dbConnection *helper.Database, withTableDrop bool) (*ContactMessageDBHandler, error) {
	if dbConnection == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	contactMessageDbHandler := &ContactMessageDBHandler{
		db: dbConnection,
	}

	if withTableDrop {
		err := contactMessageDbHandler.DropTable()
		if err != nil {
			return nil, helper.NewError("drop table", err)
		}
	}

	err := contactMessageDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	return contactMessageDbHandler, nil
}

// CheckTableExistance checks if the 'contact_messages' table exists in the database.
func (r ContactMessageDBHandler) CheckTableExistance() (bool, error) {
	contactMessagesExists, err := r.db.CheckTableExistance("contact_messages")
	if err != nil {
		return false, helper.NewError("contact_messages table", err)
	}
	return contactMessagesExists, nil
}

// CreateTable creates the 'contact_messages' table in the database.
func (r ContactMessageDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(200) NOT NULL DEFAULT '',
			email VARCHAR(320) NOT NULL DEFAULT '',
			subject VARCHAR(300) NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'unread',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_contact_messages_status ON contact_messages(status);
	`

	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("create contact_messages table", err)
	}

	r.db.Logger.Info("Checked/created table contact_messages")

	return nil
}

// DropTable drops the 'contact_messages' table from the database.
func (r ContactMessageDBHandler) DropTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `DROP TABLE IF EXISTS contact_messages CASCADE`
	_, err := r.db.Instance.ExecContext(ctx, query)
	if err != nil {
		return helper.NewError("drop contact_messages table", err)
	}

	r.db.Logger.Info("Dropped table contact_messages")

	return nil
}

// InsertContactMessage inserts a new contact message. A nil ID or zero CreatedAt is filled in by the database.
func (r ContactMessageDBHandler) InsertContactMessage(ctx context.Context, contactMessage *model.ContactMessage) (*model.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `
		INSERT INTO contact_messages (
			id,
			name,
			email,
			subject,
			message,
			status,
			created_at
		) VALUES (COALESCE($1, gen_random_uuid()), $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING` + contactMessageSelectColumns

	newContactMessage, err := scanContactMessage(r.db.Instance.QueryRowContext(
		ctx,
		query,
		nullUUID(contactMessage.ID),
		contactMessage.Name,
		contactMessage.Email,
		contactMessage.Subject,
		contactMessage.Message,
		contactMessage.Status,
		nullTime(contactMessage.CreatedAt),
	))
	if err != nil {
		return nil, helper.NewError("insert contact message", err)
	}

	return newContactMessage, nil
}

// CountContactMessages counts the contact messages matching all filters.
func (r ContactMessageDBHandler) CountContactMessages(ctx context.Context, filters ...model.Filter) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(filters, model.ContactMessageColumns)
	if err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}

	var count int
	err = r.db.Instance.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`+where, stmt.args...).Scan(&count)
	if err != nil {
		return 0, helper.NewError("count contact messages", err)
	}

	return count, nil
}

// SelectContactMessage retrieves a contact message by id.
func (r ContactMessageDBHandler) SelectContactMessage(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := `SELECT` + contactMessageSelectColumns + ` FROM contact_messages WHERE id = $1`
	contactMessage, err := scanContactMessage(r.db.Instance.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("select contact message: %w: no contact message with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("select contact message", err)
	}

	return contactMessage, nil
}

// SelectAllContactMessages retrieves the contact messages matching the query.
func (r ContactMessageDBHandler) SelectAllContactMessages(ctx context.Context, query model.Query) ([]*model.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	where, err := stmt.where(query.Filters, model.ContactMessageColumns)
	if err != nil {
		return nil, fmt.Errorf("select contact messages: %w", err)
	}
	tail, err := stmt.orderAndLimit(query, model.ContactMessageColumns)
	if err != nil {
		return nil, fmt.Errorf("select contact messages: %w", err)
	}

	rows, err := r.db.Instance.QueryContext(ctx, `SELECT`+contactMessageSelectColumns+` FROM contact_messages`+where+tail, stmt.args...)
	if err != nil {
		return nil, helper.NewError("select contact messages", err)
	}
	defer rows.Close()

	contactMessages := []*model.ContactMessage{}
	for rows.Next() {
		contactMessage, err := scanContactMessage(rows)
		if err != nil {
			return nil, helper.NewError("scan contact message", err)
		}
		contactMessages = append(contactMessages, contactMessage)
	}

	if err = rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return contactMessages, nil
}

// SelectContactMessagesByIDs retrieves the contact messages with the given ids. Unknown ids are skipped.
func (r ContactMessageDBHandler) SelectContactMessagesByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.ContactMessage, error) {
	if len(ids) == 0 {
		return []*model.ContactMessage{}, nil
	}
	return r.SelectAllContactMessages(ctx, model.Query{Filters: []model.Filter{model.In("id", ids)}})
}

// UpdateContactMessage sets the given fields of a contact message and returns the updated record.
func (r ContactMessageDBHandler) UpdateContactMessage(ctx context.Context, id uuid.UUID, fields model.DataMap) (*model.ContactMessage, error) {
	normalized, err := model.ContactMessageUpdateFields.Normalize(fields)
	if err != nil {
		return nil, fmt.Errorf("update contact message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := &statement{}
	set := stmt.set(normalized)
	query := `UPDATE contact_messages SET ` + set + ` WHERE id = ` + stmt.arg(id) + ` RETURNING` + contactMessageSelectColumns

	contactMessage, err := scanContactMessage(r.db.Instance.QueryRowContext(ctx, query, stmt.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update contact message: %w: no contact message with id %s", ErrNotFound, id)
		}
		return nil, helper.NewError("update contact message", err)
	}

	return contactMessage, nil
}

// DeleteContactMessage deletes a contact message by id. Deleting a missing contact message is not an error.
func (r ContactMessageDBHandler) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.db.Instance.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return helper.NewError("delete contact message", err)
	}

	return nil
}

func scanContactMessage(row scanner) (*model.ContactMessage, error) {
	contactMessage := &model.ContactMessage{}
	err := row.Scan(
		&contactMessage.ID,
		&contactMessage.Name,
		&contactMessage.Email,
		&contactMessage.Subject,
		&contactMessage.Message,
		&contactMessage.Status,
		&contactMessage.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return contactMessage, nil
}
