package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/table"
)

const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

var MessageStatuses = []string{MessageUnread, MessageRead, MessageReplied}

var ContactMessageColumns = []string{"id", "name", "email", "subject", "message", "status", "created_at"}

var ContactMessageUpdateFields = Fields{
	"status": {Kind: KindString, Values: MessageStatuses},
}

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *ContactMessage) ToRow() table.Row {
	return table.Row{
		"id":         m.ID.String(),
		"name":       m.Name,
		"email":      m.Email,
		"subject":    m.Subject,
		"message":    m.Message,
		"status":     m.Status,
		"created_at": m.CreatedAt,
	}
}

func (m *ContactMessage) ApplyUpdate(fields DataMap) error {
	normalized, err := ContactMessageUpdateFields.Normalize(fields)
	if err != nil {
		return err
	}
	if status, ok := normalized["status"]; ok {
		m.Status = status.(string)
	}
	return nil
}
