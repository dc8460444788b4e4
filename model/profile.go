package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/table"
)

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

var Roles = []string{RoleCandidate, RoleEmployer}

// ProfileColumns are the columns a profile query may filter or order on.
var ProfileColumns = []string{"id", "first_name", "last_name", "phone", "location", "role", "created_at"}

var ProfileUpdateFields = Fields{
	"first_name": {Kind: KindString},
	"last_name":  {Kind: KindString},
	"phone":      {Kind: KindString},
	"location":   {Kind: KindString},
	"role":       {Kind: KindString, Values: Roles},
}

// Profile is a registered portal user, either a candidate or an employer.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins first and last name, "Unknown User" if both are blank.
func (p *Profile) FullName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return "Unknown User"
	}
	return name
}

func (p *Profile) ToRow() table.Row {
	return table.Row{
		"id":         p.ID.String(),
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"full_name":  p.FullName(),
		"phone":      p.Phone,
		"location":   p.Location,
		"role":       p.Role,
		"created_at": p.CreatedAt,
	}
}

func (p *Profile) ApplyUpdate(fields DataMap) error {
	normalized, err := ProfileUpdateFields.Normalize(fields)
	if err != nil {
		return err
	}
	for key, value := range normalized {
		switch key {
		case "first_name":
			p.FirstName = value.(string)
		case "last_name":
			p.LastName = value.(string)
		case "phone":
			p.Phone = value.(string)
		case "location":
			p.Location = value.(string)
		case "role":
			p.Role = value.(string)
		}
	}
	return nil
}
