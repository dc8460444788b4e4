package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobportal/portalManager/table"
)

const IndustryOther = "Other"

var CompanyColumns = []string{"id", "name", "description", "website", "industry", "logo_url", "verified", "created_at"}

var CompanyUpdateFields = Fields{
	"name":        {Kind: KindString},
	"description": {Kind: KindString},
	"website":     {Kind: KindString},
	"industry":    {Kind: KindString},
	"logo_url":    {Kind: KindString},
	"verified":    {Kind: KindBool},
}

// Company is an employer organisation.
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Industry    string    `json:"industry"`
	LogoURL     string    `json:"logo_url"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// IndustryOrOther returns the industry, IndustryOther when unset.
func (c *Company) IndustryOrOther() string {
	if c.Industry == "" {
		return IndustryOther
	}
	return c.Industry
}

func (c *Company) ToRow() table.Row {
	return table.Row{
		"id":          c.ID.String(),
		"name":        c.Name,
		"description": c.Description,
		"website":     c.Website,
		"industry":    c.Industry,
		"logo_url":    c.LogoURL,
		"verified":    c.Verified,
		"created_at":  c.CreatedAt,
	}
}

func (c *Company) ApplyUpdate(fields DataMap) error {
	normalized, err := CompanyUpdateFields.Normalize(fields)
	if err != nil {
		return err
	}
	for key, value := range normalized {
		switch key {
		case "name":
			c.Name = value.(string)
		case "description":
			c.Description = value.(string)
		case "website":
			c.Website = value.(string)
		case "industry":
			c.Industry = value.(string)
		case "logo_url":
			c.LogoURL = value.(string)
		case "verified":
			c.Verified = value.(bool)
		}
	}
	return nil
}
