package model

import "atria/shared/model"

const (
	TableName  = "projects"
	EntityName = "project"

	FieldID               = "id"
	FieldCompanyID        = "company_id"
	FieldPrimaryContactID = "primary_contact_id"
	FieldName             = "name"
	FieldStatus           = "status"
)

const (
	StatusActive    = "active"
	StatusOnHold    = "on_hold"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

type Project struct {
	ID               string  `db:"id"`
	CompanyID        string  `db:"company_id"`
	PrimaryContactID *string `db:"primary_contact_id"`
	Name             string  `db:"name"`
	Description      string  `db:"description"`
	Status           string  `db:"status"`
	model.Metadata
}
