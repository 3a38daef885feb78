package model

import "atria/shared/model"

const (
	TableName  = "providers"
	EntityName = "provider"

	FieldID        = "id"
	FieldFullName  = "full_name"
	FieldSpecialty = "specialty"
	FieldActive    = "active"
)

type Provider struct {
	ID        string `db:"id"`
	FullName  string `db:"full_name"`
	Specialty string `db:"specialty"`
	Active    bool   `db:"active"`
	model.Metadata
}
