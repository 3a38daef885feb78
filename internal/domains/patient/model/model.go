package model

import (
	"time"

	"atria/shared/model"
)

const (
	TableName  = "patients"
	EntityName = "patient"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

type Patient struct {
	ID          string     `db:"id"`
	FullName    string     `db:"full_name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	Notes       string     `db:"notes"`
	model.Metadata
}
