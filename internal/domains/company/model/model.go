package model

import "atria/shared/model"

const (
	CompanyTableName  = "companies"
	CompanyEntityName = "company"

	ContactTableName  = "contacts"
	ContactEntityName = "contact"
)

const (
	FieldID        = "id"
	FieldName      = "name"
	FieldCompanyID = "company_id"
	FieldIsPrimary = "is_primary"
)

type Company struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Industry string `db:"industry"`
	Website  string `db:"website"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
	Notes    string `db:"notes"`
	model.Metadata
}

// Contact belongs to a company. At most one contact per company carries
// is_primary; SetPrimary swaps the flag transactionally.
type Contact struct {
	ID        string `db:"id"`
	CompanyID string `db:"company_id"`
	FullName  string `db:"full_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Position  string `db:"position"`
	IsPrimary bool   `db:"is_primary"`
	model.Metadata
}
