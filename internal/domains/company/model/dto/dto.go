package dto

import (
	"github.com/google/uuid"

	"atria/internal/domains/company/model"
	"atria/shared"
	gDto "atria/shared/dto"
	gModel "atria/shared/model"
	"atria/shared/timezone"
)

func stamp(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Industry string `json:"industry" validate:"omitempty,max=255"`
	Website  string `json:"website" validate:"omitempty,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Address  string `json:"address" validate:"omitempty,max=2000"`
	Notes    string `json:"notes" validate:"omitempty,max=2000"`
}

func (c *CreateCompanyRequest) ToModel(user string) model.Company {
	return model.Company{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Industry: c.Industry,
		Website:  c.Website,
		Phone:    c.Phone,
		Address:  c.Address,
		Notes:    c.Notes,
		Metadata: stamp(user),
	}
}

type UpdateCompanyRequest struct {
	Name     string `db:"name" json:"name" validate:"omitempty,max=255"`
	Industry string `db:"industry" json:"industry" validate:"omitempty,max=255"`
	Website  string `db:"website" json:"website" validate:"omitempty,max=255"`
	Phone    string `db:"phone" json:"phone" validate:"omitempty,max=32"`
	Address  string `db:"address" json:"address" validate:"omitempty,max=2000"`
	Notes    string `db:"notes" json:"notes" validate:"omitempty,max=2000"`
}

type CompanyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
	gDto.Metadata
}

func (r *CompanyResponse) FromModel(model model.Company) {
	r.ID = model.ID
	r.Name = model.Name
	r.Industry = model.Industry
	r.Website = model.Website
	r.Phone = model.Phone
	r.Address = model.Address
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCompaniesResponse) FromModels(models []model.Company, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Companies = make([]CompanyResponse, len(models))
	for i, mod := range models {
		r.Companies[i].FromModel(mod)
	}
}

type CreateContactRequest struct {
	FullName string `json:"full_name" validate:"required,max=255"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Position string `json:"position" validate:"omitempty,max=255"`
}

func (c *CreateContactRequest) ToModel(companyID, user string) model.Contact {
	return model.Contact{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Position:  c.Position,
		Metadata:  stamp(user),
	}
}

type UpdateContactRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=255"`
	Email    string `db:"email" json:"email" validate:"omitempty,email,max=255"`
	Phone    string `db:"phone" json:"phone" validate:"omitempty,max=32"`
	Position string `db:"position" json:"position" validate:"omitempty,max=255"`
}

type ContactResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Position  string `json:"position"`
	IsPrimary bool   `json:"is_primary"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.CompanyID = model.CompanyID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Position = model.Position
	r.IsPrimary = model.IsPrimary
	r.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
