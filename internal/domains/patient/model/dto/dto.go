package dto

import (
	"time"

	"github.com/google/uuid"

	"atria/internal/domains/patient/model"
	"atria/shared"
	gDto "atria/shared/dto"
	gModel "atria/shared/model"
	"atria/shared/timezone"
)

type CreatePatientRequest struct {
	FullName    string     `json:"full_name" validate:"required,max=255"`
	Email       string     `json:"email" validate:"omitempty,email,max=255"`
	Phone       string     `json:"phone" validate:"omitempty,max=32"`
	DateOfBirth *time.Time `json:"date_of_birth" validate:"omitempty"`
	Notes       string     `json:"notes" validate:"omitempty,max=2000"`
}

func (c *CreatePatientRequest) ToModel(user string) model.Patient {
	return model.Patient{
		ID:          uuid.NewString(),
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		DateOfBirth: c.DateOfBirth,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePatientRequest struct {
	FullName    string     `db:"full_name" json:"full_name" validate:"omitempty,max=255"`
	Email       string     `db:"email" json:"email" validate:"omitempty,email,max=255"`
	Phone       string     `db:"phone" json:"phone" validate:"omitempty,max=32"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth" validate:"omitempty"`
	Notes       string     `db:"notes" json:"notes" validate:"omitempty,max=2000"`
}

type PatientResponse struct {
	ID          string     `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Notes       string     `json:"notes"`
	gDto.Metadata
}

func (r *PatientResponse) FromModel(model model.Patient) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.DateOfBirth = model.DateOfBirth
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetPatientsResponse struct {
	Patients  []PatientResponse `json:"patients"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPatientsResponse) FromModels(models []model.Patient, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Patients = make([]PatientResponse, len(models))
	for i, mod := range models {
		r.Patients[i].FromModel(mod)
	}
}
