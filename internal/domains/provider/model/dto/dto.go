package dto

import (
	"github.com/google/uuid"

	"atria/internal/domains/provider/model"
	"atria/shared"
	gDto "atria/shared/dto"
	gModel "atria/shared/model"
	"atria/shared/timezone"
)

type CreateProviderRequest struct {
	FullName  string `json:"full_name" validate:"required,max=255"`
	Specialty string `json:"specialty" validate:"omitempty,max=255"`
}

func (c *CreateProviderRequest) ToModel(user string) model.Provider {
	return model.Provider{
		ID:        uuid.NewString(),
		FullName:  c.FullName,
		Specialty: c.Specialty,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProviderRequest struct {
	FullName  string `db:"full_name" json:"full_name" validate:"omitempty,max=255"`
	Specialty string `db:"specialty" json:"specialty" validate:"omitempty,max=255"`
	Active    *bool  `db:"active" json:"active" validate:"omitempty"`
}

type ProviderResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *ProviderResponse) FromModel(model model.Provider) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Specialty = model.Specialty
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetProvidersResponse) FromModels(models []model.Provider, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Providers = make([]ProviderResponse, len(models))
	for i, mod := range models {
		r.Providers[i].FromModel(mod)
	}
}
