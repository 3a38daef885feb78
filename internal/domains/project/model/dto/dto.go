package dto

import (
	"github.com/google/uuid"

	"atria/internal/domains/project/model"
	"atria/shared"
	gDto "atria/shared/dto"
	gModel "atria/shared/model"
	"atria/shared/timezone"
)

type CreateProjectRequest struct {
	CompanyID        string  `json:"company_id" validate:"required,uuid4"`
	PrimaryContactID *string `json:"primary_contact_id" validate:"omitempty,uuid4"`
	Name             string  `json:"name" validate:"required,max=255"`
	Description      string  `json:"description" validate:"omitempty,max=2000"`
}

func (c *CreateProjectRequest) ToModel(user string) model.Project {
	return model.Project{
		ID:               uuid.NewString(),
		CompanyID:        c.CompanyID,
		PrimaryContactID: c.PrimaryContactID,
		Name:             c.Name,
		Description:      c.Description,
		Status:           model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProjectRequest struct {
	PrimaryContactID *string `db:"primary_contact_id" json:"primary_contact_id" validate:"omitempty,uuid4"`
	Name             string  `db:"name" json:"name" validate:"omitempty,max=255"`
	Description      string  `db:"description" json:"description" validate:"omitempty,max=2000"`
	Status           string  `db:"status" json:"status" validate:"omitempty,oneof=active on_hold completed archived"`
}

type ProjectResponse struct {
	ID               string  `json:"id"`
	CompanyID        string  `json:"company_id"`
	PrimaryContactID *string `json:"primary_contact_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Status           string  `json:"status"`
	gDto.Metadata
}

func (r *ProjectResponse) FromModel(model model.Project) {
	r.ID = model.ID
	r.CompanyID = model.CompanyID
	r.PrimaryContactID = model.PrimaryContactID
	r.Name = model.Name
	r.Description = model.Description
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProjectsResponse) FromModels(models []model.Project, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Projects = make([]ProjectResponse, len(models))
	for i, mod := range models {
		r.Projects[i].FromModel(mod)
	}
}
