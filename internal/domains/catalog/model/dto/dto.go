package dto

import (
	"github.com/google/uuid"

	"atria/internal/domains/catalog/model"
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

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.ServiceCategory {
	return model.ServiceCategory{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Metadata:    stamp(user),
	}
}

type UpdateCategoryRequest struct {
	Name        string `db:"name" json:"name" validate:"omitempty,max=255"`
	Description string `db:"description" json:"description" validate:"omitempty,max=2000"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.ServiceCategory) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.ServiceCategory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}

type CreateServiceRequest struct {
	CategoryID      string  `json:"category_id" validate:"required,uuid4"`
	Name            string  `json:"name" validate:"required,max=255"`
	Description     string  `json:"description" validate:"omitempty,max=2000"`
	UnitPrice       float64 `json:"unit_price" validate:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gte=0"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	return model.Service{
		ID:              uuid.NewString(),
		CategoryID:      c.CategoryID,
		Name:            c.Name,
		Description:     c.Description,
		UnitPrice:       c.UnitPrice,
		DurationMinutes: c.DurationMinutes,
		Active:          true,
		Metadata:        stamp(user),
	}
}

type UpdateServiceRequest struct {
	CategoryID      string   `db:"category_id" json:"category_id" validate:"omitempty,uuid4"`
	Name            string   `db:"name" json:"name" validate:"omitempty,max=255"`
	Description     string   `db:"description" json:"description" validate:"omitempty,max=2000"`
	UnitPrice       *float64 `db:"unit_price" json:"unit_price" validate:"omitempty,gte=0"`
	DurationMinutes *int     `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gte=0"`
	Active          *bool    `db:"active" json:"active" validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	CategoryID      string  `json:"category_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	UnitPrice       float64 `json:"unit_price"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.CategoryID = model.CategoryID
	r.Name = model.Name
	r.Description = model.Description
	r.UnitPrice = model.UnitPrice
	r.DurationMinutes = model.DurationMinutes
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}

type CreateGroupRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Description     string  `json:"description" validate:"omitempty,max=2000"`
	DiscountPercent float64 `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
}

func (c *CreateGroupRequest) ToModel(user string) model.ServiceGroup {
	return model.ServiceGroup{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		DiscountPercent: model.ClampDiscount(c.DiscountPercent),
		Metadata:        stamp(user),
	}
}

type UpdateGroupRequest struct {
	Name            string   `db:"name" json:"name" validate:"omitempty,max=255"`
	Description     string   `db:"description" json:"description" validate:"omitempty,max=2000"`
	DiscountPercent *float64 `db:"discount_percent" json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
}

type GroupResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discount_percent"`
	gDto.Metadata
}

func (r *GroupResponse) FromModel(model model.ServiceGroup) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DiscountPercent = model.DiscountPercent
	r.Metadata.FromModel(model.Metadata)
}

type GetGroupsResponse struct {
	Groups    []GroupResponse `json:"groups"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGroupsResponse) FromModels(models []model.ServiceGroup, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Groups = make([]GroupResponse, len(models))
	for i, mod := range models {
		r.Groups[i].FromModel(mod)
	}
}

type AddGroupServiceRequest struct {
	ServiceID       string   `json:"service_id" validate:"required,uuid4"`
	Quantity        *int     `json:"quantity" validate:"omitempty,gte=1"`
	DiscountPercent *float64 `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
}

func (c *AddGroupServiceRequest) ToModel(groupID, user string) model.ServiceGroupService {
	return model.ServiceGroupService{
		ID:              uuid.NewString(),
		GroupID:         groupID,
		ServiceID:       c.ServiceID,
		Quantity:        c.Quantity,
		DiscountPercent: c.DiscountPercent,
		Metadata:        stamp(user),
	}
}

type UpdateGroupServiceRequest struct {
	Quantity        *int     `db:"quantity" json:"quantity" validate:"omitempty,gte=1"`
	DiscountPercent *float64 `db:"discount_percent" json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
}

// GroupItemResponse is one priced line of a group detail.
type GroupItemResponse struct {
	ID                string  `json:"id"`
	ServiceID         string  `json:"service_id"`
	ServiceName       string  `json:"service_name"`
	UnitPrice         float64 `json:"unit_price"`
	Quantity          int     `json:"quantity"`
	EffectiveDiscount float64 `json:"effective_discount"`
	LineTotal         float64 `json:"line_total"`
}

type GroupDetailResponse struct {
	GroupResponse
	Items []GroupItemResponse `json:"items"`
	Total float64             `json:"total"`
}

func (r *GroupDetailResponse) FromModels(group model.ServiceGroup, links []model.ServiceGroupService, services map[string]model.Service) {
	r.GroupResponse.FromModel(group)

	r.Items = make([]GroupItemResponse, 0, len(links))

	for _, link := range links {
		svc, ok := services[link.ServiceID]
		if !ok {
			continue
		}

		item := GroupItemResponse{
			ID:                link.ID,
			ServiceID:         link.ServiceID,
			ServiceName:       svc.Name,
			UnitPrice:         svc.UnitPrice,
			Quantity:          model.LineQuantity(link.Quantity),
			EffectiveDiscount: model.EffectiveDiscount(link.DiscountPercent, group.DiscountPercent),
			LineTotal:         model.LineTotal(svc.UnitPrice, link.Quantity, link.DiscountPercent, group.DiscountPercent),
		}

		r.Items = append(r.Items, item)
		r.Total += item.LineTotal
	}
}
