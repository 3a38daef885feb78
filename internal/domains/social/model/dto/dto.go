package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"atria/internal/domains/social/model"
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

type CreateSocialProjectRequest struct {
	ProjectID   string `json:"project_id" validate:"required,uuid4"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

func (c *CreateSocialProjectRequest) ToModel(user string) model.SocialProject {
	return model.SocialProject{
		ID:          uuid.NewString(),
		ProjectID:   c.ProjectID,
		Name:        c.Name,
		Description: c.Description,
		Metadata:    stamp(user),
	}
}

type UpdateSocialProjectRequest struct {
	Name        string `db:"name" json:"name" validate:"omitempty,max=255"`
	Description string `db:"description" json:"description" validate:"omitempty,max=2000"`
}

type SocialProjectResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *SocialProjectResponse) FromModel(model model.SocialProject) {
	r.ID = model.ID
	r.ProjectID = model.ProjectID
	r.Name = model.Name
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetSocialProjectsResponse struct {
	SocialProjects []SocialProjectResponse `json:"social_projects"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetSocialProjectsResponse) FromModels(models []model.SocialProject, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.SocialProjects = make([]SocialProjectResponse, len(models))
	for i, mod := range models {
		r.SocialProjects[i].FromModel(mod)
	}
}

type CreateSocialPostRequest struct {
	SocialProjectID string    `json:"social_project_id" validate:"required,uuid4"`
	Title           string    `json:"title" validate:"required,max=255"`
	Caption         string    `json:"caption" validate:"omitempty,max=5000"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	WorkflowStatus  string    `json:"workflow_status" validate:"omitempty,oneof=new creatives_approval captions client_approval approved posted"`
	ShootStatus     string    `json:"shoot_status" validate:"omitempty,oneof=pending scheduled shot edited"`
	Platforms       []string  `json:"platforms" validate:"omitempty,dive,max=64"`
}

func (c *CreateSocialPostRequest) ToModel(user string) model.SocialPost {
	workflowStatus := c.WorkflowStatus
	if workflowStatus == "" {
		workflowStatus = model.WorkflowStatusNew
	}

	shootStatus := c.ShootStatus
	if shootStatus == "" {
		shootStatus = model.ShootStatusPending
	}

	return model.SocialPost{
		ID:              uuid.NewString(),
		SocialProjectID: c.SocialProjectID,
		Title:           c.Title,
		Caption:         c.Caption,
		ScheduledAt:     timezone.ToAppTime(c.ScheduledAt),
		WorkflowStatus:  workflowStatus,
		ShootStatus:     shootStatus,
		Platforms:       pq.StringArray(c.Platforms),
		Metadata:        stamp(user),
	}
}

type UpdateSocialPostRequest struct {
	Title          string         `db:"title" json:"title" validate:"omitempty,max=255"`
	Caption        string         `db:"caption" json:"caption" validate:"omitempty,max=5000"`
	ScheduledAt    *time.Time     `db:"scheduled_at" json:"scheduled_at" validate:"omitempty"`
	WorkflowStatus string         `db:"workflow_status" json:"workflow_status" validate:"omitempty,oneof=new creatives_approval captions client_approval approved posted"`
	ShootStatus    string         `db:"shoot_status" json:"shoot_status" validate:"omitempty,oneof=pending scheduled shot edited"`
	Platforms      pq.StringArray `db:"platforms" json:"platforms" validate:"omitempty,dive,max=64"`
}

// IsEmpty reports whether no field is set; the struct holds a slice, so it
// cannot be compared against its zero value directly.
func (r *UpdateSocialPostRequest) IsEmpty() bool {
	return r.Title == "" &&
		r.Caption == "" &&
		r.ScheduledAt == nil &&
		r.WorkflowStatus == "" &&
		r.ShootStatus == "" &&
		r.Platforms == nil
}

type RescheduleSocialPostRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SocialPostResponse struct {
	ID              string    `json:"id"`
	SocialProjectID string    `json:"social_project_id"`
	Title           string    `json:"title"`
	Caption         string    `json:"caption"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	WorkflowStatus  string    `json:"workflow_status"`
	ShootStatus     string    `json:"shoot_status"`
	Platforms       []string  `json:"platforms"`
	MediaURL        string    `json:"media_url"`
	gDto.Metadata
}

func (r *SocialPostResponse) FromModel(model model.SocialPost) {
	r.ID = model.ID
	r.SocialProjectID = model.SocialProjectID
	r.Title = model.Title
	r.Caption = model.Caption
	r.ScheduledAt = model.ScheduledAt
	r.WorkflowStatus = model.WorkflowStatus
	r.ShootStatus = model.ShootStatus
	r.Platforms = model.Platforms
	r.MediaURL = model.MediaURL
	r.Metadata.FromModel(model.Metadata)
}

type GetSocialPostsResponse struct {
	Posts     []SocialPostResponse `json:"posts"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetSocialPostsResponse) FromModels(models []model.SocialPost, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Posts = make([]SocialPostResponse, len(models))
	for i, mod := range models {
		r.Posts[i].FromModel(mod)
	}
}

// MonthPostsResponse is the calendar month view for one social project.
type MonthPostsResponse struct {
	Month string               `json:"month"`
	Posts []SocialPostResponse `json:"posts"`
}

func (r *MonthPostsResponse) FromModels(month string, models []model.SocialPost) {
	r.Month = month

	r.Posts = make([]SocialPostResponse, len(models))
	for i, mod := range models {
		r.Posts[i].FromModel(mod)
	}
}
