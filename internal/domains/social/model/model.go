package model

import (
	"time"

	"github.com/lib/pq"

	"atria/shared/model"
)

const (
	ProjectTableName  = "social_projects"
	ProjectEntityName = "social_project"

	PostTableName  = "social_posts"
	PostEntityName = "social_post"
)

const (
	FieldID              = "id"
	FieldProjectID       = "project_id"
	FieldSocialProjectID = "social_project_id"
	FieldScheduledAt     = "scheduled_at"
	FieldWorkflowStatus  = "workflow_status"
	FieldShootStatus     = "shoot_status"
	FieldMediaURL        = "media_url"
)

// Workflow statuses describe a post's production stage. The progression below
// is the usual order, but it is not enforced: any value can be set directly.
const (
	WorkflowStatusNew               = "new"
	WorkflowStatusCreativesApproval = "creatives_approval"
	WorkflowStatusCaptions          = "captions"
	WorkflowStatusClientApproval    = "client_approval"
	WorkflowStatusApproved          = "approved"
	WorkflowStatusPosted            = "posted"
)

const (
	ShootStatusPending   = "pending"
	ShootStatusScheduled = "scheduled"
	ShootStatusShot      = "shot"
	ShootStatusEdited    = "edited"
)

type SocialProject struct {
	ID          string `db:"id"`
	ProjectID   string `db:"project_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	model.Metadata
}

type SocialPost struct {
	ID              string         `db:"id"`
	SocialProjectID string         `db:"social_project_id"`
	Title           string         `db:"title"`
	Caption         string         `db:"caption"`
	ScheduledAt     time.Time      `db:"scheduled_at"`
	WorkflowStatus  string         `db:"workflow_status"`
	ShootStatus     string         `db:"shoot_status"`
	Platforms       pq.StringArray `db:"platforms"`
	MediaURL        string         `db:"media_url"`
	model.Metadata
}
