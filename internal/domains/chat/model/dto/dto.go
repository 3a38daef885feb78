package dto

import (
	"time"

	"github.com/google/uuid"

	"atria/internal/domains/chat/model"
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

type SendMessageRequest struct {
	ConversationID string `json:"conversation_id" validate:"required,uuid4"`
	Body           string `json:"body" validate:"required,max=5000"`
}

func (c *SendMessageRequest) ToModel(user string) model.Message {
	return model.Message{
		ID:             uuid.NewString(),
		ConversationID: c.ConversationID,
		SenderID:       user,
		Body:           c.Body,
		Metadata:       stamp(user),
	}
}

type MessageResponse struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	Body           string `json:"body"`
	gDto.Metadata
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.ConversationID = model.ConversationID
	r.SenderID = model.SenderID
	r.Body = model.Body
	r.Metadata.FromModel(model.Metadata)
}

type GetMessagesResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMessagesResponse) FromModels(models []model.Message, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}

type CreateNotificationRequest struct {
	UserID string `json:"user_id" validate:"required,max=255"`
	Title  string `json:"title" validate:"required,max=255"`
	Body   string `json:"body" validate:"omitempty,max=2000"`
	Kind   string `json:"kind" validate:"omitempty,max=64"`
}

func (c *CreateNotificationRequest) ToModel(user string) model.Notification {
	return model.Notification{
		ID:       uuid.NewString(),
		UserID:   c.UserID,
		Title:    c.Title,
		Body:     c.Body,
		Kind:     c.Kind,
		Metadata: stamp(user),
	}
}

type NotificationResponse struct {
	ID     string     `json:"id"`
	UserID string     `json:"user_id"`
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	Kind   string     `json:"kind"`
	Read   bool       `json:"read"`
	ReadAt *time.Time `json:"read_at"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Title = model.Title
	r.Body = model.Body
	r.Kind = model.Kind
	r.Read = model.Read
	r.ReadAt = model.ReadAt
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
