package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"atria/config"
	"atria/infras/otel"
	"atria/internal/domains/chat/model"
	"atria/internal/domains/chat/model/dto"
	"atria/internal/domains/chat/repository"
	"atria/shared"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/failure"
	"atria/shared/timezone"
)

type Chat interface {
	SendMessage(ctx context.Context, req dto.SendMessageRequest) error
	GetMessages(ctx context.Context, req gDto.QueryParams, conversationID string) (dto.GetMessagesResponse, error)
	DeleteMessage(ctx context.Context, id string) error

	CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) error
	GetNotifications(ctx context.Context, req gDto.QueryParams, unreadOnly bool) (dto.GetNotificationsResponse, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
}

type serviceImpl struct {
	messages      repository.Message
	notifications repository.Notification
	cfg           *config.Config
	otel          otel.Otel
}

func New(messages repository.Message, notifications repository.Notification, cfg *config.Config, ot otel.Otel) Chat {
	return &serviceImpl{
		messages:      messages,
		notifications: notifications,
		cfg:           cfg,
		otel:          ot,
	}
}

func (s *serviceImpl) SendMessage(ctx context.Context, req dto.SendMessageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendMessage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.messages.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to send message")

		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetMessages(ctx context.Context, req gDto.QueryParams, conversationID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMessages")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(conversationID, model.FieldConversationID, model.MessageTableName)

	total, err := s.messages.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count messages")

		return res, fmt.Errorf("failed to count messages: %w", err)
	}

	models, err := s.messages.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) DeleteMessage(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteMessage")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// Senders can only delete their own messages.
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.MessageTableName,
			},
			gDto.Filter{
				Field:    model.FieldSenderID,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.MessageTableName,
			},
		},
	}

	exist, err := s.messages.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if message exists")

		return fmt.Errorf("failed to check if message exists: %w", err)
	}

	if !exist {
		return failure.NotFound("message not found") // nolint:wrapcheck
	}

	if err := s.messages.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete message")

		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.notifications.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create notification")

		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetNotifications(ctx context.Context, req gDto.QueryParams, unreadOnly bool) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNotifications")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filters := []any{
		gDto.Filter{
			Field:    model.FieldUserID,
			Value:    user,
			Operator: gDto.FilterOperatorEq,
			Table:    model.NotificationTableName,
		},
	}

	if unreadOnly {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRead,
			Value:    false,
			Operator: gDto.FilterOperatorEq,
			Table:    model.NotificationTableName,
		})
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	total, err := s.notifications.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.notifications.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) MarkNotificationRead(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNotificationRead")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.NotificationTableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.NotificationTableName,
			},
		},
	}

	exist, err := s.notifications.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	if err := s.notifications.Update(ctx, s.readFields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkAllNotificationsRead(ctx context.Context) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllNotificationsRead")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.NotificationTableName,
			},
			gDto.Filter{
				Field:    model.FieldRead,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.NotificationTableName,
			},
		},
	}

	if err := s.notifications.Update(ctx, s.readFields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to mark all notifications read")

		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	return nil
}

func (s *serviceImpl) readFields(user string) map[string]any {
	now := timezone.Now()

	return map[string]any{
		model.FieldRead:          true,
		model.FieldReadAt:        now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}
}
