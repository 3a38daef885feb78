package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atria/infras/otel"
	"atria/internal/domains/chat/model"
	"atria/internal/domains/chat/model/dto"
	"atria/internal/domains/chat/service"
	"atria/shared"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/validator"
	"atria/transport/http/response"
)

const requestParamUnread = "unread"

type Handler struct {
	service service.Chat
	otel    otel.Otel
}

func New(service service.Chat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/messages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SendMessage)
		routerGroup.Get("/", handler.GetMessages)
		routerGroup.Delete("/{id}", handler.DeleteMessage)
	})

	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateNotification)
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Patch("/{id}/read", handler.MarkNotificationRead)
		routerGroup.Patch("/read-all", handler.MarkAllNotificationsRead)
	})
}

// SendMessage posts a message into a conversation.
// @Summary Send a message
// @Description Post a message into a conversation as the authenticated user.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Send Message Request"
// @Success 201 {object} response.Message "Message sent successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	req := dto.SendMessageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.SendMessage(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send message")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Message sent successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Message sent successfully")
}

// GetMessages retrieves the messages of a conversation.
// @Summary Get conversation messages
// @Description Retrieve the paginated messages of a conversation.
// @Tags Chat
// @Accept json
// @Produce json
// @Param conversation_id query string true "Conversation ID"
// @Success 200 {object} dto.GetMessagesResponse "List of messages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages [get]
// @Security BearerAuth
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	conversationID := r.URL.Query().Get(model.FieldConversationID)

	messages, err := handler.service.GetMessages(ctx, queryParams, conversationID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, messages)
}

// DeleteMessage deletes a message sent by the authenticated user.
// @Summary Delete a message
// @Description Delete one of the authenticated user's own messages.
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Message "Message deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteMessage(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete message")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Message deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Message deleted successfully")
}

// CreateNotification creates an in-app notification for a user.
// @Summary Create a notification
// @Description Create an in-app notification addressed to a user.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Create Notification Request"
// @Success 201 {object} response.Message "Notification created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [post]
// @Security BearerAuth
func (handler *Handler) CreateNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNotification")
	defer scope.End()

	req := dto.CreateNotificationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateNotification(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create notification")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notification created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Notification created successfully")
}

// GetNotifications retrieves the authenticated user's notifications.
// @Summary Get notifications
// @Description Retrieve the authenticated user's notifications, optionally unread only.
// @Tags Chat
// @Accept json
// @Produce json
// @Param unread query boolean false "Only unread notifications"
// @Success 200 {object} dto.GetNotificationsResponse "List of notifications"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	unreadOnly := false
	if unread := shared.ConvertStringToBool(r.URL.Query().Get(requestParamUnread)); unread != nil {
		unreadOnly = *unread
	}

	notifications, err := handler.service.GetNotifications(ctx, queryParams, unreadOnly)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// MarkNotificationRead marks one notification as read.
// @Summary Mark a notification as read
// @Description Mark one of the authenticated user's notifications as read.
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification marked as read"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id}/read [patch]
// @Security BearerAuth
func (handler *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNotificationRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkNotificationRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification read")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notification marked as read by user " + user)

	response.WithMessage(w, http.StatusOK, "Notification marked as read")
}

// MarkAllNotificationsRead marks all of the user's notifications as read.
// @Summary Mark all notifications as read
// @Description Mark all of the authenticated user's unread notifications as read.
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Notifications marked as read"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/read-all [patch]
// @Security BearerAuth
func (handler *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAllNotificationsRead")
	defer scope.End()

	if err := handler.service.MarkAllNotificationsRead(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark all notifications read")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("All notifications marked as read by user " + user)

	response.WithMessage(w, http.StatusOK, "Notifications marked as read")
}
