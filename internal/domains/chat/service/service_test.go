package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atria/config"
	"atria/infras/otel/mocks"
	chatMocks "atria/internal/domains/chat/mocks"
	"atria/internal/domains/chat/model"
	"atria/internal/domains/chat/model/dto"
	"atria/internal/domains/chat/service"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/failure"
)

type chatMockSet struct {
	messages      *chatMocks.MockMessage
	notifications *chatMocks.MockNotification
}

func newChatService(ctrl *gomock.Controller) (service.Chat, chatMockSet) {
	set := chatMockSet{
		messages:      chatMocks.NewMockMessage(ctrl),
		notifications: chatMocks.NewMockNotification(ctrl),
	}

	svc := service.New(set.messages, set.notifications, &config.Config{}, mocks.NewOtel())

	return svc, set
}

func userContext(user string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, user)
}

func TestChatService_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newChatService(ctrl)

	sender := "a6c1f9a0-0000-4000-8000-000000000001"

	set.messages.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, message model.Message) error {
			assert.NotEmpty(t, message.ID)
			assert.Equal(t, sender, message.SenderID)
			assert.Equal(t, "See you at 10", message.Body)

			return nil
		})

	err := svc.SendMessage(userContext(sender), dto.SendMessageRequest{
		ConversationID: "b6c1f9a0-0000-4000-8000-000000000002",
		Body:           "See you at 10",
	})

	assert.NoError(t, err)
}

func TestChatService_DeleteMessage_OnlyOwnMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newChatService(ctrl)

	sender := "a6c1f9a0-0000-4000-8000-000000000001"

	// The existence check carries the sender filter, so someone else's
	// message simply does not exist from the caller's point of view.
	set.messages.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			assert.Len(t, filter.Filters, 2)

			return false, nil
		})

	err := svc.DeleteMessage(userContext(sender), "c6c1f9a0-0000-4000-8000-000000000003")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestChatService_DeleteMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newChatService(ctrl)

	set.messages.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	set.messages.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.DeleteMessage(userContext("a6c1f9a0-0000-4000-8000-000000000001"), "c6c1f9a0-0000-4000-8000-000000000003")

	assert.NoError(t, err)
}

func TestChatService_GetNotifications_UnreadOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newChatService(ctrl)

	user := "a6c1f9a0-0000-4000-8000-000000000001"

	set.notifications.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			assert.Len(t, filter.Filters, 2)

			return 1, nil
		})

	set.notifications.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Notification{
			{ID: "d6c1f9a0-0000-4000-8000-000000000004", UserID: user, Title: "Appointment scheduled"},
		}, nil)

	res, err := svc.GetNotifications(userContext(user), gDto.QueryParams{Limit: 10}, true)

	assert.NoError(t, err)
	assert.Len(t, res.Notifications, 1)
	assert.Equal(t, "Appointment scheduled", res.Notifications[0].Title)
}

func TestChatService_MarkNotificationRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newChatService(ctrl)

	user := "a6c1f9a0-0000-4000-8000-000000000001"

	set.notifications.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	set.notifications.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, true, fields[model.FieldRead])
			assert.NotNil(t, fields[model.FieldReadAt])

			return nil
		})

	err := svc.MarkNotificationRead(userContext(user), "d6c1f9a0-0000-4000-8000-000000000004")

	assert.NoError(t, err)
}

func TestChatService_MarkNotificationRead_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newChatService(ctrl)

	set.notifications.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.MarkNotificationRead(userContext("a6c1f9a0-0000-4000-8000-000000000001"), "d6c1f9a0-0000-4000-8000-00000000dead")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestChatService_MarkAllNotificationsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newChatService(ctrl)

	set.notifications.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.MarkAllNotificationsRead(userContext("a6c1f9a0-0000-4000-8000-000000000001"))

	assert.NoError(t, err)
}
