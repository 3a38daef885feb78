package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atria/infras/otel"
	"atria/infras/postgres"
	"atria/internal/domains/chat/model"
	gDto "atria/shared/dto"
	gRepo "atria/shared/repository"
)

type Message interface {
	Insert(ctx context.Context, model model.Message) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Message, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Message, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Notification interface {
	Insert(ctx context.Context, model model.Notification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Notification, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Notification, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type messageImpl struct {
	gRepo.Repository[model.Message]
	db   *postgres.Connection
	otel otel.Otel
}

func NewMessage(db *postgres.Connection, otel otel.Otel) Message {
	return &messageImpl{
		Repository: gRepo.NewRepository[model.Message](model.MessageEntityName, model.MessageTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type notificationImpl struct {
	gRepo.Repository[model.Notification]
	db   *postgres.Connection
	otel otel.Otel
}

func NewNotification(db *postgres.Connection, otel otel.Otel) Notification {
	return &notificationImpl{
		Repository: gRepo.NewRepository[model.Notification](model.NotificationEntityName, model.NotificationTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
