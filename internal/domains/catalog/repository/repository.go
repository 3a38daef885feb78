package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atria/infras/otel"
	"atria/infras/postgres"
	"atria/internal/domains/catalog/model"
	gDto "atria/shared/dto"
	gRepo "atria/shared/repository"
)

type Category interface {
	Insert(ctx context.Context, model model.ServiceCategory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceCategory, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceCategory, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Service interface {
	Insert(ctx context.Context, model model.Service) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Service, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Service, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Group interface {
	Insert(ctx context.Context, model model.ServiceGroup) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceGroup, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceGroup, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type GroupService interface {
	Insert(ctx context.Context, model model.ServiceGroupService) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceGroupService, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceGroupService, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type categoryImpl struct {
	gRepo.Repository[model.ServiceCategory]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCategory(db *postgres.Connection, otel otel.Otel) Category {
	return &categoryImpl{
		Repository: gRepo.NewRepository[model.ServiceCategory](model.CategoryEntityName, model.CategoryTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type serviceImpl struct {
	gRepo.Repository[model.Service]
	db   *postgres.Connection
	otel otel.Otel
}

func NewService(db *postgres.Connection, otel otel.Otel) Service {
	return &serviceImpl{
		Repository: gRepo.NewRepository[model.Service](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type groupImpl struct {
	gRepo.Repository[model.ServiceGroup]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGroup(db *postgres.Connection, otel otel.Otel) Group {
	return &groupImpl{
		Repository: gRepo.NewRepository[model.ServiceGroup](model.GroupEntityName, model.GroupTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type groupServiceImpl struct {
	gRepo.Repository[model.ServiceGroupService]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGroupService(db *postgres.Connection, otel otel.Otel) GroupService {
	return &groupServiceImpl{
		Repository: gRepo.NewRepository[model.ServiceGroupService](model.GroupServiceEntityName, model.GroupServiceTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
