package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atria/infras/otel"
	"atria/infras/postgres"
	"atria/internal/domains/patient/model"
	gDto "atria/shared/dto"
	gRepo "atria/shared/repository"
)

type Patient interface {
	Insert(ctx context.Context, model model.Patient) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Patient, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Patient, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Patient]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Patient {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Patient](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
