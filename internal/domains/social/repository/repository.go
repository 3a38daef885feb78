package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"atria/infras/otel"
	"atria/infras/postgres"
	"atria/internal/domains/social/model"
	gDto "atria/shared/dto"
	gRepo "atria/shared/repository"
)

type SocialProject interface {
	Insert(ctx context.Context, model model.SocialProject) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SocialProject, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SocialProject, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type SocialPost interface {
	Insert(ctx context.Context, model model.SocialPost) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SocialPost, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SocialPost, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type socialProjectImpl struct {
	gRepo.Repository[model.SocialProject]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSocialProject(db *postgres.Connection, otel otel.Otel) SocialProject {
	return &socialProjectImpl{
		Repository: gRepo.NewRepository[model.SocialProject](model.ProjectEntityName, model.ProjectTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type socialPostImpl struct {
	gRepo.Repository[model.SocialPost]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSocialPost(db *postgres.Connection, otel otel.Otel) SocialPost {
	return &socialPostImpl{
		Repository: gRepo.NewRepository[model.SocialPost](model.PostEntityName, model.PostTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
