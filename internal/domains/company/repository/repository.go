package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"atria/infras/otel"
	"atria/infras/postgres"
	"atria/internal/domains/company/model"
	gDto "atria/shared/dto"
	gRepo "atria/shared/repository"
)

type Company interface {
	Insert(ctx context.Context, model model.Company) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Company, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Company, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Contact interface {
	Insert(ctx context.Context, model model.Contact) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Contact, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Contact, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type companyImpl struct {
	gRepo.Repository[model.Company]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCompany(db *postgres.Connection, otel otel.Otel) Company {
	return &companyImpl{
		Repository: gRepo.NewRepository[model.Company](model.CompanyEntityName, model.CompanyTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type contactImpl struct {
	gRepo.Repository[model.Contact]
	db   *postgres.Connection
	otel otel.Otel
}

func NewContact(db *postgres.Connection, otel otel.Otel) Contact {
	return &contactImpl{
		Repository: gRepo.NewRepository[model.Contact](model.ContactEntityName, model.ContactTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
