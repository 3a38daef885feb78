package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"atria/config"
	"atria/infras/otel"
	companyModel "atria/internal/domains/company/model"
	companyRepo "atria/internal/domains/company/repository"
	"atria/internal/domains/project/model"
	"atria/internal/domains/project/model/dto"
	"atria/internal/domains/project/repository"
	"atria/shared"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/failure"
)

type Project interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProjectsResponse, error)
	Get(ctx context.Context, id string) (dto.ProjectResponse, error)
	Update(ctx context.Context, req dto.UpdateProjectRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Project
	companies companyRepo.Company
	contacts  companyRepo.Contact
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Project, companies companyRepo.Company, contacts companyRepo.Contact, cfg *config.Config, ot otel.Otel) Project {
	return &serviceImpl{
		repo:      repo,
		companies: companies,
		contacts:  contacts,
		cfg:       cfg,
		otel:      ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProjectRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	companyExist, err := s.companies.Exist(ctx, shared.FilterByID(req.CompanyID, companyModel.FieldID, companyModel.CompanyTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if company exists")

		return fmt.Errorf("failed to check if company exists: %w", err)
	}

	if !companyExist {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	if req.PrimaryContactID != nil {
		if err = s.checkContact(ctx, req.CompanyID, *req.PrimaryContactID); err != nil {
			return err
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create project")

		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (s *serviceImpl) checkContact(ctx context.Context, companyID, contactID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    companyModel.FieldID,
				Value:    contactID,
				Operator: gDto.FilterOperatorEq,
				Table:    companyModel.ContactTableName,
			},
			gDto.Filter{
				Field:    companyModel.FieldCompanyID,
				Value:    companyID,
				Operator: gDto.FilterOperatorEq,
				Table:    companyModel.ContactTableName,
			},
		},
	}

	exist, err := s.contacts.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact exists")

		return fmt.Errorf("failed to check if contact exists: %w", err)
	}

	if !exist {
		return failure.NotFound("contact not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProjectsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count projects")

		return res, fmt.Errorf("failed to count projects: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get projects")

		return res, fmt.Errorf("failed to get projects: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	project, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return res, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == "" {
		return res, failure.NotFound("project not found") // nolint:wrapcheck
	}

	res.FromModel(project)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProjectRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateProjectRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	project, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == "" {
		return failure.NotFound("project not found") // nolint:wrapcheck
	}

	if req.PrimaryContactID != nil {
		if err = s.checkContact(ctx, project.CompanyID, *req.PrimaryContactID); err != nil {
			return err
		}
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update project")

		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if project exists")

		return fmt.Errorf("failed to check if project exists: %w", err)
	}

	if !exist {
		return failure.NotFound("project not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete project")

		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
