package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"atria/config"
	"atria/infras/otel"
	"atria/infras/postgres"
	"atria/internal/domains/company/model"
	"atria/internal/domains/company/model/dto"
	"atria/internal/domains/company/repository"
	"atria/shared"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/failure"
	"atria/shared/timezone"
)

type Company interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCompaniesResponse, error)
	Get(ctx context.Context, id string) (dto.CompanyResponse, error)
	Update(ctx context.Context, req dto.UpdateCompanyRequest, id string) error
	Delete(ctx context.Context, id string) error

	CreateContact(ctx context.Context, req dto.CreateContactRequest, companyID string) error
	GetContacts(ctx context.Context, req gDto.QueryParams, companyID string) (dto.GetContactsResponse, error)
	UpdateContact(ctx context.Context, req dto.UpdateContactRequest, companyID, contactID string) error
	DeleteContact(ctx context.Context, companyID, contactID string) error
	SetPrimaryContact(ctx context.Context, companyID, contactID string) error
}

type serviceImpl struct {
	companies repository.Company
	contacts  repository.Contact
	db        *postgres.Connection
	cfg       *config.Config
	otel      otel.Otel
}

func New(companies repository.Company, contacts repository.Contact, db *postgres.Connection, cfg *config.Config, ot otel.Otel) Company {
	return &serviceImpl{
		companies: companies,
		contacts:  contacts,
		db:        db,
		cfg:       cfg,
		otel:      ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCompanyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.companies.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create company")

		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCompaniesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.companies.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count companies")

		return res, fmt.Errorf("failed to count companies: %w", err)
	}

	models, err := s.companies.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get companies")

		return res, fmt.Errorf("failed to get companies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	company, err := s.companies.Get(ctx, shared.FilterByID(id, model.FieldID, model.CompanyTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get company")

		return res, fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == "" {
		return res, failure.NotFound("company not found") // nolint:wrapcheck
	}

	res.FromModel(company)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCompanyRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateCompanyRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.CompanyTableName)

	exist, err := s.companies.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if company exists")

		return fmt.Errorf("failed to check if company exists: %w", err)
	}

	if !exist {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	if err := s.companies.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update company")

		return fmt.Errorf("failed to update company: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.CompanyTableName)

	exist, err := s.companies.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if company exists")

		return fmt.Errorf("failed to check if company exists: %w", err)
	}

	if !exist {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	hasContacts, err := s.contacts.Exist(ctx, shared.FilterByID(id, model.FieldCompanyID, model.ContactTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check company contacts")

		return fmt.Errorf("failed to check company contacts: %w", err)
	}

	if hasContacts {
		return failure.Conflict("company still has contacts") // nolint:wrapcheck
	}

	if err := s.companies.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete company")

		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreateContact(ctx context.Context, req dto.CreateContactRequest, companyID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateContact")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.companies.Exist(ctx, shared.FilterByID(companyID, model.FieldID, model.CompanyTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if company exists")

		return fmt.Errorf("failed to check if company exists: %w", err)
	}

	if !exist {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	if err = s.contacts.Insert(ctx, req.ToModel(companyID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetContacts(ctx context.Context, req gDto.QueryParams, companyID string) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetContacts")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(companyID, model.FieldCompanyID, model.ContactTableName)

	total, err := s.contacts.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contacts")

		return res, fmt.Errorf("failed to count contacts: %w", err)
	}

	models, err := s.contacts.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, fmt.Errorf("failed to get contacts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateContact(ctx context.Context, req dto.UpdateContactRequest, companyID, contactID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateContact")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateContactRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := s.contactFilter(companyID, contactID)

	exist, err := s.contacts.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact exists")

		return fmt.Errorf("failed to check if contact exists: %w", err)
	}

	if !exist {
		return failure.NotFound("contact not found") // nolint:wrapcheck
	}

	if err := s.contacts.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update contact")

		return fmt.Errorf("failed to update contact: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteContact(ctx context.Context, companyID, contactID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteContact")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := s.contactFilter(companyID, contactID)

	exist, err := s.contacts.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact exists")

		return fmt.Errorf("failed to check if contact exists: %w", err)
	}

	if !exist {
		return failure.NotFound("contact not found") // nolint:wrapcheck
	}

	if err := s.contacts.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete contact")

		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}

// SetPrimaryContact makes the given contact the company's single primary one.
// The demotion of the current primary and the promotion run in one transaction
// so the at-most-one convention holds even without a database constraint.
func (s *serviceImpl) SetPrimaryContact(ctx context.Context, companyID, contactID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPrimaryContact")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.contacts.Exist(ctx, s.contactFilter(companyID, contactID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact exists")

		return fmt.Errorf("failed to check if contact exists: %w", err)
	}

	if !exist {
		return failure.NotFound("contact not found") // nolint:wrapcheck
	}

	tx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	demote := map[string]any{
		model.FieldIsPrimary:     false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.contacts.UpdateTx(ctx, tx, demote, shared.FilterByID(companyID, model.FieldCompanyID, model.ContactTableName)); err != nil {
		log.Error().Err(err).Msg("failed to demote current primary contact")

		return fmt.Errorf("failed to demote current primary contact: %w", err)
	}

	promote := map[string]any{
		model.FieldIsPrimary:     true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.contacts.UpdateTx(ctx, tx, promote, s.contactFilter(companyID, contactID)); err != nil {
		log.Error().Err(err).Msg("failed to promote primary contact")

		return fmt.Errorf("failed to promote primary contact: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *serviceImpl) contactFilter(companyID, contactID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    contactID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ContactTableName,
			},
			gDto.Filter{
				Field:    model.FieldCompanyID,
				Value:    companyID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ContactTableName,
			},
		},
	}
}
