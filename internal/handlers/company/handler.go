package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atria/infras/otel"
	"atria/internal/domains/company/model"
	"atria/internal/domains/company/model/dto"
	"atria/internal/domains/company/service"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/validator"
	"atria/transport/http/response"
)

const requestParamContactID = "contactID"

type Handler struct {
	service service.Company
	otel    otel.Otel
}

func New(service service.Company, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/companies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCompany)
		routerGroup.Get("/", handler.GetCompanies)
		routerGroup.Get("/{id}", handler.GetCompanyByID)
		routerGroup.Patch("/{id}", handler.UpdateCompany)
		routerGroup.Delete("/{id}", handler.DeleteCompany)

		routerGroup.Post("/{id}/contacts", handler.CreateContact)
		routerGroup.Get("/{id}/contacts", handler.GetContacts)
		routerGroup.Patch("/{id}/contacts/{contactID}", handler.UpdateContact)
		routerGroup.Delete("/{id}/contacts/{contactID}", handler.DeleteContact)
		routerGroup.Post("/{id}/contacts/{contactID}/primary", handler.SetPrimaryContact)
	})
}

// CreateCompany handles the creation of a new company.
// @Summary Create a new company
// @Description Create a new company with the provided details.
// @Tags Company
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Create Company Request"
// @Success 201 {object} response.Message "Company created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies [post]
// @Security BearerAuth
func (handler *Handler) CreateCompany(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCompany")
	defer scope.End()

	req := dto.CreateCompanyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create company")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Company created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Company created successfully")
}

// GetCompanies retrieves companies with optional filtering and pagination.
// @Summary Get all companies
// @Description Retrieve companies with optional name filtering.
// @Tags Company
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetCompaniesResponse "List of companies"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies [get]
// @Security BearerAuth
func (handler *Handler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.CompanyTableName,
			},
		},
	}

	companies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get companies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Companies retrieved successfully")

	response.WithJSON(w, http.StatusOK, companies)
}

// GetCompanyByID retrieves a company by its ID.
// @Summary Get a company by ID
// @Description Retrieve a company by its unique identifier.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse "Company details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	company, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company retrieved successfully")

	response.WithJSON(w, http.StatusOK, company)
}

// UpdateCompany updates an existing company by its ID.
// @Summary Update a company by ID
// @Description Update the details of an existing company.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Update Company Request"
// @Success 200 {object} response.Message "Company updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCompany")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCompanyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update company")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Company updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Company updated successfully")
}

// DeleteCompany deletes a company by its ID.
// @Summary Delete a company by ID
// @Description Delete a company. Fails when contacts still belong to it.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} response.Message "Company deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCompany")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete company")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Company deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Company deleted successfully")
}

// CreateContact adds a contact person to a company.
// @Summary Add a contact to a company
// @Description Add a new contact person to an existing company.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} response.Message "Contact created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id}/contacts [post]
// @Security BearerAuth
func (handler *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	companyID := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreateContactRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateContact(ctx, req, companyID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Contact created successfully")
}

// GetContacts retrieves a company's contacts.
// @Summary Get a company's contacts
// @Description Retrieve the contact persons of a company.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} dto.GetContactsResponse "List of contacts"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id}/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	companyID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	contacts, err := handler.service.GetContacts(ctx, queryParams, companyID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contacts retrieved successfully")

	response.WithJSON(w, http.StatusOK, contacts)
}

// UpdateContact updates a company's contact.
// @Summary Update a company's contact
// @Description Update the details of an existing company contact.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param contactID path string true "Contact ID"
// @Param request body dto.UpdateContactRequest true "Update Contact Request"
// @Success 200 {object} response.Message "Contact updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id}/contacts/{contactID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContact")
	defer scope.End()

	companyID := chi.URLParam(r, constant.RequestParamID)
	contactID := chi.URLParam(r, requestParamContactID)

	req := dto.UpdateContactRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateContact(ctx, req, companyID, contactID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Contact updated successfully")
}

// DeleteContact deletes a company's contact.
// @Summary Delete a company's contact
// @Description Remove a contact person from a company.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param contactID path string true "Contact ID"
// @Success 200 {object} response.Message "Contact deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id}/contacts/{contactID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	companyID := chi.URLParam(r, constant.RequestParamID)
	contactID := chi.URLParam(r, requestParamContactID)

	if err := handler.service.DeleteContact(ctx, companyID, contactID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contact deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Contact deleted successfully")
}

// SetPrimaryContact marks a contact as the company's primary contact.
// @Summary Set a company's primary contact
// @Description Mark a contact as the primary one, demoting any previous primary.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param contactID path string true "Contact ID"
// @Success 200 {object} response.Message "Primary contact set successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id}/contacts/{contactID}/primary [post]
// @Security BearerAuth
func (handler *Handler) SetPrimaryContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPrimaryContact")
	defer scope.End()

	companyID := chi.URLParam(r, constant.RequestParamID)
	contactID := chi.URLParam(r, requestParamContactID)

	if err := handler.service.SetPrimaryContact(ctx, companyID, contactID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set primary contact")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Primary contact set successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Primary contact set successfully")
}
