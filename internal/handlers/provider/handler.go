package provider

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atria/infras/otel"
	"atria/internal/domains/provider/model"
	"atria/internal/domains/provider/model/dto"
	"atria/internal/domains/provider/service"
	"atria/shared"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/validator"
	"atria/transport/http/response"
)

type Handler struct {
	service service.Provider
	otel    otel.Otel
}

func New(service service.Provider, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/providers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProvider)
		routerGroup.Get("/", handler.GetProviders)
		routerGroup.Get("/{id}", handler.GetProviderByID)
		routerGroup.Patch("/{id}", handler.UpdateProvider)
		routerGroup.Delete("/{id}", handler.DeleteProvider)
	})
}

// CreateProvider handles the registration of a new provider.
// @Summary Register a new provider
// @Description Register a new provider with the provided details.
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body dto.CreateProviderRequest true "Create Provider Request"
// @Success 201 {object} response.Message "Provider created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers [post]
// @Security BearerAuth
func (handler *Handler) CreateProvider(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProvider")
	defer scope.End()

	req := dto.CreateProviderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create provider")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Provider created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Provider created successfully")
}

// GetProviders retrieves providers with optional filtering and pagination.
// @Summary Get all providers
// @Description Retrieve providers with optional name, specialty and active filters.
// @Tags Provider
// @Accept json
// @Produce json
// @Param full_name query string false "Filter by name"
// @Param specialty query string false "Filter by specialty"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetProvidersResponse "List of providers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers [get]
// @Security BearerAuth
func (handler *Handler) GetProviders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFullName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldFullName),
				Table:    model.TableName,
			},
		},
	}

	if specialty := r.URL.Query().Get(model.FieldSpecialty); specialty != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSpecialty,
			Operator: gDto.FilterOperatorEq,
			Value:    specialty,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	providers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get providers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Providers retrieved successfully")

	response.WithJSON(w, http.StatusOK, providers)
}

// GetProviderByID retrieves a provider by its ID.
// @Summary Get a provider by ID
// @Description Retrieve a provider by its unique identifier.
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} dto.ProviderResponse "Provider details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProviderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	provider, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider retrieved successfully")

	response.WithJSON(w, http.StatusOK, provider)
}

// UpdateProvider updates an existing provider by its ID.
// @Summary Update a provider by ID
// @Description Update the details of an existing provider.
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Param request body dto.UpdateProviderRequest true "Update Provider Request"
// @Success 200 {object} response.Message "Provider updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProvider")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProviderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update provider")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Provider updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Provider updated successfully")
}

// DeleteProvider deletes a provider by its ID.
// @Summary Delete a provider by ID
// @Description Delete a provider using its unique identifier.
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.Message "Provider deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProvider")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete provider")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Provider deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Provider deleted successfully")
}
