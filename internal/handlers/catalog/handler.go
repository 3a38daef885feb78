package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atria/infras/otel"
	"atria/internal/domains/catalog/model"
	"atria/internal/domains/catalog/model/dto"
	"atria/internal/domains/catalog/service"
	"atria/shared"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/validator"
	"atria/transport/http/response"
)

const requestParamLinkID = "linkID"

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Route("/categories", func(r chi.Router) {
			r.Post("/", handler.CreateCategory)
			r.Get("/", handler.GetCategories)
			r.Get("/{id}", handler.GetCategoryByID)
			r.Patch("/{id}", handler.UpdateCategory)
			r.Delete("/{id}", handler.DeleteCategory)
		})

		routerGroup.Route("/services", func(r chi.Router) {
			r.Post("/", handler.CreateService)
			r.Get("/", handler.GetServices)
			r.Get("/{id}", handler.GetServiceByID)
			r.Patch("/{id}", handler.UpdateService)
			r.Delete("/{id}", handler.DeleteService)
		})

		routerGroup.Route("/groups", func(r chi.Router) {
			r.Post("/", handler.CreateGroup)
			r.Get("/", handler.GetGroups)
			r.Get("/{id}", handler.GetGroupByID)
			r.Patch("/{id}", handler.UpdateGroup)
			r.Delete("/{id}", handler.DeleteGroup)
			r.Post("/{id}/services", handler.AddGroupService)
			r.Patch("/{id}/services/{linkID}", handler.UpdateGroupService)
			r.Delete("/{id}/services/{linkID}", handler.RemoveGroupService)
		})
	})
}

// CreateCategory handles the creation of a new service category.
// @Summary Create a new service category
// @Description Create a new service category with the provided details.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} response.Message "Category created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CreateCategoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateCategory(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Category created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Category created successfully")
}

// GetCategories retrieves service categories.
// @Summary Get all service categories
// @Description Retrieve service categories with optional name filtering.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetCategoriesResponse "List of categories"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
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
				Table:    model.CategoryTableName,
			},
		},
	}

	categories, err := handler.service.GetCategories(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Categories retrieved successfully")

	response.WithJSON(w, http.StatusOK, categories)
}

// GetCategoryByID retrieves a service category by its ID.
// @Summary Get a service category by ID
// @Description Retrieve a service category by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse "Category details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/categories/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	category, err := handler.service.GetCategory(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get category by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Category retrieved successfully")

	response.WithJSON(w, http.StatusOK, category)
}

// UpdateCategory updates an existing service category by its ID.
// @Summary Update a service category by ID
// @Description Update the details of an existing service category.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Update Category Request"
// @Success 200 {object} response.Message "Category updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/categories/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCategoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateCategory(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update category")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Category updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Category updated successfully")
}

// DeleteCategory deletes a service category by its ID.
// @Summary Delete a service category by ID
// @Description Delete a service category. Fails when services still reference it.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Message "Category deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/categories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteCategory(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete category")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Category deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Category deleted successfully")
}

// CreateService handles the creation of a new service.
// @Summary Create a new service
// @Description Create a new service with its price and default duration.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Message "Service created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateService(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Service created successfully")
}

// GetServices retrieves services.
// @Summary Get all services
// @Description Retrieve services with optional name, category and active filters.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param category_id query string false "Filter by category"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetServicesResponse "List of services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
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
				Table:    model.ServiceTableName,
			},
		},
	}

	if categoryID := r.URL.Query().Get(model.FieldCategoryID); categoryID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategoryID,
			Operator: gDto.FilterOperatorEq,
			Value:    categoryID,
			Table:    model.ServiceTableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.ServiceTableName,
		})
	}

	services, err := handler.service.GetServices(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Services retrieved successfully")

	response.WithJSON(w, http.StatusOK, services)
}

// GetServiceByID retrieves a service by its ID.
// @Summary Get a service by ID
// @Description Retrieve a service by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse "Service details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	svc, err := handler.service.GetService(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service retrieved successfully")

	response.WithJSON(w, http.StatusOK, svc)
}

// UpdateService updates an existing service by its ID.
// @Summary Update a service by ID
// @Description Update the details of an existing service.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Message "Service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateService(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// DeleteService deletes a service by its ID.
// @Summary Delete a service by ID
// @Description Delete a service. Fails when a service group still links it.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteService(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}

// CreateGroup handles the creation of a new service group.
// @Summary Create a new service group
// @Description Create a new service group with a default discount percentage.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Create Group Request"
// @Success 201 {object} response.Message "Group created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups [post]
// @Security BearerAuth
func (handler *Handler) CreateGroup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGroup")
	defer scope.End()

	req := dto.CreateGroupRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateGroup(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create group")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Group created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Group created successfully")
}

// GetGroups retrieves service groups.
// @Summary Get all service groups
// @Description Retrieve service groups with optional name filtering.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetGroupsResponse "List of groups"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups [get]
// @Security BearerAuth
func (handler *Handler) GetGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroups")
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
				Table:    model.GroupTableName,
			},
		},
	}

	groups, err := handler.service.GetGroups(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get groups")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Groups retrieved successfully")

	response.WithJSON(w, http.StatusOK, groups)
}

// GetGroupByID retrieves a service group with its priced line items.
// @Summary Get a service group by ID
// @Description Retrieve a service group, its line items and the computed total.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.GroupDetailResponse "Group details with pricing"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGroupByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroupByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	group, err := handler.service.GetGroup(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get group by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Group retrieved successfully")

	response.WithJSON(w, http.StatusOK, group)
}

// UpdateGroup updates an existing service group by its ID.
// @Summary Update a service group by ID
// @Description Update the details of an existing service group.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.UpdateGroupRequest true "Update Group Request"
// @Success 200 {object} response.Message "Group updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGroupRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateGroup(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update group")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Group updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Group updated successfully")
}

// DeleteGroup deletes a service group by its ID.
// @Summary Delete a service group by ID
// @Description Delete a service group together with its service links.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Message "Group deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteGroup(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete group")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Group deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Group deleted successfully")
}

// AddGroupService links a service into a service group.
// @Summary Add a service to a group
// @Description Link a service into a group with a quantity and optional discount override.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.AddGroupServiceRequest true "Add Group Service Request"
// @Success 201 {object} response.Message "Service added to group successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups/{id}/services [post]
// @Security BearerAuth
func (handler *Handler) AddGroupService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddGroupService")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddGroupServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddGroupService(ctx, req, groupID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add service to group")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service added to group successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Service added to group successfully")
}

// UpdateGroupService updates a service link inside a group.
// @Summary Update a group service link
// @Description Update the quantity or discount override of a group service link.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param linkID path string true "Group Service Link ID"
// @Param request body dto.UpdateGroupServiceRequest true "Update Group Service Request"
// @Success 200 {object} response.Message "Group service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups/{id}/services/{linkID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGroupService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGroupService")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)
	linkID := chi.URLParam(r, requestParamLinkID)

	req := dto.UpdateGroupServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateGroupService(ctx, req, groupID, linkID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update group service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Group service updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Group service updated successfully")
}

// RemoveGroupService removes a service link from a group.
// @Summary Remove a service from a group
// @Description Remove a service link from a group by its link identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param linkID path string true "Group Service Link ID"
// @Success 200 {object} response.Message "Service removed from group successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/groups/{id}/services/{linkID} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveGroupService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveGroupService")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)
	linkID := chi.URLParam(r, requestParamLinkID)

	if err := handler.service.RemoveGroupService(ctx, groupID, linkID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove service from group")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service removed from group successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service removed from group successfully")
}
