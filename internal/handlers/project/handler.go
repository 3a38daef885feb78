package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atria/infras/otel"
	"atria/internal/domains/project/model"
	"atria/internal/domains/project/model/dto"
	"atria/internal/domains/project/service"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/validator"
	"atria/transport/http/response"
)

type Handler struct {
	service service.Project
	otel    otel.Otel
}

func New(service service.Project, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/projects", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProject)
		routerGroup.Get("/", handler.GetProjects)
		routerGroup.Get("/{id}", handler.GetProjectByID)
		routerGroup.Patch("/{id}", handler.UpdateProject)
		routerGroup.Delete("/{id}", handler.DeleteProject)
	})
}

// CreateProject handles the creation of a new project.
// @Summary Create a new project
// @Description Create a new project under a company.
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Create Project Request"
// @Success 201 {object} response.Message "Project created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects [post]
// @Security BearerAuth
func (handler *Handler) CreateProject(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProject")
	defer scope.End()

	req := dto.CreateProjectRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create project")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Project created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Project created successfully")
}

// GetProjects retrieves projects with optional filtering and pagination.
// @Summary Get all projects
// @Description Retrieve projects with optional name, company and status filters.
// @Tags Project
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param company_id query string false "Filter by company"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetProjectsResponse "List of projects"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects [get]
// @Security BearerAuth
func (handler *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjects")
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
				Table:    model.TableName,
			},
		},
	}

	for _, field := range []string{model.FieldCompanyID, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	projects, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get projects")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Projects retrieved successfully")

	response.WithJSON(w, http.StatusOK, projects)
}

// GetProjectByID retrieves a project by its ID.
// @Summary Get a project by ID
// @Description Retrieve a project by its unique identifier.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse "Project details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjectByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	project, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get project by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Project retrieved successfully")

	response.WithJSON(w, http.StatusOK, project)
}

// UpdateProject updates an existing project by its ID.
// @Summary Update a project by ID
// @Description Update the details of an existing project.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Update Project Request"
// @Success 200 {object} response.Message "Project updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProject")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProjectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update project")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Project updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Project updated successfully")
}

// DeleteProject deletes a project by its ID.
// @Summary Delete a project by ID
// @Description Delete a project using its unique identifier.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.Message "Project deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/projects/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProject")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete project")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Project deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Project deleted successfully")
}
