package social

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"atria/infras/otel"
	mediaService "atria/internal/domains/media/service"
	"atria/internal/domains/social/model"
	"atria/internal/domains/social/model/dto"
	"atria/internal/domains/social/service"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/validator"
	"atria/transport/http/response"
)

const requestParamMonth = "month"

type Handler struct {
	service service.Social
	media   mediaService.Media
	otel    otel.Otel
}

func New(service service.Social, media mediaService.Media, otel otel.Otel) Handler {
	return Handler{
		service: service,
		media:   media,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/social-projects", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSocialProject)
		routerGroup.Get("/", handler.GetSocialProjects)
		routerGroup.Get("/{id}", handler.GetSocialProjectByID)
		routerGroup.Patch("/{id}", handler.UpdateSocialProject)
		routerGroup.Delete("/{id}", handler.DeleteSocialProject)
		routerGroup.Get("/{id}/calendar", handler.GetMonthPosts)
	})

	router.Route("/social-posts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSocialPost)
		routerGroup.Get("/", handler.GetSocialPosts)
		routerGroup.Get("/{id}", handler.GetSocialPostByID)
		routerGroup.Patch("/{id}", handler.UpdateSocialPost)
		routerGroup.Delete("/{id}", handler.DeleteSocialPost)
		routerGroup.Patch("/{id}/reschedule", handler.RescheduleSocialPost)
		routerGroup.Post("/{id}/media", handler.UploadPostMedia)
		routerGroup.Delete("/{id}/media", handler.DeletePostMedia)
	})
}

// CreateSocialProject handles the creation of a new social media project.
// @Summary Create a new social project
// @Description Create a social media project attached to a client project.
// @Tags Social
// @Accept json
// @Produce json
// @Param request body dto.CreateSocialProjectRequest true "Create Social Project Request"
// @Success 201 {object} response.Message "Social project created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-projects [post]
// @Security BearerAuth
func (handler *Handler) CreateSocialProject(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSocialProject")
	defer scope.End()

	req := dto.CreateSocialProjectRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateProject(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create social project")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Social project created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Social project created successfully")
}

// GetSocialProjects retrieves social projects.
// @Summary Get all social projects
// @Description Retrieve social projects with optional name and project filters.
// @Tags Social
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param project_id query string false "Filter by client project"
// @Success 200 {object} dto.GetSocialProjectsResponse "List of social projects"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-projects [get]
// @Security BearerAuth
func (handler *Handler) GetSocialProjects(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSocialProjects")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    "name",
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get("name"),
				Table:    model.ProjectTableName,
			},
		},
	}

	if projectID := r.URL.Query().Get(model.FieldProjectID); projectID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldProjectID,
			Operator: gDto.FilterOperatorEq,
			Value:    projectID,
			Table:    model.ProjectTableName,
		})
	}

	projects, err := handler.service.GetProjects(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get social projects")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Social projects retrieved successfully")

	response.WithJSON(w, http.StatusOK, projects)
}

// GetSocialProjectByID retrieves a social project by its ID.
// @Summary Get a social project by ID
// @Description Retrieve a social project by its unique identifier.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Project ID"
// @Success 200 {object} dto.SocialProjectResponse "Social project details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-projects/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSocialProjectByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSocialProjectByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	project, err := handler.service.GetProject(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get social project by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Social project retrieved successfully")

	response.WithJSON(w, http.StatusOK, project)
}

// UpdateSocialProject updates an existing social project by its ID.
// @Summary Update a social project by ID
// @Description Update the details of an existing social project.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Project ID"
// @Param request body dto.UpdateSocialProjectRequest true "Update Social Project Request"
// @Success 200 {object} response.Message "Social project updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-projects/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSocialProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSocialProject")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSocialProjectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProject(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update social project")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Social project updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Social project updated successfully")
}

// DeleteSocialProject deletes a social project by its ID.
// @Summary Delete a social project by ID
// @Description Delete a social project. Fails when posts still belong to it.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Project ID"
// @Success 200 {object} response.Message "Social project deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-projects/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSocialProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSocialProject")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteProject(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete social project")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Social project deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Social project deleted successfully")
}

// GetMonthPosts returns the content calendar for one month.
// @Summary Get a social project's month calendar
// @Description List a social project's posts scheduled inside a calendar month.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Project ID"
// @Param month query string true "Month to list, formatted as YYYY-MM"
// @Success 200 {object} dto.MonthPostsResponse "Posts of the month"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-projects/{id}/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetMonthPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthPosts")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	month := r.URL.Query().Get(requestParamMonth)

	posts, err := handler.service.GetMonthPosts(ctx, id, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get month posts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Month posts retrieved successfully")

	response.WithJSON(w, http.StatusOK, posts)
}

// CreateSocialPost handles the creation of a new social post.
// @Summary Create a new social post
// @Description Create a social post inside a social project.
// @Tags Social
// @Accept json
// @Produce json
// @Param request body dto.CreateSocialPostRequest true "Create Social Post Request"
// @Success 201 {object} response.Message "Social post created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-posts [post]
// @Security BearerAuth
func (handler *Handler) CreateSocialPost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSocialPost")
	defer scope.End()

	req := dto.CreateSocialPostRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreatePost(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create social post")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Social post created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Social post created successfully")
}

// GetSocialPosts retrieves social posts.
// @Summary Get all social posts
// @Description Retrieve social posts filtered by project or workflow stage.
// @Tags Social
// @Accept json
// @Produce json
// @Param social_project_id query string false "Filter by social project"
// @Param workflow_status query string false "Filter by workflow status"
// @Param shoot_status query string false "Filter by shoot status"
// @Success 200 {object} dto.GetSocialPostsResponse "List of social posts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-posts [get]
// @Security BearerAuth
func (handler *Handler) GetSocialPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSocialPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldSocialProjectID, model.FieldWorkflowStatus, model.FieldShootStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.PostTableName,
			})
		}
	}

	posts, err := handler.service.GetPosts(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get social posts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Social posts retrieved successfully")

	response.WithJSON(w, http.StatusOK, posts)
}

// GetSocialPostByID retrieves a social post by its ID.
// @Summary Get a social post by ID
// @Description Retrieve a social post by its unique identifier.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Post ID"
// @Success 200 {object} dto.SocialPostResponse "Social post details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-posts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSocialPostByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSocialPostByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	post, err := handler.service.GetPost(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get social post by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Social post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// UpdateSocialPost updates an existing social post by its ID.
// @Summary Update a social post by ID
// @Description Update the caption, platforms or workflow stage of a post.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Post ID"
// @Param request body dto.UpdateSocialPostRequest true "Update Social Post Request"
// @Success 200 {object} response.Message "Social post updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-posts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSocialPost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSocialPost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSocialPostRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePost(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update social post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Social post updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Social post updated successfully")
}

// DeleteSocialPost deletes a social post by its ID.
// @Summary Delete a social post by ID
// @Description Delete a social post using its unique identifier.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Post ID"
// @Success 200 {object} response.Message "Social post deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-posts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSocialPost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSocialPost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeletePost(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete social post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Social post deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Social post deleted successfully")
}

// RescheduleSocialPost moves a post to a different date.
// @Summary Reschedule a social post
// @Description Move a post onto the target date at the default posting hour and return the stored row.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Post ID"
// @Param request body dto.RescheduleSocialPostRequest true "Reschedule Social Post Request"
// @Success 200 {object} dto.SocialPostResponse "Rescheduled social post"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-posts/{id}/reschedule [patch]
// @Security BearerAuth
func (handler *Handler) RescheduleSocialPost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleSocialPost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RescheduleSocialPostRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	post, err := handler.service.ReschedulePost(ctx, id, req.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule social post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Social post rescheduled successfully by user " + user)

	response.WithJSON(w, http.StatusOK, post)
}

// UploadPostMedia uploads a media file for a social post.
// @Summary Upload media for a social post
// @Description Upload a media file to object storage and attach it to the post.
// @Tags Social
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Social Post ID"
// @Param file formData file true "Media file to upload"
// @Success 200 {object} response.Message "Media uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-posts/{id}/media [post]
// @Security BearerAuth
func (handler *Handler) UploadPostMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPostMedia")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	url, err := handler.media.UploadPostMedia(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload post media")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post media uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, map[string]string{model.FieldMediaURL: url})
}

// DeletePostMedia removes the media file of a social post.
// @Summary Delete a social post's media
// @Description Detach and delete the media file attached to a post.
// @Tags Social
// @Accept json
// @Produce json
// @Param id path string true "Social Post ID"
// @Success 200 {object} response.Message "Media deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/social-posts/{id}/media [delete]
// @Security BearerAuth
func (handler *Handler) DeletePostMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePostMedia")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.media.DeletePostMedia(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete post media")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post media deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Media deleted successfully")
}
