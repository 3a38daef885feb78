package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"atria/config"
	"atria/infras/otel"
	projectModel "atria/internal/domains/project/model"
	projectRepo "atria/internal/domains/project/repository"
	"atria/internal/domains/social/model"
	"atria/internal/domains/social/model/dto"
	"atria/internal/domains/social/repository"
	"atria/shared"
	"atria/shared/cache"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/failure"
	"atria/shared/timezone"
)

const (
	cacheMonthPosts = "social:month_posts"
)

type Social interface {
	CreateProject(ctx context.Context, req dto.CreateSocialProjectRequest) error
	GetProjects(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSocialProjectsResponse, error)
	GetProject(ctx context.Context, id string) (dto.SocialProjectResponse, error)
	UpdateProject(ctx context.Context, req dto.UpdateSocialProjectRequest, id string) error
	DeleteProject(ctx context.Context, id string) error

	CreatePost(ctx context.Context, req dto.CreateSocialPostRequest) error
	GetPosts(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSocialPostsResponse, error)
	GetPost(ctx context.Context, id string) (dto.SocialPostResponse, error)
	UpdatePost(ctx context.Context, req dto.UpdateSocialPostRequest, id string) error
	DeletePost(ctx context.Context, id string) error
	ReschedulePost(ctx context.Context, id, date string) (dto.SocialPostResponse, error)
	GetMonthPosts(ctx context.Context, socialProjectID, month string) (dto.MonthPostsResponse, error)
}

type serviceImpl struct {
	socialProjects repository.SocialProject
	posts          repository.SocialPost
	projects       projectRepo.Project
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	socialProjects repository.SocialProject,
	posts repository.SocialPost,
	projects projectRepo.Project,
	cfg *config.Config,
	redisCache cache.RedisCache,
	ot otel.Otel,
) Social {
	return &serviceImpl{
		socialProjects: socialProjects,
		posts:          posts,
		projects:       projects,
		cfg:            cfg,
		cache:          redisCache,
		otel:           ot,
	}
}

func (s *serviceImpl) CreateProject(ctx context.Context, req dto.CreateSocialProjectRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateProject")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.projects.Exist(ctx, shared.FilterByID(req.ProjectID, projectModel.FieldID, projectModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if project exists")

		return fmt.Errorf("failed to check if project exists: %w", err)
	}

	if !exist {
		return failure.NotFound("project not found") // nolint:wrapcheck
	}

	if err = s.socialProjects.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create social project")

		return fmt.Errorf("failed to create social project: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetProjects(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSocialProjectsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProjects")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.socialProjects.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count social projects")

		return res, fmt.Errorf("failed to count social projects: %w", err)
	}

	models, err := s.socialProjects.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get social projects")

		return res, fmt.Errorf("failed to get social projects: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetProject(ctx context.Context, id string) (res dto.SocialProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProject")
	defer scope.End()
	defer scope.TraceIfError(err)

	socialProject, err := s.socialProjects.Get(ctx, shared.FilterByID(id, model.FieldID, model.ProjectTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get social project")

		return res, fmt.Errorf("failed to get social project: %w", err)
	}

	if socialProject.ID == "" {
		return res, failure.NotFound("social project not found") // nolint:wrapcheck
	}

	res.FromModel(socialProject)

	return res, nil
}

func (s *serviceImpl) UpdateProject(ctx context.Context, req dto.UpdateSocialProjectRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProject")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateSocialProjectRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.ProjectTableName)

	exist, err := s.socialProjects.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if social project exists")

		return fmt.Errorf("failed to check if social project exists: %w", err)
	}

	if !exist {
		return failure.NotFound("social project not found") // nolint:wrapcheck
	}

	if err := s.socialProjects.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update social project")

		return fmt.Errorf("failed to update social project: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteProject(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteProject")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.ProjectTableName)

	exist, err := s.socialProjects.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if social project exists")

		return fmt.Errorf("failed to check if social project exists: %w", err)
	}

	if !exist {
		return failure.NotFound("social project not found") // nolint:wrapcheck
	}

	hasPosts, err := s.posts.Exist(ctx, shared.FilterByID(id, model.FieldSocialProjectID, model.PostTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check social project posts")

		return fmt.Errorf("failed to check social project posts: %w", err)
	}

	if hasPosts {
		return failure.Conflict("social project still has posts") // nolint:wrapcheck
	}

	if err := s.socialProjects.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete social project")

		return fmt.Errorf("failed to delete social project: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreatePost(ctx context.Context, req dto.CreateSocialPostRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePost")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.socialProjects.Exist(ctx, shared.FilterByID(req.SocialProjectID, model.FieldID, model.ProjectTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if social project exists")

		return fmt.Errorf("failed to check if social project exists: %w", err)
	}

	if !exist {
		return failure.NotFound("social project not found") // nolint:wrapcheck
	}

	if err = s.posts.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create social post")

		return fmt.Errorf("failed to create social post: %w", err)
	}

	go s.invalidateMonthPosts(ctx)

	return nil
}

func (s *serviceImpl) GetPosts(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSocialPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPosts")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count social posts")

		return res, fmt.Errorf("failed to count social posts: %w", err)
	}

	models, err := s.posts.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get social posts")

		return res, fmt.Errorf("failed to get social posts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetPost(ctx context.Context, id string) (res dto.SocialPostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPost")
	defer scope.End()
	defer scope.TraceIfError(err)

	post, err := s.posts.Get(ctx, shared.FilterByID(id, model.FieldID, model.PostTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get social post")

		return res, fmt.Errorf("failed to get social post: %w", err)
	}

	if post.ID == "" {
		return res, failure.NotFound("social post not found") // nolint:wrapcheck
	}

	res.FromModel(post)

	return res, nil
}

func (s *serviceImpl) UpdatePost(ctx context.Context, req dto.UpdateSocialPostRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePost")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.PostTableName)

	exist, err := s.posts.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if social post exists")

		return fmt.Errorf("failed to check if social post exists: %w", err)
	}

	if !exist {
		return failure.NotFound("social post not found") // nolint:wrapcheck
	}

	if err := s.posts.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update social post")

		return fmt.Errorf("failed to update social post: %w", err)
	}

	go s.invalidateMonthPosts(ctx)

	return nil
}

func (s *serviceImpl) DeletePost(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePost")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.PostTableName)

	exist, err := s.posts.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if social post exists")

		return fmt.Errorf("failed to check if social post exists: %w", err)
	}

	if !exist {
		return failure.NotFound("social post not found") // nolint:wrapcheck
	}

	if err := s.posts.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete social post")

		return fmt.Errorf("failed to delete social post: %w", err)
	}

	go s.invalidateMonthPosts(ctx)

	return nil
}

// ReschedulePost drops the post onto the target date at the default posting
// hour and returns the stored row, so the caller reconciles with persisted
// state instead of trusting its own optimistic copy.
func (s *serviceImpl) ReschedulePost(ctx context.Context, id, date string) (res dto.SocialPostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReschedulePost")
	defer scope.End()
	defer scope.TraceIfError(err)

	target, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.PostTableName)

	exist, err := s.posts.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if social post exists")

		return res, fmt.Errorf("failed to check if social post exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("social post not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldScheduledAt:   model.CombineDateWithDefaultTime(target),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.posts.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to reschedule social post")

		return res, fmt.Errorf("failed to reschedule social post: %w", err)
	}

	post, err := s.posts.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload social post")

		return res, fmt.Errorf("failed to reload social post: %w", err)
	}

	go s.invalidateMonthPosts(ctx)

	res.FromModel(post)

	return res, nil
}

// GetMonthPosts lists a social project's posts inside one calendar month.
func (s *serviceImpl) GetMonthPosts(ctx context.Context, socialProjectID, month string) (res dto.MonthPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMonthPosts")
	defer scope.End()
	defer scope.TraceIfError(err)

	monthStart, err := timezone.Parse(constant.MonthFormat, month)
	if err != nil {
		return res, failure.BadRequestFromString("month must be formatted as YYYY-MM") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheMonthPosts, socialProjectID, month)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for month posts")

		return res, nil
	}

	monthEnd := monthStart.AddDate(0, 1, 0)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSocialProjectID,
				Value:    socialProjectID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.PostTableName,
			},
			gDto.Filter{
				ArgName:  "scheduled_at_from",
				Field:    model.FieldScheduledAt,
				Value:    monthStart,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.PostTableName,
			},
			gDto.Filter{
				ArgName:  "scheduled_at_to",
				Field:    model.FieldScheduledAt,
				Value:    monthEnd,
				Operator: gDto.FilterOperatorLess,
				Table:    model.PostTableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldScheduledAt,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.posts.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get month posts")

		return res, fmt.Errorf("failed to get month posts: %w", err)
	}

	res.FromModels(month, models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save month posts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidateMonthPosts(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheMonthPosts)
}
