package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"atria/config"
	"atria/infras/otel"
	"atria/internal/domains/catalog/model"
	"atria/internal/domains/catalog/model/dto"
	"atria/internal/domains/catalog/repository"
	"atria/shared"
	"atria/shared/cache"
	"atria/shared/constant"
	gDto "atria/shared/dto"
	"atria/shared/failure"
)

const (
	cacheGroupDetail = "catalog:group_detail"
)

type Catalog interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) error
	GetCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCategoriesResponse, error)
	GetCategory(ctx context.Context, id string) (dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) error
	DeleteCategory(ctx context.Context, id string) error

	CreateService(ctx context.Context, req dto.CreateServiceRequest) error
	GetServices(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServicesResponse, error)
	GetService(ctx context.Context, id string) (dto.ServiceResponse, error)
	UpdateService(ctx context.Context, req dto.UpdateServiceRequest, id string) error
	DeleteService(ctx context.Context, id string) error

	CreateGroup(ctx context.Context, req dto.CreateGroupRequest) error
	GetGroups(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGroupsResponse, error)
	GetGroup(ctx context.Context, id string) (dto.GroupDetailResponse, error)
	UpdateGroup(ctx context.Context, req dto.UpdateGroupRequest, id string) error
	DeleteGroup(ctx context.Context, id string) error

	AddGroupService(ctx context.Context, req dto.AddGroupServiceRequest, groupID string) error
	UpdateGroupService(ctx context.Context, req dto.UpdateGroupServiceRequest, groupID, linkID string) error
	RemoveGroupService(ctx context.Context, groupID, linkID string) error
}

type catalogImpl struct {
	categories    repository.Category
	services      repository.Service
	groups        repository.Group
	groupServices repository.GroupService
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	categories repository.Category,
	services repository.Service,
	groups repository.Group,
	groupServices repository.GroupService,
	cfg *config.Config,
	redisCache cache.RedisCache,
	ot otel.Otel,
) Catalog {
	return &catalogImpl{
		categories:    categories,
		services:      services,
		groups:        groups,
		groupServices: groupServices,
		cfg:           cfg,
		cache:         redisCache,
		otel:          ot,
	}
}

func (s *catalogImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.categories.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create service category")

		return fmt.Errorf("failed to create service category: %w", err)
	}

	return nil
}

func (s *catalogImpl) GetCategories(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategories")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.categories.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service categories")

		return res, fmt.Errorf("failed to count service categories: %w", err)
	}

	models, err := s.categories.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service categories")

		return res, fmt.Errorf("failed to get service categories: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *catalogImpl) GetCategory(ctx context.Context, id string) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	category, err := s.categories.Get(ctx, shared.FilterByID(id, model.FieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service category")

		return res, fmt.Errorf("failed to get service category: %w", err)
	}

	if category.ID == "" {
		return res, failure.NotFound("service category not found") // nolint:wrapcheck
	}

	res.FromModel(category)

	return res, nil
}

func (s *catalogImpl) UpdateCategory(ctx context.Context, req dto.UpdateCategoryRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCategory")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateCategoryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.CategoryTableName)

	exist, err := s.categories.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service category exists")

		return fmt.Errorf("failed to check if service category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service category not found") // nolint:wrapcheck
	}

	if err := s.categories.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update service category")

		return fmt.Errorf("failed to update service category: %w", err)
	}

	return nil
}

// DeleteCategory refuses to delete a category that still has services.
func (s *catalogImpl) DeleteCategory(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteCategory")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.CategoryTableName)

	exist, err := s.categories.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service category exists")

		return fmt.Errorf("failed to check if service category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service category not found") // nolint:wrapcheck
	}

	hasServices, err := s.services.Exist(ctx, shared.FilterByID(id, model.FieldCategoryID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check category services")

		return fmt.Errorf("failed to check category services: %w", err)
	}

	if hasServices {
		return failure.Conflict("category still has services") // nolint:wrapcheck
	}

	if err := s.categories.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete service category")

		return fmt.Errorf("failed to delete service category: %w", err)
	}

	return nil
}

func (s *catalogImpl) CreateService(ctx context.Context, req dto.CreateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.categories.Exist(ctx, shared.FilterByID(req.CategoryID, model.FieldID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service category exists")

		return fmt.Errorf("failed to check if service category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service category not found") // nolint:wrapcheck
	}

	if err = s.services.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (s *catalogImpl) GetServices(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.services.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.services.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *catalogImpl) GetService(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetService")
	defer scope.End()
	defer scope.TraceIfError(err)

	svc, err := s.services.Get(ctx, shared.FilterByID(id, model.FieldID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == "" {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	res.FromModel(svc)

	return res, nil
}

func (s *catalogImpl) UpdateService(ctx context.Context, req dto.UpdateServiceRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateService")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateServiceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.ServiceTableName)

	exist, err := s.services.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service not found") // nolint:wrapcheck
	}

	if req.CategoryID != "" {
		categoryExist, err := s.categories.Exist(ctx, shared.FilterByID(req.CategoryID, model.FieldID, model.CategoryTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if service category exists")

			return fmt.Errorf("failed to check if service category exists: %w", err)
		}

		if !categoryExist {
			return failure.NotFound("service category not found") // nolint:wrapcheck
		}
	}

	if err := s.services.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	go s.invalidateGroupDetails(ctx)

	return nil
}

func (s *catalogImpl) DeleteService(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteService")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.ServiceTableName)

	exist, err := s.services.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service not found") // nolint:wrapcheck
	}

	linked, err := s.groupServices.Exist(ctx, shared.FilterByID(id, model.FieldServiceID, model.GroupServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check service group links")

		return fmt.Errorf("failed to check service group links: %w", err)
	}

	if linked {
		return failure.Conflict("service is still linked to a group") // nolint:wrapcheck
	}

	if err := s.services.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	return nil
}

func (s *catalogImpl) CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGroup")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.groups.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create service group")

		return fmt.Errorf("failed to create service group: %w", err)
	}

	return nil
}

func (s *catalogImpl) GetGroups(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGroupsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGroups")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.groups.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service groups")

		return res, fmt.Errorf("failed to count service groups: %w", err)
	}

	models, err := s.groups.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service groups")

		return res, fmt.Errorf("failed to get service groups: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// GetGroup returns the group with its priced lines and computed total.
func (s *catalogImpl) GetGroup(ctx context.Context, id string) (res dto.GroupDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGroup")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGroupDetail, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for group detail")

		return res, nil
	}

	group, err := s.groups.Get(ctx, shared.FilterByID(id, model.FieldID, model.GroupTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service group")

		return res, fmt.Errorf("failed to get service group: %w", err)
	}

	if group.ID == "" {
		return res, failure.NotFound("service group not found") // nolint:wrapcheck
	}

	links, err := s.groupServices.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.FieldGroupID, model.GroupServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get group services")

		return res, fmt.Errorf("failed to get group services: %w", err)
	}

	services, err := s.linkedServices(ctx, links)
	if err != nil {
		return res, err
	}

	res.FromModels(group, links, services)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save group detail to cache")
		}
	}()

	return res, nil
}

func (s *catalogImpl) linkedServices(ctx context.Context, links []model.ServiceGroupService) (map[string]model.Service, error) {
	services := make(map[string]model.Service, len(links))

	if len(links) == 0 {
		return services, nil
	}

	ids := make([]string, len(links))
	for i, link := range links {
		ids[i] = link.ServiceID
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    model.ServiceTableName,
			},
		},
	}

	models, err := s.services.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get linked services")

		return nil, fmt.Errorf("failed to get linked services: %w", err)
	}

	for _, svc := range models {
		services[svc.ID] = svc
	}

	return services, nil
}

func (s *catalogImpl) UpdateGroup(ctx context.Context, req dto.UpdateGroupRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGroup")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateGroupRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.GroupTableName)

	exist, err := s.groups.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service group exists")

		return fmt.Errorf("failed to check if service group exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service group not found") // nolint:wrapcheck
	}

	if err := s.groups.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update service group")

		return fmt.Errorf("failed to update service group: %w", err)
	}

	go s.invalidateGroupDetails(ctx)

	return nil
}

func (s *catalogImpl) DeleteGroup(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteGroup")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := shared.FilterByID(id, model.FieldID, model.GroupTableName)

	exist, err := s.groups.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service group exists")

		return fmt.Errorf("failed to check if service group exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service group not found") // nolint:wrapcheck
	}

	// Links go first so the group never dangles.
	if err := s.groupServices.Delete(ctx, shared.FilterByID(id, model.FieldGroupID, model.GroupServiceTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete group services")

		return fmt.Errorf("failed to delete group services: %w", err)
	}

	if err := s.groups.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete service group")

		return fmt.Errorf("failed to delete service group: %w", err)
	}

	go s.invalidateGroupDetails(ctx)

	return nil
}

func (s *catalogImpl) AddGroupService(ctx context.Context, req dto.AddGroupServiceRequest, groupID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddGroupService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	groupExist, err := s.groups.Exist(ctx, shared.FilterByID(groupID, model.FieldID, model.GroupTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service group exists")

		return fmt.Errorf("failed to check if service group exists: %w", err)
	}

	if !groupExist {
		return failure.NotFound("service group not found") // nolint:wrapcheck
	}

	serviceExist, err := s.services.Exist(ctx, shared.FilterByID(req.ServiceID, model.FieldID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !serviceExist {
		return failure.NotFound("service not found") // nolint:wrapcheck
	}

	if err = s.groupServices.Insert(ctx, req.ToModel(groupID, user)); err != nil {
		log.Error().Err(err).Msg("failed to add service to group")

		return fmt.Errorf("failed to add service to group: %w", err)
	}

	go s.invalidateGroupDetails(ctx)

	return nil
}

func (s *catalogImpl) UpdateGroupService(ctx context.Context, req dto.UpdateGroupServiceRequest, groupID, linkID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateGroupService")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateGroupServiceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := s.linkFilter(groupID, linkID)

	exist, err := s.groupServices.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if group service exists")

		return fmt.Errorf("failed to check if group service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("group service not found") // nolint:wrapcheck
	}

	if err := s.groupServices.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update group service")

		return fmt.Errorf("failed to update group service: %w", err)
	}

	go s.invalidateGroupDetails(ctx)

	return nil
}

func (s *catalogImpl) RemoveGroupService(ctx context.Context, groupID, linkID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveGroupService")
	defer scope.End()
	defer scope.TraceIfError(nil)

	filter := s.linkFilter(groupID, linkID)

	exist, err := s.groupServices.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if group service exists")

		return fmt.Errorf("failed to check if group service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("group service not found") // nolint:wrapcheck
	}

	if err := s.groupServices.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove service from group")

		return fmt.Errorf("failed to remove service from group: %w", err)
	}

	go s.invalidateGroupDetails(ctx)

	return nil
}

func (s *catalogImpl) linkFilter(groupID, linkID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    linkID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.GroupServiceTableName,
			},
			gDto.Filter{
				Field:    model.FieldGroupID,
				Value:    groupID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.GroupServiceTableName,
			},
		},
	}
}

func (s *catalogImpl) invalidateGroupDetails(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGroupDetail)
}
