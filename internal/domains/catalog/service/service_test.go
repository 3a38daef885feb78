package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atria/config"
	"atria/infras/otel/mocks"
	catalogMocks "atria/internal/domains/catalog/mocks"
	"atria/internal/domains/catalog/model"
	"atria/internal/domains/catalog/model/dto"
	"atria/internal/domains/catalog/service"
	cacheMocks "atria/shared/cache/mocks"
	"atria/shared/failure"
)

type catalogMockSet struct {
	categories    *catalogMocks.MockCategory
	services      *catalogMocks.MockService
	groups        *catalogMocks.MockGroup
	groupServices *catalogMocks.MockGroupService
	cache         *cacheMocks.MockRedisCache
}

func newCatalogService(ctrl *gomock.Controller) (service.Catalog, catalogMockSet) {
	set := catalogMockSet{
		categories:    catalogMocks.NewMockCategory(ctrl),
		services:      catalogMocks.NewMockService(ctrl),
		groups:        catalogMocks.NewMockGroup(ctrl),
		groupServices: catalogMocks.NewMockGroupService(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.New(set.categories, set.services, set.groups, set.groupServices, &config.Config{}, set.cache, mocks.NewOtel())

	return svc, set
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestCatalogService_GetGroup_PricesLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCatalogService(ctrl)

	groupID := "a6c1f9a0-0000-4000-8000-000000000001"
	cleaningID := "b6c1f9a0-0000-4000-8000-000000000002"
	whiteningID := "b6c1f9a0-0000-4000-8000-000000000003"

	set.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	set.groups.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.ServiceGroup{
			ID:              groupID,
			Name:            "Bright Smile Bundle",
			DiscountPercent: 10,
		}, nil)

	set.groupServices.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ServiceGroupService{
			{ID: "link-1", GroupID: groupID, ServiceID: cleaningID, Quantity: intPtr(2)},
			{ID: "link-2", GroupID: groupID, ServiceID: whiteningID, DiscountPercent: floatPtr(25)},
		}, nil)

	set.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Service{
			{ID: cleaningID, Name: "Cleaning", UnitPrice: 100},
			{ID: whiteningID, Name: "Whitening", UnitPrice: 200},
		}, nil)

	set.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetGroup(context.Background(), groupID)

	assert.NoError(t, err)
	assert.Len(t, res.Items, 2)

	// Cleaning: 100 x 2 at the 10% group default = 180.
	// Whitening: 200 x 1 at the 25% override = 150.
	assert.InDelta(t, 180, res.Items[0].LineTotal, 0.0001)
	assert.InDelta(t, 150, res.Items[1].LineTotal, 0.0001)
	assert.InDelta(t, 330, res.Total, 0.0001)
}

func TestCatalogService_GetGroup_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCatalogService(ctrl)

	set.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	set.groups.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.ServiceGroup{}, nil)

	_, err := svc.GetGroup(context.Background(), "a6c1f9a0-0000-4000-8000-00000000dead")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestCatalogService_DeleteService_BlockedByGroupLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCatalogService(ctrl)

	set.services.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	set.groupServices.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	err := svc.DeleteService(context.Background(), "b6c1f9a0-0000-4000-8000-000000000002")

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestCatalogService_AddGroupService(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set catalogMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful add",
			setupMock: func(set catalogMockSet) {
				set.groups.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.services.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.groupServices.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "group not found",
			setupMock: func(set catalogMockSet) {
				set.groups.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "service not found",
			setupMock: func(set catalogMockSet) {
				set.groups.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				set.services.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newCatalogService(ctrl)
			tt.setupMock(set)

			err := svc.AddGroupService(context.Background(), dto.AddGroupServiceRequest{
				ServiceID: "b6c1f9a0-0000-4000-8000-000000000002",
				Quantity:  intPtr(1),
			}, "a6c1f9a0-0000-4000-8000-000000000001")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCatalogService_UpdateGroupService_EmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newCatalogService(ctrl)

	err := svc.UpdateGroupService(context.Background(), dto.UpdateGroupServiceRequest{},
		"a6c1f9a0-0000-4000-8000-000000000001", "c6c1f9a0-0000-4000-8000-000000000004")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}
