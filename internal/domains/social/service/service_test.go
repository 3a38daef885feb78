package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atria/config"
	"atria/infras/otel/mocks"
	projectMocks "atria/internal/domains/project/mocks"
	socialMocks "atria/internal/domains/social/mocks"
	"atria/internal/domains/social/model"
	"atria/internal/domains/social/service"
	cacheMocks "atria/shared/cache/mocks"
	"atria/shared/failure"
	"atria/shared/timezone"
)

type socialMockSet struct {
	socialProjects *socialMocks.MockSocialProject
	posts          *socialMocks.MockSocialPost
	projects       *projectMocks.MockProject
	cache          *cacheMocks.MockRedisCache
}

func newSocialService(ctrl *gomock.Controller) (service.Social, socialMockSet) {
	set := socialMockSet{
		socialProjects: socialMocks.NewMockSocialProject(ctrl),
		posts:          socialMocks.NewMockSocialPost(ctrl),
		projects:       projectMocks.NewMockProject(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.New(set.socialProjects, set.posts, set.projects, &config.Config{}, set.cache, mocks.NewOtel())

	return svc, set
}

func TestSocialService_ReschedulePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSocialService(ctrl)

	postID := "e6c1f9a0-0000-4000-8000-000000000005"

	set.posts.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	set.posts.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			scheduledAt, ok := fields[model.FieldScheduledAt].(time.Time)
			assert.True(t, ok)
			assert.Equal(t, 2025, scheduledAt.Year())
			assert.Equal(t, time.July, scheduledAt.Month())
			assert.Equal(t, 4, scheduledAt.Day())
			assert.Equal(t, model.DefaultPostHour, scheduledAt.Hour())

			return nil
		})

	stored := model.SocialPost{
		ID:          postID,
		Title:       "Launch teaser",
		ScheduledAt: time.Date(2025, 7, 4, model.DefaultPostHour, 0, 0, 0, timezone.GetLocation()),
	}

	set.posts.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(stored, nil)

	set.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.ReschedulePost(context.Background(), postID, "2025-07-04")

	assert.NoError(t, err)
	assert.Equal(t, postID, res.ID)
	assert.Equal(t, stored.ScheduledAt, res.ScheduledAt)
}

func TestSocialService_ReschedulePost_BadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newSocialService(ctrl)

	_, err := svc.ReschedulePost(context.Background(), "e6c1f9a0-0000-4000-8000-000000000005", "04/07/2025")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestSocialService_ReschedulePost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSocialService(ctrl)

	set.posts.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	_, err := svc.ReschedulePost(context.Background(), "e6c1f9a0-0000-4000-8000-00000000dead", "2025-07-04")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestSocialService_GetMonthPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newSocialService(ctrl)

	socialProjectID := "f6c1f9a0-0000-4000-8000-000000000006"

	set.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	posts := []model.SocialPost{
		{
			ID:          "e6c1f9a0-0000-4000-8000-000000000005",
			Title:       "Launch teaser",
			ScheduledAt: time.Date(2025, 7, 4, model.DefaultPostHour, 0, 0, 0, timezone.GetLocation()),
		},
		{
			ID:          "e6c1f9a0-0000-4000-8000-000000000007",
			Title:       "Behind the scenes",
			ScheduledAt: time.Date(2025, 7, 18, model.DefaultPostHour, 0, 0, 0, timezone.GetLocation()),
		},
	}

	set.posts.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(posts, nil)

	set.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetMonthPosts(context.Background(), socialProjectID, "2025-07")

	assert.NoError(t, err)
	assert.Equal(t, "2025-07", res.Month)
	assert.Len(t, res.Posts, 2)
	assert.Equal(t, "Launch teaser", res.Posts[0].Title)
}

func TestSocialService_GetMonthPosts_BadMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newSocialService(ctrl)

	_, err := svc.GetMonthPosts(context.Background(), "f6c1f9a0-0000-4000-8000-000000000006", "July 2025")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}
