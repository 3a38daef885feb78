package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"atria/config"
	"atria/infras/otel"
	"atria/infras/s3"
	socialModel "atria/internal/domains/social/model"
	socialRepo "atria/internal/domains/social/repository"
	"atria/shared"
	"atria/shared/cache"
	"atria/shared/constant"
	"atria/shared/failure"
	"atria/shared/timezone"
)

const (
	postMediaDirectory = "social-posts"

	cacheMonthPosts = "social:month_posts"
)

type Media interface {
	UploadPostMedia(ctx context.Context, postID string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error)
	DeletePostMedia(ctx context.Context, postID string) error
}

type serviceImpl struct {
	posts   socialRepo.SocialPost
	storage s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(posts socialRepo.SocialPost, storage s3.S3, cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel) Media {
	return &serviceImpl{
		posts:   posts,
		storage: storage,
		cfg:     cfg,
		cache:   redisCache,
		otel:    ot,
	}
}

// UploadPostMedia stores the file on object storage and points the post's
// media_url at it. A previous file, if any, is removed afterwards so the post
// never references a deleted object.
func (s *serviceImpl) UploadPostMedia(ctx context.Context, postID string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPostMedia")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(postID, socialModel.FieldID, socialModel.PostTableName)

	post, err := s.posts.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get social post")

		return constant.Empty, fmt.Errorf("failed to get social post: %w", err)
	}

	if post.ID == "" {
		return constant.Empty, failure.NotFound("social post not found") // nolint:wrapcheck
	}

	fileName := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	url, err = s.storage.UploadFile(ctx, s.cfg.External.S3.BucketName, postMediaDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload post media")

		return constant.Empty, fmt.Errorf("failed to upload post media: %w", err)
	}

	fields := map[string]any{
		socialModel.FieldMediaURL: url,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  user,
	}

	if err = s.posts.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update social post media url")

		return constant.Empty, fmt.Errorf("failed to update social post media url: %w", err)
	}

	if post.MediaURL != "" {
		go s.removeObject(ctx, post.MediaURL)
	}

	go s.invalidateMonthPosts(ctx)

	return url, nil
}

func (s *serviceImpl) DeletePostMedia(ctx context.Context, postID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePostMedia")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(postID, socialModel.FieldID, socialModel.PostTableName)

	post, err := s.posts.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get social post")

		return fmt.Errorf("failed to get social post: %w", err)
	}

	if post.ID == "" {
		return failure.NotFound("social post not found") // nolint:wrapcheck
	}

	if post.MediaURL == "" {
		return failure.NotFound("social post has no media") // nolint:wrapcheck
	}

	fields := map[string]any{
		socialModel.FieldMediaURL: constant.Empty,
		constant.FieldModifiedAt:  timezone.Now(),
		constant.FieldModifiedBy:  user,
	}

	if err = s.posts.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to clear social post media url")

		return fmt.Errorf("failed to clear social post media url: %w", err)
	}

	go s.removeObject(ctx, post.MediaURL)
	go s.invalidateMonthPosts(ctx)

	return nil
}

func (s *serviceImpl) removeObject(ctx context.Context, url string) {
	c := context.WithoutCancel(ctx)

	bucket := s.cfg.External.S3.BucketName
	objectName := s.storage.GetObjectNameFromURL(bucket, url)

	if err := s.storage.DeleteFile(c, bucket, constant.Empty, objectName); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to delete post media object")
	}
}

func (s *serviceImpl) invalidateMonthPosts(ctx context.Context) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheMonthPosts)
}
