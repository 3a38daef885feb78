//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"atria/config"
	"atria/infras/jwt"
	"atria/infras/kafka"
	"atria/infras/otel"
	"atria/infras/postgres"
	"atria/infras/redis"
	"atria/infras/s3"
	"atria/internal/notifier"
	"atria/permissions"
	"atria/shared/cache"
	"atria/transport/http"
	"atria/transport/http/middleware"
	"atria/transport/http/router"

	appointmentRepository "atria/internal/domains/appointment/repository"
	appointmentService "atria/internal/domains/appointment/service"
	catalogRepository "atria/internal/domains/catalog/repository"
	catalogService "atria/internal/domains/catalog/service"
	chatRepository "atria/internal/domains/chat/repository"
	chatService "atria/internal/domains/chat/service"
	companyRepository "atria/internal/domains/company/repository"
	companyService "atria/internal/domains/company/service"
	mediaService "atria/internal/domains/media/service"
	patientRepository "atria/internal/domains/patient/repository"
	patientService "atria/internal/domains/patient/service"
	projectRepository "atria/internal/domains/project/repository"
	projectService "atria/internal/domains/project/service"
	providerRepository "atria/internal/domains/provider/repository"
	providerService "atria/internal/domains/provider/service"
	socialRepository "atria/internal/domains/social/repository"
	socialService "atria/internal/domains/social/service"

	appointmentHandler "atria/internal/handlers/appointment"
	catalogHandler "atria/internal/handlers/catalog"
	chatHandler "atria/internal/handlers/chat"
	companyHandler "atria/internal/handlers/company"
	patientHandler "atria/internal/handlers/patient"
	projectHandler "atria/internal/handlers/project"
	providerHandler "atria/internal/handlers/provider"
	socialHandler "atria/internal/handlers/social"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var patientDomain = wire.NewSet(
	patientRepository.New,
	patientService.New,
)

var providerDomain = wire.NewSet(
	providerRepository.New,
	providerService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewCategory,
	catalogRepository.NewService,
	catalogRepository.NewGroup,
	catalogRepository.NewGroupService,
	catalogService.New,
)

var companyDomain = wire.NewSet(
	companyRepository.NewCompany,
	companyRepository.NewContact,
	companyService.New,
)

var projectDomain = wire.NewSet(
	projectRepository.New,
	projectService.New,
)

var socialDomain = wire.NewSet(
	socialRepository.NewSocialProject,
	socialRepository.NewSocialPost,
	socialService.New,
	mediaService.New,
)

var chatDomain = wire.NewSet(
	chatRepository.NewMessage,
	chatRepository.NewNotification,
	chatService.New,
)

var domains = wire.NewSet(
	patientDomain,
	providerDomain,
	appointmentDomain,
	catalogDomain,
	companyDomain,
	projectDomain,
	socialDomain,
	chatDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	patientHandler.New,
	providerHandler.New,
	appointmentHandler.New,
	catalogHandler.New,
	companyHandler.New,
	projectHandler.New,
	socialHandler.New,
	chatHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeNotifier() notifier.Notifier {
	wire.Build(
		configurations,
		wire.NewSet(
			postgres.New,
			otel.New,
			kafka.New,
		),
		chatRepository.NewNotification,
		notifier.New,
	)

	return nil
}
