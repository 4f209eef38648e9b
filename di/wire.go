//go:build wireinject
// +build wireinject

package di

import (
	"foodiespot/config"
	"foodiespot/infras/groq"
	"foodiespot/infras/kafka"
	"foodiespot/infras/otel"
	"foodiespot/infras/postgres"
	"foodiespot/infras/redis"
	"foodiespot/shared/cache"
	"foodiespot/transport/http"
	"foodiespot/transport/http/middleware"
	"foodiespot/transport/http/router"

	conversationService "foodiespot/internal/domains/conversation/service"
	reservationRepository "foodiespot/internal/domains/reservation/repository"
	reservationService "foodiespot/internal/domains/reservation/service"
	restaurantRepository "foodiespot/internal/domains/restaurant/repository"
	restaurantService "foodiespot/internal/domains/restaurant/service"

	chatHandler "foodiespot/internal/handlers/chat"
	reservationHandler "foodiespot/internal/handlers/reservation"
	restaurantHandler "foodiespot/internal/handlers/restaurant"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	groq.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var restaurantDomain = wire.NewSet(
	restaurantRepository.New,
	restaurantRepository.NewTable,
	restaurantService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var conversationDomain = wire.NewSet(
	provideRestaurantFinder,
	conversationService.New,
)

var domains = wire.NewSet(
	restaurantDomain,
	reservationDomain,
	conversationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	chatHandler.New,
	restaurantHandler.New,
	reservationHandler.New,
	router.New,
)

func provideRestaurantFinder(s restaurantService.Restaurant) conversationService.RestaurantFinder {
	return s
}

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
