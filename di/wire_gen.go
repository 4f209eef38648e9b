// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"foodiespot/config"
	"foodiespot/infras/groq"
	"foodiespot/infras/kafka"
	"foodiespot/infras/otel"
	"foodiespot/infras/postgres"
	"foodiespot/infras/redis"
	service2 "foodiespot/internal/domains/conversation/service"
	repository2 "foodiespot/internal/domains/reservation/repository"
	service3 "foodiespot/internal/domains/reservation/service"
	"foodiespot/internal/domains/restaurant/repository"
	"foodiespot/internal/domains/restaurant/service"
	"foodiespot/internal/handlers/chat"
	"foodiespot/internal/handlers/reservation"
	"foodiespot/internal/handlers/restaurant"
	"foodiespot/shared/cache"
	"foodiespot/transport/http"
	"foodiespot/transport/http/middleware"
	"foodiespot/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	completionClient := groq.New(configConfig)
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryRestaurant := repository.New(connection, otelOtel)
	table := repository.NewTable(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceRestaurant := service.New(repositoryRestaurant, table, configConfig, redisCache, otelOtel)
	restaurantFinder := provideRestaurantFinder(serviceRestaurant)
	conversation := service2.New(completionClient, restaurantFinder, configConfig, redisCache, otelOtel)
	handler := chat.New(conversation, otelOtel)
	restaurantHandler := restaurant.New(serviceRestaurant, otelOtel)
	repositoryReservation := repository2.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceReservation := service3.New(repositoryReservation, repositoryRestaurant, configConfig, kafkaClient, otelOtel)
	reservationHandler := reservation.New(serviceReservation, otelOtel)
	domainHandlers := router.DomainHandlers{
		Chat:        handler,
		Restaurant:  restaurantHandler,
		Reservation: reservationHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, groq.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var restaurantDomain = wire.NewSet(repository.New, repository.NewTable, service.New)

var reservationDomain = wire.NewSet(repository2.New, service3.New)

var conversationDomain = wire.NewSet(
	provideRestaurantFinder, service2.New,
)

var domains = wire.NewSet(
	restaurantDomain,
	reservationDomain,
	conversationDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), chat.New, restaurant.New, reservation.New, router.New)

func provideRestaurantFinder(s service.Restaurant) service2.RestaurantFinder {
	return s
}
