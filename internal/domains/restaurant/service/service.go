package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"foodiespot/config"
	"foodiespot/infras/otel"
	"foodiespot/internal/domains/restaurant/model"
	"foodiespot/internal/domains/restaurant/model/dto"
	"foodiespot/internal/domains/restaurant/repository"
	"foodiespot/shared"
	"foodiespot/shared/cache"
	"foodiespot/shared/constant"
	gDto "foodiespot/shared/dto"
	"foodiespot/shared/failure"
)

const (
	cacheGetRestaurant  = "restaurant:get"
	cacheFindRestaurant = "restaurant:find"
	cacheGetAllCatalog  = "restaurant:gets"
)

type Restaurant interface {
	Find(ctx context.Context, city, cuisine string) ([]dto.RestaurantResponse, error)
	Get(ctx context.Context, id string) (model.Restaurant, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRestaurantsResponse, error)
	GetTables(ctx context.Context, restaurantID string) ([]dto.TableResponse, error)
}

type serviceImpl struct {
	repo      repository.Restaurant
	tableRepo repository.Table
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Restaurant, tableRepo repository.Table, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Restaurant {
	return &serviceImpl{
		repo:      repo,
		tableRepo: tableRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Find looks up restaurants by city and cuisine. The city match is exact;
// the cuisine match is a case-insensitive substring. An empty city returns
// an empty list without touching the catalog.
func (s *serviceImpl) Find(ctx context.Context, city, cuisine string) (res []dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Find")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = []dto.RestaurantResponse{}

	if city == constant.Empty {
		return res, nil
	}

	cacheKey := shared.BuildCacheKey(cacheFindRestaurant, city, cuisine)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant lookup")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorEq,
				Value:    city,
				Table:    model.TableName,
			},
		},
	}

	if cuisine != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCuisine,
			Operator: gDto.FilterOperatorLike,
			Value:    cuisine,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Str("city", city).Str("cuisine", cuisine).Msg("failed to find restaurants")

		return []dto.RestaurantResponse{}, fmt.Errorf("failed to find restaurants: %w", err)
	}

	res = make([]dto.RestaurantResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant lookup to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Restaurant, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRestaurant, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant")

		return res, nil
	}

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return res, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant to cache")
		}
	}()

	return res, nil
}

// GetTables lists every table belonging to a restaurant, smallest first.
func (s *serviceImpl) GetTables(ctx context.Context, restaurantID string) (res []dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTables")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, restaurantID); err != nil {
		return nil, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTableRestaurant,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TablesTableName,
			},
		},
	}

	models, err := s.tableRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldSeatingCapacity, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Str("restaurantID", restaurantID).Msg("failed to get tables")

		return nil, fmt.Errorf("failed to get tables: %w", err)
	}

	res = make([]dto.TableResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRestaurantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCatalog, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurants")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurants")

		return res, fmt.Errorf("failed to count restaurants: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurants")

		return res, fmt.Errorf("failed to get restaurants: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurants to cache")
		}
	}()

	return res, nil
}
