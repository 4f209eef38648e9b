package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"foodiespot/config"
	otelMocks "foodiespot/infras/otel/mocks"
	"foodiespot/internal/domains/restaurant/mocks"
	"foodiespot/internal/domains/restaurant/model"
	"foodiespot/internal/domains/restaurant/service"
	cacheMocks "foodiespot/shared/cache/mocks"
	gDto "foodiespot/shared/dto"
)

type fixture struct {
	repo      *mocks.MockRestaurant
	tableRepo *mocks.MockTable
	cache     *cacheMocks.MockRedisCache
	svc       service.Restaurant
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	repo := mocks.NewMockRestaurant(ctrl)
	tableRepo := mocks.NewMockTable(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	// cache-aside saves happen on detached goroutines
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return &fixture{
		repo:      repo,
		tableRepo: tableRepo,
		cache:     cache,
		svc:       service.New(repo, tableRepo, cfg, cache, otelMocks.NewOtel()),
	}
}

func sampleRestaurants() []model.Restaurant {
	return []model.Restaurant{
		{ID: "r-1", Name: "FoodieSpot Central", Location: "Jakarta", Cuisine: "sushi", OpenTime: "10:00:00", CloseTime: "22:00:00"},
		{ID: "r-2", Name: "FoodieSpot Harbor", Location: "Jakarta", Cuisine: "sushi", OpenTime: "11:00:00", CloseTime: "23:00:00"},
	}
}

func TestFind(t *testing.T) {
	t.Run("empty city returns empty slice without querying", func(t *testing.T) {
		f := newFixture(t)

		// no repo or cache expectations: an absent city must short-circuit
		res, err := f.svc.Find(context.Background(), "", "sushi")

		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("city and cuisine filters reach the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "restaurant:find:Jakarta:sushi", gomock.Any()).
			Return(errors.New("redis: nil"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Restaurant, error) {
				require.Len(t, filter.Filters, 2)

				return sampleRestaurants(), nil
			})

		res, err := f.svc.Find(context.Background(), "Jakarta", "sushi")

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "FoodieSpot Central", res[0].Name)
	})

	t.Run("empty cuisine only filters by city", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "restaurant:find:Jakarta:", gomock.Any()).
			Return(errors.New("redis: nil"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Restaurant, error) {
				require.Len(t, filter.Filters, 1)

				return []model.Restaurant{}, nil
			})

		res, err := f.svc.Find(context.Background(), "Jakarta", "")

		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "restaurant:find:Jakarta:sushi", gomock.Any()).
			Return(nil)

		_, err := f.svc.Find(context.Background(), "Jakarta", "sushi")

		assert.NoError(t, err)
	})
}

func TestGetRestaurant(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "restaurant:get:r-1", gomock.Any()).
			Return(errors.New("redis: nil"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sampleRestaurants()[0], nil)

		res, err := f.svc.Get(context.Background(), "r-1")

		require.NoError(t, err)
		assert.Equal(t, "FoodieSpot Central", res.Name)
	})

	t.Run("missing restaurant is a not found failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "restaurant:get:missing", gomock.Any()).
			Return(errors.New("redis: nil"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Restaurant{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestGetTables(t *testing.T) {
	t.Run("lists tables smallest first", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "restaurant:get:r-1", gomock.Any()).
			Return(errors.New("redis: nil"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sampleRestaurants()[0], nil)
		f.tableRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Table{
				{ID: "t-1", RestaurantID: "r-1", SeatingCapacity: 2, IsAvailable: true},
				{ID: "t-2", RestaurantID: "r-1", SeatingCapacity: 6, IsAvailable: false},
			}, nil)

		res, err := f.svc.GetTables(context.Background(), "r-1")

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, 2, res[0].SeatingCapacity)
		assert.False(t, res[1].IsAvailable)
	})

	t.Run("unknown restaurant fails before the table query", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "restaurant:get:missing", gomock.Any()).
			Return(errors.New("redis: nil"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Restaurant{}, nil)

		_, err := f.svc.GetTables(context.Background(), "missing")

		assert.Error(t, err)
	})
}
