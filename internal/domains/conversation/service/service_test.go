package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"foodiespot/config"
	groqMocks "foodiespot/infras/groq/mocks"
	otelMocks "foodiespot/infras/otel/mocks"
	"foodiespot/internal/domains/conversation/mocks"
	"foodiespot/internal/domains/conversation/model"
	"foodiespot/internal/domains/conversation/service"
	restaurantDto "foodiespot/internal/domains/restaurant/model/dto"
	cacheMocks "foodiespot/shared/cache/mocks"
	"foodiespot/shared/timezone"
)

type fixture struct {
	llm    *groqMocks.MockCompletionClient
	finder *mocks.MockRestaurantFinder
	cache  *cacheMocks.MockRedisCache
	cfg    *config.Config
	svc    service.Conversation
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Sessions.TTLSeconds = 900

	llm := groqMocks.NewMockCompletionClient(ctrl)
	finder := mocks.NewMockRestaurantFinder(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	return &fixture{
		llm:    llm,
		finder: finder,
		cache:  cache,
		cfg:    cfg,
		svc:    service.New(llm, finder, cfg, cache, otelMocks.NewOtel()),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		err        error
		want       model.Intent
	}{
		{
			name:       "pure JSON restaurants",
			completion: `{"intent": "restaurants"}`,
			want:       model.IntentRestaurants,
		},
		{
			name:       "pure JSON reservation",
			completion: `{"intent": "reservation"}`,
			want:       model.IntentReservation,
		},
		{
			name:       "JSON wrapped in prose",
			completion: "Sure! Here is the result: {\"intent\": \"restaurants\"} Hope that helps.",
			want:       model.IntentRestaurants,
		},
		{
			name:       "fenced JSON",
			completion: "```json\n{\"intent\": \"reservation\"}\n```",
			want:       model.IntentReservation,
		},
		{
			name:       "null intent",
			completion: `{"intent": null}`,
			want:       model.IntentUnknown,
		},
		{
			name:       "out of set value",
			completion: `{"intent": "weather"}`,
			want:       model.IntentUnknown,
		},
		{
			name:       "no JSON in output",
			completion: "I could not determine the intent.",
			want:       model.IntentUnknown,
		},
		{
			name:       "invalid JSON",
			completion: `{"intent": restaurants}`,
			want:       model.IntentUnknown,
		},
		{
			name: "transport failure",
			err:  errors.New("completion request failed with status 500"),
			want: model.IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.llm.EXPECT().
				Complete(gomock.Any(), gomock.Any()).
				Return(tt.completion, tt.err)

			got := f.svc.Classify(context.Background(), "book me a table")

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRestaurantSlots(t *testing.T) {
	t.Run("full extraction", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"city": "Jakarta", "cuisine": "sushi", "num_people": 4, "time": "19:00:00"}`, nil)

		slots := f.svc.ExtractRestaurantSlots(context.Background(), "sushi for four in Jakarta at 7pm")

		require.NotNil(t, slots.City)
		assert.Equal(t, "Jakarta", *slots.City)
		require.NotNil(t, slots.Cuisine)
		assert.Equal(t, "sushi", *slots.Cuisine)
		require.NotNil(t, slots.NumPeople)
		assert.Equal(t, 4, *slots.NumPeople)
		require.NotNil(t, slots.Time)
		assert.Equal(t, "19:00:00", *slots.Time)
	})

	t.Run("transport failure yields all null", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("", errors.New("timeout"))

		slots := f.svc.ExtractRestaurantSlots(context.Background(), "anything")

		assert.Equal(t, model.RestaurantSlots{}, slots)
	})

	t.Run("malformed output yields all null", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("no json here", nil)

		slots := f.svc.ExtractRestaurantSlots(context.Background(), "anything")

		assert.Equal(t, model.RestaurantSlots{}, slots)
	})

	t.Run("stringified nulls are dropped", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"city": "null", "cuisine": null, "num_people": null, "time": null}`, nil)

		slots := f.svc.ExtractRestaurantSlots(context.Background(), "anything")

		assert.Equal(t, model.RestaurantSlots{}, slots)
	})

	t.Run("short time form is normalized", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"city": "Jakarta", "cuisine": null, "num_people": null, "time": "19:00"}`, nil)

		slots := f.svc.ExtractRestaurantSlots(context.Background(), "anything")

		require.NotNil(t, slots.Time)
		assert.Equal(t, "19:00:00", *slots.Time)
	})

	t.Run("unpadded time is zero padded", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"city": "Jakarta", "cuisine": null, "num_people": null, "time": "9:00"}`, nil)

		slots := f.svc.ExtractRestaurantSlots(context.Background(), "anything")

		require.NotNil(t, slots.Time)
		assert.Equal(t, "09:00:00", *slots.Time)
	})

	t.Run("unpadded long time form is zero padded", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"city": "Jakarta", "cuisine": null, "num_people": null, "time": "9:00:00"}`, nil)

		slots := f.svc.ExtractRestaurantSlots(context.Background(), "anything")

		require.NotNil(t, slots.Time)
		assert.Equal(t, "09:00:00", *slots.Time)
	})

	t.Run("invalid party size is nulled", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"city": "Jakarta", "cuisine": null, "num_people": 0, "time": null}`, nil)

		slots := f.svc.ExtractRestaurantSlots(context.Background(), "anything")

		assert.Nil(t, slots.NumPeople)
	})
}

func TestExtractReservationSlots(t *testing.T) {
	t.Run("missing date defaults to today", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"restaurant_name": "FoodieSpot Central", "date": null, "time": "19:00:00", "num_people": 2}`, nil)

		slots := f.svc.ExtractReservationSlots(context.Background(), "table for two at seven")

		require.NotNil(t, slots.Date)
		assert.Equal(t, timezone.Now().Format("2006-01-02"), *slots.Date)
	})

	t.Run("transport failure still defaults the date", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("", errors.New("timeout"))

		slots := f.svc.ExtractReservationSlots(context.Background(), "anything")

		require.NotNil(t, slots.Date)
		assert.Nil(t, slots.RestaurantName)
		assert.Nil(t, slots.Time)
		assert.Nil(t, slots.NumPeople)
	})

	t.Run("malformed date is nulled then defaulted", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"restaurant_name": "FoodieSpot Central", "date": "tomorrow", "time": "19:00:00", "num_people": 2}`, nil)

		slots := f.svc.ExtractReservationSlots(context.Background(), "anything")

		require.NotNil(t, slots.Date)
		assert.Equal(t, timezone.Now().Format("2006-01-02"), *slots.Date)
	})
}

func TestExtractReservationDetails(t *testing.T) {
	t.Run("complete batch passes through", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"restaurant_name": "FoodieSpot Central", "date": "2025-06-01", "time": "19:00:00", "num_people": 2}`, nil)

		details := f.svc.ExtractReservationDetails(context.Background(), "book FoodieSpot Central for two on June 1st at 7pm")

		require.True(t, details.Complete())
		assert.Equal(t, "FoodieSpot Central", *details.RestaurantName)
		assert.Equal(t, "2025-06-01", *details.Date)
		assert.Equal(t, "19:00:00", *details.Time)
		assert.Equal(t, 2, *details.NumPeople)
	})

	t.Run("partial batch is nulled wholesale", func(t *testing.T) {
		f := newFixture(t)

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"restaurant_name": "FoodieSpot Central", "date": null, "time": null, "num_people": 2}`, nil)

		details := f.svc.ExtractReservationDetails(context.Background(), "book FoodieSpot Central for two")

		assert.Equal(t, model.ReservationSlots{}, details)
	})
}

func TestHandleTurn(t *testing.T) {
	t.Run("restaurants turn fetches recommendations", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "conversation:state:sess-1", gomock.Any()).
			Return(errors.New("redis: nil"))

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"intent": "restaurants"}`, nil)
		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"city": "Jakarta", "cuisine": "sushi", "num_people": null, "time": null}`, nil)

		recommendations := []restaurantDto.RestaurantResponse{
			{ID: "r-1", Name: "FoodieSpot Central", Location: "Jakarta", Cuisine: "sushi"},
		}
		f.finder.EXPECT().
			Find(gomock.Any(), "Jakarta", "sushi").
			Return(recommendations, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), "conversation:state:sess-1", gomock.Any(), 900).
			Return(nil)

		state := f.svc.HandleTurn(context.Background(), "sess-1", "sushi in Jakarta")

		assert.Equal(t, "restaurants", state[model.StateKeyIntent])
		assert.Equal(t, "Jakarta", state[model.StateKeyCity])
		assert.Equal(t, "sushi", state[model.StateKeyCuisine])
		assert.Equal(t, recommendations, state[model.StateKeyRecommendations])
	})

	t.Run("unknown turn still updates intent", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "conversation:state:sess-2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				state, ok := value.(*model.ConversationState)
				require.True(t, ok)
				*state = model.ConversationState{
					model.StateKeyIntent: "restaurants",
					model.StateKeyCity:   "Jakarta",
				}

				return nil
			})

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("I have no idea", nil)

		f.cache.EXPECT().
			Save(gomock.Any(), "conversation:state:sess-2", gomock.Any(), 900).
			Return(nil)

		state := f.svc.HandleTurn(context.Background(), "sess-2", "what is the weather")

		assert.Equal(t, "unknown", state[model.StateKeyIntent])
		assert.Equal(t, "Jakarta", state[model.StateKeyCity], "earlier slots must survive an unknown turn")
	})

	t.Run("reservation turn extracts booking slots", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "conversation:state:sess-3", gomock.Any()).
			Return(errors.New("redis: nil"))

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"intent": "reservation"}`, nil)
		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return(`{"restaurant_name": "FoodieSpot Central", "date": "2025-06-01", "time": "19:00:00", "num_people": 2}`, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), "conversation:state:sess-3", gomock.Any(), 900).
			Return(nil)

		state := f.svc.HandleTurn(context.Background(), "sess-3", "book FoodieSpot Central")

		assert.Equal(t, "reservation", state[model.StateKeyIntent])
		assert.Equal(t, "FoodieSpot Central", state[model.StateKeyRestaurantName])
		assert.Equal(t, "2025-06-01", state[model.StateKeyDate])
		assert.Equal(t, "19:00:00", state[model.StateKeyTime])
		assert.Equal(t, 2, state[model.StateKeyNumPeople])
	})

	t.Run("failed state save still returns the merged state", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "conversation:state:sess-4", gomock.Any()).
			Return(errors.New("redis: nil"))

		f.llm.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			Return("gibberish", nil)

		f.cache.EXPECT().
			Save(gomock.Any(), "conversation:state:sess-4", gomock.Any(), 900).
			Return(errors.New("redis down"))

		state := f.svc.HandleTurn(context.Background(), "sess-4", "hello")

		assert.Equal(t, "unknown", state[model.StateKeyIntent])
	})
}

func TestEndSession(t *testing.T) {
	t.Run("deletes the session state", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Delete(gomock.Any(), "conversation:state:sess-1").
			Return(nil)

		err := f.svc.EndSession(context.Background(), "sess-1")

		assert.NoError(t, err)
	})

	t.Run("propagates delete failures", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Delete(gomock.Any(), "conversation:state:sess-1").
			Return(errors.New("redis down"))

		err := f.svc.EndSession(context.Background(), "sess-1")

		assert.Error(t, err)
	})
}
