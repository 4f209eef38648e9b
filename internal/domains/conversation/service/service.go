package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"foodiespot/config"
	"foodiespot/infras/groq"
	"foodiespot/infras/otel"
	"foodiespot/internal/domains/conversation/model"
	restaurantDto "foodiespot/internal/domains/restaurant/model/dto"
	"foodiespot/shared"
	"foodiespot/shared/cache"
	"foodiespot/shared/constant"
	"foodiespot/shared/llmjson"
	"foodiespot/shared/timezone"
)

const cacheConversationState = "conversation:state"

const (
	classifyPrompt = "ONLY determine if the user is looking for 'restaurants' or 'reservation'. " +
		"Respond only with a JSON object containing {\"intent\": <value>}, where <value> is either 'restaurants' or 'reservation'. " +
		"If the intent is unclear, return {\"intent\": null}. " +
		"User input: %s"

	restaurantSlotsPrompt = "**Do not** fetch details on your own, only focus on the user input. " +
		"**Only extract** structured details in JSON format with keys: 'city', 'cuisine', 'num_people', 'time'. " +
		"If any detail is missing, return it as null. Do not make any assumptions. " +
		"Times must be 24-hour HH:MM:SS. " +
		"Strictly return only a pure JSON object with no extra text. " +
		"User input: %s"

	reservationSlotsPrompt = "**Do not** fetch details on your own, only focus on the user input. " +
		"**Only extract** structured details in JSON format with keys: 'restaurant_name', 'date', 'time', 'num_people'. " +
		"If any detail is missing, return it as null. Do not make any assumptions. " +
		"Dates must be YYYY-MM-DD and times 24-hour HH:MM:SS. " +
		"Strictly return only a pure JSON object with no extra text. " +
		"User input: %s"
)

// RestaurantFinder is the slice of the catalog the conversation needs:
// recommendations for a discovery turn.
type RestaurantFinder interface {
	Find(ctx context.Context, city, cuisine string) ([]restaurantDto.RestaurantResponse, error)
}

type Conversation interface {
	Classify(ctx context.Context, utterance string) model.Intent
	ExtractRestaurantSlots(ctx context.Context, utterance string) model.RestaurantSlots
	ExtractReservationSlots(ctx context.Context, utterance string) model.ReservationSlots
	ExtractReservationDetails(ctx context.Context, utterance string) model.ReservationSlots
	HandleTurn(ctx context.Context, sessionID, utterance string) model.ConversationState
	EndSession(ctx context.Context, sessionID string) error
}

type serviceImpl struct {
	llm    groq.CompletionClient
	finder RestaurantFinder
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(llm groq.CompletionClient, finder RestaurantFinder, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Conversation {
	return &serviceImpl{
		llm:    llm,
		finder: finder,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// Classify maps an utterance to the closed intent set. Transport failures,
// malformed completion output, and out-of-set values all degrade to unknown.
func (s *serviceImpl) Classify(ctx context.Context, utterance string) model.Intent {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Classify")
	defer scope.End()

	raw, err := s.llm.Complete(ctx, fmt.Sprintf(classifyPrompt, utterance))
	if err != nil {
		log.Warn().Err(err).Msg("intent classification call failed")

		return model.IntentUnknown
	}

	fields, err := llmjson.Extract(raw)
	if err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("intent classification output not parseable")

		return model.IntentUnknown
	}

	value, _ := fields[model.StateKeyIntent].(string)

	return model.ParseIntent(value)
}

// ExtractRestaurantSlots pulls discovery fields out of an utterance. A
// failed call or unparseable output returns all-null slots, never a partial
// batch.
func (s *serviceImpl) ExtractRestaurantSlots(ctx context.Context, utterance string) model.RestaurantSlots {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExtractRestaurantSlots")
	defer scope.End()

	raw, err := s.llm.Complete(ctx, fmt.Sprintf(restaurantSlotsPrompt, utterance))
	if err != nil {
		log.Warn().Err(err).Msg("restaurant slot extraction call failed")

		return model.RestaurantSlots{}
	}

	fields, err := llmjson.Extract(raw)
	if err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("restaurant slot output not parseable")

		return model.RestaurantSlots{}
	}

	return model.RestaurantSlots{
		City:      stringField(fields, model.StateKeyCity),
		Cuisine:   stringField(fields, model.StateKeyCuisine),
		NumPeople: intField(fields, model.StateKeyNumPeople),
		Time:      timeField(fields, model.StateKeyTime),
	}
}

// ExtractReservationSlots pulls booking fields out of an utterance. A
// missing date defaults to today in the application timezone.
func (s *serviceImpl) ExtractReservationSlots(ctx context.Context, utterance string) model.ReservationSlots {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExtractReservationSlots")
	defer scope.End()

	slots := model.ReservationSlots{}

	raw, err := s.llm.Complete(ctx, fmt.Sprintf(reservationSlotsPrompt, utterance))
	if err != nil {
		log.Warn().Err(err).Msg("reservation slot extraction call failed")
	} else {
		fields, extractErr := llmjson.Extract(raw)
		if extractErr != nil {
			log.Warn().Err(extractErr).Str("raw", raw).Msg("reservation slot output not parseable")
		} else {
			slots.RestaurantName = stringField(fields, model.StateKeyRestaurantName)
			slots.Date = dateField(fields, model.StateKeyDate)
			slots.Time = timeField(fields, model.StateKeyTime)
			slots.NumPeople = intField(fields, model.StateKeyNumPeople)
		}
	}

	if slots.Date == nil {
		today := timezone.Now().Format(constant.DateLayout)
		slots.Date = &today
	}

	return slots
}

// ExtractReservationDetails is the one-shot booking form path: every field
// must come out of a single message, so a partial batch is nulled wholesale
// instead of being merged across turns.
func (s *serviceImpl) ExtractReservationDetails(ctx context.Context, utterance string) model.ReservationSlots {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExtractReservationDetails")
	defer scope.End()

	return model.NormalizeReservationDetails(s.ExtractReservationSlots(ctx, utterance))
}

// HandleTurn runs one full conversational turn: classify, extract the
// intent-specific slots, fetch recommendations for a discovery turn, and
// merge everything into the session state. The returned state is the full
// accumulated record, with intent always reflecting the latest turn.
func (s *serviceImpl) HandleTurn(ctx context.Context, sessionID, utterance string) model.ConversationState {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleTurn")
	defer scope.End()

	state := s.loadState(ctx, sessionID)

	intent := s.Classify(ctx, utterance)

	newFields := map[string]any{}

	switch intent {
	case model.IntentRestaurants:
		slots := s.ExtractRestaurantSlots(ctx, utterance)
		newFields = slots.Fields()

		city := stateString(newFields, state, model.StateKeyCity)
		if city != constant.Empty {
			cuisine := stateString(newFields, state, model.StateKeyCuisine)

			recommendations, err := s.finder.Find(ctx, city, cuisine)
			if err != nil {
				log.Error().Err(err).Str("city", city).Msg("failed to fetch recommendations")
			} else {
				newFields[model.StateKeyRecommendations] = recommendations
			}
		}
	case model.IntentReservation:
		slots := s.ExtractReservationSlots(ctx, utterance)
		newFields = slots.Fields()
	case model.IntentUnknown:
	}

	state = model.Merge(state, newFields)
	state[model.StateKeyIntent] = string(intent)

	s.saveState(ctx, sessionID, state)

	return state
}

// EndSession drops the accumulated state for a session.
func (s *serviceImpl) EndSession(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EndSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheConversationState, sessionID))
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to delete conversation state")

		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

func (s *serviceImpl) loadState(ctx context.Context, sessionID string) model.ConversationState {
	state := model.ConversationState{}

	err := s.cache.Get(ctx, shared.BuildCacheKey(cacheConversationState, sessionID), &state)
	if err != nil {
		// a missing key and a degraded redis look the same here; either
		// way the turn starts from an empty state
		return model.ConversationState{}
	}

	return state
}

func (s *serviceImpl) saveState(ctx context.Context, sessionID string, state model.ConversationState) {
	key := shared.BuildCacheKey(cacheConversationState, sessionID)

	err := s.cache.Save(ctx, key, state, s.cfg.Sessions.TTLSeconds)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to save conversation state")
	}
}

// stateString prefers the value extracted this turn, falling back to what
// earlier turns accumulated.
func stateString(newFields map[string]any, state model.ConversationState, key string) string {
	if v, ok := newFields[key].(string); ok && v != "" && v != "null" {
		return v
	}

	if v, ok := state[key].(string); ok && v != "null" {
		return v
	}

	return constant.Empty
}

func stringField(fields map[string]any, key string) *string {
	v, ok := fields[key].(string)
	if !ok {
		return nil
	}

	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "null") {
		return nil
	}

	return &v
}

// intField tolerates the number-or-string ambiguity of completion output.
// Values below 1 are nulled rather than carried.
func intField(fields map[string]any, key string) *int {
	var n int

	switch v := fields[key].(type) {
	case float64:
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil
		}

		n = parsed
	default:
		return nil
	}

	if n < 1 {
		return nil
	}

	return &n
}

func timeField(fields map[string]any, key string) *string {
	raw := stringField(fields, key)
	if raw == nil {
		return nil
	}

	value := *raw
	if _, err := time.Parse("15:04", value); err == nil {
		value += ":00"
	}

	t, err := time.Parse(constant.TimeLayout, value)
	if err != nil {
		return nil
	}

	// re-format so an unpadded hour like "9:00" lands in state as "09:00:00"
	normalized := t.Format(constant.TimeLayout)

	return &normalized
}

func dateField(fields map[string]any, key string) *string {
	raw := stringField(fields, key)
	if raw == nil {
		return nil
	}

	if _, err := time.Parse(constant.DateLayout, *raw); err != nil {
		return nil
	}

	return raw
}
