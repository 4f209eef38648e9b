package model

// Intent is the closed set of things a user can ask for in a turn.
type Intent string

const (
	IntentRestaurants Intent = "restaurants"
	IntentReservation Intent = "reservation"
	IntentUnknown     Intent = "unknown"
)

// ParseIntent maps a raw classification value to the closed set. Anything
// outside the set, including empty or stringified nulls, is unknown.
func ParseIntent(raw string) Intent {
	switch Intent(raw) {
	case IntentRestaurants, IntentReservation:
		return Intent(raw)
	default:
		return IntentUnknown
	}
}

const (
	StateKeyIntent          = "intent"
	StateKeyCity            = "city"
	StateKeyCuisine         = "cuisine"
	StateKeyNumPeople       = "num_people"
	StateKeyTime            = "time"
	StateKeyDate            = "date"
	StateKeyRestaurantName  = "restaurant_name"
	StateKeyRecommendations = "recommendations"
)

// ConversationState is the accumulating per-session record of everything
// the user has told us so far.
type ConversationState map[string]any

// Merge folds newFields into current without mutating it. A key is only
// overwritten when the new value is present: nils, empty strings, and the
// literal string "null" leak out of completion output and must never clobber
// a value collected on an earlier turn.
func Merge(current ConversationState, newFields map[string]any) ConversationState {
	merged := make(ConversationState, len(current)+len(newFields))
	for key, value := range current {
		merged[key] = value
	}

	for key, value := range newFields {
		if isPresent(value) {
			merged[key] = value
		}
	}

	return merged
}

func isPresent(value any) bool {
	if value == nil {
		return false
	}

	if s, ok := value.(string); ok {
		return s != "" && s != "null"
	}

	return true
}

// RestaurantSlots are the fields pulled from a discovery utterance. A nil
// field means the utterance did not mention it.
type RestaurantSlots struct {
	City      *string `json:"city"`
	Cuisine   *string `json:"cuisine"`
	NumPeople *int    `json:"num_people"`
	Time      *string `json:"time"`
}

func (s RestaurantSlots) Fields() map[string]any {
	return map[string]any{
		StateKeyCity:      deref(s.City),
		StateKeyCuisine:   deref(s.Cuisine),
		StateKeyNumPeople: derefInt(s.NumPeople),
		StateKeyTime:      deref(s.Time),
	}
}

// ReservationSlots are the fields pulled from a booking utterance.
type ReservationSlots struct {
	RestaurantName *string `json:"restaurant_name"`
	Date           *string `json:"date"`
	Time           *string `json:"time"`
	NumPeople      *int    `json:"num_people"`
}

func (s ReservationSlots) Fields() map[string]any {
	return map[string]any{
		StateKeyRestaurantName: deref(s.RestaurantName),
		StateKeyDate:           deref(s.Date),
		StateKeyTime:           deref(s.Time),
		StateKeyNumPeople:      derefInt(s.NumPeople),
	}
}

// Complete reports whether every booking slot is filled.
func (s ReservationSlots) Complete() bool {
	return s.RestaurantName != nil && s.Date != nil && s.Time != nil && s.NumPeople != nil
}

// NormalizeReservationDetails applies the all-or-nothing rule for the
// booking form path: a partially filled set of details is as useless as an
// empty one, so any missing field nulls the whole batch.
func NormalizeReservationDetails(s ReservationSlots) ReservationSlots {
	if !s.Complete() {
		return ReservationSlots{}
	}

	return s
}

func deref(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func derefInt(i *int) any {
	if i == nil {
		return nil
	}

	return *i
}
