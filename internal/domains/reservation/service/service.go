package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"foodiespot/config"
	"foodiespot/infras/kafka"
	"foodiespot/infras/otel"
	"foodiespot/internal/domains/reservation/model"
	"foodiespot/internal/domains/reservation/model/dto"
	"foodiespot/internal/domains/reservation/repository"
	restaurantModel "foodiespot/internal/domains/restaurant/model"
	restaurantRepo "foodiespot/internal/domains/restaurant/repository"
	"foodiespot/shared"
	"foodiespot/shared/constant"
	gDto "foodiespot/shared/dto"
	"foodiespot/shared/failure"
	"foodiespot/shared/timezone"
)

type Reservation interface {
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) dto.AvailabilityResponse
	Book(ctx context.Context, req dto.BookTableRequest) dto.BookingResponse
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo           repository.Reservation
	restaurantRepo restaurantRepo.Restaurant
	cfg            *config.Config
	kafka          kafka.Client
	otel           otel.Otel
}

func New(repo repository.Reservation, restaurantRepo restaurantRepo.Restaurant, cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:           repo,
		restaurantRepo: restaurantRepo,
		cfg:            cfg,
		kafka:          kafkaClient,
		otel:           otel,
	}
}

// CheckAvailability reports the tables free for a party at an exact slot.
// Negative outcomes (unknown restaurant, closed hours, no tables) come back
// as a response payload, never as an error.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) dto.AvailabilityResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()

	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(req.RestaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("restaurantID", req.RestaurantID).Msg("failed to get restaurant for availability check")

		return dto.AvailabilityResponse{Available: false, Message: "could not check availability, please try again"}
	}

	if restaurant.ID == constant.Empty {
		return dto.AvailabilityResponse{Available: false, Message: "restaurant not found"}
	}

	if !restaurant.IsOpenAt(req.Time) {
		return dto.AvailabilityResponse{
			Available: false,
			Message:   fmt.Sprintf("%s is closed at %s, opening hours are %s to %s", restaurant.Name, req.Time, restaurant.OpenTime, restaurant.CloseTime),
		}
	}

	at, err := req.ReservationTime()
	if err != nil {
		return dto.AvailabilityResponse{Available: false, Message: "invalid reservation date or time"}
	}

	tables, err := s.repo.CandidateTables(ctx, req.RestaurantID, req.NumPeople, at)
	if err != nil {
		log.Error().Err(err).Str("restaurantID", req.RestaurantID).Msg("failed to get candidate tables")

		return dto.AvailabilityResponse{Available: false, Message: "could not check availability, please try again"}
	}

	if len(tables) == 0 {
		return dto.AvailabilityResponse{
			Available: false,
			Message:   fmt.Sprintf("no tables for %d people at %s on %s", req.NumPeople, req.Time, req.Date),
		}
	}

	return dto.AvailabilityResponse{
		Available:       true,
		Message:         fmt.Sprintf("%d table(s) available", len(tables)),
		AvailableTables: tables,
	}
}

// Book claims a table for an exact slot. The reservation is inserted as
// pending and promoted to confirmed; a unique index on the live slot makes
// the database pick the winner when two bookings race, and the loser gets a
// failed response instead of a double booking.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookTableRequest) dto.BookingResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()

	availability := s.CheckAvailability(ctx, dto.CheckAvailabilityRequest{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		Time:         req.Time,
		NumPeople:    req.NumPeople,
	})
	if !availability.Available {
		return dto.BookingResponse{Status: dto.BookingStatusFailed, Message: availability.Message}
	}

	if !candidateContains(availability.AvailableTables, req.TableID) {
		return dto.BookingResponse{Status: dto.BookingStatusFailed, Message: "requested table is not available for this slot"}
	}

	at, err := req.ReservationTime()
	if err != nil {
		return dto.BookingResponse{Status: dto.BookingStatusFailed, Message: "invalid reservation date or time"}
	}

	reservation := req.ToModel(at)

	err = s.repo.Insert(ctx, reservation)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			log.Warn().
				Str("tableID", req.TableID).
				Time("reservationTime", at).
				Msg("lost booking race, slot already taken")

			s.publishEvent(ctx, model.Event{
				Type:            model.EventReservationFailed,
				RestaurantID:    req.RestaurantID,
				TableID:         req.TableID,
				ReservationTime: timezone.Format(at, constant.DateTimeLayout),
				Status:          model.StatusFailed,
			})

			return dto.BookingResponse{Status: dto.BookingStatusFailed, Message: "table already booked for this time"}
		}

		log.Error().Err(err).Msg("failed to insert reservation")

		return dto.BookingResponse{Status: dto.BookingStatusFailed, Message: "could not complete booking, please try again"}
	}

	err = s.repo.Update(ctx,
		map[string]any{model.FieldStatus: model.StatusConfirmed},
		shared.FilterByID(reservation.ID, model.FieldID, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to confirm reservation")

		s.markFailed(ctx, reservation.ID)

		return dto.BookingResponse{Status: dto.BookingStatusFailed, Message: "could not complete booking, please try again"}
	}

	s.publishEvent(ctx, model.Event{
		Type:            model.EventReservationConfirmed,
		ReservationID:   reservation.ID,
		RestaurantID:    reservation.RestaurantID,
		TableID:         reservation.TableID,
		ReservationTime: timezone.Format(at, constant.DateTimeLayout),
		Status:          model.StatusConfirmed,
	})

	return dto.BookingResponse{
		Status:          dto.BookingStatusSuccess,
		Message:         "reservation confirmed",
		ReservationID:   reservation.ID,
		RestaurantID:    reservation.RestaurantID,
		TableID:         reservation.TableID,
		CustomerName:    reservation.CustomerName,
		CustomerContact: reservation.CustomerContact,
		ReservationTime: timezone.Format(at, constant.DateTimeLayout),
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if mod.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) markFailed(ctx context.Context, id string) {
	err := s.repo.Update(ctx,
		map[string]any{model.FieldStatus: model.StatusFailed},
		shared.FilterByID(id, model.FieldID, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to mark reservation as failed")
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, event model.Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ReservationEvents, kafka.Message{
			Key:   event.RestaurantID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("eventType", event.Type).Msg("failed to publish reservation event")
		}
	}()
}

func candidateContains(tables []model.CandidateTable, tableID string) bool {
	for _, t := range tables {
		if t.ID == tableID {
			return true
		}
	}

	return false
}
