package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"foodiespot/infras/otel"
	"foodiespot/infras/postgres"
	"foodiespot/internal/domains/reservation/model"
	"foodiespot/shared/constant"
	gDto "foodiespot/shared/dto"
	"foodiespot/shared/logger"
	gRepo "foodiespot/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	CandidateTables(ctx context.Context, restaurantID string, numPeople int, at time.Time) ([]model.CandidateTable, error)
}

type reservationImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &reservationImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CandidateTables returns every table at the restaurant that seats the party
// and has no live reservation at the exact requested time. Failed reservations
// do not block a slot.
func (repo *reservationImpl) CandidateTables(ctx context.Context, restaurantID string, numPeople int, at time.Time) ([]model.CandidateTable, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.CandidateTables", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := `SELECT t.id, t.seating_capacity
		FROM restaurant_tables t
		WHERE t.restaurant_id = :restaurant_id
		AND t.is_available = TRUE
		AND t.seating_capacity >= :num_people
		AND NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.table_id = t.id
			AND r.reservation_time = :reservation_time
			AND r.status <> :status_failed
		)
		ORDER BY t.seating_capacity ASC, t.id ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"restaurant_id":    restaurantID,
		"num_people":       numPeople,
		"reservation_time": at,
		"status_failed":    model.StatusFailed,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	tables := []model.CandidateTable{}

	err = prepare.SelectContext(ctx, &tables, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get candidate tables (%s): %w", model.EntityName, err)
	}

	return tables, nil
}
