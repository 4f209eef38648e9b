package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"foodiespot/infras/otel"
	"foodiespot/infras/postgres"
	"foodiespot/internal/domains/restaurant/model"
	gDto "foodiespot/shared/dto"
	gRepo "foodiespot/shared/repository"
)

type Restaurant interface {
	Insert(ctx context.Context, model model.Restaurant) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Restaurant, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Restaurant, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type Table interface {
	Insert(ctx context.Context, model model.Table) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Table, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Table, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type restaurantImpl struct {
	gRepo.Repository[model.Restaurant]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Restaurant {
	return &restaurantImpl{
		Repository: gRepo.NewRepository[model.Restaurant](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type tableImpl struct {
	gRepo.Repository[model.Table]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTable(db *postgres.Connection, otel otel.Otel) Table {
	return &tableImpl{
		Repository: gRepo.NewRepository[model.Table](model.TablesEntityName, model.TablesTableName, model.FieldTableID, db, otel),
		db:         db,
		otel:       otel,
	}
}
