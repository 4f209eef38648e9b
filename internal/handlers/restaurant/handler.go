package restaurant

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"foodiespot/infras/otel"
	"foodiespot/internal/domains/restaurant/model"
	"foodiespot/internal/domains/restaurant/model/dto"
	"foodiespot/internal/domains/restaurant/service"
	"foodiespot/shared/constant"
	gDto "foodiespot/shared/dto"
	"foodiespot/transport/http/response"
)

type Handler struct {
	service service.Restaurant
	otel    otel.Otel
}

func New(service service.Restaurant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/restaurants", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRestaurants)
		routerGroup.Get("/{id}", handler.GetRestaurantByID)
		routerGroup.Get("/{id}/tables", handler.GetRestaurantTables)
	})
}

// GetRestaurants retrieves restaurants with optional filtering.
// @Summary Get restaurants
// @Description Retrieve restaurants with optional city/cuisine filtering and pagination.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Filter by city (exact match)"
// @Param cuisine query string false "Filter by cuisine (substring match)"
// @Success 200 {object} response.Data[dto.GetRestaurantsResponse] "List of restaurants"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants [get]
func (handler *Handler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	location := r.URL.Query().Get(model.FieldLocation)
	cuisine := r.URL.Query().Get(model.FieldCuisine)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorEq,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if cuisine != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCuisine,
			Operator: gDto.FilterOperatorLike,
			Value:    cuisine,
			Table:    model.TableName,
		})
	}

	restaurants, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurants retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurants)
}

// GetRestaurantByID retrieves a restaurant by its ID.
// @Summary Get a restaurant by ID
// @Description Retrieve a restaurant by its unique identifier.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} response.Data[dto.RestaurantResponse] "Restaurant details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id} [get]
func (handler *Handler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	restaurant, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant by ID")

		response.WithError(w, err)

		return
	}

	res := dto.RestaurantResponse{}
	res.FromModel(restaurant)

	scope.AddEvent("Restaurant retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetRestaurantTables retrieves the tables of a restaurant.
// @Summary Get a restaurant's tables
// @Description Retrieve every table belonging to a restaurant, smallest first.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} response.Data[[]dto.TableResponse] "List of tables"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/tables [get]
func (handler *Handler) GetRestaurantTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantTables")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	tables, err := handler.service.GetTables(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant tables retrieved successfully")

	response.WithJSON(w, http.StatusOK, tables)
}
