package dto

import (
	"foodiespot/internal/domains/restaurant/model"
	"foodiespot/shared"
)

type RestaurantResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Cuisine   string `json:"cuisine"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

func (r *RestaurantResponse) FromModel(model model.Restaurant) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Cuisine = model.Cuisine
	r.OpenTime = model.OpenTime
	r.CloseTime = model.CloseTime
}

type TableResponse struct {
	ID              string `json:"id"`
	RestaurantID    string `json:"restaurant_id"`
	SeatingCapacity int    `json:"seating_capacity"`
	IsAvailable     bool   `json:"is_available"`
}

func (t *TableResponse) FromModel(model model.Table) {
	t.ID = model.ID
	t.RestaurantID = model.RestaurantID
	t.SeatingCapacity = model.SeatingCapacity
	t.IsAvailable = model.IsAvailable
}

type GetRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetRestaurantsResponse) FromModels(models []model.Restaurant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Restaurants = make([]RestaurantResponse, len(models))
	for i, mod := range models {
		r.Restaurants[i].FromModel(mod)
	}
}
