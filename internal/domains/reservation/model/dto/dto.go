package dto

import (
	"time"

	"github.com/google/uuid"

	"foodiespot/internal/domains/reservation/model"
	"foodiespot/shared"
	"foodiespot/shared/constant"
	gDto "foodiespot/shared/dto"
	gModel "foodiespot/shared/model"
	"foodiespot/shared/timezone"
)

type CheckAvailabilityRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	Date         string `json:"date"          validate:"required,datetime=2006-01-02"`
	Time         string `json:"time"          validate:"required,datetime=15:04:05"`
	NumPeople    int    `json:"num_people"    validate:"required,gte=1"`
}

func (c *CheckAvailabilityRequest) ReservationTime() (time.Time, error) {
	return timezone.Parse(constant.DateTimeLayout, c.Date+" "+c.Time)
}

type AvailabilityResponse struct {
	Available       bool                   `json:"available"`
	Message         string                 `json:"message"`
	AvailableTables []model.CandidateTable `json:"available_tables,omitempty"`
}

type BookTableRequest struct {
	RestaurantID    string `json:"restaurant_id"    validate:"required"`
	TableID         string `json:"table_id"         validate:"required"`
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerContact string `json:"customer_contact" validate:"required,max=100"`
	NumPeople       int    `json:"num_people"       validate:"required,gte=1"`
	Date            string `json:"date"             validate:"required,datetime=2006-01-02"`
	Time            string `json:"time"             validate:"required,datetime=15:04:05"`
}

func (b *BookTableRequest) ReservationTime() (time.Time, error) {
	return timezone.Parse(constant.DateTimeLayout, b.Date+" "+b.Time)
}

func (b *BookTableRequest) ToModel(at time.Time) model.Reservation {
	return model.Reservation{
		ID:              uuid.NewString(),
		RestaurantID:    b.RestaurantID,
		TableID:         b.TableID,
		CustomerName:    b.CustomerName,
		CustomerContact: b.CustomerContact,
		NumPeople:       b.NumPeople,
		ReservationTime: at,
		Status:          model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  b.CustomerName,
			ModifiedBy: b.CustomerName,
		},
	}
}

const (
	BookingStatusSuccess = "success"
	BookingStatusFailed  = "failed"
)

type BookingResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	ReservationID   string `json:"reservation_id,omitempty"`
	RestaurantID    string `json:"restaurant_id,omitempty"`
	TableID         string `json:"table_id,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerContact string `json:"customer_contact,omitempty"`
	ReservationTime string `json:"reservation_time,omitempty"`
}

type ReservationResponse struct {
	ID              string `json:"id"`
	RestaurantID    string `json:"restaurant_id"`
	TableID         string `json:"table_id"`
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
	NumPeople       int    `json:"num_people"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RestaurantID = model.RestaurantID
	r.TableID = model.TableID
	r.CustomerName = model.CustomerName
	r.CustomerContact = model.CustomerContact
	r.NumPeople = model.NumPeople
	r.ReservationTime = timezone.Format(model.ReservationTime, constant.DateTimeLayout)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
