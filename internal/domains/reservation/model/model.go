package model

import (
	"time"

	"foodiespot/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldRestaurantID    = "restaurant_id"
	FieldTableID         = "table_id"
	FieldCustomerName    = "customer_name"
	FieldCustomerContact = "customer_contact"
	FieldNumPeople       = "num_people"
	FieldReservationTime = "reservation_time"
	FieldStatus          = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

type Reservation struct {
	ID              string    `db:"id"`
	RestaurantID    string    `db:"restaurant_id"`
	TableID         string    `db:"table_id"`
	CustomerName    string    `db:"customer_name"`
	CustomerContact string    `db:"customer_contact"`
	NumPeople       int       `db:"num_people"`
	ReservationTime time.Time `db:"reservation_time"`
	Status          string    `db:"status"`
	model.Metadata
}

// CandidateTable is a table that passed the capacity, availability-flag,
// and no-conflicting-reservation filters for a requested slot.
type CandidateTable struct {
	ID              string `db:"id"               json:"id"`
	SeatingCapacity int    `db:"seating_capacity" json:"seating_capacity"`
}

const (
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationFailed    = "reservation.failed"
)

// Event is the payload published to the reservation-events topic after a
// booking reaches a terminal status.
type Event struct {
	Type            string `json:"type"`
	ReservationID   string `json:"reservation_id,omitempty"`
	RestaurantID    string `json:"restaurant_id"`
	TableID         string `json:"table_id"`
	ReservationTime string `json:"reservation_time"`
	Status          string `json:"status"`
}
