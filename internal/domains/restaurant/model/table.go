package model

const (
	TablesTableName  = "restaurant_tables"
	TablesEntityName = "table"

	FieldTableID         = "id"
	FieldTableRestaurant = "restaurant_id"
	FieldSeatingCapacity = "seating_capacity"
	FieldIsAvailable     = "is_available"
)

// Table is a bookable unit inside a restaurant. IsAvailable is the static
// flag; whether the table is free at a given time also depends on the
// absence of a confirmed reservation at that exact timestamp, which is the
// reservation domain's query.
type Table struct {
	ID              string `db:"id"`
	RestaurantID    string `db:"restaurant_id"`
	SeatingCapacity int    `db:"seating_capacity"`
	IsAvailable     bool   `db:"is_available"`
}
