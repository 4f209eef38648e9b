package model

import (
	"time"

	"foodiespot/shared/constant"
)

const (
	TableName  = "restaurants"
	EntityName = "restaurant"

	FieldID        = "id"
	FieldName      = "name"
	FieldLocation  = "location"
	FieldCuisine   = "cuisine"
	FieldOpenTime  = "open_time"
	FieldCloseTime = "close_time"
)

// Restaurant is immutable reference data owned by the catalog. Operating
// hours are TIME columns scanned as HH:MM:SS strings.
type Restaurant struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Location  string `db:"location"`
	Cuisine   string `db:"cuisine"`
	OpenTime  string `db:"open_time"`
	CloseTime string `db:"close_time"`
}

// IsOpenAt reports whether value (HH:MM:SS, leading zeroes optional) falls
// inside operating hours, boundaries included. The values are compared as
// parsed clock times so an unpadded hour like "9:00:00" is not misread.
func (r *Restaurant) IsOpenAt(value string) bool {
	t, err := time.Parse(constant.TimeLayout, value)
	if err != nil {
		return false
	}

	open, err := time.Parse(constant.TimeLayout, r.OpenTime)
	if err != nil {
		return false
	}

	closing, err := time.Parse(constant.TimeLayout, r.CloseTime)
	if err != nil {
		return false
	}

	return !t.Before(open) && !t.After(closing)
}
