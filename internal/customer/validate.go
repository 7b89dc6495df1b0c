package customer

import (
	"encoding/json"
	"math"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// Record keys every customer entry must carry.
const (
	KeyLatitude  = "latitude"
	KeyLongitude = "longitude"
	KeyUserID    = "user_id"
	KeyName      = "name"
)

// IsCustomerValid reports whether latitude, longitude and name are strings and
// user_id is an integral number. Missing keys, nulls and wrong types make the record invalid.
func IsCustomerValid(rec models.Record) bool {
	_, ok := ToCustomer(rec)
	return ok
}

// ToCustomer converts a raw record into a Customer. The second value is false when
// the record is not valid.
func ToCustomer(rec models.Record) (models.Customer, bool) {
	latitude, okLat := rec[KeyLatitude].(string)
	longitude, okLon := rec[KeyLongitude].(string)
	name, okName := rec[KeyName].(string)
	userID, okID := toUserID(rec[KeyUserID])

	if !okLat || !okLon || !okName || !okID {
		return models.Customer{}, false
	}

	return models.Customer{
		Latitude:  latitude,
		Longitude: longitude,
		UserID:    userID,
		Name:      name,
	}, true
}

func toUserID(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		if id, err := v.Int64(); err == nil {
			return id, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return fromFloat(f)
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return fromFloat(v)
	default:
		return 0, false
	}
}

func fromFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
