package models

// Record is a raw customer entry as decoded from the source, before validation.
// JSON numbers are kept as json.Number, SQL NULLs and JSON nulls are nil values.
type Record map[string]any

// Customer is a validated customer record. Coordinates are kept as text to preserve
// the precision of the source data.
type Customer struct {
	Latitude  string `json:"latitude"`  // Latitude in decimal degrees.
	Longitude string `json:"longitude"` // Longitude in decimal degrees.
	UserID    int64  `json:"user_id"`   // UserID identifies the customer within a dataset.
	Name      string `json:"name"`      // Name is the display name used on the invitation.
}
