// Package rides serves the dashboard ride history. Bookings happen over chat,
// so there is no per-user trip store; the history is a fixed sample set.
package rides

import "github.com/shopspring/decimal"

// Status values a history entry can carry.
const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Ride is a single history entry. Rating is zero for rides that were never
// rated, and the JSON field is omitted in that case.
type Ride struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Pickup      string          `json:"pickup"`
	Destination string          `json:"destination"`
	Fare        decimal.Decimal `json:"fare"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	Driver      string          `json:"driver"`
	Rating      int             `json:"rating,omitempty"`
}

// History returns the sample rides, newest first.
func History() []Ride {
	return []Ride{
		{
			ID:          "RYD001",
			Date:        "2025-01-23",
			Pickup:      "Ogbomoso South",
			Destination: "Ogbomoso North",
			Fare:        decimal.NewFromInt(850),
			Currency:    "NGN",
			Status:      StatusCompleted,
			Driver:      "Adebayo M.",
			Rating:      5,
		},
		{
			ID:          "RYD002",
			Date:        "2025-01-22",
			Pickup:      "Caretaker Market",
			Destination: "LAUTECH",
			Fare:        decimal.NewFromInt(650),
			Currency:    "NGN",
			Status:      StatusCompleted,
			Driver:      "Fatima A.",
			Rating:      4,
		},
		{
			ID:          "RYD003",
			Date:        "2025-01-21",
			Pickup:      "Sabo Area",
			Destination: "Takie Square",
			Fare:        decimal.NewFromInt(450),
			Currency:    "NGN",
			Status:      StatusCancelled,
			Driver:      "Ibrahim K.",
		},
	}
}
