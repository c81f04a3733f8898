package controllers

import (
	"net/http"

	"github.com/myryde/myryde-backend/api/responses"
	"github.com/myryde/myryde-backend/internal/rides"
)

// RideHistory returns the dashboard ride history.
func RideHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string][]rides.Ride{
			"rides": rides.History(),
		})
	}
}
