package controllers

import (
	"net/http"

	"github.com/myryde/myryde-backend/api/responses"
	"github.com/myryde/myryde-backend/api/validators"
	"github.com/myryde/myryde-backend/internal/auth"
	"github.com/myryde/myryde-backend/internal/booking"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
	"github.com/myryde/myryde-backend/pkg/logger"
)

type bookingRequest struct {
	Pickup      string `json:"pickup" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	RideType    string `json:"rideType"`
}

// BookingOptions returns the ride catalog and the homepage quick link.
func BookingOptions(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"options":   booking.Options(),
			"quickLink": svc.QuickLink(),
		})
	}
}

// BookingHandoff composes the WhatsApp link for the signed-in user's booking.
func BookingHandoff(svc *booking.Service, authSvc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || authSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		user, ok := authSvc.CurrentUser(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in required"))
			return
		}

		var body bookingRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		handoff, err := svc.BuildHandoff(booking.HandoffRequest{
			FullName:    user.FullName,
			Phone:       user.Phone,
			Pickup:      body.Pickup,
			Destination: body.Destination,
			RideType:    booking.RideType(body.RideType),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]*booking.Handoff{"handoff": handoff})
	}
}
