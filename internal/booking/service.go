// Package booking formats WhatsApp hand-off links for ride requests. There is
// no dispatch backend; every booking ends as a pre-composed chat message the
// rider sends to the operator.
package booking

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/myryde/myryde-backend/pkg/config"
	pkgerrors "github.com/myryde/myryde-backend/pkg/errors"
)

// RideType identifies the vehicle class a rider can request.
type RideType string

const (
	RideTypeCar  RideType = "car"
	RideTypeBike RideType = "bike"
)

// RideOption is a catalog entry shown on the booking form. BaseFare is
// display decoration only; the operator quotes the real price in chat.
type RideOption struct {
	Type     RideType        `json:"type"`
	Label    string          `json:"label"`
	BaseFare decimal.Decimal `json:"baseFare"`
	Currency string          `json:"currency"`
}

// Options returns the ride catalog in display order.
func Options() []RideOption {
	return []RideOption{
		{Type: RideTypeCar, Label: "Car", BaseFare: decimal.NewFromInt(300), Currency: "NGN"},
		{Type: RideTypeBike, Label: "Bike", BaseFare: decimal.NewFromInt(200), Currency: "NGN"},
	}
}

// HandoffRequest carries the booking form fields plus the rider identity
// pulled from the session.
type HandoffRequest struct {
	FullName    string
	Phone       string
	Pickup      string
	Destination string
	RideType    RideType
}

// Handoff is a composed WhatsApp link and the message it carries.
type Handoff struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Service builds hand-off links against a configured WhatsApp number.
type Service struct {
	cfg config.BookingConfig
}

func NewService(cfg config.BookingConfig) *Service {
	return &Service{cfg: cfg}
}

// BuildHandoff validates the request and composes the chat link. Pickup and
// destination are the only required form fields; name and phone pass through
// verbatim, even when blank.
func (s *Service) BuildHandoff(req HandoffRequest) (*Handoff, error) {
	if strings.TrimSpace(req.Pickup) == "" || strings.TrimSpace(req.Destination) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please enter both pickup and destination locations")
	}

	rideType := req.RideType
	if rideType != RideTypeBike {
		rideType = RideTypeCar
	}

	message := fmt.Sprintf(
		"Hi My Ryde! I want to book a %s ride.\n\nName: %s\nPhone: %s\nPickup: %s\nDestination: %s\n\nPlease confirm availability and pricing.",
		rideType, req.FullName, req.Phone, req.Pickup, req.Destination,
	)

	return &Handoff{Message: message, URL: s.chatURL(message)}, nil
}

// QuickLink is the homepage "Book Now" hand-off with its fixed message.
func (s *Service) QuickLink() Handoff {
	message := "Hi My Ryde! I want to book a ride in Ogbomosho. Please help me with the details."
	return Handoff{Message: message, URL: s.chatURL(message)}
}

func (s *Service) chatURL(message string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + s.cfg.WhatsAppNumber,
		RawQuery: "text=" + url.QueryEscape(message),
	}
	return u.String()
}
