package calendar

import (
	"context"
)

// Status reports the outcome of a feed query. NotConfigured and Unavailable
// are distinct on purpose: the reconciler filters dated orphan forms only
// when a feed is actually configured.
type Status string

const (
	StatusOK            Status = "ok"
	StatusNotConfigured Status = "not_configured"
	StatusUnavailable   Status = "unavailable"
)

// Appointment is a calendar feed entry. It is ephemeral: the feed is
// re-fetched for every query window and only ExternalId is a stable identity.
type Appointment struct {
	ExternalId       string `json:"externalId"`
	Name             string `json:"name"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	BirthDate        string `json:"birthDate"`
	ConsultationType string `json:"consultationType"`
}

type Provider interface {
	// Appointments never returns an error; transport and auth failures are
	// collapsed into StatusUnavailable so callers can degrade gracefully.
	Appointments(ctx context.Context, from, to string) ([]Appointment, Status)
}
