package test

import (
	"context"

	"github.com/frontdesk-org/frontdesk/calendar"
)

// StaticProvider is a test double returning a fixed feed.
type StaticProvider struct {
	Result []calendar.Appointment
	Status calendar.Status
	Calls  int
}

var _ calendar.Provider = &StaticProvider{}

func NewStaticProvider(appointments ...calendar.Appointment) *StaticProvider {
	return &StaticProvider{
		Result: appointments,
		Status: calendar.StatusOK,
	}
}

func (p *StaticProvider) Appointments(ctx context.Context, from, to string) ([]calendar.Appointment, calendar.Status) {
	p.Calls++
	if p.Status != calendar.StatusOK {
		return nil, p.Status
	}
	return p.Result, p.Status
}
