package links

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("link not found")

// Link is a human-confirmed appointment-to-form override. Once present it is
// authoritative: the matcher reports the referenced form as confirmed without
// consulting any similarity signal.
type Link struct {
	AppointmentId string    `bson:"_id" json:"appointmentId"`
	FormId        string    `bson:"formId" json:"formId"`
	UpdatedTime   time.Time `bson:"updatedTime" json:"updatedTime"`
}

type Service interface {
	Get(ctx context.Context, appointmentId string) (*Link, error)
	// GetAll returns the full appointment -> form mapping for a matching pass.
	GetAll(ctx context.Context) (map[string]string, error)
	List(ctx context.Context) ([]*Link, error)
	// Set points appointmentId at formId. Any other appointment previously
	// pointing at the same form loses its link in the same write, keeping a
	// form confirmed for at most one appointment.
	Set(ctx context.Context, appointmentId, formId string) error
	Delete(ctx context.Context, appointmentId string) error
}
