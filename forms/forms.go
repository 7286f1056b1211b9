package forms

import (
	"context"
	"errors"
	"time"

	"github.com/frontdesk-org/frontdesk/store"
)

var ErrNotFound = errors.New("form not found")
var ErrInvalidTransition = errors.New("invalid form status transition")

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusProcessed = "processed"
)

type Service interface {
	Get(ctx context.Context, id string) (*Form, error)
	List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Form, error)
	Create(ctx context.Context, form Form) (*Form, error)
	Update(ctx context.Context, id string, form Form) (*Form, error)
	Submit(ctx context.Context, id string) (*Form, error)
	Process(ctx context.Context, id string) (*Form, error)
	Remove(ctx context.Context, id string) error
}

// Form is a patient-submitted intake form. Identity fields are free text
// exactly as the patient typed them; comparison happens in the reconcile
// package, never here.
type Form struct {
	Id              string     `bson:"_id" json:"id"`
	Status          string     `bson:"status" json:"status"`
	Name            string     `bson:"name,omitempty" json:"name,omitempty"`
	Email           string     `bson:"email,omitempty" json:"email,omitempty"`
	Phone           string     `bson:"phone,omitempty" json:"phone,omitempty"`
	BirthDate       string     `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	AppointmentDate string     `bson:"appointmentDate,omitempty" json:"appointmentDate,omitempty"`
	AppointmentTime string     `bson:"appointmentTime,omitempty" json:"appointmentTime,omitempty"`
	CreatedTime     time.Time  `bson:"createdTime" json:"createdTime"`
	UpdatedTime     time.Time  `bson:"updatedTime" json:"updatedTime"`
	SubmittedTime   *time.Time `bson:"submittedTime,omitempty" json:"submittedTime,omitempty"`
}

// SubmissionTime is used to break ties when multiple forms share a lookup
// key. Drafts have no submission time and fall back to their last update.
func (f *Form) SubmissionTime() time.Time {
	if f.SubmittedTime != nil {
		return *f.SubmittedTime
	}
	return f.UpdatedTime
}

func (f *Form) IsDraft() bool {
	return f.Status == StatusDraft
}

type Filter struct {
	Status   *string
	DateFrom *string
	DateTo   *string
}
