package api

import (
	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/reconcile"
)

type ReconciliationDto struct {
	CalendarStatus string          `json:"calendarStatus"`
	Stale          bool            `json:"stale"`
	MergedItems    []MergedItemDto `json:"mergedItems"`
	UnlinkedForms  []*forms.Form   `json:"unlinkedForms"`
}

type MergedItemDto struct {
	Type             string         `json:"type"`
	State            string         `json:"state"`
	Date             string         `json:"date,omitempty"`
	Time             string         `json:"time,omitempty"`
	AppointmentId    string         `json:"appointmentId,omitempty"`
	Name             string         `json:"name,omitempty"`
	Email            string         `json:"email,omitempty"`
	Phone            string         `json:"phone,omitempty"`
	BirthDate        string         `json:"birthDate,omitempty"`
	ConsultationType string         `json:"consultationType,omitempty"`
	FormId           string         `json:"formId,omitempty"`
	Suggestion       *SuggestionDto `json:"suggestion,omitempty"`
}

// SuggestionDto carries the transparency fields for the confirming human:
// which tier fired and on which field.
type SuggestionDto struct {
	FormId  string   `json:"formId"`
	Score   int      `json:"score"`
	Signals []string `json:"signals"`
	Tier    string   `json:"tier"`
	Field   string   `json:"field"`
}

type CandidateDto struct {
	Form        *forms.Form `json:"form"`
	Score       int         `json:"score"`
	Signals     []string    `json:"signals"`
	Preselected bool        `json:"preselected"`
}

func NewReconciliationDto(result *reconcile.Result) ReconciliationDto {
	dto := ReconciliationDto{
		CalendarStatus: string(result.CalendarStatus),
		Stale:          result.Stale,
		MergedItems:    make([]MergedItemDto, 0, len(result.Items)),
		UnlinkedForms:  result.UnlinkedForms,
	}
	for _, item := range result.Items {
		dto.MergedItems = append(dto.MergedItems, NewMergedItemDto(item))
	}
	return dto
}

func NewMergedItemDto(item reconcile.MergedItem) MergedItemDto {
	dto := MergedItemDto{
		Type:  string(item.Kind),
		State: string(item.State),
		Date:  item.Date,
		Time:  item.Time,
	}

	switch item.Kind {
	case reconcile.KindCalendar:
		dto.AppointmentId = item.Appointment.ExternalId
		dto.Name = item.Appointment.Name
		dto.Email = item.Appointment.Email
		dto.Phone = item.Appointment.Phone
		dto.BirthDate = item.Appointment.BirthDate
		dto.ConsultationType = item.Appointment.ConsultationType
	case reconcile.KindForm:
		dto.FormId = item.Form.Id
		dto.Name = item.Form.Name
		dto.Email = item.Form.Email
		dto.Phone = item.Form.Phone
		dto.BirthDate = item.Form.BirthDate
	}

	if confirmed := item.Outcome.Confirmed; confirmed != nil {
		dto.FormId = confirmed.Id
	}
	// The picker details are exposed only while the match is an unconfirmed
	// suggestion.
	if item.State == reconcile.StateSuggested {
		suggested := item.Outcome.Suggested
		dto.Suggestion = &SuggestionDto{
			FormId:  suggested.Form.Id,
			Score:   suggested.Score,
			Signals: suggested.Signals,
			Tier:    string(suggested.Tier),
			Field:   suggested.Field,
		}
	}

	return dto
}

func NewCandidateDtos(candidates []reconcile.RankedCandidate) []CandidateDto {
	dtos := make([]CandidateDto, 0, len(candidates))
	for _, candidate := range candidates {
		dtos = append(dtos, CandidateDto{
			Form:        candidate.Form,
			Score:       candidate.Score,
			Signals:     candidate.Signals,
			Preselected: candidate.Preselected,
		})
	}
	return dtos
}
