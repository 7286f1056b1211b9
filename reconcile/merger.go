package reconcile

import (
	"sort"

	"github.com/frontdesk-org/frontdesk/calendar"
	"github.com/frontdesk-org/frontdesk/forms"
)

type ItemKind string

const (
	KindCalendar ItemKind = "calendar"
	KindForm     ItemKind = "form"
)

// MergedItem is one display row: either a calendar appointment with its
// resolved match, or a standalone form with no appointment behind it.
// Rebuilt on every pass, never persisted.
type MergedItem struct {
	Kind        ItemKind
	Appointment *calendar.Appointment
	Form        *forms.Form
	Outcome     MatchOutcome
	State       State
	Date        string
	Time        string
}

// MergeItems combines appointments and leftover forms into a single ordered
// list. With a configured calendar, date-bearing orphan forms are assumed to
// belong to some appointment and are hidden to avoid duplicate rows; only
// undated walk-in forms show standalone.
func MergeItems(appointments []calendar.Appointment, result *MatchResult, pool []*forms.Form, calendarConfigured bool) []MergedItem {
	items := make([]MergedItem, 0, len(appointments)+len(pool))

	for i := range appointments {
		appointment := &appointments[i]
		item := MergedItem{
			Kind:        KindCalendar,
			Appointment: appointment,
			Outcome:     result.ByAppointment[appointment.ExternalId],
			Date:        appointment.Date,
			Time:        appointment.Time,
		}
		item.State = Classify(item)
		items = append(items, item)
	}

	for _, form := range pool {
		if result.Consumed.Contains(form.Id) {
			continue
		}
		if calendarConfigured && form.AppointmentDate != "" {
			continue
		}
		item := MergedItem{
			Kind: KindForm,
			Form: form,
			Date: form.AppointmentDate,
			Time: form.AppointmentTime,
		}
		item.State = Classify(item)
		items = append(items, item)
	}

	sortItems(items)
	return items
}

// sortItems orders the list into chronological date groups with the no-date
// bucket last; within a group, time ascending with missing time last.
func sortItems(items []MergedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			if items[i].Date == "" {
				return false
			}
			if items[j].Date == "" {
				return true
			}
			return items[i].Date < items[j].Date
		}
		if items[i].Time != items[j].Time {
			if items[i].Time == "" {
				return false
			}
			if items[j].Time == "" {
				return true
			}
			return items[i].Time < items[j].Time
		}
		return false
	})
}
