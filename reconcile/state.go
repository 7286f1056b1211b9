package reconcile

import (
	"github.com/frontdesk-org/frontdesk/forms"
)

// State is the single display state of a merged item.
type State string

const (
	StateProcessed    State = "processed"
	StateReceived     State = "received"
	StateInvited      State = "invited"
	StateSuggested    State = "suggested"
	StateAwaitingForm State = "awaiting-form"
	StateDraft        State = "draft"
)

// Classify maps an item to exactly one state. The priority order is
// load-bearing: a confirmed form always wins over how the item was produced,
// so a confirmed link never renders as a suggestion.
func Classify(item MergedItem) State {
	if confirmed := item.Outcome.Confirmed; confirmed != nil {
		switch confirmed.Status {
		case forms.StatusProcessed:
			return StateProcessed
		case forms.StatusSubmitted:
			return StateReceived
		case forms.StatusDraft:
			return StateInvited
		}
	}

	if item.Kind == KindCalendar && !item.Outcome.IsConfirmed() {
		if item.Outcome.Suggested != nil {
			return StateSuggested
		}
		return StateAwaitingForm
	}

	if item.Kind == KindForm && item.Form != nil && item.Form.IsDraft() {
		return StateDraft
	}

	return StateReceived
}
