package reconcile

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/frontdesk-org/frontdesk/calendar"
	"github.com/frontdesk-org/frontdesk/forms"
)

// Tier identifies the matching strategy that produced a suggestion.
type Tier string

const (
	TierSchedule Tier = "schedule" // appointment slot + name containment
	TierEmail    Tier = "email"
	TierPhone    Tier = "phone"
	TierNameDOB  Tier = "name_dob"
	TierName     Tier = "name"
)

// Field labels shown to the confirming human next to a suggestion.
var tierFields = map[Tier]string{
	TierSchedule: "appointment slot + name",
	TierEmail:    "email",
	TierPhone:    "phone",
	TierNameDOB:  "name + birth date",
	TierName:     "name",
}

// Candidate is an algorithm-proposed form for one appointment, alive only
// for the duration of a matching pass.
type Candidate struct {
	Form    *forms.Form
	Score   int
	Signals []string
	Tier    Tier
	Field   string
}

// MatchOutcome is the resolved match of a single appointment: a confirmed
// form (persistent link), a suggested candidate, or nothing.
type MatchOutcome struct {
	Confirmed *forms.Form
	Suggested *Candidate
}

func (o MatchOutcome) IsConfirmed() bool {
	return o.Confirmed != nil
}

func (o MatchOutcome) IsSuggested() bool {
	return o.Confirmed == nil && o.Suggested != nil
}

// MatchResult is the output of one matching pass over a window of
// appointments and the full form pool.
type MatchResult struct {
	// ByAppointment maps appointment external ids to their outcome.
	ByAppointment map[string]MatchOutcome
	// UnlinkedForms are forms not claimed by any appointment and not yet
	// processed; they feed the manual picker.
	UnlinkedForms []*forms.Form
	// Consumed holds the ids of all forms claimed during the pass.
	Consumed mapset.Set[string]
}

// tierFunc is one matching strategy: given the prebuilt indexes, one
// appointment and the set of already-claimed forms, it either produces a
// candidate or passes.
type tierFunc func(idx *formIndex, appointment calendar.Appointment, consumed mapset.Set[string]) *Candidate

// Tiers are tried strictly in this order and the first hit wins.
var tiers = []tierFunc{
	tierSchedule,
	tierEmail,
	tierPhone,
	tierNameDOB,
	tierName,
}

// MatchAppointments runs one full matching pass. Links are authoritative:
// a linked form is confirmed regardless of score. Every other tier only
// suggests. The consumed set spans the entire pass, so a form claimed for
// one appointment can never resurface for another.
func MatchAppointments(appointments []calendar.Appointment, pool []*forms.Form, linkedForms map[string]string) *MatchResult {
	idx := buildFormIndex(pool)
	formsById := make(map[string]*forms.Form, len(pool))
	for _, form := range pool {
		formsById[form.Id] = form
	}

	consumed := mapset.NewThreadUnsafeSet[string]()
	result := &MatchResult{
		ByAppointment: make(map[string]MatchOutcome, len(appointments)),
		Consumed:      consumed,
	}

	for _, appointment := range appointments {
		outcome := MatchOutcome{}

		if formId, ok := linkedForms[appointment.ExternalId]; ok {
			if form := formsById[formId]; form != nil {
				outcome.Confirmed = form
				consumed.Add(form.Id)
				result.ByAppointment[appointment.ExternalId] = outcome
				continue
			}
			// The linked form is gone from the pool; fall through to the
			// suggestion tiers so the appointment is not silently stuck.
		}

		for _, tier := range tiers {
			candidate := tier(idx, appointment, consumed)
			if candidate == nil {
				continue
			}
			candidate.Score, candidate.Signals = Score(AppointmentIdentity(appointment), FormIdentity(candidate.Form))
			outcome.Suggested = candidate
			consumed.Add(candidate.Form.Id)
			break
		}

		result.ByAppointment[appointment.ExternalId] = outcome
	}

	for _, form := range pool {
		if consumed.Contains(form.Id) || form.Status == forms.StatusProcessed {
			continue
		}
		result.UnlinkedForms = append(result.UnlinkedForms, form)
	}

	return result
}

func tierSchedule(idx *formIndex, appointment calendar.Appointment, consumed mapset.Set[string]) *Candidate {
	if appointment.Date == "" || appointment.Time == "" {
		return nil
	}
	form := lookup(idx.bySlot, slotKey(appointment.Date, appointment.Time), consumed)
	if form == nil {
		return nil
	}

	// The slot key carries no identity, so a name check guards against two
	// patients sharing the same time slot.
	appointmentName := NormalizeName(appointment.Name)
	formName := NormalizeName(form.Name)
	if appointmentName == "" || formName == "" {
		return nil
	}
	if appointmentName != formName &&
		!strings.Contains(appointmentName, formName) &&
		!strings.Contains(formName, appointmentName) {
		return nil
	}

	return newCandidate(form, TierSchedule)
}

func tierEmail(idx *formIndex, appointment calendar.Appointment, consumed mapset.Set[string]) *Candidate {
	email := normalizeEmail(appointment.Email)
	if email == "" {
		return nil
	}
	if form := lookup(idx.byEmail, email, consumed); form != nil {
		return newCandidate(form, TierEmail)
	}
	return nil
}

func tierPhone(idx *formIndex, appointment calendar.Appointment, consumed mapset.Set[string]) *Candidate {
	phone := NormalizePhone(appointment.Phone)
	if phone == "" {
		return nil
	}
	if form := lookup(idx.byPhone, phone, consumed); form != nil {
		return newCandidate(form, TierPhone)
	}
	return nil
}

func tierNameDOB(idx *formIndex, appointment calendar.Appointment, consumed mapset.Set[string]) *Candidate {
	name := NormalizeName(appointment.Name)
	if name == "" || appointment.BirthDate == "" {
		return nil
	}
	if form := lookup(idx.byNameDOB, compositeKey(name, appointment.BirthDate), consumed); form != nil {
		return newCandidate(form, TierNameDOB)
	}
	return nil
}

func tierName(idx *formIndex, appointment calendar.Appointment, consumed mapset.Set[string]) *Candidate {
	name := NormalizeName(appointment.Name)
	if name == "" {
		return nil
	}
	if form := lookup(idx.byName, name, consumed); form != nil {
		return newCandidate(form, TierName)
	}
	return nil
}

func lookup(index map[string]*forms.Form, key string, consumed mapset.Set[string]) *forms.Form {
	form := index[key]
	if form == nil || consumed.Contains(form.Id) {
		return nil
	}
	return form
}

func newCandidate(form *forms.Form, tier Tier) *Candidate {
	return &Candidate{
		Form:  form,
		Tier:  tier,
		Field: tierFields[tier],
	}
}
