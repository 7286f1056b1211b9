package reconcile

import (
	"github.com/frontdesk-org/frontdesk/forms"
)

// formIndex holds the precomputed exact-key lookups backing the suggestion tiers.
// Keys are normalized; a key claimed by several forms resolves to the most
// recently submitted non-draft form at build time.
type formIndex struct {
	bySlot    map[string]*forms.Form // appointment date + time
	byEmail   map[string]*forms.Form
	byPhone   map[string]*forms.Form
	byNameDOB map[string]*forms.Form
	byName    map[string]*forms.Form
}

func buildFormIndex(pool []*forms.Form) *formIndex {
	idx := &formIndex{
		bySlot:    make(map[string]*forms.Form),
		byEmail:   make(map[string]*forms.Form),
		byPhone:   make(map[string]*forms.Form),
		byNameDOB: make(map[string]*forms.Form),
		byName:    make(map[string]*forms.Form),
	}

	for _, form := range pool {
		name := NormalizeName(form.Name)

		if form.AppointmentDate != "" && form.AppointmentTime != "" {
			insertForm(idx.bySlot, slotKey(form.AppointmentDate, form.AppointmentTime), form)
		}
		if email := normalizeEmail(form.Email); email != "" {
			insertForm(idx.byEmail, email, form)
		}
		if phone := NormalizePhone(form.Phone); phone != "" {
			insertForm(idx.byPhone, phone, form)
		}
		if name != "" && form.BirthDate != "" {
			insertForm(idx.byNameDOB, compositeKey(name, form.BirthDate), form)
		}
		if name != "" {
			insertForm(idx.byName, name, form)
		}
	}

	return idx
}

func insertForm(index map[string]*forms.Form, key string, form *forms.Form) {
	index[key] = preferredForm(index[key], form)
}

// preferredForm resolves key collisions: submitted/processed beats draft,
// then the most recent submission wins.
func preferredForm(existing, candidate *forms.Form) *forms.Form {
	if existing == nil {
		return candidate
	}
	if existing.IsDraft() != candidate.IsDraft() {
		if existing.IsDraft() {
			return candidate
		}
		return existing
	}
	if candidate.SubmissionTime().After(existing.SubmissionTime()) {
		return candidate
	}
	return existing
}

func slotKey(date, time string) string {
	return date + "|" + time
}

func compositeKey(name, birthDate string) string {
	return name + "|" + birthDate
}
