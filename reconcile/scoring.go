package reconcile

import (
	"strings"

	"github.com/frontdesk-org/frontdesk/calendar"
	"github.com/frontdesk-org/frontdesk/forms"
)

// Signal labels attached to a score for display to the confirming human.
const (
	SignalEmail           = "email"
	SignalPhone           = "phone"
	SignalName            = "name"
	SignalNamePartial     = "name_partial"
	SignalBirthDate       = "birth_date"
	SignalAppointmentDate = "appointment_date"
)

const (
	emailPoints           = 40
	phonePoints           = 30
	nameExactPoints       = 20
	namePartialPoints     = 15
	birthDatePoints       = 20
	appointmentDatePoints = 10

	// MaxScore is the sum of all signals with the name counted once.
	MaxScore = emailPoints + phonePoints + nameExactPoints + birthDatePoints + appointmentDatePoints
)

// Identity is the comparable projection of either side of a match. Missing
// fields are empty strings and contribute nothing to the score.
type Identity struct {
	Name            string
	Email           string
	Phone           string
	BirthDate       string
	AppointmentDate string
}

func AppointmentIdentity(a calendar.Appointment) Identity {
	return Identity{
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		BirthDate:       a.BirthDate,
		AppointmentDate: a.Date,
	}
}

func FormIdentity(f *forms.Form) Identity {
	return Identity{
		Name:            f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		BirthDate:       f.BirthDate,
		AppointmentDate: f.AppointmentDate,
	}
}

// Score computes the additive similarity between two identities, 0..MaxScore,
// with the contributing signal labels. Name points are exclusive: exact
// equality scores 20, substring containment 15, never both.
func Score(a, b Identity) (int, []string) {
	score := 0
	var signals []string

	if email := normalizeEmail(a.Email); email != "" && email == normalizeEmail(b.Email) {
		score += emailPoints
		signals = append(signals, SignalEmail)
	}

	if phone := NormalizePhone(a.Phone); phone != "" && phone == NormalizePhone(b.Phone) {
		score += phonePoints
		signals = append(signals, SignalPhone)
	}

	aName := NormalizeName(a.Name)
	bName := NormalizeName(b.Name)
	if aName != "" && bName != "" {
		if aName == bName {
			score += nameExactPoints
			signals = append(signals, SignalName)
		} else if strings.Contains(aName, bName) || strings.Contains(bName, aName) {
			score += namePartialPoints
			signals = append(signals, SignalNamePartial)
		}
	}

	if a.BirthDate != "" && a.BirthDate == b.BirthDate {
		score += birthDatePoints
		signals = append(signals, SignalBirthDate)
	}

	if a.AppointmentDate != "" && a.AppointmentDate == b.AppointmentDate {
		score += appointmentDatePoints
		signals = append(signals, SignalAppointmentDate)
	}

	return score, signals
}
