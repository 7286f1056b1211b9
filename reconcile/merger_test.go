package reconcile_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frontdesk-org/frontdesk/calendar"
	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/reconcile"
)

var _ = Describe("MergeItems", func() {
	emptyResult := func(pool []*forms.Form, appointments []calendar.Appointment) *reconcile.MatchResult {
		return reconcile.MatchAppointments(appointments, pool, map[string]string{})
	}

	It("always includes one item per appointment", func() {
		appointments := []calendar.Appointment{
			{ExternalId: "A1", Date: "2026-02-20", Time: "09:00"},
			{ExternalId: "A2", Date: "2026-02-20", Time: "10:00"},
		}

		items := reconcile.MergeItems(appointments, emptyResult(nil, appointments), nil, true)

		Expect(items).To(HaveLen(2))
		Expect(items[0].Kind).To(Equal(reconcile.KindCalendar))
		Expect(items[1].Kind).To(Equal(reconcile.KindCalendar))
	})

	It("hides dated orphan forms when a calendar is configured", func() {
		dated := submittedForm("F-dated")
		dated.AppointmentDate = "2026-02-20"
		walkIn := submittedForm("F-walk-in")
		pool := []*forms.Form{dated, walkIn}

		items := reconcile.MergeItems(nil, emptyResult(pool, nil), pool, true)

		Expect(items).To(HaveLen(1))
		Expect(items[0].Form.Id).To(Equal("F-walk-in"))
	})

	It("shows dated orphan forms when no calendar is configured", func() {
		dated := submittedForm("F-dated")
		dated.AppointmentDate = "2026-02-20"
		pool := []*forms.Form{dated}

		items := reconcile.MergeItems(nil, emptyResult(pool, nil), pool, false)

		Expect(items).To(HaveLen(1))
		Expect(items[0].Form.Id).To(Equal("F-dated"))
	})

	It("omits forms consumed by an appointment", func() {
		appointments := []calendar.Appointment{{ExternalId: "A1", Email: "jean@x.com"}}
		form := submittedForm("F1")
		form.Email = "jean@x.com"
		pool := []*forms.Form{form}

		items := reconcile.MergeItems(appointments, emptyResult(pool, appointments), pool, false)

		Expect(items).To(HaveLen(1))
		Expect(items[0].Kind).To(Equal(reconcile.KindCalendar))
	})

	It("orders date groups chronologically with the no-date bucket last", func() {
		appointments := []calendar.Appointment{
			{ExternalId: "A-late", Date: "2026-02-21", Time: "09:00"},
			{ExternalId: "A-early", Date: "2026-02-20", Time: "09:00"},
		}
		walkIn := submittedForm("F-walk-in")
		pool := []*forms.Form{walkIn}

		items := reconcile.MergeItems(appointments, emptyResult(pool, appointments), pool, true)

		Expect(items).To(HaveLen(3))
		Expect(items[0].Appointment.ExternalId).To(Equal("A-early"))
		Expect(items[1].Appointment.ExternalId).To(Equal("A-late"))
		Expect(items[2].Kind).To(Equal(reconcile.KindForm))
	})

	It("orders items within a date by time, missing time last", func() {
		appointments := []calendar.Appointment{
			{ExternalId: "A-untimed", Date: "2026-02-20"},
			{ExternalId: "A-noon", Date: "2026-02-20", Time: "12:00"},
			{ExternalId: "A-morning", Date: "2026-02-20", Time: "08:15"},
		}

		items := reconcile.MergeItems(appointments, emptyResult(nil, appointments), nil, true)

		Expect(items[0].Appointment.ExternalId).To(Equal("A-morning"))
		Expect(items[1].Appointment.ExternalId).To(Equal("A-noon"))
		Expect(items[2].Appointment.ExternalId).To(Equal("A-untimed"))
	})
})
