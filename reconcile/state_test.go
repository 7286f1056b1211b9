package reconcile_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/reconcile"
)

var _ = Describe("Classify", func() {
	confirmedItem := func(kind reconcile.ItemKind, status string) reconcile.MergedItem {
		return reconcile.MergedItem{
			Kind: kind,
			Outcome: reconcile.MatchOutcome{
				Confirmed: &forms.Form{Id: "x", Status: status},
			},
		}
	}

	It("classifies a confirmed processed form as processed regardless of anything else", func() {
		item := confirmedItem(reconcile.KindCalendar, forms.StatusProcessed)
		item.Outcome.Suggested = &reconcile.Candidate{}
		Expect(reconcile.Classify(item)).To(Equal(reconcile.StateProcessed))

		Expect(reconcile.Classify(confirmedItem(reconcile.KindForm, forms.StatusProcessed))).To(Equal(reconcile.StateProcessed))
	})

	It("classifies a confirmed submitted form as received", func() {
		Expect(reconcile.Classify(confirmedItem(reconcile.KindCalendar, forms.StatusSubmitted))).To(Equal(reconcile.StateReceived))
	})

	It("classifies a confirmed draft as invited for any item type", func() {
		Expect(reconcile.Classify(confirmedItem(reconcile.KindCalendar, forms.StatusDraft))).To(Equal(reconcile.StateInvited))
		Expect(reconcile.Classify(confirmedItem(reconcile.KindForm, forms.StatusDraft))).To(Equal(reconcile.StateInvited))
	})

	It("never downgrades a confirmed link to a suggestion", func() {
		item := confirmedItem(reconcile.KindCalendar, forms.StatusSubmitted)
		item.Outcome.Suggested = &reconcile.Candidate{}
		Expect(reconcile.Classify(item)).To(Equal(reconcile.StateReceived))
	})

	It("classifies a calendar item with a pending candidate as suggested", func() {
		item := reconcile.MergedItem{
			Kind: reconcile.KindCalendar,
			Outcome: reconcile.MatchOutcome{
				Suggested: &reconcile.Candidate{},
			},
		}
		Expect(reconcile.Classify(item)).To(Equal(reconcile.StateSuggested))
	})

	It("classifies an unmatched calendar item as awaiting-form even when a form status is present", func() {
		item := reconcile.MergedItem{
			Kind: reconcile.KindCalendar,
			Form: &forms.Form{Status: forms.StatusSubmitted},
		}
		Expect(reconcile.Classify(item)).To(Equal(reconcile.StateAwaitingForm))
	})

	It("classifies a standalone draft form as draft", func() {
		item := reconcile.MergedItem{
			Kind: reconcile.KindForm,
			Form: &forms.Form{Status: forms.StatusDraft},
		}
		Expect(reconcile.Classify(item)).To(Equal(reconcile.StateDraft))
	})

	It("falls back to received for any other combination", func() {
		item := reconcile.MergedItem{
			Kind: reconcile.KindForm,
			Form: &forms.Form{Status: forms.StatusProcessed},
		}
		Expect(reconcile.Classify(item)).To(Equal(reconcile.StateReceived))
	})

	It("reflects form status transitions without a link change", func() {
		form := &forms.Form{Id: "F1", Status: forms.StatusDraft}
		item := reconcile.MergedItem{
			Kind:    reconcile.KindCalendar,
			Outcome: reconcile.MatchOutcome{Confirmed: form},
		}
		Expect(reconcile.Classify(item)).To(Equal(reconcile.StateInvited))

		form.Status = forms.StatusSubmitted
		Expect(reconcile.Classify(item)).To(Equal(reconcile.StateReceived))
	})
})
