package forms_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"

	"github.com/frontdesk-org/frontdesk/forms"
	formsTest "github.com/frontdesk-org/frontdesk/forms/test"
	"github.com/frontdesk-org/frontdesk/store"
	dbTest "github.com/frontdesk-org/frontdesk/store/test"
)

var _ = Describe("Forms Repository", func() {
	var database *mongo.Database
	var repo forms.Repository

	BeforeEach(func() {
		var err error
		database = dbTest.GetTestDatabase()
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = forms.NewRepository(database, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		err := database.Collection(forms.CollectionName).Drop(context.Background())
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Create", func() {
		It("assigns an id and defaults the status to draft", func() {
			form := formsTest.RandomForm()
			form.Id = ""
			form.Status = ""

			created, err := repo.Create(context.Background(), form)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(BeEmpty())
			Expect(created.Status).To(Equal(forms.StatusDraft))
			Expect(created.CreatedTime).ToNot(BeZero())
		})

		It("keeps an explicit status", func() {
			created, err := repo.Create(context.Background(), formsTest.RandomForm())
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Status).To(Equal(forms.StatusSubmitted))
		})
	})

	Describe("Get", func() {
		It("returns the persisted form", func() {
			form := formsTest.RandomForm()
			created, err := repo.Create(context.Background(), form)
			Expect(err).ToNot(HaveOccurred())

			found, err := repo.Get(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(found.Name).To(Equal(form.Name))
			Expect(found.Email).To(Equal(form.Email))
			Expect(found.AppointmentDate).To(Equal(form.AppointmentDate))
		})

		It("returns an error when the form doesn't exist", func() {
			_, err := repo.Get(context.Background(), "missing")
			Expect(err).To(MatchError(forms.ErrNotFound))
		})
	})

	Describe("List", func() {
		It("filters by status", func() {
			_, err := repo.Create(context.Background(), formsTest.RandomDraft())
			Expect(err).ToNot(HaveOccurred())
			submitted, err := repo.Create(context.Background(), formsTest.RandomForm())
			Expect(err).ToNot(HaveOccurred())

			status := forms.StatusSubmitted
			list, err := repo.List(context.Background(), &forms.Filter{Status: &status}, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].Id).To(Equal(submitted.Id))
		})

		It("filters by appointment date range", func() {
			early := formsTest.RandomForm()
			early.AppointmentDate = "2026-02-10"
			late := formsTest.RandomForm()
			late.AppointmentDate = "2026-03-15"

			_, err := repo.Create(context.Background(), early)
			Expect(err).ToNot(HaveOccurred())
			created, err := repo.Create(context.Background(), late)
			Expect(err).ToNot(HaveOccurred())

			from := "2026-03-01"
			to := "2026-03-31"
			list, err := repo.List(context.Background(), &forms.Filter{DateFrom: &from, DateTo: &to}, store.DefaultPagination())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].Id).To(Equal(created.Id))
		})
	})

	Describe("Update", func() {
		It("replaces the identity fields", func() {
			created, err := repo.Create(context.Background(), formsTest.RandomForm())
			Expect(err).ToNot(HaveOccurred())

			update := formsTest.RandomForm()
			updated, err := repo.Update(context.Background(), created.Id, update)
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal(update.Name))
			Expect(updated.Phone).To(Equal(update.Phone))
			Expect(updated.Status).To(Equal(created.Status))
		})

		It("returns an error when the form doesn't exist", func() {
			_, err := repo.Update(context.Background(), "missing", formsTest.RandomForm())
			Expect(err).To(MatchError(forms.ErrNotFound))
		})
	})

	Describe("Submit", func() {
		It("moves a draft to submitted and stamps the submission time", func() {
			created, err := repo.Create(context.Background(), formsTest.RandomDraft())
			Expect(err).ToNot(HaveOccurred())
			Expect(created.SubmittedTime).To(BeNil())

			submitted, err := repo.Submit(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(submitted.Status).To(Equal(forms.StatusSubmitted))
			Expect(submitted.SubmittedTime).ToNot(BeNil())
		})

		It("rejects submitting a non-draft form", func() {
			created, err := repo.Create(context.Background(), formsTest.RandomForm())
			Expect(err).ToNot(HaveOccurred())

			_, err = repo.Submit(context.Background(), created.Id)
			Expect(err).To(MatchError(forms.ErrInvalidTransition))
		})

		It("returns an error when the form doesn't exist", func() {
			_, err := repo.Submit(context.Background(), "missing")
			Expect(err).To(MatchError(forms.ErrNotFound))
		})
	})

	Describe("Process", func() {
		It("moves a submitted form to processed", func() {
			created, err := repo.Create(context.Background(), formsTest.RandomForm())
			Expect(err).ToNot(HaveOccurred())

			processed, err := repo.Process(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(processed.Status).To(Equal(forms.StatusProcessed))
		})

		It("rejects processing a draft", func() {
			created, err := repo.Create(context.Background(), formsTest.RandomDraft())
			Expect(err).ToNot(HaveOccurred())

			_, err = repo.Process(context.Background(), created.Id)
			Expect(err).To(MatchError(forms.ErrInvalidTransition))
		})
	})

	Describe("Remove", func() {
		It("deletes the form", func() {
			created, err := repo.Create(context.Background(), formsTest.RandomForm())
			Expect(err).ToNot(HaveOccurred())

			Expect(repo.Remove(context.Background(), created.Id)).To(Succeed())

			_, err = repo.Get(context.Background(), created.Id)
			Expect(err).To(MatchError(forms.ErrNotFound))
		})

		It("returns an error when the form doesn't exist", func() {
			Expect(repo.Remove(context.Background(), "missing")).To(MatchError(forms.ErrNotFound))
		})
	})
})
