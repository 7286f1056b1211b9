package calendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/frontdesk-org/frontdesk/calendar"
	calendarTest "github.com/frontdesk-org/frontdesk/calendar/test"
)

var _ = Describe("Provider", func() {
	newProvider := func(feedUrl string) calendar.Provider {
		provider, err := calendar.NewProvider(&calendar.Config{
			FeedURL: feedUrl,
			Timeout: time.Second,
		}, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
		return provider
	}

	It("reports not-configured when no feed url is set", func() {
		appointments, status := newProvider("").Appointments(context.Background(), "2026-02-20", "2026-02-21")
		Expect(status).To(Equal(calendar.StatusNotConfigured))
		Expect(appointments).To(BeEmpty())
	})

	It("fetches the window from the feed", func() {
		expected := []calendar.Appointment{
			calendarTest.RandomAppointment(),
			calendarTest.RandomAppointment(),
		}

		var requested *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requested = r
			w.Header().Set("Content-Type", "application/json")
			Expect(json.NewEncoder(w).Encode(expected)).To(Succeed())
		}))
		defer server.Close()

		appointments, status := newProvider(server.URL).Appointments(context.Background(), "2026-02-20", "2026-02-21")
		Expect(status).To(Equal(calendar.StatusOK))
		Expect(appointments).To(Equal(expected))

		Expect(requested).ToNot(BeNil())
		Expect(requested.URL.Query().Get("from")).To(Equal("2026-02-20"))
		Expect(requested.URL.Query().Get("to")).To(Equal("2026-02-21"))
	})

	It("reports unavailable on a non-200 response", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		appointments, status := newProvider(server.URL).Appointments(context.Background(), "2026-02-20", "2026-02-21")
		Expect(status).To(Equal(calendar.StatusUnavailable))
		Expect(appointments).To(BeEmpty())
	})

	It("reports unavailable when the feed cannot be reached", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, status := newProvider(server.URL).Appointments(context.Background(), "2026-02-20", "2026-02-21")
		Expect(status).To(Equal(calendar.StatusUnavailable))
	})

	It("reports unavailable on a malformed payload", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		_, status := newProvider(server.URL).Appointments(context.Background(), "2026-02-20", "2026-02-21")
		Expect(status).To(Equal(calendar.StatusUnavailable))
	})
})
