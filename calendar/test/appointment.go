package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"

	"github.com/frontdesk-org/frontdesk/calendar"
	formsTest "github.com/frontdesk-org/frontdesk/forms/test"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(ginkgo.GinkgoRandomSeed()))
)

func RandomAppointment() calendar.Appointment {
	return calendar.Appointment{
		ExternalId:       Faker.UUID().V4(),
		Name:             Faker.Person().Name(),
		Date:             formsTest.RandomDate(2026, 2026),
		Time:             formsTest.RandomTime(),
		Email:            Faker.Internet().Email(),
		Phone:            formsTest.RandomSwissPhone(),
		BirthDate:        formsTest.RandomDate(1940, 2010),
		ConsultationType: Faker.RandomStringElement([]string{"first-visit", "follow-up", "vaccination"}),
	}
}
