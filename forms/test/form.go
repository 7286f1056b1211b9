package test

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"

	"github.com/frontdesk-org/frontdesk/forms"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(ginkgo.GinkgoRandomSeed()))
)

func RandomForm() forms.Form {
	now := time.Now().UTC()
	return forms.Form{
		Id:              Faker.UUID().V4(),
		Status:          forms.StatusSubmitted,
		Name:            Faker.Person().Name(),
		Email:           Faker.Internet().Email(),
		Phone:           RandomSwissPhone(),
		BirthDate:       RandomDate(1940, 2010),
		AppointmentDate: RandomDate(2026, 2026),
		AppointmentTime: RandomTime(),
		CreatedTime:     now,
		UpdatedTime:     now,
		SubmittedTime:   &now,
	}
}

func RandomDraft() forms.Form {
	form := RandomForm()
	form.Status = forms.StatusDraft
	form.SubmittedTime = nil
	return form
}

func RandomSwissPhone() string {
	return fmt.Sprintf("+417%d%07d", Faker.IntBetween(0, 9), Faker.IntBetween(0, 9999999))
}

func RandomDate(fromYear, toYear int) string {
	return fmt.Sprintf("%04d-%02d-%02d", Faker.IntBetween(fromYear, toYear), Faker.IntBetween(1, 12), Faker.IntBetween(1, 28))
}

func RandomTime() string {
	return fmt.Sprintf("%02d:%02d", Faker.IntBetween(7, 18), Faker.IntBetween(0, 59))
}
