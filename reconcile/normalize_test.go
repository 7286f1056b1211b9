package reconcile_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frontdesk-org/frontdesk/reconcile"
)

var _ = Describe("NormalizeName", func() {
	It("lowercases and trims", func() {
		Expect(reconcile.NormalizeName("  Jean Dupont ")).To(Equal("jean dupont"))
	})

	It("strips diacritics", func() {
		Expect(reconcile.NormalizeName("É. Dürr")).To(Equal(reconcile.NormalizeName("e. durr")))
		Expect(reconcile.NormalizeName("Zoë Müller-Leuenberger")).To(Equal("zoe muller-leuenberger"))
	})

	It("strips a leading source tag", func() {
		Expect(reconcile.NormalizeName("[HIN] - Jean Dupont")).To(Equal("jean dupont"))
		Expect(reconcile.NormalizeName("[hin] Jean Dupont")).To(Equal("jean dupont"))
	})

	It("strips stacked source tags", func() {
		Expect(reconcile.NormalizeName("[XX] - [YY] - Jean Dupont")).To(Equal("jean dupont"))
		Expect(reconcile.NormalizeName("[XX][YY] Jean Dupont")).To(Equal("jean dupont"))
	})

	It("collapses internal whitespace", func() {
		Expect(reconcile.NormalizeName("Jean   \t Dupont")).To(Equal("jean dupont"))
	})

	It("is idempotent", func() {
		inputs := []string{"É. Dürr", "[XX] - Anne  Frei", "[XX] - [YY] - Jean Dupont", "  JEAN dupont ", ""}
		for _, input := range inputs {
			once := reconcile.NormalizeName(input)
			Expect(reconcile.NormalizeName(once)).To(Equal(once))
		}
	})

	It("returns empty for empty input", func() {
		Expect(reconcile.NormalizeName("")).To(Equal(""))
	})
})

var _ = Describe("NormalizePhone", func() {
	It("collapses all Swiss spellings to the same 9 digit key", func() {
		expected := "791234567"
		Expect(reconcile.NormalizePhone("0041791234567")).To(Equal(expected))
		Expect(reconcile.NormalizePhone("+41791234567")).To(Equal(expected))
		Expect(reconcile.NormalizePhone("0791234567")).To(Equal(expected))
		Expect(reconcile.NormalizePhone("791234567")).To(Equal(expected))
		Expect(reconcile.NormalizePhone("079 123 45 67")).To(Equal(expected))
	})

	It("passes shorter strings through unchanged", func() {
		Expect(reconcile.NormalizePhone("12345")).To(Equal("12345"))
		Expect(reconcile.NormalizePhone("")).To(Equal(""))
	})

	It("ignores formatting characters", func() {
		Expect(reconcile.NormalizePhone("+41 (0)79-123.45.67")).To(Equal(reconcile.NormalizePhone("0791234567")))
	})
})
