package categorize_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryflow/receipt-ingest/constants"
	"github.com/pantryflow/receipt-ingest/internal/categorize"
)

func TestCategorize(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Categorize Suite")
}

var _ = Describe("Categorizer", func() {
	var cat *categorize.Categorizer

	BeforeEach(func() {
		cat = categorize.New(nil)
	})

	When("the name contains a known keyword", func() {
		It("should map produce names", func() {
			Expect(cat.Categorize("BANANAS")).To(Equal(constants.Produce))
			Expect(cat.Categorize("GALA APPLES 3LB")).To(Equal(constants.Produce))
		})

		It("should map dairy names", func() {
			Expect(cat.Categorize("WHOLE MILK GAL")).To(Equal(constants.Dairy))
			Expect(cat.Categorize("SHREDDED CHEDDAR")).To(Equal(constants.Dairy))
		})

		It("should map meat names", func() {
			Expect(cat.Categorize("CHICKEN BREAST")).To(Equal(constants.Meat))
			Expect(cat.Categorize("GROUND TURKEY")).To(Equal(constants.Meat))
		})

		It("should match case-insensitively", func() {
			Expect(cat.Categorize("ChEdDaR BlOcK")).To(Equal(constants.Dairy))
		})
	})

	When("the name matches keywords from multiple categories", func() {
		It("should pick the first entry in table order", func() {
			// "fish" (seafood) sits before "frozen" in the default table
			Expect(cat.Categorize("FROZEN FISH STICKS")).To(Equal(constants.Seafood))
		})

		It("should stay deterministic across calls", func() {
			first := cat.Categorize("FROZEN FISH STICKS")
			for i := 0; i < 10; i++ {
				Expect(cat.Categorize("FROZEN FISH STICKS")).To(Equal(first))
			}
		})
	})

	When("the name matches nothing", func() {
		It("should fall back to other", func() {
			Expect(cat.Categorize("AA BATTERIES")).To(Equal(constants.Other))
			Expect(cat.Categorize("")).To(Equal(constants.Other))
		})
	})

	When("a custom table is supplied", func() {
		BeforeEach(func() {
			cat = categorize.New(categorize.Table{
				{Category: constants.Snacks, Keywords: []string{"Widget"}},
			})
		})

		It("should use it instead of the default", func() {
			Expect(cat.Categorize("WIDGET DELUXE")).To(Equal(constants.Snacks))
			Expect(cat.Categorize("BANANAS")).To(Equal(constants.Other))
		})
	})

	When("a custom table uses synonym labels", func() {
		BeforeEach(func() {
			cat = categorize.New(categorize.Table{
				{Category: "drinks", Keywords: []string{"cola"}},
				{Category: "fish", Keywords: []string{"herring"}},
			})
		})

		It("should canonicalize them onto the fixed categories", func() {
			Expect(cat.Categorize("COLA 2L")).To(Equal(constants.Beverages))
			Expect(cat.Categorize("PICKLED HERRING")).To(Equal(constants.Seafood))
		})
	})
})
