package score

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestScore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Score Suite")
}

var _ = Describe("Score", func() {
	var (
		in Inputs
		s  float64
	)

	JustBeforeEach(func() {
		s = Score(in)
	})

	ptr := func(v float64) *float64 { return &v }

	When("every signal is positive", func() {
		BeforeEach(func() {
			in = Inputs{
				ItemLines:   4,
				ParsedItems: 4,
				ItemSum:     20.00,
				Total:       ptr(20.00),
				HasStore:    true,
				HasDate:     true,
			}
		})

		It("should score a full 1.0", func() {
			Expect(s).To(BeNumerically("~", 1.0, 1e-9))
		})
	})

	When("half the item lines parsed and nothing else is known", func() {
		BeforeEach(func() {
			in = Inputs{ItemLines: 4, ParsedItems: 2}
		})

		It("should score only the weighted parse ratio", func() {
			Expect(s).To(BeNumerically("~", 0.25, 1e-9))
		})
	})

	When("the item sum sits exactly at the tolerance boundary", func() {
		BeforeEach(func() {
			in = Inputs{
				ItemLines:   2,
				ParsedItems: 2,
				ItemSum:     105.00,
				Total:       ptr(100.00),
			}
		})

		It("should still earn the reconciliation term", func() {
			Expect(s).To(BeNumerically("~", 0.8, 1e-9))
		})
	})

	When("the item sum is far from the total", func() {
		BeforeEach(func() {
			in = Inputs{
				ItemLines:   2,
				ParsedItems: 2,
				ItemSum:     80.00,
				Total:       ptr(100.00),
			}
		})

		It("should not earn the reconciliation term", func() {
			Expect(s).To(BeNumerically("~", 0.5, 1e-9))
		})
	})

	When("no total was extracted", func() {
		BeforeEach(func() {
			in = Inputs{
				ItemLines:   2,
				ParsedItems: 2,
				ItemSum:     50.00,
				HasStore:    true,
				HasDate:     true,
			}
		})

		It("should contribute nothing for reconciliation", func() {
			Expect(s).To(BeNumerically("~", 0.7, 1e-9))
		})
	})

	When("only one metadata field was extracted", func() {
		BeforeEach(func() {
			in = Inputs{ItemLines: 1, ParsedItems: 1, HasStore: true}
		})

		It("should withhold the metadata term", func() {
			Expect(s).To(BeNumerically("~", 0.5, 1e-9))
		})
	})

	When("nothing was observed at all", func() {
		BeforeEach(func() {
			in = Inputs{}
		})

		It("should score zero", func() {
			Expect(s).To(Equal(0.0))
		})
	})

	When("no items parsed but a total exists", func() {
		BeforeEach(func() {
			in = Inputs{ItemLines: 3, ParsedItems: 0, ItemSum: 0, Total: ptr(0.0)}
		})

		It("should not reconcile an empty item list", func() {
			Expect(s).To(Equal(0.0))
		})
	})
})
