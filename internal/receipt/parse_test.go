package receipt

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryflow/receipt-ingest/constants"
)

var _ = Describe("Parse", func() {
	var (
		text    string
		outcome Outcome
	)

	JustBeforeEach(func() {
		outcome = Parse(text, nil)
	})

	When("parsing a complete receipt", func() {
		BeforeEach(func() {
			text = "FRESH MART\n" +
				"1234 MAIN ST ANYTOWN\n" +
				"03/15/2024 10:32 AM\n" +
				"BANANAS                 1.68\n" +
				"2 APPLES                3.98\n" +
				"CHICKEN BREAST @ 5.99   11.98\n" +
				"SUBTOTAL               17.64\n" +
				"TAX                     0.85\n" +
				"TOTAL                  18.49\n" +
				"THANK YOU\n"
		})

		It("should parse every item line", func() {
			Expect(outcome.ItemLines).To(Equal(3))
			Expect(outcome.ParsedItems).To(Equal(3))
			Expect(outcome.Items).To(HaveLen(3))
		})

		It("should keep items in line order", func() {
			Expect(outcome.Items[0].Name).To(Equal("BANANAS"))
			Expect(outcome.Items[1].Name).To(Equal("APPLES"))
			Expect(outcome.Items[2].Name).To(Equal("CHICKEN BREAST"))
		})

		It("should categorize each item", func() {
			Expect(outcome.Items[0].Category).To(Equal(constants.Produce))
			Expect(outcome.Items[1].Category).To(Equal(constants.Produce))
			Expect(outcome.Items[2].Category).To(Equal(constants.Meat))
		})

		It("should extract the store name from the header", func() {
			Expect(outcome.Metadata.StoreName).NotTo(BeNil())
			Expect(*outcome.Metadata.StoreName).To(Equal("FRESH MART"))
		})

		It("should extract the receipt date", func() {
			Expect(outcome.Metadata.ReceiptDate).NotTo(BeNil())
			Expect(outcome.Metadata.ReceiptDate.Format("2006-01-02")).To(Equal("2024-03-15"))
		})

		It("should extract subtotal, tax and total", func() {
			Expect(outcome.Totals.Subtotal).To(HaveValue(Equal(17.64)))
			Expect(outcome.Totals.Tax).To(HaveValue(Equal(0.85)))
			Expect(outcome.Totals.Total).To(HaveValue(Equal(18.49)))
		})

		It("should sum parsed item totals", func() {
			Expect(outcome.ItemSum()).To(BeNumerically("~", 17.64, 1e-9))
		})

		It("should count every non-empty line", func() {
			Expect(outcome.ContentLines).To(Equal(10))
		})
	})

	When("an item line fails every grammar", func() {
		BeforeEach(func() {
			text = "STORE\n" +
				"BANANAS 1.68\n" +
				"2 2 2 GLITCH 9.99 1.00\n" +
				"TOTAL 1.68\n"
		})

		It("should drop the line without failing", func() {
			Expect(outcome.ParsedItems).To(Equal(1))
			Expect(outcome.Items).To(HaveLen(1))
		})

		It("should still count it against the item lines", func() {
			Expect(outcome.ItemLines).To(Equal(2))
		})
	})

	When("parsing text with no items at all", func() {
		BeforeEach(func() {
			text = "STORE\nTHANK YOU\nCOME AGAIN\n"
		})

		It("should return an empty outcome with counts", func() {
			Expect(outcome.Items).To(BeEmpty())
			Expect(outcomeZeroTotals(outcome)).To(BeTrue())
			Expect(outcome.ContentLines).To(Equal(3))
		})
	})

	When("the receipt uses an ISO date", func() {
		BeforeEach(func() {
			text = "STORE\n2024-03-15\nMILK 3.49\n"
		})

		It("should parse the date", func() {
			Expect(outcome.Metadata.ReceiptDate).NotTo(BeNil())
			Expect(*outcome.Metadata.ReceiptDate).To(Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
		})
	})

	When("two total lines appear", func() {
		BeforeEach(func() {
			text = "STORE\nTOTAL 10.00\nTOTAL 99.99\n"
		})

		It("should keep the first occurrence", func() {
			Expect(outcome.Totals.Total).To(HaveValue(Equal(10.00)))
		})
	})
})

func outcomeZeroTotals(o Outcome) bool {
	return o.Totals.Subtotal == nil && o.Totals.Tax == nil && o.Totals.Total == nil
}
