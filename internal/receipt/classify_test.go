package receipt

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryflow/receipt-ingest/constants"
)

var _ = Describe("ClassifyLines", func() {
	var (
		text  string
		lines []ClassifiedLine
	)

	JustBeforeEach(func() {
		lines = ClassifyLines(text)
	})

	roleOf := func(s string) constants.LineRole {
		for _, ln := range lines {
			if ln.Text == s {
				return ln.Role
			}
		}
		return ""
	}

	When("classifying a typical receipt", func() {
		BeforeEach(func() {
			text = "FRESH MART\n" +
				"1234 MAIN ST ANYTOWN\n" +
				"03/15/2024 10:32 AM\n" +
				"BANANAS                 1.68\n" +
				"SUBTOTAL                1.68\n" +
				"TAX                     0.00\n" +
				"TOTAL                   1.68\n" +
				"THANK YOU FOR SHOPPING\n"
		})

		It("should tag the first line as the header", func() {
			Expect(roleOf("FRESH MART")).To(Equal(constants.RoleHeader))
		})

		It("should tag the address as noise", func() {
			Expect(roleOf("1234 MAIN ST ANYTOWN")).To(Equal(constants.RoleNoise))
		})

		It("should tag the timestamp line as a date", func() {
			Expect(roleOf("03/15/2024 10:32 AM")).To(Equal(constants.RoleDate))
		})

		It("should tag the line ending in an amount as an item", func() {
			Expect(roleOf("BANANAS                 1.68")).To(Equal(constants.RoleItem))
		})

		It("should tag subtotal, tax and total lines as totals", func() {
			Expect(roleOf("SUBTOTAL                1.68")).To(Equal(constants.RoleTotals))
			Expect(roleOf("TAX                     0.00")).To(Equal(constants.RoleTotals))
			Expect(roleOf("TOTAL                   1.68")).To(Equal(constants.RoleTotals))
		})

		It("should tag the footer as noise", func() {
			Expect(roleOf("THANK YOU FOR SHOPPING")).To(Equal(constants.RoleNoise))
		})
	})

	When("a line matches both a totals keyword and the item shape", func() {
		BeforeEach(func() {
			text = "STORE\nTOTAL 12.49\n"
		})

		It("should prefer the totals role", func() {
			Expect(roleOf("TOTAL 12.49")).To(Equal(constants.RoleTotals))
		})
	})

	When("a line contains a date and a trailing amount", func() {
		BeforeEach(func() {
			text = "STORE\n03/15/2024 BALANCE 5.00\n"
		})

		It("should prefer the date role", func() {
			Expect(roleOf("03/15/2024 BALANCE 5.00")).To(Equal(constants.RoleDate))
		})
	})

	When("the input contains blank lines", func() {
		BeforeEach(func() {
			text = "\n\nFRESH MART\n\nBANANAS 1.68\n\n"
		})

		It("should skip blank lines entirely", func() {
			Expect(lines).To(HaveLen(2))
		})

		It("should still find the header on the first non-empty line", func() {
			Expect(roleOf("FRESH MART")).To(Equal(constants.RoleHeader))
		})
	})

	When("the first line ends in an amount", func() {
		BeforeEach(func() {
			text = "MILK 3.49\nTOTAL 3.49\n"
		})

		It("should tag it as an item, not a header", func() {
			Expect(roleOf("MILK 3.49")).To(Equal(constants.RoleItem))
		})
	})

	When("classifying ISO and long date formats", func() {
		BeforeEach(func() {
			text = "STORE\n2024-03-15\nMarch 15, 2024\n"
		})

		It("should recognize both", func() {
			Expect(roleOf("2024-03-15")).To(Equal(constants.RoleDate))
			Expect(roleOf("March 15, 2024")).To(Equal(constants.RoleDate))
		})
	})
})
