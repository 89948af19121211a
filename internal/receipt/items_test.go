package receipt

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryflow/receipt-ingest/internal/entity"
)

var _ = Describe("ParseItemLine", func() {
	var (
		line string
		item entity.ParsedLineItem
		ok   bool
	)

	JustBeforeEach(func() {
		item, ok = ParseItemLine(line)
	})

	When("parsing a simple name-price line", func() {
		BeforeEach(func() {
			line = "BANANAS                 1.68"
		})

		It("should parse successfully", func() {
			Expect(ok).To(BeTrue())
		})

		It("should default quantity to one", func() {
			Expect(item.Quantity).To(Equal(1.0))
		})

		It("should take the amount as the total price", func() {
			Expect(item.TotalPrice).To(Equal(1.68))
		})

		It("should leave the unit price unset", func() {
			Expect(item.UnitPrice).To(BeNil())
		})

		It("should normalize the name", func() {
			Expect(item.Name).To(Equal("BANANAS"))
		})
	})

	When("parsing a quantity-prefixed line", func() {
		BeforeEach(func() {
			line = "2 APPLES                3.98"
		})

		It("should parse successfully", func() {
			Expect(ok).To(BeTrue())
		})

		It("should capture the quantity", func() {
			Expect(item.Quantity).To(Equal(2.0))
		})

		It("should capture the total price", func() {
			Expect(item.TotalPrice).To(Equal(3.98))
		})

		It("should derive the unit price", func() {
			Expect(item.UnitPrice).NotTo(BeNil())
			Expect(*item.UnitPrice).To(BeNumerically("~", 1.99, 1e-9))
		})

		It("should not swallow the quantity into the name", func() {
			Expect(item.Name).To(Equal("APPLES"))
		})
	})

	When("parsing a unit-price line", func() {
		BeforeEach(func() {
			line = "CHICKEN BREAST @ 5.99   11.98"
		})

		It("should parse successfully", func() {
			Expect(ok).To(BeTrue())
		})

		It("should capture the unit price", func() {
			Expect(item.UnitPrice).NotTo(BeNil())
			Expect(*item.UnitPrice).To(Equal(5.99))
		})

		It("should capture the total price", func() {
			Expect(item.TotalPrice).To(Equal(11.98))
		})

		It("should derive the quantity from total over unit", func() {
			Expect(item.Quantity).To(Equal(2.0))
		})

		It("should keep the multi-word name", func() {
			Expect(item.Name).To(Equal("CHICKEN BREAST"))
		})
	})

	When("parsing a dollar-prefixed amount", func() {
		BeforeEach(func() {
			line = "MILK  $3.49"
		})

		It("should parse successfully", func() {
			Expect(ok).To(BeTrue())
			Expect(item.TotalPrice).To(Equal(3.49))
		})
	})

	When("parsing an amount with a thousands separator", func() {
		BeforeEach(func() {
			line = "CATERING ORDER  1,299.99"
		})

		It("should strip the separator", func() {
			Expect(ok).To(BeTrue())
			Expect(item.TotalPrice).To(Equal(1299.99))
		})
	})

	When("parsing a name with internal whitespace runs", func() {
		BeforeEach(func() {
			line = "ORANGE   JUICE   4.29"
		})

		It("should collapse internal whitespace in the name", func() {
			Expect(ok).To(BeTrue())
			Expect(item.Name).To(Equal("ORANGE JUICE"))
		})
	})

	When("the line matches no grammar", func() {
		BeforeEach(func() {
			line = "LOYALTY CARD ****1234"
		})

		It("should report the line as unparsable", func() {
			Expect(ok).To(BeFalse())
		})
	})

	When("the line is empty", func() {
		BeforeEach(func() {
			line = "   "
		})

		It("should report the line as unparsable", func() {
			Expect(ok).To(BeFalse())
		})
	})

	When("the quantity prefix is zero", func() {
		BeforeEach(func() {
			line = "0 APPLES                3.98"
		})

		It("should report the line as unparsable", func() {
			Expect(ok).To(BeFalse())
		})
	})

	When("the amount has no cents", func() {
		BeforeEach(func() {
			line = "BANANAS 2"
		})

		It("should report the line as unparsable", func() {
			Expect(ok).To(BeFalse())
		})
	})
})
