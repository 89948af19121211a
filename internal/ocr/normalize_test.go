package ocr

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOCR(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OCR Suite")
}

var _ = Describe("Normalize", func() {
	var (
		in  string
		out string
	)

	JustBeforeEach(func() {
		out = Normalize(in)
	})

	When("normalizing CRLF line endings", func() {
		BeforeEach(func() {
			in = "FRESH MART\r\nBANANAS  1.68\r\n"
		})

		It("should convert them to LF", func() {
			Expect(out).To(Equal("FRESH MART\nBANANAS  1.68"))
		})
	})

	When("the text contains tabs", func() {
		BeforeEach(func() {
			in = "BANANAS\t1.68"
		})

		It("should replace them with a column gap", func() {
			Expect(out).To(Equal("BANANAS  1.68"))
		})
	})

	When("the text contains long space runs", func() {
		BeforeEach(func() {
			in = "BANANAS          1.68"
		})

		It("should collapse them but keep the column gap", func() {
			Expect(out).To(Equal("BANANAS  1.68"))
		})
	})

	When("a letter O sits between digits", func() {
		BeforeEach(func() {
			in = "SUBTOTAL  1O5.00"
		})

		It("should repair it to a zero", func() {
			Expect(out).To(Equal("SUBTOTAL  105.00"))
		})
	})

	When("the text has runs of blank lines", func() {
		BeforeEach(func() {
			in = "FRESH MART\n\n\n\n\nBANANAS  1.68"
		})

		It("should collapse them to one blank line", func() {
			Expect(out).To(Equal("FRESH MART\n\nBANANAS  1.68"))
		})
	})

	When("lines carry trailing spaces", func() {
		BeforeEach(func() {
			in = "FRESH MART   \nBANANAS  1.68  "
		})

		It("should trim them", func() {
			Expect(out).To(Equal("FRESH MART\nBANANAS  1.68"))
		})
	})

	When("the input is empty", func() {
		BeforeEach(func() {
			in = ""
		})

		It("should stay empty", func() {
			Expect(out).To(Equal(""))
		})
	})
})
