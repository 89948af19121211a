package contract

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryflow/receipt-ingest/constants"
	"github.com/pantryflow/receipt-ingest/internal/entity"
)

func TestContract(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Contract Suite")
}

var _ = Describe("ValidateResult", func() {
	var (
		result entity.ProcessingResult
		err    error
	)

	BeforeEach(func() {
		store := "FRESH MART"
		date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		total := 5.66
		unit := 1.99
		result = entity.ProcessingResult{
			Items: []entity.ParsedLineItem{
				{Name: "BANANAS", Quantity: 1.0, TotalPrice: 1.68, Category: constants.Produce},
				{Name: "APPLES", Quantity: 2.0, UnitPrice: &unit, TotalPrice: 3.98, Category: constants.Produce},
			},
			Metadata:        entity.ReceiptMetadata{StoreName: &store, ReceiptDate: &date},
			Totals:          entity.ReceiptTotals{Total: &total},
			ConfidenceScore: 0.95,
			ProcessingNotes: "parsed 2 of 2 item lines via image-ocr",
		}
	})

	JustBeforeEach(func() {
		b, merr := json.Marshal(result)
		Expect(merr).NotTo(HaveOccurred())
		err = ValidateResult(b)
	})

	When("validating a well-formed result", func() {
		It("should pass", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("metadata and totals are empty", func() {
		BeforeEach(func() {
			result.Metadata = entity.ReceiptMetadata{}
			result.Totals = entity.ReceiptTotals{}
		})

		It("should still pass", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the item list is empty", func() {
		BeforeEach(func() {
			result.Items = nil
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("an item carries an unknown category", func() {
		BeforeEach(func() {
			result.Items[0].Category = "electronics"
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("an item has a zero quantity", func() {
		BeforeEach(func() {
			result.Items[0].Quantity = 0
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the confidence score is out of range", func() {
		BeforeEach(func() {
			result.ConfidenceScore = 1.5
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})
