package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pantryflow/receipt-ingest/internal/common"
	"github.com/pantryflow/receipt-ingest/internal/entity"
	"github.com/pantryflow/receipt-ingest/internal/extract"
)

func TestPipeline(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pipeline Suite")
}

// fakeExtractor stands in for the OCR adapter.
type fakeExtractor struct {
	result extract.TextExtractionResult
	err    error
	calls  int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (extract.TextExtractionResult, error) {
	f.calls++
	if f.err != nil {
		return extract.TextExtractionResult{}, f.err
	}
	return f.result, nil
}

const goodReceipt = "FRESH MART\n" +
	"03/15/2024\n" +
	"BANANAS                 1.68\n" +
	"2 APPLES                3.98\n" +
	"SUBTOTAL                5.66\n" +
	"TOTAL                   5.66\n"

var _ = Describe("Processor", func() {
	var (
		cfg       Config
		extractor *fakeExtractor
		proc      *Processor

		imageRef string
		result   entity.ProcessingResult
		trace    Trace
		err      error
	)

	BeforeEach(func() {
		cfg = Config{RecognitionEnabled: true, FallbackEnabled: true}
		extractor = &fakeExtractor{
			result: extract.TextExtractionResult{Text: goodReceipt, Method: "image-ocr"},
		}
		imageRef = "receipt.jpg"
	})

	JustBeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		proc = NewProcessor(cfg, extractor, nil, logger)
		result, trace, err = proc.ProcessWithTrace(context.Background(), imageRef)
	})

	When("recognition succeeds on a clean receipt", func() {
		It("should not error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should finish in the done state", func() {
			Expect(trace.FinalState).To(Equal(StateDone))
		})

		It("should return the parsed items", func() {
			Expect(result.Items).To(HaveLen(2))
			Expect(result.UsedFallback).To(BeFalse())
		})

		It("should carry the extracted text in the trace", func() {
			Expect(trace.OCRText).To(Equal(goodReceipt))
			Expect(trace.Method).To(Equal("image-ocr"))
		})

		It("should score above the fallback ceiling", func() {
			Expect(result.ConfidenceScore).To(BeNumerically(">", FallbackConfidenceCeiling))
		})
	})

	When("the image reference is empty", func() {
		BeforeEach(func() {
			imageRef = "   "
		})

		It("should fail hard with an invalid invocation error", func() {
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, common.ErrInvalidInvocation)).To(BeTrue())
		})

		It("should never call the extractor", func() {
			Expect(extractor.calls).To(BeZero())
		})
	})

	When("recognition is disabled", func() {
		BeforeEach(func() {
			cfg.RecognitionEnabled = false
		})

		It("should degrade instead of failing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.UsedFallback).To(BeTrue())
		})

		It("should never call the extractor", func() {
			Expect(extractor.calls).To(BeZero())
		})

		It("should return non-empty placeholder items", func() {
			Expect(result.Items).NotTo(BeEmpty())
		})

		It("should cap the confidence at the fallback ceiling", func() {
			Expect(result.ConfidenceScore).To(BeNumerically("<=", FallbackConfidenceCeiling))
		})
	})

	When("the extractor fails", func() {
		BeforeEach(func() {
			extractor.err = common.WrapError(common.ErrRecognitionFailed, "tesseract exited 1")
		})

		It("should degrade instead of failing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.UsedFallback).To(BeTrue())
			Expect(result.Items).NotTo(BeEmpty())
		})
	})

	When("the extractor returns empty text", func() {
		BeforeEach(func() {
			extractor.result = extract.TextExtractionResult{Text: "  \n ", Method: "image-ocr"}
		})

		It("should degrade instead of failing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.UsedFallback).To(BeTrue())
		})
	})

	When("the recognized text yields no items", func() {
		BeforeEach(func() {
			extractor.result = extract.TextExtractionResult{
				Text:   "FRESH MART\nTHANK YOU FOR SHOPPING\n",
				Method: "image-ocr",
			}
		})

		It("should degrade instead of failing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.UsedFallback).To(BeTrue())
		})
	})

	When("the fallback is disabled and recognition fails", func() {
		BeforeEach(func() {
			cfg.FallbackEnabled = false
			extractor.err = common.WrapError(common.ErrRecognitionUnavailable, "binary not found")
		})

		It("should surface a hard failure carrying the cause", func() {
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, common.ErrRecognitionUnavailable)).To(BeTrue())
		})

		It("should end in the degraded state", func() {
			Expect(trace.FinalState).To(Equal(StateDegraded))
		})
	})

	When("processing the same text twice", func() {
		It("should produce identical results", func() {
			second, _, err2 := proc.ProcessWithTrace(context.Background(), imageRef)
			Expect(err2).NotTo(HaveOccurred())
			Expect(second).To(Equal(result))
		})
	})

	When("degrading with the same reason twice", func() {
		BeforeEach(func() {
			cfg.RecognitionEnabled = false
		})

		It("should produce identical placeholder results", func() {
			second, _, err2 := proc.ProcessWithTrace(context.Background(), imageRef)
			Expect(err2).NotTo(HaveOccurred())
			Expect(second).To(Equal(result))
		})
	})
})
