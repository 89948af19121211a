package ocr

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	calls []fakeCall
}

type fakeCall struct {
	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, fakeCall{name: name, args: args})
	return f.stdout, f.stderr, f.err
}

var _ = Describe("Extractor", func() {
	var (
		runner *fakeRunner
		ext    *Extractor
		path   string
		res    ExtractionResult
		err    error
	)

	BeforeEach(func() {
		runner = &fakeRunner{stdout: []byte("FRESH MART\r\nBANANAS   1.68\r\n")}
		ext = NewExtractor(Config{TesseractLang: "eng", PSM: 6}, nil)
		ext.runner = runner
		path = "receipt.png"
	})

	JustBeforeEach(func() {
		res, err = ext.Extract(context.Background(), path)
	})

	When("the recognition tool succeeds", func() {
		It("should not error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should invoke tesseract with the stdout sink and language", func() {
			Expect(runner.calls).To(HaveLen(1))
			Expect(runner.calls[0].name).To(Equal("tesseract"))
			Expect(runner.calls[0].args).To(ContainElements("receipt.png", "stdout", "-l", "eng"))
		})

		It("should pass the configured page segmentation mode", func() {
			Expect(runner.calls[0].args).To(ContainElements("--psm", "6"))
		})

		It("should return normalized text", func() {
			Expect(res.Text).To(Equal("FRESH MART\nBANANAS  1.68"))
		})

		It("should report the image-ocr method", func() {
			Expect(res.Method).To(Equal("image-ocr"))
			Expect(res.Pages).To(Equal(1))
		})
	})

	When("the recognition tool fails", func() {
		BeforeEach(func() {
			runner.err = errors.New("exit status 1")
			runner.stderr = []byte("Error opening data file")
		})

		It("should wrap the tool error", func() {
			Expect(err).To(MatchError(ContainSubstring("tesseract")))
		})

		It("should surface the tool's stderr as a warning", func() {
			Expect(res.Warnings).To(ContainElement(ContainSubstring("Error opening data file")))
		})
	})

	When("the file has an unsupported extension", func() {
		BeforeEach(func() {
			path = "receipt.docx"
		})

		It("should error without invoking any tool", func() {
			Expect(err).To(HaveOccurred())
			Expect(runner.calls).To(BeEmpty())
		})
	})
})
