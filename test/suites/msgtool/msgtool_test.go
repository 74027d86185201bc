package test_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/loopcontext/msgtool"
	"github.com/loopcontext/msgtool/internal/engine"
	"github.com/loopcontext/msgtool/internal/input"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const workflowSrc = `package main

func main() {
	formatMessage("Hello world")
	formatMessage("See you later")
}
`

var _ = Describe("Message tooling workflow", func() {
	var (
		workDir string
		logger  *log.Logger
	)

	BeforeEach(func() {
		var err error
		workDir, err = os.MkdirTemp("", "msgtool-suite-*")
		Expect(err).NotTo(HaveOccurred())
		logger = log.New(io.Discard)
	})

	AfterEach(func() {
		os.RemoveAll(workDir)
	})

	writeSource := func(name string, content string) string {
		path := filepath.Join(workDir, name)
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
		return path
	}

	It("should resolve glob patterns in order and preserve duplicates", func() {
		a := writeSource("a.go", workflowSrc)
		b := writeSource("b.go", workflowSrc)
		files, err := input.Resolve([]string{filepath.Join(workDir, "*.go"), a})
		Expect(err).NotTo(HaveOccurred())
		Expect(files).To(Equal([]string{a, b, a}))
	})

	It("should capture chunked stdin into a single synthetic unit", func() {
		r := io.MultiReader(strings.NewReader("abc"), strings.NewReader("def"))
		units, err := input.CaptureIfEmpty(r, nil, "stdin")
		Expect(err).NotTo(HaveOccurred())
		Expect(units).To(HaveLen(1))
		Expect(units[0].SourceCode).To(Equal("abcdef"))
		Expect(units[0].SourceFileName).To(Equal("stdin"))
	})

	It("should extract patterns and inline them back through a loaded catalog", func() {
		src := writeSource("greet.go", workflowSrc)
		catalogPath := filepath.Join(workDir, "en.json")

		extractor := engine.NewExtractor(logger, io.Discard)
		err := extractor.Extract(context.Background(), msgtool.ExtractRequest{
			Files:      []msgtool.SourceUnit{msgtool.FileUnit(src)},
			GenerateID: msgtool.KeyLiteral,
			Locale:     "en",
			OutFile:    catalogPath,
		})
		Expect(err).NotTo(HaveOccurred())

		catalog, err := msgtool.LoadCatalog(catalogPath)
		Expect(err).NotTo(HaveOccurred())
		translation, ok := catalog.Lookup("en", "Hello world")
		Expect(ok).To(BeTrue())
		Expect(translation).To(Equal("Hello world"))

		var out bytes.Buffer
		transformer := engine.NewTransformer(logger, &out)
		err = transformer.Transform(context.Background(), msgtool.TransformRequest{
			Files:           []msgtool.SourceUnit{msgtool.FileUnit(src)},
			GenerateID:      msgtool.KeyLiteral,
			Inline:          true,
			Locale:          "en",
			Translations:    catalog,
			MissingBehavior: msgtool.MissingError,
			Root:            workDir,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring(`formatMessage("Hello world")`))
	})

	It("should report malformed translation files with the parser's message", func() {
		bad := writeSource("bad.json", `{"en":`)
		_, err := msgtool.LoadCatalog(bad)
		Expect(err).To(HaveOccurred())
		var parseErr *msgtool.ParseError
		Expect(errors.As(err, &parseErr)).To(BeTrue())
		Expect(err.Error()).NotTo(BeEmpty())
	})

	It("should lint stdin-captured source against an extracted catalog", func() {
		units, err := input.CaptureIfEmpty(strings.NewReader(workflowSrc), nil, "stdin")
		Expect(err).NotTo(HaveOccurred())

		var findings bytes.Buffer
		linter := engine.NewLinter(logger, &findings)
		err = linter.Lint(context.Background(), msgtool.LintRequest{
			Files:        units,
			FunctionName: "formatMessage",
			AutoDetect:   true,
			KeyType:      msgtool.KeyLiteral,
			Translations: msgtool.Catalog{
				"en": map[string]interface{}{"Hello world": "Hello world"},
			},
		})
		Expect(err).To(HaveOccurred())
		Expect(findings.String()).To(ContainSubstring(`no translation found for key "See you later"`))
	})
})
