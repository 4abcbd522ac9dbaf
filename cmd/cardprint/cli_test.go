package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardprint/internal/config"
	"github.com/kpauljoseph/cardprint/internal/layout"
	"github.com/kpauljoseph/cardprint/internal/parser"
	"github.com/kpauljoseph/cardprint/internal/pdf"
	"github.com/kpauljoseph/cardprint/pkg/logger"
	"github.com/kpauljoseph/cardprint/pkg/version"
)

var _ = Describe("CLI", func() {
	var (
		testDir    string
		configPath string
		out        *bytes.Buffer
	)

	BeforeEach(func() {
		var err error
		testDir, err = os.MkdirTemp("", "cardprint-cli-test-*")
		Expect(err).NotTo(HaveOccurred())
		configPath = filepath.Join(testDir, "missing-config.yaml")
		out = &bytes.Buffer{}
	})

	AfterEach(func() {
		os.RemoveAll(testDir)
	})

	run := func(stdin string, args ...string) error {
		log := logger.New(logger.WithOutput(GinkgoWriter), logger.WithFlags(0))
		cmd := newRootCmd(log)
		cmd.SetArgs(append(args, "--config", configPath))
		cmd.SetIn(strings.NewReader(stdin))
		cmd.SetOut(out)
		cmd.SetErr(GinkgoWriter)
		return cmd.Execute()
	}

	writeFile := func(name, content string) string {
		path := filepath.Join(testDir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Context("render", func() {
		It("should write a double-sided PDF from a file", func() {
			input := writeFile("set.txt", "a\tb\nc\td\ne\tf")
			output := filepath.Join(testDir, "out", "cards.pdf")

			Expect(run("", "render", input, "-o", output, "--rows", "1", "--columns", "2")).To(Succeed())

			summary, err := pdf.Inspect(output)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.PageCount).To(Equal(4))
		})

		It("should read from stdin", func() {
			output := filepath.Join(testDir, "stdin.pdf")
			Expect(run("a\tb", "render", "-", "-o", output)).To(Succeed())
			Expect(output).To(BeAnExistingFile())
		})

		It("should report format errors", func() {
			err := run("a\tb\tc", "render", "-o", filepath.Join(testDir, "x.pdf"))
			var formatErr *parser.FormatError
			Expect(errors.As(err, &formatErr)).To(BeTrue())
		})

		It("should report grid errors from the layout generator", func() {
			err := run("a\tb", "render", "--rows", "0", "-o", filepath.Join(testDir, "x.pdf"))
			var configErr *layout.ConfigError
			Expect(errors.As(err, &configErr)).To(BeTrue())
		})

		It("should reject an unknown orientation", func() {
			err := run("a\tb", "render", "--orientation", "diagonal")
			Expect(err).To(MatchError(ContainSubstring("invalid orientation")))
		})

		It("should reject an unknown paper size without writing anything", func() {
			output := filepath.Join(testDir, "postcard.pdf")
			err := run("a\tb", "render", "-", "--paper", "Postcard", "-o", output)
			Expect(err).To(MatchError(config.ErrInvalidConfig))
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("should use separators from the config file", func() {
			configPath = writeFile("config.yaml", "export:\n  between_term_and_definition: \" = \"\n  between_cards: \";\"\n")
			output := filepath.Join(testDir, "custom.pdf")
			Expect(run("a = b;c = d", "render", "-o", output)).To(Succeed())
			Expect(output).To(BeAnExistingFile())
		})
	})

	Context("preview", func() {
		It("should print the sheets", func() {
			Expect(run("one\t1\ntwo\t2", "preview", "--rows", "1", "--columns", "2")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Sheet 1 (front)"))
			Expect(out.String()).To(ContainSubstring("Sheet 1 (back, mirrored)"))
			Expect(out.String()).To(ContainSubstring("one"))
			Expect(out.String()).To(ContainSubstring("2"))
		})

		It("should treat blank input as an error", func() {
			Expect(run("   ", "preview")).To(HaveOccurred())
		})
	})

	Context("batch", func() {
		It("should fail when any export fails", func() {
			dir := filepath.Join(testDir, "exports")
			Expect(os.MkdirAll(dir, 0755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "good.txt"), []byte("a\tb"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("ab"), 0644)).To(Succeed())

			err := run("", "batch", dir, "--output-dir", filepath.Join(testDir, "pdfs"), "--jobs", "1")
			Expect(err).To(MatchError(ContainSubstring("1 of 2 exports failed")))
			Expect(filepath.Join(testDir, "pdfs", "good.pdf")).To(BeAnExistingFile())
		})
	})

	Context("inspect", func() {
		It("should describe a rendered PDF", func() {
			output := filepath.Join(testDir, "cards.pdf")
			Expect(run("a\tb", "render", "-o", output)).To(Succeed())

			out.Reset()
			Expect(run("", "inspect", output)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Pages: 2"))
			Expect(out.String()).To(ContainSubstring("Double-sided ready: true"))
		})
	})

	Context("version", func() {
		It("should print version details", func() {
			Expect(run("", "version")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Version:"))
		})

		It("should print a one-line version for --version", func() {
			Expect(run("", "--version")).To(Succeed())
			Expect(out.String()).To(Equal(version.GetVersionInfo() + "\n"))
		})
	})
})
