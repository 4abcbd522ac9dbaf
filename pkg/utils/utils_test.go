package utils_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardprint/internal/layout"
	"github.com/kpauljoseph/cardprint/pkg/models"
	"github.com/kpauljoseph/cardprint/pkg/utils"
)

var _ = Describe("Utils", func() {
	Context("GenerateLayoutHash", func() {
		cards := []models.Card{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}}

		It("should be stable for equal layouts", func() {
			first, err := layout.GeneratePages(cards, models.DefaultPrintOptions())
			Expect(err).NotTo(HaveOccurred())
			second, err := layout.GeneratePages(cards, models.DefaultPrintOptions())
			Expect(err).NotTo(HaveOccurred())

			Expect(utils.GenerateLayoutHash(first)).To(Equal(utils.GenerateLayoutHash(second)))
			Expect(utils.GenerateLayoutHash(first)).To(HaveLen(64))
		})

		It("should change when a rendering hint changes", func() {
			opts := models.DefaultPrintOptions()
			first, err := layout.GeneratePages(cards, opts)
			Expect(err).NotTo(HaveOccurred())

			opts.ShowBorders = false
			second, err := layout.GeneratePages(cards, opts)
			Expect(err).NotTo(HaveOccurred())

			Expect(utils.GenerateLayoutHash(first)).NotTo(Equal(utils.GenerateLayoutHash(second)))
		})

		It("should not confuse cell boundaries", func() {
			a := []models.Page{{Cells: [][]string{{"ab", ""}}}}
			b := []models.Page{{Cells: [][]string{{"a", "b"}}}}
			Expect(utils.GenerateLayoutHash(a)).NotTo(Equal(utils.GenerateLayoutHash(b)))
		})
	})

	Context("OutputPathFor", func() {
		It("should keep sub-directories and swap the extension", func() {
			Expect(utils.OutputPathFor("out", filepath.Join("biology", "cells.txt"))).
				To(Equal(filepath.Join("out", "biology", "cells.pdf")))
		})
	})

	Context("GetDefaultOutputDir", func() {
		It("should create a temp directory", func() {
			dir := utils.GetDefaultOutputDir()
			defer os.RemoveAll(dir)
			Expect(dir).To(BeADirectory())
		})
	})
})
