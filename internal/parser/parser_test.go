package parser_test

import (
	"errors"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardprint/internal/parser"
	"github.com/kpauljoseph/cardprint/pkg/models"
)

var _ = Describe("Card Parser", func() {
	Context("with the default export settings", func() {
		It("should parse a single card", func() {
			cards, err := parser.Parse("a\tb")
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(Equal([]models.Card{{Front: "a", Back: "b"}}))
		})

		It("should parse cards in order", func() {
			cards, err := parser.Parse("a\tb\nc\td")
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(Equal([]models.Card{
				{Front: "a", Back: "b"},
				{Front: "c", Back: "d"},
			}))
		})

		It("should keep whitespace and empty sides untouched", func() {
			cards, err := parser.Parse("  term \t\n\tdefinition ")
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(Equal([]models.Card{
				{Front: "  term ", Back: ""},
				{Front: "", Back: "definition "},
			}))
		})

		It("should map the i-th line to the i-th card", func() {
			var lines []string
			for i := 0; i < 50; i++ {
				lines = append(lines, fmt.Sprintf("term %d\tdefinition %d", i, i))
			}

			cards, err := parser.Parse(strings.Join(lines, "\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(HaveLen(50))
			for i, card := range cards {
				Expect(card.Front).To(Equal(fmt.Sprintf("term %d", i)))
				Expect(card.Back).To(Equal(fmt.Sprintf("definition %d", i)))
			}
		})

		DescribeTable("rejecting malformed input",
			func(text string, line, parts int) {
				cards, err := parser.Parse(text)
				Expect(cards).To(BeNil())

				var formatErr *parser.FormatError
				Expect(errors.As(err, &formatErr)).To(BeTrue())
				Expect(formatErr.Line).To(Equal(line))
				Expect(formatErr.Parts).To(Equal(parts))
				Expect(err.Error()).To(HavePrefix("Invalid card format."))
			},
			Entry("no delimiter", "abc", 1, 1),
			Entry("extra delimiter", "a\tb\tc", 1, 3),
			Entry("empty input", "", 1, 1),
			Entry("trailing card separator", "a\tb\n", 2, 1),
			Entry("bad line after good ones", "a\tb\nc\td\ne", 3, 1),
		)
	})

	Context("with custom export settings", func() {
		settings := models.ExportSettings{
			BetweenTermAndDefinition: " - ",
			BetweenCards:             ";;",
		}

		It("should split on the configured delimiters", func() {
			cards, err := parser.ParseWith("one - 1;;two - 2", settings)
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(Equal([]models.Card{
				{Front: "one", Back: "1"},
				{Front: "two", Back: "2"},
			}))
		})

		It("should treat tabs as ordinary text", func() {
			cards, err := parser.ParseWith("a\tb - c", settings)
			Expect(err).NotTo(HaveOccurred())
			Expect(cards).To(Equal([]models.Card{{Front: "a\tb", Back: "c"}}))
		})

		DescribeTable("rejecting empty delimiters",
			func(s models.ExportSettings) {
				_, err := parser.ParseWith("a\tb", s)
				Expect(err).To(MatchError(parser.ErrEmptyDelimiter))
			},
			Entry("empty term separator", models.ExportSettings{BetweenCards: "\n"}),
			Entry("empty card separator", models.ExportSettings{BetweenTermAndDefinition: "\t"}),
		)
	})

	Context("IsBlank", func() {
		DescribeTable("detecting input that has not been pasted yet",
			func(text string, blank bool) {
				Expect(parser.IsBlank(text)).To(Equal(blank))
			},
			Entry("empty", "", true),
			Entry("whitespace", " \n\t ", true),
			Entry("content", "a\tb", false),
		)
	})
})
