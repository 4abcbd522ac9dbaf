package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/kpauljoseph/cardprint/pkg/models"
)

// GenerateLayoutHash fingerprints the visible content of a page sequence.
// Equal layouts hash equally, which makes regenerated output easy to compare.
func GenerateLayoutHash(pages []models.Page) string {
	hasher := sha256.New()
	for _, page := range pages {
		fmt.Fprintf(hasher, "%d|%s|%dx%d|%g|%s|%t\n",
			page.Sheet, page.Side, page.Rows, page.Columns,
			page.FontSize, page.Orientation, page.ShowBorders)
		for _, row := range page.Cells {
			for _, cell := range row {
				fmt.Fprintf(hasher, "%d:%s", len(cell), cell)
			}
			hasher.Write([]byte{'\n'})
		}
	}

	return hex.EncodeToString(hasher.Sum(nil))
}
