package pdf

import (
	"context"
	"io"

	"github.com/kpauljoseph/cardprint/pkg/models"
)

type PageRenderer interface {
	Render(ctx context.Context, w io.Writer, pages []models.Page) error
	RenderFile(ctx context.Context, path string, pages []models.Page) error
}
