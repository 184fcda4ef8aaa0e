// Package progress adapts the named ReadingProgress payload onto the
// positional signature of the API client's save operation.
package progress

import (
	"context"
	"encoding/json"

	"github.com/ayeshaqaisar/bookhub/internal/api"
)

// API is the subset of the Bookhub API client the adapter needs.
type API interface {
	SaveReadingProgress(ctx context.Context, bookID string, percentComplete float64, currentPage *int, status api.ProgressStatus, lastPosition json.RawMessage, isFavourite bool) error
	FetchUserReadingProgress(ctx context.Context) ([]api.ReadingProgress, error)
}

// Adapter forwards reading progress operations to the API client. Each call
// is a single independent forward: no retry, no batching, no error
// translation.
type Adapter struct {
	api API
}

func NewAdapter(api API) *Adapter {
	return &Adapter{api: api}
}

// Fetch returns the user's reading progress across all books, exactly as the
// API client produced it. The result is a snapshot at call time, never a
// stream.
func (a *Adapter) Fetch(ctx context.Context) ([]api.ReadingProgress, error) {
	return a.api.FetchUserReadingProgress(ctx)
}

// Upsert maps the payload's named fields onto the save operation's positional
// parameters. Absent optional fields get defaults: PercentComplete 0, Status
// "reading", IsFavourite false. CurrentPage passes through as-is, including
// when nil. A nil LastPosition stays off the wire entirely, while an explicit
// JSON null is forwarded as null; the backend treats the two differently.
//
// UserID, Bookmarks and LastReadAt are not forwarded: the save operation does
// not accept them.
func (a *Adapter) Upsert(ctx context.Context, p api.ReadingProgress) error {
	percent := 0.0
	if p.PercentComplete != nil {
		percent = *p.PercentComplete
	}

	status := p.Status
	if status == "" {
		status = api.StatusReading
	}

	favourite := false
	if p.IsFavourite != nil {
		favourite = *p.IsFavourite
	}

	return a.api.SaveReadingProgress(ctx, p.BookID, percent, p.CurrentPage, status, p.LastPosition, favourite)
}
