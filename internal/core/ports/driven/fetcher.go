package driven

import "context"

// ResourceFetcher performs network retrieval of remote resources.
// Non-success HTTP statuses and transport failures are reported as
// *domain.FetchError; the caller decides whether that is fatal.
type ResourceFetcher interface {
	// Fetch retrieves the resource at url and returns its body.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Download streams the resource at url into the file at path.
	// A partially written file is removed on failure.
	// Returns the number of bytes written.
	Download(ctx context.Context, url, path string) (int64, error)
}
