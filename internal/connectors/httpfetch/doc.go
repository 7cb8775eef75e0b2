// Package httpfetch implements the resource fetcher used by every remote
// catalogue (UniProt, ENA).
//
// # Architecture
//
// The fetcher follows the driven port pattern defined in [driven.ResourceFetcher].
// It comprises the following components:
//
//   - Client: performs GET requests with a per-request timeout
//   - RateLimiter: throttles requests shared by all catalogues
//   - Config: timeout, rate and user agent, passed in at construction
//
// # Rate Limiting
//
// The public EBI and UniProt services ask clients to stay polite. A token
// bucket limits the sustained request rate. When a service answers 429 or
// 503 with a Retry-After header, the limiter holds every further request
// until that time. The failing request itself is not retried; callers
// attempt each accession once.
//
// # Error Handling
//
// Every failure is a [domain.FetchError] carrying the URL, the HTTP status
// (0 for transport errors) and the cause. Local write failures during
// Download are reported as [domain.FilesystemError].
package httpfetch
