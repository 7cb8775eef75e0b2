package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// The proteome resolver returns it when a descriptor carries no assembly accession.
	ErrNotFound = errors.New("not found")

	// ErrNoAssemblyRecord indicates an assembly descriptor has no top-level
	// assembly record. This is a hard failure, unlike an empty record.
	ErrNoAssemblyRecord = errors.New("no assembly record in descriptor")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAccession indicates an accession that cannot be used as an
	// identifier or directory name.
	ErrInvalidAccession = errors.New("invalid accession")

	// ErrUnsupportedFormat indicates an unknown sequence download format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExtractorUnavailable indicates the sequence extraction tool is not installed.
	ErrExtractorUnavailable = errors.New("sequence extractor unavailable")
)

// FetchError reports a transport or HTTP failure for a remote resource.
type FetchError struct {
	// URL is the resource that could not be retrieved.
	URL string

	// StatusCode is the HTTP status, or 0 for transport failures.
	StatusCode int

	// Cause is the underlying error.
	Cause error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// FilesystemError reports a directory creation or file write failure.
type FilesystemError struct {
	// Op is the operation that failed (e.g. "mkdir", "write").
	Op string

	// Path is the filesystem path involved.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// IsFetchError checks if the error chain contains a FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsNotFoundStatus checks if the error is a FetchError with HTTP 404.
func IsNotFoundStatus(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.StatusCode == http.StatusNotFound
	}
	return false
}

// IsFilesystemError checks if the error chain contains a FilesystemError.
func IsFilesystemError(err error) bool {
	var fse *FilesystemError
	return errors.As(err, &fse)
}
