package catalog

import "errors"

// NotFound errors. An identifier that does not parse as a store
// identifier maps to the same sentinel as a missing record.
var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrBookNotFound   = errors.New("book not found")
	ErrGenreNotFound  = errors.New("genre not found")
	ErrCopyNotFound   = errors.New("book copy not found")
)

// Validation failures and delete refusals are returned as data
// (field-error lists, dependent lists), never as Go errors. Anything
// else reaching a caller as an error is a store failure and is
// propagated unchanged.

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrGenreNotFound):
		return "GENRE_NOT_FOUND"
	case errors.Is(err, ErrCopyNotFound):
		return "COPY_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrGenreNotFound),
		errors.Is(err, ErrCopyNotFound):
		return 404
	default:
		return 500
	}
}

// IsNotFound reports whether err is any of the catalog NotFound sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAuthorNotFound) ||
		errors.Is(err, ErrBookNotFound) ||
		errors.Is(err, ErrGenreNotFound) ||
		errors.Is(err, ErrCopyNotFound)
}
