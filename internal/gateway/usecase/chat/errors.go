package chat

import "errors"

// Turn failure taxonomy. The HTTP handler maps these onto status codes;
// everything below this package speaks in its own sentinels and gets
// re-classified here.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("project not found")
	ErrRateLimited = errors.New("upstream rate limited")
	ErrUnavailable = errors.New("service unavailable")
	ErrUpstream    = errors.New("upstream error")
)
