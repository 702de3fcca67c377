/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the front-end service and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse URL-encoded form data.
	ErrFormParseFailed = 1005

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1006
)

// 3xxx: Login and Session Errors
const (
	// ErrLoginPending indicates a login attempt was skipped because another one is still in flight.
	ErrLoginPending = 3001

	// ErrSessionRequired indicates the requested view needs a logged-in session.
	ErrSessionRequired = 3002
)

// 4xxx: Authentication Backend Errors
const (
	// ErrBackendUnauthorized indicates the authentication backend rejected the login (HTTP 401).
	ErrBackendUnauthorized = 4001

	// ErrBackendStatus indicates the authentication backend answered with an unexpected error status.
	ErrBackendStatus = 4002

	// ErrBackendUnreachable indicates the request to the authentication backend failed at the transport level.
	ErrBackendUnreachable = 4003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general internal error.
	ErrUnknown = 5000
)
