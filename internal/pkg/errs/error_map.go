/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrFormParseFailed:      {Code: ErrFormParseFailed, Message: "Failed to process submitted data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 3xxx: Login and Session Errors
	ErrLoginPending:    {Code: ErrLoginPending, Message: "A sign-in attempt is already in progress."},
	ErrSessionRequired: {Code: ErrSessionRequired, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},

	// 4xxx: Authentication Backend Errors
	ErrBackendUnauthorized: {Code: ErrBackendUnauthorized, Message: "Sign-in was not authorized.", Status: http.StatusUnauthorized},
	ErrBackendStatus:       {Code: ErrBackendStatus, Message: "Sign-in service returned status %d.", Status: http.StatusBadGateway},
	ErrBackendUnreachable:  {Code: ErrBackendUnreachable, Message: "Sign-in service is unreachable.", Status: http.StatusBadGateway},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
