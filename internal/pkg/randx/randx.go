/*
Package randx provides functions for generating unique identifiers.

It is primarily used to generate opaque browser session identifiers.
*/
package randx

import "github.com/google/uuid"

// SessionID generates a standard UUID v4 string to serve as an opaque browser session identifier.
func SessionID() string {
	return uuid.New().String()
}

// IsValidSessionID checks that the given string parses as a UUID, guarding
// against malformed or forged session cookies before any map lookup.
func IsValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
