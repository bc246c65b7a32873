// Package repository implements data access over the reservations and
// refresh_tokens tables.  Sentinel errors defined here let handlers map
// failure modes onto distinct HTTP responses without inspecting SQL errors.
package repository

import "errors"

// ErrNotFound is returned when an operation targets a row that does not
// exist.  Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrTokenRevoked is returned when a refresh token exists but has been
// revoked by a logout.  Handlers translate it into HTTP 403.
var ErrTokenRevoked = errors.New("token revoked")

// ErrTokenExpired is returned when a refresh token exists but its natural
// expiry has passed.  Handlers translate it into HTTP 403, the same as an
// unknown token.
var ErrTokenExpired = errors.New("token expired")
