// Package platform provides cross-platform filesystem helpers for permission
// management. On Unix systems it uses chmod and mode bits directly. On Windows,
// where Unix-style permission bits do not exist, permission operations degrade
// to no-ops so that callers never fail on an unsupported concept.
package platform
