// Package errors provides coded errors for guildsim.
//
// Errors carry a Code so callers can branch on the failure class (bad
// composition, missing scenario file, internal fault) without matching on
// message text. Validation failures are collected with a ValidationBuilder
// and surface as a single InvalidArgument error whose Meta lists every field.
package errors
