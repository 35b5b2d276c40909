package model

import (
	"fmt"
)

// NotFoundError is an error signaling that something was not found in the
// database
type NotFoundError string

// Error implements the error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// NotFoundErrorFmt returns a NotFoundError from the passed format string and parameters
func NotFoundErrorFmt(format string, params ...any) NotFoundError {
	return NotFoundError(fmt.Sprintf(format, params...))
}

// AlreadyExistsError is an error signaling that a record with the same
// unique key is already present in the database
type AlreadyExistsError string

// Error implements the error interface
func (e AlreadyExistsError) Error() string {
	return string(e)
}

// AlreadyExistsErrorFmt returns an AlreadyExistsError from the passed format string and parameters
func AlreadyExistsErrorFmt(format string, params ...any) AlreadyExistsError {
	return AlreadyExistsError(fmt.Sprintf(format, params...))
}

// InvalidCredentialsError is an error signaling a failed credential check.
// It covers both an unknown username and a wrong password; callers must
// not be able to tell the two apart.
type InvalidCredentialsError string

// Error implements the error interface
func (e InvalidCredentialsError) Error() string {
	return string(e)
}

// MissingCredentialsError is an error signaling that username or password
// was empty. At the HTTP boundary it is reported exactly like
// InvalidCredentialsError.
type MissingCredentialsError string

// Error implements the error interface
func (e MissingCredentialsError) Error() string {
	return string(e)
}
