package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned when an authenticated user attempts to
	// mutate a resource they do not own.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	// ErrUnauthenticated is returned when a write is attempted without a
	// valid identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrCompanyLimit is returned when an owner already has three companies.
	ErrCompanyLimit = errors.New("you have reached the max limit of 3 companies")

	// ErrDuplicateFollow is returned when the store rejects a follower edge
	// that already exists.
	ErrDuplicateFollow = errors.New("possible duplicate follow")

	// ErrSelfFollow is returned when a user attempts to follow themselves.
	ErrSelfFollow = errors.New("you cannot follow yourself")

	// ErrUserExists is returned on registration when the username or email
	// is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned on failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token fails validation or its
	// session has been revoked.
	ErrInvalidToken = errors.New("invalid token")
)

// CompanyExistsError reports a duplicate (name, location) pair.
type CompanyExistsError struct {
	Name     string
	Location string
}

func (e *CompanyExistsError) Error() string {
	return fmt.Sprintf("a company with the name %q and location %q already exists", e.Name, e.Location)
}

// asNotFound converts GORM's record-not-found into the domain error and
// passes everything else through.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
